// Package persona 实现十个确定性的投资人筛选策略。
// 每个 persona 对快照评估一组布尔判据，按通过数映射动作与分级确信度。
package persona

import (
	"fmt"
	"strings"

	"roundtable/internal/decision"
	"roundtable/internal/market"
)

// Persona 筛选策略契约。ScreenRule 必须是纯函数：
// 无 I/O、无随机、不看墙钟（快照里已有的时间字段除外）。
type Persona interface {
	Name() string
	Category() decision.Category
	// ScreenRule 规则判定，必选。
	ScreenRule(snap market.Snapshot) decision.PersonaVote
	// ShouldTriggerLLM 标记边缘判定，供外部增强层升级。
	ShouldTriggerLLM(vote decision.PersonaVote) bool
	// LLMTriggerRate 预期升级频率，仅供监控参考，核心不做强制。
	LLMTriggerRate() float64
}

// Evaluate 缺省求值入口：直接走 ScreenRule。
// 混合增强层（核心之外）可包装此入口混入 LLM 判定。
func Evaluate(p Persona, snap market.Snapshot) decision.PersonaVote {
	return p.ScreenRule(snap)
}

// base 各 persona 共享的元数据与缺省钩子。
type base struct {
	name           string
	category       decision.Category
	llmTriggerRate float64
}

func (b base) Name() string                { return b.name }
func (b base) Category() decision.Category { return b.category }
func (b base) LLMTriggerRate() float64     { return b.llmTriggerRate }

// ShouldTriggerLLM 缺省：HOLD 或确信度落在灰区视为边缘判定。
func (b base) ShouldTriggerLLM(vote decision.PersonaVote) bool {
	if vote.Action == decision.ActionHold {
		return true
	}
	return vote.Conviction >= 0.3 && vote.Conviction <= 0.6
}

// criterion 有序判据：map 不保序，reasoning 要按声明顺序点名。
type criterion struct {
	name string
	met  bool
}

func metCount(criteria []criterion) int {
	n := 0
	for _, c := range criteria {
		if c.met {
			n++
		}
	}
	return n
}

func criteriaMap(criteria []criterion) map[string]bool {
	out := make(map[string]bool, len(criteria))
	for _, c := range criteria {
		out[c.name] = c.met
	}
	return out
}

// describe 生成点名通过/未通过判据的 reasoning 片段。
func describe(criteria []criterion) string {
	var passed, failed []string
	for _, c := range criteria {
		if c.met {
			passed = append(passed, c.name)
		} else {
			failed = append(failed, c.name)
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d criteria met", len(passed), len(criteria))
	if len(passed) > 0 {
		b.WriteString("; passed: ")
		b.WriteString(strings.Join(passed, ", "))
	}
	if len(failed) > 0 {
		b.WriteString("; failed: ")
		b.WriteString(strings.Join(failed, ", "))
	}
	return b.String()
}

// vote 组装一张票。
func vote(b base, action decision.Action, conviction float64, criteria []criterion, detail string) decision.PersonaVote {
	reasoning := describe(criteria)
	if detail != "" {
		reasoning = detail + "; " + reasoning
	}
	return decision.PersonaVote{
		PersonaName: b.name,
		Action:      action,
		Conviction:  conviction,
		Reasoning:   reasoning,
		CriteriaMet: criteriaMap(criteria),
		Category:    b.category,
	}
}
