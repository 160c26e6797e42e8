package decision

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"roundtable/internal/logger"
	"roundtable/internal/pkg/jsonutil"
)

// 中文说明：
// 自由文本投票解析。persona 的判定改由 LLM 给出时（混合增强层），
// 原文经此转成 PersonaVote。双语（英/韩）标签行，任何输入都不 panic：
// 解析失败一律降级成 ABSTAIN。

const (
	reasonEmptyResponse = "Empty LLM response"
	reasonNotExtracted  = "LLM reasoning not extracted"
	reasonParseError    = "Parse error"
)

var (
	actionLineRe = regexp.MustCompile(`(?mi)^\s*(?:ACTION|행동)\s*[:：]\s*(.+)$`)
	convictionRe = regexp.MustCompile(`(?i)(?:CONVICTION|확신도)\s*[:：]\s*(-?[0-9]*\.?[0-9]+)`)
	reasoningRe  = regexp.MustCompile(`(?i)(?:REASONING|분석|근거)\s*[:：]\s*(.+)`)

	// 英文关键词要求词边界；韩文无词边界概念（RE2 \b 只认 ASCII），用子串。
	englishActionRes = map[Action]*regexp.Regexp{
		ActionBuy:  regexp.MustCompile(`(?i)\bBUY\b`),
		ActionSell: regexp.MustCompile(`(?i)\bSELL\b`),
		ActionHold: regexp.MustCompile(`(?i)\bHOLD\b`),
	}
	koreanActionKeywords = map[Action]string{
		ActionBuy:  "매수",
		ActionSell: "매도",
		ActionHold: "보유",
	}
)

// ParseVote 永不抛错：意外情况返回 ABSTAIN 票。
func ParseVote(responseText, personaName string, category Category) (vote PersonaVote) {
	vote = PersonaVote{
		PersonaName: personaName,
		Action:      ActionAbstain,
		Conviction:  0.0,
		Reasoning:   reasonParseError,
		CriteriaMet: map[string]bool{},
		Category:    category,
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("vote parse panic for %s: %v", personaName, r)
			vote = PersonaVote{
				PersonaName: personaName,
				Action:      ActionAbstain,
				Conviction:  0.0,
				Reasoning:   reasonParseError,
				CriteriaMet: map[string]bool{},
				Category:    category,
			}
		}
	}()

	if strings.TrimSpace(responseText) == "" {
		vote.Reasoning = reasonEmptyResponse
		return vote
	}

	// 快速通道：回复里带结构化 JSON 时直接取字段
	if v, ok := parseJSONVote(responseText, personaName, category); ok {
		return v
	}

	action := extractAction(responseText)
	conviction := extractConviction(responseText)
	reasoning := extractReasoning(responseText)

	vote.Action = action
	vote.Conviction = conviction
	vote.Reasoning = reasoning
	return vote
}

func parseJSONVote(raw, personaName string, category Category) (PersonaVote, bool) {
	obj, ok := jsonutil.ExtractObject(raw)
	if !ok || !gjson.Valid(obj) {
		return PersonaVote{}, false
	}
	action := NormalizeAction(gjson.Get(obj, "action").String())
	if action == "" || !ScreeningAction(action) {
		return PersonaVote{}, false
	}
	conviction := clampConviction(gjson.Get(obj, "conviction").Float())
	reasoning := strings.TrimSpace(gjson.Get(obj, "reasoning").String())
	if reasoning == "" {
		reasoning = reasonNotExtracted
	}
	return PersonaVote{
		PersonaName: personaName,
		Action:      action,
		Conviction:  conviction,
		Reasoning:   reasoning,
		CriteriaMet: map[string]bool{},
		Category:    category,
	}, true
}

// extractAction 先扫 ACTION:/행동: 标签行，行内找不到再扫全文。
func extractAction(text string) Action {
	if m := actionLineRe.FindStringSubmatch(text); m != nil {
		if a := findActionKeyword(m[1]); a != "" {
			return a
		}
	}
	if a := findActionKeyword(text); a != "" {
		return a
	}
	return ActionAbstain
}

// findActionKeyword 返回文本中最先出现的动作关键词。
func findActionKeyword(text string) Action {
	best := Action("")
	bestPos := -1
	consider := func(a Action, pos int) {
		if pos < 0 {
			return
		}
		if bestPos == -1 || pos < bestPos {
			best = a
			bestPos = pos
		}
	}
	for a, re := range englishActionRes {
		if loc := re.FindStringIndex(text); loc != nil {
			consider(a, loc[0])
		}
	}
	for a, kw := range koreanActionKeywords {
		consider(a, strings.Index(text, kw))
	}
	return best
}

func extractConviction(text string) float64 {
	m := convictionRe.FindStringSubmatch(text)
	if m == nil {
		return 0.0
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0.0
	}
	return clampConviction(f)
}

func extractReasoning(text string) string {
	m := reasoningRe.FindStringSubmatch(text)
	if m == nil {
		return reasonNotExtracted
	}
	reasoning := strings.TrimSpace(m[1])
	if reasoning == "" {
		return reasonNotExtracted
	}
	return reasoning
}

func clampConviction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
