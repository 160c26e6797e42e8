package persona

import (
	"fmt"
	"strings"

	"roundtable/internal/decision"
	"roundtable/internal/market"
	"roundtable/internal/pkg/numutil"
)

// Simons 量化信号合成：六路连续信号各自 clamp 到 [0,1] 后加权求和。
// 与其余 persona 不同，这里没有布尔阈值清单，确信度就是加权分。
// 纯统计策略不做 LLM 升级。
type Simons struct {
	base
}

func NewSimons() *Simons {
	return &Simons{base{name: "Simons", category: decision.CategoryQuant, llmTriggerRate: 0}}
}

// ShouldTriggerLLM 恒为 false：统计信号不交给 LLM 复核。
func (p *Simons) ShouldTriggerLLM(decision.PersonaVote) bool { return false }

type signal struct {
	name   string
	weight float64
	score  float64 // 已 clamp 到 [0,1]
}

func (p *Simons) ScreenRule(snap market.Snapshot) decision.PersonaVote {
	price := snap.PriceF()

	// 均值回归：价格跌破 SMA20 的相对深度
	meanReversion := 0.0
	if snap.SMA20 > 0 {
		meanReversion = (snap.SMA20 - price) / snap.SMA20 * 10
	}

	// 超卖反转：RSI 低位叠加 MACD 信号转正
	reversal := 0.0
	if snap.RSI14 > 0 && snap.RSI14 < 40 {
		reversal = (40 - snap.RSI14) / 40
		if snap.MACDSignal > 0 {
			reversal += 0.5
		}
	}

	// 布林极值：%B 低于中轨的程度
	bollinger := (0.5 - snap.BollingerPctB) * 2

	// 量能异常：相对 20 日均量的超额
	volumeAnomaly := 0.0
	if snap.AvgVolume20D > 0 {
		volumeAnomaly = float64(snap.Volume)/snap.AvgVolume20D - 1
	}

	// 随机指标代理：52 周区间内的位置，低位给高分
	stochProxy := 0.0
	high52, _ := snap.High52W.Float64()
	low52, _ := snap.Low52W.Float64()
	if high52 > low52 {
		stochProxy = 1 - (price-low52)/(high52-low52)
	}

	// 统计套利：估值相对大盘的折价
	statArb := 0.0
	if snap.MarketPER > 0 && snap.PER > 0 {
		statArb = (snap.MarketPER - snap.PER) / snap.MarketPER
	}

	signals := []signal{
		{"mean_reversion", 0.25, numutil.Clamp01(meanReversion)},
		{"rsi_macd_reversal", 0.20, numutil.Clamp01(reversal)},
		{"bollinger_extreme", 0.20, numutil.Clamp01(bollinger)},
		{"volume_anomaly", 0.10, numutil.Clamp01(volumeAnomaly)},
		{"stochastic_proxy", 0.10, numutil.Clamp01(stochProxy)},
		{"stat_arb", 0.15, numutil.Clamp01(statArb)},
	}

	conviction := 0.0
	criteria := make(map[string]bool, len(signals))
	parts := make([]string, 0, len(signals))
	for _, s := range signals {
		conviction += s.weight * s.score
		criteria[s.name] = s.score >= 0.5
		parts = append(parts, fmt.Sprintf("%s=%.2f", s.name, s.score))
	}
	conviction = numutil.Round4(conviction)

	var action decision.Action
	switch {
	case conviction >= 0.6:
		action = decision.ActionBuy
	case conviction >= 0.3:
		action = decision.ActionHold
	case conviction < 0.15:
		action = decision.ActionSell
	default:
		action = decision.ActionHold
	}

	return decision.PersonaVote{
		PersonaName: p.name,
		Action:      action,
		Conviction:  conviction,
		Reasoning:   fmt.Sprintf("weighted signal score %.4f; signals: %s", conviction, strings.Join(parts, ", ")),
		CriteriaMet: criteria,
		Category:    p.category,
	}
}
