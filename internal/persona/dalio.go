package persona

import (
	"roundtable/internal/decision"
	"roundtable/internal/market"
)

// Dalio 宏观风险平价视角：市场波动环境、标的自身波动区间、
// 非超买、趋势确认、赔率。
type Dalio struct {
	base
	// VKOSPI 低于该值视为低相关性的平静环境（代理指标）。
	calmVolatilityIndex float64
}

func NewDalio() *Dalio {
	return &Dalio{
		base:                base{name: "Dalio", category: decision.CategoryMacro, llmTriggerRate: 0.12},
		calmVolatilityIndex: 25,
	}
}

func (p *Dalio) ScreenRule(snap market.Snapshot) decision.PersonaVote {
	atrPct := snap.ATRPercent()
	upsideToATR := 0.0
	if snap.ATR14 > 0 {
		high52, _ := snap.High52W.Float64()
		upsideToATR = (high52 - snap.PriceF()) / snap.ATR14
	}

	criteria := []criterion{
		{"calm_market_regime", snap.VolatilityIndex > 0 && snap.VolatilityIndex < p.calmVolatilityIndex},
		{"atr_in_band", atrPct >= 0.5 && atrPct <= 5},
		{"rsi_below_70", snap.RSI14 < 70},
		{"confirmed_trend", snap.ADX14 >= 25 && snap.PriceF() > snap.SMA50},
		{"upside_per_atr_at_least_2", upsideToATR >= 2},
	}

	met := metCount(criteria)
	switch {
	case met == 5:
		return vote(p.base, decision.ActionBuy, 0.8, criteria, "balanced risk setup")
	case met >= 3:
		return vote(p.base, decision.ActionBuy, 0.5, criteria, "acceptable risk setup")
	case met == 2:
		return vote(p.base, decision.ActionHold, 0.35, criteria, "risk picture unclear")
	default:
		return vote(p.base, decision.ActionSell, 0.7, criteria, "risk/reward unattractive")
	}
}
