package persona

import (
	"roundtable/internal/decision"
	"roundtable/internal/market"
)

// Lynch 成长筛选：PEG、增长区间、估值对比大盘、营收增长与分类。
type Lynch struct {
	base
}

func NewLynch() *Lynch {
	return &Lynch{base{name: "Lynch", category: decision.CategoryGrowth, llmTriggerRate: 0.2}}
}

// Classification Lynch 六分类的子集（核心只用到四类）。
type Classification string

const (
	FastGrower Classification = "fast_grower"
	Stalwart   Classification = "stalwart"
	Turnaround Classification = "turnaround"
	Cyclical   Classification = "cyclical"
)

// Classify 按盈利/营收增长划分个股类型。
func Classify(snap market.Snapshot) Classification {
	switch {
	case snap.EarningsGrowthYoY > 20:
		return FastGrower
	case snap.EarningsGrowthYoY >= 10:
		return Stalwart
	case snap.EPS.IsNegative() && snap.RevenueGrowthYoY > 0:
		return Turnaround
	default:
		return Cyclical
	}
}

func (p *Lynch) ScreenRule(snap market.Snapshot) decision.PersonaVote {
	peg := 0.0
	if snap.EarningsGrowthYoY > 0 {
		peg = snap.PER / snap.EarningsGrowthYoY
	}
	class := Classify(snap)

	criteria := []criterion{
		{"peg_below_1", peg > 0 && peg < 1},
		{"growth_20_to_50", snap.EarningsGrowthYoY >= 20 && snap.EarningsGrowthYoY <= 50},
		{"pe_below_market", snap.PER > 0 && snap.MarketPER > 0 && snap.PER < snap.MarketPER},
		{"revenue_growth_above_10", snap.RevenueGrowthYoY > 10},
		{"favorable_classification", class != Cyclical},
	}

	met := metCount(criteria)
	detail := "classified as " + string(class)
	switch {
	case met >= 4:
		return vote(p.base, decision.ActionBuy, 0.8, criteria, detail)
	case met == 3:
		return vote(p.base, decision.ActionBuy, 0.55, criteria, detail)
	case met == 2:
		return vote(p.base, decision.ActionHold, 0.4, criteria, detail)
	default:
		return vote(p.base, decision.ActionSell, 0.65, criteria, detail)
	}
}
