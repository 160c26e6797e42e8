package persona

import (
	"roundtable/internal/decision"
	"roundtable/internal/market"
	"roundtable/internal/pkg/numutil"
)

// Fisher 成长质量筛选：营收高增长、经营利润率结构健康、
// 低杠杆、高 ROE、盈利仍在增长。确信度 = 通过数/6。
type Fisher struct {
	base
}

func NewFisher() *Fisher {
	return &Fisher{base{name: "Fisher", category: decision.CategoryGrowth, llmTriggerRate: 0.15}}
}

func (p *Fisher) ScreenRule(snap market.Snapshot) decision.PersonaVote {
	criteria := []criterion{
		{"revenue_growth_above_15", snap.RevenueGrowthYoY > 15},
		{"operating_margin_above_net", snap.OperatingMargin > 5 && snap.OperatingMargin > snap.NetMargin},
		{"profitable_operations", snap.OperatingMargin > 5 && snap.NetMargin > 0},
		{"debt_to_equity_below_0_3", snap.DebtToEquity >= 0 && snap.DebtToEquity < 0.3},
		{"roe_above_20", snap.ROE > 20},
		{"earnings_growing", snap.EarningsGrowthYoY > 0},
	}

	met := metCount(criteria)
	conviction := numutil.Round4(float64(met) / 6)
	switch {
	case met >= 5:
		return vote(p.base, decision.ActionBuy, conviction, criteria, "superior growth franchise")
	case met >= 3:
		return vote(p.base, decision.ActionHold, conviction, criteria, "growth quality mixed")
	case met <= 1:
		return vote(p.base, decision.ActionSell, conviction, criteria, "growth story absent")
	default:
		return vote(p.base, decision.ActionHold, conviction, criteria, "growth evidence thin")
	}
}
