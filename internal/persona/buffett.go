package persona

import (
	"roundtable/internal/decision"
	"roundtable/internal/market"
)

// Buffett 质量型价值筛选：高 ROE、低杠杆、厚利润率、
// 盈利与派息纪录、正自由现金流。
type Buffett struct {
	base
}

func NewBuffett() *Buffett {
	return &Buffett{base{name: "Buffett", category: decision.CategoryValue, llmTriggerRate: 0.18}}
}

func (p *Buffett) ScreenRule(snap market.Snapshot) decision.PersonaVote {
	criteria := []criterion{
		{"roe_above_15", snap.ROE > 15},
		{"debt_to_equity_below_0_5", snap.DebtToEquity >= 0 && snap.DebtToEquity < 0.5},
		{"net_margin_above_20", snap.NetMargin > 20},
		{"earnings_stability_10y", snap.YearsPositiveEarnings >= 10},
		{"positive_free_cash_flow", snap.FreeCashFlow.IsPositive()},
		{"dividend_record_5y", snap.YearsDividendsPaid >= 5},
		{"operating_margin_above_15", snap.OperatingMargin > 15},
	}

	met := metCount(criteria)
	switch {
	case met >= 6:
		return vote(p.base, decision.ActionBuy, 0.85, criteria, "durable franchise economics")
	case met >= 4:
		return vote(p.base, decision.ActionBuy, 0.55, criteria, "decent business quality")
	case met >= 2:
		return vote(p.base, decision.ActionHold, 0.4, criteria, "quality unproven")
	default:
		return vote(p.base, decision.ActionSell, 0.7, criteria, "economics too weak")
	}
}
