package persona

import (
	"github.com/shopspring/decimal"

	"roundtable/internal/decision"
	"roundtable/internal/market"
)

// Graham 防御型价值筛选：规模、流动性与杠杆、十年盈利稳定、
// 二十年派息、盈利增长、P/E 与 P/B 上限。
type Graham struct {
	base
	// 「足够规模」的市值下限。KOSPI 中盘起步线，待产品校准。
	minMarketCap decimal.Decimal
}

func NewGraham() *Graham {
	return &Graham{
		base:         base{name: "Graham", category: decision.CategoryValue, llmTriggerRate: 0.15},
		minMarketCap: decimal.New(5, 11), // 5000억 KRW
	}
}

func (p *Graham) ScreenRule(snap market.Snapshot) decision.PersonaVote {
	criteria := []criterion{
		{"adequate_size", snap.MarketCap.GreaterThanOrEqual(p.minMarketCap)},
		{"liquidity_and_leverage", snap.CurrentRatio >= 2.0 && snap.DebtToEquity < 1.0},
		{"earnings_stability_10y", snap.YearsPositiveEarnings >= 10},
		{"dividend_record_20y", snap.YearsDividendsPaid >= 20},
		{"earnings_growth", snap.EarningsGrowth3Y > 0},
		{"pe_at_most_15", snap.PER > 0 && snap.PER <= 15},
		{"pb_at_most_1_5", snap.PBR > 0 && snap.PBR <= 1.5},
	}

	met := metCount(criteria)
	switch {
	case met == 7:
		return vote(p.base, decision.ActionBuy, 0.9, criteria, "full defensive checklist")
	case met >= 5:
		return vote(p.base, decision.ActionBuy, 0.6, criteria, "most defensive checks hold")
	case met >= 3:
		return vote(p.base, decision.ActionHold, 0.4, criteria, "mixed defensive profile")
	default:
		return vote(p.base, decision.ActionSell, 0.7, criteria, "fails the defensive screen")
	}
}
