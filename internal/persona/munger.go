package persona

import (
	"strings"

	"roundtable/internal/decision"
	"roundtable/internal/market"
	"roundtable/internal/pkg/numutil"
)

// Munger 质量与常识清单：应收占比、ROE、能力圈、估值上限、
// 正利润率、低杠杆。确信度 = 通过数/6。
type Munger struct {
	base
}

func NewMunger() *Munger {
	return &Munger{base{name: "Munger", category: decision.CategoryValue, llmTriggerRate: 0.1}}
}

func (p *Munger) ScreenRule(snap market.Snapshot) decision.PersonaVote {
	sector := strings.TrimSpace(snap.Sector)
	criteria := []criterion{
		{"receivables_below_30pct_assets", snap.ReceivablesRatio() < 0.30 && !snap.TotalAssets.IsZero()},
		{"roe_above_15", snap.ROE > 15},
		{"known_sector", sector != "" && !strings.EqualFold(sector, "unknown")},
		{"reasonable_valuation", snap.PER > 0 && snap.PER < 25 && snap.PBR > 0 && snap.PBR < 3},
		{"positive_margins", snap.OperatingMargin > 0 && snap.NetMargin > 0},
		{"debt_to_equity_below_1", snap.DebtToEquity >= 0 && snap.DebtToEquity < 1},
	}

	met := metCount(criteria)
	conviction := numutil.Round4(float64(met) / 6)
	switch {
	case met == 6:
		return vote(p.base, decision.ActionBuy, conviction, criteria, "clean checklist")
	case met >= 4:
		return vote(p.base, decision.ActionHold, conviction, criteria, "good but not airtight")
	case met <= 1:
		return vote(p.base, decision.ActionSell, conviction, criteria, "too many red flags")
	default:
		return vote(p.base, decision.ActionHold, conviction, criteria, "insufficient quality evidence")
	}
}
