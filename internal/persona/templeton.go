package persona

import (
	"roundtable/internal/decision"
	"roundtable/internal/market"
	"roundtable/internal/pkg/numutil"
)

// Templeton 逆向价值：深度回撤、极低估值、仍在盈利、
// 悲观情绪确认、有股息托底。确信度 = 通过数/6。
type Templeton struct {
	base
}

func NewTempleton() *Templeton {
	return &Templeton{base{name: "Templeton", category: decision.CategoryValue, llmTriggerRate: 0.14}}
}

func (p *Templeton) ScreenRule(snap market.Snapshot) decision.PersonaVote {
	drawdown := snap.Drawdown52W()
	deepDrawdown := drawdown >= 0.30
	stillEarning := snap.EPS.IsPositive()

	criteria := []criterion{
		{"drawdown_at_least_30pct", deepDrawdown},
		{"pe_below_10", snap.PER > 0 && snap.PER < 10},
		{"pb_below_1", snap.PBR > 0 && snap.PBR < 1},
		{"positive_eps", stillEarning},
		// 深度回撤且仍在盈利，即「最大悲观点」信号
		{"pessimism_with_earnings", deepDrawdown && stillEarning},
		{"dividend_yield_above_2", snap.DividendYield > 2},
	}

	met := metCount(criteria)
	conviction := numutil.Round4(float64(met) / 6)
	switch {
	case met == 6:
		return vote(p.base, decision.ActionBuy, conviction, criteria, "maximum pessimism entry")
	case met >= 4:
		return vote(p.base, decision.ActionHold, conviction, criteria, "contrarian case forming")
	case met <= 1:
		return vote(p.base, decision.ActionSell, conviction, criteria, "no contrarian edge")
	default:
		return vote(p.base, decision.ActionHold, conviction, criteria, "pessimism not yet extreme")
	}
}
