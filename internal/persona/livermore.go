package persona

import (
	"roundtable/internal/decision"
	"roundtable/internal/market"
	"roundtable/internal/pkg/numutil"
)

// Livermore 趋势跟随：价格在长期均线上方、MACD 转正、RSI 健康区间、
// 放量、均线多头排列、趋势强度确认。确信度 = 通过数/6，
// 另有趋势破位的强制 SELL 覆盖。
type Livermore struct {
	base
}

func NewLivermore() *Livermore {
	return &Livermore{base{name: "Livermore", category: decision.CategoryMomentum, llmTriggerRate: 0.16}}
}

func (p *Livermore) ScreenRule(snap market.Snapshot) decision.PersonaVote {
	price := snap.PriceF()
	aboveSMA200 := snap.SMA200 > 0 && price > snap.SMA200
	macdPositive := snap.MACDSignal > 0

	criteria := []criterion{
		{"above_sma200", aboveSMA200},
		{"macd_signal_positive", macdPositive},
		{"rsi_40_to_70", snap.RSI14 >= 40 && snap.RSI14 <= 70},
		{"volume_above_1_2x_avg", snap.AvgVolume20D > 0 && float64(snap.Volume) > 1.2*snap.AvgVolume20D},
		{"sma20_above_sma50", snap.SMA20 > snap.SMA50 && snap.SMA50 > 0},
		{"adx_above_25", snap.ADX14 > 25},
	}

	met := metCount(criteria)
	conviction := numutil.Round4(float64(met) / 6)

	// 趋势破位覆盖：长期趋势与动能双失守、还处在超买区，直接离场。
	if !aboveSMA200 && !macdPositive && snap.RSI14 > 70 {
		if conviction < 0.6 {
			conviction = 0.6
		}
		return vote(p.base, decision.ActionSell, conviction, criteria, "trend broken while overbought")
	}

	switch {
	case met >= 5:
		return vote(p.base, decision.ActionBuy, conviction, criteria, "trend fully confirmed")
	case met >= 3:
		return vote(p.base, decision.ActionHold, conviction, criteria, "trend only partially confirmed")
	case met <= 1:
		return vote(p.base, decision.ActionSell, conviction, criteria, "no trend to follow")
	default:
		return vote(p.base, decision.ActionHold, conviction, criteria, "waiting for trend evidence")
	}
}
