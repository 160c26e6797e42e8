package persona

import (
	"github.com/shopspring/decimal"

	"roundtable/internal/cycle"
	"roundtable/internal/decision"
	"roundtable/internal/market"
)

// Soros 反身性筛选。唯一依赖周期检测与论点推导的 persona：
// 先从历史序列分类周期阶段，再在论点的量化指标上打分。
// 取数失败由 detector 降级成 INCEPTION，本层不再处理。
type Soros struct {
	base
	detector *cycle.Detector
	builder  *cycle.Builder
	history  cycle.HistoryProvider
}

func NewSoros(detector *cycle.Detector, builder *cycle.Builder, history cycle.HistoryProvider) *Soros {
	return &Soros{
		base:     base{name: "Soros", category: decision.CategoryMacro, llmTriggerRate: 0.22},
		detector: detector,
		builder:  builder,
		history:  history,
	}
}

var (
	decAsymmetryBar  = decimal.NewFromInt(3)
	decConvictionBar = decimal.NewFromFloat(0.5)
	decFeedbackBar   = decimal.NewFromFloat(0.3)
)

func (p *Soros) ScreenRule(snap market.Snapshot) decision.PersonaVote {
	analysis := p.detector.DetectSymbol(snap.Symbol, p.history)
	thesis := p.builder.Build(snap.Symbol, analysis, snap.Close, decimal.Zero)

	scored := []criterion{
		{"entry_stage", analysis.Stage == cycle.StageInception || analysis.Stage == cycle.StageAcceleration},
		{"perception_gap_positive", thesis.PerceptionRealityGap.IsPositive()},
		{"asymmetry_at_least_3", thesis.AsymmetryRatio.GreaterThanOrEqual(decAsymmetryBar)},
		{"conviction_at_least_0_5", thesis.Conviction.GreaterThanOrEqual(decConvictionBar)},
		{"feedback_above_0_3", thesis.FeedbackStrength.GreaterThan(decFeedbackBar)},
	}
	met := metCount(scored)

	// testing_stage 仅作参考信息，不计分
	all := append(append([]criterion{}, scored...), criterion{"testing_stage", analysis.Stage == cycle.StageTesting})
	detail := "cycle stage " + analysis.Stage.String()

	switch {
	case met == 5:
		return vote(p.base, decision.ActionBuy, 0.85, all, detail)
	case met >= 3:
		return vote(p.base, decision.ActionBuy, 0.55, all, detail)
	case met == 2:
		return vote(p.base, decision.ActionHold, 0.35, all, detail)
	case analysis.Stage.Late():
		return vote(p.base, decision.ActionSell, 0.75, all, detail)
	default:
		return vote(p.base, decision.ActionAbstain, 0.2, all, detail)
	}
}
