package cycle

import (
	"github.com/shopspring/decimal"
)

// Thesis 反身性论点：叙事 + 量化指标 + 失效触发。
type Thesis struct {
	Symbol string

	Perception   string
	Reality      string
	FeedbackLoop string
	Prediction   string

	PerceptionRealityGap decimal.Decimal // 4dp
	FeedbackStrength     decimal.Decimal // 4dp
	CycleStage           Stage
	PotentialUpside      decimal.Decimal // money, 2dp
	PotentialDownside    decimal.Decimal // money, 2dp
	AsymmetryRatio       decimal.Decimal // 2dp; 零波动时固定 10.0
	Conviction           decimal.Decimal // 4dp

	InvalidationTriggers []string
	RecommendedPosition  decimal.Decimal // money, 整数货币单位
}

var (
	decThree = decimal.NewFromInt(3)
	decHalf  = decimal.NewFromFloat(0.5)
	decTen   = decimal.NewFromInt(10)
)

// IsValidEntry 派生判定：阶段处于建仓窗口、赔率 ≥3、确信度 ≥0.5。
func (t Thesis) IsValidEntry() bool {
	return t.CycleStage.Entryable() &&
		t.AsymmetryRatio.GreaterThanOrEqual(decThree) &&
		t.Conviction.GreaterThanOrEqual(decHalf)
}

// Builder 由 Analysis 推导 Thesis。叙事模板可替换，数值推导始终走规则。
type Builder struct {
	narratives NarrativeTable
	sizer      *Sizer
}

func NewBuilder() *Builder {
	return &Builder{narratives: DefaultNarratives(), sizer: NewSizer(DefaultMaxRiskPct)}
}

// WithNarratives 替换叙事模板表（外部 LLM 叙事方使用）。
func (b *Builder) WithNarratives(t NarrativeTable) *Builder {
	b.narratives = t
	return b
}

// WithSizer 替换仓位推导器。
func (b *Builder) WithSizer(s *Sizer) *Builder {
	b.sizer = s
	return b
}

// Build 纯推导，不访问外部数据。
func (b *Builder) Build(symbol string, a Analysis, currentPrice, portfolioValue decimal.Decimal) Thesis {
	n := b.narratives.For(a.Stage)
	ord := decimal.NewFromInt(int64(a.Stage.Ordinal()))

	conviction := clamp01Dec(a.TrendStrength.Add(decimal.NewFromFloat(0.1).Mul(decimal.NewFromInt(int64(signInt(a.Momentum)))))).Round(4)

	// asymmetry = conviction*2 / (volatility * (1 + ordinal*0.2))
	// 分母为零（零波动）时不做除法，显式给 10.0。
	denom := a.Volatility.Mul(decimal.NewFromInt(1).Add(ord.Mul(decimal.NewFromFloat(0.2))))
	var asymmetry decimal.Decimal
	if denom.IsZero() {
		asymmetry = decTen
	} else {
		asymmetry = conviction.Mul(decimal.NewFromInt(2)).Div(denom).Round(2)
		if asymmetry.IsNegative() {
			asymmetry = decimal.Zero
		}
	}

	gap := a.TrendStrength.Mul(ord.Div(decimal.NewFromInt(5))).Round(4)

	thesis := Thesis{
		Symbol:               symbol,
		Perception:           n.Perception,
		Reality:              n.Reality,
		FeedbackLoop:         n.FeedbackLoop,
		Prediction:           n.Prediction,
		PerceptionRealityGap: gap,
		FeedbackStrength:     a.TrendStrength.Round(4),
		CycleStage:           a.Stage,
		PotentialUpside:      currentPrice.Mul(conviction).Mul(decimal.NewFromInt(2)).Round(2),
		PotentialDownside:    currentPrice.Mul(a.Volatility).Round(2),
		AsymmetryRatio:       asymmetry,
		Conviction:           conviction,
		InvalidationTriggers: n.Triggers,
	}
	if b.sizer != nil && portfolioValue.IsPositive() {
		convF, _ := conviction.Float64()
		volF, _ := a.Volatility.Float64()
		thesis.RecommendedPosition = b.sizer.Size(convF, volF, portfolioValue)
	}
	return thesis
}

func clamp01Dec(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	one := decimal.NewFromInt(1)
	if v.GreaterThan(one) {
		return one
	}
	return v
}

func signInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
