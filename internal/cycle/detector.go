package cycle

import (
	"math"

	"github.com/shopspring/decimal"

	"roundtable/internal/logger"
	"roundtable/internal/market"
	"roundtable/internal/pkg/numutil"
)

// 最少观测数，不足时退回保守默认（INCEPTION）。
const minObservations = 20

// HistoryProvider 由行情采集方实现：返回 most-recent-first 的日线序列。
type HistoryProvider interface {
	History(symbol string) ([]market.Candle, error)
}

// Detector 从日线序列推导周期阶段。无状态，可并发使用。
type Detector struct{}

func NewDetector() *Detector { return &Detector{} }

// DetectSymbol 取数失败时不向上抛错，记日志并返回保守默认。
func (d *Detector) DetectSymbol(symbol string, hp HistoryProvider) Analysis {
	if hp == nil {
		logger.Warnf("cycle: no history provider, defaulting %s to INCEPTION", symbol)
		return conservativeDefault()
	}
	history, err := hp.History(symbol)
	if err != nil {
		logger.Warnf("cycle: history fetch failed for %s: %v", symbol, err)
		return conservativeDefault()
	}
	return d.Detect(history)
}

// Detect 对 most-recent-first 序列分类。
//
// 注意 trend_strength = (oldest − newest)/oldest，价格下跌时为正，
// 与“趋势强度=上行动能”的直觉相反。下游阈值均按此方向校准，
// TODO: 与产品确认符号方向后统一翻转（连同 classify 的阈值）。
func (d *Detector) Detect(history []market.Candle) Analysis {
	if len(history) < minObservations {
		return conservativeDefault()
	}

	closes := market.Closes(history)
	oldest := closes[len(closes)-1]
	newest := closes[0]

	trend := 0.0
	if oldest != 0 {
		trend = numutil.Clamp01((oldest - newest) / oldest)
	}

	vol := numutil.Clamp01(meanAbsReturn(closes) * 10)
	mom := momentum(closes)
	pattern := volumePattern(market.Volumes(history))

	return Analysis{
		Stage:         classify(trend, vol, mom, pattern),
		TrendStrength: decimal.NewFromFloat(trend).Round(4),
		Volatility:    decimal.NewFromFloat(vol).Round(4),
		Momentum:      mom,
		VolumePattern: pattern,
	}
}

// meanAbsReturn 相邻收盘价的平均绝对日收益率。
func meanAbsReturn(closes []float64) float64 {
	sum := 0.0
	count := 0
	for i := 0; i+1 < len(closes); i++ {
		prev := closes[i+1]
		if prev == 0 {
			continue
		}
		sum += math.Abs((closes[i] - prev) / prev)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// momentum 比较最近 10 日收益与其前 10 日收益的符号，不足 20 点记 0。
func momentum(closes []float64) int {
	if len(closes) < 20 {
		return 0
	}
	recent := windowReturn(closes[0], closes[9])
	prior := windowReturn(closes[10], closes[19])
	return numutil.Sign(recent - prior)
}

func windowReturn(newer, older float64) float64 {
	if older == 0 {
		return 0
	}
	return (newer - older) / older
}

// volumePattern 尾部 5 日均量相对全窗口均量：>2x climactic，>1.5x elevated。
func volumePattern(volumes []float64) VolumePattern {
	if len(volumes) == 0 {
		return VolumeNormal
	}
	total := 0.0
	for _, v := range volumes {
		total += v
	}
	full := total / float64(len(volumes))
	if full == 0 {
		return VolumeNormal
	}
	window := 5
	if len(volumes) < window {
		window = len(volumes)
	}
	recent := 0.0
	for _, v := range volumes[:window] {
		recent += v
	}
	recent /= float64(window)
	switch {
	case recent > 2*full:
		return VolumeClimactic
	case recent > 1.5*full:
		return VolumeElevated
	default:
		return VolumeNormal
	}
}

// classify 按固定顺序首个命中的规则定阶段。
func classify(trend, vol float64, mom int, pattern VolumePattern) Stage {
	switch {
	case trend < 0.3:
		return StageInception
	case trend < 0.6 && mom > 0:
		return StageAcceleration
	case trend >= 0.6 && vol > 0.5:
		return StageTesting
	case trend >= 0.8 && pattern == VolumeClimactic:
		return StageEuphoria
	case trend >= 0.6 && mom < 0:
		return StageTwilight
	default:
		return StageCollapse
	}
}

func conservativeDefault() Analysis {
	return Analysis{
		Stage:         StageInception,
		TrendStrength: decimal.Zero,
		Volatility:    decimal.Zero,
		Momentum:      0,
		VolumePattern: VolumeNormal,
	}
}
