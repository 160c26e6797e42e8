// Package cycle 实现索罗斯式 boom–bust 周期分类与反身性论点推导。
package cycle

import "github.com/shopspring/decimal"

// Stage 周期阶段，序号随周期成熟度递增。
// 序号参与失效触发选择与风险指标推导，不可重排。
type Stage int

const (
	StageInception Stage = iota
	StageAcceleration
	StageTesting
	StageEuphoria
	StageTwilight
	StageCollapse
)

var stageNames = [...]string{
	"INCEPTION",
	"ACCELERATION",
	"TESTING",
	"EUPHORIA",
	"TWILIGHT",
	"COLLAPSE",
}

func (s Stage) String() string {
	if s < StageInception || s > StageCollapse {
		return "UNKNOWN"
	}
	return stageNames[s]
}

// Ordinal 返回成熟度序号（INCEPTION=0 … COLLAPSE=5）。
func (s Stage) Ordinal() int { return int(s) }

// Late 是否处于周期尾段（EUPHORIA 及之后）。
func (s Stage) Late() bool { return s >= StageEuphoria }

// Entryable 是否属于可建仓阶段。
func (s Stage) Entryable() bool {
	return s == StageInception || s == StageAcceleration || s == StageTesting
}

// VolumePattern 量能形态。
type VolumePattern string

const (
	VolumeNormal    VolumePattern = "normal"
	VolumeElevated  VolumePattern = "elevated"
	VolumeClimactic VolumePattern = "climactic"
)

// Analysis 周期检测输出。
type Analysis struct {
	Stage         Stage
	TrendStrength decimal.Decimal // [0,1]
	Volatility    decimal.Decimal // [0,1]
	Momentum      int             // -1 / 0 / +1
	VolumePattern VolumePattern
}
