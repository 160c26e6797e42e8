package cycle

import "github.com/shopspring/decimal"

// DefaultMaxRiskPct 单笔仓位占组合的默认上限。
const DefaultMaxRiskPct = 0.02

// 波动率下限，避免除零导致的无界仓位。
const volatilityFloor = 0.01

// Sizer Kelly 式仓位推导：确信度越高仓位越大，波动越大仓位越小，
// 恒不超过 portfolio × maxRiskPct。
type Sizer struct {
	maxRiskPct float64
}

func NewSizer(maxRiskPct float64) *Sizer {
	if maxRiskPct <= 0 {
		maxRiskPct = DefaultMaxRiskPct
	}
	return &Sizer{maxRiskPct: maxRiskPct}
}

// Size 返回整数货币单位的建议仓位。
func (s *Sizer) Size(conviction, volatility float64, portfolioValue decimal.Decimal) decimal.Decimal {
	if portfolioValue.IsZero() || portfolioValue.IsNegative() {
		return decimal.Zero
	}
	if conviction < 0 {
		conviction = 0
	}
	if volatility < volatilityFloor {
		volatility = volatilityFloor
	}
	kelly := conviction / (volatility * 10)
	fraction := kelly
	if fraction > s.maxRiskPct {
		fraction = s.maxRiskPct
	}
	return portfolioValue.Mul(decimal.NewFromFloat(fraction)).Round(0)
}
