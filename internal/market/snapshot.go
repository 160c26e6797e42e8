package market

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot 是单只标的在某一时刻的全量行情/财务快照。
// 由行情采集方构建后不再修改；同一 symbol 的新快照整体替换旧快照。
// 约定：货币类字段一律用 decimal 精确表示，比率与技术指标用 float64，
// 百分比类字段（ROE、利润率、增长率、股息率）以百分数计（ROE=15 表示 15%）。
type Snapshot struct {
	// identity
	Symbol string
	Name   string
	Market string // e.g. "KOSPI", "KOSDAQ"
	Sector string

	// quote
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	PrevClose decimal.Decimal
	Volume    int64

	// valuation
	PER           float64
	PBR           float64
	DividendYield float64
	ROE           float64
	EPS           decimal.Decimal

	// financial health
	CurrentRatio    float64
	DebtToEquity    float64
	OperatingMargin float64
	NetMargin       float64
	FreeCashFlow    decimal.Decimal

	// growth (% YoY / 3yr CAGR)
	RevenueGrowthYoY  float64
	EarningsGrowthYoY float64
	RevenueGrowth3Y   float64
	EarningsGrowth3Y  float64

	// technicals (pre-computed; see analysis/indicator)
	SMA20         float64
	SMA50         float64
	SMA200        float64
	RSI14         float64
	MACDSignal    float64
	BollingerPctB float64
	ADX14         float64
	ATR14         float64
	AvgVolume20D  float64

	// balance-sheet aggregates
	MarketCap        decimal.Decimal
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	Receivables      decimal.Decimal

	// 52w range and track record
	High52W               decimal.Decimal
	Low52W                decimal.Decimal
	YearsPositiveEarnings int
	YearsDividendsPaid    int

	// market context
	IndexLevel      float64
	MarketPER       float64
	Sentiment       float64 // [-1,1], supplied by the sentiment collaborator
	VolatilityIndex float64 // VKOSPI

	CapturedAt time.Time
}

// PriceF 返回收盘价的 float64 近似值，供指标类比较使用。
func (s Snapshot) PriceF() float64 {
	f, _ := s.Close.Float64()
	return f
}

// Drawdown52W returns the fractional drawdown from the 52-week high
// (0.3 = 30% below the high). Zero when the high is unset.
func (s Snapshot) Drawdown52W() float64 {
	if s.High52W.IsZero() {
		return 0
	}
	dd, _ := s.High52W.Sub(s.Close).Div(s.High52W).Float64()
	if dd < 0 {
		return 0
	}
	return dd
}

// ReceivablesRatio 应收账款占总资产比例，总资产为零时返回 0。
func (s Snapshot) ReceivablesRatio() float64 {
	if s.TotalAssets.IsZero() {
		return 0
	}
	r, _ := s.Receivables.Div(s.TotalAssets).Float64()
	return r
}

// ATRPercent ATR 相对价格的百分比，价格为零时返回 0。
func (s Snapshot) ATRPercent() float64 {
	p := s.PriceF()
	if p == 0 {
		return 0
	}
	return s.ATR14 / p * 100
}
