package market

// Candle 单日收盘观测。周期检测只依赖 close/volume。
// 序列约定：下标 0 为最近一天（most-recent-first）。
type Candle struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Closes 按序列原顺序提取收盘价。
func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}

// Volumes 按序列原顺序提取成交量。
func Volumes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Volume
	}
	return out
}

// Chronological 返回按时间正序（最旧在前）的副本，供 talib 类指标使用。
func Chronological(candles []Candle) []Candle {
	out := make([]Candle, len(candles))
	for i, c := range candles {
		out[len(candles)-1-i] = c
	}
	return out
}
