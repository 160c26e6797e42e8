// Package indicator 用 talib 从日线序列计算快照所需的固定技术指标集。
// 输入为时间正序（最旧在前）的蜡烛序列；行情采集方若已给出指标则不会走到这里。
package indicator

import (
	"fmt"
	"math"

	"github.com/markcheno/go-talib"

	"roundtable/internal/market"
)

// Technicals 与 market.Snapshot 的技术指标块一一对应。
type Technicals struct {
	SMA20         float64
	SMA50         float64
	SMA200        float64
	RSI14         float64
	MACDSignal    float64
	BollingerPctB float64
	ADX14         float64
	ATR14         float64
	AvgVolume20D  float64
}

// Compute 计算最新一根蜡烛对应的指标值。序列必须按时间正序。
// 数据不足以覆盖某个周期时，该指标保持零值并计入 warnings。
func Compute(candles []market.Candle) (Technicals, []string, error) {
	var t Technicals
	if len(candles) == 0 {
		return t, nil, fmt.Errorf("no candles")
	}
	n := len(candles)
	closes := make([]float64, n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	volumes := make([]float64, n)
	for i, c := range candles {
		closes[i] = c.Close
		highs[i] = c.High
		lows[i] = c.Low
		volumes[i] = c.Volume
	}

	var warnings []string
	warn := func(name string, need int) {
		warnings = append(warnings, fmt.Sprintf("%s: need %d candles, have %d", name, need, n))
	}

	if n >= 20 {
		t.SMA20 = lastValid(talib.Sma(closes, 20))
	} else {
		warn("sma20", 20)
	}
	if n >= 50 {
		t.SMA50 = lastValid(talib.Sma(closes, 50))
	} else {
		warn("sma50", 50)
	}
	if n >= 200 {
		t.SMA200 = lastValid(talib.Sma(closes, 200))
	} else {
		warn("sma200", 200)
	}

	if n >= 15 {
		t.RSI14 = lastValid(talib.Rsi(closes, 14))
	} else {
		warn("rsi14", 15)
	}

	if n >= 35 {
		_, signal, _ := talib.Macd(closes, 12, 26, 9)
		t.MACDSignal = lastValid(signal)
	} else {
		warn("macd", 35)
	}

	if n >= 20 {
		upper, _, lower := talib.BBands(closes, 20, 2, 2, talib.SMA)
		u := lastValid(upper)
		l := lastValid(lower)
		if u > l {
			t.BollingerPctB = (closes[n-1] - l) / (u - l)
		}
	}

	if n >= 28 {
		t.ADX14 = lastValid(talib.Adx(highs, lows, closes, 14))
	} else {
		warn("adx14", 28)
	}
	if n >= 15 {
		t.ATR14 = lastValid(talib.Atr(highs, lows, closes, 14))
	} else {
		warn("atr14", 15)
	}

	window := 20
	if n < window {
		window = n
	}
	sum := 0.0
	for _, v := range volumes[n-window:] {
		sum += v
	}
	t.AvgVolume20D = sum / float64(window)

	return t, warnings, nil
}

// Apply 把计算结果写入快照副本并返回。仅覆盖零值字段，
// 已由上游给出的指标保持原样。
func Apply(snap market.Snapshot, t Technicals) market.Snapshot {
	if snap.SMA20 == 0 {
		snap.SMA20 = t.SMA20
	}
	if snap.SMA50 == 0 {
		snap.SMA50 = t.SMA50
	}
	if snap.SMA200 == 0 {
		snap.SMA200 = t.SMA200
	}
	if snap.RSI14 == 0 {
		snap.RSI14 = t.RSI14
	}
	if snap.MACDSignal == 0 {
		snap.MACDSignal = t.MACDSignal
	}
	if snap.BollingerPctB == 0 {
		snap.BollingerPctB = t.BollingerPctB
	}
	if snap.ADX14 == 0 {
		snap.ADX14 = t.ADX14
	}
	if snap.ATR14 == 0 {
		snap.ATR14 = t.ATR14
	}
	if snap.AvgVolume20D == 0 {
		snap.AvgVolume20D = t.AvgVolume20D
	}
	return snap
}

// lastValid 返回序列末端最后一个有效值（talib 暖机段在序列头部，末端即最新值）。
func lastValid(series []float64) float64 {
	for i := len(series) - 1; i >= 0; i-- {
		v := series[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		return v
	}
	return 0
}
