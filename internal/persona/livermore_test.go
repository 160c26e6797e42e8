package persona

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"roundtable/internal/decision"
)

func TestLivermore_TrendFullyConfirmed(t *testing.T) {
	snap := blueChipSnapshot() // volume 1.25x the 20d average, all six checks hold
	v := NewLivermore().ScreenRule(snap)
	assert.Equal(t, decision.ActionBuy, v.Action)
	assert.Equal(t, 1.0, v.Conviction)
	assert.True(t, v.CriteriaMet["above_sma200"])
	assert.True(t, v.CriteriaMet["volume_above_1_2x_avg"])
}

func TestLivermore_BrokenTrendOverride(t *testing.T) {
	snap := blueChipSnapshot()
	snap.Close = decimal.NewFromInt(55000) // below the 200d line
	snap.MACDSignal = -50
	snap.RSI14 = 75
	v := NewLivermore().ScreenRule(snap)
	assert.Equal(t, decision.ActionSell, v.Action)
	assert.Equal(t, 0.6, v.Conviction) // floor kicks in over 3/6
	assert.Contains(t, v.Reasoning, "trend broken while overbought")
}

func TestLivermore_PartialTrendHolds(t *testing.T) {
	snap := blueChipSnapshot()
	snap.MACDSignal = -10
	snap.Volume = 10_000_000 // below 1.2x average
	snap.ADX14 = 18
	v := NewLivermore().ScreenRule(snap)
	assert.Equal(t, decision.ActionHold, v.Action)
	assert.InDelta(t, 0.5, v.Conviction, 1e-9)
}

func TestLivermore_NoTrendSells(t *testing.T) {
	snap := blueChipSnapshot()
	snap.Close = decimal.NewFromInt(55000)
	snap.MACDSignal = -10
	snap.RSI14 = 30
	snap.Volume = 10_000_000
	snap.SMA20 = 56000
	snap.SMA50 = 58000
	snap.ADX14 = 12
	v := NewLivermore().ScreenRule(snap)
	assert.Equal(t, decision.ActionSell, v.Action)
	assert.Equal(t, 0.0, v.Conviction)
}
