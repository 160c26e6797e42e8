package market

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSnapshot_Drawdown52W(t *testing.T) {
	s := Snapshot{
		Close:   decimal.NewFromInt(70000),
		High52W: decimal.NewFromInt(100000),
	}
	assert.InDelta(t, 0.3, s.Drawdown52W(), 1e-9)

	// at a new high the drawdown clamps to zero
	s.Close = decimal.NewFromInt(110000)
	assert.Equal(t, 0.0, s.Drawdown52W())

	s.High52W = decimal.Zero
	assert.Equal(t, 0.0, s.Drawdown52W())
}

func TestSnapshot_ReceivablesRatio(t *testing.T) {
	s := Snapshot{
		TotalAssets: decimal.NewFromInt(1000),
		Receivables: decimal.NewFromInt(250),
	}
	assert.InDelta(t, 0.25, s.ReceivablesRatio(), 1e-9)

	s.TotalAssets = decimal.Zero
	assert.Equal(t, 0.0, s.ReceivablesRatio())
}

func TestSnapshot_ATRPercent(t *testing.T) {
	s := Snapshot{
		Close: decimal.NewFromInt(50000),
		ATR14: 1500,
	}
	assert.InDelta(t, 3.0, s.ATRPercent(), 1e-9)

	s.Close = decimal.Zero
	assert.Equal(t, 0.0, s.ATRPercent())
}

func TestChronological(t *testing.T) {
	candles := []Candle{
		{Date: "2025-01-03", Close: 3},
		{Date: "2025-01-02", Close: 2},
		{Date: "2025-01-01", Close: 1},
	}
	chrono := Chronological(candles)
	assert.Equal(t, []float64{1, 2, 3}, Closes(chrono))
	// input order untouched
	assert.Equal(t, []float64{3, 2, 1}, Closes(candles))
}
