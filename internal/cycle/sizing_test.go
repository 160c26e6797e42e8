package cycle

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSizer_CapsAtMaxRisk(t *testing.T) {
	s := NewSizer(DefaultMaxRiskPct)
	portfolio := decimal.NewFromInt(1_000_000)

	// near-zero volatility hits the floor, kelly explodes, cap holds
	pos := s.Size(1.0, 0.001, portfolio)
	assert.True(t, pos.Equal(decimal.NewFromInt(20000)), "got %s", pos)
}

func TestSizer_KellyBelowCap(t *testing.T) {
	s := NewSizer(DefaultMaxRiskPct)
	portfolio := decimal.NewFromInt(1_000_000)

	// kelly = 0.05 / (0.5*10) = 0.01
	pos := s.Size(0.05, 0.5, portfolio)
	assert.True(t, pos.Equal(decimal.NewFromInt(10000)), "got %s", pos)
}

func TestSizer_DegenerateInputs(t *testing.T) {
	s := NewSizer(DefaultMaxRiskPct)

	assert.True(t, s.Size(0.5, 0.2, decimal.Zero).IsZero())
	assert.True(t, s.Size(0.5, 0.2, decimal.NewFromInt(-100)).IsZero())
	assert.True(t, s.Size(-0.5, 0.2, decimal.NewFromInt(1000)).IsZero())
}

func TestSizer_InvalidMaxRiskFallsBack(t *testing.T) {
	s := NewSizer(-1)
	pos := s.Size(1.0, 0.001, decimal.NewFromInt(1_000_000))
	assert.True(t, pos.Equal(decimal.NewFromInt(20000)))
}

func TestSizer_RoundsToWholeCurrencyUnits(t *testing.T) {
	s := NewSizer(DefaultMaxRiskPct)
	// kelly = 0.3/(0.9*10) = 0.033... capped at 0.02 -> 20.0 over 999
	pos := s.Size(0.3, 0.9, decimal.NewFromInt(999))
	assert.Equal(t, int32(0), pos.Exponent())
}
