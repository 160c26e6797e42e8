package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func screeningVote(name string, action Action, conviction float64, cat Category) PersonaVote {
	return PersonaVote{
		PersonaName: name,
		Action:      action,
		Conviction:  conviction,
		Reasoning:   "test",
		CriteriaMet: map[string]bool{},
		Category:    cat,
	}
}

func TestAggregator_Counts(t *testing.T) {
	agg := NewAggregator(nil)
	votes := []PersonaVote{
		screeningVote("Graham", ActionBuy, 0.9, CategoryValue),
		screeningVote("Lynch", ActionBuy, 0.8, CategoryGrowth),
		screeningVote("Livermore", ActionSell, 0.6, CategoryMomentum),
		screeningVote("Dalio", ActionHold, 0.35, CategoryMacro),
		screeningVote("Soros", ActionAbstain, 0.0, CategoryMacro),
	}
	res := agg.Aggregate("005930", votes, nil)

	assert.Equal(t, "005930", res.Symbol)
	assert.Equal(t, 2, res.BuyCount)
	assert.Equal(t, 1, res.SellCount)
	assert.Equal(t, 1, res.HoldCount)
	assert.Equal(t, 1, res.AbstainCount)
	// abstain excluded: (0.9+0.8+0.6+0.35)/4
	assert.InDelta(t, 0.6625, res.AvgConviction, 1e-9)
	assert.Equal(t, 2, res.CategoryDiversity)
	assert.False(t, res.PassesThreshold)
}

func TestAggregator_DefaultPolicyPasses(t *testing.T) {
	agg := NewAggregator(DefaultPolicy())
	votes := []PersonaVote{
		screeningVote("Graham", ActionBuy, 0.9, CategoryValue),
		screeningVote("Buffett", ActionBuy, 0.85, CategoryValue),
		screeningVote("Lynch", ActionBuy, 0.8, CategoryGrowth),
		screeningVote("Livermore", ActionBuy, 0.7, CategoryMomentum),
		screeningVote("Dalio", ActionBuy, 0.8, CategoryMacro),
	}
	res := agg.Aggregate("005930", votes, nil)

	assert.Equal(t, 5, res.BuyCount)
	assert.Equal(t, 4, res.CategoryDiversity)
	assert.True(t, res.PassesThreshold)
}

func TestAggregator_DiversityCountsBuyVotesOnly(t *testing.T) {
	agg := NewAggregator(DefaultPolicy())
	votes := []PersonaVote{
		screeningVote("Graham", ActionBuy, 0.9, CategoryValue),
		screeningVote("Buffett", ActionBuy, 0.85, CategoryValue),
		screeningVote("Lynch", ActionSell, 0.8, CategoryGrowth),
		screeningVote("Livermore", ActionHold, 0.7, CategoryMomentum),
	}
	res := agg.Aggregate("005930", votes, nil)
	assert.Equal(t, 1, res.CategoryDiversity)
}

func TestAggregator_AllAbstain(t *testing.T) {
	agg := NewAggregator(DefaultPolicy())
	votes := []PersonaVote{
		screeningVote("Graham", ActionAbstain, 0.0, CategoryValue),
		screeningVote("Soros", ActionAbstain, 0.0, CategoryMacro),
	}
	res := agg.Aggregate("005930", votes, nil)
	assert.Equal(t, 0.0, res.AvgConviction)
	assert.False(t, res.PassesThreshold)
}

func TestAggregator_AdvisoryPassthrough(t *testing.T) {
	agg := NewAggregator(DefaultPolicy())
	adv := &AdvisoryVote{
		PersonaName:     "Wood",
		Action:          ActionAdvisory,
		InnovationScore: 0.7,
		Category:        CategoryInnovation,
	}
	res := agg.Aggregate("005930", nil, adv)
	assert.Same(t, adv, res.AdvisoryVote)
	assert.Equal(t, 0, res.BuyCount)
}

type vetoPolicy struct{}

func (vetoPolicy) Name() string                  { return "veto" }
func (vetoPolicy) Passes(int, float64, int) bool { return false }

func TestAggregator_PolicyInjection(t *testing.T) {
	agg := NewAggregator(vetoPolicy{})
	votes := []PersonaVote{
		screeningVote("Graham", ActionBuy, 0.9, CategoryValue),
		screeningVote("Buffett", ActionBuy, 0.9, CategoryValue),
		screeningVote("Lynch", ActionBuy, 0.9, CategoryGrowth),
		screeningVote("Livermore", ActionBuy, 0.9, CategoryMomentum),
		screeningVote("Dalio", ActionBuy, 0.9, CategoryMacro),
	}
	res := agg.Aggregate("005930", votes, nil)
	assert.False(t, res.PassesThreshold)
}

func TestCountPolicy_Boundaries(t *testing.T) {
	p := DefaultPolicy()
	assert.True(t, p.Passes(5, 0.5, 3))
	assert.False(t, p.Passes(4, 0.9, 5))
	assert.False(t, p.Passes(5, 0.49, 5))
	assert.False(t, p.Passes(5, 0.9, 2))
}
