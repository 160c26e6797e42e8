package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVote(t *testing.T) {
	good := screeningVote("Graham", ActionBuy, 0.9, CategoryValue)
	assert.NoError(t, ValidateVote(good))

	v := good
	v.PersonaName = ""
	assert.Error(t, ValidateVote(v))

	v = good
	v.Action = ActionAdvisory
	assert.Error(t, ValidateVote(v))

	v = good
	v.Conviction = 1.2
	assert.Error(t, ValidateVote(v))

	v = good
	v.Conviction = -0.1
	assert.Error(t, ValidateVote(v))

	v = good
	v.CriteriaMet = nil
	assert.Error(t, ValidateVote(v))

	v = good
	v.Category = ""
	assert.Error(t, ValidateVote(v))
}

func TestValidateAdvisory(t *testing.T) {
	good := AdvisoryVote{
		PersonaName:     "Wood",
		Action:          ActionAdvisory,
		InnovationScore: 0.5,
		Category:        CategoryInnovation,
	}
	assert.NoError(t, ValidateAdvisory(good))

	v := good
	v.Action = ActionBuy
	assert.Error(t, ValidateAdvisory(v))

	v = good
	v.InnovationScore = 1.1
	assert.Error(t, ValidateAdvisory(v))
}

func TestNormalizeAction(t *testing.T) {
	assert.Equal(t, ActionBuy, NormalizeAction(" buy "))
	assert.Equal(t, ActionBuy, NormalizeAction("LONG"))
	assert.Equal(t, ActionBuy, NormalizeAction("매수"))
	assert.Equal(t, ActionSell, NormalizeAction("short"))
	assert.Equal(t, ActionSell, NormalizeAction("매도"))
	assert.Equal(t, ActionHold, NormalizeAction("wait"))
	assert.Equal(t, ActionHold, NormalizeAction("보유"))
	assert.Equal(t, ActionAbstain, NormalizeAction("기권"))
	assert.Equal(t, Action(""), NormalizeAction("yolo"))
}

func TestScreeningAction(t *testing.T) {
	assert.True(t, ScreeningAction(ActionBuy))
	assert.True(t, ScreeningAction(ActionAbstain))
	assert.False(t, ScreeningAction(ActionAdvisory))
	assert.False(t, ScreeningAction(Action("")))
}
