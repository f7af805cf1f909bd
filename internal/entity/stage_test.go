package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStage(t *testing.T) {
	stage, err := ParseStage("Negotiation")
	assert.NoError(t, err)
	assert.Equal(t, StageNegotiation, stage)

	_, err = ParseStage("Closed-Maybe")
	assert.ErrorIs(t, err, ErrInvalidStage)
}

func TestStageTransitions(t *testing.T) {
	cases := []struct {
		from Stage
		to   Stage
		ok   bool
	}{
		{StageNewLead, StageNegotiation, true},
		{StageNewLead, StageWon, true},
		{StageNewLead, StageLost, true},
		{StageNegotiation, StageNewLead, true},
		{StageNegotiation, StageWon, true},
		{StageWon, StageNegotiation, true},
		{StageLost, StageNegotiation, true},
		{StageWon, StageNewLead, false},
		{StageLost, StageWon, false},
		{StageNewLead, StageConverted, false},
		{StageConverted, StageNegotiation, false},
		{StageConverted, StageNewLead, false},
	}

	for _, tc := range cases {
		err := tc.from.CanTransitionTo(tc.to)
		if tc.ok {
			assert.NoError(t, err, "%s -> %s should be allowed", tc.from, tc.to)
		} else {
			assert.Error(t, err, "%s -> %s should be rejected", tc.from, tc.to)
		}
	}
}

func TestStageConvertedIsTerminal(t *testing.T) {
	assert.True(t, StageConverted.Terminal())
	assert.False(t, StageNegotiation.Terminal())
}
