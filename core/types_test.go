package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gametree/core"
)

func TestNewPlayer_Validation(t *testing.T) {
	p, err := core.NewPlayer(3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.ID)
	assert.Equal(t, "Player_3", p.Name)
	assert.Equal(t, "J3", p.Label())

	_, err = core.NewPlayer(0)
	assert.ErrorIs(t, err, core.ErrBadID)
	assert.ErrorIs(t, err, core.ErrValidation)

	_, err = core.NewPlayer(-7)
	assert.ErrorIs(t, err, core.ErrBadID)
}

func TestNewRound_Validation(t *testing.T) {
	r, err := core.NewRound(2)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Number)
	assert.False(t, r.Configured(), "fresh round has no active player")

	_, err = core.NewRound(0)
	assert.ErrorIs(t, err, core.ErrBadID)
}

func TestNewScenario_Validation(t *testing.T) {
	root, err := core.NewScenario(0, 0, core.Decision, "X0")
	require.NoError(t, err)
	assert.False(t, root.IsTerminal())
	assert.Empty(t, root.Outgoing)

	term, err := core.NewScenario(3, 2, core.Terminal, "Z1")
	require.NoError(t, err)
	assert.True(t, term.IsTerminal())

	_, err = core.NewScenario(-1, 0, core.Decision, "X?")
	assert.ErrorIs(t, err, core.ErrBadID)

	_, err = core.NewScenario(1, -1, core.Decision, "X1")
	assert.ErrorIs(t, err, core.ErrBadDepth)
}

func TestAction_SetProbability(t *testing.T) {
	a, err := core.NewAction(1, "a1", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, a.Probability, "probability defaults to 0")

	require.NoError(t, a.SetProbability(0.4))
	assert.Equal(t, 0.4, a.Probability)

	err = a.SetProbability(1.5)
	assert.ErrorIs(t, err, core.ErrBadProbability)
	assert.Equal(t, 0.4, a.Probability, "failed assignment leaves value untouched")

	err = a.SetProbability(-0.1)
	assert.ErrorIs(t, err, core.ErrBadProbability)
}

func TestScenarioKind_String(t *testing.T) {
	assert.Equal(t, "decision", core.Decision.String())
	assert.Equal(t, "terminal", core.Terminal.String())
}

func TestDomainError_Messages(t *testing.T) {
	err := core.Domainf(core.ErrComplexity, "Too complex.", "Build: %d scenarios", 40000)
	assert.ErrorIs(t, err, core.ErrComplexity)
	assert.Contains(t, err.Error(), "40000 scenarios")
	assert.Equal(t, "Too complex.", core.UserMessage(err))

	assert.Equal(t, "An unexpected error occurred.", core.UserMessage(assert.AnError))
}
