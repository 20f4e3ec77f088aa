package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gametree/core"
)

// newTinyGame wires a 1-round, branching-2 game by hand: X0 → {Z1, Z2}.
func newTinyGame(t *testing.T) *core.Game {
	t.Helper()

	g, err := core.NewGame(1)
	require.NoError(t, err)

	for id := 1; id <= 2; id++ {
		p, err := core.NewPlayer(id)
		require.NoError(t, err)
		require.NoError(t, g.AddPlayer(p))
	}
	r, err := core.NewRound(1)
	require.NoError(t, err)
	require.NoError(t, g.AddRound(r))

	root, err := core.NewScenario(0, 0, core.Decision, "X0")
	require.NoError(t, err)
	require.NoError(t, g.AddScenario(root))
	for id := 1; id <= 2; id++ {
		z, err := core.NewScenario(id, 1, core.Terminal, "Z"+string(rune('0'+id)))
		require.NoError(t, err)
		require.NoError(t, g.AddScenario(z))
	}
	for id := 1; id <= 2; id++ {
		a, err := core.NewAction(id, "a"+string(rune('0'+id)), 0, id)
		require.NoError(t, err)
		require.NoError(t, g.AddAction(a))
	}

	return g
}

func TestGame_StateMachine_ForwardOnly(t *testing.T) {
	g := newTinyGame(t)
	assert.Equal(t, core.Created, g.State())

	// Created cannot jump straight to Completed.
	err := g.SetState(core.Completed)
	assert.ErrorIs(t, err, core.ErrStateTransition)
	assert.ErrorIs(t, err, core.ErrState)
	assert.Equal(t, core.Created, g.State())

	require.NoError(t, g.Start())
	assert.Equal(t, core.Running, g.State())

	// No going back.
	assert.ErrorIs(t, g.SetState(core.Created), core.ErrStateTransition)

	require.NoError(t, g.Complete())
	assert.Equal(t, core.Completed, g.State())

	require.NoError(t, g.Delete())
	assert.Equal(t, core.Deleted, g.State())

	// Deleted is terminal.
	assert.ErrorIs(t, g.SetState(core.Running), core.ErrStateTransition)
	assert.ErrorIs(t, g.Delete(), core.ErrStateTransition)
}

func TestGame_DeleteFromAnyNonTerminalState(t *testing.T) {
	g := newTinyGame(t)
	require.NoError(t, g.Delete())
	assert.Equal(t, core.Deleted, g.State())

	g2 := newTinyGame(t)
	require.NoError(t, g2.Start())
	require.NoError(t, g2.Delete())
	assert.Equal(t, core.Deleted, g2.State())
}

func TestGame_Start_RequiresStructure(t *testing.T) {
	g, err := core.NewGame(9)
	require.NoError(t, err)
	assert.ErrorIs(t, g.Start(), core.ErrState)
}

func TestGame_Arenas_AndAdjacency(t *testing.T) {
	g := newTinyGame(t)

	root, err := g.Root()
	require.NoError(t, err)
	assert.Equal(t, "X0", root.Label)
	assert.Equal(t, []int{1, 2}, root.Outgoing)
	assert.Equal(t, []int{1, 2}, g.Adjacency(0))
	assert.Empty(t, g.Adjacency(1), "terminal scenarios have no outgoing actions")

	a, err := g.ActionByID(2)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Origin)
	assert.Equal(t, 2, a.Destination)

	_, err = g.ActionByID(99)
	assert.ErrorIs(t, err, core.ErrActionNotFound)
	_, err = g.ScenarioByID(99)
	assert.ErrorIs(t, err, core.ErrScenarioNotFound)
}

func TestGame_OutOfOrderArenaInsert(t *testing.T) {
	g, err := core.NewGame(2)
	require.NoError(t, err)

	s, err := core.NewScenario(5, 0, core.Decision, "X5")
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddScenario(s), core.ErrValidation)
}

func TestGame_DuplicatePlayersAndRounds(t *testing.T) {
	g := newTinyGame(t)

	p, err := core.NewPlayer(1)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddPlayer(p), core.ErrValidation)

	r, err := core.NewRound(1)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddRound(r), core.ErrValidation)
}

func TestGame_SetRoundPlayer(t *testing.T) {
	g := newTinyGame(t)

	require.NoError(t, g.SetRoundPlayer(1, 2))
	r, err := g.RoundByNumber(1)
	require.NoError(t, err)
	assert.Equal(t, 2, r.ActivePlayer)
	assert.True(t, r.Configured())

	assert.ErrorIs(t, g.SetRoundPlayer(1, 99), core.ErrPlayerNotFound)
	assert.ErrorIs(t, g.SetRoundPlayer(9, 1), core.ErrRoundNotFound)
}

func TestGame_NewStrategy_MembershipEnforced(t *testing.T) {
	g := newTinyGame(t)

	s, err := g.NewStrategy(1, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, s.ScenarioID)
	assert.Equal(t, 2, s.ActionID)

	// Action 1 leaves scenario 0, not scenario 1.
	_, err = g.NewStrategy(2, 1, 1)
	assert.ErrorIs(t, err, core.ErrActionNotOutgoing)

	_, err = g.NewStrategy(0, 0, 1)
	assert.ErrorIs(t, err, core.ErrBadID)
}

func TestHistory_RecomputeAndContains(t *testing.T) {
	g := newTinyGame(t)

	h, err := core.NewHistory(1, []int{1})
	require.NoError(t, err)
	assert.True(t, h.Contains(1))
	assert.False(t, h.Contains(2))
	assert.Equal(t, 1, h.Length())

	require.NoError(t, h.Recompute(g))
	assert.Equal(t, 0.0, h.TotalProbability, "unassigned probabilities multiply to 0")

	a, err := g.ActionByID(1)
	require.NoError(t, err)
	require.NoError(t, a.SetProbability(0.5))
	require.NoError(t, h.Recompute(g))
	assert.InDelta(t, 0.5, h.TotalProbability, 1e-12)
}

func TestGame_PayoffsAndUtilities(t *testing.T) {
	g := newTinyGame(t)

	h, err := core.NewHistory(1, []int{1})
	require.NoError(t, err)
	g.SetHistories([]*core.History{h})

	p, err := core.NewPayoff(1, 1, 1, 3.0)
	require.NoError(t, err)
	require.NoError(t, g.AddPayoff(p))

	// Unknown references are rejected.
	bad, err := core.NewPayoff(2, 9, 1, 1.0)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddPayoff(bad), core.ErrPlayerNotFound)

	bad2, err := core.NewPayoff(3, 1, 9, 1.0)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddPayoff(bad2), core.ErrValidation)

	p.ExpectedUtility = 0.75
	utils := g.PlayerUtilities()
	assert.InDelta(t, 0.75, utils[1], 1e-12)
}

func TestGame_Summary(t *testing.T) {
	g := newTinyGame(t)
	sum := g.Summary()
	assert.Equal(t, 1, sum["game_id"])
	assert.Equal(t, "CREATED", sum["state"])
	assert.Equal(t, 2, sum["player_count"])
	assert.Equal(t, 3, sum["scenario_count"])
	assert.Equal(t, 2, sum["action_count"])
}
