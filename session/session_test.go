package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gametree/builder"
	"github.com/katalvlaran/gametree/core"
	"github.com/katalvlaran/gametree/histories"
	"github.com/katalvlaran/gametree/matrix"
	"github.com/katalvlaran/gametree/probability"
	"github.com/katalvlaran/gametree/session"
)

func TestSession_ConfigValidation(t *testing.T) {
	s := session.New()

	require.NoError(t, s.SetConfig(session.Config{Players: 2, Rounds: 2, Branching: 2}))
	assert.Equal(t, 2, s.Config().Players)

	err := s.SetConfig(session.Config{Players: 0, Rounds: 1, Branching: 1})
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestSession_GameLifecycle(t *testing.T) {
	s := session.New()

	_, err := s.Game()
	assert.ErrorIs(t, err, session.ErrNoActiveGame)
	assert.ErrorIs(t, err, core.ErrState)
	assert.False(t, s.HasGame())

	g, err := builder.Build(2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, s.SetGame(g))
	assert.True(t, s.HasGame())

	got, err := s.Game()
	require.NoError(t, err)
	assert.Same(t, g, got)

	assert.ErrorIs(t, s.SetGame(nil), session.ErrNoActiveGame)
}

func TestSession_SaveRejectsEmptyResults(t *testing.T) {
	s := session.New()

	assert.ErrorIs(t, s.SaveHistories(nil), session.ErrEmptyResult)
	assert.ErrorIs(t, s.SaveProbabilities(nil), session.ErrEmptyResult)
	assert.ErrorIs(t, s.SaveUtilities(nil), session.ErrEmptyResult)
	assert.ErrorIs(t, s.SavePayoffs(nil), session.ErrEmptyResult)
	assert.ErrorIs(t, s.SaveProfiles(nil), session.ErrEmptyResult)
}

func TestSession_SummaryAndReset(t *testing.T) {
	s := session.New()
	require.NoError(t, s.SetConfig(session.Config{Players: 2, Rounds: 2, Branching: 2}))

	g, err := builder.Build(2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, s.SetGame(g))

	hs, err := histories.Generate(g)
	require.NoError(t, err)
	require.NoError(t, s.SaveHistories(hs))

	for _, sc := range g.Scenarios() {
		if out := g.Adjacency(sc.ID); len(out) == 2 {
			require.NoError(t, probability.Assign(g, out, []float64{0.5, 0.5}))
		}
	}
	require.NoError(t, s.SaveProbabilities(probability.Summary(g)))

	m, err := matrix.NewDense(4, 2)
	require.NoError(t, err)
	require.NoError(t, s.SaveUtilities(m))

	sum := s.Summary()
	assert.Equal(t, 2, sum["players"])
	assert.Equal(t, true, sum["has_active_game"])
	assert.Equal(t, "CREATED", sum["game_state"])
	assert.Equal(t, 4, sum["histories"])
	assert.Equal(t, true, sum["has_probabilities"])
	assert.Equal(t, "4x2", sum["utility_shape"])
	assert.Equal(t, 0, sum["equilibria"])

	id := s.ID()
	s.Reset()
	assert.Equal(t, id, s.ID())
	assert.False(t, s.HasGame())
	assert.Empty(t, s.Histories())
	assert.Equal(t, 0, s.Summary()["players"])
}
