package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gametree/builder"
	"github.com/katalvlaran/gametree/core"
)

func TestBuild_RejectsNonPositiveParams(t *testing.T) {
	cases := []struct{ p, r, s int }{
		{0, 2, 2}, {2, 0, 2}, {2, 2, 0}, {-1, 1, 1},
	}
	for _, c := range cases {
		g, err := builder.Build(c.p, c.r, c.s)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, builder.ErrNonPositiveParam)
		assert.ErrorIs(t, err, core.ErrValidation)
	}
}

func TestBuild_RejectsLetterOverflow(t *testing.T) {
	g, err := builder.Build(2, 1, 53)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrTooManySubtrees)
}

func TestBuild_ComplexityGuard(t *testing.T) {
	// 2^15 terminals alone exceed a ceiling of 1000.
	g, err := builder.Build(2, 15, 2, builder.WithCeiling(1000))
	assert.Nil(t, g, "no partial game on complexity failure")
	assert.ErrorIs(t, err, builder.ErrCeilingExceeded)
	assert.ErrorIs(t, err, core.ErrComplexity)

	// Default ceiling admits small games.
	g, err = builder.Build(2, 2, 2)
	require.NoError(t, err)
	assert.NotNil(t, g)
}

func TestBuild_CanonicalShape_P2R2S2(t *testing.T) {
	g, err := builder.Build(2, 2, 2)
	require.NoError(t, err)

	assert.Len(t, g.Players(), 2)
	assert.Len(t, g.Rounds(), 2)
	assert.Equal(t, 7, len(g.Scenarios()))
	assert.Equal(t, 6, len(g.Actions()))
	assert.Equal(t, 4, g.TotalHistories)

	// Depth census: 1 root, 2 decision nodes at depth 1, 4 terminals at depth 2.
	byDepth := map[int]int{}
	terminals := 0
	for _, s := range g.Scenarios() {
		byDepth[s.Depth]++
		if s.IsTerminal() {
			terminals++
			assert.Empty(t, s.Outgoing, "terminal %s must have no outgoing actions", s.Label)
		} else {
			assert.Len(t, s.Outgoing, 2, "decision %s must have branching-factor actions", s.Label)
		}
	}
	assert.Equal(t, map[int]int{0: 1, 1: 2, 2: 4}, byDepth)
	assert.Equal(t, 4, terminals)

	// Rounds are unconfigured until the caller assigns players.
	for _, r := range g.Rounds() {
		assert.False(t, r.Configured())
	}
}

func TestBuild_LabelScheme(t *testing.T) {
	g, err := builder.Build(2, 2, 2)
	require.NoError(t, err)

	wantScenarios := []string{"X0", "X1", "X2", "Z1", "Z2", "Z3", "Z4"}
	for i, s := range g.Scenarios() {
		assert.Equal(t, wantScenarios[i], s.Label)
	}

	// Subtree letters with depth-first numbering, ids in the same order.
	wantActions := []string{"a1", "a2", "a3", "b1", "b2", "b3"}
	for i, a := range g.Actions() {
		assert.Equal(t, wantActions[i], a.Label)
		assert.Equal(t, i+1, a.ID)
		assert.Equal(t, 0.0, a.Probability, "probabilities default to 0")
	}

	// a1 and b1 leave the root; a2 reaches the first terminal.
	a1, _ := g.ActionByID(1)
	assert.Equal(t, 0, a1.Origin)
	assert.Equal(t, 1, a1.Destination)
	b1, _ := g.ActionByID(4)
	assert.Equal(t, 0, b1.Origin)
	assert.Equal(t, 2, b1.Destination)
	a2, _ := g.ActionByID(2)
	assert.Equal(t, 1, a2.Origin)
	assert.Equal(t, 3, a2.Destination)
}

func TestBuild_UppercaseLetters(t *testing.T) {
	// Branching 27 needs the uppercase range: subtree 26 is 'A'.
	g, err := builder.Build(1, 1, 27)
	require.NoError(t, err)

	labels := make([]string, 0, 27)
	for _, a := range g.Actions() {
		labels = append(labels, a.Label)
	}
	assert.Equal(t, "a1", labels[0])
	assert.Equal(t, "z1", labels[25])
	assert.Equal(t, "A1", labels[26])
}

func TestCounts_MatchBuiltTree(t *testing.T) {
	cases := []struct{ rounds, branching int }{
		{1, 1}, {3, 1}, {1, 2}, {2, 2}, {3, 2}, {2, 3}, {4, 2}, {2, 5},
	}
	for _, c := range cases {
		g, err := builder.Build(2, c.rounds, c.branching)
		require.NoError(t, err, "rounds=%d branching=%d", c.rounds, c.branching)

		assert.Equal(t, builder.TotalScenarios(c.rounds, c.branching), len(g.Scenarios()),
			"scenario count rounds=%d branching=%d", c.rounds, c.branching)
		assert.Equal(t, builder.TotalActions(c.rounds, c.branching), len(g.Actions()),
			"action count rounds=%d branching=%d", c.rounds, c.branching)

		terminals := 0
		for _, s := range g.Scenarios() {
			if s.IsTerminal() {
				terminals++
			}
		}
		assert.Equal(t, builder.TotalHistories(c.rounds, c.branching), terminals,
			"terminal count rounds=%d branching=%d", c.rounds, c.branching)
	}
}

func TestCounts_DegenerateBranchingOne(t *testing.T) {
	assert.Equal(t, 1, builder.TotalHistories(4, 1))
	assert.Equal(t, 5, builder.TotalScenarios(4, 1))
	assert.Equal(t, 4, builder.TotalActions(4, 1))
}

func TestComplexityLevel(t *testing.T) {
	assert.Equal(t, builder.ComplexityLow, builder.ComplexityLevel(2, 2))
	assert.Equal(t, builder.ComplexityMedium, builder.ComplexityLevel(7, 2))   // 255 scenarios
	assert.Equal(t, builder.ComplexityHigh, builder.ComplexityLevel(10, 2))    // 2047 scenarios
	assert.Equal(t, builder.ComplexityExtreme, builder.ComplexityLevel(14, 2)) // 32767 scenarios
}

func TestBuild_WithGameID(t *testing.T) {
	g, err := builder.Build(1, 1, 1, builder.WithGameID(42))
	require.NoError(t, err)
	assert.Equal(t, 42, g.ID)
	assert.Equal(t, core.Created, g.State())
}
