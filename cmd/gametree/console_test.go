package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gametree/core"
	"github.com/katalvlaran/gametree/session"
)

// runScript feeds the console one input line per prompt and returns the
// session plus everything printed.
func runScript(t *testing.T, lines ...string) (*session.Session, string) {
	t.Helper()

	cfg := config{
		ExportDir:   t.TempDir(),
		Ceiling:     30000,
		MaxProfiles: 10000,
		LogLevel:    "info",
	}
	sess := session.New()
	var out bytes.Buffer

	c := newConsole(cfg, zerolog.Nop(), sess,
		strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, c.run())

	return sess, out.String()
}

func TestConsole_FailedAnalysisKeepsGameStartable(t *testing.T) {
	// Running the analysis before probabilities must fail without leaving
	// CREATED, so the retry after assigning them can still complete.
	sess, out := runScript(t,
		"1", "2", "2", "2", "y",
		"5",
		"3", "0.5,0.5", "0.5,0.5", "0.5,0.5",
		"4", "3", "1", "0", "0", "0", "0", "2", "2",
		"5",
		"0",
	)

	assert.Contains(t, out, "Assign valid probabilities before the analysis")
	assert.Contains(t, out, "Analysis complete")

	g, err := sess.Game()
	require.NoError(t, err)
	assert.Equal(t, core.Completed, g.State())
}

func TestConsole_AnalysisResumesRunningGame(t *testing.T) {
	// A mid-pipeline failure (no payoffs yet) leaves the game RUNNING; the
	// next attempt resumes instead of tripping over the state machine.
	sess, out := runScript(t,
		"1", "2", "2", "2", "y",
		"3", "0.5,0.5", "0.5,0.5", "0.5,0.5",
		"5",
		"4", "3", "1", "0", "0", "0", "0", "2", "2",
		"5",
		"0",
	)

	assert.Contains(t, out, "Analysis complete")

	g, err := sess.Game()
	require.NoError(t, err)
	assert.Equal(t, core.Completed, g.State())
}

func TestConsole_NormalizeScalesEnteredValuesProportionally(t *testing.T) {
	// Out-of-range input 0.5,2.0 accepted for normalization must divide by
	// the sum, storing 0.2 and 0.8.
	sess, out := runScript(t,
		"1", "2", "2", "2", "y",
		"3",
		"0.5,2", "y",
		"0.5,0.5", "0.5,0.5",
		"0",
	)

	assert.Contains(t, out, "All distributions sum to 1.")

	g, err := sess.Game()
	require.NoError(t, err)
	a1, err := g.ActionByID(1)
	require.NoError(t, err)
	b1, err := g.ActionByID(4)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, a1.Probability, 1e-12)
	assert.InDelta(t, 0.8, b1.Probability, 1e-12)
}

func TestConsole_NormalizeOfferedWhenSumOffTolerance(t *testing.T) {
	// In-range values 0.3,0.3 pass assignment but fail validation; the
	// offered normalization rescales the stored values to 0.5,0.5.
	sess, out := runScript(t,
		"1", "2", "2", "2", "y",
		"3",
		"0.3,0.3", "y",
		"0.5,0.5", "0.5,0.5",
		"0",
	)

	assert.Contains(t, out, "All distributions sum to 1.")

	g, err := sess.Game()
	require.NoError(t, err)
	a1, err := g.ActionByID(1)
	require.NoError(t, err)
	b1, err := g.ActionByID(4)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, a1.Probability, 1e-9)
	assert.InDelta(t, 0.5, b1.Probability, 1e-9)
}
