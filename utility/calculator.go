// calculator.go — expected-utility matrix computation.

package utility

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gametree/core"
	"github.com/katalvlaran/gametree/matrix"
)

var (
	// ErrNoHistories indicates an empty history list.
	ErrNoHistories = fmt.Errorf("%w: no histories", core.ErrComputation)

	// ErrNoPayoffs indicates an empty payoff list.
	ErrNoPayoffs = fmt.Errorf("%w: no payoffs", core.ErrComputation)

	// ErrUnknownHistory indicates a payoff referencing a history outside the list.
	ErrUnknownHistory = fmt.Errorf("%w: payoff references unknown history", core.ErrComputation)

	// ErrUnknownPlayer indicates a payoff referencing a player outside the game.
	ErrUnknownPlayer = fmt.Errorf("%w: payoff references unknown player", core.ErrComputation)

	// ErrCountInconsistent indicates that the payoff count does not cover
	// the full histories × players grid.
	ErrCountInconsistent = fmt.Errorf("%w: payoff count inconsistent", core.ErrComputation)
)

// Option configures Calculate.
type Option func(*config)

type config struct {
	log zerolog.Logger
}

func defaultConfig() config { return config{log: zerolog.Nop()} }

// WithLogger installs a zerolog.Logger for computation diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// Calculate builds the dense expected-utility matrix (histories × players)
// and updates every Payoff's ExpectedUtility in place. All consistency
// checks run before any cell is written; on error the payoffs are untouched
// and the returned matrix is nil.
func Calculate(
	g *core.Game,
	hs []*core.History,
	payoffs []*core.Payoff,
	opts ...Option,
) (*matrix.Dense, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Consistency checks.
	if len(hs) == 0 {
		return nil, core.Domainf(ErrNoHistories,
			"There are no histories to compute utilities for.", "Calculate: empty histories")
	}
	if len(payoffs) == 0 {
		return nil, core.Domainf(ErrNoPayoffs,
			"There are no payoffs to compute utilities for.", "Calculate: empty payoffs")
	}

	players := g.Players()
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })

	if len(payoffs) != len(hs)*len(players) {
		return nil, core.Domainf(ErrCountInconsistent,
			"Every history needs one payoff per player before computing utilities.",
			"Calculate: %d payoffs for %d histories × %d players",
			len(payoffs), len(hs), len(players))
	}

	historyIndex := make(map[int]int, len(hs)) // history id → row
	for i, h := range hs {
		historyIndex[h.ID] = i
	}
	playerIndex := make(map[int]int, len(players)) // player id → column
	for i, p := range players {
		playerIndex[p.ID] = i
	}

	values := make(map[[2]int]float64, len(payoffs)) // (player, history) → value
	for _, p := range payoffs {
		if _, ok := historyIndex[p.HistoryID]; !ok {
			return nil, core.Domainf(ErrUnknownHistory,
				"A payoff is attached to a history that does not exist.",
				"Calculate: payoff %d history %d", p.ID, p.HistoryID)
		}
		if _, ok := playerIndex[p.PlayerID]; !ok {
			return nil, core.Domainf(ErrUnknownPlayer,
				"A payoff is attached to a player that does not exist.",
				"Calculate: payoff %d player %d", p.ID, p.PlayerID)
		}
		values[[2]int{p.PlayerID, p.HistoryID}] = p.Value
	}

	// 2. Fill the matrix.
	m, err := matrix.NewDense(len(hs), len(players))
	if err != nil {
		return nil, err
	}
	for row, h := range hs {
		for col, p := range players {
			cell := values[[2]int{p.ID, h.ID}] * h.TotalProbability
			if err = m.Set(row, col, cell); err != nil {
				return nil, err
			}
		}
	}

	// 3. Mirror each payoff's own expected utility.
	for _, p := range payoffs {
		h := hs[historyIndex[p.HistoryID]]
		p.ExpectedUtility = p.Value * h.TotalProbability
	}

	cfg.log.Info().
		Int("histories", len(hs)).
		Int("players", len(players)).
		Msg("utility matrix computed")

	return m, nil
}

// ExpectedUtility sums a player's expected utility over all payoffs,
// requiring a prior Calculate call (detected through the payoffs having
// been mirrored; a game without payoffs yields ErrNoPayoffs).
func ExpectedUtility(g *core.Game, playerID int) (float64, error) {
	if _, err := g.PlayerByID(playerID); err != nil {
		return 0, err
	}
	payoffs := g.Payoffs()
	if len(payoffs) == 0 {
		return 0, core.Domainf(ErrNoPayoffs,
			"Utilities must be computed before querying them.",
			"ExpectedUtility: game %d has no payoffs", g.ID)
	}

	total := 0.0
	for _, p := range payoffs {
		if p.PlayerID == playerID {
			total += p.ExpectedUtility
		}
	}

	return total, nil
}
