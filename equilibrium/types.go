package equilibrium

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gametree/core"
)

// TieTolerance is the absolute slack within which two continuation
// utilities count as equal, so both actions survive induction.
const TieTolerance = 1e-6

// DefaultMaxProfiles bounds the number of equilibrium profiles retained at
// any single scenario before the search fails fast.
const DefaultMaxProfiles = 10_000

var (
	// ErrNilGame indicates a nil game handle.
	ErrNilGame = fmt.Errorf("%w: nil game", core.ErrComputation)

	// ErrNoHistories indicates an empty history list.
	ErrNoHistories = fmt.Errorf("%w: no histories", core.ErrComputation)

	// ErrNoPayoffs indicates an empty payoff list.
	ErrNoPayoffs = fmt.Errorf("%w: no payoffs", core.ErrComputation)

	// ErrNoPlayers indicates a game without players.
	ErrNoPlayers = fmt.Errorf("%w: no players", core.ErrComputation)

	// ErrNoScenarios indicates a game without scenarios.
	ErrNoScenarios = fmt.Errorf("%w: no scenarios", core.ErrComputation)

	// ErrNoActions indicates a game without actions.
	ErrNoActions = fmt.Errorf("%w: no actions", core.ErrComputation)

	// ErrTooManyProfiles indicates that a scenario accumulated more optimal
	// continuations than the configured ceiling allows.
	ErrTooManyProfiles = fmt.Errorf("%w: profile ceiling exceeded", core.ErrComplexity)
)

// Step is one row of an equilibrium profile: the decision taken at a single
// scenario on the equilibrium path, together with the payoff snapshot of
// the first full history reached through that decision. The snapshot stays
// zero for the root step, whose action opens every history.
type Step struct {
	Round       int                // 1-based round number (scenario depth + 1)
	PlayerLabel string             // active player at the scenario, "J<id>"
	Scenario    string             // scenario label, e.g. "X1"
	Action      string             // chosen action label, e.g. "a2"
	Destination string             // destination scenario label, e.g. "Z1"
	Payoffs     map[string]float64 // player label -> payoff value snapshot
}

// Profile is a complete subgame-perfect equilibrium: an ordered list of
// steps from the root down, the full labelled path, and the terminal
// payments it induces.
type Profile struct {
	ID            int
	Steps         []Step
	FullHistory   string             // "X0 -> a1 -> X1 -> a2 -> Z1"
	FinalPayments map[string]float64 // player label -> terminal payoff
	UtilityVector []float64          // terminal payoffs in player-id order
	PlayerLabels  []string           // player labels in id order
}

// Option configures FindSPE.
type Option func(*config)

type config struct {
	log         zerolog.Logger
	maxProfiles int
}

func defaultConfig() config {
	return config{
		log:         zerolog.Nop(),
		maxProfiles: DefaultMaxProfiles,
	}
}

// WithLogger installs a zerolog.Logger for search diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithMaxProfiles overrides the profile ceiling. Non-positive values keep
// the default.
func WithMaxProfiles(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxProfiles = n
		}
	}
}
