// assigner.go — assignment, validation and normalization of per-scenario
// action-probability distributions.

package probability

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gametree/core"
)

// Tolerance is the maximum deviation from 1.0 a scenario's outgoing
// probability sum may show and still validate.
const Tolerance = 0.001

var (
	// ErrCountMismatch indicates empty input or differing action/value counts.
	ErrCountMismatch = fmt.Errorf("%w: action/value count mismatch", core.ErrValidation)

	// ErrOutOfRange indicates a probability value outside [0,1].
	ErrOutOfRange = fmt.Errorf("%w: probability out of [0,1]", core.ErrValidation)

	// ErrZeroSum indicates a normalization attempt over a sum <= 0.
	ErrZeroSum = fmt.Errorf("%w: cannot normalize zero or negative sum", core.ErrValidation)
)

// Option configures the probability operations.
type Option func(*config)

type config struct {
	log zerolog.Logger
}

func defaultConfig() config { return config{log: zerolog.Nop()} }

// WithLogger installs a zerolog.Logger for assignment diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// Assign stores values[i] on the action actionIDs[i]. The whole batch is
// validated (count match, every value in [0,1], every id resolvable) before
// any action is mutated, so a failed call changes nothing.
func Assign(g *core.Game, actionIDs []int, values []float64, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Count match.
	if len(actionIDs) == 0 || len(actionIDs) != len(values) {
		return core.Domainf(ErrCountMismatch,
			"The number of actions and probability values must match.",
			"Assign: %d actions, %d values", len(actionIDs), len(values))
	}

	// 2. Validate the whole batch before mutating.
	actions := make([]*core.Action, len(actionIDs))
	for i, id := range actionIDs {
		a, err := g.ActionByID(id)
		if err != nil {
			return err
		}
		if values[i] < 0 || values[i] > 1 {
			return core.Domainf(ErrOutOfRange,
				"Probability values must be between 0 and 1.",
				"Assign: action %s value %g", a.Label, values[i])
		}
		actions[i] = a
	}

	// 3. Commit.
	for i, a := range actions {
		if err := a.SetProbability(values[i]); err != nil {
			return err
		}
	}

	cfg.log.Info().Int("actions", len(actions)).Msg("probabilities assigned")

	return nil
}

// Validate reports whether scenarioID's outgoing probabilities sum to 1
// within Tolerance. Terminal scenarios (no outgoing actions) are trivially
// valid. The error return covers only an unknown scenario id.
func Validate(g *core.Game, scenarioID int) (bool, error) {
	if _, err := g.ScenarioByID(scenarioID); err != nil {
		return false, err
	}

	outgoing := g.Adjacency(scenarioID)
	if len(outgoing) == 0 {
		return true, nil
	}

	sum := 0.0
	for _, id := range outgoing {
		a, err := g.ActionByID(id)
		if err != nil {
			return false, err
		}
		sum += a.Probability
	}

	return math.Abs(1.0-sum) <= Tolerance, nil
}

// ValidateAll runs Validate over every scenario and returns the labels of
// those that fail, in scenario-id order. An empty result means the whole
// tree carries well-formed distributions.
func ValidateAll(g *core.Game) ([]string, error) {
	var invalid []string
	for _, s := range g.Scenarios() {
		ok, err := Validate(g, s.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			invalid = append(invalid, s.Label)
		}
	}

	return invalid, nil
}

// Normalize divides each action's probability by the pre-normalization sum
// so the set sums to 1. Returns ErrZeroSum when the sum is not positive;
// nothing is mutated on failure.
func Normalize(g *core.Game, actionIDs []int, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(actionIDs) == 0 {
		return core.Domainf(ErrCountMismatch,
			"There are no actions to normalize.", "Normalize: empty action set")
	}

	actions := make([]*core.Action, len(actionIDs))
	sum := 0.0
	for i, id := range actionIDs {
		a, err := g.ActionByID(id)
		if err != nil {
			return err
		}
		actions[i] = a
		sum += a.Probability
	}

	if sum <= 0 {
		return core.Domainf(ErrZeroSum,
			"Probabilities summing to zero or less cannot be normalized.",
			"Normalize: sum %g over %d actions", sum, len(actions))
	}

	for _, a := range actions {
		if err := a.SetProbability(a.Probability / sum); err != nil {
			return err
		}
	}

	cfg.log.Info().Float64("previous_sum", sum).Int("actions", len(actions)).
		Msg("probabilities normalized")

	return nil
}

// Summary maps every decision scenario's label to its outgoing
// action-label→probability distribution, for display and export.
func Summary(g *core.Game) map[string]map[string]float64 {
	out := make(map[string]map[string]float64)
	for _, s := range g.Scenarios() {
		outgoing := g.Adjacency(s.ID)
		if len(outgoing) == 0 {
			continue
		}
		dist := make(map[string]float64, len(outgoing))
		for _, id := range outgoing {
			if a, err := g.ActionByID(id); err == nil {
				dist[a.Label] = a.Probability
			}
		}
		out[s.Label] = dist
	}

	return out
}
