// types.go — entity records owned by the Game aggregate.
//
// All records are plain data with validated construction; cross-references
// are integer ids resolved through the Game arena. Mutation after
// construction is limited to what the workflow requires: Action.Probability
// (via the probability package), Round.ActivePlayer (configuration),
// History.TotalProbability (recomputation), Payoff.ExpectedUtility
// (utility computation).

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for entity construction and lookup.
var (
	// ErrBadID indicates a non-positive identifier where a positive one is required.
	ErrBadID = fmt.Errorf("%w: id must be positive", ErrValidation)

	// ErrBadProbability indicates a probability outside the closed interval [0,1].
	ErrBadProbability = fmt.Errorf("%w: probability out of [0,1]", ErrValidation)

	// ErrBadDepth indicates a negative scenario depth.
	ErrBadDepth = fmt.Errorf("%w: depth must be non-negative", ErrValidation)

	// ErrScenarioNotFound indicates a lookup for a scenario id the Game does not hold.
	ErrScenarioNotFound = errors.New("core: scenario not found")

	// ErrActionNotFound indicates a lookup for an action id the Game does not hold.
	ErrActionNotFound = errors.New("core: action not found")

	// ErrPlayerNotFound indicates a lookup for a player id the Game does not hold.
	ErrPlayerNotFound = errors.New("core: player not found")

	// ErrRoundNotFound indicates a lookup for a round number the Game does not hold.
	ErrRoundNotFound = errors.New("core: round not found")

	// ErrActionNotOutgoing indicates a Strategy whose action does not belong
	// to its scenario's outgoing set.
	ErrActionNotOutgoing = errors.New("core: action not outgoing from scenario")
)

// ScenarioKind distinguishes decision nodes from terminal nodes.
type ScenarioKind uint8

const (
	// Decision marks a scenario with exactly branching-factor outgoing actions.
	Decision ScenarioKind = iota

	// Terminal marks a scenario at maximum depth with no outgoing actions.
	Terminal
)

// String returns "decision" or "terminal".
func (k ScenarioKind) String() string {
	if k == Terminal {
		return "terminal"
	}

	return "decision"
}

// Player is a participant identity. Created once at tree build, immutable
// thereafter; payoffs referencing the player accumulate on the Game.
type Player struct {
	// ID uniquely identifies the player (positive, 1-based).
	ID int

	// Name is a display name; defaults to "Player_<id>".
	Name string
}

// NewPlayer validates id and constructs a Player with a default name.
func NewPlayer(id int) (Player, error) {
	if id <= 0 {
		return Player{}, Domainf(ErrBadID, "Player ids must be positive integers.",
			"NewPlayer(%d)", id)
	}

	return Player{ID: id, Name: fmt.Sprintf("Player_%d", id)}, nil
}

// Label returns the compact display label "J<id>" used by formatters and
// exporters.
func (p Player) Label() string { return fmt.Sprintf("J%d", p.ID) }

// Round maps a 1-based round number to the player who chooses at every
// scenario of depth round-1. ActivePlayer is 0 until configured.
type Round struct {
	// Number is the 1-based round number.
	Number int

	// ActivePlayer is the id of the player deciding this round; 0 = unset.
	ActivePlayer int
}

// NewRound validates number and constructs an unconfigured Round.
func NewRound(number int) (Round, error) {
	if number <= 0 {
		return Round{}, Domainf(ErrBadID, "Round numbers must be positive integers.",
			"NewRound(%d)", number)
	}

	return Round{Number: number}, nil
}

// Configured reports whether an active player has been assigned.
func (r Round) Configured() bool { return r.ActivePlayer > 0 }

// Scenario is a decision point (node) in the game tree.
//
// Children and Outgoing are ordered: children by ascending scenario id,
// outgoing actions by ascending action id. Both orders are creation orders
// and are relied upon for deterministic enumeration.
type Scenario struct {
	// ID uniquely identifies the scenario (0 = root, breadth order).
	ID int

	// Depth is the distance from the root (root = 0).
	Depth int

	// Kind is Decision or Terminal. Terminal iff Depth == rounds.
	Kind ScenarioKind

	// Label is "X<n>" for decision nodes, "Z<n>" for terminals, in creation order.
	Label string

	// Children holds ids of child scenarios in ascending id order.
	Children []int

	// Outgoing holds ids of outgoing actions in ascending id order.
	// Empty exactly when Kind == Terminal.
	Outgoing []int
}

// NewScenario validates depth and constructs a node with no edges yet.
// The root carries id 0, so ids are validated as non-negative here.
func NewScenario(id, depth int, kind ScenarioKind, label string) (*Scenario, error) {
	if id < 0 {
		return nil, Domainf(ErrBadID, "Scenario ids must be non-negative.",
			"NewScenario(id=%d)", id)
	}
	if depth < 0 {
		return nil, Domainf(ErrBadDepth, "Scenario depth cannot be negative.",
			"NewScenario(id=%d, depth=%d)", id, depth)
	}

	return &Scenario{ID: id, Depth: depth, Kind: kind, Label: label}, nil
}

// IsTerminal reports whether the scenario ends a play.
func (s *Scenario) IsTerminal() bool { return s.Kind == Terminal }

// Action is an edge/choice available at a scenario.
//
// Origin and Destination are always set at creation and never change.
// Probability defaults to 0 and is mutated only through the probability
// package.
type Action struct {
	// ID uniquely identifies the action (1-based, global depth-first order).
	ID int

	// Label follows the subtree-letter scheme ("a1", "a2", …, "b1", …).
	Label string

	// Probability of the action being taken, in [0,1]. 0 until assigned.
	Probability float64

	// Origin is the id of the scenario the action leaves.
	Origin int

	// Destination is the id of the scenario the action reaches.
	Destination int
}

// NewAction validates id and probability and constructs a connected edge.
func NewAction(id int, label string, origin, destination int) (*Action, error) {
	if id <= 0 {
		return nil, Domainf(ErrBadID, "Action ids must be positive integers.",
			"NewAction(id=%d)", id)
	}

	return &Action{ID: id, Label: label, Origin: origin, Destination: destination}, nil
}

// SetProbability stores p after range validation. Reserved for the
// probability package; entity consumers treat Probability as read-only.
func (a *Action) SetProbability(p float64) error {
	if p < 0 || p > 1 {
		return Domainf(ErrBadProbability, "Probability values must be between 0 and 1.",
			"Action(%s).SetProbability(%g)", a.Label, p)
	}
	a.Probability = p

	return nil
}

// Strategy is a single decision-node commitment: at scenario ScenarioID,
// choose action ActionID. Constructed through Game.NewStrategy, which
// enforces that the action belongs to the scenario's outgoing set.
type Strategy struct {
	// ID uniquely identifies the strategy (positive, assigned by the finder).
	ID int

	// ScenarioID is the decision node committed at.
	ScenarioID int

	// ActionID is the chosen outgoing action.
	ActionID int
}

// labelPath joins labels with the display arrow used in full-history strings.
func labelPath(parts []string) string { return strings.Join(parts, " -> ") }
