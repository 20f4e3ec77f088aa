// history.go — History (one complete play) and Payoff records.

package core

import "fmt"

// History is one complete root-to-terminal play: the ordered sequence of
// action ids from the root to a terminal scenario. Its length always equals
// the number of rounds.
type History struct {
	// ID is the 1-based sequential history number in enumeration order.
	ID int

	// Actions holds the constituent action ids, root-first.
	Actions []int

	// TotalProbability is the product of the constituent actions'
	// probabilities. Recomputed whenever those probabilities change;
	// 0 until probabilities are assigned.
	TotalProbability float64
}

// NewHistory validates id and constructs a play over the given action ids.
func NewHistory(id int, actions []int) (*History, error) {
	if id <= 0 {
		return nil, Domainf(ErrBadID, "History ids must be positive integers.",
			"NewHistory(id=%d)", id)
	}

	return &History{ID: id, Actions: actions}, nil
}

// Length returns the number of actions (== rounds for a complete play).
func (h *History) Length() int { return len(h.Actions) }

// Contains reports whether the play traverses action id.
func (h *History) Contains(actionID int) bool {
	for _, id := range h.Actions {
		if id == actionID {
			return true
		}
	}

	return false
}

// Recompute refreshes TotalProbability as the product of the constituent
// actions' current probabilities, resolved through g. An empty history has
// probability 0.
func (h *History) Recompute(g *Game) error {
	if len(h.Actions) == 0 {
		h.TotalProbability = 0

		return nil
	}

	product := 1.0
	for _, id := range h.Actions {
		a, err := g.ActionByID(id)
		if err != nil {
			return fmt.Errorf("History(%d).Recompute: %w", h.ID, err)
		}
		product *= a.Probability
	}
	h.TotalProbability = product

	return nil
}

// PathString renders the play as its action labels joined by arrows,
// e.g. "a1 -> a2". Used by formatters and the xlsx exporter.
func (h *History) PathString(g *Game) string {
	parts := make([]string, 0, len(h.Actions))
	for _, id := range h.Actions {
		if a, err := g.ActionByID(id); err == nil {
			parts = append(parts, a.Label)
		}
	}

	return labelPath(parts)
}

// Payoff is a player's raw value at a specific history, plus the derived
// expected utility (value × history probability, set by the utility
// package). One payoff per (player, history) pair is expected.
type Payoff struct {
	// ID uniquely identifies the payoff (positive, registration order).
	ID int

	// PlayerID references the receiving player.
	PlayerID int

	// HistoryID references the terminating play.
	HistoryID int

	// Value is the raw payoff at the history.
	Value float64

	// ExpectedUtility is Value × history.TotalProbability; 0 until computed.
	ExpectedUtility float64
}

// NewPayoff validates ids and constructs a payoff record.
func NewPayoff(id, playerID, historyID int, value float64) (*Payoff, error) {
	if id <= 0 || playerID <= 0 || historyID <= 0 {
		return nil, Domainf(ErrBadID, "Payoff, player and history ids must be positive.",
			"NewPayoff(id=%d, player=%d, history=%d)", id, playerID, historyID)
	}

	return &Payoff{ID: id, PlayerID: playerID, HistoryID: historyID, Value: value}, nil
}
