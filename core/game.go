// game.go — the Game aggregate root: entity arenas, adjacency, counters,
// and the forward-only lifecycle state machine.

package core

import (
	"fmt"
	"time"
)

// GameState is the lifecycle stage of a Game.
type GameState uint8

const (
	// Created is the initial state: tree built, configuration still open.
	Created GameState = iota

	// Running marks an analysis in progress (histories/utilities/equilibria).
	Running

	// Completed marks a finished analysis; results are read-only.
	Completed

	// Deleted is terminal and reachable from any non-terminal state.
	Deleted
)

// String returns the canonical upper-case state name.
func (s GameState) String() string {
	switch s {
	case Created:
		return "CREATED"
	case Running:
		return "RUNNING"
	case Completed:
		return "COMPLETED"
	case Deleted:
		return "DELETED"
	default:
		return fmt.Sprintf("GameState(%d)", uint8(s))
	}
}

// validTransitions encodes the strict forward-only lifecycle order.
var validTransitions = map[GameState][]GameState{
	Created:   {Running, Deleted},
	Running:   {Completed, Deleted},
	Completed: {Deleted},
	Deleted:   {},
}

// Game is the aggregate root. It exclusively owns its players, rounds,
// scenarios, actions, histories and payoffs for its lifetime; scenario and
// action arenas are indexed by id (scenario id == slice index, action id ==
// slice index + 1) so lookups are O(1).
type Game struct {
	// ID uniquely identifies the game (positive).
	ID int

	// Name is a display name; defaults to "Game_<id>".
	Name string

	// CreatedAt is the construction timestamp.
	CreatedAt time.Time

	state GameState

	players []Player
	rounds  []Round

	scenarios []*Scenario // arena: scenarios[id]
	actions   []*Action   // arena: actions[id-1]
	adjacency map[int][]int
	rootID    int
	hasRoot   bool

	histories []*History
	payoffs   []*Payoff

	// Aggregate counts, set by the builder.
	TotalScenarios int
	TotalActions   int
	TotalHistories int

	// Shape parameters, set by the builder.
	NumRounds int
	Branching int
}

// NewGame validates id and constructs an empty aggregate in state Created.
func NewGame(id int) (*Game, error) {
	if id <= 0 {
		return nil, Domainf(ErrBadID, "Game ids must be positive integers.",
			"NewGame(%d)", id)
	}

	return &Game{
		ID:        id,
		Name:      fmt.Sprintf("Game_%d", id),
		CreatedAt: time.Now(),
		state:     Created,
		adjacency: make(map[int][]int),
	}, nil
}

// State returns the current lifecycle state.
func (g *Game) State() GameState { return g.state }

// SetState applies the transition to next, enforcing the forward-only
// order. Returns ErrStateTransition (category ErrState) on violation.
func (g *Game) SetState(next GameState) error {
	for _, allowed := range validTransitions[g.state] {
		if next == allowed {
			g.state = next

			return nil
		}
	}

	return Domainf(ErrStateTransition,
		fmt.Sprintf("The game cannot move from %s to %s.", g.state, next),
		"Game(%d).SetState: %s -> %s", g.ID, g.state, next)
}

// Start moves Created → Running, requiring players, rounds and scenarios.
func (g *Game) Start() error {
	if len(g.players) == 0 || len(g.rounds) == 0 || len(g.scenarios) == 0 {
		return Domainf(ErrState, "The game needs players, rounds and scenarios before starting.",
			"Game(%d).Start: players=%d rounds=%d scenarios=%d",
			g.ID, len(g.players), len(g.rounds), len(g.scenarios))
	}

	return g.SetState(Running)
}

// Complete moves Running → Completed.
func (g *Game) Complete() error { return g.SetState(Completed) }

// Delete moves any non-terminal state → Deleted.
func (g *Game) Delete() error { return g.SetState(Deleted) }

// AddPlayer appends p; duplicate ids are rejected.
func (g *Game) AddPlayer(p Player) error {
	for _, existing := range g.players {
		if existing.ID == p.ID {
			return Domainf(ErrValidation, "Player ids cannot repeat.",
				"Game(%d).AddPlayer: duplicate id %d", g.ID, p.ID)
		}
	}
	g.players = append(g.players, p)

	return nil
}

// Players returns a copy of the ordered player list.
func (g *Game) Players() []Player {
	out := make([]Player, len(g.players))
	copy(out, g.players)

	return out
}

// PlayerByID resolves a player id or returns ErrPlayerNotFound.
func (g *Game) PlayerByID(id int) (Player, error) {
	for _, p := range g.players {
		if p.ID == id {
			return p, nil
		}
	}

	return Player{}, Domainf(ErrPlayerNotFound, "That player does not exist in the game.",
		"Game(%d).PlayerByID(%d)", g.ID, id)
}

// AddRound appends r; duplicate numbers are rejected.
func (g *Game) AddRound(r Round) error {
	for _, existing := range g.rounds {
		if existing.Number == r.Number {
			return Domainf(ErrValidation, "Round numbers cannot repeat.",
				"Game(%d).AddRound: duplicate number %d", g.ID, r.Number)
		}
	}
	g.rounds = append(g.rounds, r)

	return nil
}

// Rounds returns a copy of the ordered round list.
func (g *Game) Rounds() []Round {
	out := make([]Round, len(g.rounds))
	copy(out, g.rounds)

	return out
}

// RoundByNumber resolves a 1-based round number or returns ErrRoundNotFound.
func (g *Game) RoundByNumber(number int) (Round, error) {
	for _, r := range g.rounds {
		if r.Number == number {
			return r, nil
		}
	}

	return Round{}, Domainf(ErrRoundNotFound, "That round does not exist in the game.",
		"Game(%d).RoundByNumber(%d)", g.ID, number)
}

// SetRoundPlayer assigns playerID as the active player of round number.
// Both references must exist.
func (g *Game) SetRoundPlayer(number, playerID int) error {
	if _, err := g.PlayerByID(playerID); err != nil {
		return err
	}
	for i := range g.rounds {
		if g.rounds[i].Number == number {
			g.rounds[i].ActivePlayer = playerID

			return nil
		}
	}

	return Domainf(ErrRoundNotFound, "That round does not exist in the game.",
		"Game(%d).SetRoundPlayer(round=%d)", g.ID, number)
}

// AddScenario appends s to the arena; ids must arrive in sequence so the
// arena index equals the scenario id.
func (g *Game) AddScenario(s *Scenario) error {
	if s.ID != len(g.scenarios) {
		return Domainf(ErrValidation, "Scenarios must be added in id order.",
			"Game(%d).AddScenario: got id %d, want %d", g.ID, s.ID, len(g.scenarios))
	}
	g.scenarios = append(g.scenarios, s)
	if s.ID == 0 {
		g.rootID = 0
		g.hasRoot = true
	}

	return nil
}

// Scenarios returns the scenario arena as a read-only view (callers must
// not mutate the records).
func (g *Game) Scenarios() []*Scenario { return g.scenarios }

// ScenarioByID resolves a scenario id or returns ErrScenarioNotFound.
func (g *Game) ScenarioByID(id int) (*Scenario, error) {
	if id < 0 || id >= len(g.scenarios) {
		return nil, Domainf(ErrScenarioNotFound, "That scenario does not exist in the game.",
			"Game(%d).ScenarioByID(%d)", g.ID, id)
	}

	return g.scenarios[id], nil
}

// AddAction appends a to the arena and records the adjacency and the
// origin scenario's outgoing set; ids must arrive in sequence starting at 1.
func (g *Game) AddAction(a *Action) error {
	if a.ID != len(g.actions)+1 {
		return Domainf(ErrValidation, "Actions must be added in id order.",
			"Game(%d).AddAction: got id %d, want %d", g.ID, a.ID, len(g.actions)+1)
	}
	origin, err := g.ScenarioByID(a.Origin)
	if err != nil {
		return err
	}
	if _, err = g.ScenarioByID(a.Destination); err != nil {
		return err
	}

	g.actions = append(g.actions, a)
	g.adjacency[a.Origin] = append(g.adjacency[a.Origin], a.ID)
	origin.Outgoing = append(origin.Outgoing, a.ID)

	return nil
}

// Actions returns the action arena as a read-only view.
func (g *Game) Actions() []*Action { return g.actions }

// ActionByID resolves an action id or returns ErrActionNotFound.
func (g *Game) ActionByID(id int) (*Action, error) {
	if id < 1 || id > len(g.actions) {
		return nil, Domainf(ErrActionNotFound, "That action does not exist in the game.",
			"Game(%d).ActionByID(%d)", g.ID, id)
	}

	return g.actions[id-1], nil
}

// Adjacency returns the outgoing action ids of scenarioID in ascending
// action-id order. The returned slice is a copy.
func (g *Game) Adjacency(scenarioID int) []int {
	ids := g.adjacency[scenarioID]
	out := make([]int, len(ids))
	copy(out, ids)

	return out
}

// HasAdjacency reports whether any action has been attached yet.
func (g *Game) HasAdjacency() bool { return len(g.adjacency) > 0 }

// Root returns the root scenario, or ErrStructure if none was added.
func (g *Game) Root() (*Scenario, error) {
	if !g.hasRoot {
		return nil, Domainf(ErrStructure, "The game has no starting node defined.",
			"Game(%d).Root: no root scenario", g.ID)
	}

	return g.scenarios[g.rootID], nil
}

// SetHistories replaces the stored history list (enumeration output).
func (g *Game) SetHistories(hs []*History) { g.histories = hs }

// Histories returns the stored history list as a read-only view.
func (g *Game) Histories() []*History { return g.histories }

// AddPayoff appends p; the referenced player and history must exist.
func (g *Game) AddPayoff(p *Payoff) error {
	if _, err := g.PlayerByID(p.PlayerID); err != nil {
		return err
	}
	if found := g.historyByID(p.HistoryID); found == nil {
		return Domainf(ErrValidation, "That history does not exist in the game.",
			"Game(%d).AddPayoff: history %d", g.ID, p.HistoryID)
	}
	g.payoffs = append(g.payoffs, p)

	return nil
}

// SetPayoffs replaces the stored payoff list.
func (g *Game) SetPayoffs(ps []*Payoff) { g.payoffs = ps }

// Payoffs returns the stored payoff list as a read-only view.
func (g *Game) Payoffs() []*Payoff { return g.payoffs }

func (g *Game) historyByID(id int) *History {
	for _, h := range g.histories {
		if h.ID == id {
			return h
		}
	}

	return nil
}

// HistoryByID resolves a history id or returns ErrValidation.
func (g *Game) HistoryByID(id int) (*History, error) {
	if h := g.historyByID(id); h != nil {
		return h, nil
	}

	return nil, Domainf(ErrValidation, "That history does not exist in the game.",
		"Game(%d).HistoryByID(%d)", g.ID, id)
}

// NewStrategy constructs a strategy commitment after verifying that
// actionID is outgoing from scenarioID.
func (g *Game) NewStrategy(id, scenarioID, actionID int) (Strategy, error) {
	if id <= 0 {
		return Strategy{}, Domainf(ErrBadID, "Strategy ids must be positive integers.",
			"Game(%d).NewStrategy(id=%d)", g.ID, id)
	}
	s, err := g.ScenarioByID(scenarioID)
	if err != nil {
		return Strategy{}, err
	}
	for _, out := range s.Outgoing {
		if out == actionID {
			return Strategy{ID: id, ScenarioID: scenarioID, ActionID: actionID}, nil
		}
	}

	return Strategy{}, Domainf(ErrActionNotOutgoing,
		"The chosen action is not available at that scenario.",
		"Game(%d).NewStrategy: action %d not outgoing from scenario %d",
		g.ID, actionID, scenarioID)
}

// PlayerUtilities sums each player's expected utility over all payoffs.
func (g *Game) PlayerUtilities() map[int]float64 {
	out := make(map[int]float64, len(g.players))
	for _, p := range g.payoffs {
		out[p.PlayerID] += p.ExpectedUtility
	}

	return out
}

// Summary returns the aggregate counters and state in export-friendly form.
func (g *Game) Summary() map[string]interface{} {
	return map[string]interface{}{
		"game_id":         g.ID,
		"name":            g.Name,
		"created_at":      g.CreatedAt.Format(time.RFC3339),
		"state":           g.state.String(),
		"player_count":    len(g.players),
		"round_count":     len(g.rounds),
		"scenario_count":  len(g.scenarios),
		"action_count":    len(g.actions),
		"history_count":   len(g.histories),
		"payoff_count":    len(g.payoffs),
		"total_scenarios": g.TotalScenarios,
		"total_actions":   g.TotalActions,
		"total_histories": g.TotalHistories,
		"num_rounds":      g.NumRounds,
		"branching":       g.Branching,
	}
}
