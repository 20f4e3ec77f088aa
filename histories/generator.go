// generator.go — depth-first enumeration of complete plays.

package histories

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gametree/core"
)

// walker encapsulates state during enumeration.
type walker struct {
	game *core.Game
	cfg  genConfig
	path []int               // action ids root→current
	seen map[string]struct{} // cycle guard keys
	out  []*core.History
}

// Generate performs a depth-first traversal of g from its root and returns
// every root-to-terminal path as a History with a 1-based sequential id.
// The result is also stored on the game. Outgoing actions are visited in
// ascending action id, so the ordering is deterministic.
//
// Returns ErrNilGame, ErrNoActions or ErrNoRoot when the structure is
// incomplete, and ErrBadDestination when an action points outside the
// arena. A detected cycle is logged and its branch pruned.
func Generate(g *core.Game, opts ...Option) ([]*core.History, error) {
	// 1. Validate structure.
	if g == nil {
		return nil, core.Domainf(ErrNilGame,
			"There is no game structure to generate histories from.", "Generate(nil)")
	}
	if len(g.Actions()) == 0 {
		return nil, core.Domainf(ErrNoActions,
			"The game has no actions to generate histories.", "Generate: game %d has no actions", g.ID)
	}
	root, err := g.Root()
	if err != nil {
		return nil, core.Domainf(ErrNoRoot,
			"The game has no starting node defined.", "Generate: game %d: %v", g.ID, err)
	}

	// 2. Resolve options.
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. Traverse.
	w := &walker{
		game: g,
		cfg:  cfg,
		path: make([]int, 0, g.NumRounds),
		seen: make(map[string]struct{}),
	}
	if err = w.walk(root); err != nil {
		return nil, err
	}

	// 4. Probability products (0 until probabilities are assigned).
	for _, h := range w.out {
		if err = h.Recompute(g); err != nil {
			return nil, core.Domainf(core.ErrComputation,
				"Could not compute a history probability.",
				"Generate: history %d: %v", h.ID, err)
		}
	}

	g.SetHistories(w.out)
	cfg.log.Info().Int("histories", len(w.out)).Msg("histories generated")

	return w.out, nil
}

// walk visits current, recursing through outgoing actions and emitting a
// History at every terminal (no outgoing actions).
func (w *walker) walk(current *core.Scenario) error {
	outgoing := w.game.Adjacency(current.ID)

	// Terminal: emit the accumulated path as a new History.
	if len(outgoing) == 0 {
		actions := make([]int, len(w.path))
		copy(actions, w.path)

		h, err := core.NewHistory(len(w.out)+1, actions)
		if err != nil {
			return err
		}
		w.out = append(w.out, h)

		return nil
	}

	for _, actionID := range outgoing {
		action, err := w.game.ActionByID(actionID)
		if err != nil {
			return err
		}
		dest, err := w.game.ScenarioByID(action.Destination)
		if err != nil {
			return core.Domainf(ErrBadDestination,
				"An action in the game has no valid destination.",
				"walk: action %s destination %d: %v", action.Label, action.Destination, err)
		}

		// Cycle guard: destination plus the ordered traversed action ids.
		// Structurally impossible on a correctly built tree; prune and move on.
		key := guardKey(dest.ID, w.path, actionID)
		if _, dup := w.seen[key]; dup {
			w.cfg.log.Warn().
				Int("scenario", dest.ID).
				Str("key", key).
				Msg("cycle detected; branch pruned")

			continue
		}
		w.seen[key] = struct{}{}

		w.path = append(w.path, actionID)
		if err = w.walk(dest); err != nil {
			return err
		}
		w.path = w.path[:len(w.path)-1]
	}

	return nil
}

// guardKey encodes (destination id, ordered action-id tuple) as a string.
func guardKey(destID int, path []int, next int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(destID))
	b.WriteByte('|')
	for _, id := range path {
		b.WriteString(strconv.Itoa(id))
		b.WriteByte(',')
	}
	b.WriteString(strconv.Itoa(next))

	return b.String()
}

// Recompute refreshes the TotalProbability of every history stored on g.
// Invoke after the probability package mutates action probabilities, since
// previously computed products become stale.
func Recompute(g *core.Game) error {
	if g == nil {
		return core.Domainf(ErrNilGame,
			"There is no game structure to recompute histories for.", "Recompute(nil)")
	}
	for _, h := range g.Histories() {
		if err := h.Recompute(g); err != nil {
			return fmt.Errorf("histories.Recompute: %w", err)
		}
	}

	return nil
}
