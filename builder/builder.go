// builder.go — Build: deterministic tree construction.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gametree/core"
)

// Build constructs a fully populated Game from player count, rounds and
// branching factor. See the package documentation for the construction and
// labeling contract.
//
// Returns a validation error for non-positive parameters or a branching
// factor beyond the letter scheme, and a complexity error when the
// closed-form counts exceed the ceiling. A failed build returns nil: no
// partial Game is ever produced.
func Build(players, rounds, branching int, opts ...Option) (*core.Game, error) {
	// 1. Resolve options.
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Validate parameters.
	if players < 1 || rounds < 1 || branching < 1 {
		return nil, core.Domainf(ErrNonPositiveParam,
			"Players, rounds and branching factor must all be at least 1.",
			"Build(players=%d, rounds=%d, branching=%d)", players, rounds, branching)
	}
	if branching > maxSubtrees {
		return nil, core.Domainf(ErrTooManySubtrees,
			"Too many subtrees in the game. Reduce the branching factor.",
			"Build: branching %d exceeds %d subtree letters", branching, maxSubtrees)
	}

	// 3. Complexity guard, before any allocation.
	scenarios := TotalScenarios(rounds, branching)
	actions := TotalActions(rounds, branching)
	if scenarios > cfg.ceiling || actions > cfg.ceiling {
		return nil, core.Domainf(ErrCeilingExceeded,
			fmt.Sprintf("Excessive complexity: %d scenarios, %d actions.", scenarios, actions),
			"Build: scenarios=%d actions=%d ceiling=%d", scenarios, actions, cfg.ceiling)
	}

	// 4. Aggregate with players and unconfigured rounds.
	g, err := core.NewGame(cfg.gameID)
	if err != nil {
		return nil, err
	}
	for id := 1; id <= players; id++ {
		p, perr := core.NewPlayer(id)
		if perr != nil {
			return nil, perr
		}
		if err = g.AddPlayer(p); err != nil {
			return nil, err
		}
	}
	for number := 1; number <= rounds; number++ {
		r, rerr := core.NewRound(number)
		if rerr != nil {
			return nil, rerr
		}
		if err = g.AddRound(r); err != nil {
			return nil, err
		}
	}

	// 5. Scenarios, breadth level by level.
	if err = buildScenarios(g, rounds, branching); err != nil {
		return nil, err
	}

	// 6. Actions, depth-first per root subtree.
	if err = buildActions(g); err != nil {
		return nil, err
	}

	// 7. Aggregate counts and shape.
	g.TotalScenarios = scenarios
	g.TotalActions = actions
	g.TotalHistories = TotalHistories(rounds, branching)
	g.NumRounds = rounds
	g.Branching = branching

	cfg.log.Info().
		Int("scenarios", scenarios).
		Int("actions", actions).
		Int("histories", g.TotalHistories).
		Msg("tree built")

	return g, nil
}

// buildScenarios creates the root plus S children per scenario per level.
// Decision nodes are labeled X1.. in creation order (root keeps X0);
// level-R nodes are terminal and labeled Z1.. in creation order.
func buildScenarios(g *core.Game, rounds, branching int) error {
	root, err := core.NewScenario(0, 0, core.Decision, "X0")
	if err != nil {
		return err
	}
	if err = g.AddScenario(root); err != nil {
		return err
	}

	level := []int{0}
	nextID := 1
	xCount, zCount := 0, 0

	for depth := 1; depth <= rounds; depth++ {
		nextLevel := make([]int, 0, len(level)*branching)

		for _, parentID := range level {
			parent, perr := g.ScenarioByID(parentID)
			if perr != nil {
				return perr
			}

			for i := 0; i < branching; i++ {
				kind := core.Decision
				var label string
				if depth == rounds {
					kind = core.Terminal
					zCount++
					label = fmt.Sprintf("Z%d", zCount)
				} else {
					xCount++
					label = fmt.Sprintf("X%d", xCount)
				}

				child, serr := core.NewScenario(nextID, depth, kind, label)
				if serr != nil {
					return serr
				}
				if err = g.AddScenario(child); err != nil {
					return err
				}
				parent.Children = append(parent.Children, nextID)
				nextLevel = append(nextLevel, nextID)
				nextID++
			}
		}
		level = nextLevel
	}

	return nil
}

// buildActions wires one action per parent-child pair. Each root child
// starts a subtree letter; numbering inside a subtree is depth-first, and
// action ids follow the same global depth-first order starting at 1.
func buildActions(g *core.Game) error {
	root, err := g.Root()
	if err != nil {
		return err
	}

	nextID := 1
	addEdge := func(origin, dest int, label string) error {
		a, aerr := core.NewAction(nextID, label, origin, dest)
		if aerr != nil {
			return aerr
		}
		if aerr = g.AddAction(a); aerr != nil {
			return aerr
		}
		nextID++

		return nil
	}

	for subtree, childID := range root.Children {
		letter, lerr := subtreeLetter(subtree)
		if lerr != nil {
			return lerr
		}

		counter := 1
		if err = addEdge(root.ID, childID, fmt.Sprintf("%c%d", letter, counter)); err != nil {
			return err
		}
		counter++

		if _, err = buildSubtreeActions(g, childID, letter, counter, addEdge); err != nil {
			return err
		}
	}

	return nil
}

// buildSubtreeActions recurses below node, consuming the subtree's
// sequential counter in depth-first order. Returns the next counter value.
func buildSubtreeActions(
	g *core.Game,
	nodeID int,
	letter byte,
	counter int,
	addEdge func(origin, dest int, label string) error,
) (int, error) {
	node, err := g.ScenarioByID(nodeID)
	if err != nil {
		return counter, err
	}

	for _, childID := range node.Children {
		if err = addEdge(nodeID, childID, fmt.Sprintf("%c%d", letter, counter)); err != nil {
			return counter, err
		}
		counter++
		if counter, err = buildSubtreeActions(g, childID, letter, counter, addEdge); err != nil {
			return counter, err
		}
	}

	return counter, nil
}
