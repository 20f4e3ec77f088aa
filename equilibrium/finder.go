// finder.go — tie-preserving backward induction over a built game tree.

package equilibrium

import (
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/gametree/core"
)

// retained is one surviving continuation at a scenario: an optimal action,
// its continuation utility, and the partial strategy profile from this
// scenario down to a terminal.
type retained struct {
	action     *core.Action
	utility    float64
	strategies []core.Strategy
}

// FindSPE enumerates every pure-strategy subgame-perfect equilibrium of g.
// Histories must carry recomputed TotalProbability and payoffs must cover
// the full histories × players grid; both come straight from the histories
// and utility packages. The returned profiles are ordered by discovery
// (root actions in id order, continuations depth-first).
func FindSPE(
	g *core.Game,
	hs []*core.History,
	payoffs []*core.Payoff,
	opts ...Option,
) ([]*Profile, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Prerequisites. Everything is checked up front so a failed search
	//    never leaves partial results behind.
	if g == nil {
		return nil, core.Domainf(ErrNilGame,
			"Load or build a game first.", "FindSPE: nil game")
	}
	if len(hs) == 0 {
		return nil, core.Domainf(ErrNoHistories,
			"Generate the histories before searching for equilibria.",
			"FindSPE: empty history list")
	}
	if len(payoffs) == 0 {
		return nil, core.Domainf(ErrNoPayoffs,
			"Register the payoffs before searching for equilibria.",
			"FindSPE: empty payoff list")
	}
	if len(g.Players()) == 0 {
		return nil, core.Domainf(ErrNoPlayers,
			"The game has no players.", "FindSPE: game has no players")
	}
	if len(g.Scenarios()) == 0 {
		return nil, core.Domainf(ErrNoScenarios,
			"The game has no scenarios.", "FindSPE: empty scenario list")
	}
	if len(g.Actions()) == 0 {
		return nil, core.Domainf(ErrNoActions,
			"The game has no actions.", "FindSPE: empty action list")
	}

	// 2. Index the inputs. Expected utilities are recomputed locally as
	//    value × history probability so the search never depends on a prior
	//    in-place mirror.
	players := append([]core.Player(nil), g.Players()...)
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })

	histByID := make(map[int]*core.History, len(hs))
	for _, h := range hs {
		histByID[h.ID] = h
	}

	// expected[historyID][playerID] = payoff value × history probability.
	expected := make(map[int]map[int]float64, len(hs))
	// raw[historyID][playerID] = payoff value, for step snapshots.
	raw := make(map[int]map[int]float64, len(hs))
	for _, p := range payoffs {
		h, ok := histByID[p.HistoryID]
		if !ok {
			continue
		}
		if expected[p.HistoryID] == nil {
			expected[p.HistoryID] = make(map[int]float64, len(players))
			raw[p.HistoryID] = make(map[int]float64, len(players))
		}
		expected[p.HistoryID][p.PlayerID] = p.Value * h.TotalProbability
		raw[p.HistoryID][p.PlayerID] = p.Value
	}

	// actionHists[actionID] = histories containing the action, in history order.
	actionHists := make(map[int][]*core.History, len(g.Actions()))
	for _, h := range hs {
		for _, aid := range h.Actions {
			actionHists[aid] = append(actionHists[aid], h)
		}
	}

	// 3. Group decision scenarios by depth, deepest first.
	byDepth := make(map[int][]*core.Scenario)
	maxDepth := 0
	for _, s := range g.Scenarios() {
		if s.IsTerminal() {
			continue
		}
		byDepth[s.Depth] = append(byDepth[s.Depth], s)
		if s.Depth > maxDepth {
			maxDepth = s.Depth
		}
	}

	// 4. Induct. best maps a scenario id to every optimal continuation
	//    recorded for it; ties within TieTolerance all survive.
	best := make(map[int][]retained, len(g.Scenarios()))
	nextStrategyID := 1

	for depth := maxDepth; depth >= 0; depth-- {
		scenarios := byDepth[depth]
		sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].ID < scenarios[j].ID })

		player := activePlayer(g, players, depth)
		cfg.log.Debug().
			Int("depth", depth).
			Int("scenarios", len(scenarios)).
			Str("player", player.Label()).
			Msg("inducting level")

		for _, s := range scenarios {
			outgoing := g.Adjacency(s.ID)
			if len(outgoing) == 0 {
				continue
			}

			type candidate struct {
				action  *core.Action
				utility float64
				conts   [][]core.Strategy
			}
			candidates := make([]candidate, 0, len(outgoing))
			maxUtil := math.Inf(-1)

			for _, aid := range outgoing {
				action, err := g.ActionByID(aid)
				if err != nil {
					return nil, err
				}

				// Continuation utility: mean of the active player's expected
				// utility over every history passing through this action.
				util := 0.0
				if through := actionHists[aid]; len(through) > 0 {
					total := 0.0
					for _, h := range through {
						total += expected[h.ID][player.ID]
					}
					util = total / float64(len(through))
				}

				// One partial profile per continuation already recorded at
				// the destination, or a bare one-step profile at the frontier.
				var conts [][]core.Strategy
				if downstream := best[action.Destination]; len(downstream) > 0 {
					conts = make([][]core.Strategy, 0, len(downstream))
					for _, r := range downstream {
						strat, err := g.NewStrategy(nextStrategyID, s.ID, aid)
						if err != nil {
							return nil, err
						}
						nextStrategyID++
						cont := make([]core.Strategy, 0, len(r.strategies)+1)
						cont = append(cont, strat)
						cont = append(cont, r.strategies...)
						conts = append(conts, cont)
					}
				} else {
					strat, err := g.NewStrategy(nextStrategyID, s.ID, aid)
					if err != nil {
						return nil, err
					}
					nextStrategyID++
					conts = [][]core.Strategy{{strat}}
				}

				candidates = append(candidates, candidate{action: action, utility: util, conts: conts})
				if util > maxUtil {
					maxUtil = util
				}
			}

			var keep []retained
			for _, c := range candidates {
				if math.Abs(c.utility-maxUtil) >= TieTolerance {
					continue
				}
				for _, cont := range c.conts {
					keep = append(keep, retained{action: c.action, utility: maxUtil, strategies: cont})
				}
			}
			if len(keep) > cfg.maxProfiles {
				return nil, core.Domainf(ErrTooManyProfiles,
					"The tree has too many tied equilibria to enumerate.",
					"FindSPE: scenario %s retained %d continuations, ceiling %d",
					s.Label, len(keep), cfg.maxProfiles)
			}
			best[s.ID] = keep
		}
	}

	// 5. The root's retained list is the complete SPE set.
	root, err := g.Root()
	if err != nil {
		return nil, err
	}
	rootKeep := best[root.ID]

	profiles := make([]*Profile, 0, len(rootKeep))
	for i, r := range rootKeep {
		p, err := buildProfile(g, players, hs, raw, r.strategies, i+1)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	cfg.log.Info().
		Int("profiles", len(profiles)).
		Int("strategies_allocated", nextStrategyID-1).
		Msg("equilibrium search complete")

	return profiles, nil
}

// activePlayer resolves who moves at the given depth: the player assigned
// to round depth+1, or round-robin over player order when unassigned.
func activePlayer(g *core.Game, players []core.Player, depth int) core.Player {
	if round, err := g.RoundByNumber(depth + 1); err == nil && round.Configured() {
		if p, err := g.PlayerByID(round.ActivePlayer); err == nil {
			return p
		}
	}

	return players[depth%len(players)]
}

// buildProfile turns one chain of strategies into a display-ready Profile.
func buildProfile(
	g *core.Game,
	players []core.Player,
	hs []*core.History,
	raw map[int]map[int]float64,
	strategies []core.Strategy,
	id int,
) (*Profile, error) {
	labels := make([]string, len(players))
	for i, p := range players {
		labels[i] = p.Label()
	}

	ordered := append([]core.Strategy(nil), strategies...)
	sort.Slice(ordered, func(i, j int) bool {
		si, _ := g.ScenarioByID(ordered[i].ScenarioID)
		sj, _ := g.ScenarioByID(ordered[j].ScenarioID)

		return si.Depth < sj.Depth
	})

	steps := make([]Step, 0, len(ordered))
	var pathParts []string
	for i, strat := range ordered {
		scenario, err := g.ScenarioByID(strat.ScenarioID)
		if err != nil {
			return nil, err
		}
		action, err := g.ActionByID(strat.ActionID)
		if err != nil {
			return nil, err
		}
		dest, err := g.ScenarioByID(action.Destination)
		if err != nil {
			return nil, err
		}

		steps = append(steps, Step{
			Round:       scenario.Depth + 1,
			PlayerLabel: activePlayer(g, players, scenario.Depth).Label(),
			Scenario:    scenario.Label,
			Action:      action.Label,
			Destination: dest.Label,
			Payoffs:     stepPayoffs(g, hs, raw, labels, scenario, action),
		})

		if i == 0 {
			pathParts = append(pathParts, scenario.Label)
		}
		pathParts = append(pathParts, action.Label, dest.Label)
	}

	last := steps[len(steps)-1]
	final := make(map[string]float64, len(labels))
	vector := make([]float64, len(labels))
	for i, label := range labels {
		final[label] = last.Payoffs[label]
		vector[i] = last.Payoffs[label]
	}

	return &Profile{
		ID:            id,
		Steps:         steps,
		FullHistory:   strings.Join(pathParts, " -> "),
		FinalPayments: final,
		UtilityVector: vector,
		PlayerLabels:  labels,
	}, nil
}

// stepPayoffs snapshots the payoff values of the first history that reaches
// the scenario and then takes the action. The root scenario's action opens
// every history, so its snapshot stays zero.
func stepPayoffs(
	g *core.Game,
	hs []*core.History,
	raw map[int]map[int]float64,
	labels []string,
	scenario *core.Scenario,
	action *core.Action,
) map[string]float64 {
	out := make(map[string]float64, len(labels))
	for _, label := range labels {
		out[label] = 0
	}

	for _, h := range hs {
		idx := -1
		for i, aid := range h.Actions {
			if aid == action.ID {
				idx = i

				break
			}
		}
		if idx <= 0 {
			continue
		}
		prev, err := g.ActionByID(h.Actions[idx-1])
		if err != nil || prev.Destination != scenario.ID {
			continue
		}
		for _, p := range g.Players() {
			out[p.Label()] = raw[h.ID][p.ID]
		}

		break
	}

	return out
}
