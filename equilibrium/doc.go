// Package equilibrium enumerates every pure-strategy subgame-perfect
// equilibrium (SPE) of a built, probability-assigned, payoff-registered
// game by backward induction — preserving every tie instead of collapsing
// to a single optimum.
//
// Algorithm (per decision scenario, deepest level first):
//
//  1. Determine the active player: the player assigned to round depth+1,
//     falling back to round-robin by depth when no assignment exists.
//  2. Score each outgoing action with its continuation utility: the
//     arithmetic mean, over all histories containing the action, of the
//     active player's expected utility in those histories. This averaging
//     rule is intentional and load-bearing; see the note below.
//  3. Combine each action with the best continuations already recorded at
//     its destination (post-order): one partial strategy profile per
//     recorded continuation, or a single one-step profile for terminals.
//  4. Retain every action within TieTolerance (1e-6) of the maximum —
//     together with all of its continuations. The per-scenario list of
//     optimal continuations is the canonical intermediate representation
//     and is never collapsed early.
//
// After depth 0 the root's retained list is the complete SPE set. Profile
// counts are worst-case exponential in the number of ties; a configurable
// ceiling (WithMaxProfiles, default 10,000) fails fast instead of
// exhausting memory.
//
// Note on the averaging rule: classical backward induction propagates a
// single subgame value; this package instead averages the active player's
// expected utility across every history through an action, reproducing the
// reference behavior exactly. Do not "fix" it without confirming intent.
//
// Errors:
//
//   - ErrNilGame, ErrNoHistories, ErrNoPayoffs, ErrNoPlayers,
//     ErrNoScenarios, ErrNoActions — missing prerequisites, checked before
//     any partial result is produced
//   - ErrTooManyProfiles — the profile ceiling was hit
//
// Complexity: O(depth · scenarios · branching · histories) scoring plus the
// (potentially exponential) profile combination.
package equilibrium
