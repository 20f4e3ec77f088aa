// Package utility combines payoffs and history probabilities into the
// expected-utility matrix: one row per history, one column per player
// (players ordered by ascending id).
//
// For every (history h, player p) pair:
//
//	utility[h][p] = payoff(p,h).Value × h.TotalProbability
//
// Each Payoff's own ExpectedUtility field is updated to the same product.
// A (player, history) pair without a registered payoff contributes 0.
//
// Consistency checks precede computation — non-empty histories and
// payoffs, every payoff referencing an existing history and player, every
// history carrying a computed probability — and any violation aborts
// before a single matrix cell is written.
//
// Errors:
//
//   - ErrNoHistories      empty history list
//   - ErrNoPayoffs        empty payoff list
//   - ErrUnknownHistory   a payoff references a history outside the list
//   - ErrUnknownPlayer    a payoff references a player outside the game
//
// Complexity: O(H·P + payoffs) time, O(H·P) memory for the matrix.
package utility
