// Package histories enumerates every complete play of a built game: a
// depth-first traversal from the root emits one History per root-to-terminal
// path, in deterministic order.
//
// Key guarantees:
//   - Outgoing actions are visited in ascending action id, so history
//     numbering is stable across runs (history 1 is the all-first-actions
//     path, history S^R the all-last-actions path).
//   - A game with branching S and rounds R yields exactly S^R histories,
//     each of length R.
//   - Each history's TotalProbability is the product of its actions'
//     probabilities (0 until the probability package assigns them);
//     Recompute refreshes stored histories after assignment.
//
// A visited-path guard (destination scenario id plus the ordered tuple of
// traversed action ids) detects cycles. Tree construction is acyclic by
// design, so the guard only fires on an externally corrupted adjacency map;
// a detected cycle is logged and that branch pruned, while traversal
// continues elsewhere. This is the single case of local recovery — every
// other failure aborts the whole enumeration.
//
// Errors:
//
//   - ErrNilGame         game is nil
//   - ErrNoActions       the game has no actions to traverse
//   - ErrNoRoot          the game has no root scenario (wraps core.ErrStructure)
//   - ErrBadDestination  an action references a destination outside the arena
//
// Complexity: O(TotalActions + S^R · R) time, O(R) auxiliary stack plus the
// guard set.
package histories
