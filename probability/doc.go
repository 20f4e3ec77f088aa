// Package probability validates and mutates per-scenario action-probability
// distributions.
//
// Three operations:
//
//   - Assign(g, actionIDs, values): count-match and range-check [0,1], then
//     store each value on its action. Partial assignment never happens — the
//     whole batch is validated before the first mutation.
//   - Validate(g, scenarioID): true iff the scenario's outgoing
//     probabilities sum to 1 within Tolerance (0.001); trivially true for
//     terminal scenarios.
//   - Normalize(g, actionIDs): divide every probability by the
//     pre-normalization sum; an all-zero or negative sum cannot be
//     normalized. Idempotent within floating tolerance.
//
// Side effect: assignment and normalization mutate Action.Probability in
// place, so previously computed history probabilities become stale; callers
// must re-invoke histories.Recompute afterwards.
//
// Errors:
//
//   - ErrCountMismatch  len(actionIDs) != len(values), or empty input
//   - ErrOutOfRange     a value lies outside [0,1]
//   - ErrZeroSum        normalization over a sum <= 0
//
// Complexity: O(n) per operation over n actions.
package probability
