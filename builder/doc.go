// Package builder deterministically constructs the scenario/action tree of
// a finite perfect-information game from three parameters: player count P,
// rounds R and branching factor S.
//
// Construction is breadth-level: level 0 is the single root scenario; at
// every level d in 1..R each scenario of level d-1 receives exactly S
// children, and children at level R are marked terminal. Labels are a
// deterministic, order-preserving contract (exporters and the console
// depend on them for reproducible display):
//
//   - decision scenarios: sequential "X<n>" in creation order (root = X0)
//   - terminal scenarios: sequential "Z<n>" in creation order
//   - actions: each of the S root children starts a distinct subtree letter
//     (a..z then A..Z, 52 maximum), and every action inside that subtree is
//     numbered depth-first within the subtree ("a1", "a2", …)
//
// A combinatorial-complexity guard rejects configurations whose closed-form
// scenario or action count exceeds a configurable ceiling (default 30,000)
// before any allocation, so a failed build never leaves a partial Game.
//
// Closed-form counts (must exactly match the built tree):
//
//	TotalHistories(R,S) = S^R
//	TotalScenarios(R,S) = Σ_{d=0..R} S^d
//	TotalActions(R,S)   = Σ_{d=1..R} S^d
//
// Errors:
//
//   - ErrNonPositiveParam     a parameter is < 1
//   - ErrTooManySubtrees      branching exceeds the 52-letter scheme
//   - ErrCeilingExceeded      closed-form counts exceed the ceiling
//
// Complexity: O(TotalScenarios + TotalActions) time and memory.
package builder
