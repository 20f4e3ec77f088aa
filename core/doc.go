// Package core defines the central Game aggregate and its entity records:
// Player, Round, Scenario, Action, History, Payoff and Strategy.
//
// The Game owns every entity for its lifetime and stores them in id-indexed
// arenas; all cross-references (Action→Scenario, Payoff→History, …) are
// plain integer ids resolved through the Game, so the object graph carries
// no pointer cycles. Scenario ids are assigned in creation (breadth) order
// starting at 0 for the root; action ids are assigned in a global
// depth-first order starting at 1; history ids are 1-based in enumeration
// order.
//
// Lifecycle: a Game moves through the states
//
//	Created → Running → Completed
//
// strictly forward, with Deleted reachable from any non-terminal state and
// itself terminal. Attempting any other transition returns ErrStateTransition.
//
// Error policy (shared by every gametree package):
//   - Package-level sentinels classify failures; branch with errors.Is.
//   - DomainError decorates a sentinel with a technical message (for logs)
//     and a user-facing message (for display); UserMessage(err) extracts
//     the latter at the boundary.
//
// The package contains no algorithms: building, enumeration, probability
// assignment, utility computation and equilibrium search live in their own
// packages and mutate the Game through its exported methods only.
package core
