// Package gametree models finite, perfect-information extensive-form games:
// a tree of decision points (scenarios) connected by labeled choices
// (actions), used to enumerate every complete play (history), attach
// payoffs, compute expected utilities, and enumerate every pure-strategy
// subgame-perfect equilibrium by backward induction.
//
// 🚀 What is gametree?
//
//	An in-process analysis engine that brings together:
//		• Core entities: players, rounds, scenarios, actions, histories, payoffs
//		• Tree builder: deterministic construction from (players, rounds, branching)
//		• History enumeration: DFS over the tree with probability propagation
//		• Probability tooling: assignment, validation, normalization
//		• Utility matrices: expected utility per (history, player)
//		• Equilibrium search: every SPE, ties preserved, never collapsed early
//		• Exporters: xlsx workbooks and SVG tree diagrams
//
// ✨ Why choose gametree?
//
//   - Deterministic – identical inputs always yield identical labels,
//     history numbering and equilibrium ordering
//   - Exhaustive – ties at a decision node surface every equilibrium,
//     bounded by a configurable profile ceiling
//   - Explicit – typed domain errors with technical and user-facing
//     messages, no ambient global state
//
// Everything is organized under flat algorithm packages:
//
//	core/        — Game aggregate, entity records & the game state machine
//	builder/     — tree construction, closed-form counts, complexity guard
//	histories/   — root-to-terminal path enumeration (DFS)
//	probability/ — per-scenario distribution assignment & validation
//	matrix/      — dense float64 matrix (utility representation)
//	utility/     — expected-utility matrix computation
//	equilibrium/ — all-SPE backward induction & profile formatting
//	export/      — xlsx workbook & SVG diagram collaborators
//	session/     — console session bookkeeping
//	cmd/gametree — interactive console
//
// Quick ASCII example (2 rounds, branching 2):
//
//	    X0
//	  a1/  \b1
//	  X1    X2
//	a2/ \a3 b2/ \b3
//	Z1  Z2  Z3  Z4
//
// Four histories: a1→a2, a1→a3, b1→b2, b1→b3.
//
// See each package's doc.go for contracts, error semantics and complexity.
package gametree
