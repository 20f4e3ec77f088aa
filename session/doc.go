// Package session keeps the bookkeeping of one interactive analysis: the
// configured shape, the active game and every intermediate result produced
// along the way (histories, probability summary, utility matrix, payoffs,
// equilibrium profiles).
//
// A Session is not safe for concurrent use; the console drives it from a
// single goroutine. Saving an empty result is an error so a half-finished
// pipeline cannot silently overwrite earlier work, and Reset returns the
// session to its freshly-created state with a new timestamp.
//
// Every mutation is audit-logged through zerolog with the session id, a
// random UUID assigned at construction.
package session
