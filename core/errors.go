// errors.go — failure categories and the dual-message DomainError.
//
// Every failure raised by a gametree package belongs to exactly one of the
// categories below (validation, state, structure, complexity, computation).
// Finer-grained sentinels in the algorithm packages wrap one of these, so
// callers may branch either on the specific sentinel or on the category.

package core

import (
	"errors"
	"fmt"
)

// Category sentinels. Branch with errors.Is(err, core.ErrX).
var (
	// ErrValidation indicates bad parameters, out-of-range probabilities,
	// or mismatched counts supplied by the caller.
	ErrValidation = errors.New("core: validation failed")

	// ErrState indicates an operation attempted in the wrong Game lifecycle
	// state, or an invalid state transition.
	ErrState = errors.New("core: invalid game state")

	// ErrStructure indicates missing root, adjacency or players discovered
	// during traversal of an already-built Game.
	ErrStructure = errors.New("core: malformed game structure")

	// ErrComplexity indicates a configuration whose scenario or action count
	// exceeds the configured ceiling.
	ErrComplexity = errors.New("core: complexity ceiling exceeded")

	// ErrComputation indicates that a utility or equilibrium prerequisite
	// is unmet (missing probabilities, payoffs, utilities).
	ErrComputation = errors.New("core: computation prerequisite unmet")
)

// ErrStateTransition is returned by Game.SetState for transitions outside
// the Created→Running→Completed / →Deleted order. It wraps ErrState.
var ErrStateTransition = fmt.Errorf("%w: illegal transition", ErrState)

// DomainError carries a technical message for logs and a user-facing
// message for display, wrapping an underlying sentinel so that errors.Is
// continues to match the category.
type DomainError struct {
	sentinel error  // category or fine-grained sentinel
	tech     string // technical message, returned by Error()
	user     string // user-facing message
}

// Domainf builds a DomainError around sentinel with a formatted technical
// message. The user message is display-ready prose; the technical message
// should name the operation and offending values.
func Domainf(sentinel error, user, format string, args ...interface{}) *DomainError {
	return &DomainError{
		sentinel: sentinel,
		tech:     fmt.Sprintf(format, args...),
		user:     user,
	}
}

// Error returns the technical message prefixed with the sentinel text.
func (e *DomainError) Error() string {
	return e.sentinel.Error() + ": " + e.tech
}

// Unwrap exposes the sentinel for errors.Is / errors.As chains.
func (e *DomainError) Unwrap() error { return e.sentinel }

// User returns the user-facing message.
func (e *DomainError) User() string { return e.user }

// UserMessage extracts the user-facing message from err when it is (or
// wraps) a DomainError, falling back to a generic phrase otherwise. Intended
// for the console/export boundary; logs should use err.Error().
func UserMessage(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.user
	}

	return "An unexpected error occurred."
}
