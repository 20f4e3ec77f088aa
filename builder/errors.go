// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Every sentinel wraps a core category so errors.Is(err, core.ErrX)
//     also matches at the boundary.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gametree/core"
)

// ErrNonPositiveParam indicates that players, rounds or branching is < 1.
// Classification: validation error (parameters).
// Usage: if errors.Is(err, builder.ErrNonPositiveParam) { /* reject input */ }.
var ErrNonPositiveParam = fmt.Errorf("%w: builder parameter must be >= 1", core.ErrValidation)

// ErrTooManySubtrees indicates a branching factor beyond the 52-letter
// subtree labeling scheme (a..z, A..Z).
// Usage: if errors.Is(err, builder.ErrTooManySubtrees) { /* reduce branching */ }.
var ErrTooManySubtrees = fmt.Errorf("%w: subtree letter scheme exhausted", core.ErrValidation)

// ErrCeilingExceeded indicates that the closed-form scenario or action
// count exceeds the configured complexity ceiling. Raised before any
// allocation; no partial Game is ever attached.
// Usage: if errors.Is(err, builder.ErrCeilingExceeded) { /* shrink game */ }.
var ErrCeilingExceeded = fmt.Errorf("%w: tree too large", core.ErrComplexity)
