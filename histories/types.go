// types.go — sentinels and options for history enumeration.

package histories

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gametree/core"
)

var (
	// ErrNilGame is returned when a nil *core.Game is passed to Generate.
	ErrNilGame = fmt.Errorf("%w: game is nil", core.ErrStructure)

	// ErrNoActions indicates the game holds no actions to traverse.
	ErrNoActions = fmt.Errorf("%w: game has no actions", core.ErrStructure)

	// ErrNoRoot indicates the game has no root scenario.
	ErrNoRoot = fmt.Errorf("%w: game has no root", core.ErrStructure)

	// ErrBadDestination indicates an action whose destination scenario does
	// not exist in the game arena.
	ErrBadDestination = fmt.Errorf("%w: action destination missing", core.ErrStructure)
)

// Option configures optional behavior of Generate.
type Option func(*genConfig)

// genConfig holds resolved Generate configuration.
type genConfig struct {
	log zerolog.Logger // component logger; Nop by default
}

// defaultConfig returns the baseline configuration: no logging.
func defaultConfig() genConfig {
	return genConfig{log: zerolog.Nop()}
}

// WithLogger installs a zerolog.Logger for traversal diagnostics
// (cycle-guard warnings in particular). The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *genConfig) { c.log = log }
}
