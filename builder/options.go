// options.go — functional options for tree construction.

package builder

import "github.com/rs/zerolog"

// DefaultCeiling bounds the closed-form scenario and action counts a
// configuration may produce before Build refuses to allocate.
const DefaultCeiling = 30000

// Option configures optional behavior of Build.
type Option func(*buildConfig)

// buildConfig holds resolved Build configuration.
type buildConfig struct {
	ceiling int            // max scenarios and max actions
	gameID  int            // id for the constructed Game
	log     zerolog.Logger // component logger; Nop by default
}

// defaultConfig returns the baseline configuration: DefaultCeiling,
// game id 1, no logging.
func defaultConfig() buildConfig {
	return buildConfig{
		ceiling: DefaultCeiling,
		gameID:  1,
		log:     zerolog.Nop(),
	}
}

// WithCeiling overrides the complexity ceiling applied to both the
// closed-form scenario count and action count. Non-positive values are
// ignored and the default is retained.
func WithCeiling(max int) Option {
	return func(c *buildConfig) {
		if max > 0 {
			c.ceiling = max
		}
	}
}

// WithGameID sets the id of the constructed Game (default 1).
// Non-positive values are ignored.
func WithGameID(id int) Option {
	return func(c *buildConfig) {
		if id > 0 {
			c.gameID = id
		}
	}
}

// WithLogger installs a zerolog.Logger for build diagnostics.
// The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *buildConfig) { c.log = log }
}
