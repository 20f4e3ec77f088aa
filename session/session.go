// session.go — per-run bookkeeping for the interactive console.

package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/gametree/core"
	"github.com/katalvlaran/gametree/equilibrium"
	"github.com/katalvlaran/gametree/matrix"
)

var (
	// ErrNoActiveGame indicates an operation that needs a game before one
	// was built or loaded.
	ErrNoActiveGame = fmt.Errorf("%w: no active game", core.ErrState)

	// ErrEmptyResult indicates an attempt to save an empty result set.
	ErrEmptyResult = fmt.Errorf("%w: empty result", core.ErrValidation)
)

// Config is the shape the user asked for, kept independently of the built
// game so it survives a rebuild.
type Config struct {
	Players   int
	Rounds    int
	Branching int
}

// Session accumulates the results of one analysis run.
type Session struct {
	id        uuid.UUID
	log       zerolog.Logger
	createdAt time.Time

	cfg  Config
	game *core.Game

	histories     []*core.History
	probabilities map[string]map[string]float64
	utilities     *matrix.Dense
	payoffs       []*core.Payoff
	profiles      []*equilibrium.Profile
}

// Option tunes a Session.
type Option func(*Session)

// WithLogger installs a zerolog.Logger for the audit trail.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// New returns an empty session with a fresh id.
func New(opts ...Option) *Session {
	s := &Session{
		id:        uuid.New(),
		log:       zerolog.Nop(),
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Info().Str("session", s.id.String()).Msg("session created")

	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// CreatedAt returns the creation (or last reset) timestamp.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Reset drops every stored result and restarts the clock. The session id
// is kept so the audit trail stays continuous.
func (s *Session) Reset() {
	s.cfg = Config{}
	s.game = nil
	s.histories = nil
	s.probabilities = nil
	s.utilities = nil
	s.payoffs = nil
	s.profiles = nil
	s.createdAt = time.Now()

	s.log.Info().Str("session", s.id.String()).Msg("session reset")
}

// SetConfig validates and stores the requested shape.
func (s *Session) SetConfig(cfg Config) error {
	if cfg.Players < 1 || cfg.Rounds < 1 || cfg.Branching < 1 {
		return core.Domainf(core.ErrValidation,
			"Players, rounds and branching factor must all be at least 1.",
			"SetConfig(players=%d, rounds=%d, branching=%d)",
			cfg.Players, cfg.Rounds, cfg.Branching)
	}
	s.cfg = cfg
	s.log.Info().
		Int("players", cfg.Players).
		Int("rounds", cfg.Rounds).
		Int("branching", cfg.Branching).
		Msg("configuration updated")

	return nil
}

// Config returns the stored shape.
func (s *Session) Config() Config { return s.cfg }

// SetGame installs the active game, replacing any previous one.
func (s *Session) SetGame(g *core.Game) error {
	if g == nil {
		return core.Domainf(ErrNoActiveGame,
			"Build a game before storing it.", "SetGame: nil game")
	}
	s.game = g
	s.log.Info().Int("game", g.ID).Msg("active game set")

	return nil
}

// Game returns the active game, or an error when none is set.
func (s *Session) Game() (*core.Game, error) {
	if s.game == nil {
		return nil, core.Domainf(ErrNoActiveGame,
			"Build a game first.", "Game: no active game")
	}

	return s.game, nil
}

// HasGame reports whether an active game is stored.
func (s *Session) HasGame() bool { return s.game != nil }

// SaveHistories stores the enumerated histories.
func (s *Session) SaveHistories(hs []*core.History) error {
	if len(hs) == 0 {
		return core.Domainf(ErrEmptyResult,
			"There are no histories to save.", "SaveHistories: empty list")
	}
	s.histories = append([]*core.History(nil), hs...)
	s.log.Info().Int("count", len(hs)).Msg("histories saved")

	return nil
}

// Histories returns the stored histories.
func (s *Session) Histories() []*core.History { return s.histories }

// SaveProbabilities stores the per-scenario distribution summary.
func (s *Session) SaveProbabilities(summary map[string]map[string]float64) error {
	if len(summary) == 0 {
		return core.Domainf(ErrEmptyResult,
			"There are no probabilities to save.", "SaveProbabilities: empty summary")
	}
	s.probabilities = summary
	s.log.Info().Int("scenarios", len(summary)).Msg("probabilities saved")

	return nil
}

// Probabilities returns the stored distribution summary.
func (s *Session) Probabilities() map[string]map[string]float64 { return s.probabilities }

// SaveUtilities stores the expected-utility matrix.
func (s *Session) SaveUtilities(m *matrix.Dense) error {
	if m == nil || m.Rows() == 0 {
		return core.Domainf(ErrEmptyResult,
			"There is no utility matrix to save.", "SaveUtilities: empty matrix")
	}
	s.utilities = m
	s.log.Info().Int("rows", m.Rows()).Int("cols", m.Cols()).Msg("utility matrix saved")

	return nil
}

// Utilities returns the stored utility matrix, or nil.
func (s *Session) Utilities() *matrix.Dense { return s.utilities }

// SavePayoffs stores the registered payoffs.
func (s *Session) SavePayoffs(ps []*core.Payoff) error {
	if len(ps) == 0 {
		return core.Domainf(ErrEmptyResult,
			"There are no payoffs to save.", "SavePayoffs: empty list")
	}
	s.payoffs = append([]*core.Payoff(nil), ps...)
	s.log.Info().Int("count", len(ps)).Msg("payoffs saved")

	return nil
}

// Payoffs returns the stored payoffs.
func (s *Session) Payoffs() []*core.Payoff { return s.payoffs }

// SaveProfiles stores the equilibrium profiles.
func (s *Session) SaveProfiles(ps []*equilibrium.Profile) error {
	if len(ps) == 0 {
		return core.Domainf(ErrEmptyResult,
			"There are no equilibria to save.", "SaveProfiles: empty list")
	}
	s.profiles = append([]*equilibrium.Profile(nil), ps...)
	s.log.Info().Int("count", len(ps)).Msg("equilibrium profiles saved")

	return nil
}

// Profiles returns the stored equilibrium profiles.
func (s *Session) Profiles() []*equilibrium.Profile { return s.profiles }

// Summary collapses the session into display-ready key/value pairs.
func (s *Session) Summary() map[string]interface{} {
	state := "none"
	if s.game != nil {
		state = s.game.State().String()
	}
	rows, cols := 0, 0
	if s.utilities != nil {
		rows, cols = s.utilities.Rows(), s.utilities.Cols()
	}

	return map[string]interface{}{
		"session_id":        s.id.String(),
		"created_at":        s.createdAt.Format(time.RFC3339),
		"players":           s.cfg.Players,
		"rounds":            s.cfg.Rounds,
		"branching":         s.cfg.Branching,
		"has_active_game":   s.game != nil,
		"game_state":        state,
		"histories":         len(s.histories),
		"has_probabilities": len(s.probabilities) > 0,
		"utility_shape":     fmt.Sprintf("%dx%d", rows, cols),
		"payoffs":           len(s.payoffs),
		"equilibria":        len(s.profiles),
	}
}
