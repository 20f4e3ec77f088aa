// Command gametree is an interactive console for building and analyzing
// extensive-form game trees: tree construction, probability assignment,
// payoff registration, expected utilities, subgame-perfect equilibria and
// xlsx/SVG export.
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/gametree/session"
)

type config struct {
	ExportDir   string `env:"GAMETREE_EXPORT_DIR" envDefault:"exports"`
	Ceiling     int    `env:"GAMETREE_COMPLEXITY_CEILING" envDefault:"30000"`
	MaxProfiles int    `env:"GAMETREE_MAX_PROFILES" envDefault:"10000"`
	LogLevel    string `env:"GAMETREE_LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "gametree: parse env: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()

	c := newConsole(cfg, log, session.New(session.WithLogger(log)), os.Stdin, os.Stdout)
	if err := c.run(); err != nil {
		log.Error().Err(err).Msg("console terminated")
		os.Exit(1)
	}
}
