package views

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Config holds the debug settings of the package, the zero value disables all checks.
type Config struct {
	// CheckSizes enables a consistency check of the explicit sizes passed to SubN and SubOfN:
	// the distance between the positions is computed and a mismatch is logged as a warning.
	// The explicit size is kept in any case.
	CheckSizes bool

	Logger zerolog.Logger
}

var currentConfig atomic.Pointer[Config]

func init() {
	currentConfig.Store(&Config{Logger: zerolog.Nop()})
}

// Configure replaces the package configuration.
func Configure(cfg Config) {
	currentConfig.Store(&cfg)
	cfg.Logger.Debug().Bool("check-sizes", cfg.CheckSizes).Msg("views configured")
}

func config() *Config {
	return currentConfig.Load()
}

func checkExplicitSize[T any, P Iterator[T, P]](begin, end P, size int) {
	cfg := config()
	if !cfg.CheckSizes {
		return
	}

	actual := Distance[T, P](begin, end)
	if actual != size {
		cfg.Logger.Warn().
			Int("explicit-size", size).
			Int("distance", actual).
			Msg("explicit size of sub view does not match the distance between its positions")
	}
}
