package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/inoxlang/viewseq/internal/utils"
	"github.com/inoxlang/viewseq/internal/views"
)

const (
	APP_NAME            = "viewseq"
	CONFIG_FILE_NAME    = "config.yaml"
	CONFIG_FILE_RELPATH = APP_NAME + "/" + CONFIG_FILE_NAME

	CHECK_SIZES_ENV_VARNAME = "VIEWSEQ_CHECK_SIZES"
	LOG_LEVEL_ENV_VARNAME   = "VIEWSEQ_LOG_LEVEL"
	SOURCE_ENV_VARNAME      = "VIEWSEQ_SOURCE"

	DEFAULT_LOG_LEVEL = "info"
	DEFAULT_SOURCE    = SLICE_SOURCE

	SLICE_SOURCE  = "slice"
	LINKED_SOURCE = "linked"
	TREE_SOURCE   = "tree"
	BITS_SOURCE   = "bits"
	VECTOR_SOURCE = "vector"

	SOURCE_LOG_FIELD_NAME    = "src"
	COMPONENT_LOG_FIELD_NAME = "component"
)

var (
	SOURCES = []string{SLICE_SOURCE, LINKED_SOURCE, TREE_SOURCE, BITS_SOURCE, VECTOR_SOURCE}

	ErrUnknownSource   = errors.New("unknown source")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config is the configuration of the viewseq command. Values are resolved in this order: defaults,
// configuration file, environment variables; command line flags are applied last by the command.
type Config struct {
	CheckSizes bool   `yaml:"check-sizes"`
	LogLevel   string `yaml:"log-level"`
	Source     string `yaml:"source"`

	// PrettyLogs enables human-readable logs, colorized if the terminal supports it.
	PrettyLogs bool `yaml:"pretty-logs"`

	// path of the file the configuration was read from, empty if there is none.
	File string `yaml:"-"`
}

func Default() Config {
	return Config{
		LogLevel: DEFAULT_LOG_LEVEL,
		Source:   DEFAULT_SOURCE,
	}
}

// Load reads the configuration file at explicitPath, or the file found in the XDG config directories if
// explicitPath is empty, and applies the environment overrides. A missing XDG file is not an error.
func Load(explicitPath string) (Config, error) {
	return LoadWithEnv(explicitPath, os.LookupEnv)
}

func LoadWithEnv(explicitPath string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()

	path := explicitPath
	if path == "" {
		found, err := xdg.SearchConfigFile(CONFIG_FILE_RELPATH)
		if err == nil {
			path = found
		}
	}

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read configuration file: %w", err)
		}
		if err := yaml.UnmarshalWithOptions(content, &cfg, yaml.DisallowUnknownField()); err != nil {
			return Config{}, fmt.Errorf("invalid configuration file %s: %w", path, err)
		}
		cfg.File = path
	}

	if err := cfg.applyEnv(lookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) error {
	if s, ok := lookupEnv(CHECK_SIZES_ENV_VARNAME); ok && s != "" {
		checkSizes, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", CHECK_SIZES_ENV_VARNAME, err)
		}
		c.CheckSizes = checkSizes
	}

	if s, ok := lookupEnv(LOG_LEVEL_ENV_VARNAME); ok && s != "" {
		c.LogLevel = s
	}

	if s, ok := lookupEnv(SOURCE_ENV_VARNAME); ok && s != "" {
		c.Source = s
	}
	return nil
}

// Validate reports all the invalid fields at once.
func (c Config) Validate() error {
	var errs []error
	if !slices.Contains(SOURCES, c.Source) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownSource, c.Source))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel))
	}
	return utils.CombineErrorsWithPrefixMessage("invalid configuration", errs...)
}

// Logger returns a logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	if c.PrettyLogs {
		if ShouldColorize(w) {
			w = zerolog.ConsoleWriter{Out: w}
		} else {
			w = zerolog.ConsoleWriter{Out: plainWriter{w: w}, NoColor: true}
		}
	}

	return zerolog.New(w).Level(level).With().Str(SOURCE_LOG_FIELD_NAME, APP_NAME).Logger(), nil
}

// ViewsConfig returns the configuration of the views package.
func (c Config) ViewsConfig(logger zerolog.Logger) views.Config {
	return views.Config{
		CheckSizes: c.CheckSizes,
		Logger:     logger.With().Str(COMPONENT_LOG_FIELD_NAME, "views").Logger(),
	}
}
