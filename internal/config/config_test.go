package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inoxlang/viewseq/internal/utils"
)

func noEnv(string) (string, bool) {
	return "", false
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), CONFIG_FILE_NAME)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("file", func(t *testing.T) {
		path := writeConfigFile(t, "check-sizes: true\nlog-level: debug\nsource: tree\n")

		cfg, err := LoadWithEnv(path, noEnv)
		if !assert.NoError(t, err) {
			return
		}

		assert.Equal(t, Config{
			CheckSizes: true,
			LogLevel:   "debug",
			Source:     TREE_SOURCE,
			File:       path,
		}, cfg)
	})

	t.Run("missing keys keep their default value", func(t *testing.T) {
		path := writeConfigFile(t, "check-sizes: true\n")

		cfg, err := LoadWithEnv(path, noEnv)
		if !assert.NoError(t, err) {
			return
		}
		assert.True(t, cfg.CheckSizes)
		assert.Equal(t, DEFAULT_LOG_LEVEL, cfg.LogLevel)
		assert.Equal(t, DEFAULT_SOURCE, cfg.Source)
	})

	t.Run("environment variables override the file", func(t *testing.T) {
		path := writeConfigFile(t, "source: tree\n")

		cfg, err := LoadWithEnv(path, envMap(map[string]string{
			CHECK_SIZES_ENV_VARNAME: "1",
			LOG_LEVEL_ENV_VARNAME:   "warn",
			SOURCE_ENV_VARNAME:      BITS_SOURCE,
		}))
		if !assert.NoError(t, err) {
			return
		}
		assert.True(t, cfg.CheckSizes)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, BITS_SOURCE, cfg.Source)
	})

	t.Run("invalid boolean in environment", func(t *testing.T) {
		path := writeConfigFile(t, "source: slice\n")

		_, err := LoadWithEnv(path, envMap(map[string]string{CHECK_SIZES_ENV_VARNAME: "maybe"}))
		assert.ErrorContains(t, err, CHECK_SIZES_ENV_VARNAME)
	})

	t.Run("unknown source", func(t *testing.T) {
		path := writeConfigFile(t, "source: array\n")

		_, err := LoadWithEnv(path, noEnv)
		assert.ErrorIs(t, err, ErrUnknownSource)
	})

	t.Run("invalid log level", func(t *testing.T) {
		path := writeConfigFile(t, "log-level: loud\n")

		_, err := LoadWithEnv(path, noEnv)
		assert.ErrorIs(t, err, ErrInvalidLogLevel)
	})

	t.Run("all invalid fields are reported", func(t *testing.T) {
		path := writeConfigFile(t, "source: array\nlog-level: loud\n")

		_, err := LoadWithEnv(path, noEnv)
		assert.ErrorIs(t, err, ErrUnknownSource)
		assert.ErrorIs(t, err, ErrInvalidLogLevel)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeConfigFile(t, "check-size: true\n")

		_, err := LoadWithEnv(path, noEnv)
		assert.Error(t, err)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		path := writeConfigFile(t, "source: [\n")

		_, err := LoadWithEnv(path, noEnv)
		assert.Error(t, err)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"), noEnv)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestConfigLogger(t *testing.T) {
	t.Parallel()

	t.Run("level", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		cfg := Default()
		cfg.LogLevel = "warn"

		logger, err := cfg.Logger(buf)
		if !assert.NoError(t, err) {
			return
		}

		logger.Info().Msg("hidden")
		logger.Warn().Msg("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"src":"viewseq"`)
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("views configuration", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		cfg := Default()
		cfg.CheckSizes = true

		viewsCfg := cfg.ViewsConfig(zerolog.New(buf))
		assert.True(t, viewsCfg.CheckSizes)

		viewsCfg.Logger.Warn().Msg("mismatch")
		assert.Contains(t, buf.String(), `"component":"views"`)
	})

	t.Run("pretty logs are not colorized in a buffer", func(t *testing.T) {
		if FORCE_COLOR {
			t.Skip()
		}
		buf := bytes.NewBuffer(nil)
		cfg := Default()
		cfg.PrettyLogs = true

		logger, err := cfg.Logger(buf)
		if !assert.NoError(t, err) {
			return
		}
		logger.Info().Msg("message")

		assert.Contains(t, buf.String(), "message")
		assert.False(t, utils.HasANSISequences(buf.String()))
	})

	t.Run("escape sequences of messages are removed when logs are not colorized", func(t *testing.T) {
		if FORCE_COLOR {
			t.Skip()
		}
		buf := bytes.NewBuffer(nil)
		cfg := Default()
		cfg.PrettyLogs = true

		logger, err := cfg.Logger(buf)
		if !assert.NoError(t, err) {
			return
		}
		logger.Info().Str("stage", "\x1b[1mdrop\x1b[0m").Msg("\x1b[31mred\x1b[0m")

		assert.Contains(t, buf.String(), "red")
		assert.Contains(t, buf.String(), "drop")
		assert.False(t, utils.HasANSISequences(buf.String()))
	})

	t.Run("plain writer", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		w := plainWriter{w: buf}

		n, err := w.Write([]byte("\x1b[32mok\x1b[0m"))
		assert.NoError(t, err)
		assert.Equal(t, len("\x1b[32mok\x1b[0m"), n)
		assert.Equal(t, "ok", buf.String())

		n, err = w.Write([]byte(" done"))
		assert.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, "ok done", buf.String())
	})
}
