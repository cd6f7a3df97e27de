// Package config loads engine settings from a TOML file and the environment.
//
// Settings are resolved in priority order:
//  1. Defaults (parslice.DefaultMaxWorkers, parslice.DefaultMinChunk, info
//     logging in text format)
//  2. The TOML file passed to Load, if any
//  3. Environment variables (PARSLICE_MAX_WORKERS, PARSLICE_MIN_CHUNK,
//     PARSLICE_LOG_LEVEL, PARSLICE_LOG_FORMAT)
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/exascience/parslice"
)

const (
	envMaxWorkers = "PARSLICE_MAX_WORKERS"
	envMinChunk   = "PARSLICE_MIN_CHUNK"
	envLogLevel   = "PARSLICE_LOG_LEVEL"
	envLogFormat  = "PARSLICE_LOG_FORMAT"

	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Settings holds the configurable values of the engine, as stored in a TOML
// file.
type Settings struct {
	MaxWorkers int         `toml:"max_workers"`
	MinChunk   int         `toml:"min_chunk"`
	Log        LogSettings `toml:"log"`
}

// LogSettings configures the logger passed to the engine.
type LogSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{
		MaxWorkers: parslice.DefaultMaxWorkers,
		MinChunk:   parslice.DefaultMinChunk,
		Log: LogSettings{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// Load resolves the settings from the defaults, the TOML file at path, and the
// environment. An empty path skips the file.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path != "" {
		if err := loadFile(&s, path); err != nil {
			return Settings{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}
	if err := loadFromEnv(&s); err != nil {
		return Settings{}, fmt.Errorf("loading environment: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func loadFile(s *Settings, path string) error {
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(s *Settings) error {
	if v := os.Getenv(envMaxWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envMaxWorkers, err)
		}
		s.MaxWorkers = n
	}
	if v := os.Getenv(envMinChunk); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envMinChunk, err)
		}
		s.MinChunk = n
	}
	if v := os.Getenv(envLogLevel); v != "" {
		s.Log.Level = v
	}
	if v := os.Getenv(envLogFormat); v != "" {
		s.Log.Format = v
	}
	return nil
}

// Validate reports settings the engine would reject.
func (s Settings) Validate() error {
	if s.MaxWorkers < 0 {
		return fmt.Errorf("invalid max_workers: %d", s.MaxWorkers)
	}
	if s.MinChunk < 0 {
		return fmt.Errorf("invalid min_chunk: %d", s.MinChunk)
	}
	return nil
}

// Engine returns the parslice.Config described by s. The logger and observer
// may be nil.
func (s Settings) Engine(logger *log.Logger, observer parslice.Observer) parslice.Config {
	return parslice.Config{
		MaxWorkers: s.MaxWorkers,
		MinChunk:   s.MinChunk,
		Logger:     logger,
		Observer:   observer,
	}
}

// NewLogger creates a logger writing to w with the level and format of s.
func (s LogSettings) NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:     ParseLogLevel(s.Level),
		Formatter: ParseLogFormatter(s.Format),
		Prefix:    "parslice",
	})
}

// ParseLogLevel parses a string log level to a charmbracelet/log Level.
func ParseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseLogFormatter parses a string formatter name to a charmbracelet/log
// Formatter.
func ParseLogFormatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
