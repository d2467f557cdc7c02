package sim

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim/trace"
)

// Config mirrors the optional YAML configuration file. CLI flags override
// whatever the file sets.
type Config struct {
	WorkloadPath string `yaml:"workload_path"` // procs.proc (by default)
	Delimiter    string `yaml:"delimiter"`     // single character, ";" by default
	TimeQuantum  int64  `yaml:"time_quantum"`  // RR / VRR quantum, 5 by default
	TraceLevel   string `yaml:"trace_level"`   // "full" (default) or "none"
	LogLevel     string `yaml:"log_level"`     // logrus level, "error" by default
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		WorkloadPath: "procs.proc",
		Delimiter:    ";",
		TimeQuantum:  5,
		TraceLevel:   string(trace.LevelFull),
		LogLevel:     "error",
	}
}

// LoadConfig reads YAML from path and overlays it on the defaults; an empty
// path returns the defaults unchanged. The result is validated either way.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first configuration error, if any.
func (c Config) Validate() error {
	if c.WorkloadPath == "" {
		return fmt.Errorf("config: workload_path must not be empty")
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("config: delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.TimeQuantum < 1 {
		return fmt.Errorf("config: time_quantum must be >= 1, got %d", c.TimeQuantum)
	}
	if !trace.IsValidLevel(c.TraceLevel) {
		return fmt.Errorf("config: unknown trace_level %q", c.TraceLevel)
	}
	return nil
}

// DelimiterRune returns the workload field delimiter as a rune.
// Call Validate first; a malformed delimiter panics here.
func (c Config) DelimiterRune() rune {
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if size != len(c.Delimiter) || r == utf8.RuneError {
		panic(fmt.Sprintf("DelimiterRune: invalid delimiter %q", c.Delimiter))
	}
	return r
}
