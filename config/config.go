// Package config loads the lathe description used by the gear solver.
//
// Sources, later ones winning:
//  1. Defaults (Default).
//  2. A YAML file (Load).
//  3. CHANGEGEARS_* environment variables, optionally seeded from .env
//     files (LoadEnvFiles).
//
// Validate reports every problem at once; callers present the joined
// error as a usage message.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lathegears/logx"
	"github.com/katalvlaran/lathegears/solver"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "CHANGEGEARS_"

// Sentinel validation errors.
var (
	ErrMaxReductions = errors.New("config: max_reductions must be specified and must be greater than zero")
	ErrLead          = errors.New("config: lead must be specified and must be greater than zero")
	ErrShowTop       = errors.New("config: show_top must be greater than zero")
	ErrGear          = errors.New("config: gear tooth counts must be greater than zero")
	ErrParallelism   = errors.New("config: parallelism must not be negative")
	ErrLogLevel      = errors.New("config: unknown log_level")
	ErrEnvValue      = errors.New("config: bad environment value")
)

// Config describes one lathe and its change-gear set.
type Config struct {
	Gears         []int   `yaml:"gears" json:"gears"`
	MaxReductions int     `yaml:"max_reductions" json:"max_reductions"`
	MaxTeeth      int     `yaml:"max_teeth" json:"max_teeth"`
	Lead          float64 `yaml:"lead" json:"lead"` // [rev/in]
	ShowTop       int     `yaml:"show_top" json:"show_top"`
	Parallelism   int     `yaml:"parallelism,omitempty" json:"parallelism,omitempty"`
	LogLevel      string  `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// Default returns the values used for keys missing from the file.
// MaxReductions and Lead have no usable default and must be set.
func Default() Config {
	return Config{
		MaxReductions: 0,
		MaxTeeth:      120,
		Lead:          0,
		ShowTop:       10,
		LogLevel:      "info",
	}
}

// Load reads path over Default, applies environment overrides and
// validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes YAML over Default. Unknown keys are rejected. An empty
// document leaves the defaults in place.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	return cfg, nil
}

// LoadEnvFiles loads .env style files into the process environment
// without overriding variables that are already set. Missing files are
// skipped; with no arguments ".env" in the working directory is tried.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides fields from CHANGEGEARS_* variables found by lookup.
// CHANGEGEARS_GEARS is a comma separated list.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	intVar := func(key string, dst *int) {
		raw, ok := lookup(EnvPrefix + key)
		if !ok || strings.TrimSpace(raw) == "" {
			return
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s%s=%q", ErrEnvValue, EnvPrefix, key, raw))
			return
		}
		*dst = v
	}

	intVar("MAX_REDUCTIONS", &c.MaxReductions)
	intVar("MAX_TEETH", &c.MaxTeeth)
	intVar("SHOW_TOP", &c.ShowTop)
	intVar("PARALLELISM", &c.Parallelism)

	if raw, ok := lookup(EnvPrefix + "LEAD"); ok && strings.TrimSpace(raw) != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %sLEAD=%q", ErrEnvValue, EnvPrefix, raw))
		} else {
			c.Lead = v
		}
	}
	if raw, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && strings.TrimSpace(raw) != "" {
		c.LogLevel = strings.TrimSpace(raw)
	}
	if raw, ok := lookup(EnvPrefix + "GEARS"); ok && strings.TrimSpace(raw) != "" {
		gears, err := ParseIntList(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %sGEARS: %w", ErrEnvValue, EnvPrefix, err))
		} else {
			c.Gears = gears
		}
	}

	return errors.Join(errs...)
}

// Validate checks every field the solver relies on and joins all problems.
func (c Config) Validate() error {
	var errs []error
	if c.MaxReductions <= 0 {
		errs = append(errs, ErrMaxReductions)
	}
	if c.Lead <= 0 {
		errs = append(errs, ErrLead)
	}
	if c.ShowTop <= 0 {
		errs = append(errs, ErrShowTop)
	}
	for i, g := range c.Gears {
		if g <= 0 {
			errs = append(errs, fmt.Errorf("%w: gears[%d]=%d", ErrGear, i, g))
		}
	}
	if c.Parallelism < 0 {
		errs = append(errs, ErrParallelism)
	}
	if _, err := logx.Level(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %q", ErrLogLevel, c.LogLevel))
	}

	return errors.Join(errs...)
}

// Solver converts c into the solver's configuration.
func (c Config) Solver() solver.Config {
	return solver.Config{
		AvailableGears: append([]int(nil), c.Gears...),
		MaxReductions:  c.MaxReductions,
		MaxGearTeeth:   c.MaxTeeth,
		Lead:           c.Lead,
		ShowBestCount:  c.ShowTop,
	}
}

// Fingerprint identifies the fields that change solver output. Two
// configs with equal fingerprints produce equal rankings.
func (c Config) Fingerprint() string {
	return fmt.Sprintf("gears=%v;k=%d;teeth=%d;lead=%g;top=%d",
		c.Gears, c.MaxReductions, c.MaxTeeth, c.Lead, c.ShowTop)
}

// ParseIntList parses "20, 30,40" into []int.
func ParseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", p)
		}
		out = append(out, v)
	}

	return out, nil
}
