// Package config resolves where alert records live and how the optional
// collaborators are invoked.
//
// Precedence, highest first: command-line flag, environment, config
// file, built-in default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	// EnvDir overrides the record root directory.
	EnvDir = "NUDGE_DIR"

	// EnvConfig overrides the config file location.
	EnvConfig = "NUDGE_CONFIG"
)

// Config is the on-disk configuration file. Every field is optional.
type Config struct {
	// Dir is the record root directory.
	Dir string `yaml:"dir"`

	// ChangeHook is a shell command run (detached) after any mutation.
	ChangeHook string `yaml:"change_hook"`

	// Notifier names the notifier binary, overriding the platform probe.
	Notifier string `yaml:"notifier"`

	// Sound and Icon are defaults applied to records created without
	// their own.
	Sound string `yaml:"sound"`
	Icon  string `yaml:"icon"`
}

// Load reads the config file. A missing file yields a zero Config so
// every knob falls through to env and defaults; a present but malformed
// file is an error (silently ignoring a config the user wrote would be
// worse than failing).
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Path returns the config file location: $NUDGE_CONFIG, or
// <default root>/config.yaml.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(DefaultDir(), "config.yaml")
}

// DefaultDir is the built-in record root: ~/.nudge, or a relative
// fallback when the home directory cannot be determined.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".nudge"
	}
	return filepath.Join(home, ".nudge")
}

// ResolveDir picks the record root. flagDir comes from --dir and wins;
// then $NUDGE_DIR, then the config file, then the default.
func (c *Config) ResolveDir(flagDir string) string {
	if flagDir != "" {
		return flagDir
	}
	if env := os.Getenv(EnvDir); env != "" {
		return env
	}
	if c.Dir != "" {
		return c.Dir
	}
	return DefaultDir()
}

// Validate checks the configuration fields for correctness.
func (c *Config) Validate() error {
	var errs []error

	if c.Dir != "" && strings.TrimSpace(c.Dir) == "" {
		errs = append(errs, errors.New("dir must not be blank"))
	}
	if c.ChangeHook != strings.TrimSpace(c.ChangeHook) {
		errs = append(errs, errors.New("change_hook has leading or trailing whitespace"))
	}
	if c.Notifier != strings.TrimSpace(c.Notifier) {
		errs = append(errs, errors.New("notifier has leading or trailing whitespace"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
