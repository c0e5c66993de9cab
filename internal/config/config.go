// Package config handles rxnpath configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds the effective settings for a run. Values come from defaults,
// then the global config file, then environment variables, then flags.
type Config struct {
	ReactionsPath string `yaml:"reactions_path" json:"reactions_path" validate:"required"`
	MaxCompounds  int    `yaml:"max_compounds" json:"max_compounds" validate:"gte=0"` // 0 = unbounded
	MaxReactions  int    `yaml:"max_reactions" json:"max_reactions" validate:"gte=0"` // 0 = unbounded
	Layout        string `yaml:"layout" json:"layout" validate:"oneof=chain circle grid"`
	Jobs          int    `yaml:"jobs" json:"jobs" validate:"gte=1,lte=256"`

	// reactionsExplicit is set when the path came from the environment or a flag
	reactionsExplicit bool
}

const (
	// DefaultReactionsPath is read from the working directory. When it is
	// missing, the built-in reactions are used instead.
	DefaultReactionsPath = "reactions.txt"

	DefaultMaxCompounds = 100
	DefaultMaxReactions = 100
	DefaultLayout       = "chain"
	DefaultJobs         = 4
)

// Environment variables that override the config file.
const (
	EnvReactions    = "RXNPATH_REACTIONS"
	EnvMaxCompounds = "RXNPATH_MAX_COMPOUNDS"
	EnvMaxReactions = "RXNPATH_MAX_REACTIONS"
)

var validate = validator.New()

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ReactionsPath: DefaultReactionsPath,
		MaxCompounds:  DefaultMaxCompounds,
		MaxReactions:  DefaultMaxReactions,
		Layout:        DefaultLayout,
		Jobs:          DefaultJobs,
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvReactions); v != "" {
		c.SetReactionsPath(v)
	}
	if v := getenv(EnvMaxCompounds); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvMaxCompounds, err)
		}
		c.MaxCompounds = n
	}
	if v := getenv(EnvMaxReactions); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvMaxReactions, err)
		}
		c.MaxReactions = n
	}
	return nil
}

// SetReactionsPath sets an explicitly requested reactions path.
func (c *Config) SetReactionsPath(path string) {
	c.ReactionsPath = path
	c.reactionsExplicit = true
}

// UsesDefaultReactions reports whether the reactions path is the implicit
// default, in which case a missing file falls back to the built-in reactions.
// A path requested through the environment or a flag never falls back, even
// when it names the default file.
func (c *Config) UsesDefaultReactions() bool {
	return !c.reactionsExplicit && c.ReactionsPath == DefaultReactionsPath
}

// ExpandTilde expands a leading ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
