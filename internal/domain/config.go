package domain

import (
	"fmt"
	"strings"
)

// Config represents the workspace configuration loaded from aoc.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Groups   GroupsConfig
}

type DefaultsConfig struct {
	StripEmpty bool
}

type PathsConfig struct {
	InputsDir string
}

type GroupsConfig struct {
	Separator Separator
}

// Separator selects how paragraph groups are delimited.
type Separator string

const (
	// SeparatorExact splits on the literal "\n\n" sequence. Runs of more than
	// one blank line leave empty groups or leading empty lines behind.
	SeparatorExact Separator = "exact"
	// SeparatorBlankRuns treats any run of whitespace-only lines as one separator.
	SeparatorBlankRuns Separator = "blank_runs"
)

// ParseSeparator accepts the config spelling of a separator. Empty means exact.
func ParseSeparator(s string) (Separator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SeparatorExact):
		return SeparatorExact, nil
	case string(SeparatorBlankRuns), "blank-runs":
		return SeparatorBlankRuns, nil
	default:
		return "", fmt.Errorf("unknown group separator %q (expected exact|blank_runs)", s)
	}
}

// DefaultInputsDir is the directory, relative to the workspace, that input
// filenames are resolved against.
const DefaultInputsDir = "inputs"

// DefaultConfig provides sane defaults if aoc.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			StripEmpty: true,
		},
		Paths: PathsConfig{
			InputsDir: DefaultInputsDir,
		},
		Groups: GroupsConfig{
			Separator: SeparatorExact,
		},
	}
}
