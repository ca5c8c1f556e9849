package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/aocinput/internal/domain"
)

// MapConfig applies the values present in fc on top of the defaults.
func MapConfig(path string, fc FileConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	sec := fc.AOC

	if sec.Defaults.StripEmpty != nil {
		cfg.Defaults.StripEmpty = *sec.Defaults.StripEmpty
	}

	if dir := strings.TrimSpace(sec.Paths.InputsDir); dir != "" {
		if filepath.IsAbs(dir) {
			return cfg, invalidField(path, "paths.inputs_dir", "must be relative to the workspace root")
		}
		cfg.Paths.InputsDir = filepath.Clean(dir)
	}

	sep, err := domain.ParseSeparator(sec.Groups.Separator)
	if err != nil {
		return cfg, invalidField(path, "groups.separator", err.Error())
	}
	cfg.Groups.Separator = sep

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
