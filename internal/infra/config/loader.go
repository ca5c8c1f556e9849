package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/aocinput/internal/domain"
)

// Load reads the workspace config from root, preferring aoc.yaml over aoc.toml.
func Load(root string) (domain.Config, error) {
	for _, name := range []string{domain.ConfigFileYAML, domain.ConfigFileTOML} {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	return domain.DefaultConfig(), &domain.OpError{
		Op:   "config.load",
		Kind: domain.KindNotFound,
		Path: filepath.Join(root, domain.ConfigFileYAML),
		Err:  domain.ErrNotFound,
	}
}

// LoadFile decodes a single config file; the format follows the extension.
func LoadFile(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var fc FileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(b, &fc)
	} else {
		err = yaml.Unmarshal(b, &fc)
	}
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, fc)
}
