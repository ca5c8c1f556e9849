package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/aocinput/internal/domain"
	"github.com/aalvaropc/aocinput/internal/ports"
)

// Finder locates a workspace root by searching upward for a marker file.
type Finder struct {
	Markers []string // defaults to aoc.yaml, aoc.toml
}

func NewFinder() *Finder {
	return &Finder{Markers: []string{domain.ConfigFileYAML, domain.ConfigFileTOML}}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindIO,
			Err:  err,
		}
	}

	// A file path starts the search from its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if f.hasMarker(cur) {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

func (f *Finder) hasMarker(dir string) bool {
	for _, m := range f.Markers {
		if info, err := os.Stat(filepath.Join(dir, m)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
