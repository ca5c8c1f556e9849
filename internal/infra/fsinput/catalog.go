package fsinput

import (
	"os"
	"strings"

	"github.com/aalvaropc/aocinput/internal/domain"
)

// ListInputs returns the regular, non-hidden files of the inputs directory
// sorted by name.
func (l *Loader) ListInputs() ([]domain.InputRef, error) {
	dir := l.Dir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, openError("fsinput.list", dir, err)
	}

	refs := []domain.InputRef{}
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}

		var size int64
		if info, err := e.Info(); err == nil {
			size = info.Size()
		}

		refs = append(refs, domain.InputRef{
			Name: e.Name(),
			Path: l.Path(e.Name()),
			Size: size,
		})
	}
	return refs, nil
}
