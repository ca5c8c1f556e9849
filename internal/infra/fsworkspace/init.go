package fsworkspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/aocinput/internal/domain"
	"github.com/aalvaropc/aocinput/internal/ports"
)

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init scaffolds a workspace at spec.Root. Existing template files are kept
// unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	dirs := []string{
		filepath.Join(root, domain.DefaultInputsDir),
		filepath.Join(root, ".aoc", "logs"),
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return ioError("fsworkspace.mkdir", d, err)
		}
	}

	if err := ensureGitignore(root); err != nil {
		return ioError("fsworkspace.gitignore", filepath.Join(root, ".gitignore"), err)
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}

		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return ioError("fsworkspace.write", dst, err)
		}
		return nil
	})
}

// ensureGitignore keeps puzzle inputs and local state out of version control.
func ensureGitignore(root string) error {
	const header = "# aocinput"
	entries := []string{
		domain.DefaultInputsDir + "/",
		".aoc/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}

func ioError(op, path string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindIO, Path: path, Err: err}
}
