package fsinput

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/aocinput/internal/domain"
	"github.com/aalvaropc/aocinput/internal/infra/logger"
	"github.com/aalvaropc/aocinput/internal/ports"
)

// Loader reads input files from <root>/<inputsDir>. It holds no state between
// calls and is safe for concurrent use.
type Loader struct {
	rootDir   string
	inputsDir string
	separator domain.Separator
	log       *slog.Logger
}

type Option func(*Loader)

func WithInputsDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.inputsDir = dir
		}
	}
}

func WithSeparator(sep domain.Separator) Option {
	return func(l *Loader) {
		if sep != "" {
			l.separator = sep
		}
	}
}

// WithLogger overrides the process logger.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// NewLoader builds a loader rooted at root. An empty root resolves paths
// against the working directory.
func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		rootDir:   root,
		inputsDir: domain.DefaultInputsDir,
		separator: domain.SeparatorExact,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var (
	_ ports.InputReader  = (*Loader)(nil)
	_ ports.InputCatalog = (*Loader)(nil)
)

// Path resolves name against the inputs directory.
func (l *Loader) Path(name string) string {
	return filepath.Join(l.rootDir, l.inputsDir, name)
}

// Dir is the resolved inputs directory.
func (l *Loader) Dir() string {
	return filepath.Join(l.rootDir, l.inputsDir)
}

// ReadFirstLine returns the first line of the file with surrounding whitespace
// removed. An empty file yields "".
func (l *Loader) ReadFirstLine(name string) (string, error) {
	const op = "fsinput.read_line"
	path := l.Path(name)

	f, err := os.Open(path)
	if err != nil {
		return "", openError(op, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	raw, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", &domain.OpError{Op: op, Kind: domain.KindIO, Path: path, Err: err}
	}

	line := domain.NormalizeNewlines(raw)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)

	l.logger().Debug("input.read", "op", op, "path", path, "bytes", len(raw))
	return line, nil
}

// ReadLines returns every line of the file in order. With stripEmpty, lines
// that are empty after trimming are dropped; kept lines are not trimmed.
func (l *Loader) ReadLines(name string, stripEmpty bool) ([]string, error) {
	const op = "fsinput.read_lines"
	path := l.Path(name)

	text, err := readText(op, path)
	if err != nil {
		return nil, err
	}

	lines := domain.SplitLines(text)
	if stripEmpty {
		lines = domain.DropBlank(lines)
	}

	l.logger().Debug("input.read", "op", op, "path", path, "bytes", len(text), "lines", len(lines), "strip_empty", stripEmpty)
	return lines, nil
}

// ReadGroups returns the paragraphs of the file, split according to the
// loader's separator.
func (l *Loader) ReadGroups(name string) ([][]string, error) {
	const op = "fsinput.read_groups"
	path := l.Path(name)

	text, err := readText(op, path)
	if err != nil {
		return nil, err
	}

	groups := domain.SplitGroups(text, l.separator)

	l.logger().Debug("input.read", "op", op, "path", path, "bytes", len(text), "groups", len(groups), "separator", string(l.separator))
	return groups, nil
}

func (l *Loader) logger() *slog.Logger {
	if l.log != nil {
		return l.log
	}
	return logger.L()
}

func readText(op, path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", openError(op, path, err)
	}
	return domain.NormalizeNewlines(string(b)), nil
}

func openError(op, path string, err error) error {
	kind := domain.KindIO
	if errors.Is(err, fs.ErrNotExist) {
		kind = domain.KindNotFound
	}
	return &domain.OpError{Op: op, Kind: kind, Path: path, Err: err}
}
