package aocinput

import (
	"log/slog"
	"strings"

	"github.com/aalvaropc/aocinput/internal/domain"
	"github.com/aalvaropc/aocinput/internal/infra/fsinput"
)

// Separator selects how ReadGroups delimits paragraphs.
type Separator = domain.Separator

const (
	// SeparatorExact splits on exactly "\n\n". Two or more consecutive blank
	// lines leave empty groups or leading empty lines in the result.
	SeparatorExact = domain.SeparatorExact
	// SeparatorBlankRuns treats any run of blank lines as one separator.
	SeparatorBlankRuns = domain.SeparatorBlankRuns
)

// DefaultDir is the directory the package-level functions read from.
const DefaultDir = domain.DefaultInputsDir

type settings struct {
	stripEmpty bool
	separator  Separator
	log        *slog.Logger
}

// Option adjusts a Reader or a single call.
type Option func(*settings)

// WithStripEmpty controls whether whitespace-only lines are dropped by
// ReadLines and ReadInts. The default is true.
func WithStripEmpty(strip bool) Option {
	return func(s *settings) { s.stripEmpty = strip }
}

// WithSeparator selects the paragraph separator for ReadGroups and
// ReadIntGroups. The default is SeparatorExact.
func WithSeparator(sep Separator) Option {
	return func(s *settings) { s.separator = sep }
}

// WithLogger sends debug read events to log instead of the process logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) { s.log = log }
}

// Reader reads input files from one directory.
type Reader struct {
	dir  string
	opts []Option
}

// New returns a Reader over dir. opts become the defaults for every call.
// An empty dir reads from the working directory itself.
func New(dir string, opts ...Option) *Reader {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	return &Reader{dir: dir, opts: opts}
}

var std = New(DefaultDir)

// Path returns where name is read from.
func (r *Reader) Path(name string) string {
	return r.loader(nil).Path(name)
}

// ReadLine returns the first line of name with surrounding whitespace removed.
// An empty file yields "". WithStripEmpty has no effect here.
func (r *Reader) ReadLine(name string, opts ...Option) (string, error) {
	return r.loader(opts).ReadFirstLine(name)
}

// ReadLineInt parses the first line of name as a base-10 integer.
func (r *Reader) ReadLineInt(name string, opts ...Option) (int, error) {
	return r.loader(opts).ReadFirstLineInt(name)
}

// ReadLines returns the lines of name in file order.
func (r *Reader) ReadLines(name string, opts ...Option) ([]string, error) {
	s := r.settings(opts)
	return r.build(s).ReadLines(name, s.stripEmpty)
}

// ReadInts returns the lines of name parsed as integers. With
// WithStripEmpty(false) a blank line is a parse error.
func (r *Reader) ReadInts(name string, opts ...Option) ([]int, error) {
	s := r.settings(opts)
	return r.build(s).ReadInts(name, s.stripEmpty)
}

// ReadGroups returns the blank-line separated paragraphs of name.
func (r *Reader) ReadGroups(name string, opts ...Option) ([][]string, error) {
	return r.loader(opts).ReadGroups(name)
}

// ReadIntGroups returns the paragraphs of name with every line parsed as an
// integer.
func (r *Reader) ReadIntGroups(name string, opts ...Option) ([][]int, error) {
	return r.loader(opts).ReadIntGroups(name)
}

func (r *Reader) settings(call []Option) settings {
	s := settings{stripEmpty: true, separator: SeparatorExact}
	for _, opt := range r.opts {
		opt(&s)
	}
	for _, opt := range call {
		opt(&s)
	}
	return s
}

func (r *Reader) loader(call []Option) *fsinput.Loader {
	return r.build(r.settings(call))
}

func (r *Reader) build(s settings) *fsinput.Loader {
	opts := []fsinput.Option{
		fsinput.WithInputsDir(r.dir),
		fsinput.WithSeparator(s.separator),
	}
	if s.log != nil {
		opts = append(opts, fsinput.WithLogger(s.log))
	}
	return fsinput.NewLoader("", opts...)
}

// ReadLine reads the first line of inputs/name.
func ReadLine(name string, opts ...Option) (string, error) {
	return std.ReadLine(name, opts...)
}

// ReadLineInt reads the first line of inputs/name as an integer.
func ReadLineInt(name string, opts ...Option) (int, error) {
	return std.ReadLineInt(name, opts...)
}

// ReadLines reads every line of inputs/name.
func ReadLines(name string, opts ...Option) ([]string, error) {
	return std.ReadLines(name, opts...)
}

// ReadInts reads every line of inputs/name as an integer.
func ReadInts(name string, opts ...Option) ([]int, error) {
	return std.ReadInts(name, opts...)
}

// ReadGroups reads the paragraphs of inputs/name.
func ReadGroups(name string, opts ...Option) ([][]string, error) {
	return std.ReadGroups(name, opts...)
}

// ReadIntGroups reads the paragraphs of inputs/name as integers.
func ReadIntGroups(name string, opts ...Option) ([][]int, error) {
	return std.ReadIntGroups(name, opts...)
}
