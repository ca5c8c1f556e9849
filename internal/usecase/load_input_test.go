package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aalvaropc/aocinput/internal/domain"
	"github.com/aalvaropc/aocinput/internal/infra/fsinput"
	"github.com/aalvaropc/aocinput/internal/ports"
)

type fakeReader struct {
	lines      []string
	groups     [][]string
	err        error
	calls      int
	stripEmpty bool
}

func (f *fakeReader) ReadFirstLine(string) (string, error) {
	f.calls++
	if len(f.lines) == 0 {
		return "", f.err
	}
	return f.lines[0], f.err
}

func (f *fakeReader) ReadFirstLineInt(name string) (int, error) {
	line, err := f.ReadFirstLine(name)
	if err != nil {
		return 0, err
	}
	return domain.ParseInt(line)
}

func (f *fakeReader) ReadLines(_ string, stripEmpty bool) ([]string, error) {
	f.calls++
	f.stripEmpty = stripEmpty
	return f.lines, f.err
}

func (f *fakeReader) ReadInts(name string, stripEmpty bool) ([]int, error) {
	lines, err := f.ReadLines(name, stripEmpty)
	if err != nil {
		return nil, err
	}
	return domain.ParseInts(lines)
}

func (f *fakeReader) ReadGroups(string) ([][]string, error) {
	f.calls++
	return f.groups, f.err
}

func (f *fakeReader) ReadIntGroups(name string) ([][]int, error) {
	groups, err := f.ReadGroups(name)
	if err != nil {
		return nil, err
	}
	return domain.ParseIntGroups(groups)
}

func (f *fakeReader) Path(name string) string { return filepath.Join("inputs", name) }

var _ ports.InputReader = (*fakeReader)(nil)

func TestLoadInput_DispatchesByShape(t *testing.T) {
	r := &fakeReader{
		lines:  []string{"1", "2", "3"},
		groups: [][]string{{"1", "2"}, {"3"}},
	}
	uc := NewLoadInput(r)
	ctx := context.Background()

	cases := []struct {
		shape domain.Shape
		check func(p domain.Payload) bool
	}{
		{domain.ShapeLine, func(p domain.Payload) bool { return p.Line == "1" }},
		{domain.ShapeInt, func(p domain.Payload) bool { return p.Int == 1 }},
		{domain.ShapeLines, func(p domain.Payload) bool { return reflect.DeepEqual(p.Lines, []string{"1", "2", "3"}) }},
		{domain.ShapeInts, func(p domain.Payload) bool { return reflect.DeepEqual(p.Ints, []int{1, 2, 3}) }},
		{domain.ShapeGroups, func(p domain.Payload) bool { return reflect.DeepEqual(p.Groups, [][]string{{"1", "2"}, {"3"}}) }},
		{domain.ShapeIntGroups, func(p domain.Payload) bool { return reflect.DeepEqual(p.IntGroups, [][]int{{1, 2}, {3}}) }},
	}

	for _, c := range cases {
		p, err := uc.Execute(ctx, LoadRequest{Name: "day01.txt", Shape: c.shape, StripEmpty: true})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.shape, err)
		}
		if p.Shape != c.shape || p.Name != "day01.txt" || p.Path != filepath.Join("inputs", "day01.txt") {
			t.Fatalf("%s: unexpected payload header %+v", c.shape, p)
		}
		if !c.check(p) {
			t.Fatalf("%s: unexpected payload %+v", c.shape, p)
		}
	}
}

func TestLoadInput_PassesStripEmpty(t *testing.T) {
	r := &fakeReader{lines: []string{"a"}}
	uc := NewLoadInput(r)

	if _, err := uc.Execute(context.Background(), LoadRequest{Name: "x", Shape: domain.ShapeLines, StripEmpty: false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.stripEmpty {
		t.Fatalf("expected stripEmpty=false to reach the reader")
	}
}

func TestLoadInput_UnknownShape(t *testing.T) {
	r := &fakeReader{}
	_, err := NewLoadInput(r).Execute(context.Background(), LoadRequest{Name: "x", Shape: "csv"})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if r.calls != 0 {
		t.Fatalf("expected no reads, got %d", r.calls)
	}
}

func TestLoadInput_EmptyName(t *testing.T) {
	_, err := NewLoadInput(&fakeReader{}).Execute(context.Background(), LoadRequest{Name: "  ", Shape: domain.ShapeLine})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadInput_StopsOnCanceledContext(t *testing.T) {
	r := &fakeReader{lines: []string{"1"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoadInput(r).Execute(ctx, LoadRequest{Name: "x", Shape: domain.ShapeLine})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if r.calls != 0 {
		t.Fatalf("expected 0 reads, got %d", r.calls)
	}
}

func TestLoadInput_PropagatesReaderError(t *testing.T) {
	readErr := &domain.OpError{Op: "fsinput.read_lines", Kind: domain.KindNotFound, Err: os.ErrNotExist}
	r := &fakeReader{err: readErr}

	_, err := NewLoadInput(r).Execute(context.Background(), LoadRequest{Name: "x", Shape: domain.ShapeInts, StripEmpty: true})
	if !errors.Is(err, readErr) {
		t.Fatalf("expected reader error, got %v", err)
	}
}

func TestLoadInput_WithFilesystemLoader(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "inputs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "day01.txt"), []byte("1\n2\n\n3\n4\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	uc := NewLoadInput(fsinput.NewLoader(root))
	p, err := uc.Execute(context.Background(), LoadRequest{Name: "day01.txt", Shape: domain.ShapeIntGroups})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(p.IntGroups, [][]int{{1, 2}, {3, 4}}) {
		t.Fatalf("got %v", p.IntGroups)
	}
	if p.Path != filepath.Join(dir, "day01.txt") {
		t.Fatalf("unexpected path %s", p.Path)
	}
}
