package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/aocinput/internal/domain"
	"github.com/aalvaropc/aocinput/internal/usecase"
)

// --- helpers ---

func newWorkspace(t *testing.T, config string, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	if config != "" {
		if err := os.WriteFile(filepath.Join(root, "aoc.yaml"), []byte(config), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	dir := filepath.Join(root, "inputs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// --- looksLikePath / fileExists ---

func TestLooksLikePath(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"day01.txt", false},
		{"day01", false},
		{"./day01.txt", true},
		{"inputs/day01.txt", true},
		{"/abs/inputs/day01.txt", true},
	}
	for _, c := range cases {
		if got := looksLikePath(c.input); got != c.want {
			t.Errorf("looksLikePath(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "day01.txt")
	if err := os.WriteFile(f, []byte("1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !fileExists(f) {
		t.Error("expected fileExists=true for existing file")
	}
	if fileExists(dir) {
		t.Error("expected fileExists=false for directory")
	}
	if fileExists(filepath.Join(dir, "missing.txt")) {
		t.Error("expected fileExists=false for missing file")
	}
}

// --- printPayload ---

func TestPrintPayload_JSON(t *testing.T) {
	p := domain.Payload{
		Name:      "day01.txt",
		Path:      "inputs/day01.txt",
		Shape:     domain.ShapeIntGroups,
		IntGroups: [][]int{{1, 2}, {3}},
	}

	var buf bytes.Buffer
	if err := printPayload(&buf, p, "json"); err != nil {
		t.Fatalf("printPayload error: %v", err)
	}

	var decoded domain.Payload
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Name != "day01.txt" || len(decoded.IntGroups) != 2 {
		t.Errorf("unexpected decoded payload: %+v", decoded)
	}
}

func TestPrintPayload_PrettyGroups(t *testing.T) {
	p := domain.Payload{
		Name:      "day01.txt",
		Path:      "inputs/day01.txt",
		Shape:     domain.ShapeIntGroups,
		IntGroups: [][]int{{1, 2}, {3}},
	}

	var buf bytes.Buffer
	if err := printPayload(&buf, p, ""); err != nil {
		t.Fatalf("printPayload error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Input: day01.txt", "2 groups", "group 1 (2 lines, sum 3)", "group 2 (1 lines, sum 3)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestPrintPayload_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := printPayload(&buf, domain.Payload{Shape: domain.ShapeLine}, "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected format name in error, got: %v", err)
	}
}

func TestPlural(t *testing.T) {
	if got := plural(1, "line"); got != "1 line" {
		t.Errorf("got %q", got)
	}
	if got := plural(0, "line"); got != "0 lines" {
		t.Errorf("got %q", got)
	}
}

func TestFormatSummary(t *testing.T) {
	got := formatSummary(usecase.Summary{Name: "d.txt", Shape: domain.ShapeIntGroups, Elements: 3, Groups: 2, Sum: 6})
	want := "OK  d.txt  intgroups  3 elements  2 groups  sum=6"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = formatSummary(usecase.Summary{Name: "d.txt", Shape: domain.ShapeLines, Elements: 1})
	if got != "OK  d.txt  lines  1 element" {
		t.Errorf("got %q", got)
	}
}

func TestErrorHint(t *testing.T) {
	notFound := &domain.OpError{Op: "fsinput.read_lines", Kind: domain.KindNotFound}
	if !strings.Contains(errorHint(notFound), "inputs directory") {
		t.Errorf("unexpected hint %q", errorHint(notFound))
	}

	parse := &domain.OpError{Op: "fsinput.parse_lines", Kind: domain.KindParse}
	if !strings.Contains(errorHint(parse), "--strip-empty") {
		t.Errorf("unexpected hint %q", errorHint(parse))
	}

	if errorHint(errors.New("plain")) != "" {
		t.Error("expected no hint for plain errors")
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"init", "inputs", "show", "validate", "browse", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestLoadCommands_Flags(t *testing.T) {
	flags := &rootFlags{}

	show := showCmd(flags)
	for _, f := range []string{"as", "strip-empty", "format"} {
		if show.Flags().Lookup(f) == nil {
			t.Errorf("expected --%s flag on show", f)
		}
	}
	if got := validateCmd(flags).Flags().Lookup("as").DefValue; got != "ints" {
		t.Errorf("validate --as default = %q, want ints", got)
	}
	if got := browseCmd(flags).Flags().Lookup("as").DefValue; got != "groups" {
		t.Errorf("browse --as default = %q, want groups", got)
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestResolveWorkspaceRoot_RelativePath(t *testing.T) {
	got, err := resolveWorkspaceRoot(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}

func TestResolveInputName_PathInsideInputs(t *testing.T) {
	root := newWorkspace(t, "", map[string]string{"day01.txt": "1\n"})
	ws, err := loadWorkspace(root)
	if err != nil {
		t.Fatalf("loadWorkspace: %v", err)
	}

	got, err := resolveInputName(ws, filepath.Join(root, "inputs", "day01.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "day01.txt" {
		t.Errorf("expected day01.txt, got %q", got)
	}

	outside := filepath.Join(root, "aoc.txt")
	if err := os.WriteFile(outside, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveInputName(ws, outside); err == nil {
		t.Error("expected error for a file outside the inputs directory")
	}
}

func TestResolveInputName_DotDotPrefixedName(t *testing.T) {
	root := newWorkspace(t, "", map[string]string{"..notes.txt": "1\n"})
	ws, err := loadWorkspace(root)
	if err != nil {
		t.Fatalf("loadWorkspace: %v", err)
	}

	got, err := resolveInputName(ws, filepath.Join(root, "inputs", "..notes.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "..notes.txt" {
		t.Errorf("expected ..notes.txt, got %q", got)
	}
}

// --- end to end ---

func TestInitCommand_CreatesWorkspace(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "aoc2024")

	out, err := runCLI(t, "init", dir)
	if err != nil {
		t.Fatalf("init error: %v", err)
	}
	if !strings.Contains(out, "Initialized workspace") {
		t.Errorf("unexpected output: %s", out)
	}
	for _, p := range []string{"aoc.yaml", "inputs", ".gitignore"} {
		if _, err := os.Stat(filepath.Join(dir, p)); err != nil {
			t.Errorf("expected %s: %v", p, err)
		}
	}
}

func TestShowCommand_Ints(t *testing.T) {
	root := newWorkspace(t, "", map[string]string{"day01.txt": "1\n2\n3\n"})

	out, err := runCLI(t, "-w", root, "show", "day01.txt", "--as", "ints", "--format", "json")
	if err != nil {
		t.Fatalf("show error: %v", err)
	}

	var p domain.Payload
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(p.Ints) != 3 || p.Ints[2] != 3 {
		t.Errorf("unexpected ints %v", p.Ints)
	}
}

func TestShowCommand_JSONKeepsZeroAndEmptyValues(t *testing.T) {
	root := newWorkspace(t, "", map[string]string{"zero.txt": "0\n", "empty.txt": ""})

	cases := []struct {
		file, shape, key, want string
	}{
		{"zero.txt", "int", "int", "0"},
		{"empty.txt", "lines", "lines", "[]"},
		{"empty.txt", "line", "line", `""`},
	}
	for _, c := range cases {
		out, err := runCLI(t, "-w", root, "show", c.file, "--as", c.shape, "--format", "json")
		if err != nil {
			t.Fatalf("show %s --as %s: %v", c.file, c.shape, err)
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal([]byte(out), &fields); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		got, ok := fields[c.key]
		if !ok {
			t.Fatalf("--as %s: key %q missing:\n%s", c.shape, c.key, out)
		}
		if string(got) != c.want {
			t.Errorf("--as %s: %s = %s, want %s", c.shape, c.key, got, c.want)
		}
	}
}

func TestValidateCommand_ConfigDefaultAndFlagOverride(t *testing.T) {
	cfg := "aoc:\n  defaults:\n    strip_empty: false\n"
	root := newWorkspace(t, cfg, map[string]string{"day01.txt": "1\n\n2\n"})

	_, err := runCLI(t, "-w", root, "validate", "day01.txt")
	if !domain.IsKind(err, domain.KindParse) {
		t.Fatalf("expected parse error with strip_empty=false, got %v", err)
	}

	out, err := runCLI(t, "-w", root, "validate", "day01.txt", "--strip-empty")
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if strings.TrimSpace(out) != "OK  day01.txt  ints  2 elements  sum=3" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestShowCommand_MissingInput(t *testing.T) {
	root := newWorkspace(t, "", nil)

	_, err := runCLI(t, "-w", root, "show", "day99.txt")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestInputsList(t *testing.T) {
	root := newWorkspace(t, "", map[string]string{"day02.txt": "ab\n", "day01.txt": "1\n"})

	out, err := runCLI(t, "-w", root, "inputs", "list")
	if err != nil {
		t.Fatalf("inputs list error: %v", err)
	}
	first := strings.Index(out, "- day01.txt  (2 bytes)")
	second := strings.Index(out, "- day02.txt  (3 bytes)")
	if first < 0 || second < 0 || first > second {
		t.Errorf("unexpected listing:\n%s", out)
	}
}
