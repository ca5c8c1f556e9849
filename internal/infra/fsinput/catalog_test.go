package fsinput

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/aocinput/internal/domain"
)

func TestListInputs(t *testing.T) {
	root := t.TempDir()
	writeInput(t, root, "day02.txt", "b\n")
	writeInput(t, root, "day01.txt", "a\n")
	writeInput(t, root, ".hidden", "x\n")
	if err := os.MkdirAll(filepath.Join(root, "inputs", "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	refs, err := NewLoader(root).ListInputs()
	if err != nil {
		t.Fatalf("ListInputs error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 inputs, got %d (%v)", len(refs), refs)
	}
	if refs[0].Name != "day01.txt" || refs[1].Name != "day02.txt" {
		t.Fatalf("expected sorted names, got %s, %s", refs[0].Name, refs[1].Name)
	}
	if refs[0].Size != 2 {
		t.Fatalf("expected size 2, got %d", refs[0].Size)
	}
	if refs[0].Path != filepath.Join(root, "inputs", "day01.txt") {
		t.Fatalf("unexpected path %s", refs[0].Path)
	}
}

func TestListInputs_MissingDir(t *testing.T) {
	_, err := NewLoader(t.TempDir()).ListInputs()
	assertKind(t, err, domain.KindNotFound)
}
