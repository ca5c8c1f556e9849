package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/aocinput/internal/domain"
	"github.com/aalvaropc/aocinput/internal/infra/config"
	"github.com/aalvaropc/aocinput/internal/infra/fsinput"
	"github.com/aalvaropc/aocinput/internal/infra/logger"
	"github.com/aalvaropc/aocinput/internal/infra/workspacefinder"
	"github.com/aalvaropc/aocinput/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	inputs *fsinput.Loader
	load   *usecase.LoadInput
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	inputs := fsinput.NewLoader(
		root,
		fsinput.WithInputsDir(cfg.Paths.InputsDir),
		fsinput.WithSeparator(cfg.Groups.Separator),
	)

	return &workspaceCtx{
		root:   root,
		cfg:    cfg,
		inputs: inputs,
		load:   usecase.NewLoadInput(inputs, usecase.WithLogger(logger.L())),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `aocinput init`): %w", wd, err)
	}
	return root, nil
}

// resolveInputName maps a CLI argument to a name relative to the inputs
// directory. Bare names are used as-is; paths that exist on disk are made
// relative to the inputs directory.
func resolveInputName(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("input file is required")
	}

	if !looksLikePath(in) || !fileExists(in) {
		return in, nil
	}

	abs, err := filepath.Abs(in)
	if err != nil {
		return "", fmt.Errorf("invalid input path: %w", err)
	}
	rel, err := filepath.Rel(ws.inputs.Dir(), abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("input %q is outside the inputs directory %q", in, ws.inputs.Dir())
	}
	return rel, nil
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
