package cli

import (
	"errors"

	"github.com/aalvaropc/aocinput/internal/domain"
)

// errorHint suggests a next step for the common load failures.
func errorHint(err error) string {
	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return ""
	}

	switch oe.Kind {
	case domain.KindNotFound:
		if oe.Op == "fsinput.list" {
			return "create the inputs directory or set paths.inputs_dir in aoc.yaml"
		}
		return "save the puzzle input under the inputs directory (see `aocinput inputs list`)"
	case domain.KindParse:
		return "blank or non-numeric lines? try --strip-empty or --as lines"
	case domain.KindInvalidConfig:
		if oe.Op == "input.shape" {
			return "valid shapes: " + joinShapes()
		}
		return ""
	default:
		return ""
	}
}
