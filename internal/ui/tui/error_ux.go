package tui

import (
	"errors"
	"path/filepath"
	"strconv"

	"github.com/aalvaropc/aocinput/internal/domain"
)

// userMessage turns a load error into a one-line toast.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return "Unexpected error (see logs)"
	}

	base := "input"
	if oe.Path != "" {
		base = filepath.Base(oe.Path)
	}

	switch oe.Kind {
	case domain.KindNotFound:
		return "Input not found: " + base
	case domain.KindIO:
		return "Cannot read " + base
	case domain.KindParse:
		var pe *domain.ParseError
		if errors.As(err, &pe) {
			msg := "Not an integer in " + base
			if pe.Group > 0 {
				msg += " group " + strconv.Itoa(pe.Group)
			}
			if pe.Line > 0 {
				msg += " line " + strconv.Itoa(pe.Line)
			}
			return msg + ": " + strconv.Quote(pe.Value)
		}
		return "Not an integer in " + base
	case domain.KindInvalidConfig:
		return "Invalid request"
	default:
		return "Unexpected error (see logs)"
	}
}
