package tui

import (
	"log/slog"

	"github.com/aalvaropc/aocinput/internal/usecase"
)

// Deps is what the browser needs to (re)load the input it shows.
type Deps struct {
	Loader  *usecase.LoadInput
	Request usecase.LoadRequest

	Logger *slog.Logger
}
