package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/aocinput/internal/domain"
	"github.com/aalvaropc/aocinput/internal/ports"
)

// LoadRequest names an input file and the shape to load it into. StripEmpty
// only affects the lines and ints shapes.
type LoadRequest struct {
	Name       string
	Shape      domain.Shape
	StripEmpty bool
}

type LoadInput struct {
	inputs ports.InputReader
	log    *slog.Logger
}

type LoadOption func(*LoadInput)

func WithLogger(log *slog.Logger) LoadOption {
	return func(uc *LoadInput) {
		if log != nil {
			uc.log = log
		}
	}
}

func NewLoadInput(r ports.InputReader, opts ...LoadOption) *LoadInput {
	uc := &LoadInput{
		inputs: r,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads req.Name with the loader operation matching req.Shape.
func (uc *LoadInput) Execute(ctx context.Context, req LoadRequest) (domain.Payload, error) {
	if err := ctx.Err(); err != nil {
		return domain.Payload{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Payload{}, &domain.OpError{
			Op:   "usecase.load_input",
			Kind: domain.KindInvalidConfig,
			Err:  errEmptyName,
		}
	}

	p := domain.Payload{
		Name:  name,
		Path:  uc.inputs.Path(name),
		Shape: req.Shape,
	}

	var err error
	switch req.Shape {
	case domain.ShapeLine:
		p.Line, err = uc.inputs.ReadFirstLine(name)
	case domain.ShapeInt:
		p.Int, err = uc.inputs.ReadFirstLineInt(name)
	case domain.ShapeLines:
		p.Lines, err = uc.inputs.ReadLines(name, req.StripEmpty)
	case domain.ShapeInts:
		p.Ints, err = uc.inputs.ReadInts(name, req.StripEmpty)
	case domain.ShapeGroups:
		p.Groups, err = uc.inputs.ReadGroups(name)
	case domain.ShapeIntGroups:
		p.IntGroups, err = uc.inputs.ReadIntGroups(name)
	default:
		_, err = domain.ParseShape(string(req.Shape))
	}
	if err != nil {
		uc.log.Warn("input.load_failed", "name", name, "shape", string(req.Shape), "err", err.Error())
		return domain.Payload{}, err
	}

	uc.log.Info("input.loaded", "name", name, "shape", string(req.Shape), "len", p.Len())
	return p, nil
}
