package usecase

import (
	"context"
	"errors"

	"github.com/aalvaropc/aocinput/internal/domain"
)

var errEmptyName = errors.New("input name is required")

// Summary describes a successfully validated input.
type Summary struct {
	Name     string
	Path     string
	Shape    domain.Shape
	Elements int // lines or integers across all groups
	Groups   int // zero for flat shapes
	Sum      int // numeric shapes only
}

type ValidateInput struct {
	load *LoadInput
}

func NewValidateInput(load *LoadInput) *ValidateInput {
	return &ValidateInput{load: load}
}

// Execute loads the input and reports its size. For numeric shapes this
// proves every element converts; other shapes only check readability.
func (uc *ValidateInput) Execute(ctx context.Context, req LoadRequest) (Summary, error) {
	p, err := uc.load.Execute(ctx, req)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		Name:  p.Name,
		Path:  p.Path,
		Shape: p.Shape,
	}
	if p.Shape.Numeric() {
		s.Sum = p.Sum()
	}

	switch p.Shape {
	case domain.ShapeLine, domain.ShapeInt:
		s.Elements = 1
	case domain.ShapeLines:
		s.Elements = len(p.Lines)
	case domain.ShapeInts:
		s.Elements = len(p.Ints)
	case domain.ShapeGroups:
		s.Groups = len(p.Groups)
		for _, g := range p.Groups {
			s.Elements += len(g)
		}
	case domain.ShapeIntGroups:
		s.Groups = len(p.IntGroups)
		for _, g := range p.IntGroups {
			s.Elements += len(g)
		}
	}
	return s, nil
}
