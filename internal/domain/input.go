package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Shape names the in-memory form an input file is loaded into.
type Shape string

const (
	ShapeLine      Shape = "line"
	ShapeInt       Shape = "int"
	ShapeLines     Shape = "lines"
	ShapeInts      Shape = "ints"
	ShapeGroups    Shape = "groups"
	ShapeIntGroups Shape = "intgroups"
)

// Shapes lists every supported shape in display order.
func Shapes() []Shape {
	return []Shape{ShapeLine, ShapeInt, ShapeLines, ShapeInts, ShapeGroups, ShapeIntGroups}
}

func ParseShape(s string) (Shape, error) {
	in := Shape(strings.ToLower(strings.TrimSpace(s)))
	for _, sh := range Shapes() {
		if in == sh {
			return sh, nil
		}
	}
	return "", &OpError{
		Op:   "input.shape",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("unknown shape %q", s),
	}
}

// Numeric reports whether the shape converts elements to integers.
func (s Shape) Numeric() bool {
	return s == ShapeInt || s == ShapeInts || s == ShapeIntGroups
}

// InputRef points at one file in the inputs directory.
type InputRef struct {
	Name string
	Path string
	Size int64
}

// Payload is the result of loading an input with a given shape. Only the field
// matching Shape is populated, and only that field is encoded to JSON.
type Payload struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Shape Shape  `json:"shape"`

	Line      string     `json:"line"`
	Int       int        `json:"int"`
	Lines     []string   `json:"lines"`
	Ints      []int      `json:"ints"`
	Groups    [][]string `json:"groups"`
	IntGroups [][]int    `json:"int_groups"`
}

// MarshalJSON encodes name, path, shape and the value for Shape. Zero values
// and empty results are kept; nil slices encode as [].
func (p Payload) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"name":  p.Name,
		"path":  p.Path,
		"shape": p.Shape,
	}

	switch p.Shape {
	case ShapeLine:
		out["line"] = p.Line
	case ShapeInt:
		out["int"] = p.Int
	case ShapeLines:
		out["lines"] = nonNil(p.Lines)
	case ShapeInts:
		out["ints"] = nonNil(p.Ints)
	case ShapeGroups:
		out["groups"] = nonNil(p.Groups)
	case ShapeIntGroups:
		out["int_groups"] = nonNil(p.IntGroups)
	}
	return json.Marshal(out)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Len returns the number of top-level elements: 1 for single-line shapes,
// lines for flat shapes and groups for grouped shapes.
func (p Payload) Len() int {
	switch p.Shape {
	case ShapeLine, ShapeInt:
		return 1
	case ShapeLines:
		return len(p.Lines)
	case ShapeInts:
		return len(p.Ints)
	case ShapeGroups:
		return len(p.Groups)
	case ShapeIntGroups:
		return len(p.IntGroups)
	default:
		return 0
	}
}

// Sum adds up every integer of a numeric payload.
func (p Payload) Sum() int {
	total := 0
	switch p.Shape {
	case ShapeInt:
		total = p.Int
	case ShapeInts:
		for _, n := range p.Ints {
			total += n
		}
	case ShapeIntGroups:
		for _, g := range p.IntGroups {
			for _, n := range g {
				total += n
			}
		}
	}
	return total
}
