package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"

	"github.com/aalvaropc/aocinput/internal/domain"
)

const previewLen = 48

type lineItem struct {
	n    int
	text string
}

func (i lineItem) Title() string {
	if i.text == "" {
		return fmt.Sprintf("%4d  ⏎", i.n)
	}
	return fmt.Sprintf("%4d  %s", i.n, i.text)
}
func (i lineItem) Description() string { return "" }
func (i lineItem) FilterValue() string { return i.text }

type groupItem struct {
	n     int
	lines []string
}

func (i groupItem) Title() string { return fmt.Sprintf("group %d", i.n) }
func (i groupItem) Description() string {
	if len(i.lines) == 0 {
		return "empty"
	}
	return fmt.Sprintf("%d lines · %s", len(i.lines), clampString(strings.Join(i.lines, " "), previewLen))
}
func (i groupItem) FilterValue() string { return strings.Join(i.lines, " ") }

// payloadGroups returns the payload as string groups, or nil for flat shapes.
func payloadGroups(p domain.Payload) [][]string {
	switch p.Shape {
	case domain.ShapeGroups:
		return p.Groups
	case domain.ShapeIntGroups:
		out := make([][]string, len(p.IntGroups))
		for i, g := range p.IntGroups {
			out[i] = itoaAll(g)
		}
		return out
	default:
		return nil
	}
}

// payloadLines returns the payload as a flat list of lines.
func payloadLines(p domain.Payload) []string {
	switch p.Shape {
	case domain.ShapeLine:
		return []string{p.Line}
	case domain.ShapeInt:
		return []string{strconv.Itoa(p.Int)}
	case domain.ShapeLines:
		return p.Lines
	case domain.ShapeInts:
		return itoaAll(p.Ints)
	default:
		return nil
	}
}

func lineItems(lines []string) []list.Item {
	items := make([]list.Item, len(lines))
	for i, l := range lines {
		items[i] = lineItem{n: i + 1, text: l}
	}
	return items
}

func groupItems(groups [][]string) []list.Item {
	items := make([]list.Item, len(groups))
	for i, g := range groups {
		items[i] = groupItem{n: i + 1, lines: g}
	}
	return items
}

func itoaAll(in []int) []string {
	out := make([]string, len(in))
	for i, n := range in {
		out[i] = strconv.Itoa(n)
	}
	return out
}

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}
