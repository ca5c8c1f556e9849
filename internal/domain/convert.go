package domain

import (
	"errors"
	"strconv"
	"strings"
)

var errBadSeparator = errors.New("misplaced digit separator")

// ParseInt converts one element to a base-10 int. Surrounding whitespace, a
// leading sign and "_" between digits are accepted.
func ParseInt(s string) (int, error) {
	v := strings.TrimSpace(s)

	digits, err := stripDigitSeparators(v)
	if err != nil {
		return 0, &ParseError{Value: s, Err: err}
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, &ParseError{Value: s, Err: err}
	}
	return n, nil
}

// ParseInts converts every line, failing on the first bad one.
func ParseInts(lines []string) ([]int, error) {
	out := make([]int, 0, len(lines))
	for i, l := range lines {
		n, err := ParseInt(l)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseIntGroups converts every line of every group, keeping group boundaries.
func ParseIntGroups(groups [][]string) ([][]int, error) {
	out := make([][]int, 0, len(groups))
	for gi, g := range groups {
		ints, err := ParseInts(g)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Group = gi + 1
			}
			return nil, err
		}
		out = append(out, ints)
	}
	return out, nil
}

func stripDigitSeparators(s string) (string, error) {
	if !strings.Contains(s, "_") {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '_' {
			b.WriteByte(c)
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", errBadSeparator
		}
	}
	return b.String(), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
