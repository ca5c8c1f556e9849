package domain

import "strings"

// NormalizeNewlines converts CRLF and lone CR terminators to LF.
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// SplitLines splits s on LF. A trailing terminator does not produce a final
// empty element, and empty input yields an empty slice.
func SplitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// DropBlank returns the lines whose trimmed form is non-empty. The kept lines
// are returned untrimmed and in order.
func DropBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// SplitGroups trims the whole text and partitions it into paragraphs.
func SplitGroups(s string, sep Separator) [][]string {
	s = strings.TrimSpace(s)

	if sep == SeparatorBlankRuns {
		return splitOnBlankRuns(s)
	}

	parts := strings.Split(s, "\n\n")
	groups := make([][]string, 0, len(parts))
	for _, p := range parts {
		groups = append(groups, SplitLines(p))
	}
	return groups
}

func splitOnBlankRuns(s string) [][]string {
	groups := [][]string{}
	var cur []string
	for _, l := range SplitLines(s) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}
