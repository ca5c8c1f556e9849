package fsinput

import "github.com/aalvaropc/aocinput/internal/domain"

// ReadFirstLineInt parses the first line as a base-10 integer. An empty file
// is a parse error.
func (l *Loader) ReadFirstLineInt(name string) (int, error) {
	line, err := l.ReadFirstLine(name)
	if err != nil {
		return 0, err
	}
	n, err := domain.ParseInt(line)
	if err != nil {
		return 0, parseError("fsinput.parse_line", l.Path(name), err)
	}
	return n, nil
}

// ReadInts parses every line returned by ReadLines. With stripEmpty off, a
// blank line is a parse error.
func (l *Loader) ReadInts(name string, stripEmpty bool) ([]int, error) {
	lines, err := l.ReadLines(name, stripEmpty)
	if err != nil {
		return nil, err
	}
	ints, err := domain.ParseInts(lines)
	if err != nil {
		return nil, parseError("fsinput.parse_lines", l.Path(name), err)
	}
	return ints, nil
}

// ReadIntGroups parses every line of every group, keeping group boundaries.
func (l *Loader) ReadIntGroups(name string) ([][]int, error) {
	groups, err := l.ReadGroups(name)
	if err != nil {
		return nil, err
	}
	ints, err := domain.ParseIntGroups(groups)
	if err != nil {
		return nil, parseError("fsinput.parse_groups", l.Path(name), err)
	}
	return ints, nil
}

func parseError(op, path string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindParse, Path: path, Err: err}
}
