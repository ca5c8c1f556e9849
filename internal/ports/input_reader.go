package ports

// InputReader loads puzzle input files from a source (e.g., filesystem).
// The Int variants delegate to their string counterparts and convert every
// element, failing the whole call on the first bad one.
type InputReader interface {
	ReadFirstLine(name string) (string, error)
	ReadFirstLineInt(name string) (int, error)
	ReadLines(name string, stripEmpty bool) ([]string, error)
	ReadInts(name string, stripEmpty bool) ([]int, error)
	ReadGroups(name string) ([][]string, error)
	ReadIntGroups(name string) ([][]int, error)

	Path(name string) string
}
