package aocinput

import "github.com/aalvaropc/aocinput/internal/domain"

// Error is returned by every loader. Op names the stage that failed
// (fsinput.read_* or fsinput.parse_*) and Path the resolved file.
type Error = domain.OpError

// ParseError is wrapped by Error when an element is not an integer.
type ParseError = domain.ParseError

type ErrorKind = domain.ErrorKind

const (
	KindNotFound      = domain.KindNotFound
	KindIO            = domain.KindIO
	KindParse         = domain.KindParse
	KindInvalidConfig = domain.KindInvalidConfig
)

var (
	ErrNotFound      = domain.ErrNotFound
	ErrIO            = domain.ErrIO
	ErrParse         = domain.ErrParse
	ErrInvalidConfig = domain.ErrInvalidConfig
)

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return domain.IsKind(err, kind)
}
