package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/aalvaropc/aocinput/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("aocinput %s (commit=%s, date=%s)", Version, Commit, Date)
}
