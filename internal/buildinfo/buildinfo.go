package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/pashafst/png-secret/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("pngsecret %s (commit=%s, date=%s)", Version, Commit, Date)
}
