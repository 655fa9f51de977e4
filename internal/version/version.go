package version

import "fmt"

// These variables are overridden at build time using -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// String is the one-line build description logged at startup.
func String() string {
	s := fmt.Sprintf("%s (%s)", Version, Commit)
	if Dirty == "true" {
		s += " dirty"
	}
	return s
}
