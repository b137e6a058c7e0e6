package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func init() {
	if Commit != "unknown" {
		return
	}
	// Fall back to module build info for go-install builds.
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			Commit = s.Value
		case "vcs.time":
			BuildDate = s.Value
		}
	}
	if Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = bi.Main.Version
	}
}

// String returns a human-readable version string.
func String() string {
	return fmt.Sprintf("badgen %s (%s, %s)", Version, Commit, BuildDate)
}
