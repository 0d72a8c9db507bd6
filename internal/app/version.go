package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/wordlens/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build identity. Without ldflags it falls back to
// the module version and VCS stamp recorded by the go tool.
func BuildVersion() string {
	version, commit, built := Version, Commit, BuildTime
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			version, commit, built = fromBuildInfo(info, version, commit, built)
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func fromBuildInfo(info *debug.BuildInfo, version, commit, built string) (string, string, string) {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" && s.Value != "" {
				commit = s.Value
				if len(commit) > 12 {
					commit = commit[:12]
				}
			}
		case "vcs.time":
			if built == "unknown" && s.Value != "" {
				built = s.Value
			}
		}
	}
	return version, commit, built
}
