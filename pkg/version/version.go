// Package version reports which iconcat build is running.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Release builds stamp these with ldflags:
//
//	go build -ldflags "-X github.com/Aman-CERP/iconcat/pkg/version.Version=1.2.0 \
//	  -X github.com/Aman-CERP/iconcat/pkg/version.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/Aman-CERP/iconcat/pkg/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/iconcat
//
// Unstamped builds fall back to the module and VCS data the Go toolchain
// embeds, so `go install` binaries still report something useful.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"

	// GoVersion is the toolchain that built the binary.
	GoVersion = runtime.Version()
)

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		Version, Commit, Date = fromBuildInfo(bi, Version, Commit, Date)
	}
}

// shortCommitLen matches `git rev-parse --short=12`.
const shortCommitLen = 12

// fromBuildInfo fills the values still at their unstamped defaults from
// embedded build info. Stamped values are kept.
func fromBuildInfo(bi *debug.BuildInfo, ver, commit, date string) (string, string, string) {
	if bi == nil {
		return ver, commit, date
	}
	if ver == "dev" {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			ver = strings.TrimPrefix(v, "v")
		}
	}

	var revision, modified string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			if date == "unknown" && s.Value != "" {
				date = s.Value
			}
		case "vcs.modified":
			modified = s.Value
		}
	}
	if commit == "unknown" && revision != "" {
		commit = revision[:min(len(revision), shortCommitLen)]
		if modified == "true" {
			commit += "-dirty"
		}
	}
	return ver, commit, date
}

// BuildInfo is the `iconcat version --json` document.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// String is the one-line form printed by `iconcat version`.
func String() string {
	return fmt.Sprintf("iconcat %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}

// Short returns the bare version.
func Short() string {
	return Version
}

// GetInfo returns the build metadata with the runtime platform.
func GetInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}
