// Package buildinfo reports the version of the running binary.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/easybox/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/easybox/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/easybox
//
// Unstamped builds fall back to the module version recorded by the Go
// toolchain, which is what "go install ...@version" produces.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the release tag.
	Version = "dev"

	// Commit is the short git SHA.
	Commit = "none"
)

// Info is the build metadata served by the CLI and the HTTP API.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go"`
}

// Get returns the build metadata.
func Get() Info {
	info := Info{Version: Version, Commit: Commit}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}
	return info
}

// Template returns the cobra version template.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} %s (commit %s, %s)\n", i.Version, i.Commit, i.GoVersion)
}
