package app

import "fmt"

// Build metadata for the gismu-export binary, injected at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/jbovlaste-export/internal/app.Version=v0.3.0 \
//	  -X github.com/heartmarshall/jbovlaste-export/internal/app.Commit=$(git rev-parse --short HEAD)" \
//	  ./cmd/gismu-export
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the build metadata logged when an export run starts.
func BuildVersion() string {
	return fmt.Sprintf("gismu-export %s (commit %s, built %s)", Version, Commit, BuildTime)
}
