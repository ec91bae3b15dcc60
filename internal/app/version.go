package app

import "fmt"

// Build metadata, injected with -ldflags at release time, e.g.
//
//	go build -ldflags "-X github.com/sima-app/sima-backend/internal/app.Version=1.0.0"
//
// Local builds keep the defaults.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the build metadata as a single string for startup
// logs and the health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
