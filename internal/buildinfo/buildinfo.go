// Package buildinfo holds version information injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/threebell/threebell/internal/buildinfo.Version=1.0.0" ./cmd/3bt
package buildinfo

var (
	Version    = "dev"
	Codename   = "unknown"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns the version with its codename, e.g. "1.0.0 (Chime)".
func String() string {
	return Version + " (" + Codename + ")"
}
