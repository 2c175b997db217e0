// Package buildinfo exposes the version metadata stamped into depscout
// binaries. Plain `go build` produces a "dev" binary; release builds
// overwrite the variables with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/matzehuels/depscout/pkg/buildinfo.Version=$(git describe --tags) \
//	  -X github.com/matzehuels/depscout/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/matzehuels/depscout/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	  ./cmd/depscout
package buildinfo

import "fmt"

// Stamped at link time; see the package doc for the ldflags incantation.
var (
	// Version is the released version, e.g. "v0.3.0".
	Version = "dev"

	// Commit is the short git commit SHA the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String returns the build metadata as a multi-line block for logs.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the template the CLI's --version output renders.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
