package main

import (
	"fmt"
	"runtime"
)

// Build-time variables injected via linker flags:
//
//	go build -ldflags "-X main.Version=$(git describe --tags) -X main.Commit=$(git rev-parse HEAD)" -o bir
var (
	Version   = "dev"     // git tag, e.g. "v0.2.0"
	Commit    = "unknown" // git commit hash
	BuildDate = "unknown" // build timestamp
)

// versionString describes the running binary on one line.
func versionString() string {
	s := fmt.Sprintf("bir %s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
	if Commit != "unknown" {
		s += " commit " + Commit
	}
	if BuildDate != "unknown" {
		s += " built " + BuildDate
	}
	return s
}
