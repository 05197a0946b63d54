// lsr - a small directory-listing tool.
package main

import (
	"os"

	"github.com/lsr-tools/lsr/internal/cli"
)

// Version information
var (
	Version   = "v0.1.0"
	BuildTime = "2026-08-30"
)

func main() {
	// Set version in CLI package (canonical source, injected via LDFLAGS on release builds)
	cli.Version = Version
	cli.BuildTime = BuildTime

	if err := cli.Execute(); err != nil {
		// cobra already printed the error to stderr
		os.Exit(1)
	}
}
