// uuidprobe - forensic structural analysis of UUID strings
//
// Decodes the RFC 4122 bit layout of a textual UUID, classifies version
// and variant, reconstructs the embedded timestamp, and explains field by
// field whether the value plausibly conforms to the RFC or to known
// vendor conventions.
package main

import (
	"fmt"
	"os"

	"github.com/uuidprobe/uuidprobe/internal/commands"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
