// swaygroup - two-group workspace navigation for sway
//
// Workspaces are grouped by the first digit of their name. swaygroup moves
// within a group, toggles between groups 1 and 2, and remembers the last
// workspace used in each group in $XDG_STATE_HOME.
package main

import (
	"context"
	"os"

	"github.com/swaygroup/swaygroup/internal/commands"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	// fang prints the error
	if err := commands.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
