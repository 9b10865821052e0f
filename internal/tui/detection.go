package tui

import (
	"github.com/spf13/cobra"

	"github.com/umaima-fareed13/libman/internal/util"
)

// ShouldUseTUI returns true if the command should use interactive TUI mode:
// stdout is a TTY and --no-interactive is not set.
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsTTY() {
		return false
	}
	noInteractive, _ := cmd.Flags().GetBool("no-interactive")
	return !noInteractive
}
