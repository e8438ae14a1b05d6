// Package use holds all cli commands related to setting contextual information
// e.g., flowforge use ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage contextual settings for the current shell",
		Long: `Set context for the current shell session so later commands can omit
flags.

Available contexts:
  - board: the board column, task, and board commands fall back to

Examples:
  eval $(flowforge use board b-1)       # Use board b-1
  eval $(flowforge use board --clear)   # Clear board context
  flowforge use board --show            # Show current board`,
	}

	cmd.AddCommand(BoardCmd())

	return cmd
}
