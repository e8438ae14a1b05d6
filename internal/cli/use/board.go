package use

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// BoardCmd returns the use board subcommand
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board [board-id]",
		Short: "Set board context for current shell session",
		Long: `Set the current board using an environment variable.
This command outputs shell commands that should be evaluated:

  eval $(flowforge use board b-1)       # Use board b-1
  eval $(flowforge use board --clear)   # Clear board context
  flowforge use board --show            # Show current board

FLOWFORGE_BOARD is set in your current shell session only. The --board flag
on other commands takes precedence over it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runUseBoard),
	}

	cmd.Flags().Bool("clear", false, "Clear the current board context")
	cmd.Flags().Bool("show", false, "Show the current board context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseBoard(env *handler.Env) error {
	out := env.Formatter.Writer()
	errOut := env.Cmd.ErrOrStderr()
	dryRun := env.Flags.ParseBool("dry-run")

	if env.Flags.ParseBool("show") {
		return showCurrentBoard(env)
	}

	if env.Flags.ParseBool("clear") {
		if dryRun {
			fmt.Fprintf(errOut, "Would clear %s\n", cli.BoardEnv)
			return nil
		}
		fmt.Fprintf(out, "unset %s\n", cli.BoardEnv)
		fmt.Fprintf(errOut, "Cleared board context\n")
		return nil
	}

	if len(env.Args) == 0 {
		return env.Formatter.Fail(cli.ExitUsage, "MISSING_ID", "board ID required",
			"Usage: eval $(flowforge use board <board-id>)")
	}
	boardID := types.BoardID(env.Args[0])

	board, ok := env.State().Board(boardID)
	if !ok {
		return env.Formatter.Fail(cli.ExitNotFound, "BOARD_NOT_FOUND",
			fmt.Sprintf("board %s not found", boardID),
			"Use 'flowforge board list' to see available boards")
	}

	if dryRun {
		fmt.Fprintf(errOut, "Would set %s=%s (%s)\n", cli.BoardEnv, boardID, board.Name)
		return nil
	}

	// shell export goes to stdout for eval
	fmt.Fprintf(out, "export %s=%s\n", cli.BoardEnv, boardID)
	fmt.Fprintf(errOut, "Now using board %s: %s\n", boardID, board.Name)
	return nil
}

func showCurrentBoard(env *handler.Env) error {
	out := env.Formatter.Writer()
	current := os.Getenv(cli.BoardEnv)
	if current == "" {
		fmt.Fprintln(out, "No board context set")
		fmt.Fprintln(out, "Use 'eval $(flowforge use board <board-id>)' to set one")
		return nil
	}

	board, ok := env.State().Board(types.BoardID(current))
	if !ok {
		fmt.Fprintf(out, "Current board: %s (board not found)\n", current)
		return nil
	}
	fmt.Fprintf(out, "Current board: %s (%s)\n", current, board.Name)
	return nil
}
