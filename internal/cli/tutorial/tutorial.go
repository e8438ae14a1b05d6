// Package tutorial prints the flowforge workflow primer
package tutorial

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Output a condensed flowforge workflow guide",
		Long: `Output the essential flowforge workflow in markdown.

Useful as a quick reference, or as context for scripts and agents that drive
flowforge through --json and --quiet.`,
		Run: func(cmd *cobra.Command, args []string) {
			outputTutorial(cmd.OutOrStdout())
		},
	}
	return cmd
}

func outputTutorial(w io.Writer) {
	fmt.Fprint(w, tutorialContent)
}
