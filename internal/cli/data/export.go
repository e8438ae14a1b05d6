package data

import (
	"bytes"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/transfer"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <workspace-id>",
		Short: "Export a workspace to a file",
		Long: `Export a workspace with its projects, boards, and tasks as a single
JSON or YAML document. Without --output the document goes to stdout.

Examples:
  flowforge export w-1 > backup.json
  flowforge export w-1 --format=yaml --output=backup.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runExport),
	}

	cmd.Flags().String("id", "", "Workspace ID (can also be provided as positional argument)")
	cmd.Flags().String("format", "", "Document format: "+strings.Join(transfer.Formats, ", "))
	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	cli.AddOutputFlags(cmd)

	return cmd
}

type exportResult struct {
	WorkspaceID types.WorkspaceID `json:"workspace_id"`
	Path        string            `json:"path"`
	Format      string            `json:"format"`
	Projects    int               `json:"projects"`
	Boards      int               `json:"boards"`
	Tasks       int               `json:"tasks"`
}

func (r exportResult) GetID() string { return string(r.WorkspaceID) }

func runExport(env *handler.Env) error {
	rawID, err := env.ID("workspace")
	if err != nil {
		return err
	}
	output, _ := env.Cmd.Flags().GetString("output")
	formatFlag, _ := env.Cmd.Flags().GetString("format")
	format := formatFor(formatFlag, output)

	codec, err := transfer.CodecFor(format)
	if err != nil {
		return env.Formatter.Fail(cli.ExitValidation, "UNKNOWN_FORMAT", err.Error(),
			"Valid formats are: "+strings.Join(transfer.Formats, ", "))
	}

	payload, err := transfer.Export(env.State(), types.WorkspaceID(rawID), env.CLI.App.Now())
	if errors.Is(err, transfer.ErrWorkspaceNotFound) {
		return env.Formatter.Fail(cli.ExitNotFound, "WORKSPACE_NOT_FOUND", err.Error(),
			"Use 'flowforge workspace list' to see available workspaces")
	}
	if err != nil {
		return env.Formatter.Fail(cli.ExitError, "EXPORT_ERROR", err.Error(), "")
	}

	var buf bytes.Buffer
	if err := codec.Export(payload, &buf); err != nil {
		return env.Formatter.Fail(cli.ExitError, "EXPORT_ERROR", err.Error(), "")
	}

	if output == "" {
		// the document itself is the output
		_, err := env.Formatter.Writer().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return env.Formatter.Fail(cli.ExitError, "WRITE_ERROR", err.Error(), "")
	}

	result := exportResult{
		WorkspaceID: payload.Workspace.ID,
		Path:        output,
		Format:      codec.Format(),
		Projects:    len(payload.Projects),
		Boards:      len(payload.Boards),
		Tasks:       len(payload.Tasks),
	}
	if !env.Formatter.Human() {
		return env.Formatter.Success(result)
	}
	env.Formatter.Printf("✓ Exported workspace %s to %s (%d projects, %d boards, %d tasks)\n",
		result.WorkspaceID, output, result.Projects, result.Boards, result.Tasks)
	return nil
}

