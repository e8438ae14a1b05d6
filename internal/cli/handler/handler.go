// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/store"
)

// Env is everything a command body needs once the app is open
type Env struct {
	Ctx       context.Context
	CLI       *cli.CLI
	Store     *store.Store
	Formatter *cli.OutputFormatter
	Flags     *FlagParser
	Args      []string
	Cmd       *cobra.Command
}

// State returns the store's current snapshot
func (e *Env) State() models.Snapshot {
	return e.Store.GetState()
}

// Confirm asks a yes/no question on the command's input. It answers yes
// without asking when force is set or output is not human-readable.
func (e *Env) Confirm(force bool, format string, args ...any) bool {
	if force || !e.Formatter.Human() {
		return true
	}
	fmt.Fprintf(e.Formatter.Writer(), format+" (y/N): ", args...)
	response, err := bufio.NewReader(e.Cmd.InOrStdin()).ReadString('\n')
	if err != nil && response == "" {
		slog.Debug("no confirmation input", "error", err)
	}
	response = strings.ToLower(strings.TrimSpace(response))
	if response != "y" && response != "yes" {
		fmt.Fprintln(e.Formatter.Writer(), "Cancelled")
		return false
	}
	return true
}

// Func is a command body
type Func func(env *Env) error

// Command wraps common command execution logic: output flags, opening the app,
// and closing it afterwards. Returns a cobra RunE compatible function.
func Command(fn Func) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		formatter := cli.NewFormatter(cmd)

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("error closing CLI", "error", err)
			}
		}()

		return fn(&Env{
			Ctx:       ctx,
			CLI:       cliInstance,
			Store:     cliInstance.App.Store,
			Formatter: formatter,
			Flags:     NewFlagParser(cmd, formatter),
			Args:      args,
			Cmd:       cmd,
		})
	}
}

// ID returns the positional id argument, falling back to the --id flag
func (e *Env) ID(kind string) (string, error) {
	if len(e.Args) > 0 && e.Args[0] != "" {
		return e.Args[0], nil
	}
	if e.Cmd.Flags().Lookup("id") != nil {
		if id, _ := e.Cmd.Flags().GetString("id"); id != "" {
			return id, nil
		}
	}
	return "", e.Formatter.Fail(cli.ExitUsage, "MISSING_ID",
		kind+" id is required",
		fmt.Sprintf("Usage: %s <%s-id>", e.Cmd.CommandPath(), kind))
}
