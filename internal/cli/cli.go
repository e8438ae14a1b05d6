package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/app"
	"github.com/thenoetrevino/flowforge/internal/cli/styles"
	"github.com/thenoetrevino/flowforge/internal/config"
	"github.com/thenoetrevino/flowforge/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the store

	closeLog func() error
	owned    bool // false when the App was injected and belongs to the caller
}

type contextKey string

const (
	appKey        contextKey = "flowforge.app"
	configPathKey contextKey = "flowforge.config"
)

// WithApp returns a context carrying an already-built App. Commands run under
// such a context use it instead of opening the configured backend.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfigPath returns a context that makes NewCLI read the config at path
func WithConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configPathKey, path)
}

// GetCLIFromContext returns a CLI for the command's context: the injected App
// when there is one, otherwise a freshly opened one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		styles.Init(a.Config.Theme)
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}

// NewCLI loads the config, starts file logging, and opens the app
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	closeLog, err := logging.Init(cfg.LogDir(), cfg.Level(), os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application, err := app.New(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	styles.Init(cfg.Theme)

	return &CLI{
		App:      application,
		closeLog: closeLog,
		owned:    true,
	}, nil
}

// ConfigPath returns the config file commands read: the --config path when
// one was given, otherwise the default location
func ConfigPath(ctx context.Context) (string, error) {
	if path, ok := ctx.Value(configPathKey).(string); ok && path != "" {
		return path, nil
	}
	return config.Path()
}

func loadConfig(ctx context.Context) (*config.Config, error) {
	if path, ok := ctx.Value(configPathKey).(string); ok && path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// Close cleans up CLI resources. An injected App is left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.closeLog != nil {
		if cerr := c.closeLog(); err == nil {
			err = cerr
		}
	}
	return err
}

// AddOutputFlags registers the agent-friendly flags every command carries
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}
