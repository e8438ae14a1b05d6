// Package cli runs cobra commands against a test app
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/app"
	flowcli "github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/testutil"
)

// SetupCLITest creates the in-memory app CLI tests run against
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	return testutil.SetupTestApp(t)
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the context so commands never open a backend.
// Standard output is returned; standard error is discarded.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	out, _, err := ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
	return out, err
}

// ExecuteCLICommandWithInput executes a CLI command feeding input to stdin and
// returns standard output and standard error separately
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(input))

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(flowcli.WithApp(context.Background(), testApp))
	return stdout.String(), stderr.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// Data returns the "data" object of a successful JSON response
func Data(t *testing.T, output string) map[string]any {
	t.Helper()
	result := ParseJSON(t, output)
	if result["success"] != true {
		t.Fatalf("Expected success response, got: %s", output)
	}
	data, ok := result["data"].(map[string]any)
	if !ok {
		t.Fatalf("Expected data object, got: %s", output)
	}
	return data
}

// ErrorCode returns error.code of a failed JSON response
func ErrorCode(t *testing.T, output string) string {
	t.Helper()
	result := ParseJSON(t, output)
	errObj, ok := result["error"].(map[string]any)
	if !ok {
		t.Fatalf("Expected error object, got: %s", output)
	}
	code, _ := errObj["code"].(string)
	return code
}
