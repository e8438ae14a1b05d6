// Package handler provides flag parsing utilities
package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
	"github.com/thenoetrevino/flowforge/internal/user"
)

// FlagParser provides common flag extraction patterns. Every parse failure is
// reported through the formatter and comes back as a *cli.StatusError.
type FlagParser struct {
	cmd       *cobra.Command
	formatter *cli.OutputFormatter
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command, formatter *cli.OutputFormatter) *FlagParser {
	return &FlagParser{
		cmd:       cmd,
		formatter: formatter,
	}
}

// Changed reports whether the flag was set on the command line
func (p *FlagParser) Changed(flagName string) bool {
	return p.cmd.Flags().Changed(flagName)
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", p.formatter.Fail(cli.ExitUsage, "INVALID_FLAG", fmt.Sprintf("failed to parse %s flag: %v", flagName, err), "")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", p.formatter.Fail(cli.ExitUsage, "MISSING_FLAG",
			fmt.Sprintf("--%s is required", flagName),
			fmt.Sprintf("Pass --%s=<value>", flagName))
	}
	return value, nil
}

// ParseStringOptional returns the flag's value, or nil when it was not set
func (p *FlagParser) ParseStringOptional(flagName string) *string {
	if !p.Changed(flagName) {
		return nil
	}
	value, _ := p.cmd.Flags().GetString(flagName)
	return &value
}

// ParseIntOptional returns the flag's value, or nil when it was not set
func (p *FlagParser) ParseIntOptional(flagName string) *int {
	if !p.Changed(flagName) {
		return nil
	}
	value, _ := p.cmd.Flags().GetInt(flagName)
	return &value
}

// ParseMember returns a member flag with @me resolved to the current user,
// or nil when it was not set
func (p *FlagParser) ParseMember(flagName string) *string {
	raw := p.ParseStringOptional(flagName)
	if raw == nil {
		return nil
	}
	member := user.ResolveMember(*raw)
	return &member
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) bool {
	value, _ := p.cmd.Flags().GetBool(flagName)
	return value
}

// ParseTags returns the tag list, or nil when the flag was not set.
// Setting the flag to an empty string clears the tags.
func (p *FlagParser) ParseTags(flagName string) *[]string {
	if !p.Changed(flagName) {
		return nil
	}
	raw, _ := p.cmd.Flags().GetStringSlice(flagName)
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return &tags
}

// ParsePriority extracts and validates a priority flag
func (p *FlagParser) ParsePriority(flagName string) (*models.Priority, error) {
	raw := p.ParseStringOptional(flagName)
	if raw == nil {
		return nil, nil
	}
	priority, err := models.ParsePriority(*raw)
	if err != nil {
		return nil, p.formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err.Error(),
			"Valid priorities are: low, medium, high, critical")
	}
	return &priority, nil
}

// ParseDueDate extracts a due date flag. An empty value clears the date.
func (p *FlagParser) ParseDueDate(flagName string) (*string, error) {
	raw := p.ParseStringOptional(flagName)
	if raw == nil || *raw == "" {
		return raw, nil
	}
	if _, _, err := models.ParseDueDate(*raw, time.Local); err != nil {
		return nil, p.formatter.Fail(cli.ExitValidation, "INVALID_DUE_DATE", err.Error(),
			"Use YYYY-MM-DD or an RFC 3339 timestamp")
	}
	return raw, nil
}

// ParseDescription extracts a description flag. "-" reads it from stdin.
func (p *FlagParser) ParseDescription(flagName string) (*string, error) {
	raw := p.ParseStringOptional(flagName)
	if raw == nil || *raw != "-" {
		return raw, nil
	}
	data, err := io.ReadAll(p.cmd.InOrStdin())
	if err != nil {
		return nil, p.formatter.Fail(cli.ExitError, "STDIN_READ_ERROR", err.Error(), "")
	}
	description := strings.TrimRight(string(data), "\n")
	return &description, nil
}

// ParseFields reads repeated key=value flags into free-form task fields. A
// value that parses as JSON keeps its JSON type; anything else is a string.
// Keys listed in unsetFlag map to nil, which removes them from the task.
func (p *FlagParser) ParseFields(setFlag, unsetFlag string) (map[string]any, error) {
	pairs, _ := p.cmd.Flags().GetStringArray(setFlag)
	unset, _ := p.cmd.Flags().GetStringArray(unsetFlag)
	if len(pairs) == 0 && len(unset) == 0 {
		return nil, nil
	}

	fields := make(map[string]any, len(pairs)+len(unset))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, p.formatter.Fail(cli.ExitUsage, "INVALID_FIELD",
				fmt.Sprintf("invalid field %q", pair), fmt.Sprintf("Use --%s key=value", setFlag))
		}
		if models.IsTaskField(key) {
			return nil, p.formatter.Fail(cli.ExitValidation, "RESERVED_FIELD",
				fmt.Sprintf("%q is a built-in task field", key), "Use the dedicated flag instead")
		}
		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		fields[key] = value
	}
	for _, key := range unset {
		fields[strings.TrimSpace(key)] = nil
	}
	return fields, nil
}

// ParseBoardID extracts the board from --board or the FLOWFORGE_BOARD context
func (p *FlagParser) ParseBoardID() (types.BoardID, error) {
	boardID, err := cli.GetBoardID(p.cmd)
	if err != nil {
		return "", p.formatter.Fail(cli.ExitUsage, "NO_BOARD", err.Error(),
			"Set a board with: eval $(flowforge use board <board-id>)")
	}
	return boardID, nil
}
