// Package data holds the export and import commands
package data

import (
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/flowforge/internal/transfer"
)

// formatFor picks the document format: the explicit flag, the file extension,
// then JSON
func formatFor(flag, path string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}
	return transfer.Formats[0]
}
