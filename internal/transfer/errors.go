package transfer

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkspaceNotFound is returned when exporting an unknown workspace
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrInvalidImport is the error every *ImportError unwraps to
	ErrInvalidImport = errors.New("invalid import")
	// ErrUnknownFormat is returned for a format with no registered codec
	ErrUnknownFormat = errors.New("unknown format")
)

// ImportError describes why an import payload was rejected. Path is the dotted
// location of the offending value, empty for problems with the document as a whole.
type ImportError struct {
	Path    string
	Message string
}

func (e *ImportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid import at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("invalid import: %s", e.Message)
}

// Unwrap lets callers match any import rejection with errors.Is(err, ErrInvalidImport)
func (e *ImportError) Unwrap() error {
	return ErrInvalidImport
}
