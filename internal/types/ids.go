package types

// ID types give each kind of entity reference its own name so a ColumnID can't be
// passed where a BoardID is expected. Identifiers are opaque strings compared by
// equality only.

// WorkspaceID identifies a workspace
type WorkspaceID string

// ProjectID identifies a project within a workspace
type ProjectID string

// BoardID identifies a board within a project
type BoardID string

// ColumnID identifies a column nested inside a board
type ColumnID string

// TaskID identifies a task; a task's status is the ColumnID it lives in
type TaskID string

// Prefixes used when generating new identifiers
const (
	PrefixWorkspace = "w"
	PrefixProject   = "p"
	PrefixBoard     = "b"
	PrefixColumn    = "col"
	PrefixTask      = "t"
)

func (id WorkspaceID) String() string { return string(id) }

func (id ProjectID) String() string { return string(id) }

func (id BoardID) String() string { return string(id) }

func (id ColumnID) String() string { return string(id) }

func (id TaskID) String() string { return string(id) }

// IsZero reports whether the id is unset
func (id TaskID) IsZero() bool { return id == "" }

// IsZero reports whether the id is unset
func (id ColumnID) IsZero() bool { return id == "" }
