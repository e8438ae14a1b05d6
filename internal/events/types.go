package events

import (
	"time"

	"github.com/thenoetrevino/flowforge/internal/models"
)

// EventType names the store operation that produced a change
type EventType string

const (
	EventWorkspaceCreated EventType = "workspace_created"
	EventWorkspaceDeleted EventType = "workspace_deleted"
	EventProjectCreated   EventType = "project_created"
	EventProjectDeleted   EventType = "project_deleted"
	EventBoardCreated     EventType = "board_created"
	EventBoardDeleted     EventType = "board_deleted"
	EventColumnAdded      EventType = "column_added"
	EventColumnRenamed    EventType = "column_renamed"
	EventColumnDeleted    EventType = "column_deleted"
	EventColumnsReordered EventType = "columns_reordered"
	EventTaskCreated      EventType = "task_created"
	EventTaskUpdated      EventType = "task_updated"
	EventTaskDeleted      EventType = "task_deleted"
	EventTaskMoved        EventType = "task_moved"
	EventActivityAdded    EventType = "activity_added"
	EventFilterSet        EventType = "filter_set"
	EventStateImported    EventType = "state_imported"
)

// Event is delivered to every listener after a committed mutation
type Event struct {
	Type      EventType
	EntityID  string          // id of the entity the operation targeted, if any
	Sequence  int64           // Monotonically increasing commit number for ordering
	Timestamp time.Time       // When the mutation committed
	Snapshot  models.Snapshot // The state after the mutation; read-only
}

// Listener receives change events synchronously
type Listener func(Event)
