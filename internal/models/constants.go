package models

import (
	"fmt"
	"strings"
)

// ============================================================================
// PRIORITY CONSTANTS
// ============================================================================

// Priority is a task's urgency level. The empty value means no priority was set.
type Priority string

const (
	PriorityNone     Priority = ""
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Priorities lists every settable priority from least to most urgent
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// ParsePriority matches s case-insensitively against the known priorities.
// An empty string parses to PriorityNone.
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriorityNone, nil
	}
	for _, p := range Priorities {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return PriorityNone, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

// ============================================================================
// DUE FILTER CONSTANTS
// ============================================================================

// DueFilter narrows tasks by due date
type DueFilter string

const (
	DueAny     DueFilter = ""
	DueOverdue DueFilter = "overdue"
	DueToday   DueFilter = "today"
)

// ============================================================================
// BOARD DEFAULTS
// ============================================================================

// DefaultColumnNames are the columns a board gets when none are supplied
var DefaultColumnNames = []string{"To Do", "In Progress", "Review", "Done"}

// DueDateLayout is the calendar-date form due dates are stored in
const DueDateLayout = "2006-01-02"
