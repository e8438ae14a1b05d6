package models

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/thenoetrevino/flowforge/internal/types"
)

// ============================================================================
// Priority Tests
// ============================================================================

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input    string
		expected Priority
		wantErr  bool
	}{
		{"", PriorityNone, false},
		{"low", PriorityLow, false},
		{"MEDIUM", PriorityMedium, false},
		{" High ", PriorityHigh, false},
		{"critical", PriorityCritical, false},
		{"urgent", PriorityNone, true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidPriority) {
				t.Errorf("ParsePriority(%q): expected ErrInvalidPriority, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q): unexpected error %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParsePriority(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// ============================================================================
// Task JSON Tests
// ============================================================================

func TestTaskJSON_PreservesFreeFormFields(t *testing.T) {
	raw := `{"id":"t-1","title":"Write docs","status":"col-1","position":2,"createdDate":5,` +
		`"estimate":3,"reviewer":"sam","nested":{"a":true}}`

	var task Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		t.Fatalf("Failed to decode task: %v", err)
	}

	if task.ID != "t-1" || task.Status != "col-1" || task.Position != 2 {
		t.Errorf("Typed fields not decoded: %+v", task)
	}
	if task.Extra["reviewer"] != "sam" {
		t.Errorf("Expected reviewer extra field, got %v", task.Extra["reviewer"])
	}
	if task.Extra["estimate"] != float64(3) {
		t.Errorf("Expected estimate 3, got %v", task.Extra["estimate"])
	}
	if _, ok := task.Extra["title"]; ok {
		t.Error("Typed field leaked into Extra")
	}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Failed to encode task: %v", err)
	}

	var back Task
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Failed to decode re-encoded task: %v", err)
	}
	if !reflect.DeepEqual(task, back) {
		t.Errorf("Round trip mismatch:\n got  %+v\n want %+v", back, task)
	}
}

func TestTaskJSON_TypedFieldWinsOverExtra(t *testing.T) {
	task := Task{ID: "t-1", Title: "real", Status: "c", Extra: map[string]any{"title": "shadow"}}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if obj["title"] != "real" {
		t.Errorf("Expected typed title to win, got %v", obj["title"])
	}
}

func TestTaskDue(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name    string
		due     string
		ok      bool
		wantErr bool
		want    time.Time
	}{
		{"unset", "", false, false, time.Time{}},
		{"calendar date", "2024-03-05", true, false, time.Date(2024, 3, 5, 0, 0, 0, 0, loc)},
		{"rfc3339", "2024-03-05T10:00:00Z", true, false, time.Date(2024, 3, 5, 10, 0, 0, 0, loc)},
		{"garbage", "next week", false, true, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := Task{DueDate: tt.due}.Due(loc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if ok != tt.ok {
				t.Errorf("ok = %v, want %v", ok, tt.ok)
			}
			if !got.Equal(tt.want) {
				t.Errorf("due = %v, want %v", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Snapshot Tests
// ============================================================================

func TestSnapshotClone_IsIndependent(t *testing.T) {
	orig := Snapshot{
		Workspaces: []Workspace{{ID: "w", Name: "W", Projects: []types.ProjectID{"p"}}},
		Projects:   []Project{{ID: "p", Name: "P", Boards: []types.BoardID{"b"}}},
		Boards:     []Board{{ID: "b", Name: "B", Columns: []Column{{ID: "c", Name: "C"}}}},
		Tasks: []Task{{
			ID: "t", Status: "c", Tags: []string{"x"},
			ActivityLog: []ActivityEntry{{Type: "created"}},
			Extra:       map[string]any{"k": "v"},
		}},
		Filters: Filters{Tags: []string{"x"}},
	}

	clone := orig.Clone()
	clone.Workspaces[0].Projects[0] = "changed"
	clone.Projects[0].Boards[0] = "changed"
	clone.Boards[0].Columns[0].Name = "changed"
	clone.Tasks[0].Tags[0] = "changed"
	clone.Tasks[0].ActivityLog[0].Type = "changed"
	clone.Tasks[0].Extra["k"] = "changed"
	clone.Filters.Tags[0] = "changed"

	if orig.Workspaces[0].Projects[0] != "p" ||
		orig.Projects[0].Boards[0] != "b" ||
		orig.Boards[0].Columns[0].Name != "C" ||
		orig.Tasks[0].Tags[0] != "x" ||
		orig.Tasks[0].ActivityLog[0].Type != "created" ||
		orig.Tasks[0].Extra["k"] != "v" ||
		orig.Filters.Tags[0] != "x" {
		t.Errorf("Mutating the clone changed the original: %+v", orig)
	}
}

func TestTasksInColumn_OrdersByPositionThenCreation(t *testing.T) {
	snap := Snapshot{Tasks: []Task{
		{ID: "a", Status: "c1", Position: 2},
		{ID: "b", Status: "c2", Position: 1},
		{ID: "c", Status: "c1", Position: 1},
		{ID: "d", Status: "c1", Position: 2},
	}}

	got := snap.TasksInColumn("c1")
	var ids []types.TaskID
	for _, task := range got {
		ids = append(ids, task.ID)
	}

	want := []types.TaskID{"c", "a", "d"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("TasksInColumn = %v, want %v", ids, want)
	}
}

func TestBoardOfColumn(t *testing.T) {
	snap := Snapshot{Boards: []Board{
		{ID: "b1", Columns: []Column{{ID: "c1"}}},
		{ID: "b2", Columns: []Column{{ID: "c2"}, {ID: "c3"}}},
	}}

	b, ok := snap.BoardOfColumn("c3")
	if !ok || b.ID != "b2" {
		t.Errorf("Expected board b2, got %q (ok=%v)", b.ID, ok)
	}
	if _, ok := snap.BoardOfColumn("missing"); ok {
		t.Error("Expected no board for unknown column")
	}
}

// ============================================================================
// Filters Tests
// ============================================================================

func TestFiltersMerge(t *testing.T) {
	base := Filters{Q: "old", Member: "ann", Tags: []string{"a"}}
	q := "new"
	tags := []string{"b", "c"}
	prio := PriorityHigh

	got := base.Merge(FilterPatch{Q: &q, Tags: &tags, Priority: &prio})

	if got.Q != "new" || got.Member != "ann" || got.Priority != PriorityHigh {
		t.Errorf("Unexpected merge result: %+v", got)
	}
	if !reflect.DeepEqual(got.Tags, []string{"b", "c"}) {
		t.Errorf("Expected tags [b c], got %v", got.Tags)
	}

	tags[0] = "mutated"
	if got.Tags[0] != "b" {
		t.Error("Merged tags alias the patch slice")
	}
	if base.Q != "old" {
		t.Error("Merge modified the receiver")
	}
}
