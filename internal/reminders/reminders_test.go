package reminders

import (
	"reflect"
	"testing"
	"time"

	"github.com/thenoetrevino/flowforge/internal/models"
)

func TestCheck(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	snap := models.Snapshot{Tasks: []models.Task{
		{ID: "t-1", Title: "late", DueDate: "2024-06-09"},
		{ID: "t-2", Title: "none"},
		{ID: "t-3", Title: "tonight", DueDate: "2024-06-10T20:00:00Z"},
		{ID: "t-4", Title: "far", DueDate: "2024-07-01"},
		{ID: "t-5", Title: "tomorrow noon", DueDate: "2024-06-11T12:00:00Z"},
		{ID: "t-6", Title: "garbage", DueDate: "soon"},
	}}

	got := Check(snap, now, 0, time.UTC)

	want := []Reminder{
		{Type: KindOverdue, TaskID: "t-1", Title: "late", Due: "2024-06-09"},
		{Type: KindDueSoon, TaskID: "t-3", Title: "tonight", Due: "2024-06-10T20:00:00Z"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Check =\n %+v\nwant\n %+v", got, want)
	}
}

func TestCheck_CustomWindow(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	snap := models.Snapshot{Tasks: []models.Task{{ID: "t-1", DueDate: "2024-06-14"}}}

	if got := Check(snap, now, 7*24*time.Hour, time.UTC); len(got) != 1 || got[0].Type != KindDueSoon {
		t.Errorf("Expected due_soon within a week, got %+v", got)
	}
	if got := Check(snap, now, time.Hour, time.UTC); len(got) != 0 {
		t.Errorf("Expected nothing within an hour, got %+v", got)
	}
}
