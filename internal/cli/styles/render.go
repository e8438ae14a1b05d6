package styles

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// RenderBoard draws the board's columns side by side. tasks holds the cards to
// show, usually the board's tasks after filtering.
func RenderBoard(board models.Board, tasks []models.Task, now time.Time) string {
	byColumn := make(map[types.ColumnID][]models.Task, len(board.Columns))
	for _, t := range tasks {
		byColumn[t.Status] = append(byColumn[t.Status], t)
	}

	columns := make([]string, 0, len(board.Columns))
	for _, col := range board.Columns {
		cards := byColumn[col.ID]
		models.SortByPosition(cards)

		var b strings.Builder
		b.WriteString(TitleStyle.Render(fmt.Sprintf("%s (%d)", col.Name, len(cards))))
		b.WriteString("\n")
		b.WriteString(IDStyle.Render(string(col.ID)))
		if len(cards) == 0 {
			b.WriteString("\n\n" + SubtitleStyle.Render("empty"))
		}
		for _, t := range cards {
			b.WriteString("\n\n" + renderCardLine(t, now))
		}
		columns = append(columns, ColumnStyle.Render(b.String()))
	}

	header := TitleStyle.Render(board.Name) + " " + IDStyle.Render(string(board.ID))
	if len(columns) == 0 {
		return header + "\n" + SubtitleStyle.Render("no columns") + "\n"
	}
	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, columns...) + "\n"
}

func renderCardLine(t models.Task, now time.Time) string {
	line := ValueStyle.Render(t.Title)
	var meta []string
	if badge := Priority(t.Priority); badge != "" {
		meta = append(meta, badge)
	}
	if t.Assignee != "" {
		meta = append(meta, SubtitleStyle.Render("@"+t.Assignee))
	}
	if due := renderDue(t, now); due != "" {
		meta = append(meta, due)
	}
	if len(meta) > 0 {
		line += "\n" + strings.Join(meta, " ")
	}
	return line + "\n" + IDStyle.Render(string(t.ID))
}

func renderDue(t models.Task, now time.Time) string {
	due, ok, err := t.Due(now.Location())
	if err != nil || !ok {
		return ""
	}
	switch {
	case due.Before(now):
		return OverdueStyle.Render("due " + t.DueDate)
	case due.Before(now.Add(24 * time.Hour)):
		return DueSoonStyle.Render("due " + t.DueDate)
	default:
		return SubtitleStyle.Render("due " + t.DueDate)
	}
}

// RenderTask draws a task card with its fields, description, and activity log
func RenderTask(t models.Task, columnName string, now time.Time) string {
	var content strings.Builder

	content.WriteString(TitleStyle.Render(t.Title))
	content.WriteString("\n")
	content.WriteString(SubtitleStyle.Render(string(t.ID)))
	content.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		content.WriteString(LabelStyle.Render(label+":") + " " + value + "\n")
	}
	field("Status", ValueStyle.Render(columnName))
	field("Position", ValueStyle.Render(fmt.Sprint(t.Position)))
	field("Priority", Priority(t.Priority))
	field("Assignee", ValueStyle.Render(t.Assignee))
	if t.DueDate != "" {
		due := renderDue(t, now)
		if due == "" {
			due = ValueStyle.Render(t.DueDate)
		}
		field("Due", due)
	}
	if len(t.Tags) > 0 {
		field("Tags", ValueStyle.Render(strings.Join(t.Tags, ", ")))
	}
	field("Created", ValueStyle.Render(time.UnixMilli(t.CreatedDate).In(now.Location()).Format(time.DateTime)))

	if len(t.Extra) > 0 {
		keys := make([]string, 0, len(t.Extra))
		for k := range t.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		content.WriteString(SectionStyle.Render("Fields"))
		content.WriteString("\n")
		for _, k := range keys {
			content.WriteString(fmt.Sprintf("  %s %v\n", LabelStyle.Render(k+":"), t.Extra[k]))
		}
	}

	if t.Description != "" {
		content.WriteString(SectionStyle.Render("Description"))
		content.WriteString("\n")
		for _, line := range strings.Split(t.Description, "\n") {
			content.WriteString("  " + ValueStyle.Render(line) + "\n")
		}
	}

	if len(t.ActivityLog) > 0 {
		content.WriteString(SectionStyle.Render("Activity"))
		content.WriteString("\n")
		for _, entry := range t.ActivityLog {
			ts := time.UnixMilli(entry.TS).In(now.Location()).Format(time.DateTime)
			content.WriteString(fmt.Sprintf("  %s %s\n", SubtitleStyle.Render(ts), ValueStyle.Render(entry.Message)))
		}
	}

	return CardStyle.Render(strings.TrimRight(content.String(), "\n")) + "\n"
}

// RenderTree draws a workspace and everything beneath it as an indented tree
func RenderTree(snap models.Snapshot, ws models.Workspace) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(ws.Name) + " " + IDStyle.Render(string(ws.ID)) + "\n")

	for pi, pid := range ws.Projects {
		project, ok := snap.Project(pid)
		if !ok {
			continue
		}
		lastProject := pi == len(ws.Projects)-1
		b.WriteString(branch("", lastProject) + LabelStyle.Render(project.Name) + " " + IDStyle.Render(string(project.ID)) + "\n")

		projectIndent := indent("", lastProject)
		for bi, bid := range project.Boards {
			board, ok := snap.Board(bid)
			if !ok {
				continue
			}
			lastBoard := bi == len(project.Boards)-1
			b.WriteString(branch(projectIndent, lastBoard) + ValueStyle.Render(board.Name) + " " + IDStyle.Render(string(board.ID)) + "\n")

			boardIndent := indent(projectIndent, lastBoard)
			for ci, col := range board.Columns {
				count := len(snap.TasksInColumn(col.ID))
				label := fmt.Sprintf("%s (%d)", col.Name, count)
				b.WriteString(branch(boardIndent, ci == len(board.Columns)-1) + SubtitleStyle.Render(label) + "\n")
			}
		}
	}
	return b.String()
}

func branch(prefix string, last bool) string {
	if last {
		return prefix + "└── "
	}
	return prefix + "├── "
}

func indent(prefix string, last bool) string {
	if last {
		return prefix + "    "
	}
	return prefix + "│   "
}
