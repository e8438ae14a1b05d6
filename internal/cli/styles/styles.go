package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/flowforge/internal/config"
	"github.com/thenoetrevino/flowforge/internal/models"
)

var (
	// Card styles
	CardStyle   lipgloss.Style
	CardWidth   = 80
	ColumnStyle lipgloss.Style
	ColumnWidth = 28

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Priority:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description", "Activity"
	IDStyle       lipgloss.Style

	// Status styles
	OverdueStyle lipgloss.Style
	DueSoonStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	priorityStyles map[models.Priority]lipgloss.Style
)

func init() {
	Init(config.DefaultTheme())
}

// Init initializes all CLI styles with the given theme
func Init(theme config.Theme) {
	theme.ApplyDefaults()

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		Padding(0, 1).
		Width(ColumnWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true).
		MarginTop(1)

	IDStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Overdue))

	DueSoonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.DueSoon))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Error))

	priorityStyles = map[models.Priority]lipgloss.Style{
		models.PriorityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Low)),
		models.PriorityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Medium)),
		models.PriorityHigh:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.High)),
		models.PriorityCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Critical)),
	}
}

// Priority renders a priority badge, or "" when none is set
func Priority(p models.Priority) string {
	style, ok := priorityStyles[p]
	if !ok {
		return ""
	}
	return style.Render(string(p))
}
