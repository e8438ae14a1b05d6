package config

// Theme defines the colors used for terminal output
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (headers, ids)
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text such as empty columns
	Normal string `yaml:"normal"`

	// Priority badges
	Low      string `yaml:"low"`
	Medium   string `yaml:"medium"`
	High     string `yaml:"high"`
	Critical string `yaml:"critical"`

	// Reminder and result colors
	Overdue string `yaml:"overdue"`
	DueSoon string `yaml:"due_soon"`
	Success string `yaml:"success"`
	Error   string `yaml:"error"`
}

// DefaultTheme returns the default theme (purple accent)
func DefaultTheme() Theme {
	return Theme{
		Preset:   "default",
		Accent:   "#874BFD",
		Title:    "#D75FD7",
		Subtle:   "#585858",
		Normal:   "#D0D0D0",
		Low:      "#5FD75F",
		Medium:   "#5F87D7",
		High:     "#FFD700",
		Critical: "#FF0000",
		Overdue:  "#FF0000",
		DueSoon:  "#FFD700",
		Success:  "#5FD75F",
		Error:    "#FF0000",
	}
}

// MonochromeTheme returns a black and white theme
func MonochromeTheme() Theme {
	return Theme{
		Preset:   "monochrome",
		Accent:   "#FFFFFF",
		Title:    "#FFFFFF",
		Subtle:   "#585858",
		Normal:   "#D0D0D0",
		Low:      "#D0D0D0",
		Medium:   "#D0D0D0",
		High:     "#FFFFFF",
		Critical: "#FFFFFF",
		Overdue:  "#FFFFFF",
		DueSoon:  "#D0D0D0",
		Success:  "#FFFFFF",
		Error:    "#FFFFFF",
	}
}

// ThemePreset returns a preset theme by name. Unknown names get the default.
func ThemePreset(name string) Theme {
	if name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// fields lists every color slot so merging and defaulting stay in step
func (t *Theme) fields() []*string {
	return []*string{
		&t.Accent, &t.Title, &t.Subtle, &t.Normal,
		&t.Low, &t.Medium, &t.High, &t.Critical,
		&t.Overdue, &t.DueSoon, &t.Success, &t.Error,
	}
}

// ApplyDefaults fills in missing colors from the preset.
// Custom values set in the file always win over the preset.
func (t *Theme) ApplyDefaults() {
	preset := ThemePreset(t.Preset)
	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	dst := t.fields()
	for i, src := range preset.fields() {
		if *dst[i] == "" {
			*dst[i] = *src
		}
	}
}

// MergeFrom copies every color set in other over t
func (t *Theme) MergeFrom(other Theme) {
	if other.Preset != "" {
		t.Preset = other.Preset
	}
	dst := t.fields()
	for i, src := range other.fields() {
		if *src != "" {
			*dst[i] = *src
		}
	}
}
