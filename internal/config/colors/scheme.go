package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset" koanf:"preset"`

	// Primary accent color (used for titles, highlights, the focused input)
	Accent     string `yaml:"accent" koanf:"accent"`
	Background string `yaml:"background" koanf:"background"`
	Border     string `yaml:"border" koanf:"border"`

	// Assignment status colors
	Assigned   string `yaml:"assigned" koanf:"assigned"`     // Green - entity has a label
	Unassigned string `yaml:"unassigned" koanf:"unassigned"` // Yellow - not yet assigned
	Confirm    string `yaml:"confirm" koanf:"confirm"`       // End-of-list prompt border

	// Text colors
	Title  string `yaml:"title" koanf:"title"`
	Subtle string `yaml:"subtle" koanf:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal" koanf:"normal"`

	// Progress bar
	ProgressFull  string `yaml:"progress_full" koanf:"progress_full"`
	ProgressEmpty string `yaml:"progress_empty" koanf:"progress_empty"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg" koanf:"info_fg"`
	InfoBg    string `yaml:"info_bg" koanf:"info_bg"`
	WarningFg string `yaml:"warning_fg" koanf:"warning_fg"`
	WarningBg string `yaml:"warning_bg" koanf:"warning_bg"`
	ErrorFg   string `yaml:"error_fg" koanf:"error_fg"`
	ErrorBg   string `yaml:"error_bg" koanf:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg" koanf:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text" koanf:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// fields lists every color slot, paired by position with the same slots of other.
func (c *ColorScheme) fields(other *ColorScheme) [][2]*string {
	return [][2]*string{
		{&c.Accent, &other.Accent},
		{&c.Background, &other.Background},
		{&c.Border, &other.Border},
		{&c.Assigned, &other.Assigned},
		{&c.Unassigned, &other.Unassigned},
		{&c.Confirm, &other.Confirm},
		{&c.Title, &other.Title},
		{&c.Subtle, &other.Subtle},
		{&c.Normal, &other.Normal},
		{&c.ProgressFull, &other.ProgressFull},
		{&c.ProgressEmpty, &other.ProgressEmpty},
		{&c.InfoFg, &other.InfoFg},
		{&c.InfoBg, &other.InfoBg},
		{&c.WarningFg, &other.WarningFg},
		{&c.WarningBg, &other.WarningBg},
		{&c.ErrorFg, &other.ErrorFg},
		{&c.ErrorBg, &other.ErrorBg},
		{&c.StatusBarBg, &other.StatusBarBg},
		{&c.StatusBarText, &other.StatusBarText},
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	for _, pair := range c.fields(preset) {
		if *pair[0] == "" {
			*pair[0] = *pair[1]
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other.
// A preset change in other rebases the scheme on that preset first.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}

	for _, pair := range c.fields(&other) {
		if *pair[1] != "" {
			*pair[0] = *pair[1]
		}
	}
}
