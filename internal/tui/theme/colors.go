package theme

import "github.com/thenoetrevino/asta/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent        string
	Background    string
	Border        string
	Assigned      string
	Unassigned    string
	Confirm       string
	Title         string
	Subtle        string
	Normal        string
	ProgressFull  string
	ProgressEmpty string
	InfoFg        string
	InfoBg        string
	WarningFg     string
	WarningBg     string
	ErrorFg       string
	ErrorBg       string
	StatusBarBg   string
	StatusBarText string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Background = colors.Background
	Border = colors.Border
	Assigned = colors.Assigned
	Unassigned = colors.Unassigned
	Confirm = colors.Confirm
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	ProgressFull = colors.ProgressFull
	ProgressEmpty = colors.ProgressEmpty
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}
