package colors

// Kanagawa palette entries used by Wave
const (
	oniViolet    = "#957FB8"
	sumiInk1     = "#1F1F28"
	sumiInk4     = "#363646"
	sumiInk6     = "#54546D"
	springGreen  = "#98BB6C"
	crystalBlue  = "#7E9CD8"
	carpYellow   = "#E6C384"
	sakuraPink   = "#D27E99"
	fujiGray     = "#727169"
	fujiWhite    = "#DCD7BA"
	dragonBlue   = "#658594"
	winterBlue   = "#252535"
	roninYellow  = "#FF9E3B"
	winterYellow = "#49443C"
	samuraiRed   = "#E82424"
	winterRed    = "#43242B"
)

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent:     oniViolet,
		Background: sumiInk1,
		Border:     sumiInk6,

		Assigned:   springGreen,
		Unassigned: carpYellow,
		Confirm:    sakuraPink,

		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		ProgressFull:  springGreen,
		ProgressEmpty: sumiInk4,

		InfoFg:    dragonBlue,
		InfoBg:    winterBlue,
		WarningFg: roninYellow,
		WarningBg: winterYellow,
		ErrorFg:   samuraiRed,
		ErrorBg:   winterRed,

		StatusBarBg:   oniViolet,
		StatusBarText: fujiWhite,
	}
}
