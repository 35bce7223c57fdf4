// Package theme provides the colour palettes used for wikitodo output.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines all colours used when printing TODOs and prompts.
type Theme struct {
	Heading  lipgloss.Color // "Your TODOs:" and prompt titles
	Entry    lipgloss.Color // Number and text of each entry
	Open     lipgloss.Color // "[ ]" glyph
	Done     lipgloss.Color // "[x]" glyph
	Location lipgloss.Color // file:line reference
	Success  lipgloss.Color
	Error    lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color // Picker selection background
	AccentFg lipgloss.Color // Text on Accent
}

// Theme names.
const (
	GruvboxDarkName     = "gruvbox-dark"
	GruvboxLightName    = "gruvbox-light"
	DraculaName         = "dracula"
	NordName            = "nord"
	SolarizedDarkName   = "solarized-dark"
	CatppuccinMochaName = "catppuccin-mocha"
)

// GruvboxDark returns the Gruvbox dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		Heading:  lipgloss.Color("#D79921"),
		Entry:    lipgloss.Color("#83A598"),
		Open:     lipgloss.Color("#FB4934"),
		Done:     lipgloss.Color("#B8BB26"),
		Location: lipgloss.Color("#8EC07C"),
		Success:  lipgloss.Color("#B8BB26"),
		Error:    lipgloss.Color("#FB4934"),
		Muted:    lipgloss.Color("#928374"),
		Accent:   lipgloss.Color("#FABD2F"),
		AccentFg: lipgloss.Color("#282828"),
	}
}

// GruvboxLight returns the Gruvbox light theme.
func GruvboxLight() *Theme {
	return &Theme{
		Heading:  lipgloss.Color("#B57614"),
		Entry:    lipgloss.Color("#076678"),
		Open:     lipgloss.Color("#9D0006"),
		Done:     lipgloss.Color("#79740E"),
		Location: lipgloss.Color("#427B58"),
		Success:  lipgloss.Color("#79740E"),
		Error:    lipgloss.Color("#9D0006"),
		Muted:    lipgloss.Color("#7C6F64"),
		Accent:   lipgloss.Color("#D79921"),
		AccentFg: lipgloss.Color("#FBF1C7"),
	}
}

// Dracula returns the Dracula theme.
func Dracula() *Theme {
	return &Theme{
		Heading:  lipgloss.Color("#F1FA8C"),
		Entry:    lipgloss.Color("#BD93F9"),
		Open:     lipgloss.Color("#FF5555"),
		Done:     lipgloss.Color("#50FA7B"),
		Location: lipgloss.Color("#8BE9FD"),
		Success:  lipgloss.Color("#50FA7B"),
		Error:    lipgloss.Color("#FF5555"),
		Muted:    lipgloss.Color("#6272A4"),
		Accent:   lipgloss.Color("#BD93F9"),
		AccentFg: lipgloss.Color("#282A36"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Heading:  lipgloss.Color("#EBCB8B"),
		Entry:    lipgloss.Color("#81A1C1"),
		Open:     lipgloss.Color("#BF616A"),
		Done:     lipgloss.Color("#A3BE8C"),
		Location: lipgloss.Color("#88C0D0"),
		Success:  lipgloss.Color("#A3BE8C"),
		Error:    lipgloss.Color("#BF616A"),
		Muted:    lipgloss.Color("#4C566A"),
		Accent:   lipgloss.Color("#88C0D0"),
		AccentFg: lipgloss.Color("#2E3440"),
	}
}

// SolarizedDark returns the Solarized dark theme.
func SolarizedDark() *Theme {
	return &Theme{
		Heading:  lipgloss.Color("#B58900"),
		Entry:    lipgloss.Color("#268BD2"),
		Open:     lipgloss.Color("#DC322F"),
		Done:     lipgloss.Color("#859900"),
		Location: lipgloss.Color("#2AA198"),
		Success:  lipgloss.Color("#859900"),
		Error:    lipgloss.Color("#DC322F"),
		Muted:    lipgloss.Color("#586E75"),
		Accent:   lipgloss.Color("#268BD2"),
		AccentFg: lipgloss.Color("#002B36"),
	}
}

// CatppuccinMocha returns the Catppuccin Mocha theme.
func CatppuccinMocha() *Theme {
	return &Theme{
		Heading:  lipgloss.Color("#F9E2AF"),
		Entry:    lipgloss.Color("#89B4FA"),
		Open:     lipgloss.Color("#F38BA8"),
		Done:     lipgloss.Color("#A6E3A1"),
		Location: lipgloss.Color("#94E2D5"),
		Success:  lipgloss.Color("#A6E3A1"),
		Error:    lipgloss.Color("#F38BA8"),
		Muted:    lipgloss.Color("#6C7086"),
		Accent:   lipgloss.Color("#B4BEFE"),
		AccentFg: lipgloss.Color("#1E1E2E"),
	}
}

// GetTheme returns a theme by name, or Gruvbox dark if not found.
func GetTheme(name string) *Theme {
	switch name {
	case GruvboxLightName:
		return GruvboxLight()
	case DraculaName:
		return Dracula()
	case NordName:
		return Nord()
	case SolarizedDarkName:
		return SolarizedDark()
	case CatppuccinMochaName:
		return CatppuccinMocha()
	default:
		return GruvboxDark()
	}
}

// DefaultName returns the theme used when none is configured.
func DefaultName() string {
	return GruvboxDarkName
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		GruvboxDarkName,
		GruvboxLightName,
		DraculaName,
		NordName,
		SolarizedDarkName,
		CatppuccinMochaName,
	}
}
