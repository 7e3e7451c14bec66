package tui

import "github.com/charmbracelet/lipgloss"

// Theme is a named color palette for the typing test screen.
type Theme struct {
	Name            string
	PrimaryAccent   string
	SecondaryAccent string
	CorrectText     string
	ErrorText       string
	LabelText       string
	RemainingText   string
	Border          string
	SelectedBg      string
}

var Themes = map[string]Theme{
	"default": {
		Name:            "Default",
		PrimaryAccent:   "#ff5fd7",
		SecondaryAccent: "#5fd7d7",
		CorrectText:     "#5fd7af",
		ErrorText:       "#ff0000",
		LabelText:       "#626262",
		RemainingText:   "#8a8a8a",
		Border:          "#5fd7d7",
		SelectedBg:      "#3a3a3a",
	},
	"gruvbox": {
		Name:            "Gruvbox",
		PrimaryAccent:   "#fe8019",
		SecondaryAccent: "#fabd2f",
		CorrectText:     "#b8bb26",
		ErrorText:       "#fb4934",
		LabelText:       "#928374",
		RemainingText:   "#a89984",
		Border:          "#d79921",
		SelectedBg:      "#3c3836",
	},
	"tokyonight": {
		Name:            "Tokyo Night",
		PrimaryAccent:   "#bb9af7",
		SecondaryAccent: "#7aa2f7",
		CorrectText:     "#9ece6a",
		ErrorText:       "#f7768e",
		LabelText:       "#565f89",
		RemainingText:   "#a9b1d6",
		Border:          "#7dcfff",
		SelectedBg:      "#292e42",
	},
	"catppuccin": {
		Name:            "Catppuccin",
		PrimaryAccent:   "#f5c2e7",
		SecondaryAccent: "#74c7ec",
		CorrectText:     "#a6e3a1",
		ErrorText:       "#f38ba8",
		LabelText:       "#a6adc8",
		RemainingText:   "#cdd6f4",
		Border:          "#b4befe",
		SelectedBg:      "#45475a",
	},
}

// ThemeNames lists theme keys in picker order.
var ThemeNames = []string{"default", "gruvbox", "tokyonight", "catppuccin"}

var CurrentTheme = Themes["default"]

var (
	titleStyle     lipgloss.Style
	labelStyle     lipgloss.Style
	sentenceStyle  lipgloss.Style
	inputStyle     lipgloss.Style
	disabledStyle  lipgloss.Style
	cursorStyle    lipgloss.Style
	progressFill   lipgloss.Style
	progressEmpty  lipgloss.Style
	wpmStyle       lipgloss.Style
	resultBoxStyle lipgloss.Style
	errorStyle     lipgloss.Style
	selectedStyle  lipgloss.Style
	helpStyle      lipgloss.Style
)

func init() {
	regenerateStyles()
}

// SetTheme switches the active palette. Unknown names are ignored and
// reported as false.
func SetTheme(name string) bool {
	theme, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentTheme = theme
	regenerateStyles()
	return true
}

// ThemeKey returns the Themes key of the active palette.
func ThemeKey() string {
	for _, key := range ThemeNames {
		if Themes[key].Name == CurrentTheme.Name {
			return key
		}
	}
	return "default"
}

func regenerateStyles() {
	t := CurrentTheme

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.PrimaryAccent)).
		MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.LabelText))

	sentenceStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.RemainingText))

	inputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Foreground(lipgloss.Color(t.CorrectText)).
		Padding(0, 1)

	disabledStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.LabelText)).
		Foreground(lipgloss.Color(t.LabelText)).
		Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.PrimaryAccent)).
		Foreground(lipgloss.Color("#000000"))

	progressFill = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.SecondaryAccent))

	progressEmpty = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.SelectedBg))

	wpmStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.CorrectText))

	resultBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Foreground(lipgloss.Color(t.PrimaryAccent)).
		Bold(true).
		Padding(1, 3)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.ErrorText))

	selectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.SelectedBg)).
		Foreground(lipgloss.Color(t.PrimaryAccent)).
		Bold(true)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.LabelText))
}
