package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tinytelemetry/secdash/internal/skin"
)

// Palette. Replaced wholesale by InitializeSkin.
var (
	ColorBlue       lipgloss.Color
	ColorNavy       lipgloss.Color
	ColorGray       lipgloss.Color
	ColorWhite      lipgloss.Color
	ColorRed        lipgloss.Color
	ColorOrange     lipgloss.Color
	ColorGreen      lipgloss.Color
	ColorBackground lipgloss.Color
)

var (
	sectionStyle    lipgloss.Style
	chartTitleStyle lipgloss.Style
	helpStyle       lipgloss.Style
	headerStyle     lipgloss.Style
	tabStyle        lipgloss.Style
	activeTabStyle  lipgloss.Style
	statusStyle     lipgloss.Style
	errorStyle      lipgloss.Style
	cardTitleStyle  lipgloss.Style
	cardBodyStyle   lipgloss.Style
)

func init() {
	applySkin(skin.Default())
}

// InitializeSkin loads the named skin from configDir and applies it. On error
// the default skin stays in effect.
func InitializeSkin(name, configDir string) error {
	s, err := skin.Load(configDir, name)
	applySkin(s)
	return err
}

func applySkin(s skin.Skin) {
	c := s.Colors
	ColorBlue = lipgloss.Color(c.Primary)
	ColorNavy = lipgloss.Color(c.Accent)
	ColorGray = lipgloss.Color(c.Muted)
	ColorWhite = lipgloss.Color(c.Text)
	ColorRed = lipgloss.Color(c.Critical)
	ColorOrange = lipgloss.Color(c.Warning)
	ColorGreen = lipgloss.Color(c.Success)
	ColorBackground = lipgloss.Color(c.Background)

	sectionStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray)
	chartTitleStyle = lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true)
	helpStyle = lipgloss.NewStyle().
		Foreground(ColorGray)
	headerStyle = lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(ColorNavy).
		Bold(true).
		Padding(0, 1)
	tabStyle = lipgloss.NewStyle().
		Foreground(ColorGray).
		Padding(0, 2)
	activeTabStyle = lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true).
		Underline(true).
		Padding(0, 2)
	statusStyle = lipgloss.NewStyle().
		Foreground(ColorGray)
	errorStyle = lipgloss.NewStyle().
		Foreground(ColorRed).
		Bold(true)
	cardTitleStyle = lipgloss.NewStyle().
		Foreground(ColorGreen).
		Bold(true)
	cardBodyStyle = lipgloss.NewStyle().
		Foreground(ColorWhite)
}
