package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// parseCSSColor understands the rgba()/rgb() and hex forms used by the
// sample datasets. It returns the color and its alpha.
func parseCSSColor(css string) (colorful.Color, float64, bool) {
	css = strings.TrimSpace(css)
	switch {
	case strings.HasPrefix(css, "#"):
		c, err := colorful.Hex(css)
		if err != nil {
			return colorful.Color{}, 0, false
		}
		return c, 1, true
	case strings.HasPrefix(css, "rgba("):
		var r, g, b int
		var a float64
		if _, err := fmt.Sscanf(css, "rgba(%d, %d, %d, %g)", &r, &g, &b, &a); err != nil {
			return colorful.Color{}, 0, false
		}
		return rgb255(r, g, b), a, true
	case strings.HasPrefix(css, "rgb("):
		var r, g, b int
		if _, err := fmt.Sscanf(css, "rgb(%d, %d, %d)", &r, &g, &b); err != nil {
			return colorful.Color{}, 0, false
		}
		return rgb255(r, g, b), 1, true
	}
	return colorful.Color{}, 0, false
}

func rgb255(r, g, b int) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// terminalColor maps a CSS color to a terminal color. Translucent colors are
// blended toward the skin background by half their transparency so fills stay
// readable on a dark terminal.
func terminalColor(css string, fallback lipgloss.Color) lipgloss.Color {
	c, alpha, ok := parseCSSColor(css)
	if !ok {
		return fallback
	}
	if alpha < 1 {
		bg, err := colorful.Hex(string(ColorBackground))
		if err != nil {
			bg = colorful.Color{}
		}
		c = c.BlendRgb(bg, (1-alpha)/2)
	}
	return lipgloss.Color(c.Clamped().Hex())
}

// solid is a style that paints both glyph and cell in color.
func solid(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color).Background(color)
}
