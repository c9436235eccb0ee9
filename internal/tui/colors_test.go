package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestParseCSSColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		hex   string
		alpha float64
		ok    bool
	}{
		{"rgba(220, 53, 69, 1)", "#dc3545", 1, true},
		{"rgba(0, 123, 255, 0.2)", "#007bff", 0.2, true},
		{"rgb(40, 167, 69)", "#28a745", 1, true},
		{"#6f42c1", "#6f42c1", 1, true},
		{"teal", "", 0, false},
		{"rgba(1, 2)", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			c, alpha, ok := parseCSSColor(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if got := c.Hex(); got != tt.hex {
				t.Errorf("hex = %s, want %s", got, tt.hex)
			}
			if alpha != tt.alpha {
				t.Errorf("alpha = %v, want %v", alpha, tt.alpha)
			}
		})
	}
}

func TestTerminalColor(t *testing.T) {
	t.Parallel()

	if got := terminalColor("rgba(220, 53, 69, 1)", ColorGray); got != lipgloss.Color("#dc3545") {
		t.Errorf("opaque color = %s, want #dc3545", got)
	}
	if got := terminalColor("nonsense", ColorGray); got != ColorGray {
		t.Errorf("fallback = %s, want %s", got, ColorGray)
	}
	if got := terminalColor("rgba(220, 53, 69, 0.2)", ColorGray); got == lipgloss.Color("#dc3545") {
		t.Error("translucent color should be blended toward the background")
	}
}
