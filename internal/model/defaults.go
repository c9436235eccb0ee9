package model

import "time"

// Shared defaults used by the terminal and browser hosts.
const (
	DefaultRestoreDelay = 100 * time.Millisecond
	DefaultSkin         = "default"
	DefaultInitialTab   = "overview"

	// Element id conventions.
	PanelSuffix              = "-tab"
	ButtonSuffix             = "-button"
	RecommendationsElementID = "recommendations-container"
	PrintButtonElementID     = "printButton"

	// Class names.
	ClassTabButton      = "tab-button"
	ClassTabContent     = "tab-content"
	ClassActive         = "active"
	ClassRecommendation = "recommendation"
	ClassChart          = "chart"

	AttrDataTab = "data-tab"
)

// PanelID returns the element id of the content panel for tab.
func PanelID(tab string) string { return tab + PanelSuffix }

// ButtonID returns the element id of the tab button for tab.
func ButtonID(tab string) string { return tab + ButtonSuffix }
