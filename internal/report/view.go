// Package report renders a loaded dashboard page as a standalone HTML
// document driven by Chart.js.
package report

import (
	"time"

	"github.com/tinytelemetry/secdash/internal/chartjs"
	"github.com/tinytelemetry/secdash/internal/dashboard"
	"github.com/tinytelemetry/secdash/internal/model"
)

// DefaultTitle is the document title.
const DefaultTitle = "Executive Security Dashboard"

// View is the template data of one rendered page.
type View struct {
	Title          string
	GeneratedAt    time.Time
	PrintButton    *Button
	Tabs           []Button
	Panels         []Panel
	Charts         []*chartjs.Chart
	RestoreDelayMS int64
}

// Button is a clickable element of the page.
type Button struct {
	ID     string
	Label  string
	Tab    string
	Active bool
}

// Panel is one tab content panel.
type Panel struct {
	ID              string
	Title           string
	Active          bool
	Canvases        []Canvas
	Recommendations *Recommendations
}

// Canvas is a chart target.
type Canvas struct {
	ID    string
	Title string
}

// Recommendations is the recommendation container and its cards.
type Recommendations struct {
	ID    string
	Title string
	Cards []model.Recommendation
}

// FromPage snapshots page into template data. charts are the Chart.js
// configurations constructed while the page loaded.
func FromPage(page *dashboard.Page, charts []*chartjs.Chart, restoreDelay time.Duration) View {
	if restoreDelay <= 0 {
		restoreDelay = model.DefaultRestoreDelay
	}
	v := View{
		Title:          DefaultTitle,
		GeneratedAt:    time.Now(),
		Charts:         charts,
		RestoreDelayMS: restoreDelay.Milliseconds(),
	}

	if btn := page.ElementByID(model.PrintButtonElementID); btn != nil {
		v.PrintButton = &Button{ID: btn.ID, Label: btn.Text}
	}

	for _, el := range page.ElementsByClass(model.ClassTabButton) {
		v.Tabs = append(v.Tabs, Button{
			ID:     el.ID,
			Label:  el.Text,
			Tab:    el.Attr(model.AttrDataTab),
			Active: el.HasClass(model.ClassActive),
		})
	}

	for _, el := range page.ElementsByClass(model.ClassTabContent) {
		p := Panel{
			ID:     el.ID,
			Title:  el.Text,
			Active: el.HasClass(model.ClassActive),
		}
		for _, child := range el.Children() {
			switch {
			case child.HasClass(model.ClassChart):
				p.Canvases = append(p.Canvases, Canvas{ID: child.ID, Title: child.Text})
			case child.ID == model.RecommendationsElementID:
				p.Recommendations = &Recommendations{
					ID:    child.ID,
					Title: child.Text,
					Cards: dashboard.Cards(page, child.ID),
				}
			}
		}
		v.Panels = append(v.Panels, p)
	}

	return v
}
