package chartjs

import (
	"github.com/tinytelemetry/secdash/internal/dashboard"
	"github.com/tinytelemetry/secdash/internal/model"
)

// Chart is one chart the browser will construct: the canvas id it binds to
// and the Chart.js configuration.
type Chart struct {
	Slot     string `json:"slot"`
	CanvasID string `json:"canvas"`
	Title    string `json:"title"`
	Config   Config `json:"config"`
}

// Resize implements dashboard.Chart. Browser charts size themselves.
func (c *Chart) Resize(int, int) {}

// Factory records the charts constructed on a page so they can be emitted
// to the browser.
type Factory struct {
	charts []*Chart
}

// NewChart implements dashboard.ChartFactory.
func (f *Factory) NewChart(target *dashboard.Element, cfg model.ChartConfig) dashboard.Chart {
	c := &Chart{
		Slot:     cfg.Slot,
		CanvasID: target.ID,
		Title:    cfg.Title,
		Config:   FromChart(cfg),
	}
	f.charts = append(f.charts, c)
	return c
}

// Charts returns the constructed charts in construction order.
func (f *Factory) Charts() []*Chart {
	return append([]*Chart(nil), f.charts...)
}
