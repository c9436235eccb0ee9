package dashboard

import (
	"github.com/tinytelemetry/secdash/internal/catalog"
	"github.com/tinytelemetry/secdash/internal/model"
)

type size struct{ w, h int }

type recordingChart struct {
	cfg   model.ChartConfig
	sizes []size
}

func (c *recordingChart) Resize(w, h int) { c.sizes = append(c.sizes, size{w, h}) }

func (c *recordingChart) sized() bool { return len(c.sizes) > 0 }

// recordingFactory counts constructions per target.
type recordingFactory struct {
	built  map[string]int
	charts map[string]*recordingChart
	order  []string
}

func newRecordingFactory() *recordingFactory {
	return &recordingFactory{
		built:  make(map[string]int),
		charts: make(map[string]*recordingChart),
	}
}

func (f *recordingFactory) NewChart(target *Element, cfg model.ChartConfig) Chart {
	f.built[target.ID]++
	f.order = append(f.order, cfg.Slot)
	c := &recordingChart{cfg: cfg}
	f.charts[cfg.Slot] = c
	return c
}

func newTestPage(opts ...BuildOption) *Page {
	p := BuildPage(catalog.Layout(), opts...)
	p.SetViewport(120, 40)
	return p
}

func activeButtons(c *TabController) []string {
	var out []string
	for _, t := range c.Tabs() {
		if t.Button.HasClass(model.ClassActive) {
			out = append(out, t.ID)
		}
	}
	return out
}

func activePanels(doc Document) []string {
	var out []string
	for _, p := range doc.ElementsByClass(model.ClassTabContent) {
		if p.HasClass(model.ClassActive) {
			out = append(out, p.ID)
		}
	}
	return out
}
