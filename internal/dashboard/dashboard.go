package dashboard

import (
	"context"
	"time"

	"github.com/tinytelemetry/secdash/internal/catalog"
	"github.com/tinytelemetry/secdash/internal/model"
)

// Config wires the page behaviours to their host collaborators.
type Config struct {
	Layout          model.Layout
	Datasets        DatasetSource          // nil = built-in sample data
	Recommendations []model.Recommendation // nil = built-in recommendations
	Factory         ChartFactory
	Printer         Printer   // nil = print button left unwired
	Scheduler       Scheduler // nil = hidden panels are not primed
	RestoreDelay    time.Duration
}

// Dashboard is a loaded page.
type Dashboard struct {
	Doc    Document
	Tabs   *TabController
	Charts []*ChartInstance

	Cards        int
	PrintWired   bool
	PanelsPrimed int
}

// Load runs the page-loaded sequence on doc: tab wiring, chart construction,
// recommendation cards, print wiring and the hidden-panel workaround.
func Load(ctx context.Context, doc Document, cfg Config) *Dashboard {
	if cfg.Datasets == nil {
		cfg.Datasets = catalog.Dataset
	}
	if cfg.Recommendations == nil {
		cfg.Recommendations = catalog.Recommendations()
	}
	if cfg.RestoreDelay <= 0 {
		cfg.RestoreDelay = model.DefaultRestoreDelay
	}

	d := &Dashboard{Doc: doc}
	d.Tabs = WireTabs(doc)

	if cfg.Factory != nil {
		d.Charts = NewBootstrapper(doc, cfg.Factory, cfg.Datasets).Build(cfg.Layout.Slots)
	}

	d.Cards = RenderRecommendations(doc, cfg.Layout.RecommendationsElement, cfg.Recommendations)
	d.PrintWired = WirePrint(doc, cfg.Layout.PrintButtonElement, cfg.Printer)

	if cfg.Scheduler != nil {
		d.PanelsPrimed = PrimeHiddenPanels(ctx, d.Tabs, cfg.Scheduler, cfg.RestoreDelay)
	}

	return d
}

// Chart returns the instance bound to slot, or nil when the slot was skipped.
func (d *Dashboard) Chart(slot string) *ChartInstance {
	for _, c := range d.Charts {
		if c.Slot.ID == slot {
			return c
		}
	}
	return nil
}

// ChartsForTab returns the instances whose slot belongs to tab, in slot order.
func (d *Dashboard) ChartsForTab(tab string) []*ChartInstance {
	var out []*ChartInstance
	for _, c := range d.Charts {
		if c.Slot.Tab == tab {
			out = append(out, c)
		}
	}
	return out
}
