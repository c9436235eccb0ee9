package dashboard

import (
	"context"
	"time"

	"github.com/tinytelemetry/secdash/internal/model"
)

// Chart is a constructed chart owned by the chart library.
type Chart interface {
	// Resize is called with the target's layout box whenever it changes to a
	// non-empty size.
	Resize(width, height int)
}

// ChartFactory is the chart library constructor.
type ChartFactory interface {
	NewChart(target *Element, cfg model.ChartConfig) Chart
}

// DatasetSource resolves a dataset key to a copy of its data.
type DatasetSource func(key string) (model.Dataset, bool)

// ChartInstance binds one chart slot to its rendering target.
type ChartInstance struct {
	Slot   model.SlotSpec
	Target *Element
	Config model.ChartConfig
	Chart  Chart
}

// Bootstrapper constructs one chart per slot.
type Bootstrapper struct {
	doc      Document
	factory  ChartFactory
	datasets DatasetSource
}

// NewBootstrapper creates a bootstrapper over doc.
func NewBootstrapper(doc Document, factory ChartFactory, datasets DatasetSource) *Bootstrapper {
	return &Bootstrapper{doc: doc, factory: factory, datasets: datasets}
}

// Build constructs the chart of every slot whose target exists. A missing
// target or dataset skips only that slot.
func (b *Bootstrapper) Build(slots []model.SlotSpec) []*ChartInstance {
	instances := make([]*ChartInstance, 0, len(slots))
	for _, slot := range slots {
		target := b.doc.ElementByID(slot.CanvasID)
		if target == nil {
			continue
		}
		ds, ok := b.datasets(slot.DatasetKey)
		if !ok {
			continue
		}

		cfg := BuildConfig(slot, ds)
		chart := b.factory.NewChart(target, cfg)
		if chart != nil {
			b.doc.Observe(target, func(box Box) { chart.Resize(box.Width, box.Height) })
		}
		instances = append(instances, &ChartInstance{
			Slot:   slot,
			Target: target,
			Config: cfg,
			Chart:  chart,
		})
	}
	return instances
}

// BuildConfig shapes a dataset for slot: it applies the label cap and fills
// in the single-series label and fallback colors. ds is not modified.
func BuildConfig(slot model.SlotSpec, ds model.Dataset) model.ChartConfig {
	ds = ds.Clone()
	if slot.LabelCap > 0 {
		ds = capLabels(ds, slot.LabelCap)
	}

	if len(ds.Series) == 1 {
		s := &ds.Series[0]
		if s.Label == "" {
			s.Label = slot.SeriesLabel
		}
		if len(s.BackgroundColors) == 0 && s.BackgroundColor == "" {
			s.BackgroundColor = slot.BackgroundColor
		}
		if len(s.BorderColors) == 0 && s.BorderColor == "" {
			s.BorderColor = slot.BorderColor
		}
		if s.PointBackgroundColor == "" {
			s.PointBackgroundColor = slot.PointBackgroundColor
		}
	}
	for i := range ds.Series {
		if ds.Series[i].BorderWidth == 0 && slot.Kind != model.KindLine {
			ds.Series[i].BorderWidth = 1
		}
	}

	return model.ChartConfig{
		Slot:    slot.ID,
		Kind:    slot.Kind,
		Title:   slot.Title,
		Dataset: ds,
		Options: slot.Options,
	}
}

// capLabels keeps the first n labels and the first n values of every series.
func capLabels(ds model.Dataset, n int) model.Dataset {
	if len(ds.Labels) > n {
		ds.Labels = ds.Labels[:n]
	}
	for i := range ds.Series {
		s := &ds.Series[i]
		if len(s.Data) > n {
			s.Data = s.Data[:n]
		}
		if len(s.BackgroundColors) > n {
			s.BackgroundColors = s.BackgroundColors[:n]
		}
		if len(s.BorderColors) > n {
			s.BorderColors = s.BorderColors[:n]
		}
	}
	return ds
}

// PrimeHiddenPanels makes every inactive tab panel visible off-screen so its
// charts can measure themselves, and schedules one restore per panel after
// delay. It returns the number of panels primed.
func PrimeHiddenPanels(ctx context.Context, tabs *TabController, sched Scheduler, delay time.Duration) int {
	primed := 0
	for _, tab := range tabs.Tabs() {
		panel := tab.Panel
		if panel == nil || panel.HasClass(model.ClassActive) {
			continue
		}

		original := panel.Style()
		offscreen := original
		offscreen.Display = "block"
		offscreen.Position = "absolute"
		offscreen.Left = "-9999px"
		panel.SetStyle(offscreen)

		sched.AfterFunc(ctx, delay, func() {
			panel.SetStyle(original)
		})
		primed++
	}
	return primed
}
