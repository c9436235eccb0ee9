// Package chartjs turns chart configurations into the JSON shape the
// Chart.js constructor expects.
package chartjs

import "github.com/tinytelemetry/secdash/internal/model"

// Config is a Chart.js constructor argument: {type, data, options}.
type Config map[string]any

// FromChart converts cfg into a Chart.js configuration.
func FromChart(cfg model.ChartConfig) Config {
	return Config{
		"type":    chartType(cfg.Kind),
		"data":    data(cfg),
		"options": options(cfg),
	}
}

func chartType(kind model.ChartKind) string {
	if kind == model.KindHorizontalBar {
		return string(model.KindBar)
	}
	return string(kind)
}

func data(cfg model.ChartConfig) map[string]any {
	datasets := make([]map[string]any, 0, len(cfg.Dataset.Series))
	for _, s := range cfg.Dataset.Series {
		datasets = append(datasets, dataset(s))
	}
	return map[string]any{
		"labels":   nonNil(cfg.Dataset.Labels),
		"datasets": datasets,
	}
}

func dataset(s model.Series) map[string]any {
	out := map[string]any{
		"data": nonNilFloats(s.Data),
	}
	if s.Label != "" {
		out["label"] = s.Label
	}
	switch {
	case len(s.BackgroundColors) > 0:
		out["backgroundColor"] = s.BackgroundColors
	case s.BackgroundColor != "":
		out["backgroundColor"] = s.BackgroundColor
	}
	switch {
	case len(s.BorderColors) > 0:
		out["borderColor"] = s.BorderColors
	case s.BorderColor != "":
		out["borderColor"] = s.BorderColor
	}
	if s.PointBackgroundColor != "" {
		out["pointBackgroundColor"] = s.PointBackgroundColor
	}
	if s.BorderWidth > 0 {
		out["borderWidth"] = s.BorderWidth
	}
	return out
}

func options(cfg model.ChartConfig) map[string]any {
	opts := map[string]any{
		"responsive":          true,
		"maintainAspectRatio": false,
	}
	o := cfg.Options

	if o.LegendPosition != "" {
		opts["plugins"] = map[string]any{
			"legend": map[string]any{"position": o.LegendPosition},
		}
	}

	scales := map[string]any{}
	switch cfg.Kind {
	case model.KindBar, model.KindLine:
		if y := axis(o.BeginAtZero, o.YAxisTitle); len(y) > 0 {
			scales["y"] = y
		}
		if x := axis(false, o.XAxisTitle); len(x) > 0 {
			scales["x"] = x
		}
	case model.KindHorizontalBar:
		opts["indexAxis"] = "y"
		if x := axis(o.BeginAtZero, o.XAxisTitle); len(x) > 0 {
			scales["x"] = x
		}
	case model.KindRadar:
		r := axis(o.BeginAtZero, "")
		if o.RadialMax > 0 {
			r["max"] = o.RadialMax
		}
		if len(r) > 0 {
			scales["r"] = r
		}
	}
	if len(scales) > 0 {
		opts["scales"] = scales
	}
	return opts
}

func axis(beginAtZero bool, title string) map[string]any {
	a := map[string]any{}
	if beginAtZero {
		a["beginAtZero"] = true
	}
	if title != "" {
		a["title"] = map[string]any{"display": true, "text": title}
	}
	return a
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilFloats(s []float64) []float64 {
	if s == nil {
		return []float64{}
	}
	return s
}
