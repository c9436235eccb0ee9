package model

// ChartKind identifies how the chart library draws a dataset.
type ChartKind string

const (
	KindBar           ChartKind = "bar"
	KindHorizontalBar ChartKind = "horizontalBar"
	KindDoughnut      ChartKind = "doughnut"
	KindPie           ChartKind = "pie"
	KindLine          ChartKind = "line"
	KindRadar         ChartKind = "radar"
)

// Series is one numeric data series of a dataset.
// Per-point colors (BackgroundColors/BorderColors) take precedence over the
// single BackgroundColor/BorderColor when both are set.
type Series struct {
	Label                string
	Data                 []float64
	BackgroundColors     []string
	BorderColors         []string
	BackgroundColor      string
	BorderColor          string
	PointBackgroundColor string
	BorderWidth          int
}

// Dataset is a named, fixed collection of labels paired with one or more series.
type Dataset struct {
	Name   string
	Labels []string
	Series []Series
}

// Clone returns a deep copy so callers can never mutate catalog data.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Name:   d.Name,
		Labels: append([]string(nil), d.Labels...),
		Series: make([]Series, len(d.Series)),
	}
	for i, s := range d.Series {
		s.Data = append([]float64(nil), s.Data...)
		s.BackgroundColors = append([]string(nil), s.BackgroundColors...)
		s.BorderColors = append([]string(nil), s.BorderColors...)
		out.Series[i] = s
	}
	return out
}

// ChartOptions mirrors the options map passed to the chart library.
type ChartOptions struct {
	BeginAtZero    bool
	XAxisTitle     string
	YAxisTitle     string
	RadialMax      float64 // 0 = library default
	LegendPosition string  // "" = library default
}

// ChartConfig is everything the chart library needs to construct one chart.
type ChartConfig struct {
	Slot    string
	Kind    ChartKind
	Title   string
	Dataset Dataset
	Options ChartOptions
}

// SlotSpec declares one chart slot of the page.
type SlotSpec struct {
	ID          string // slot name, e.g. "severity"
	CanvasID    string // element id of the rendering target
	Tab         string // owning tab identifier
	Title       string
	Kind        ChartKind
	DatasetKey  string
	SeriesLabel string // label for single-series datasets
	// Fallback colors for single-series datasets that carry none.
	BackgroundColor      string
	BorderColor          string
	PointBackgroundColor string
	Options              ChartOptions
	LabelCap             int // 0 = no cap
}

// TabSpec declares one tab of the page.
type TabSpec struct {
	ID    string
	Title string
}

// Recommendation is one canned recommendation card.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Layout is the fixed page structure by identifier convention.
type Layout struct {
	Tabs                   []TabSpec
	Slots                  []SlotSpec
	RecommendationsTab     string
	RecommendationsElement string
	PrintButtonElement     string
}
