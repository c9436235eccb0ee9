package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/tinytelemetry/secdash/internal/dashboard"
	"github.com/tinytelemetry/secdash/internal/model"
)

const (
	minChartWidth  = 12
	minChartHeight = 4
	legendMaxWidth = 34
	lineStep       = time.Hour
)

// ChartFactory constructs terminal charts bound to page canvases.
type ChartFactory struct {
	charts map[string]*TermChart
	order  []*TermChart
}

// NewChartFactory creates an empty factory.
func NewChartFactory() *ChartFactory {
	return &ChartFactory{charts: make(map[string]*TermChart)}
}

// NewChart implements dashboard.ChartFactory.
func (f *ChartFactory) NewChart(target *dashboard.Element, cfg model.ChartConfig) dashboard.Chart {
	c := &TermChart{canvas: target.ID, cfg: cfg}
	f.charts[target.ID] = c
	f.order = append(f.order, c)
	return c
}

// Chart returns the chart bound to canvasID, or nil.
func (f *ChartFactory) Chart(canvasID string) *TermChart {
	return f.charts[canvasID]
}

// Charts returns every constructed chart in construction order.
func (f *ChartFactory) Charts() []*TermChart {
	return append([]*TermChart(nil), f.order...)
}

// TermChart renders one chart configuration at the size of its canvas box.
type TermChart struct {
	canvas  string
	cfg     model.ChartConfig
	width   int
	height  int
	resizes int
}

// Resize implements dashboard.Chart.
func (c *TermChart) Resize(width, height int) {
	c.width, c.height = width, height
	c.resizes++
}

// Size returns the last size the chart was given.
func (c *TermChart) Size() (width, height int) { return c.width, c.height }

// Sized reports whether the chart has been laid out at least once.
func (c *TermChart) Sized() bool { return c.width > 0 && c.height > 0 }

// Config returns the chart's configuration.
func (c *TermChart) Config() model.ChartConfig { return c.cfg }

// View renders the chart in a bordered panel filling its box. Unsized charts
// render nothing.
func (c *TermChart) View() string {
	if !c.Sized() {
		return ""
	}

	// Border takes one cell on each side.
	innerW := max(1, c.width-2)
	innerH := max(1, c.height-2)

	title := chartTitleStyle.Render(truncate(c.cfg.Title, innerW))
	bodyH := innerH - 1

	var body string
	switch {
	case innerW < minChartWidth || bodyH < minChartHeight-2:
		body = helpStyle.Render("(too small)")
	case len(c.cfg.Dataset.Series) == 0:
		body = helpStyle.Render("No data available")
	case c.cfg.Kind == model.KindLine:
		body = c.renderLine(innerW, bodyH)
	default:
		body = c.renderBars(innerW, bodyH)
	}

	return sectionStyle.
		Width(innerW).
		Height(innerH).
		MaxHeight(c.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

// pointColor picks the color of label i in series s.
func pointColor(s model.Series, i int) lipgloss.Color {
	switch {
	case i < len(s.BorderColors):
		return terminalColor(s.BorderColors[i], ColorBlue)
	case s.BorderColor != "":
		return terminalColor(s.BorderColor, ColorBlue)
	case i < len(s.BackgroundColors):
		return terminalColor(s.BackgroundColors[i], ColorBlue)
	case s.BackgroundColor != "":
		return terminalColor(s.BackgroundColor, ColorBlue)
	}
	return ColorBlue
}

// seriesColor is the color a whole series is drawn with.
func seriesColor(s model.Series) lipgloss.Color {
	if s.BorderColor != "" {
		return terminalColor(s.BorderColor, ColorBlue)
	}
	return pointColor(s, 0)
}

// renderBars draws categorical kinds as a bar chart with a value legend
// beside it. Pie, doughnut and radar become horizontal bars of their share.
func (c *TermChart) renderBars(width, height int) string {
	ds := c.cfg.Dataset
	legendWidth := min(legendMaxWidth, width/2)
	chartWidth := max(minChartWidth/2, width-legendWidth-2)

	var bc barchart.Model
	if c.cfg.Kind == model.KindBar {
		bc = barchart.New(chartWidth, height,
			barchart.WithBarGap(1),
			barchart.WithNoAxis(),
		)
	} else {
		bc = barchart.New(chartWidth, height,
			barchart.WithBarGap(0),
			barchart.WithNoAxis(),
			barchart.WithHorizontalBars(),
		)
	}

	for i, label := range ds.Labels {
		var values []barchart.BarValue
		for _, s := range ds.Series {
			if i >= len(s.Data) {
				continue
			}
			values = append(values, barchart.BarValue{
				Name:  s.Label,
				Value: s.Data[i],
				Style: solid(pointColor(s, i)),
			})
		}
		bc.Push(barchart.BarData{Label: label, Values: values})
	}
	bc.Draw()

	legend := c.barLegend(legendWidth, height)
	return joinColumns(bc.View(), legend, height)
}

func (c *TermChart) barLegend(width, height int) string {
	ds := c.cfg.Dataset
	s := ds.Series[0]

	total := 0.0
	for _, v := range s.Data {
		total += v
	}
	share := c.cfg.Kind == model.KindPie || c.cfg.Kind == model.KindDoughnut

	lines := make([]string, 0, len(ds.Labels))
	for i, label := range ds.Labels {
		if i >= len(s.Data) {
			break
		}
		value := formatValue(s.Data[i])
		switch {
		case share && total > 0:
			value = fmt.Sprintf("%s (%.0f%%)", value, s.Data[i]/total*100)
		case c.cfg.Kind == model.KindRadar && c.cfg.Options.RadialMax > 0:
			value = fmt.Sprintf("%s/%s", value, formatValue(c.cfg.Options.RadialMax))
		}
		nameWidth := max(1, width-lipgloss.Width(value)-3)
		swatch := lipgloss.NewStyle().Foreground(pointColor(s, i)).Render("■")
		lines = append(lines, fmt.Sprintf("%s %-*s %s", swatch, nameWidth, truncate(label, nameWidth), value))
	}
	if len(lines) > height {
		more := fmt.Sprintf("+%d more", len(lines)-height+1)
		lines = append(lines[:height-1], helpStyle.Render(more))
	}
	return strings.Join(lines, "\n")
}

// renderLine draws every series on a shared braille line chart, one data set
// per series in declaration order, with a legend row underneath.
func (c *TermChart) renderLine(width, height int) string {
	ds := c.cfg.Dataset
	chartHeight := max(2, height-1)

	maxY := 0.0
	for _, s := range ds.Series {
		for _, v := range s.Data {
			maxY = math.Max(maxY, v)
		}
	}
	minY := 0.0
	if !c.cfg.Options.BeginAtZero {
		minY = maxY
		for _, s := range ds.Series {
			for _, v := range s.Data {
				minY = math.Min(minY, v)
			}
		}
	}
	if maxY <= minY {
		maxY = minY + 1
	}

	start := time.Unix(0, 0)
	end := start.Add(time.Duration(max(1, len(ds.Labels)-1)) * lineStep)
	labels := ds.Labels
	xLabel := func(_ int, v float64) string {
		idx := int(math.Round((v - float64(start.Unix())) / lineStep.Seconds()))
		if idx < 0 || idx >= len(labels) {
			return ""
		}
		return truncate(labels[idx], 8)
	}

	lc := timeserieslinechart.New(width, chartHeight,
		timeserieslinechart.WithTimeRange(start, end),
		timeserieslinechart.WithYRange(minY, maxY*1.1),
		timeserieslinechart.WithAxesStyles(helpStyle, helpStyle),
		timeserieslinechart.WithXLabelFormatter(xLabel),
		timeserieslinechart.WithXYSteps(2, 2),
	)

	legend := make([]string, 0, len(ds.Series))
	for idx, s := range ds.Series {
		name := s.Label
		if name == "" {
			name = fmt.Sprintf("series %d", idx+1)
		}
		color := seriesColor(s)
		lc.SetDataSetStyle(name, lipgloss.NewStyle().Foreground(color))
		for i, v := range s.Data {
			lc.PushDataSet(name, timeserieslinechart.TimePoint{
				Time:  start.Add(time.Duration(i) * lineStep),
				Value: v,
			})
		}
		legend = append(legend, lipgloss.NewStyle().Foreground(color).Render("━ "+name))
	}
	lc.DrawBrailleAll()

	legendRow := lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(legend, "  "))
	return lipgloss.JoinVertical(lipgloss.Left, lc.View(), legendRow)
}

// joinColumns places left and right side by side, padding both to height.
func joinColumns(left, right string, height int) string {
	leftLines := padLines(strings.Split(left, "\n"), height)
	rightLines := padLines(strings.Split(right, "\n"), height)
	leftWidth := 0
	for _, l := range leftLines {
		leftWidth = max(leftWidth, lipgloss.Width(l))
	}

	out := make([]string, height)
	for i := range out {
		gap := leftWidth - lipgloss.Width(leftLines[i]) + 2
		out[i] = leftLines[i] + strings.Repeat(" ", gap) + rightLines[i]
	}
	return strings.Join(out, "\n")
}

func padLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
