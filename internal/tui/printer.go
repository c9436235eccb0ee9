package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/tinytelemetry/secdash/internal/dashboard"
	"github.com/tinytelemetry/secdash/internal/model"
)

const reportPattern = "secdash-report-*.txt"

// FilePrinter is the terminal print facility: it writes a plain-text report
// of the whole dashboard to a timestamped file. When KeepLast is positive only
// the newest KeepLast reports are kept.
type FilePrinter struct {
	Dir      string
	KeepLast int
	Render   func() string
	Now      func() time.Time

	lastPath string
	lastErr  error
}

// Print implements dashboard.Printer.
func (p *FilePrinter) Print() error {
	p.lastPath, p.lastErr = p.write()
	return p.lastErr
}

func (p *FilePrinter) write() (string, error) {
	if p.Render == nil {
		return "", fmt.Errorf("print: nothing to render")
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	dir := p.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating print directory: %w", err)
	}

	path, err := writeReport(dir, now().Format("20060102-150405.000"), ansi.Strip(p.Render()))
	if err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	if err := pruneReports(dir, p.KeepLast); err != nil {
		return path, fmt.Errorf("pruning old reports: %w", err)
	}
	return path, nil
}

// writeReport creates a new report file named after stamp. An existing file
// is never overwritten; later prints with the same stamp get a _N suffix,
// which still sorts after the unsuffixed name.
func writeReport(dir, stamp, text string) (string, error) {
	for n := 0; ; n++ {
		name := "secdash-report-" + stamp
		if n > 0 {
			name += fmt.Sprintf("_%d", n)
		}
		path := filepath.Join(dir, name+".txt")

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err := f.WriteString(text); err != nil {
			f.Close()
			return "", err
		}
		return path, f.Close()
	}
}

func pruneReports(dir string, keepLast int) error {
	if keepLast <= 0 {
		return nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, reportPattern))
	if err != nil {
		return err
	}
	if len(matches) <= keepLast {
		return nil
	}

	sort.Slice(matches, func(i, j int) bool {
		// timestamp is embedded in filename and lexical sort matches chronology
		return matches[i] > matches[j]
	})

	for _, oldPath := range matches[keepLast:] {
		if err := os.Remove(oldPath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// Last returns the outcome of the most recent Print.
func (p *FilePrinter) Last() (string, error) { return p.lastPath, p.lastErr }

// RenderText produces the styled text report of every tab: chart data as
// label/value rows and the recommendation cards under their tab.
func RenderText(d *dashboard.Dashboard, layout model.Layout) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Executive Security Dashboard"))
	b.WriteString("\n")

	cards := dashboard.Cards(d.Doc, layout.RecommendationsElement)

	for _, tab := range layout.Tabs {
		b.WriteString("\n")
		b.WriteString(chartTitleStyle.Render("== " + tab.Title + " =="))
		b.WriteString("\n")

		for _, inst := range d.ChartsForTab(tab.ID) {
			b.WriteString("\n")
			b.WriteString(renderChartText(inst.Config))
		}

		if tab.ID == layout.RecommendationsTab && len(cards) > 0 {
			b.WriteString("\n")
			b.WriteString(chartTitleStyle.Render("Security Recommendations"))
			b.WriteString("\n")
			for _, rec := range cards {
				b.WriteString("  ")
				b.WriteString(cardTitleStyle.Render(rec.Title))
				b.WriteString("\n    ")
				b.WriteString(rec.Description)
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func renderChartText(cfg model.ChartConfig) string {
	ds := cfg.Dataset
	labelWidth := 0
	for _, l := range ds.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(cfg.Title))
	b.WriteString("\n")

	if len(ds.Series) > 1 {
		names := make([]string, len(ds.Series))
		for i, s := range ds.Series {
			names[i] = s.Label
		}
		fmt.Fprintf(&b, "  %-*s  %s\n", labelWidth, "", strings.Join(names, " | "))
	}
	for i, label := range ds.Labels {
		values := make([]string, 0, len(ds.Series))
		for _, s := range ds.Series {
			if i < len(s.Data) {
				values = append(values, formatValue(s.Data[i]))
			}
		}
		fmt.Fprintf(&b, "  %-*s  %s\n", labelWidth, label, strings.Join(values, " | "))
	}
	return b.String()
}
