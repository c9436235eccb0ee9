package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/tinytelemetry/secdash/internal/catalog"
	"github.com/tinytelemetry/secdash/internal/dashboard"
)

func TestDashboardPage_LoadsOnFirstResize(t *testing.T) {
	t.Parallel()

	p := NewDashboardPage(context.Background(), Options{})
	if p.Loaded() {
		t.Fatal("page loaded before knowing its size")
	}
	if got := p.View(120, 43); !strings.Contains(got, "Loading") {
		t.Fatalf("pre-load view = %q", got)
	}

	p.Update(tea.WindowSizeMsg{Width: 120, Height: 43})
	d := p.Dashboard()
	if len(d.Charts) != 13 || d.Cards != 3 || !d.PrintWired || d.PanelsPrimed != 2 {
		t.Fatalf("dashboard = charts %d cards %d print %v primed %d",
			len(d.Charts), d.Cards, d.PrintWired, d.PanelsPrimed)
	}
	if d.Tabs.Active() != catalog.TabOverview {
		t.Fatalf("active tab = %q, want overview", d.Tabs.Active())
	}
}

func TestDashboardPage_HiddenChartsSizedOffscreen(t *testing.T) {
	t.Parallel()

	p, _ := newLoadedPage(t, Options{})
	for _, c := range p.Charts().Charts() {
		if !c.Sized() {
			t.Errorf("chart %s not sized after load", c.Config().Slot)
		}
	}
	w, h := p.Charts().Chart("emailAttackAnalysisChart").Size()
	if w != 60 || h != 13 {
		t.Errorf("email chart size = %dx%d, want 60x13", w, h)
	}
}

func TestDashboardPage_RestoresAfterTick(t *testing.T) {
	t.Parallel()

	p, cmd := newLoadedPage(t, Options{RestoreDelay: time.Millisecond})
	if p.PendingRestores() != 2 {
		t.Fatalf("pending restores = %d, want 2", p.PendingRestores())
	}

	incidents := p.Dashboard().Tabs.Tab(catalog.TabIncidents).Panel
	if incidents.Style().Left != "-9999px" {
		t.Fatalf("incidents panel not primed: %+v", incidents.Style())
	}

	for _, msg := range collect(cmd) {
		p.Update(msg)
	}

	if p.PendingRestores() != 0 {
		t.Fatalf("pending restores = %d, want 0", p.PendingRestores())
	}
	if got := incidents.Style(); got != (dashboard.Style{}) {
		t.Fatalf("incidents style = %+v, want restored", got)
	}
	if p.Dashboard().Doc.(*dashboard.Page).Displayed(incidents) {
		t.Fatal("incidents panel visible after restore")
	}
}

func TestDashboardPage_QuitDropsPendingRestores(t *testing.T) {
	t.Parallel()

	p, cmd := newLoadedPage(t, Options{RestoreDelay: time.Millisecond})

	quit, _ := p.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if quit == nil {
		t.Fatal("ctrl+c should quit")
	}

	for _, msg := range collect(cmd) {
		p.Update(msg)
	}
	trends := p.Dashboard().Tabs.Tab(catalog.TabTrends).Panel
	if trends.Style().Display != "block" {
		t.Fatalf("restore ran after quit: %+v", trends.Style())
	}
}

func TestDashboardPage_TabKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want string
	}{
		{"right", []tea.KeyMsg{{Type: tea.KeyRight}}, catalog.TabIncidents},
		{"tab twice", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyTab}}, catalog.TabTrends},
		{"left wraps", []tea.KeyMsg{{Type: tea.KeyLeft}}, catalog.TabTrends},
		{"right wraps", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyRight}, {Type: tea.KeyRight}}, catalog.TabOverview},
		{"digit", []tea.KeyMsg{runes("3")}, catalog.TabTrends},
		{"out of range digit", []tea.KeyMsg{runes("9")}, catalog.TabOverview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, _ := newLoadedPage(t, Options{})
			for _, k := range tt.keys {
				p.Update(k)
			}

			tabs := p.Dashboard().Tabs
			if got := tabs.Active(); got != tt.want {
				t.Fatalf("active = %q, want %q", got, tt.want)
			}
			active := 0
			for _, tab := range tabs.Tabs() {
				if tab.Panel.HasClass("active") {
					active++
				}
			}
			if active != 1 {
				t.Fatalf("active panels = %d, want 1", active)
			}
		})
	}
}

func TestDashboardPage_InitialTabOption(t *testing.T) {
	t.Parallel()

	p, _ := newLoadedPage(t, Options{InitialTab: catalog.TabTrends})
	if got := p.Dashboard().Tabs.Active(); got != catalog.TabTrends {
		t.Fatalf("active = %q, want trends", got)
	}
}

func TestDashboardPage_View(t *testing.T) {
	t.Parallel()

	p, _ := newLoadedPage(t, Options{})
	view := ansi.Strip(p.View(120, 43))
	for _, want := range []string{"Executive Security Dashboard", "1 Overview", "Incidents by Severity", "Weekly Security Alert Volume"} {
		if !strings.Contains(view, want) {
			t.Errorf("overview view missing %q", want)
		}
	}
	if strings.Contains(view, "Top Attack Techniques") {
		t.Error("hidden tab chart rendered")
	}

	p.Update(runes("3"))
	view = ansi.Strip(p.View(120, 43))
	for _, want := range []string{"Email Attack Analysis", "Security Recommendations", "Implement Multi-Factor Authentication"} {
		if !strings.Contains(view, want) {
			t.Errorf("trends view missing %q", want)
		}
	}
}

func TestDashboardPage_MissingPanel(t *testing.T) {
	t.Parallel()

	p := NewDashboardPage(context.Background(), Options{})
	p.page.Remove("incidents-tab")
	p.Update(tea.WindowSizeMsg{Width: 120, Height: 43})

	p.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := p.Dashboard().Tabs.Active(); got != catalog.TabIncidents {
		t.Fatalf("active = %q, want incidents", got)
	}
	if view := ansi.Strip(p.View(120, 43)); !strings.Contains(view, "No content for this tab") {
		t.Fatal("missing panel should render a placeholder")
	}
}

func TestDashboardPage_Print(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p, _ := newLoadedPage(t, Options{PrintDir: dir})
	p.printer.Now = func() time.Time { return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC) }

	p.Update(runes("p"))

	path := filepath.Join(dir, "secdash-report-20261019-093000.000.txt")
	if got := p.Status(); got != "report written to "+path {
		t.Fatalf("status = %q", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	report := string(data)
	if strings.Contains(report, "\x1b[") {
		t.Error("report contains ANSI escapes")
	}
	for _, want := range []string{"== Overview ==", "== Trends & Analysis ==", "Security Alert", "Improve Security Awareness Training"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(report, "Package Delivery") {
		t.Error("report should respect the email label cap")
	}
}

func TestDashboardPage_PrintFailureShownInStatus(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	p, _ := newLoadedPage(t, Options{PrintDir: filepath.Join(blocker, "sub")})
	p.Update(runes("p"))

	if !strings.HasPrefix(p.Status(), "print failed:") {
		t.Fatalf("status = %q, want print failure", p.Status())
	}
}
