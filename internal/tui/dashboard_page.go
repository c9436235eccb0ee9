package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tinytelemetry/secdash/internal/catalog"
	"github.com/tinytelemetry/secdash/internal/dashboard"
	"github.com/tinytelemetry/secdash/internal/model"
)

// chrome is the header, tab bar and status line around the panel area.
const chrome = 3

// restoreMsg delivers a deferred panel restore back to the update loop.
type restoreMsg struct {
	task dashboard.Task
}

// Options configures the terminal dashboard.
type Options struct {
	Layout       model.Layout
	InitialTab   string
	RestoreDelay time.Duration
	PrintDir     string
	PrintKeep    int
}

// DashboardPage hosts the dashboard page model in the terminal. The page is
// built up front and loaded on the first window size, so charts in hidden
// panels can size themselves off-screen.
type DashboardPage struct {
	ctx    context.Context
	cancel context.CancelFunc
	opts   Options
	keys   KeyMap

	page    *dashboard.Page
	dash    *dashboard.Dashboard
	charts  *ChartFactory
	queue   dashboard.Queue
	printer *FilePrinter

	width   int
	height  int
	status  string
	failed  bool
	pending int
}

// NewDashboardPage builds the dashboard page. Cancelling ctx drops pending
// panel restores.
func NewDashboardPage(ctx context.Context, opts Options) *DashboardPage {
	if len(opts.Layout.Tabs) == 0 {
		opts.Layout = catalog.Layout()
	}
	if opts.RestoreDelay <= 0 {
		opts.RestoreDelay = model.DefaultRestoreDelay
	}
	ctx, cancel := context.WithCancel(ctx)

	p := &DashboardPage{
		ctx:    ctx,
		cancel: cancel,
		opts:   opts,
		keys:   DefaultKeyMap(),
		page:   dashboard.BuildPage(opts.Layout, dashboard.WithActiveTab(opts.InitialTab)),
		charts: NewChartFactory(),
	}
	p.printer = &FilePrinter{Dir: opts.PrintDir, KeepLast: opts.PrintKeep, Render: p.Text}
	return p
}

func (p *DashboardPage) ID() string { return PageDashboard }

func (p *DashboardPage) Init() tea.Cmd { return nil }

// Loaded reports whether the page-loaded sequence has run.
func (p *DashboardPage) Loaded() bool { return p.dash != nil }

// Dashboard returns the loaded dashboard, or nil before the first resize.
func (p *DashboardPage) Dashboard() *dashboard.Dashboard { return p.dash }

// Charts returns the terminal chart factory.
func (p *DashboardPage) Charts() *ChartFactory { return p.charts }

// PendingRestores returns the number of deferred restores not yet delivered.
func (p *DashboardPage) PendingRestores() int { return p.pending }

func (p *DashboardPage) load() tea.Cmd {
	p.dash = dashboard.Load(p.ctx, p.page, dashboard.Config{
		Layout:       p.opts.Layout,
		Factory:      p.charts,
		Printer:      p.printer,
		Scheduler:    &p.queue,
		RestoreDelay: p.opts.RestoreDelay,
	})
	log.Printf("dashboard: loaded %d charts, %d recommendations, %d panels primed",
		len(p.dash.Charts), p.dash.Cards, p.dash.PanelsPrimed)

	tasks := p.queue.Drain()
	cmds := make([]tea.Cmd, 0, len(tasks))
	for _, task := range tasks {
		cmds = append(cmds, tea.Tick(task.Delay, func(time.Time) tea.Msg {
			return restoreMsg{task: task}
		}))
	}
	p.pending = len(tasks)
	return tea.Batch(cmds...)
}

func (p *DashboardPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		p.page.SetViewport(msg.Width, max(0, msg.Height-chrome))
		if !p.Loaded() {
			return p.load(), nil
		}
		return nil, nil

	case restoreMsg:
		p.pending--
		msg.task.Run()
		return nil, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil, nil
}

func (p *DashboardPage) handleKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	switch {
	case key.Matches(msg, p.keys.Quit), key.Matches(msg, p.keys.ForceQuit):
		p.cancel()
		return tea.Quit, nil
	case key.Matches(msg, p.keys.Help):
		return nil, &PageNav{PageID: PageHelp}
	}

	if !p.Loaded() {
		return nil, nil
	}

	switch {
	case key.Matches(msg, p.keys.NextTab):
		p.dash.Tabs.Next()
	case key.Matches(msg, p.keys.PrevTab):
		p.dash.Tabs.Prev()
	case key.Matches(msg, p.keys.SelectTab):
		idx := int(msg.String()[0] - '1')
		if tabs := p.dash.Tabs.Tabs(); idx >= 0 && idx < len(tabs) {
			tabs[idx].Button.Click()
		}
	case key.Matches(msg, p.keys.Print):
		p.print()
	}
	return nil, nil
}

// print clicks the print button like a user would.
func (p *DashboardPage) print() {
	btn := p.page.ElementByID(p.opts.Layout.PrintButtonElement)
	if btn == nil || !p.dash.PrintWired {
		p.status, p.failed = "print unavailable", true
		return
	}
	btn.Click()

	path, err := p.printer.Last()
	if err != nil {
		p.status, p.failed = fmt.Sprintf("print failed: %v", err), true
		return
	}
	p.status, p.failed = "report written to "+path, false
}

// Status returns the status line message.
func (p *DashboardPage) Status() string { return p.status }

// Text renders the plain report of every tab.
func (p *DashboardPage) Text() string {
	if p.dash == nil {
		return ""
	}
	return RenderText(p.dash, p.opts.Layout)
}

func (p *DashboardPage) View(width, height int) string {
	if !p.Loaded() {
		return helpStyle.Render("Loading dashboard...")
	}

	header := headerStyle.Width(width).Render("Executive Security Dashboard")
	tabBar := p.renderTabBar(width)
	body := p.renderPanel(width, max(0, height-chrome))
	status := p.renderStatus(width)

	return lipgloss.JoinVertical(lipgloss.Left, header, tabBar, body, status)
}

func (p *DashboardPage) renderTabBar(width int) string {
	var parts []string
	for i, t := range p.dash.Tabs.Tabs() {
		label := fmt.Sprintf("%d %s", i+1, t.Button.Text)
		if t.Button.HasClass(model.ClassActive) {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (p *DashboardPage) renderStatus(width int) string {
	left := helpStyle.Render("←/→ tabs  p print  ? help  q quit")
	if p.status == "" {
		return lipgloss.NewStyle().MaxWidth(width).Render(left)
	}
	msg := statusStyle.Render(p.status)
	if p.failed {
		msg = errorStyle.Render(p.status)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(left + "  " + msg)
}

// renderPanel draws the displayed panel: its charts in a two-column grid at
// the sizes the page gave them, and the recommendation cards. When the grid
// has an empty trailing cell the cards fill it.
func (p *DashboardPage) renderPanel(width, height int) string {
	tab := p.dash.Tabs.Tab(p.dash.Tabs.Active())
	if tab == nil || tab.Panel == nil || !p.page.Displayed(tab.Panel) {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			helpStyle.Render("No content for this tab"))
	}

	var cells []string
	var recs *dashboard.Element
	cellW, cellH := 0, 0
	for _, child := range tab.Panel.Children() {
		if child.ID == p.opts.Layout.RecommendationsElement {
			recs = child
			continue
		}
		c := p.charts.Chart(child.ID)
		if c == nil || !c.Sized() {
			continue
		}
		cellW, cellH = c.Size()
		cells = append(cells, c.View())
	}

	var cards string
	if recs != nil {
		cards = p.renderCards(recs)
	}

	if cards != "" && len(cells)%2 == 1 && cellW > 0 {
		cells = append(cells, sectionStyle.
			Width(max(1, cellW-2)).
			Height(max(1, cellH-2)).
			MaxHeight(cellH).
			Render(cards))
		cards = ""
	}

	var rows []string
	for i := 0; i < len(cells); i += 2 {
		if i+1 < len(cells) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i], cells[i+1]))
		} else {
			rows = append(rows, cells[i])
		}
	}
	if cards != "" {
		rows = append(rows, cards)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (p *DashboardPage) renderCards(container *dashboard.Element) string {
	lines := []string{chartTitleStyle.Render(container.Text)}
	for _, card := range container.Children() {
		if !card.HasClass(model.ClassRecommendation) {
			continue
		}
		lines = append(lines,
			cardTitleStyle.Render("• "+card.Text),
			cardBodyStyle.Render("  "+card.Body),
		)
	}
	if len(lines) == 1 {
		return ""
	}
	return strings.Join(lines, "\n")
}
