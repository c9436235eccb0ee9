package dashboard

import "github.com/tinytelemetry/secdash/internal/model"

type buildOptions struct {
	activeTab string
	omit      map[string]bool
}

// BuildOption customizes BuildPage.
type BuildOption func(*buildOptions)

// WithActiveTab marks tab as the initially active tab. Unknown ids fall back
// to the first tab.
func WithActiveTab(tab string) BuildOption {
	return func(o *buildOptions) { o.activeTab = tab }
}

// WithoutElements leaves the given element ids out of the markup.
func WithoutElements(ids ...string) BuildOption {
	return func(o *buildOptions) {
		for _, id := range ids {
			o.omit[id] = true
		}
	}
}

// BuildPage produces the dashboard markup for layout: a tab bar, one content
// panel per tab holding its chart canvases, the recommendation container and
// the print button.
func BuildPage(layout model.Layout, opts ...BuildOption) *Page {
	o := buildOptions{omit: make(map[string]bool)}
	for _, opt := range opts {
		opt(&o)
	}

	active := ""
	for _, tab := range layout.Tabs {
		if tab.ID == o.activeTab {
			active = tab.ID
		}
	}
	if active == "" && len(layout.Tabs) > 0 {
		active = layout.Tabs[0].ID
	}

	p := NewPage()
	body := p.Body()

	header := p.CreateElement("header")
	body.AppendChild(header)
	if id := layout.PrintButtonElement; id != "" && !o.omit[id] {
		btn := p.CreateElement(id)
		btn.Text = "Print Report"
		header.AppendChild(btn)
	}

	nav := p.CreateElement("tabs")
	body.AppendChild(nav)
	panels := make(map[string]*Element, len(layout.Tabs))
	for _, tab := range layout.Tabs {
		if id := model.ButtonID(tab.ID); !o.omit[id] {
			btn := p.CreateElement(id, model.ClassTabButton)
			btn.Text = tab.Title
			btn.SetAttr(model.AttrDataTab, tab.ID)
			if tab.ID == active {
				btn.AddClass(model.ClassActive)
			}
			nav.AppendChild(btn)
		}

		if id := model.PanelID(tab.ID); !o.omit[id] {
			panel := p.CreateElement(id, model.ClassTabContent)
			panel.Text = tab.Title
			if tab.ID == active {
				panel.AddClass(model.ClassActive)
			}
			body.AppendChild(panel)
			panels[tab.ID] = panel
		}
	}

	for _, slot := range layout.Slots {
		panel, ok := panels[slot.Tab]
		if !ok || o.omit[slot.CanvasID] {
			continue
		}
		canvas := p.CreateElement(slot.CanvasID, model.ClassChart)
		canvas.Text = slot.Title
		panel.AppendChild(canvas)
	}

	if id := layout.RecommendationsElement; id != "" && !o.omit[id] {
		if panel, ok := panels[layout.RecommendationsTab]; ok {
			container := p.CreateElement(id)
			container.Text = "Security Recommendations"
			panel.AppendChild(container)
		}
	}

	return p
}
