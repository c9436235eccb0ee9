package dashboard

import "github.com/tinytelemetry/secdash/internal/model"

// Tab pairs a tab button with its content panel. Panel is nil when the page
// has no panel for the tab's identifier.
type Tab struct {
	ID     string
	Button *Element
	Panel  *Element
}

// TabController holds the single active tab selection and keeps the page's
// active classes in sync with it.
type TabController struct {
	tabs   []*Tab
	panels []*Element
	active string
}

// WireTabs discovers tab buttons by class, pairs each with the panel named by
// its data-tab attribute and registers click listeners.
func WireTabs(doc Document) *TabController {
	c := &TabController{
		panels: doc.ElementsByClass(model.ClassTabContent),
	}

	for _, btn := range doc.ElementsByClass(model.ClassTabButton) {
		id := btn.Attr(model.AttrDataTab)
		tab := &Tab{
			ID:     id,
			Button: btn,
			Panel:  doc.ElementByID(model.PanelID(id)),
		}
		c.tabs = append(c.tabs, tab)
		if btn.HasClass(model.ClassActive) && c.active == "" {
			c.active = id
		}
		btn.OnClick(func() { c.Activate(id) })
	}
	if c.active == "" && len(c.tabs) > 0 {
		c.Activate(c.tabs[0].ID)
	}

	return c
}

// Tabs returns the wired tabs in button order.
func (c *TabController) Tabs() []*Tab {
	return append([]*Tab(nil), c.tabs...)
}

// Tab returns the tab with id, or nil.
func (c *TabController) Tab(id string) *Tab {
	for _, t := range c.tabs {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Active returns the identifier of the active tab.
func (c *TabController) Active() string { return c.active }

// IsActive reports whether id is the active tab.
func (c *TabController) IsActive(id string) bool { return c.active == id }

// Activate deactivates every button and panel, then activates the button
// and panel of id. A tab without a panel still becomes active. Unknown ids
// are ignored and report false.
func (c *TabController) Activate(id string) bool {
	tab := c.Tab(id)
	if tab == nil {
		return false
	}

	for _, t := range c.tabs {
		t.Button.RemoveClass(model.ClassActive)
	}
	for _, p := range c.panels {
		p.RemoveClass(model.ClassActive)
	}

	tab.Button.AddClass(model.ClassActive)
	if tab.Panel != nil {
		tab.Panel.AddClass(model.ClassActive)
	}
	c.active = id
	return true
}

// Next activates the tab after the active one, wrapping around.
func (c *TabController) Next() { c.step(1) }

// Prev activates the tab before the active one, wrapping around.
func (c *TabController) Prev() { c.step(-1) }

func (c *TabController) step(delta int) {
	if len(c.tabs) == 0 {
		return
	}
	idx := 0
	for i, t := range c.tabs {
		if t.ID == c.active {
			idx = i
		}
	}
	idx = (idx + delta + len(c.tabs)) % len(c.tabs)
	c.tabs[idx].Button.Click()
}
