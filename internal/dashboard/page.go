// Package dashboard implements the page behaviour of the executive security
// dashboard: tab selection, chart bootstrapping, recommendation cards and the
// print trigger, on top of a small in-memory document model.
package dashboard

import (
	"strconv"
	"strings"

	"github.com/tinytelemetry/secdash/internal/model"
)

// Document is the narrow element lookup contract the page behaviours need.
// Lookups return nil for absent elements.
type Document interface {
	ElementByID(id string) *Element
	ElementsByClass(class string) []*Element
	CreateElement(id string, classes ...string) *Element
	// Observe registers fn to be called whenever el's layout box changes to a
	// non-empty size. It fires once immediately if the box is already non-empty.
	Observe(el *Element, fn func(Box))
}

// Style holds the inline style properties the dashboard manipulates.
type Style struct {
	Display  string
	Position string
	Left     string
}

// Box is an element's layout box in viewport cells.
type Box struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool { return b.Width <= 0 || b.Height <= 0 }

// Element is a node of the page.
type Element struct {
	ID   string
	Text string // button caption or card title
	Body string // card description

	page     *Page
	parent   *Element
	children []*Element
	classes  []string
	attrs    map[string]string
	style    Style
	onClick  []func()
}

// Parent returns the enclosing element, or nil for the root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the element's children in document order.
func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns a copy of the element's classes.
func (e *Element) Classes() []string {
	return append([]string(nil), e.classes...)
}

// AddClass adds class if missing.
func (e *Element) AddClass(class string) {
	if e.HasClass(class) {
		return
	}
	e.classes = append(e.classes, class)
	e.page.reflow()
}

// RemoveClass removes class if present.
func (e *Element) RemoveClass(class string) {
	for i, c := range e.classes {
		if c == class {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			e.page.reflow()
			return
		}
	}
}

// Attr returns the named attribute, or "".
func (e *Element) Attr(name string) string { return e.attrs[name] }

// SetAttr sets an attribute.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// Style returns the element's inline style.
func (e *Element) Style() Style { return e.style }

// SetStyle replaces the element's inline style.
func (e *Element) SetStyle(s Style) {
	if e.style == s {
		return
	}
	e.style = s
	e.page.reflow()
}

// AppendChild moves child under e.
func (e *Element) AppendChild(child *Element) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	e.page.reflow()
}

func (e *Element) removeChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// OnClick registers a click listener.
func (e *Element) OnClick(fn func()) {
	e.onClick = append(e.onClick, fn)
}

// Click dispatches a click to every registered listener in order.
func (e *Element) Click() {
	for _, fn := range append([]func(){}, e.onClick...) {
		fn()
	}
}

// selfDisplayed applies the stylesheet rules: tab panels are hidden unless
// active, and an inline display value overrides the stylesheet.
func (e *Element) selfDisplayed() bool {
	if e.style.Display != "" {
		return e.style.Display != "none"
	}
	if e.HasClass(model.ClassTabContent) {
		return e.HasClass(model.ClassActive)
	}
	return true
}

type observer struct {
	el   *Element
	fn   func(Box)
	last Box
}

// Page is an in-memory document. It is not safe for concurrent use; hosts
// drive it from a single goroutine.
type Page struct {
	root      *Element
	byID      map[string]*Element
	width     int
	height    int
	observers []*observer
}

// NewPage creates an empty page with a root body element.
func NewPage() *Page {
	p := &Page{byID: make(map[string]*Element)}
	p.root = &Element{ID: "body", page: p}
	p.byID[p.root.ID] = p.root
	return p
}

// Body returns the root element.
func (p *Page) Body() *Element { return p.root }

// CreateElement creates a detached element. Elements with a non-empty id are
// addressable through ElementByID.
func (p *Page) CreateElement(id string, classes ...string) *Element {
	el := &Element{ID: id, page: p, classes: append([]string(nil), classes...)}
	if id != "" {
		p.byID[id] = el
	}
	return el
}

// ElementByID returns the element with id, or nil.
func (p *Page) ElementByID(id string) *Element {
	return p.byID[id]
}

// ElementsByClass returns attached elements carrying class, in document order.
func (p *Page) ElementsByClass(class string) []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(e *Element) {
		if e.HasClass(class) {
			out = append(out, e)
		}
		for _, c := range e.children {
			walk(c)
		}
	}
	walk(p.root)
	return out
}

// Remove detaches the element with id and forgets it.
func (p *Page) Remove(id string) {
	el, ok := p.byID[id]
	if !ok || el == p.root {
		return
	}
	if el.parent != nil {
		el.parent.removeChild(el)
		el.parent = nil
	}
	delete(p.byID, id)
	p.reflow()
}

// SetViewport resizes the page.
func (p *Page) SetViewport(width, height int) {
	if p.width == width && p.height == height {
		return
	}
	p.width, p.height = width, height
	p.reflow()
}

// Viewport returns the page size.
func (p *Page) Viewport() (width, height int) { return p.width, p.height }

// Displayed reports whether el and all its ancestors are displayed.
func (p *Page) Displayed(el *Element) bool {
	for e := el; e != nil; e = e.parent {
		if !e.selfDisplayed() {
			return false
		}
	}
	return true
}

// Box computes el's layout box. Hidden or detached elements have an empty box.
func (p *Page) Box(el *Element) Box {
	if el == nil || !p.Displayed(el) {
		return Box{}
	}
	if el == p.root {
		return Box{Width: p.width, Height: p.height}
	}
	if el.parent == nil {
		return Box{}
	}

	box := p.Box(el.parent)
	if box.Empty() {
		return Box{}
	}

	if el.HasClass(model.ClassChart) {
		box = gridCell(el, box)
	}

	if el.style.Position == "absolute" {
		if left, ok := parsePixels(el.style.Left); ok {
			box.X = left
		}
	}
	return box
}

// gridCell places a chart element in a two-column grid of its chart siblings.
func gridCell(el *Element, parent Box) Box {
	var idx, count int
	for _, sib := range el.parent.children {
		if !sib.HasClass(model.ClassChart) {
			continue
		}
		if sib == el {
			idx = count
		}
		count++
	}

	cols := 2
	if count <= 1 {
		cols = 1
	}
	rows := (count + cols - 1) / cols
	w := parent.Width / cols
	h := parent.Height / rows
	return Box{
		X:      parent.X + (idx%cols)*w,
		Y:      parent.Y + (idx/cols)*h,
		Width:  w,
		Height: h,
	}
}

func parsePixels(v string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Observe implements Document.
func (p *Page) Observe(el *Element, fn func(Box)) {
	if el == nil || fn == nil {
		return
	}
	o := &observer{el: el, fn: fn}
	p.observers = append(p.observers, o)
	p.notify(o)
}

func (p *Page) reflow() {
	if p == nil {
		return
	}
	for _, o := range p.observers {
		p.notify(o)
	}
}

func (p *Page) notify(o *observer) {
	box := p.Box(o.el)
	if box.Empty() || box == o.last {
		return
	}
	o.last = box
	o.fn(box)
}
