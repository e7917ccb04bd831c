// Package htmldom is a DOM materialization backend that builds a mutable
// element tree in memory and renders it to HTML through gomponents. It
// backs the CLI and tests; a browser runtime would supply its own view.DOM
// implementation instead.
package htmldom

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/tendril-ui/tendril/view"
)

// Element is a mutable materialized element. It is the concrete type behind
// every view.ElementHandle this backend hands out.
type Element struct {
	tag       string
	attrKeys  []string // attribute order, for stable rendering
	attrs     map[string]string
	children  []*Element
	text      string
	listeners map[string][]func()
}

func newElement(tag string) *Element {
	return &Element{
		tag:       tag,
		attrs:     make(map[string]string),
		listeners: make(map[string][]func()),
	}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Attr returns the value of an attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Text returns the element's literal text payload, if any.
func (e *Element) Text() string { return e.text }

// Children returns the element's child list.
func (e *Element) Children() []*Element { return e.children }

// Fire dispatches a synthetic event, invoking every listener registered for
// it in registration order. Returns the number of listeners invoked.
func (e *Element) Fire(event string) int {
	handlers := e.listeners[event]
	for _, h := range handlers {
		h()
	}
	return len(handlers)
}

// Node lowers the element tree to a gomponents node.
func (e *Element) Node() g.Node {
	var nodes []g.Node
	for _, key := range e.attrKeys {
		nodes = append(nodes, g.Attr(key, e.attrs[key]))
	}
	if e.text != "" {
		nodes = append(nodes, g.Text(e.text))
	}
	for _, child := range e.children {
		nodes = append(nodes, child.Node())
	}
	return g.El(e.tag, nodes...)
}

// Render writes the element tree as HTML.
func (e *Element) Render(w io.Writer) error {
	return e.Node().Render(w)
}

// String returns the element tree as HTML.
func (e *Element) String() string {
	var sb strings.Builder
	_ = e.Render(&sb)
	return sb.String()
}

// DOM implements view.DOM over *Element handles.
type DOM struct{}

var _ view.DOM = (*DOM)(nil)

// New creates the backend.
func New() *DOM {
	return &DOM{}
}

func asElement(h view.ElementHandle) *Element {
	if e, ok := h.(*Element); ok {
		return e
	}
	return nil
}

// CreateElement creates a detached element. Any tag name is accepted;
// component wrapper tags materialize as custom elements.
func (d *DOM) CreateElement(tag string) (view.ElementHandle, error) {
	return newElement(tag), nil
}

func (d *DOM) SetAttribute(h view.ElementHandle, name, value string) {
	e := asElement(h)
	if e == nil {
		return
	}
	if _, ok := e.attrs[name]; !ok {
		e.attrKeys = append(e.attrKeys, name)
	}
	e.attrs[name] = value
}

func (d *DOM) AppendChild(parent, child view.ElementHandle) {
	p, c := asElement(parent), asElement(child)
	if p == nil || c == nil {
		return
	}
	p.children = append(p.children, c)
}

func (d *DOM) SetText(h view.ElementHandle, text string) {
	e := asElement(h)
	if e == nil {
		return
	}
	e.children = nil
	e.text = text
}

func (d *DOM) ClearChildren(h view.ElementHandle) {
	e := asElement(h)
	if e == nil {
		return
	}
	e.children = nil
	e.text = ""
}

func (d *DOM) AddEventListener(h view.ElementHandle, event string, handler func()) {
	e := asElement(h)
	if e == nil {
		return
	}
	e.listeners[event] = append(e.listeners[event], handler)
}

// QuerySelector finds the first descendant of scope matching a simple
// selector: "#id", ".class", or a bare tag name. Compound selectors are not
// supported.
func (d *DOM) QuerySelector(scope view.ElementHandle, selector string) (view.ElementHandle, bool) {
	root := asElement(scope)
	if root == nil || selector == "" {
		return nil, false
	}
	match := compileSelector(selector)
	for _, child := range root.children {
		if found := findFirst(child, match); found != nil {
			return found, true
		}
	}
	return nil, false
}

func findFirst(e *Element, match func(*Element) bool) *Element {
	if match(e) {
		return e
	}
	for _, child := range e.children {
		if found := findFirst(child, match); found != nil {
			return found
		}
	}
	return nil
}

func compileSelector(selector string) func(*Element) bool {
	switch {
	case strings.HasPrefix(selector, "#"):
		id := selector[1:]
		return func(e *Element) bool {
			v, ok := e.attrs["id"]
			return ok && v == id
		}
	case strings.HasPrefix(selector, "."):
		class := selector[1:]
		return func(e *Element) bool {
			v, ok := e.attrs["class"]
			if !ok {
				return false
			}
			for _, token := range strings.Fields(v) {
				if token == class {
					return true
				}
			}
			return false
		}
	default:
		return func(e *Element) bool {
			return e.tag == selector
		}
	}
}
