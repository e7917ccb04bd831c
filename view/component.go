package view

import (
	"context"

	"github.com/tendril-ui/tendril/markup"
)

// DefaultInstanceName is the instance name of components whose tag carries
// no name attribute.
const DefaultInstanceName = "default"

// PathSeparator joins ancestry path segments in FullPath.
const PathSeparator = "."

// Base is the embedded core of every Tendril component. It owns the
// instance's state cells, event accessors, ancestry back-reference, and the
// update handler bound by the runtime at mount.
//
// Concrete components embed *Base and implement Render:
//
//	type Counter struct {
//	    *view.Base
//	}
//
//	func NewCounter() markup.Component {
//	    c := &Counter{Base: view.NewBase("Counter")}
//	    c.Query("#inc").On("click", func() { ... })
//	    return c
//	}
type Base struct {
	typeName     string
	instanceName string
	parent       markup.Component

	stores    map[string]any
	accessors map[string]*Accessor
	selectors []string // accessor registration order, for deterministic rebinding

	update func(ctx context.Context) error

	// Runtime environment, injected at mount. Nil before the component's
	// wrapper node is materialized.
	sched   *Scheduler
	storage Storage
	dom     DOM
	scope   ElementHandle
	emitter *EventEmitter
}

// NewBase creates the embedded base for a component of the given concrete
// type name. The type name is the first segment of the instance's full path.
func NewBase(typeName string) *Base {
	return &Base{
		typeName:     typeName,
		instanceName: DefaultInstanceName,
		stores:       make(map[string]any),
		accessors:    make(map[string]*Accessor),
	}
}

// base gives the runtime access to the embedded Base through the
// markup.Component interface.
func (b *Base) base() *Base { return b }

type hosted interface {
	base() *Base
}

// SetParent links the ancestry back-reference. The parent is used only for
// path composition and update propagation, never for destruction ordering.
func (b *Base) SetParent(parent markup.Component) { b.parent = parent }

// Parent returns the ancestry back-reference, or nil at the root.
func (b *Base) Parent() markup.Component { return b.parent }

// SetInstanceName overrides the instance name used in FullPath. The parser
// calls this when the component tag carries a name attribute.
func (b *Base) SetInstanceName(name string) { b.instanceName = name }

// TypeName returns the concrete component type name passed to NewBase.
func (b *Base) TypeName() string { return b.typeName }

// FullPath composes "<TypeName>#<instanceName>", prefixed recursively by
// the parent's full path. The root has no prefix. Sibling components
// sharing a parent must have distinct names; same-named siblings silently
// collide in persisted-key space.
func (b *Base) FullPath() string {
	segment := b.typeName + "#" + b.instanceName
	if b.parent == nil {
		return segment
	}
	return b.parent.FullPath() + PathSeparator + segment
}

// Update runs this instance's bound update handler (re-render, rematerialize,
// rebind events), then the parent's Update. Within one cascade the local
// re-render completes before propagation, so cascades are strictly
// sequential bottom-to-top.
func (b *Base) Update(ctx context.Context) error {
	if b.update != nil {
		if err := b.update(ctx); err != nil {
			return err
		}
	}
	if b.parent != nil {
		return b.parent.Update(ctx)
	}
	return nil
}

// Events re-attaches every registered (selector, event, handler) triple to
// matching elements within the rendered subtree. The runtime calls this
// once per completed render; before mount it is a no-op.
func (b *Base) Events() {
	if b.dom == nil || b.scope == nil {
		return
	}
	for _, selector := range b.selectors {
		target, ok := b.dom.QuerySelector(b.scope, selector)
		if !ok {
			continue
		}
		for _, bd := range b.accessors[selector].bindings {
			b.dom.AddEventListener(target, bd.event, bd.handler)
		}
	}
}

// Query returns the accessor for the given selector, creating it on first
// use. Handlers registered on the accessor are (re)attached after every
// completed render.
func (b *Base) Query(selector string) *Accessor {
	if a, ok := b.accessors[selector]; ok {
		return a
	}
	a := &Accessor{selector: selector}
	b.accessors[selector] = a
	b.selectors = append(b.selectors, selector)
	return a
}

// scheduleUpdate enqueues one full update cascade from this instance to the
// root. Called by store setters; each call schedules an independent cascade
// (no coalescing). Before mount there is no scheduler and no re-render to
// run, so the write stays local.
func (b *Base) scheduleUpdate() {
	if b.sched == nil {
		return
	}
	if b.emitter != nil {
		b.emitter.Emit(CascadeScheduledEvent(b.FullPath()))
	}
	b.sched.Enqueue(func(ctx context.Context) error {
		if err := b.Update(ctx); err != nil {
			return err
		}
		if b.emitter != nil {
			b.emitter.Emit(CascadeCompletedEvent(b.FullPath()))
		}
		return nil
	})
}

// attach injects the runtime environment when the component's wrapper node
// is materialized.
func (b *Base) attach(rt *Runtime, scope ElementHandle) {
	b.sched = rt.Scheduler
	b.storage = rt.Storage
	b.dom = rt.DOM
	b.emitter = rt.Emitter
	b.scope = scope
}

// detach clears the runtime environment when the wrapper is unmounted.
// There is no further component-level teardown.
func (b *Base) detach() {
	b.sched = nil
	b.storage = nil
	b.dom = nil
	b.emitter = nil
	b.scope = nil
	b.update = nil
}

// bindUpdate sets the re-render routine invoked by Update.
func (b *Base) bindUpdate(fn func(ctx context.Context) error) {
	b.update = fn
}

// Accessor holds the event bindings registered for one DOM selector.
type Accessor struct {
	selector string
	bindings []eventBinding
}

type eventBinding struct {
	event   string
	handler func()
}

// On registers a handler for the given event name. Returns the accessor so
// registrations can be chained.
func (a *Accessor) On(event string, handler func()) *Accessor {
	a.bindings = append(a.bindings, eventBinding{event: event, handler: handler})
	return a
}

// Selector returns the DOM selector this accessor is keyed by.
func (a *Accessor) Selector() string { return a.selector }
