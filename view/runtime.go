package view

import (
	"context"
	"fmt"
	"time"

	"github.com/tendril-ui/tendril/markup"
)

// Runtime wires the parser, component model, scheduler, and DOM backend
// together. One Runtime drives one element tree.
type Runtime struct {
	DOM       DOM
	Storage   Storage
	Scheduler *Scheduler
	Registry  *ComponentRegistry
	Emitter   *EventEmitter
}

// NewRuntime creates a Runtime over the given DOM backend. Storage defaults
// to MemoryStorage; the scheduler, registry, and emitter start empty.
func NewRuntime(dom DOM, storage Storage) *Runtime {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	return &Runtime{
		DOM:       dom,
		Storage:   storage,
		Scheduler: NewScheduler(),
		Registry:  NewComponentRegistry(),
		Emitter:   NewEventEmitter(),
	}
}

// Mount parses template source and materializes it under parent. Component
// wrapper nodes get their runtime environment injected, their update handler
// bound to the wrapper's re-render-and-rebind routine, and their initial
// render enqueued on the scheduler; drive the scheduler (Drain) to complete
// the mount.
//
// Returns the root element handle. Parse failures carry markup diagnostics.
func (rt *Runtime) Mount(ctx context.Context, parent ElementHandle, src string) (ElementHandle, error) {
	node, err := markup.Parse(nil, []byte(src), rt.Registry)
	if err != nil {
		return nil, err
	}
	return rt.materialize(ctx, node, parent)
}

// materialize turns one parsed node (and its subtree) into live elements
// under parent.
func (rt *Runtime) materialize(ctx context.Context, node *markup.Node, parent ElementHandle) (ElementHandle, error) {
	h, err := rt.DOM.CreateElement(node.Tag)
	if err != nil {
		return nil, fmt.Errorf("creating element <%s>: %w", node.Tag, err)
	}

	for _, attr := range node.Attrs {
		rt.DOM.SetAttribute(h, attr.Key, attr.Value)
	}

	if node.IsText {
		rt.DOM.SetText(h, node.Text)
	} else {
		for _, child := range node.Children {
			if _, err := rt.materialize(ctx, child, h); err != nil {
				return nil, err
			}
		}
	}

	if parent != nil {
		rt.DOM.AppendChild(parent, h)
	}

	if node.IsComponent() {
		if err := rt.mountComponent(node.Component, h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// mountComponent injects the runtime environment into a freshly parsed
// component instance, binds its update handler to the wrapper's re-render
// routine, and enqueues the initial render. Any body content materialized
// from the enclosing markup acts as a placeholder until that render runs.
func (rt *Runtime) mountComponent(comp markup.Component, wrapper ElementHandle) error {
	host, ok := comp.(hosted)
	if !ok {
		return fmt.Errorf("component %T does not embed *view.Base", comp)
	}
	b := host.base()
	b.attach(rt, wrapper)
	b.bindUpdate(func(ctx context.Context) error {
		return rt.renderComponent(ctx, comp, wrapper)
	})

	rt.Emitter.Emit(ComponentMountedEvent(comp.FullPath()))

	// The first render is deferred, not inline: the wrapper is mounted now,
	// its content arrives when the scheduler runs.
	rt.Scheduler.Enqueue(b.update)
	return nil
}

// Unmount detaches a component from its wrapper. Pending cascades for the
// instance become no-ops beyond state writes; there is no further teardown.
func (rt *Runtime) Unmount(comp markup.Component) error {
	host, ok := comp.(hosted)
	if !ok {
		return fmt.Errorf("component %T does not embed *view.Base", comp)
	}
	host.base().detach()
	return nil
}

// renderComponent is the re-render-and-rebind routine bound to every
// mounted component: render markup, re-parse with the component as the
// enclosing ancestor, rematerialize the wrapper's subtree, rebind events.
//
// Render failures are not intercepted here; they abort the whole cascade
// and surface to whoever drives the scheduler.
func (rt *Runtime) renderComponent(ctx context.Context, comp markup.Component, wrapper ElementHandle) error {
	start := time.Now()

	src, err := comp.Render(ctx)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", comp.FullPath(), err)
	}

	node, err := markup.Parse(comp, []byte(src), rt.Registry)
	if err != nil {
		return fmt.Errorf("parsing render of %s: %w", comp.FullPath(), err)
	}

	rt.DOM.ClearChildren(wrapper)
	if _, err := rt.materialize(ctx, node, wrapper); err != nil {
		return err
	}

	comp.Events()

	rt.Emitter.Emit(ComponentRenderedEvent(comp.FullPath(), time.Since(start)))
	return nil
}
