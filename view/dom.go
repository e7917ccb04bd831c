package view

// ElementHandle is an opaque reference to a materialized element. Its
// concrete type belongs to the DOM backend.
type ElementHandle any

// DOM is the element materialization interface the runtime consumes. The
// engine always fully re-renders a component's subtree on update, so the
// interface needs ClearChildren but no finer-grained mutation.
type DOM interface {
	// CreateElement creates a detached element. Component wrapper tags are
	// materialized as-is (custom elements); implementations must accept
	// names outside the native element set.
	CreateElement(tag string) (ElementHandle, error)

	// SetAttribute sets or replaces an attribute.
	SetAttribute(h ElementHandle, name, value string)

	// AppendChild appends child to parent's child list.
	AppendChild(parent, child ElementHandle)

	// SetText replaces the element's body with a literal text payload.
	SetText(h ElementHandle, text string)

	// ClearChildren removes all children and any text payload.
	ClearChildren(h ElementHandle)

	// AddEventListener registers a handler for the named event.
	AddEventListener(h ElementHandle, event string, handler func())

	// QuerySelector returns the first element within scope's subtree
	// matching the selector, and whether one was found.
	QuerySelector(scope ElementHandle, selector string) (ElementHandle, bool)
}
