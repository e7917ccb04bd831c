package markup

import "context"

// Component is the capability set every Tendril component provides. The
// parser instantiates components through registry factories and links their
// ancestry; everything else (state, mounting, event binding) lives in the
// view package.
type Component interface {
	// Render produces the component's markup. Called once per mount and
	// again on every update cascade that reaches this component.
	Render(ctx context.Context) (string, error)

	// Events re-attaches every registered event binding within the
	// component's rendered subtree. Called once per completed render.
	Events()

	// Update runs this component's bound re-render routine, then the
	// parent's Update, producing a full bottom-to-root cascade.
	Update(ctx context.Context) error

	// SetParent links the ancestry back-reference used for path
	// composition and update propagation. The parent is never owned.
	SetParent(Component)

	// Parent returns the ancestry back-reference, or nil at the root.
	Parent() Component

	// SetInstanceName overrides the instance name used in FullPath.
	// Unnamed instances default to "default".
	SetInstanceName(name string)

	// FullPath composes "<TypeName>#<instanceName>" prefixed recursively
	// by the parent's path. It is the namespace root for persistent
	// store keys.
	FullPath() string
}

// Factory creates a fresh component instance for one markup tag occurrence.
type Factory func() Component

// Registry resolves tag names to component factories. It is consulted
// read-only by the parser; a lookup miss is not an error and falls through
// to native element handling.
type Registry interface {
	Lookup(tag string) (Factory, bool)
}
