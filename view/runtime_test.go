package view_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendril-ui/tendril/htmldom"
	"github.com/tendril-ui/tendril/markup"
	"github.com/tendril-ui/tendril/view"
)

// counter is the canonical interactive component: local count, a value
// span, and a button whose click bumps the count.
type counter struct {
	*view.Base
}

func newCounter() *counter {
	c := &counter{Base: view.NewBase("Counter")}
	c.Query("#inc").On("click", func() {
		n, set := view.UseStore(c.Base, "count", 0)
		set(n + 1)
	})
	return c
}

func (c *counter) Render(ctx context.Context) (string, error) {
	n, _ := view.UseStore(c.Base, "count", 0)
	return fmt.Sprintf(`<div><span id="value">%d</span><button id="inc">+</button></div>`, n), nil
}

// fixture is a component whose markup is supplied by the test.
type fixture struct {
	*view.Base
	render func(ctx context.Context) (string, error)
}

func (f *fixture) Render(ctx context.Context) (string, error) { return f.render(ctx) }

func staticFixture(typeName, src string) *fixture {
	f := &fixture{Base: view.NewBase(typeName)}
	f.render = func(ctx context.Context) (string, error) { return src, nil }
	return f
}

func query(t *testing.T, d *htmldom.DOM, scope view.ElementHandle, selector string) *htmldom.Element {
	t.Helper()
	h, ok := d.QuerySelector(scope, selector)
	require.True(t, ok, "selector %s", selector)
	return h.(*htmldom.Element)
}

func TestMountRendersComponentAfterDrain(t *testing.T) {
	ctx := context.Background()
	dom := htmldom.New()
	rt := view.NewRuntime(dom, nil)
	rt.Registry.Register("counter", func() markup.Component { return newCounter() })

	root, err := rt.Mount(ctx, nil, "<counter></counter>")
	require.NoError(t, err)

	// The wrapper mounts immediately; its content arrives with the queue.
	el := root.(*htmldom.Element)
	assert.Equal(t, "counter", el.Tag())
	assert.Empty(t, el.Children())

	require.NoError(t, rt.Scheduler.Drain(ctx))
	assert.Equal(t, "0", query(t, dom, root, "#value").Text())
}

func TestClickIncrementsAndRerenders(t *testing.T) {
	ctx := context.Background()
	dom := htmldom.New()
	rt := view.NewRuntime(dom, nil)
	rt.Registry.Register("counter", func() markup.Component { return newCounter() })

	root, err := rt.Mount(ctx, nil, "<counter></counter>")
	require.NoError(t, err)
	require.NoError(t, rt.Scheduler.Drain(ctx))

	query(t, dom, root, "#inc").Fire("click")
	assert.Equal(t, 1, rt.Scheduler.Len())
	require.NoError(t, rt.Scheduler.Drain(ctx))
	assert.Equal(t, "1", query(t, dom, root, "#value").Text())

	// The rebuilt subtree carries fresh listeners.
	query(t, dom, root, "#inc").Fire("click")
	require.NoError(t, rt.Scheduler.Drain(ctx))
	assert.Equal(t, "2", query(t, dom, root, "#value").Text())
}

func TestEachSetterCallSchedulesOwnCascade(t *testing.T) {
	ctx := context.Background()
	dom := htmldom.New()
	rt := view.NewRuntime(dom, nil)
	rt.Registry.Register("double", func() markup.Component {
		d := &fixture{Base: view.NewBase("Double")}
		d.render = func(ctx context.Context) (string, error) {
			n, _ := view.UseStore(d.Base, "n", 0)
			return fmt.Sprintf(`<div><span id="value">%d</span><button id="bump">go</button></div>`, n), nil
		}
		d.Query("#bump").On("click", func() {
			n, set := view.UseStore(d.Base, "n", 0)
			set(n + 1)
			set(n + 2)
		})
		return d
	})

	scheduled := 0
	rt.Emitter.On(func(ev view.Event) {
		if ev.Type == view.EventCascadeScheduled {
			scheduled++
		}
	})

	root, err := rt.Mount(ctx, nil, "<double></double>")
	require.NoError(t, err)
	require.NoError(t, rt.Scheduler.Drain(ctx))

	query(t, dom, root, "#bump").Fire("click")

	// Two setter calls in one handler: two cascades, no coalescing.
	assert.Equal(t, 2, scheduled)
	assert.Equal(t, 2, rt.Scheduler.Len())

	require.NoError(t, rt.Scheduler.Drain(ctx))
	assert.Equal(t, "2", query(t, dom, root, "#value").Text())
}

func TestNestedComponentPaths(t *testing.T) {
	ctx := context.Background()
	rt := view.NewRuntime(htmldom.New(), nil)
	rt.Registry.Register("outer", func() markup.Component {
		return staticFixture("Outer", `<div><inner name="left"></inner></div>`)
	})
	rt.Registry.Register("inner", func() markup.Component {
		return staticFixture("Inner", "<p>inner</p>")
	})

	var mounted []string
	rt.Emitter.On(func(ev view.Event) {
		if ev.Type == view.EventComponentMounted {
			mounted = append(mounted, ev.Data["path"].(string))
		}
	})

	_, err := rt.Mount(ctx, nil, "<outer></outer>")
	require.NoError(t, err)
	require.NoError(t, rt.Scheduler.Drain(ctx))

	assert.Equal(t, []string{"Outer#default", "Outer#default.Inner#left"}, mounted)
}

func TestChildCascadeRerendersAncestor(t *testing.T) {
	ctx := context.Background()
	dom := htmldom.New()
	rt := view.NewRuntime(dom, nil)
	rt.Registry.Register("outer", func() markup.Component {
		return staticFixture("Outer", "<div><inner></inner></div>")
	})
	rt.Registry.Register("inner", func() markup.Component {
		f := &fixture{Base: view.NewBase("Inner")}
		f.render = func(ctx context.Context) (string, error) {
			n, _ := view.UseStore(f.Base, "n", 0)
			return fmt.Sprintf(`<div><span class="n">%d</span><button id="poke">go</button></div>`, n), nil
		}
		f.Query("#poke").On("click", func() {
			n, set := view.UseStore(f.Base, "n", 0)
			set(n + 1)
		})
		return f
	})

	rendered := map[string]int{}
	rt.Emitter.On(func(ev view.Event) {
		if ev.Type == view.EventComponentRendered {
			rendered[ev.Data["path"].(string)]++
		}
	})

	root, err := rt.Mount(ctx, nil, "<outer></outer>")
	require.NoError(t, err)
	require.NoError(t, rt.Scheduler.Drain(ctx))
	require.Equal(t, 1, rendered["Outer#default"])
	require.Equal(t, 1, rendered["Outer#default.Inner#default"])

	query(t, dom, root, "#poke").Fire("click")
	require.NoError(t, rt.Scheduler.Drain(ctx))

	// The cascade re-renders the child, then the ancestor; the ancestor's
	// re-render instantiates a fresh child, which renders once more.
	assert.Equal(t, 2, rendered["Outer#default"])
	assert.Equal(t, 3, rendered["Outer#default.Inner#default"])
}

func TestPersistentStoreSurvivesRemount(t *testing.T) {
	ctx := context.Background()
	storage := view.NewMemoryStorage()

	factory := func() markup.Component {
		f := &fixture{Base: view.NewBase("Saved")}
		f.render = func(ctx context.Context) (string, error) {
			n, _, err := view.UsePersistentStore(f.Base, "count", 0)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf(`<div><span id="value">%d</span><button id="inc">+</button></div>`, n), nil
		}
		f.Query("#inc").On("click", func() {
			n, set, err := view.UsePersistentStore(f.Base, "count", 0)
			if err != nil {
				return
			}
			_ = set(n + 1)
		})
		return f
	}

	dom1 := htmldom.New()
	rt1 := view.NewRuntime(dom1, storage)
	rt1.Registry.Register("saved", factory)

	root1, err := rt1.Mount(ctx, nil, "<saved></saved>")
	require.NoError(t, err)
	require.NoError(t, rt1.Scheduler.Drain(ctx))

	query(t, dom1, root1, "#inc").Fire("click")
	require.NoError(t, rt1.Scheduler.Drain(ctx))
	require.Equal(t, "1", query(t, dom1, root1, "#value").Text())

	// A second runtime over the same storage sees the persisted value.
	dom2 := htmldom.New()
	rt2 := view.NewRuntime(dom2, storage)
	rt2.Registry.Register("saved", factory)

	root2, err := rt2.Mount(ctx, nil, "<saved></saved>")
	require.NoError(t, err)
	require.NoError(t, rt2.Scheduler.Drain(ctx))
	assert.Equal(t, "1", query(t, dom2, root2, "#value").Text())
}

func TestMountParseErrorCarriesDiagnostics(t *testing.T) {
	rt := view.NewRuntime(htmldom.New(), nil)

	_, err := rt.Mount(context.Background(), nil, "<widget></widget>")
	require.Error(t, err)

	var perr *markup.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, markup.ErrUnknownElement, perr.Kind)
}

func TestUnmountStopsScheduling(t *testing.T) {
	ctx := context.Background()
	dom := htmldom.New()
	rt := view.NewRuntime(dom, nil)

	var instance *counter
	rt.Registry.Register("counter", func() markup.Component {
		instance = newCounter()
		return instance
	})

	root, err := rt.Mount(ctx, nil, "<counter></counter>")
	require.NoError(t, err)
	require.NoError(t, rt.Scheduler.Drain(ctx))
	require.NotNil(t, instance)

	inc := query(t, dom, root, "#inc")
	require.NoError(t, rt.Unmount(instance))

	// The stale listener still runs, but nothing is scheduled anymore.
	inc.Fire("click")
	assert.Equal(t, 0, rt.Scheduler.Len())
	assert.Equal(t, "0", query(t, dom, root, "#value").Text())
}

func TestMountPlainMarkupWithoutComponents(t *testing.T) {
	ctx := context.Background()
	dom := htmldom.New()
	rt := view.NewRuntime(dom, nil)

	root, err := rt.Mount(ctx, nil, `<ul class="menu"><li>one</li><li>two</li></ul>`)
	require.NoError(t, err)

	el := root.(*htmldom.Element)
	assert.Equal(t, "ul", el.Tag())
	v, _ := el.Attr("class")
	assert.Equal(t, "menu", v)
	require.Len(t, el.Children(), 2)
	assert.Equal(t, "one", el.Children()[0].Text())

	_, ok := dom.QuerySelector(root, ".menu")
	assert.False(t, ok, "QuerySelector must not match the scope itself")
}
