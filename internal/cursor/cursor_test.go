package cursor

import (
	"reflect"
	"testing"

	"cursor3d/internal/engine"
	"cursor3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fixture wires a cursor into a scene with a camera at (0,0,10) looking
// down -Z over an 800x600 surface, and records every signal the host
// entity emits.
type fixture struct {
	scene *engine.Scene
	d     *input.Dispatcher
	cur   *Cursor
	host  *engine.Entity
	log   []string
}

func newFixture(cfg Config) *fixture {
	f := &fixture{
		scene: engine.NewScene("test"),
		d:     input.NewDispatcher(),
	}
	f.scene.Surface.MarkReady(800, 600)

	f.host = engine.NewEntity("rig")
	f.host.Transform.Position.Z = 10
	cam := engine.NewCamera()
	cam.IsMain = true
	f.host.AddComponent(cam)

	f.cur = New(cfg)
	f.host.AddComponent(f.cur)
	f.scene.AddEntity(f.host)

	f.host.On(EventMouseEnter, func(sig engine.Signal) { f.log = append(f.log, "enter:"+sig.Target.Name) })
	f.host.On(EventMouseLeave, func(sig engine.Signal) { f.log = append(f.log, "leave:"+sig.Target.Name) })
	f.host.On(EventClick, func(sig engine.Signal) { f.log = append(f.log, "click:"+sig.Target.Name) })

	f.cur.Attach(f.scene, f.d)
	return f
}

// addBox adds an entity with a pickable unit-ish leaf node centered at pos.
func (f *fixture) addBox(name string, pos rl.Vector3) *engine.Entity {
	e := engine.NewEntity(name)
	half := rl.Vector3{X: 1, Y: 1, Z: 1}
	leaf := &engine.Node{
		Type:    engine.NodeMesh,
		Visible: true,
		Entity:  e,
		Bounds: rl.BoundingBox{
			Min: rl.Vector3Subtract(pos, half),
			Max: rl.Vector3Add(pos, half),
		},
	}
	e.Node().AddChild(leaf)
	f.scene.AddEntity(e)
	return e
}

func (f *fixture) move(px, py float32) {
	f.d.Dispatch(input.MouseMove, input.PointerEvent{ClientX: px, ClientY: py})
}

func (f *fixture) down() {
	f.d.Dispatch(input.MouseDown, input.PointerEvent{ClientX: 400, ClientY: 300})
}

func (f *fixture) up() {
	f.d.Dispatch(input.MouseUp, input.PointerEvent{ClientX: 400, ClientY: 300})
}

func (f *fixture) wantLog(t *testing.T, want ...string) {
	t.Helper()
	if len(want) == 0 && len(f.log) == 0 {
		return
	}
	if !reflect.DeepEqual(f.log, want) {
		t.Errorf("Signal log mismatch:\n got %v\nwant %v", f.log, want)
	}
}

func TestHoverEnter(t *testing.T) {
	f := newFixture(Config{})
	box := f.addBox("Box", rl.Vector3{})

	entityScoped := false
	box.On(EventMouseEnter, func(engine.Signal) { entityScoped = true })

	f.move(400, 300)

	if f.cur.Intersected() != box {
		t.Fatal("Expected Box to be intersected")
	}
	if !box.Is(StateHovered) {
		t.Error("Target missing hovered state")
	}
	if !f.host.Is(StateHovering) {
		t.Error("Host missing hovering state")
	}
	if !entityScoped {
		t.Error("Entity-scoped mouseenter did not fire")
	}
	f.wantLog(t, "enter:Box")
}

func TestHoverIdempotence(t *testing.T) {
	f := newFixture(Config{})
	f.addBox("Box", rl.Vector3{})

	f.move(400, 300)
	f.move(401, 300)
	f.move(399, 301)

	f.wantLog(t, "enter:Box")
}

func TestHoverClearedOnMiss(t *testing.T) {
	f := newFixture(Config{})
	box := f.addBox("Box", rl.Vector3{})

	f.move(400, 300)
	f.move(10, 10) // off into empty space

	if f.cur.Intersected() != nil {
		t.Error("Hover should clear when nothing qualifies")
	}
	if box.Is(StateHovered) || f.host.Is(StateHovering) {
		t.Error("State markers should clear with the hover")
	}
	f.wantLog(t, "enter:Box", "leave:Box")
}

func TestHoverExclusivityOnTargetChange(t *testing.T) {
	f := newFixture(Config{})
	near := f.addBox("Near", rl.Vector3{})
	far := f.addBox("Far", rl.Vector3{Z: -5})

	f.move(400, 300)
	if f.cur.Intersected() != near {
		t.Fatal("Expected nearest visible hit to win")
	}

	// Hiding the near entity's parent node must route the pick to the
	// farther entity, with leave strictly before enter.
	near.Node().Visible = false
	f.move(401, 300)

	if f.cur.Intersected() != far {
		t.Error("Expected pick to fall through to the visible entity")
	}
	f.wantLog(t, "enter:Near", "leave:Near", "enter:Far")
}

func TestClick(t *testing.T) {
	f := newFixture(Config{})
	box := f.addBox("Box", rl.Vector3{})

	var clicked []*engine.Entity
	box.On(EventClick, func(sig engine.Signal) { clicked = append(clicked, sig.Target) })

	f.move(400, 300)
	f.down()
	f.up()

	f.wantLog(t, "enter:Box", "click:Box")
	if len(clicked) != 1 || clicked[0] != box {
		t.Errorf("Entity-scoped click mismatch: %v", clicked)
	}

	// A second up without a down must not click again
	f.up()
	f.wantLog(t, "enter:Box", "click:Box")
}

func TestClickInvalidatedByMove(t *testing.T) {
	f := newFixture(Config{})
	f.addBox("Box", rl.Vector3{})

	f.move(400, 300)
	f.down()
	f.move(401, 300) // still over the box, but the gesture is broken
	f.up()

	f.wantLog(t, "enter:Box")
}

func TestClickWithoutTarget(t *testing.T) {
	f := newFixture(Config{})
	f.addBox("Box", rl.Vector3{})

	f.move(10, 10) // empty space
	f.down()
	f.up()

	f.wantLog(t)
}

func TestPointerLeaveActsAsUp(t *testing.T) {
	f := newFixture(Config{})
	f.addBox("Box", rl.Vector3{})

	f.move(400, 300)
	f.down()
	f.d.Dispatch(input.MouseLeave, input.PointerEvent{})

	f.wantLog(t, "enter:Box", "click:Box")
}

func TestMobileSuppressesHoverSideEffects(t *testing.T) {
	f := newFixture(Config{Mobile: true})
	box := f.addBox("Box", rl.Vector3{})

	touch := []input.Touch{{PageX: 400, PageY: 300}}
	f.d.Dispatch(input.TouchMove, input.PointerEvent{Touches: touch})

	if f.cur.Intersected() != box {
		t.Error("Mobile mode must still track the intersection internally")
	}
	if box.Is(StateHovered) || f.host.Is(StateHovering) {
		t.Error("Mobile mode must not set hover state markers")
	}
	f.wantLog(t)
}

func TestMobileClick(t *testing.T) {
	f := newFixture(Config{Mobile: true})
	box := f.addBox("Box", rl.Vector3{})

	entityScoped := false
	box.On(EventClick, func(engine.Signal) { entityScoped = true })

	// Touch down resolves the intersection itself; no move stream needed.
	f.d.Dispatch(input.TouchStart, input.PointerEvent{Touches: []input.Touch{{PageX: 400, PageY: 300}}})
	f.d.Dispatch(input.TouchEnd, input.PointerEvent{Touches: []input.Touch{}})

	f.wantLog(t, "click:Box")
	if !entityScoped {
		t.Error("Entity-scoped click did not fire in mobile mode")
	}
}

func TestMultiTouchIgnored(t *testing.T) {
	f := newFixture(Config{Mobile: true})
	f.addBox("Box", rl.Vector3{})

	two := []input.Touch{{PageX: 400, PageY: 300}, {PageX: 500, PageY: 300}}
	f.d.Dispatch(input.TouchMove, input.PointerEvent{Touches: two})

	if f.cur.Intersected() != nil {
		t.Error("Multi-touch move must be ignored entirely")
	}

	none := []input.Touch{}
	f.d.Dispatch(input.TouchMove, input.PointerEvent{Touches: none})
	if f.cur.Intersected() != nil {
		t.Error("Touch move with no points must be ignored")
	}
}

func TestPausedCursorIgnoresInput(t *testing.T) {
	f := newFixture(Config{})
	box := f.addBox("Box", rl.Vector3{})

	f.scene.Pause()
	f.move(400, 300)
	f.down()
	f.up()

	if f.cur.Intersected() != nil || box.Is(StateHovered) {
		t.Error("Paused cursor produced hover state")
	}
	f.wantLog(t)

	f.scene.Resume()
	f.move(400, 300)
	f.wantLog(t, "enter:Box")
}

func TestImmersiveModeSuspendsCursor(t *testing.T) {
	f := newFixture(Config{})
	f.addBox("Box", rl.Vector3{})

	f.scene.EnterImmersive()
	if !f.cur.Stereo() {
		t.Error("Cursor should report stereo while immersive")
	}
	f.move(400, 300)
	f.down()
	f.up()
	f.wantLog(t)

	f.scene.ExitImmersive()
	if f.cur.Stereo() {
		t.Error("Cursor should drop stereo after exit")
	}
	f.move(400, 300)
	f.wantLog(t, "enter:Box")
}

func TestPauseClearsLiveHover(t *testing.T) {
	f := newFixture(Config{})
	box := f.addBox("Box", rl.Vector3{})

	f.move(400, 300)
	f.scene.Pause()

	if box.Is(StateHovered) || f.host.Is(StateHovering) {
		t.Error("Pause should release hover state markers")
	}
	f.wantLog(t, "enter:Box", "leave:Box")
}

func TestAttachDefersUntilSurfaceReady(t *testing.T) {
	f := &fixture{
		scene: engine.NewScene("test"),
		d:     input.NewDispatcher(),
	}
	f.host = engine.NewEntity("rig")
	f.host.Transform.Position.Z = 10
	cam := engine.NewCamera()
	cam.IsMain = true
	f.host.AddComponent(cam)
	f.cur = New(Config{})
	f.host.AddComponent(f.cur)
	f.scene.AddEntity(f.host)
	f.host.On(EventMouseEnter, func(sig engine.Signal) { f.log = append(f.log, "enter:"+sig.Target.Name) })

	f.cur.Attach(f.scene, f.d)
	f.addBox("Box", rl.Vector3{})

	// Surface not ready: input listeners are not registered yet.
	f.move(400, 300)
	if f.cur.Intersected() != nil {
		t.Error("Cursor handled input before the surface was ready")
	}

	f.scene.Surface.MarkReady(800, 600)
	f.move(400, 300)
	f.wantLog(t, "enter:Box")
}

func TestDetachIdempotent(t *testing.T) {
	f := newFixture(Config{})
	box := f.addBox("Box", rl.Vector3{})

	f.move(400, 300)
	f.cur.Detach()

	// Markers drop without a leave signal: the host is going away.
	if box.Is(StateHovered) || f.host.Is(StateHovering) {
		t.Error("Detach should release state markers")
	}
	f.wantLog(t, "enter:Box")

	// Detached cursor ignores everything; a second detach is harmless.
	f.move(400, 300)
	f.cur.Detach()
	f.wantLog(t, "enter:Box")
}

func TestDetachBeforeSurfaceReady(t *testing.T) {
	scene := engine.NewScene("test")
	d := input.NewDispatcher()

	host := engine.NewEntity("rig")
	cam := engine.NewCamera()
	cam.IsMain = true
	host.AddComponent(cam)
	cur := New(Config{})
	host.AddComponent(cur)
	scene.AddEntity(host)

	cur.Attach(scene, d)
	cur.Detach()

	// The pending surface subscription is gone: readiness must not
	// resurrect the cursor.
	scene.Surface.MarkReady(800, 600)
	d.Dispatch(input.MouseMove, input.PointerEvent{ClientX: 400, ClientY: 300})
	if cur.Intersected() != nil {
		t.Error("Detached cursor reacted to input after surface readiness")
	}
}
