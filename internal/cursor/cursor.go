// Package cursor implements a virtual 3D pointer: 2D mouse or single-finger
// touch input is projected through the active camera into a world-space ray,
// the ray is resolved against the scene's leaf renderables, and the result
// drives hover and click signals on the owning entities.
package cursor

import (
	"cursor3d/internal/engine"
	"cursor3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Signals emitted through the cursor's host entity and, when a target
// exists, on the target entity itself.
const (
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
	EventClick      = "click"
)

// State markers managed on entities while a hover is live.
const (
	StateHovered  = "hovered"  // on the intersected entity
	StateHovering = "hovering" // on the cursor's host entity
)

const defaultMaxDistance = 1000

type attachState int

const (
	detached attachState = iota
	awaitingSurface
	attached
)

// Config controls a Cursor at construction time.
type Config struct {
	// Mobile marks touch-first input. Hover is still tracked internally so
	// click correlation works, but hover side effects (state markers,
	// mouseenter/mouseleave) never fire: touch has no persistent hover.
	// Fixed for the cursor's lifetime.
	Mobile bool

	// MaxDistance is the pick range in world units. Defaults to 1000.
	MaxDistance float32

	// Camera optionally pins the cursor to a specific camera rig entity.
	// When empty the scene's main camera is used.
	Camera engine.EntityRef
}

// Cursor is the interaction component. One instance per host entity; all
// state is owned here, mutated in place, and touched only from the thread
// delivering input and lifecycle events.
type Cursor struct {
	engine.BaseComponent
	cfg Config

	scene      *engine.Scene
	dispatcher *input.Dispatcher

	pointer     rl.Vector2 // NDC, last known pointer position
	ray         rl.Ray
	isDown      bool
	intersected *engine.Entity
	mode        mode

	state          attachState
	inputRegs      []inputReg
	pauseID        int
	resumeID       int
	enterVRID      int
	exitVRID       int
	surfaceReadyID int
}

type inputReg struct {
	kind input.Kind
	id   int
}

func New(cfg Config) *Cursor {
	if cfg.MaxDistance <= 0 {
		cfg.MaxDistance = defaultMaxDistance
	}
	return &Cursor{
		cfg:  cfg,
		mode: mode{mobile: cfg.Mobile, active: true},
	}
}

// Attach wires the cursor into a scene: lifecycle listeners immediately,
// input listeners once the render surface is ready. Calling Attach on an
// already-attached cursor is a no-op.
func (c *Cursor) Attach(scene *engine.Scene, dispatcher *input.Dispatcher) {
	if c.state != detached {
		return
	}
	c.scene = scene
	c.dispatcher = dispatcher
	c.mode.active = !scene.Paused()
	c.mode.stereo = scene.Immersive()

	c.pauseID = scene.OnPause.AddListener(c.onPause)
	c.resumeID = scene.OnResume.AddListener(c.onResume)
	c.enterVRID = scene.OnEnterVR.AddListener(func() { c.mode.stereo = true })
	c.exitVRID = scene.OnExitVR.AddListener(func() { c.mode.stereo = false })

	if scene.Surface.Ready() {
		c.attachInput()
		return
	}
	c.state = awaitingSurface
	c.surfaceReadyID = scene.Surface.OnReady(c.attachInput)
}

func (c *Cursor) attachInput() {
	c.listen(input.MouseDown, c.onMouseDown)
	c.listen(input.MouseMove, c.onMouseMove)
	c.listen(input.MouseUp, c.onUp)
	c.listen(input.MouseLeave, c.onUp)
	c.listen(input.TouchStart, c.onTouchStart)
	c.listen(input.TouchMove, c.onTouchMove)
	c.listen(input.TouchEnd, c.onUp)
	c.state = attached
}

func (c *Cursor) listen(kind input.Kind, fn func(input.PointerEvent)) {
	id := c.dispatcher.AddListener(kind, fn)
	c.inputRegs = append(c.inputRegs, inputReg{kind: kind, id: id})
}

// Detach removes every listener the cursor registered, including a pending
// surface-ready subscription, and drops any live hover state. Idempotent:
// a second Detach, or a Detach before the surface ever became ready, does
// nothing harmful.
func (c *Cursor) Detach() {
	if c.state == detached {
		return
	}
	for _, reg := range c.inputRegs {
		c.dispatcher.RemoveListener(reg.kind, reg.id)
	}
	c.inputRegs = nil

	c.scene.OnPause.RemoveListener(c.pauseID)
	c.scene.OnResume.RemoveListener(c.resumeID)
	c.scene.OnEnterVR.RemoveListener(c.enterVRID)
	c.scene.OnExitVR.RemoveListener(c.exitVRID)
	c.scene.Surface.OffReady(c.surfaceReadyID)

	// The host is going away: drop markers without signaling.
	if c.intersected != nil {
		if !c.mode.mobile {
			c.intersected.RemoveState(StateHovered)
			if host := c.Entity(); host != nil {
				host.RemoveState(StateHovering)
			}
		}
		c.intersected = nil
	}
	c.isDown = false
	c.state = detached
}

// Intersected returns the currently hovered entity, or nil.
func (c *Cursor) Intersected() *engine.Entity {
	return c.intersected
}

// Stereo reports whether the scene is presenting immersively. The cursor is
// inactive for the whole stereo session.
func (c *Cursor) Stereo() bool {
	return c.mode.stereo
}

// --- input handlers ---

func (c *Cursor) onMouseDown(ev input.PointerEvent) {
	if !c.mode.gate() {
		return
	}
	c.isDown = true
	if c.mode.mobile {
		// No hover-producing move stream on touch-first input: resolve now
		// so the matching up event has something to correlate against.
		c.updatePointer(ev.ClientX, ev.ClientY)
		c.refresh()
	}
}

func (c *Cursor) onTouchStart(ev input.PointerEvent) {
	if !c.mode.gate() {
		return
	}
	c.isDown = true
	if c.mode.mobile {
		if len(ev.Touches) == 1 {
			c.updatePointer(ev.Touches[0].PageX, ev.Touches[0].PageY)
		}
		c.refresh()
	}
}

func (c *Cursor) onMouseMove(ev input.PointerEvent) {
	if !c.mode.gate() {
		return
	}
	c.updatePointer(ev.ClientX, ev.ClientY)
	c.onMove()
}

func (c *Cursor) onTouchMove(ev input.PointerEvent) {
	if !c.mode.gate() {
		return
	}
	// Zero or multiple touch points is ambiguous; keep the last pointer.
	if len(ev.Touches) != 1 {
		return
	}
	c.updatePointer(ev.Touches[0].PageX, ev.Touches[0].PageY)
	c.onMove()
}

// onMove invalidates any pending click and re-resolves. Any movement
// between down and up means the pair is not a click.
func (c *Cursor) onMove() {
	c.isDown = false
	c.refresh()
}

func (c *Cursor) onUp(input.PointerEvent) {
	if !c.mode.gate() {
		return
	}
	if c.isDown && c.intersected != nil {
		c.emit(EventClick, c.intersected)
	}
	c.isDown = false
}

// --- lifecycle ---

func (c *Cursor) onPause() {
	c.mode.active = false
	// Leave through the normal path so state markers don't outlive the
	// pause.
	c.clearHover()
	c.isDown = false
}

func (c *Cursor) onResume() {
	c.mode.active = true
}

// --- resolution ---

// refresh recomputes the ray and re-resolves the intersection against the
// current scene graph.
func (c *Cursor) refresh() {
	cam := c.camera()
	if cam == nil {
		return
	}
	c.updateRay(cam)
	c.checkIntersections()
}

func (c *Cursor) camera() *engine.Camera {
	if c.cfg.Camera.IsValid() {
		if rig := c.cfg.Camera.Get(c.scene); rig != nil {
			if cam := engine.GetComponent[*engine.Camera](rig); cam != nil {
				return cam
			}
		}
	}
	return c.scene.MainCamera()
}

func (c *Cursor) checkIntersections() {
	nodes := flatten(c.scene.Root)
	hits := castRay(c.ray, nodes, c.cfg.MaxDistance)

	picked, ok := pickVisible(hits)
	if !ok {
		c.clearHover()
		return
	}
	ent := picked.Node.OwningEntity()
	if ent == nil {
		c.clearHover()
		return
	}
	if ent == c.intersected {
		// Same target as last pass; enter/leave must not re-fire.
		return
	}
	c.clearHover()
	c.setHover(ent)
}

func (c *Cursor) setHover(ent *engine.Entity) {
	c.intersected = ent
	if c.mode.mobile {
		return
	}
	ent.AddState(StateHovered)
	if host := c.Entity(); host != nil {
		host.AddState(StateHovering)
	}
	c.emit(EventMouseEnter, ent)
}

func (c *Cursor) clearHover() {
	if c.intersected == nil {
		return
	}
	prev := c.intersected
	c.intersected = nil
	if c.mode.mobile {
		return
	}
	prev.RemoveState(StateHovered)
	if host := c.Entity(); host != nil {
		host.RemoveState(StateHovering)
	}
	c.emit(EventMouseLeave, prev)
}

// Serialization
func (c *Cursor) TypeName() string { return "Cursor" }

func (c *Cursor) Serialize() map[string]any {
	return map[string]any{
		"mobile":      c.cfg.Mobile,
		"maxDistance": c.cfg.MaxDistance,
		"cameraUID":   c.cfg.Camera.UID,
	}
}

func (c *Cursor) Deserialize(data map[string]any) {
	if v, ok := data["mobile"].(bool); ok {
		c.cfg.Mobile = v
		c.mode.mobile = v
	}
	if v, ok := data["maxDistance"].(float64); ok && v > 0 {
		c.cfg.MaxDistance = float32(v)
	}
	if v, ok := data["cameraUID"].(float64); ok {
		c.cfg.Camera.UID = uint64(v)
	}
}

func init() {
	engine.RegisterComponent("Cursor", func() engine.Serializable {
		return New(Config{})
	})
}

// emit dispatches a named signal on the host entity carrying the target,
// and again on the target itself with no extra detail. Listeners can
// subscribe globally through the cursor's host or locally on the target.
func (c *Cursor) emit(name string, target *engine.Entity) {
	if host := c.Entity(); host != nil {
		host.EmitSignal(engine.Signal{Name: name, Target: target})
	}
	if target != nil {
		target.EmitSignal(engine.Signal{Name: name, Target: target})
	}
}
