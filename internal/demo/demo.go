// Package demo hosts the runnable showcase scene: a handful of pickable
// meshes, a camera rig carrying the cursor, and a small overlay for
// exercising pause and immersive-mode transitions.
package demo

import (
	"log"

	"cursor3d/internal/components"
	"cursor3d/internal/cursor"
	"cursor3d/internal/engine"
	"cursor3d/internal/input"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const hoverScale = 1.25

type Demo struct {
	Scene      *engine.Scene
	Cursor     *cursor.Cursor
	Rig        *engine.Entity
	dispatcher *input.Dispatcher
	poller     *input.Poller

	// Per-entity hover feedback tweens, driven from enter/leave signals.
	tweens map[*engine.Entity]*gween.Tween
}

func New() *Demo {
	return &Demo{
		Scene:      engine.NewScene("demo"),
		dispatcher: input.NewDispatcher(),
		tweens:     make(map[*engine.Entity]*gween.Tween),
	}
}

func (d *Demo) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "cursor3d demo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)

	if err := engine.CheckRuntime(); err != nil {
		log.Fatalf("runtime check failed: %v", err)
	}

	d.poller = input.NewPoller(d.dispatcher)
	d.buildScene()

	d.Scene.Surface.MarkReady(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	d.Scene.Start()
	d.Cursor.Attach(d.Scene, d.dispatcher)
	defer d.Cursor.Detach()

	for !rl.WindowShouldClose() {
		d.update()
		d.draw()
	}
}

func (d *Demo) buildScene() {
	// A grouping entity with pickable children, to exercise flattening.
	group := engine.NewEntity("Cubes")
	d.Scene.AddEntity(group)

	colors := []rl.Color{rl.SkyBlue, rl.Gold, rl.Lime}
	for i, color := range colors {
		cube := engine.NewEntity("Cube")
		cube.Transform.Position = rl.Vector3{X: float32(i*3 - 3), Y: 1}
		cube.AddComponent(components.NewMeshRenderer(components.MeshCube, color, rl.Vector3{X: 1.5, Y: 1.5, Z: 1.5}))
		group.AddChild(cube)
	}

	ball := engine.NewEntity("Ball")
	ball.Transform.Position = rl.Vector3{X: 0, Y: 1, Z: -4}
	ball.AddComponent(components.NewMeshRenderer(components.MeshSphere, rl.Maroon, rl.Vector3{X: 1}))
	d.Scene.AddEntity(ball)

	ground := engine.NewEntity("Ground")
	ground.AddComponent(components.NewMeshRenderer(components.MeshPlane, rl.LightGray, rl.Vector3{X: 24, Z: 24}))
	d.Scene.AddEntity(ground)

	d.Rig = engine.NewEntity("CameraRig")
	d.Rig.Transform.Position = rl.Vector3{X: 0, Y: 4, Z: 12}
	d.Rig.Transform.Rotation = rl.Vector3{X: -12}

	cam := engine.NewCamera()
	cam.IsMain = true
	d.Rig.AddComponent(cam)

	d.Cursor = cursor.New(cursor.Config{})
	d.Rig.AddComponent(d.Cursor)
	d.Scene.AddEntity(d.Rig)

	// Global subscription via the cursor's host entity.
	d.Rig.On(cursor.EventClick, func(sig engine.Signal) {
		if sig.Target != nil {
			log.Printf("clicked %s", sig.Target.Name)
		}
	})
	d.Rig.On(cursor.EventMouseEnter, func(sig engine.Signal) {
		d.tweens[sig.Target] = gween.New(sig.Target.Transform.Scale.X, hoverScale, 0.15, ease.OutQuad)
	})
	d.Rig.On(cursor.EventMouseLeave, func(sig engine.Signal) {
		d.tweens[sig.Target] = gween.New(sig.Target.Transform.Scale.X, 1, 0.15, ease.InQuad)
	})
}

func (d *Demo) update() {
	dt := rl.GetFrameTime()

	d.Scene.Surface.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	d.poller.Poll()
	d.Scene.Update(dt)

	for e, tween := range d.tweens {
		s, done := tween.Update(dt)
		e.Transform.Scale = rl.Vector3{X: s, Y: s, Z: s}
		if done {
			delete(d.tweens, e)
		}
	}
}

func (d *Demo) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 26, 34, 255))

	cam := d.Scene.MainCamera()
	rl.BeginMode3D(cam.GetRaylibCamera())
	rl.DrawGrid(24, 1)
	d.drawEntities(d.Scene.Entities)
	rl.EndMode3D()

	d.drawOverlay()
	rl.EndDrawing()
}

func (d *Demo) drawEntities(entities []*engine.Entity) {
	for _, e := range entities {
		if mr := engine.GetComponent[*components.MeshRenderer](e); mr != nil {
			mr.Draw()
			if e.Is(cursor.StateHovered) {
				box := mr.Node().Bounds
				rl.DrawBoundingBox(box, rl.White)
			}
		}
		d.drawEntities(e.Children)
	}
}

func (d *Demo) drawOverlay() {
	if d.Scene.Immersive() {
		if gui.Button(rl.Rectangle{X: 12, Y: 12, Width: 140, Height: 28}, "Exit immersive") {
			d.Scene.ExitImmersive()
		}
		rl.DrawText("immersive: cursor suspended", 12, 48, 18, rl.Orange)
		return
	}

	if gui.Button(rl.Rectangle{X: 12, Y: 12, Width: 140, Height: 28}, "Enter immersive") {
		d.Scene.EnterImmersive()
	}
	if d.Scene.Paused() {
		if gui.Button(rl.Rectangle{X: 160, Y: 12, Width: 100, Height: 28}, "Resume") {
			d.Scene.Resume()
		}
	} else {
		if gui.Button(rl.Rectangle{X: 160, Y: 12, Width: 100, Height: 28}, "Pause") {
			d.Scene.Pause()
		}
	}

	if hovered := d.Cursor.Intersected(); hovered != nil {
		rl.DrawText(hovered.Name, 12, 48, 18, rl.RayWhite)
	}
}
