package cursor

import (
	"cursor3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updatePointer converts device pixel coordinates to normalized device
// coordinates: x maps [0,w] to [-1,1], y maps [0,h] to [1,-1] (screen y
// grows downward, NDC y grows upward). Skipped while the surface has no
// size yet.
func (c *Cursor) updatePointer(px, py float32) {
	w, h := c.scene.Surface.Size()
	if w == 0 || h == 0 {
		return
	}
	c.pointer.X = (px/w)*2 - 1
	c.pointer.Y = -(py/h)*2 + 1
}

// updateRay rebuilds the pick ray from the current pointer and camera.
// The origin is the camera's world position; the direction comes from
// unprojecting the pointer at mid clip depth and normalizing the offset
// from the origin. GetScreenToWorldRay bundles the same math but misbehaves
// with off-axis camera transforms, so the two steps stay explicit here.
func (c *Cursor) updateRay(cam *engine.Camera) {
	w, h := c.scene.Surface.Size()
	if w == 0 || h == 0 {
		return
	}

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(w / h)
	origin := cam.WorldPosition()

	point := rl.Vector3{X: c.pointer.X, Y: c.pointer.Y, Z: 0.5}
	target := rl.Vector3Unproject(point, proj, view)

	c.ray.Position = origin
	c.ray.Direction = rl.Vector3Normalize(rl.Vector3Subtract(target, origin))
}
