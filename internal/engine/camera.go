package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	RegisterComponent("Camera", func() Serializable {
		return NewCamera()
	})
}

type Camera struct {
	BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
		IsMain:     false,
	}
}

// TypeName implements Serializable
func (c *Camera) TypeName() string {
	return "Camera"
}

// Serialize implements Serializable
func (c *Camera) Serialize() map[string]any {
	return map[string]any{
		"type":   "Camera",
		"fov":    c.FOV,
		"near":   c.Near,
		"far":    c.Far,
		"isMain": c.IsMain,
	}
}

// Deserialize implements Serializable
func (c *Camera) Deserialize(data map[string]any) {
	if f, ok := data["fov"].(float64); ok {
		c.FOV = float32(f)
	}
	if n, ok := data["near"].(float64); ok {
		c.Near = float32(n)
	}
	if f, ok := data["far"].(float64); ok {
		c.Far = float32(f)
	}
	if m, ok := data["isMain"].(bool); ok {
		c.IsMain = m
	}
}

func (c *Camera) WorldPosition() rl.Vector3 {
	e := c.Entity()
	if e == nil {
		return rl.Vector3{}
	}
	return e.WorldPosition()
}

// Forward is the camera look direction: -Z rotated by the entity's world
// rotation.
func (c *Camera) Forward() rl.Vector3 {
	e := c.Entity()
	if e == nil {
		return rl.Vector3{Z: -1}
	}
	return rl.Vector3Transform(rl.Vector3{Z: -1}, rotationMatrix(e.WorldRotation()))
}

// ViewMatrix builds the world-to-view matrix from the entity transform.
func (c *Camera) ViewMatrix() rl.Matrix {
	pos := c.WorldPosition()
	target := rl.Vector3Add(pos, c.Forward())
	return rl.MatrixLookAt(pos, target, rl.Vector3{Y: 1})
}

// ProjectionMatrix builds the perspective projection for the given aspect
// ratio. FOV is vertical, in degrees.
func (c *Camera) ProjectionMatrix(aspect float32) rl.Matrix {
	return rl.MatrixPerspective(c.FOV*rl.Deg2rad, aspect, c.Near, c.Far)
}

// GetRaylibCamera converts to a raylib Camera3D for rendering.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	pos := c.WorldPosition()
	return rl.Camera3D{
		Position:   pos,
		Target:     rl.Vector3Add(pos, c.Forward()),
		Up:         rl.Vector3{Y: 1},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
