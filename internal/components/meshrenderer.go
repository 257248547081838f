package components

import (
	"cursor3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

// MeshRenderer draws a primitive mesh and owns the entity's pickable leaf
// node. The leaf's world-space bounds follow the entity transform, so the
// cursor always picks against the current frame's geometry.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3

	node *engine.Node
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Start() {
	e := m.Entity()
	if e == nil {
		return
	}
	m.node = &engine.Node{Type: engine.NodeMesh, Visible: true, Entity: e}
	e.Node().AddChild(m.node)
	m.updateBounds()
}

func (m *MeshRenderer) Update(deltaTime float32) {
	m.updateBounds()
}

// Node returns the renderable leaf this component hangs under its entity.
func (m *MeshRenderer) Node() *engine.Node {
	return m.node
}

func (m *MeshRenderer) updateBounds() {
	e := m.Entity()
	if e == nil || m.node == nil {
		return
	}
	pos := e.WorldPosition()
	scale := e.WorldScale()

	var half rl.Vector3
	switch m.MeshType {
	case MeshSphere:
		r := abs(m.Size.X * scale.X)
		half = rl.Vector3{X: r, Y: r, Z: r}
	case MeshPlane:
		half = rl.Vector3{
			X: abs(m.Size.X*scale.X) / 2,
			Y: 0.01,
			Z: abs(m.Size.Z*scale.Z) / 2,
		}
	default:
		half = rl.Vector3{
			X: abs(m.Size.X*scale.X) / 2,
			Y: abs(m.Size.Y*scale.Y) / 2,
			Z: abs(m.Size.Z*scale.Z) / 2,
		}
	}

	m.node.Bounds = rl.BoundingBox{
		Min: rl.Vector3Subtract(pos, half),
		Max: rl.Vector3Add(pos, half),
	}
}

func (m *MeshRenderer) Draw() {
	e := m.Entity()
	if e == nil || !e.Active {
		return
	}

	pos := e.WorldPosition()

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(pos, m.Size, m.Color)
	case MeshSphere:
		rl.DrawSphere(pos, m.Size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: m.Size.X, Y: m.Size.Z}, m.Color)
	}
}

// Serialization
func (m *MeshRenderer) TypeName() string { return "MeshRenderer" }

func (m *MeshRenderer) Serialize() map[string]any {
	return map[string]any{
		"meshType": int(m.MeshType),
		"color":    []uint8{m.Color.R, m.Color.G, m.Color.B, m.Color.A},
		"size":     []float32{m.Size.X, m.Size.Y, m.Size.Z},
	}
}

func (m *MeshRenderer) Deserialize(data map[string]any) {
	if v, ok := data["meshType"].(float64); ok {
		m.MeshType = MeshType(int(v))
	}
	if v, ok := data["color"].([]any); ok && len(v) >= 4 {
		m.Color = rl.NewColor(uint8(v[0].(float64)), uint8(v[1].(float64)), uint8(v[2].(float64)), uint8(v[3].(float64)))
	}
	if v, ok := data["size"].([]any); ok && len(v) >= 3 {
		m.Size = rl.Vector3{X: float32(v[0].(float64)), Y: float32(v[1].(float64)), Z: float32(v[2].(float64))}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func init() {
	engine.RegisterComponent("MeshRenderer", func() engine.Serializable {
		return NewMeshRenderer(MeshCube, rl.White, rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}
