package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

var nextEntityUID uint64

// Entity is the logical scene object: it owns components, carries named
// states, dispatches named signals, and owns a subtree of render Nodes.
type Entity struct {
	Name       string
	UID        uint64
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *Entity
	Children   []*Entity
	components []Component

	node      *Node
	states    map[string]struct{}
	signals   map[string][]signalListener
	nextSigID int
	started   bool
}

// Signal is the payload delivered to signal listeners.
// Target is the entity the signal is about; for entity-scoped dispatch it is
// the dispatching entity itself and Detail is nil.
type Signal struct {
	Name   string
	Target *Entity
	Detail any
}

type signalListener struct {
	id int
	fn func(Signal)
}

func NewEntity(name string) *Entity {
	nextEntityUID++
	return &Entity{
		Name:   name,
		UID:    nextEntityUID,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*Entity, 0),
	}
}

func (e *Entity) AddComponent(c Component) {
	c.SetEntity(e)
	e.components = append(e.components, c)
}

// GetComponent returns the first component matching the type parameter.
func GetComponent[T Component](e *Entity) T {
	var zero T
	for _, c := range e.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (e *Entity) Start() {
	if e.started {
		return
	}
	for _, c := range e.components {
		c.Start()
	}
	e.started = true
	for _, child := range e.Children {
		child.Start()
	}
}

func (e *Entity) Update(deltaTime float32) {
	if !e.Active {
		return
	}
	for _, c := range e.components {
		c.Update(deltaTime)
	}
	for _, child := range e.Children {
		child.Update(deltaTime)
	}
}

func (e *Entity) Components() []Component {
	return e.components
}

func (e *Entity) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (e *Entity) AddChild(child *Entity) {
	child.Parent = e
	child.Scene = e.Scene
	e.Children = append(e.Children, child)
	e.Node().AddChild(child.Node())
}

func (e *Entity) RemoveChild(child *Entity) {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			e.Node().RemoveChild(child.Node())
			child.Parent = nil
			return
		}
	}
}

// Node returns the entity's root render node, creating it on first use.
// Components hang their renderable leaves under this group node.
func (e *Entity) Node() *Node {
	if e.node == nil {
		e.node = &Node{Type: NodeGroup, Visible: true, Entity: e}
	}
	return e.node
}

// AddState attaches a named state marker ("hovered", "hovering", ...).
func (e *Entity) AddState(name string) {
	if e.states == nil {
		e.states = make(map[string]struct{})
	}
	e.states[name] = struct{}{}
}

// RemoveState detaches a named state marker. Unknown names are a no-op.
func (e *Entity) RemoveState(name string) {
	delete(e.states, name)
}

// Is reports whether the named state marker is attached.
func (e *Entity) Is(name string) bool {
	_, ok := e.states[name]
	return ok
}

// On subscribes to a named signal and returns an id for Off.
func (e *Entity) On(name string, fn func(Signal)) int {
	if fn == nil {
		return 0
	}
	if e.signals == nil {
		e.signals = make(map[string][]signalListener)
	}
	e.nextSigID++
	e.signals[name] = append(e.signals[name], signalListener{id: e.nextSigID, fn: fn})
	return e.nextSigID
}

// Off unsubscribes the listener registered under id. Idempotent.
func (e *Entity) Off(name string, id int) {
	ls := e.signals[name]
	for i, l := range ls {
		if l.id == id {
			e.signals[name] = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

// Emit dispatches a named signal on this entity. Target defaults to the
// entity itself when detail carries no explicit target.
func (e *Entity) Emit(name string, detail any) {
	e.EmitSignal(Signal{Name: name, Target: e, Detail: detail})
}

// EmitSignal dispatches a fully-formed signal on this entity.
func (e *Entity) EmitSignal(sig Signal) {
	for _, l := range e.signals[sig.Name] {
		l.fn(sig)
	}
}

func (e *Entity) WorldPosition() rl.Vector3 {
	if e.Parent == nil {
		return e.Transform.Position
	}
	parentPos := e.Parent.WorldPosition()
	parentRot := e.Parent.WorldRotation()
	parentScale := e.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: e.Transform.Position.X * parentScale.X,
		Y: e.Transform.Position.Y * parentScale.Y,
		Z: e.Transform.Position.Z * parentScale.Z,
	}

	rotated := rl.Vector3Transform(scaled, rotationMatrix(parentRot))
	return rl.Vector3Add(parentPos, rotated)
}

func (e *Entity) WorldRotation() rl.Vector3 {
	if e.Parent == nil {
		return e.Transform.Rotation
	}
	return rl.Vector3Add(e.Parent.WorldRotation(), e.Transform.Rotation)
}

func (e *Entity) WorldScale() rl.Vector3 {
	if e.Parent == nil {
		return e.Transform.Scale
	}
	ps := e.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * e.Transform.Scale.X,
		Y: ps.Y * e.Transform.Scale.Y,
		Z: ps.Z * e.Transform.Scale.Z,
	}
}

// rotationMatrix builds a rotation matrix from Euler degrees, applied
// X then Y then Z.
func rotationMatrix(euler rl.Vector3) rl.Matrix {
	rx := float64(euler.X) * math.Pi / 180
	ry := float64(euler.Y) * math.Pi / 180
	rz := float64(euler.Z) * math.Pi / 180
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}
