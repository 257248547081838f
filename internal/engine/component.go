package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetEntity(e *Entity)
	Entity() *Entity
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	entity *Entity
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetEntity(e *Entity) {
	b.entity = e
}

func (b *BaseComponent) Entity() *Entity {
	return b.entity
}
