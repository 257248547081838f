package engine

import "fmt"

// Serializable is implemented by components that can be written to and
// restored from scene files.
type Serializable interface {
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

var componentRegistry = map[string]func() Serializable{}

// RegisterComponent registers a named component factory, typically from an
// init func in the component's own file.
func RegisterComponent(name string, factory func() Serializable) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent instantiates a registered component by name.
// Returns nil for unknown names.
func CreateComponent(name string) Serializable {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil
	}
	return factory()
}
