package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// NodeType tags a render node. Grouping nodes organize the graph and are
// never pickable targets; everything else is a leaf renderable.
type NodeType int

const (
	NodeGroup NodeType = iota
	NodeScene
	NodeMesh
)

// Node is a node in the render hierarchy, parallel to the entity tree.
// An entity's components hang leaf nodes under the entity's group node.
type Node struct {
	Type     NodeType
	Visible  bool
	Parent   *Node
	Children []*Node

	// Bounds is the world-space pick volume. Only meaningful on leaves;
	// whoever owns the leaf keeps it current.
	Bounds rl.BoundingBox

	// Entity is the owning entity, set on entity root nodes and on leaves
	// created by that entity's components.
	Entity *Entity
}

// Grouping reports whether this node exists purely to organize others.
func (n *Node) Grouping() bool {
	return n.Type == NodeGroup || n.Type == NodeScene
}

func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// OwningEntity resolves the entity a node belongs to, walking parents until
// a node with an entity reference is found.
func (n *Node) OwningEntity() *Entity {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Entity != nil {
			return cur.Entity
		}
	}
	return nil
}
