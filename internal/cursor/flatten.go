package cursor

import "cursor3d/internal/engine"

// flatten expands grouping nodes in place and returns the scene's leaf
// renderables in left-to-right, depth-first order. Grouping nodes never
// appear in the output; non-group nodes are emitted as-is without
// descending into them.
//
// The result is recomputed on every resolution pass. The graph can mutate
// between frames, and picking against a stale snapshot selects the wrong
// object.
func flatten(root *engine.Node) []*engine.Node {
	if root == nil {
		return nil
	}

	out := make([]*engine.Node, 0, len(root.Children))

	// Explicit worklist; scene graphs can nest deeper than comfortable
	// recursion. Children are pushed in reverse so pop order matches
	// left-to-right traversal.
	stack := make([]*engine.Node, 0, len(root.Children))
	for i := len(root.Children) - 1; i >= 0; i-- {
		stack = append(stack, root.Children[i])
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.Grouping() {
			for i := len(n.Children) - 1; i >= 0; i-- {
				stack = append(stack, n.Children[i])
			}
			continue
		}
		out = append(out, n)
	}
	return out
}
