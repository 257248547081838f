package cursor

import (
	"sort"

	"cursor3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// hit is one ray/node intersection, annotated with the distance from the
// ray origin.
type hit struct {
	Node     *engine.Node
	Distance float32
}

// castRay intersects the ray against every leaf's pick bounds and returns
// the hits sorted nearest-first.
func castRay(ray rl.Ray, nodes []*engine.Node, maxDistance float32) []hit {
	var hits []hit
	for _, n := range nodes {
		if d, ok := rayHitsBox(ray, n.Bounds, maxDistance); ok {
			hits = append(hits, hit{Node: n, Distance: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// pickVisible scans hits in distance order and returns the first whose
// node parent is visible. Hits behind an invisible parent are skipped
// entirely; a nearer invisible hit never blocks a farther visible one.
func pickVisible(hits []hit) (hit, bool) {
	for _, h := range hits {
		if p := h.Node.Parent; p != nil && p.Visible {
			return h, true
		}
	}
	return hit{}, false
}

// rayHitsBox is a slab test against a world-space AABB. Returns the entry
// distance along the ray, or the exit distance when the origin is inside
// the box.
func rayHitsBox(ray rl.Ray, box rl.BoundingBox, maxDistance float32) (float32, bool) {
	origin := [3]float32{ray.Position.X, ray.Position.Y, ray.Position.Z}
	dir := [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	tmin := float32(-1e30)
	tmax := float32(1e30)

	for axis := 0; axis < 3; axis++ {
		if dir[axis] != 0 {
			t1 := (lo[axis] - origin[axis]) / dir[axis]
			t2 := (hi[axis] - origin[axis]) / dir[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
			// Ray runs parallel to this slab, outside it
			return 0, false
		}
	}

	if tmin > tmax || tmax < 0 {
		return 0, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return 0, false
	}
	return t, true
}
