// Package plexus simulates a swarm of drifting particles and discovers,
// each frame, which pairs are near enough to be linked by a line.
//
// The package contains only the simulation core: the particle motion model,
// a quadtree rebuilt every frame, and the per-frame orchestrator that emits
// connection records. Drawing, input capture and window management belong to
// the callers in cmd/.
package plexus

import "github.com/go-gl/mathgl/mgl64"

// A Boundary is an axis-aligned rectangle given as a center point and
// half-extents. It describes the region owned by one quadtree node.
type Boundary struct {
	Center mgl64.Vec2
	Half   mgl64.Vec2 // half-width, half-height
}

// NewBoundary returns a boundary centered at (cx,cy) with the given
// half-extents.
func NewBoundary(cx, cy, hw, hh float64) Boundary {
	return Boundary{Center: mgl64.Vec2{cx, cy}, Half: mgl64.Vec2{hw, hh}}
}

// Contains reports whether p lies in the half-open rectangle
// [cx-hw, cx+hw) × [cy-hh, cy+hh).
//
// The half-open rule puts a point on a shared quadrant edge in exactly one
// child, so insertion never duplicates or drops a particle at a seam.
func (b Boundary) Contains(p mgl64.Vec2) bool {
	return b.Center[0]-b.Half[0] <= p[0] && p[0] < b.Center[0]+b.Half[0] &&
		b.Center[1]-b.Half[1] <= p[1] && p[1] < b.Center[1]+b.Half[1]
}

// Intersects reports whether the bounding square of c overlaps b.
// It is a broad-phase test: false positives are fine (the query resolves
// them with an exact distance check), false negatives are never allowed.
func (b Boundary) Intersects(c Circle) bool {
	return !(c.Center[0]+c.Radius < b.Center[0]-b.Half[0] ||
		c.Center[0]-c.Radius > b.Center[0]+b.Half[0] ||
		c.Center[1]+c.Radius < b.Center[1]-b.Half[1] ||
		c.Center[1]-c.Radius > b.Center[1]+b.Half[1])
}

// quadrant returns the boundary of one of b's four quadrants. Each child is
// centered at the parent center offset by the child's own half-extents.
// dx, dy are ±1.
func (b Boundary) quadrant(dx, dy float64) Boundary {
	h := b.Half.Mul(0.5)
	return Boundary{
		Center: b.Center.Add(mgl64.Vec2{dx * h[0], dy * h[1]}),
		Half:   h,
	}
}

// A Circle is a circular query region. It is used only for reads and is
// never stored.
type Circle struct {
	Center mgl64.Vec2
	Radius float64
}

// contains reports whether p lies strictly inside the circle.
func (c Circle) contains(p mgl64.Vec2) bool {
	return p.Sub(c.Center).Len() < c.Radius
}
