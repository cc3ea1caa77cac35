package plexus

/*

spatial acceleration structure.
point quadtree: a node holds up to its capacity of particles, then splits
once into four quadrant children and routes further insertions down.
particles already held stay where they are; capacity is tested only before
subdivision, so a node's own list never grows past capacity once it has
split. the whole tree is thrown away and rebuilt every frame, so there is
no removal, merging or rebalancing.

*/

// quadrant index: low bit is X (0 west, 1 east), high bit is Y.
const (
	nw = iota
	ne
	sw
	se
)

// MaxDepth bounds subdivision so dense clusters cannot recurse without
// limit. A node at MaxDepth stays a leaf and accepts particles beyond its
// capacity.
const MaxDepth = 8

// A Quadtree indexes particle positions for circular range queries.
// It holds references only; particles are owned by the Simulation.
type Quadtree struct {
	bounds   Boundary
	capacity int
	depth    int
	points   []*Particle
	children []*Quadtree // nil until first overflow, then exactly 4
}

// NewQuadtree returns an empty tree covering bounds. capacity is the number
// of particles a node holds itself before it subdivides.
func NewQuadtree(bounds Boundary, capacity int) *Quadtree {
	return &Quadtree{
		bounds:   bounds,
		capacity: capacity,
		points:   make([]*Particle, 0, capacity),
	}
}

// Insert places p in the tree. It reports false only when p's position lies
// outside this node's boundary (for the root, outside the indexed domain).
func (q *Quadtree) Insert(p *Particle) bool {
	if !q.bounds.Contains(p.Pos) {
		return false
	}

	if len(q.points) < q.capacity || q.depth >= MaxDepth {
		q.points = append(q.points, p)
		return true
	}

	if q.children == nil {
		q.split()
	}

	// route to the single child whose boundary contains the point; the
	// half-open containment rule makes the choice unambiguous
	for _, c := range q.children {
		if c.bounds.Contains(p.Pos) {
			return c.Insert(p)
		}
	}
	return false
}

// split creates the four quadrant children. One-shot: a node subdivides at
// most once and never merges back.
func (q *Quadtree) split() {
	q.children = []*Quadtree{
		nw: {bounds: q.bounds.quadrant(-1, -1), capacity: q.capacity, depth: q.depth + 1},
		ne: {bounds: q.bounds.quadrant(+1, -1), capacity: q.capacity, depth: q.depth + 1},
		sw: {bounds: q.bounds.quadrant(-1, +1), capacity: q.capacity, depth: q.depth + 1},
		se: {bounds: q.bounds.quadrant(+1, +1), capacity: q.capacity, depth: q.depth + 1},
	}
}

// Query appends to dst every particle whose position lies strictly within
// region, and returns the extended slice. Passing the previous result back
// in (truncated) avoids reallocation across repeated queries.
func (q *Quadtree) Query(region Circle, dst []*Particle) []*Particle {
	if !q.bounds.Intersects(region) {
		return dst // prune: nothing below this node can be in range
	}

	for _, p := range q.points {
		if region.contains(p.Pos) {
			dst = append(dst, p)
		}
	}

	for _, c := range q.children {
		dst = c.Query(region, dst)
	}
	return dst
}

// Len returns the number of particles held in the subtree.
func (q *Quadtree) Len() int {
	n := len(q.points)
	for _, c := range q.children {
		n += c.Len()
	}
	return n
}

// Subdivided reports whether this node has split.
func (q *Quadtree) Subdivided() bool { return q.children != nil }

// Depth returns the deepest node level in the subtree. The root is level 0.
func (q *Quadtree) Depth() int {
	d := q.depth
	for _, c := range q.children {
		if cd := c.Depth(); cd > d {
			d = cd
		}
	}
	return d
}
