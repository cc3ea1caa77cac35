package plexus

import "github.com/go-gl/mathgl/mgl64"

// A Connection links two particles whose distance fell below the connection
// radius this frame. Records are produced per Step for the renderer and not
// retained; A.ID < B.ID always holds.
type Connection struct {
	A, B   *Particle
	Dist   float64
	Alpha  float64 // 1 at distance 0, 0 at the connection radius
	Weight float64 // stroke weight, scaled the same way
}

// A Simulation owns the particle population and drives it one frame at a
// time. It is single-threaded: Step runs to completion before its output is
// consumed, and the structural commands (Add, Remove, Reset, Resize) must be
// called between Steps, never during one.
type Simulation struct {
	// Pointer is read at the start of each Step.
	Pointer Pointer
	// UseTree selects the quadtree path; when false Step falls back to the
	// all-pairs scan. Both produce the same connection set.
	UseTree bool

	cfg       *Config
	domain    mgl64.Vec2
	particles []*Particle
	nextID    uint64
	frame     int

	conns   []Connection // reused across frames
	scratch []*Particle  // query accumulator, reused across queries
}

// NewSimulation creates a simulation of cfg.InitialCount particles in a
// width × height domain.
func NewSimulation(cfg *Config, width, height float64) *Simulation {
	s := &Simulation{
		UseTree: true,
		cfg:     cfg,
		domain:  mgl64.Vec2{width, height},
	}
	s.Reset()
	return s
}

// Step advances every particle, rebuilds the spatial index and returns the
// connections for this frame. The returned slice is valid until the next
// Step.
func (s *Simulation) Step() []Connection {
	for _, p := range s.particles {
		p.Update(s.frame, s.Pointer, s.domain, s.cfg)
	}
	s.frame++

	s.conns = s.conns[:0]
	if s.UseTree {
		s.connectIndexed()
	} else {
		s.connectAllPairs()
	}
	return s.conns
}

// connectIndexed finds near pairs through a quadtree rebuilt from the
// current positions.
func (s *Simulation) connectIndexed() {
	qt := NewQuadtree(s.rootBoundary(), s.cfg.TreeCapacity)
	for _, p := range s.particles {
		qt.Insert(p)
	}

	region := Circle{Radius: s.cfg.ConnectionRadius}
	for _, p := range s.particles {
		region.Center = p.Pos
		s.scratch = qt.Query(region, s.scratch[:0])
		for _, o := range s.scratch {
			// emit each unordered pair once, from its lower-ID end
			if o.ID > p.ID {
				s.emit(p, o, o.Pos.Sub(p.Pos).Len())
			}
		}
	}
}

// connectAllPairs is the O(n²) reference path.
func (s *Simulation) connectAllPairs() {
	for i := 0; i < len(s.particles)-1; i++ {
		for j := i + 1; j < len(s.particles); j++ {
			a, b := s.particles[i], s.particles[j]
			if a.ID > b.ID {
				a, b = b, a
			}
			if d := b.Pos.Sub(a.Pos).Len(); d < s.cfg.ConnectionRadius {
				s.emit(a, b, d)
			}
		}
	}
}

func (s *Simulation) emit(a, b *Particle, dist float64) {
	strength := 1 - dist/s.cfg.ConnectionRadius
	s.conns = append(s.conns, Connection{
		A:      a,
		B:      b,
		Dist:   dist,
		Alpha:  strength,
		Weight: strength * s.cfg.LineWidth,
	})
}

// rootBoundary covers the domain closed on all sides. The domain is padded
// by one unit so a particle sitting exactly on the far edge (where the edge
// snap can leave it) is still accepted by the half-open containment rule.
func (s *Simulation) rootBoundary() Boundary {
	return NewBoundary(s.domain[0]/2, s.domain[1]/2, s.domain[0]/2+1, s.domain[1]/2+1)
}

// Add inserts n new particles at random positions.
func (s *Simulation) Add(n int) {
	for i := 0; i < n; i++ {
		s.particles = append(s.particles, NewParticle(s.nextID, s.domain, s.cfg))
		s.nextID++
	}
}

// Remove deletes the n most recently added particles. It is a no-op when it
// would bring the population to or below the configured floor.
func (s *Simulation) Remove(n int) {
	if len(s.particles)-n <= s.cfg.MinCount {
		return
	}
	for i := len(s.particles) - n; i < len(s.particles); i++ {
		s.particles[i] = nil
	}
	s.particles = s.particles[:len(s.particles)-n]
}

// Reset discards the population and recreates the default one.
func (s *Simulation) Reset() {
	s.particles = s.particles[:0]
	s.Add(s.cfg.InitialCount)
}

// Restore replaces the population and frame counter with a previously saved
// state. ID assignment resumes past the highest restored identity so later
// Adds stay unique.
func (s *Simulation) Restore(particles []*Particle, frame int) {
	s.particles = particles
	s.frame = frame
	s.nextID = 0
	for _, p := range particles {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
}

// Resize updates the domain. Takes effect on the next Step; particles
// outside the new domain are snapped by their own edge handling.
func (s *Simulation) Resize(width, height float64) {
	s.domain = mgl64.Vec2{width, height}
}

// Particles exposes the population for rendering. Callers must not mutate
// it.
func (s *Simulation) Particles() []*Particle { return s.particles }

// Count returns the population size.
func (s *Simulation) Count() int { return len(s.particles) }

// Frame returns the number of completed steps.
func (s *Simulation) Frame() int { return s.frame }

// Domain returns the current domain size.
func (s *Simulation) Domain() mgl64.Vec2 { return s.domain }
