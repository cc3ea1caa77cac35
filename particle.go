package plexus

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

/*

motion model. a stylized integrator, not physics: acceleration is rebuilt
from scratch every frame from the pointer force plus random jitter,
velocity is speed-capped and decays under drag, and particles leaving the
domain snap to the opposite edge.

*/

// Pointer is the externally supplied cursor state driving attraction or
// repulsion for one frame.
type Pointer struct {
	Pos    mgl64.Vec2
	Active bool // pressed: the force is applied
	Repel  bool // push particles away instead of pulling them in
}

// A Particle owns its kinematic and cosmetic state and advances itself one
// frame at a time. It never touches other particles.
type Particle struct {
	ID  uint64 // stable identity assigned at creation, breaks pair symmetry
	Pos mgl64.Vec2
	Vel mgl64.Vec2
	acc mgl64.Vec2 // rebuilt each Update, never carried across frames

	Hue      float64 // degrees, [0,360)
	BaseSize float64
	Size     float64 // oscillates around BaseSize
	phase    float64 // fixed pulse offset so particles don't throb in sync
}

// NewParticle creates a particle with the given identity at a uniformly
// random position in the domain, with a small random initial velocity.
func NewParticle(id uint64, domain mgl64.Vec2, cfg *Config) *Particle {
	return &Particle{
		ID: id,
		Pos: mgl64.Vec2{
			rand.Float64() * domain[0],
			rand.Float64() * domain[1],
		},
		Vel: mgl64.Vec2{
			rand.Float64()*2 - 1,
			rand.Float64()*2 - 1,
		},
		Hue:      rand.Float64() * 360,
		BaseSize: cfg.SizeMin + rand.Float64()*(cfg.SizeMax-cfg.SizeMin),
		phase:    rand.Float64() * 2 * math.Pi,
	}
}

// Update advances the particle by one frame.
func (p *Particle) Update(frame int, ptr Pointer, domain mgl64.Vec2, cfg *Config) {
	p.acc = mgl64.Vec2{}

	if ptr.Active {
		to := ptr.Pos.Sub(p.Pos)
		if d := to.Len(); d > cfg.PointerEpsilon {
			// strength falls off with distance but is capped so a particle
			// sitting on the pointer is not flung away
			f := math.Min(cfg.PointerStrength/d, cfg.PointerMaxForce)
			if ptr.Repel {
				f = -f
			}
			p.acc = to.Mul(f / d)
		}
	}

	// jitter is applied every frame, pointer or not
	theta := rand.Float64() * 2 * math.Pi
	sin, cos := math.Sincos(theta)
	p.acc = p.acc.Add(mgl64.Vec2{cos, sin}.Mul(cfg.Jitter))

	p.Vel = p.Vel.Add(p.acc)
	if speed := p.Vel.Len(); speed > cfg.MaxSpeed {
		p.Vel = p.Vel.Mul(cfg.MaxSpeed / speed)
	}
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel = p.Vel.Mul(cfg.Drag)

	// edge handling is a discrete snap to the opposite side, not a modulo
	// wrap: overshoot beyond the boundary is discarded
	for axis := 0; axis < 2; axis++ {
		if p.Pos[axis] < 0 {
			p.Pos[axis] = domain[axis]
		} else if p.Pos[axis] > domain[axis] {
			p.Pos[axis] = 0
		}
	}

	p.Size = p.BaseSize + math.Sin(float64(frame)*cfg.PulseSpeed+p.phase)*p.BaseSize*0.3
	p.Hue = math.Mod(p.Hue+cfg.HueStep, 360)
}
