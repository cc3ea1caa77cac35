package plexus

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSim builds a simulation whose population is exactly the given
// positions, with jitter off so connection tests see a static layout.
func fixedSim(positions []mgl64.Vec2, w, h float64) *Simulation {
	cfg := DefaultConfig
	cfg.Jitter = 0
	cfg.InitialCount = 0
	cfg.MinCount = 0
	s := NewSimulation(&cfg, w, h)
	for _, pos := range positions {
		s.particles = append(s.particles, &Particle{ID: s.nextID, Pos: pos})
		s.nextID++
	}
	return s
}

func pairKey(c Connection) string {
	return fmt.Sprintf("%d-%d", c.A.ID, c.B.ID)
}

func connSet(conns []Connection) map[string]bool {
	set := make(map[string]bool, len(conns))
	for _, c := range conns {
		set[pairKey(c)] = true
	}
	return set
}

// The quadtree path and the all-pairs scan must produce the same connection
// set for the same particle state.
func TestIndexedMatchesAllPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		var positions []mgl64.Vec2
		n := rng.Intn(200) + 2
		for i := 0; i < n; i++ {
			positions = append(positions, mgl64.Vec2{
				rng.Float64() * 800,
				rng.Float64() * 600,
			})
		}

		s := fixedSim(positions, 800, 600)
		s.conns = s.conns[:0]
		s.connectIndexed()
		indexed := connSet(s.conns)

		s.conns = s.conns[:0]
		s.connectAllPairs()
		brute := connSet(s.conns)

		assert.Equal(t, brute, indexed, "trial %d with %d particles", trial, n)
	}
}

func TestPairUniqueness(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	var positions []mgl64.Vec2
	for i := 0; i < 150; i++ {
		// dense cluster to force many connections
		positions = append(positions, mgl64.Vec2{
			rng.Float64() * 300,
			rng.Float64() * 300,
		})
	}
	s := fixedSim(positions, 800, 600)
	s.conns = s.conns[:0]
	s.connectIndexed()

	seen := map[string]bool{}
	for _, c := range s.conns {
		assert.NotEqual(t, c.A.ID, c.B.ID, "self connection")
		assert.Less(t, c.A.ID, c.B.ID, "pair emitted from its lower-ID end")
		key := pairKey(c)
		assert.False(t, seen[key], "duplicate pair %s", key)
		seen[key] = true
	}
}

func TestTwoParticleScenario(t *testing.T) {
	s := fixedSim([]mgl64.Vec2{{0, 0}, {50, 0}}, 800, 600)
	s.conns = s.conns[:0]
	s.connectIndexed()
	require.Len(t, s.conns, 1)
	c := s.conns[0]
	assert.InDelta(t, 50.0, c.Dist, 1e-12)
	assert.Greater(t, c.Alpha, 0.0)
	assert.Less(t, c.Alpha, 1.0)
	assert.InDelta(t, 1-50.0/s.cfg.ConnectionRadius, c.Alpha, 1e-12)

	far := fixedSim([]mgl64.Vec2{{0, 0}, {200, 0}}, 800, 600)
	far.conns = far.conns[:0]
	far.connectIndexed()
	assert.Empty(t, far.conns)
}

// A particle left exactly on the domain edge by the snap must still be
// indexed: the root boundary treats the domain as closed.
func TestEdgeParticleIndexed(t *testing.T) {
	s := fixedSim([]mgl64.Vec2{{800, 300}, {790, 300}}, 800, 600)
	s.conns = s.conns[:0]
	s.connectIndexed()
	assert.Len(t, s.conns, 1, "edge particle must not be dropped from the index")
}

func TestStepBothPathsAgreeAfterMotion(t *testing.T) {
	cfg := DefaultConfig
	cfg.Jitter = 0
	cfg.InitialCount = 100
	s := NewSimulation(&cfg, 800, 600)
	for i := 0; i < 5; i++ {
		s.Step()
	}

	// freeze motion and compare both paths on the same state
	s.conns = s.conns[:0]
	s.connectIndexed()
	indexed := connSet(s.conns)
	s.conns = s.conns[:0]
	s.connectAllPairs()
	assert.Equal(t, connSet(s.conns), indexed)
}

func TestAddRemoveReset(t *testing.T) {
	cfg := DefaultConfig
	cfg.InitialCount = 50
	cfg.MinCount = 10
	s := NewSimulation(&cfg, 800, 600)
	require.Equal(t, 50, s.Count())

	s.Add(25)
	assert.Equal(t, 75, s.Count())

	s.Remove(60)
	assert.Equal(t, 15, s.Count())

	// dropping to the floor or below is refused outright
	s.Remove(5)
	assert.Equal(t, 15, s.Count(), "remove to exactly the floor is a no-op")
	s.Remove(100)
	assert.Equal(t, 15, s.Count())

	s.Reset()
	assert.Equal(t, 50, s.Count())
}

// Identities stay unique and stable across add/remove/reset churn.
func TestStableIdentity(t *testing.T) {
	cfg := DefaultConfig
	cfg.InitialCount = 20
	cfg.MinCount = 5
	s := NewSimulation(&cfg, 800, 600)

	s.Remove(10)
	s.Add(10)
	s.Reset()
	s.Add(7)

	seen := map[uint64]bool{}
	for _, p := range s.Particles() {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestResizeAppliesNextStep(t *testing.T) {
	cfg := DefaultConfig
	cfg.Jitter = 0
	cfg.InitialCount = 0
	cfg.MinCount = 0
	s := NewSimulation(&cfg, 800, 600)
	s.particles = append(s.particles, &Particle{ID: 0, Pos: mgl64.Vec2{700, 300}})

	s.Resize(400, 300)
	s.Step()
	p := s.Particles()[0]
	assert.LessOrEqual(t, p.Pos[0], 400.0, "outside the shrunk domain after snap")
}

func TestStepReturnsRenderableState(t *testing.T) {
	cfg := DefaultConfig
	cfg.InitialCount = 30
	s := NewSimulation(&cfg, 800, 600)
	conns := s.Step()

	assert.Equal(t, 1, s.Frame())
	assert.Equal(t, 30, s.Count())
	for _, c := range conns {
		assert.Less(t, c.Dist, cfg.ConnectionRadius)
		assert.GreaterOrEqual(t, c.Alpha, 0.0)
		assert.LessOrEqual(t, c.Weight, cfg.LineWidth)
	}
	for _, p := range s.Particles() {
		assert.GreaterOrEqual(t, p.Hue, 0.0)
		assert.Less(t, p.Hue, 360.0)
	}
}
