package main

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/plexsim/plexus"
)

/*

frame snapshots and simulation state save/restore

*/

// particleState is a value snapshot of one particle, small enough to ship
// through the sink channel and compact in gob form.
type particleState struct {
	ID           uint64
	X, Y, Vx, Vy float64
	Size, Hue    float64
}

// linkState is a value snapshot of one connection.
type linkState struct {
	A, B           uint64
	X1, Y1, X2, Y2 float64
	Hue            float64
	Dist           float64
	Alpha, Weight  float64
}

// a frameJob carries everything the sinks need for one frame.
type frameJob struct {
	Frame     int
	Particles []particleState
	Links     []linkState
}

// snapshot copies the mutable simulation state into an immutable job the
// sink workers can consume while the next frame runs.
func snapshot(sim *plexus.Simulation, conns []plexus.Connection) *frameJob {
	job := &frameJob{
		Frame:     sim.Frame(),
		Particles: make([]particleState, 0, sim.Count()),
		Links:     make([]linkState, 0, len(conns)),
	}
	for _, p := range sim.Particles() {
		job.Particles = append(job.Particles, particleState{
			ID: p.ID,
			X:  p.Pos[0], Y: p.Pos[1],
			Vx: p.Vel[0], Vy: p.Vel[1],
			Size: p.Size, Hue: p.Hue,
		})
	}
	for _, c := range conns {
		job.Links = append(job.Links, linkState{
			A: c.A.ID, B: c.B.ID,
			X1: c.A.Pos[0], Y1: c.A.Pos[1],
			X2: c.B.Pos[0], Y2: c.B.Pos[1],
			Hue:  c.A.Hue,
			Dist: c.Dist, Alpha: c.Alpha, Weight: c.Weight,
		})
	}
	return job
}

// particles rebuilds live particles from a saved frame.
func (job *frameJob) particles() []*plexus.Particle {
	out := make([]*plexus.Particle, 0, len(job.Particles))
	for _, s := range job.Particles {
		out = append(out, &plexus.Particle{
			ID:       s.ID,
			Pos:      mgl64.Vec2{s.X, s.Y},
			Vel:      mgl64.Vec2{s.Vx, s.Vy},
			Hue:      s.Hue,
			Size:     s.Size,
			BaseSize: s.Size,
		})
	}
	return out
}

func exportState(job *frameJob) {
	fname := fmt.Sprintf("%010d.state", job.Frame)
	file, err := os.Create(fname)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(*job); err != nil {
		os.Remove(fname)
		panic(err)
	}
	fmt.Printf("saved state to %s\n", fname)
}

func importState(filename string) *frameJob {
	file, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	var job frameJob
	if err := gob.NewDecoder(file).Decode(&job); err != nil {
		panic(err)
	}
	return &job
}

// loadConfig overlays a TOML file onto cfg.
func loadConfig(path string, cfg *plexus.Config) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}
