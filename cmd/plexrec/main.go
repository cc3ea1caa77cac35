// Command plexrec runs the link-field simulation headless and records the
// frames it produces. Frames can be sunk to a SQLite database, to PNG
// images, or both; the final simulation state can be saved and reloaded to
// continue a run.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/plexsim/plexus"
)

func main() {
	frames := flag.Int("frames", 600, "number of frames to record")
	numParticles := flag.Int("n", 0, "particle count (0 = config default)")
	width := flag.Float64("w", 1024, "domain width")
	height := flag.Float64("h", 768, "domain height")
	configFile := flag.String("config", "", "TOML config file")
	dbFile := flag.String("db", "", "record frames to this sqlite database")
	pngDir := flag.String("png", "", "render frames to PNGs in this directory")
	stateFile := flag.String("state", "", "simulation state to load")
	stateSave := flag.Bool("save", false, "save the final simulation state")
	brute := flag.Bool("brute", false, "use the all-pairs scan instead of the quadtree")
	repel := flag.Bool("repel", false, "scripted pointer repels instead of attracts")
	flag.Parse()

	cfg := plexus.DefaultConfig
	if *configFile != "" {
		if err := loadConfig(*configFile, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}
	if *numParticles > 0 {
		cfg.InitialCount = *numParticles
	}

	sim := plexus.NewSimulation(&cfg, *width, *height)
	sim.UseTree = !*brute

	startFrame := 0
	if *stateFile != "" {
		saved := importState(*stateFile)
		sim.Restore(saved.particles(), saved.Frame)
		startFrame = saved.Frame
	}

	// frame sink workers; each sink gets its own channel so every frame
	// reaches every sink
	var sinks []chan *frameJob
	wg := sync.WaitGroup{}
	if *dbFile != "" {
		ch := make(chan *frameJob, 32)
		sinks = append(sinks, ch)
		db := opendb(*dbFile)
		defer db.Close()
		defer createIndices(db)
		wg.Add(1)
		go frameToSqlite(db, &wg, ch)
	}
	if *pngDir != "" {
		if err := os.MkdirAll(*pngDir, 0755); err != nil {
			panic(err)
		}
		ch := make(chan *frameJob, 32)
		sinks = append(sinks, ch)
		const workers = 2
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go frameToImages(*pngDir, int(*width), int(*height), &wg, ch)
		}
	}

	fmt.Printf("frames: %d\nparticles: %d\ndomain: %.0fx%.0f\nindex: %t\nrepel: %t\n",
		*frames, sim.Count(), *width, *height, sim.UseTree, *repel)

	var lastJob *frameJob
	start := time.Now()
	for frame := startFrame; frame < startFrame+*frames; frame++ {
		sim.Pointer = scriptedPointer(frame, *width, *height, *repel)
		conns := sim.Step()

		lastJob = snapshot(sim, conns)
		for _, ch := range sinks {
			ch <- lastJob
		}

		avgMs := time.Since(start).Milliseconds() / int64(frame-startFrame+1)
		fmt.Printf("%.1f%%, %d particles, %d links, %dms/frame            \r",
			100*float64(frame-startFrame+1)/float64(*frames),
			sim.Count(), len(conns), avgMs)
	}
	for _, ch := range sinks {
		close(ch)
	}
	wg.Wait()
	fmt.Printf("\nDone. Took %s\n", time.Since(start).Truncate(time.Millisecond))

	if *stateSave && lastJob != nil {
		exportState(lastJob)
	}
}

// scriptedPointer orbits the domain center so headless runs still exercise
// the attraction/repulsion force.
func scriptedPointer(frame int, w, h float64, repel bool) plexus.Pointer {
	r := 0.3 * math.Min(w, h)
	theta := float64(frame) * 0.01
	sin, cos := math.Sincos(theta)
	return plexus.Pointer{
		Pos:    mgl64.Vec2{w/2 + r*cos, h/2 + r*sin},
		Active: true,
		Repel:  repel,
	}
}
