// Command plexus runs an interactive particle link-field visualization.
//
// Usage
//
//	plexus [config_file]
//
// The optional argument is the path to a TOML config file; without it the
// defaults are used.
//
// Controls
//
// Hold the left mouse button to attract particles to the cursor (or repel
// them, after pressing R). Up/Down arrows add and remove particles, T
// toggles the quadtree index on and off, Space resets the population, and
// Esc quits.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/plexsim/plexus"
)

const usage = `Usage: plexus [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, defaults are used.
`

const particleBatch = 10 // particles added/removed per key press

var errQuit = errors.New("quit")

type game struct {
	sim   *plexus.Simulation
	conns []plexus.Connection
	w, h  int
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	// structural commands and mode toggles apply between steps
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.sim.Add(particleBatch)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.sim.Remove(particleBatch)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.sim.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.sim.UseTree = !g.sim.UseTree
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.sim.Pointer.Repel = !g.sim.Pointer.Repel
	}

	mx, my := ebiten.CursorPosition()
	g.sim.Pointer.Pos = mgl64.Vec2{float64(mx), float64(my)}
	g.sim.Pointer.Active = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	g.conns = g.sim.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for _, c := range g.conns {
		clr := hueColor(c.A.Hue, c.Alpha)
		vector.StrokeLine(screen,
			float32(c.A.Pos[0]), float32(c.A.Pos[1]),
			float32(c.B.Pos[0]), float32(c.B.Pos[1]),
			float32(c.Weight), clr, true)
	}

	for _, p := range g.sim.Particles() {
		x, y := float32(p.Pos[0]), float32(p.Pos[1])
		// soft glow under a solid core
		vector.DrawFilledCircle(screen, x, y, float32(p.Size)*2, hueColor(p.Hue, 0.15), true)
		vector.DrawFilledCircle(screen, x, y, float32(p.Size), hueColor(p.Hue, 1), true)
	}

	mode := "attract"
	if g.sim.Pointer.Repel {
		mode = "repel"
	}
	index := "quadtree"
	if !g.sim.UseTree {
		index = "brute force"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"particles: %d  links: %d  fps: %.1f\nmode: %s  index: %s",
		g.sim.Count(), len(g.conns), ebiten.ActualFPS(), mode, index))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.sim.Resize(float64(g.w), float64(g.h))
	}
	return outsideWidth, outsideHeight
}

// hueColor converts a hue in degrees and an alpha to a premultiplied RGBA.
func hueColor(hue, alpha float64) color.Color {
	r, g, b := colorful.Hsv(hue, 0.8, 1).RGB255()
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: uint8(255 * alpha),
	}
}

func main() {
	conf := DefaultConf
	if len(os.Args) > 1 {
		var err error
		conf, err = ParseConfig(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n%s", err, usage)
			os.Exit(1)
		}
	}

	sim := plexus.NewSimulation(&conf.Sim, float64(conf.Width), float64(conf.Height))
	ebiten.SetWindowSize(conf.Width, conf.Height)
	ebiten.SetWindowTitle("plexus")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{sim: sim, w: conf.Width, h: conf.Height}
	if err := ebiten.RunGame(g); err != nil && err != errQuit {
		log.Fatal(err)
	}
}
