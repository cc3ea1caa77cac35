package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
)

/*

image output section. plain CPU rasterizer: links as Bresenham lines with
distance-faded color, particles as a dim glow disc under a solid core.

*/

// frameToImages renders frame jobs to PNG files in dir until ch closes.
func frameToImages(dir string, width, height int, wg *sync.WaitGroup, ch chan *frameJob) {
	defer wg.Done()

	for job := range ch {
		film := image.NewRGBA(image.Rect(0, 0, width, height))
		// black background
		for i := 3; i < len(film.Pix); i += 4 {
			film.Pix[i] = 0xff
		}

		for _, l := range job.Links {
			plotline(film, hueColor(l.Hue, l.Alpha),
				int(l.X1), int(l.Y1), int(l.X2), int(l.Y2))
		}
		for _, p := range job.Particles {
			x, y := int(p.X), int(p.Y)
			plotcirclefilled(film, hueColor(p.Hue, 0.15), x, y, int(p.Size*2))
			plotcirclefilled(film, hueColor(p.Hue, 1), x, y, int(p.Size))
		}

		file, err := os.Create(filepath.Join(dir, fmt.Sprintf("%010d.png", job.Frame)))
		if err != nil {
			panic(err)
		}
		png.Encode(file, film)
		file.Close()
	}
}

// hueColor converts a hue in degrees and an alpha to a premultiplied RGBA.
func hueColor(hue, alpha float64) color.Color {
	r, g, b := colorful.Hsv(hue, 0.8, 1).RGB255()
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: 255,
	}
}

// plotline draws a simple line on img from (x0,y0) to (x1,y1).
//
// This is basically a copy of a version of Bresenham's line algorithm
// from https://en.wikipedia.org/wiki/Bresenham%27s_line_algorithm.
func plotline(img *image.RGBA, c color.Color, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// abs cuz no integer abs function in the Go standard library.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// plotcirclefilled draws a filled circle at (x0,y0) of radius r.
func plotcirclefilled(img *image.RGBA, c color.Color, x0, y0, r int) {
	rsqr := float64(r * r)
	for y := r; y >= 0; y-- {
		xright := int(math.Sqrt(rsqr - float64(y*y)))
		for x := -xright; x <= xright; x++ {
			img.Set(x0+x, y0+y, c)
			img.Set(x0+x, y0-y, c)
		}
	}
}
