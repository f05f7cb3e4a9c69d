// Command clothsim builds a cloth from the configured outline and runs it
// for a number of ticks without a window, reporting what happened.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/fatih/color"
	"github.com/jakecoffman/cloth"
	"github.com/jakecoffman/cloth/config"
	"github.com/jakecoffman/cloth/render"
)

func main() {
	envFile := flag.String("env", "", "dotenv file with CLOTH_ settings")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal(err)
	}

	mesh, err := setup(cfg)
	if err != nil {
		log.Fatal(err)
	}
	buffer := mesh.Renderer.(*render.Buffer)

	info := color.New(color.FgCyan)
	warn := color.New(color.FgYellow)

	info.Printf("built %d faces, %d vertices, %d links, %d triangles\n",
		mesh.FaceCount(), mesh.VertexCount(), mesh.LinkCount(), buffer.Triangles())

	outline := make([]cloth.Vector, len(cfg.Outline))
	for i, p := range cfg.Outline {
		outline[i] = cloth.Vector{X: p[0], Y: p[1]}
	}
	want := cloth.PolygonArea(outline)
	if got := mesh.Area(); math.Abs(got-want) > 1e-6*math.Max(1, math.Abs(want)) {
		warn.Printf("face area %f does not match outline area %f\n", got, want)
	}

	for i := 0; i < cfg.Ticks; i++ {
		mesh.Advance()
	}

	lo, hi := buffer.Bounds()
	info.Printf("after %d ticks: bounds %v - %v, buffer version %d\n", cfg.Ticks, lo, hi, buffer.Version)
}

func setup(cfg config.Config) (*cloth.Mesh, error) {
	points := make([]cloth.Vector, len(cfg.Outline))
	poly := make([]int, len(cfg.Outline))
	for i, p := range cfg.Outline {
		points[i] = cloth.Vector{X: p[0], Y: p[1]}
		poly[i] = i
	}

	mesh := cloth.NewMesh()
	mesh.Iterations = cfg.Iterations
	mesh.Damping = cfg.Damping
	mesh.Gravity = cfg.Gravity
	mesh.Jitter = cfg.Jitter
	mesh.Seed(cfg.Seed)
	mesh.Renderer = render.NewBuffer()

	if err := mesh.Build(points, [][]int{poly}, cfg.SegmentLength, cfg.TensileStrength); err != nil {
		return nil, err
	}
	for _, i := range cfg.Pinned {
		if err := mesh.SetPinned(i, true); err != nil {
			return nil, err
		}
	}
	return mesh, nil
}
