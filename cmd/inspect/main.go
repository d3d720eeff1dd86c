package main

import (
	"flag"
	"fmt"
	"os"

	"raykernel/internal/config"
	"raykernel/internal/geom"
	"raykernel/internal/mathutil"
)

// inspect prints the sphere transform from a config file and traces the
// ray through the center of the wall.
func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})

	m, err := cfg.Transform()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transforms: %d\n", len(cfg.Transforms))
	for i, step := range cfg.Transforms {
		fmt.Printf("  [%d] %s %v\n", i, step.Op, step.Args)
	}
	fmt.Println("Matrix:")
	printMatrix(m)
	fmt.Printf("Determinant: %.5f\n", m.Determinant())

	inv, err := m.Inverse()
	if err != nil {
		fmt.Printf("Inverse: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Inverse:")
	printMatrix(inv)

	eye := cfg.EyePoint()
	dir, err := mathutil.Point(0, 0, cfg.WallZ).Sub(eye).Normalize()
	if err != nil {
		fmt.Printf("Center ray: %v\n", err)
		os.Exit(1)
	}

	arena := geom.NewArena()
	sphere := arena.Add(geom.NewSphere())
	r := geom.NewRay(eye, dir)
	xs := arena.Intersect(sphere, r.Transform(inv))

	fmt.Printf("Center ray: origin=%v direction=%v\n", r.Origin, r.Direction)
	fmt.Printf("  Intersections: %d\n", len(xs))
	for _, x := range xs {
		fmt.Printf("    t=%.5f at %v\n", x.T, r.Position(x.T))
	}
	if hit, ok := geom.Hit(xs); ok {
		fmt.Printf("  Hit: t=%.5f\n", hit.T)
	} else {
		fmt.Println("  Hit: none")
	}
}

func printMatrix(m mathutil.Matrix) {
	for r := 0; r < m.Size(); r++ {
		fmt.Print("  ")
		for c := 0; c < m.Size(); c++ {
			fmt.Printf("%10.5f", m.At(r, c))
		}
		fmt.Println()
	}
}
