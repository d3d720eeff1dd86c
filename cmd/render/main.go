package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"raykernel/internal/config"
	"raykernel/internal/render"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("output", "", "Output PPM path (default: silhouette.ppm)")
	size := flag.Int("size", 0, "Canvas width and height in pixels (default: 100)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Output:     *output,
		CanvasSize: *size,
		Workers:    *workers,
	})

	transform, err := cfg.Transform()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sphere silhouette → PPM\n")
	fmt.Printf("Canvas: %dx%d, Workers: %d, Transforms: %d\n", cfg.CanvasSize, cfg.CanvasSize, cfg.Workers, len(cfg.Transforms))
	fmt.Printf("Output: %s\n", cfg.Output)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	res, err := render.Run(ctx, render.Config{
		CanvasSize: cfg.CanvasSize,
		WallZ:      cfg.WallZ,
		WallSize:   cfg.WallSize,
		Eye:        cfg.EyePoint(),
		Color:      cfg.SilhouetteColor(),
		Transform:  transform,
		Workers:    cfg.Workers,
		Progress:   os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.2fs\n", elapsed.Seconds())
	fmt.Printf("Rays: %d, Hits: %d\n", res.Rays, res.Hits)

	if err := writePPM(cfg.Output, res); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", cfg.Output)
}

func writePPM(path string, res render.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := res.Canvas.WritePPM(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
