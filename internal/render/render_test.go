package render

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"raykernel/internal/mathutil"
)

func testConfig() Config {
	return Config{
		CanvasSize: 20,
		WallZ:      10,
		WallSize:   7,
		Eye:        mathutil.Point(0, 0, -5),
		Color:      mathutil.Color(1, 0, 0),
		Workers:    4,
	}
}

func TestRunSilhouette(t *testing.T) {
	res, err := Run(context.Background(), testConfig())
	if err != nil {
		t.Fatal(err)
	}

	c := res.Canvas
	red := mathutil.Color(1, 0, 0)
	black := mathutil.Color(0, 0, 0)

	if !c.PixelAt(10, 10).Equal(red) {
		t.Errorf("center pixel = %v, want hit", c.PixelAt(10, 10))
	}
	for _, p := range [][2]int{{0, 0}, {19, 0}, {0, 19}, {19, 19}} {
		if !c.PixelAt(p[0], p[1]).Equal(black) {
			t.Errorf("corner %v = %v, want miss", p, c.PixelAt(p[0], p[1]))
		}
	}
	if res.Rays != 400 {
		t.Errorf("Rays = %d, want 400", res.Rays)
	}
	if res.Hits <= 0 || res.Hits >= res.Rays {
		t.Errorf("Hits = %d", res.Hits)
	}

	var painted int64
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if c.PixelAt(x, y).Equal(red) {
				painted++
			}
		}
	}
	if painted != res.Hits {
		t.Errorf("painted %d pixels, counted %d hits", painted, res.Hits)
	}
}

func TestRunTransformedSphere(t *testing.T) {
	base, err := Run(context.Background(), testConfig())
	if err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.Transform = mathutil.Scaling(0.5, 1, 1)
	squashed, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if squashed.Hits >= base.Hits {
		t.Errorf("squashed sphere hits %d, unit sphere %d", squashed.Hits, base.Hits)
	}

	cfg.Transform = mathutil.Translation(100, 0, 0)
	moved, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if moved.Hits != 0 {
		t.Errorf("sphere moved out of view still hit %d times", moved.Hits)
	}
}

func TestRunSingleWorkerMatchesPool(t *testing.T) {
	cfg := testConfig()
	cfg.Workers = 1
	one, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Workers = 8
	many, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if one.Canvas.PPM() != many.Canvas.PPM() {
		t.Error("worker count changed the image")
	}
}

func TestRunSingularTransform(t *testing.T) {
	cfg := testConfig()
	cfg.Transform = mathutil.Scaling(0, 1, 1)
	if _, err := Run(context.Background(), cfg); !errors.Is(err, mathutil.ErrNotInvertible) {
		t.Fatalf("expected ErrNotInvertible, got %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, testConfig()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunProgressWriterOptional(t *testing.T) {
	cfg := testConfig()
	var buf bytes.Buffer
	cfg.Progress = &buf
	if _, err := Run(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}
}
