package render

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"raykernel/internal/canvas"
	"raykernel/internal/geom"
	"raykernel/internal/mathutil"
)

// Config holds everything one silhouette render needs.
type Config struct {
	CanvasSize int
	WallZ      float64 // z of the wall the silhouette is projected onto
	WallSize   float64 // world-space width and height of the wall
	Eye        mathutil.Tuple
	Color      mathutil.Tuple
	Transform  mathutil.Matrix // sphere transform; zero value means identity
	Workers    int
	Progress   io.Writer // nil disables progress output
}

// Result holds the rendered canvas and ray statistics.
type Result struct {
	Canvas *canvas.Canvas
	Rays   int64
	Hits   int64
}

// Run casts one ray per pixel from the eye through the wall and paints every
// pixel whose ray hits the transformed unit sphere. Rows are spread over a
// worker pool; each row is written by exactly one worker.
func Run(ctx context.Context, cfg Config) (Result, error) {
	xf := cfg.Transform
	if xf.Size() == 0 {
		xf = mathutil.Identity()
	}
	inv, err := xf.Inverse()
	if err != nil {
		return Result{}, fmt.Errorf("render: sphere transform: %w", err)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	c := canvas.New(cfg.CanvasSize, cfg.CanvasSize)
	arena := geom.NewArena()
	sphere := arena.Add(geom.NewSphere())

	s := &surface{
		canvas:    c,
		arena:     arena,
		shape:     sphere,
		inv:       inv,
		eye:       cfg.Eye,
		color:     cfg.Color,
		wallZ:     cfg.WallZ,
		half:      cfg.WallSize / 2,
		pixelSize: cfg.WallSize / float64(max(cfg.CanvasSize, 1)),
	}

	total := c.Height
	var rowsDone atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := rowsDone.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f rows/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowChan {
				s.castRow(y)
				rowsDone.Add(1)
			}
		}()
	}

	// Send work
	var cancelled error
dispatch:
	for y := 0; y < total; y++ {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break dispatch
		case rowChan <- y:
		}
	}
	close(rowChan)

	wg.Wait()
	close(done)

	if cancelled != nil {
		return Result{}, cancelled
	}
	return Result{
		Canvas: c,
		Rays:   s.rays.Load(),
		Hits:   s.hits.Load(),
	}, nil
}

// surface holds the per-render state shared by all workers. Everything but
// the counters is read-only once rendering starts.
type surface struct {
	canvas    *canvas.Canvas
	arena     *geom.Arena
	shape     geom.ShapeID
	inv       mathutil.Matrix
	eye       mathutil.Tuple
	color     mathutil.Tuple
	wallZ     float64
	half      float64
	pixelSize float64

	rays atomic.Int64
	hits atomic.Int64
}

func (s *surface) castRow(y int) {
	worldY := s.half - s.pixelSize*float64(y)
	var rays, hits int64
	for x := 0; x < s.canvas.Width; x++ {
		worldX := -s.half + s.pixelSize*float64(x)
		target := mathutil.Point(worldX, worldY, s.wallZ)

		dir, err := target.Sub(s.eye).Normalize()
		if err != nil {
			// eye lies on the wall; nothing to cast
			continue
		}
		rays++

		r := geom.NewRay(s.eye, dir).Transform(s.inv)
		if _, ok := geom.Hit(s.arena.Intersect(s.shape, r)); ok {
			s.canvas.WritePixel(x, y, s.color)
			hits++
		}
	}
	s.rays.Add(rays)
	s.hits.Add(hits)
}
