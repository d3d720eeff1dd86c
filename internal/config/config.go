package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"raykernel/internal/mathutil"
)

var (
	// ErrUnknownTransform is returned for a transform step with an unrecognized op.
	ErrUnknownTransform = errors.New("config: unknown transform op")

	// ErrBadArgs is returned when a transform step has the wrong number of args.
	ErrBadArgs = errors.New("config: wrong number of transform args")
)

// Config holds the silhouette render settings.
type Config struct {
	// Paths
	Output string `json:"output"`

	// Render settings
	CanvasSize int         `json:"canvas_size"`
	WallZ      float64     `json:"wall_z"`
	WallSize   float64     `json:"wall_size"`
	Eye        *[3]float64 `json:"eye"`
	Color      *[3]float64 `json:"color"`
	Workers    int         `json:"workers"`

	// Transforms are applied to the unit sphere in list order.
	Transforms []TransformStep `json:"transforms"`

	dir string // directory of the loaded file, for relative paths
}

// TransformStep is one entry of the sphere's transform list.
// Rotation angles are in degrees.
type TransformStep struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output     string
	CanvasSize int
	Workers    int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Output != "" {
		c.Output = flags.Output
	} else if c.Output != "" && c.dir != "" && !filepath.IsAbs(c.Output) {
		// Paths from the file are relative to the file
		c.Output = filepath.Join(c.dir, c.Output)
	}
	if flags.CanvasSize > 0 {
		c.CanvasSize = flags.CanvasSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Output == "" {
		c.Output = "silhouette.ppm"
	}
	if c.CanvasSize <= 0 {
		c.CanvasSize = 100
	}
	if c.WallZ == 0 {
		c.WallZ = 10
	}
	if c.WallSize <= 0 {
		c.WallSize = 7
	}
	if c.Eye == nil {
		c.Eye = &[3]float64{0, 0, -5}
	}
	if c.Color == nil {
		c.Color = &[3]float64{1, 0.2, 1}
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// EyePoint returns the ray origin. Call after Resolve.
func (c *Config) EyePoint() mathutil.Tuple {
	return mathutil.Point(c.Eye[0], c.Eye[1], c.Eye[2])
}

// SilhouetteColor returns the color painted where rays hit. Call after Resolve.
func (c *Config) SilhouetteColor() mathutil.Tuple {
	return mathutil.Color(c.Color[0], c.Color[1], c.Color[2])
}

// Transform composes the transform list into a single matrix.
func (c *Config) Transform() (mathutil.Matrix, error) {
	ms := make([]mathutil.Matrix, 0, len(c.Transforms))
	for i, step := range c.Transforms {
		m, err := step.Matrix()
		if err != nil {
			return mathutil.Matrix{}, fmt.Errorf("config: transform %d: %w", i, err)
		}
		ms = append(ms, m)
	}
	return mathutil.Chain(ms...), nil
}

// Matrix builds the 4×4 matrix for one step.
func (s TransformStep) Matrix() (mathutil.Matrix, error) {
	want := map[string]int{
		"translate": 3,
		"scale":     3,
		"rotate_x":  1,
		"rotate_y":  1,
		"rotate_z":  1,
		"shear":     6,
	}
	n, ok := want[s.Op]
	if !ok {
		return mathutil.Matrix{}, fmt.Errorf("%w %q", ErrUnknownTransform, s.Op)
	}
	if len(s.Args) != n {
		return mathutil.Matrix{}, fmt.Errorf("%w: %s takes %d, got %d", ErrBadArgs, s.Op, n, len(s.Args))
	}

	a := s.Args
	switch s.Op {
	case "translate":
		return mathutil.Translation(a[0], a[1], a[2]), nil
	case "scale":
		return mathutil.Scaling(a[0], a[1], a[2]), nil
	case "rotate_x":
		return mathutil.RotationX(mathutil.Deg2Rad(a[0])), nil
	case "rotate_y":
		return mathutil.RotationY(mathutil.Deg2Rad(a[0])), nil
	case "rotate_z":
		return mathutil.RotationZ(mathutil.Deg2Rad(a[0])), nil
	default: // shear
		return mathutil.Shearing(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	}
}
