package wasmframe

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/BeatGlow/wasmframe/log"
	"github.com/BeatGlow/wasmframe/pixel"
)

// Pattern selects what the renderer draws.
type Pattern uint8

// Supported patterns.
const (
	PatternSine  Pattern = iota // Moving interference of two sine waves
	PatternXOR                  // Static x XOR y texture
	PatternSolid                // Solid magenta
)

// Solid is the pixel value of PatternSolid.
const Solid uint32 = 0xFF_FF_00_FF

func (p Pattern) String() string {
	switch p {
	case PatternXOR:
		return "xor"
	case PatternSolid:
		return "solid"
	default:
		return "sine"
	}
}

// ParsePattern is the inverse of Pattern.String.
func ParsePattern(s string) (Pattern, error) {
	for _, p := range []Pattern{PatternSine, PatternXOR, PatternSolid} {
		if p.String() == s {
			return p, nil
		}
	}
	return PatternSine, fmt.Errorf("wasmframe: unknown pattern %q", s)
}

// Config is the host configuration.
type Config struct {
	// Periodic is the host supplied sine. Defaults to Sine.
	Periodic Periodic

	// UseTable samples Periodic once per coordinate up front instead of twice
	// per pixel on every frame. The output is identical.
	UseTable bool

	// Workers is the number of row bands rendered concurrently. Zero uses
	// GOMAXPROCS, one renders sequentially.
	Workers int

	// Pattern to draw.
	Pattern Pattern

	// OnFault is called when a render faults. Defaults to Abort.
	OnFault FaultHandler

	// Logger defaults to a logger named "wasmframe".
	Logger log.Logger
}

// Renderer fills a grid for a given frame index.
type Renderer struct {
	pattern  Pattern
	periodic Periodic
	table    Table
	workers  int
}

// NewRenderer applies the defaults of config.
func NewRenderer(config *Config) *Renderer {
	r := &Renderer{
		pattern:  config.Pattern,
		periodic: config.Periodic,
		workers:  config.Workers,
	}
	if r.periodic == nil {
		r.periodic = Sine
	}
	if r.workers <= 0 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	if config.UseTable && r.pattern == PatternSine {
		r.table = NewTable(r.periodic, max(Width, Height))
	}
	return r
}

func (r *Renderer) String() string {
	return fmt.Sprintf("%s pattern, %d workers, table %t", r.pattern, r.workers, r.table != nil)
}

// Render captures and advances the counter once, then fills every pixel of
// the grid with that frame index.
func (r *Renderer) Render(grid *Grid, counter *Counter) error {
	return r.RenderFrame(grid.ABGRImage, counter.Next())
}

// RenderFrame fills img for frame f. Coordinates are relative to img.Rect.Min.
func (r *Renderer) RenderFrame(img *pixel.ABGRImage, f uint32) error {
	b := img.Bounds()
	if r.workers <= 1 || b.Dy() < 2 {
		return r.renderRows(img, 0, b.Dy(), f)
	}

	var (
		g    errgroup.Group
		band = (b.Dy() + r.workers - 1) / r.workers
	)
	g.SetLimit(r.workers)
	for y := 0; y < b.Dy(); y += band {
		y0, y1 := y, min(y+band, b.Dy())
		g.Go(func() error {
			return r.renderRows(img, y0, y1, f)
		})
	}
	return g.Wait()
}

func (r *Renderer) renderRows(img *pixel.ABGRImage, y0, y1 int, f uint32) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = panicError(v)
		}
	}()

	var (
		w      = img.Rect.Dx()
		origin = img.Rect.Min
	)
	for y := y0; y < y1; y++ {
		row := img.Pix[img.PixOffset(origin.X, origin.Y+y):][:w]
		for x := range row {
			row[x] = r.Shade(x, y, f)
		}
	}
	return nil
}

// Shade computes the pixel at grid coordinate (x, y) for frame f.
func (r *Renderer) Shade(x, y int, f uint32) uint32 {
	switch r.pattern {
	case PatternXOR:
		return uint32(x^y) | pixel.Opaque
	case PatternSolid:
		return Solid
	default:
		return Pixel(r.sample(x), r.sample(y), f)
	}
}

func (r *Renderer) sample(i int) float32 {
	if i < len(r.table) {
		return r.table[i]
	}
	return r.periodic(float32(i))
}

// Pixel combines the periodic samples of a pixel's column and row with frame
// index f into an opaque packed pixel.
func Pixel(sx, sy float32, f uint32) uint32 {
	// The conversions round each product and prevent fused multiply-add, so
	// every platform computes the same brightness.
	v := float32(sx*255) + float32(sy*255)
	return (f + saturate(v)) | pixel.Opaque
}

// saturate truncates v toward zero, clamping to [0, MaxUint32]. NaN is 0.
func saturate(v float32) uint32 {
	switch {
	case math.IsNaN(float64(v)), v <= 0:
		return 0
	case v >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}
