package wasmframe

import (
	"math"
	"testing"

	"github.com/BeatGlow/wasmframe/pixel"
)

func TestSaturate(t *testing.T) {
	tests := []struct {
		In   float32
		Want uint32
	}{
		{0, 0},
		{-0.5, 0},
		{-510, 0},
		{float32(math.NaN()), 0},
		{float32(math.Inf(-1)), 0},
		{0.99, 0},
		{1.9, 1},
		{510, 510},
		{1e10, math.MaxUint32},
		{float32(math.Inf(1)), math.MaxUint32},
	}
	for _, test := range tests {
		if v := saturate(test.In); v != test.Want {
			t.Errorf("saturate(%g): expected %d, got %d", test.In, test.Want, v)
		}
	}
}

func TestPixel(t *testing.T) {
	tests := []struct {
		Name   string
		SX, SY float32
		Frame  uint32
		Want   uint32
	}{
		{"origin", 0, 0, 0, 0xFF000000},
		{"origin next frame", 0, 0, 1, 0xFF000001},
		{"peak", 1, 1, 0, 0xFF0001FE},
		{"trough", -1, -1, 7, 0xFF000007},
		{"frame wraps", 0, 0, math.MaxUint32, 0xFFFFFFFF},
		{"sum wraps", 1, 1, math.MaxUint32, 0xFF0001FD},
		{"payload overflows into alpha", 0.5, 0, 0x01FFFFFF, 0xFF00007E},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			if v := Pixel(test.SX, test.SY, test.Frame); v != test.Want {
				it.Errorf("expected %#08x, got %#08x", test.Want, v)
			}
		})
	}
}

func TestRendererMatchesDirectSine(t *testing.T) {
	const frame = 12345
	r := NewRenderer(&Config{Workers: 1})
	img := pixel.NewABGRImage(Width, Height)
	if err := r.RenderFrame(img, frame); err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {17, 333}, {599, 599}} {
		x, y := p[0], p[1]
		sx := float32(math.Sin(float64(x)))
		sy := float32(math.Sin(float64(y)))
		if v, want := img.Pix[y*Width+x], Pixel(sx, sy, frame); v != want {
			t.Errorf("pixel (%d,%d): expected %#08x, got %#08x", x, y, want, v)
		}
	}
}

func TestRendererEquivalence(t *testing.T) {
	const frame = 0xFFFFFF00

	reference := pixel.NewABGRImage(Width, Height)
	if err := NewRenderer(&Config{Workers: 1}).RenderFrame(reference, frame); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		Name   string
		Config Config
	}{
		{"table", Config{Workers: 1, UseTable: true}},
		{"parallel", Config{Workers: 4}},
		{"parallel table", Config{Workers: 7, UseTable: true}},
		{"gomaxprocs", Config{}},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			img := pixel.NewABGRImage(Width, Height)
			if err := NewRenderer(&test.Config).RenderFrame(img, frame); err != nil {
				it.Fatal(err)
			}
			for i, v := range img.Pix {
				if v != reference.Pix[i] {
					it.Fatalf("pixel (%d,%d) is %#08x, expected %#08x", i%Width, i/Width, v, reference.Pix[i])
				}
			}
		})
	}
}

func TestRendererPatterns(t *testing.T) {
	tests := []struct {
		Pattern Pattern
		X, Y    int
		Want    uint32
	}{
		{PatternXOR, 0, 0, 0xFF000000},
		{PatternXOR, 5, 3, 0xFF000006},
		{PatternXOR, 599, 0, 0xFF000257},
		{PatternSolid, 42, 42, 0xFFFF00FF},
	}
	for _, test := range tests {
		t.Run(test.Pattern.String(), func(it *testing.T) {
			r := NewRenderer(&Config{Pattern: test.Pattern, Workers: 2})
			img := pixel.NewABGRImage(Width, Height)
			if err := r.RenderFrame(img, 99); err != nil {
				it.Fatal(err)
			}
			if v := img.Pix[test.Y*Width+test.X]; v != test.Want {
				it.Errorf("pixel (%d,%d): expected %#08x, got %#08x", test.X, test.Y, test.Want, v)
			}
		})
	}
}

func TestParsePattern(t *testing.T) {
	for _, p := range []Pattern{PatternSine, PatternXOR, PatternSolid} {
		if v, err := ParsePattern(p.String()); err != nil || v != p {
			t.Errorf("expected %s to parse, got %s, %v", p, v, err)
		}
	}
	if _, err := ParsePattern("plasma"); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestTable(t *testing.T) {
	var calls int
	table := NewTable(func(x float32) float32 {
		calls++
		return x / 2
	}, 4)
	if calls != 4 {
		t.Errorf("expected 4 samples, got %d", calls)
	}
	if want := (Table{0, 0.5, 1, 1.5}); len(table) != 4 || table[3] != want[3] || table[1] != want[1] {
		t.Errorf("expected %v, got %v", want, table)
	}
}

func TestRendererRender(t *testing.T) {
	var (
		r       = NewRenderer(&Config{Workers: 2})
		store   = NewStore()
		counter Counter
	)
	counter.Reset(5)
	grid, release := store.Acquire()
	defer release()
	for k := uint32(5); k < 7; k++ {
		if err := r.Render(grid, &counter); err != nil {
			t.Fatal(err)
		}
		if v := grid.Pix[0]; v != 0xFF000000|k {
			t.Errorf("expected origin %#08x, got %#08x", 0xFF000000|k, v)
		}
	}
	if v := counter.Load(); v != 7 {
		t.Errorf("expected counter at 7, got %d", v)
	}
}

func BenchmarkRenderDirect(b *testing.B) {
	benchmarkRender(b, &Config{Workers: 1})
}

func BenchmarkRenderTable(b *testing.B) {
	benchmarkRender(b, &Config{Workers: 1, UseTable: true})
}

func BenchmarkRenderParallelTable(b *testing.B) {
	benchmarkRender(b, &Config{UseTable: true})
}

func benchmarkRender(b *testing.B, config *Config) {
	r := NewRenderer(config)
	img := pixel.NewABGRImage(Width, Height)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.RenderFrame(img, uint32(i))
	}
}
