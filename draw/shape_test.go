package draw

import (
	"image"
	"image/color"
	"testing"
)

func count(img *image.RGBA, c color.RGBA) (n int) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return
}

func TestBox(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	Box(img, image.Rect(2, 3, 7, 5), white)
	if n := count(img, white); n != 10 {
		t.Errorf("expected 10 pixels set, got %d", n)
	}
	if img.RGBAAt(7, 3) == white || img.RGBAAt(2, 5) == white {
		t.Error("expected Max edges to be exclusive")
	}
}

func TestRectangle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	Rectangle(img, image.Rect(1, 1, 5, 4), white)
	// 4x3 outline has 4+4+1+1 pixels.
	if n := count(img, white); n != 10 {
		t.Errorf("expected 10 pixels set, got %d", n)
	}
	if img.RGBAAt(2, 2) == white {
		t.Error("expected interior to be empty")
	}
}

func TestRoundedBox(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	RoundedBox(img, image.Rect(0, 0, 20, 10), 3, white)
	if img.RGBAAt(0, 0) == white {
		t.Error("expected corner to be rounded off")
	}
	if img.RGBAAt(10, 0) != white || img.RGBAAt(10, 9) != white || img.RGBAAt(0, 5) != white {
		t.Error("expected edges to be filled")
	}
	if img.RGBAAt(20, 5) == white || img.RGBAAt(10, 10) == white {
		t.Error("expected nothing outside the box")
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		A, B image.Point
		N    int
	}{
		{image.Pt(0, 0), image.Pt(0, 0), 1},
		{image.Pt(0, 0), image.Pt(7, 0), 8},
		{image.Pt(3, 7), image.Pt(3, 0), 8},
		{image.Pt(0, 0), image.Pt(5, 5), 6},
		{image.Pt(5, 0), image.Pt(0, 5), 6},
		{image.Pt(0, 0), image.Pt(9, 3), 10},
		{image.Pt(0, 9), image.Pt(3, 0), 10},
	}
	for _, test := range tests {
		img := image.NewRGBA(image.Rect(0, 0, 16, 16))
		white := color.RGBA{0xff, 0xff, 0xff, 0xff}
		Line(img, test.A, test.B, white)
		if n := count(img, white); n != test.N {
			t.Errorf("%s-%s: expected %d pixels, got %d", test.A, test.B, test.N, n)
		}
		if img.RGBAAt(test.A.X, test.A.Y) != white || img.RGBAAt(test.B.X, test.B.Y) != white {
			t.Errorf("%s-%s: expected both end points set", test.A, test.B)
		}
	}
}
