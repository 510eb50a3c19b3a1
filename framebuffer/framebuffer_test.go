package framebuffer

import (
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/wasmframe/pixel"
)

func TestDraw(t *testing.T) {
	tests := []struct {
		Name    string
		Screen  image.Point
		Src     image.Rectangle
		Inside  image.Point
		Outside image.Point
	}{
		{"centered", image.Pt(8, 8), image.Rect(0, 0, 4, 2), image.Pt(2, 3), image.Pt(1, 3)},
		{"offset source", image.Pt(8, 8), image.Rect(10, 10, 14, 12), image.Pt(5, 4), image.Pt(6, 3)},
		{"cropped", image.Pt(4, 4), image.Rect(0, 0, 8, 8), image.Pt(0, 0), image.Pt(-1, -1)},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			fb := &FrameBuffer{PackedImage: pixel.NewPackedImage(test.Screen.X, test.Screen.Y, pixel.RGB565)}
			src := image.NewUniform(color.White)
			img := image.NewRGBA(test.Src)
			for y := test.Src.Min.Y; y < test.Src.Max.Y; y++ {
				for x := test.Src.Min.X; x < test.Src.Max.X; x++ {
					img.Set(x, y, src.C)
				}
			}
			fb.Draw(img)

			if r, _, _, _ := fb.At(test.Inside.X, test.Inside.Y).RGBA(); r != 0xffff {
				it.Errorf("expected %s to be white", test.Inside)
			}
			if r, _, _, _ := fb.At(test.Outside.X, test.Outside.Y).RGBA(); r != 0 {
				it.Errorf("expected %s to be untouched", test.Outside)
			}
		})
	}
}

func TestClose(t *testing.T) {
	var closed int
	fb := &FrameBuffer{
		PackedImage: pixel.NewPackedImage(1, 1, pixel.RGB565),
		close:       func() error { closed++; return nil },
	}
	if err := fb.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fb.Close(); err != nil {
		t.Fatal(err)
	}
	if closed != 1 {
		t.Errorf("expected device to be closed once, got %d", closed)
	}
}
