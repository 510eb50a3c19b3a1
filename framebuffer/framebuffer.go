// Package framebuffer shows frames on the operating system's native framebuffer.
//
// This requires framebuffer device support in the operating system. The
// framebuffer is opened with [Open] and behaves like a regular [draw.Image] in
// the device's own pixel format.
package framebuffer

import (
	"errors"
	"fmt"
	"image"

	"github.com/BeatGlow/wasmframe/draw"
	"github.com/BeatGlow/wasmframe/pixel"
)

var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrFormat       = errors.New("framebuffer: unsupported pixel format")
)

// FrameBuffer is a memory mapped framebuffer device.
type FrameBuffer struct {
	*pixel.PackedImage
	name  string
	close func() error
}

func (fb *FrameBuffer) String() string {
	return fmt.Sprintf("%s %s %s", fb.name, fb.Bounds().Size(), fb.Format)
}

// Draw copies src to the screen, centered. Parts of src that do not fit are
// cropped.
func (fb *FrameBuffer) Draw(src image.Image) {
	var (
		b = fb.Bounds()
		s = src.Bounds()
		r = image.Rectangle{Min: b.Min.Add(b.Size().Sub(s.Size()).Div(2))}
	)
	r.Max = r.Min.Add(s.Size())
	sp := s.Min
	if r.Min.X < b.Min.X {
		sp.X += b.Min.X - r.Min.X
	}
	if r.Min.Y < b.Min.Y {
		sp.Y += b.Min.Y - r.Min.Y
	}
	draw.Draw(fb, r.Intersect(b), src, sp, draw.Src)
}

// Close unmaps and closes the device.
func (fb *FrameBuffer) Close() error {
	if fb.close == nil {
		return nil
	}
	err := fb.close()
	fb.close = nil
	return err
}
