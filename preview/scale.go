package preview

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Kernels by name.
var kernels = map[string]xdraw.Interpolator{
	"nearest":     xdraw.NearestNeighbor,
	"approx":      xdraw.ApproxBiLinear,
	"bilinear":    xdraw.BiLinear,
	"catmull-rom": xdraw.CatmullRom,
}

// ParseKernel returns the interpolator with the given name.
func ParseKernel(name string) (xdraw.Interpolator, error) {
	if k, ok := kernels[name]; ok {
		return k, nil
	}
	return nil, fmt.Errorf("preview: unknown scaling kernel %q", name)
}

// Scale resamples src to size. A nil kernel means nearest neighbor.
func Scale(src image.Image, size image.Point, kernel xdraw.Interpolator) *image.NRGBA {
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	if kernel == nil {
		kernel = xdraw.NearestNeighbor
	}
	kernel.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Fit returns the largest size with the aspect ratio of src that fits in
// bounds.
func Fit(src, bounds image.Point) image.Point {
	if src.X <= 0 || src.Y <= 0 {
		return image.Point{}
	}
	if bounds.X*src.Y < bounds.Y*src.X {
		return image.Pt(bounds.X, src.Y*bounds.X/src.X)
	}
	return image.Pt(src.X*bounds.Y/src.Y, bounds.Y)
}
