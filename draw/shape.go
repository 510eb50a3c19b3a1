package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points.
func Line(dst Image, a, b image.Point, c color.Color) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	if w <= 0 {
		return
	}
	bresenham(dst, x, y, x+w-1, y, c)
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	if h <= 0 {
		return
	}
	bresenham(dst, x, y, x, y+h-1, c)
}

// Rectangle draws the outline of rect. The Max edges are exclusive.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	w, h := rect.Dx(), rect.Dy()
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	w := rect.Dx()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, w, c)
	}
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
func RoundedBox(dst Image, rect image.Rectangle, radius int, c color.Color) {
	var (
		r = radius
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	if r <= 0 || 2*r >= w || 2*r >= h {
		Box(dst, rect, c)
		return
	}
	Box(dst, image.Rect(x+r, y, x+w-r, y+h), c)
	filledRoundedCorner(dst, x+w-r-1, y+r, r, 1, h-2*r-1, c)
	filledRoundedCorner(dst, x+r, y+r, r, 2, h-2*r-1, c)
}

func filledRoundedCorner(dst Image, x0, y0, radius, quadrant, delta int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&1 != 0 {
			VerticalLine(dst, x0+x, y0-y, 2*y+1+delta, c)
			VerticalLine(dst, x0+y, y0-x, 2*x+1+delta, c)
		}

		if quadrant&2 != 0 {
			VerticalLine(dst, x0-x, y0-y, 2*y+1+delta, c)
			VerticalLine(dst, x0-y, y0-x, 2*x+1+delta, c)
		}
	}
}

func bresenham(dst Image, x1, y1, x2, y2 int, c color.Color) {
	// Drawing p1 -> p2 equals drawing p2 -> p1, so only left to right is handled.
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	var (
		dx    = x2 - x1
		dy    = y2 - y1
		stepY = 1
	)
	if dy < 0 {
		dy, stepY = -dy, -1
	}

	switch {
	case dx == 0 && dy == 0:
		dst.Set(x1, y1, c)

	case dy == 0:
		for x := x1; x <= x2; x++ {
			dst.Set(x, y1, c)
		}

	case dx == 0:
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			dst.Set(x1, y, c)
		}

	case dx >= dy:
		e := dx
		for ; x1 != x2; x1++ {
			dst.Set(x1, y1, c)
			if e -= 2 * dy; e < 0 {
				y1 += stepY
				e += 2 * dx
			}
		}
		dst.Set(x2, y2, c)

	default:
		e := dy
		for ; y1 != y2; y1 += stepY {
			dst.Set(x1, y1, c)
			if e -= 2 * dx; e < 0 {
				x1++
				e += 2 * dy
			}
		}
		dst.Set(x2, y2, c)
	}
}
