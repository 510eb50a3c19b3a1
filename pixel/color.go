package pixel

import "image/color"

// Models for the standard color types.
var (
	ABGRModel color.Model = color.ModelFunc(abgrModel)
)

// Opaque is the alpha byte of a fully opaque ABGR pixel.
const Opaque uint32 = 0xFF_00_00_00

// ABGR represents a non-alpha-premultiplied 32-bit color.
//
// Read as a little-endian word the bytes in memory are R, G, B, A, which is the
// layout a browser ImageData expects. The value itself is laid out 0xAA_BB_GG_RR.
type ABGR struct {
	V uint32
}

// NewABGR packs the four 8-bit components.
func NewABGR(r, g, b, a uint8) ABGR {
	return ABGR{uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)}
}

// Components returns the four 8-bit components.
func (c ABGR) Components() (r, g, b, a uint8) {
	return uint8(c.V), uint8(c.V >> 8), uint8(c.V >> 16), uint8(c.V >> 24)
}

func (c ABGR) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := c.Components()
	return color.NRGBA{R: cr, G: cg, B: cb, A: ca}.RGBA()
}

func abgrModel(c color.Color) color.Color {
	if _, ok := c.(ABGR); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewABGR(n.R, n.G, n.B, n.A)
}

// Field describes where one color channel lives inside a packed pixel value.
type Field struct {
	Offset uint8
	Length uint8
}

func (f Field) mask() uint32 {
	return (1<<f.Length - 1) << f.Offset
}

// pack places the top Length bits of a 16-bit channel value.
func (f Field) pack(v uint32) uint32 {
	if f.Length == 0 {
		return 0
	}
	return (v >> (16 - f.Length)) << f.Offset
}

// unpack extracts the channel and widens it to 16 bits by bit replication.
func (f Field) unpack(p uint32) uint32 {
	if f.Length == 0 {
		return 0
	}
	var (
		v     = (p & f.mask()) >> f.Offset
		out   uint32
		shift = 16 - int(f.Length)
	)
	for ; shift > -int(f.Length); shift -= int(f.Length) {
		if shift >= 0 {
			out |= v << uint(shift)
		} else {
			out |= v >> uint(-shift)
		}
	}
	return out
}

// Format is a packed pixel layout made of bit fields, as reported by
// framebuffer devices. A Format is also the [color.Model] of its pixels.
type Format struct {
	Name  string
	Bits  int
	Red   Field
	Green Field
	Blue  Field
	Alpha Field
}

// Well known formats.
var (
	RGB565   = &Format{Name: "RGB565", Bits: 16, Red: Field{11, 5}, Green: Field{5, 6}, Blue: Field{0, 5}}
	BGR565   = &Format{Name: "BGR565", Bits: 16, Red: Field{0, 5}, Green: Field{5, 6}, Blue: Field{11, 5}}
	XRGB8888 = &Format{Name: "XRGB8888", Bits: 32, Red: Field{16, 8}, Green: Field{8, 8}, Blue: Field{0, 8}}
	XBGR8888 = &Format{Name: "XBGR8888", Bits: 32, Red: Field{0, 8}, Green: Field{8, 8}, Blue: Field{16, 8}}
	ARGB8888 = &Format{Name: "ARGB8888", Bits: 32, Red: Field{16, 8}, Green: Field{8, 8}, Blue: Field{0, 8}, Alpha: Field{24, 8}}
	ABGR8888 = &Format{Name: "ABGR8888", Bits: 32, Red: Field{0, 8}, Green: Field{8, 8}, Blue: Field{16, 8}, Alpha: Field{24, 8}}
)

func (f *Format) String() string {
	return f.Name
}

// BytesPerPixel is the storage size of one pixel.
func (f *Format) BytesPerPixel() int {
	return (f.Bits + 7) / 8
}

// Pack converts c to the packed value of this format.
func (f *Format) Pack(c color.Color) uint32 {
	if p, ok := c.(Packed); ok && p.F == f {
		return p.V
	}
	r, g, b, a := c.RGBA()
	return f.Red.pack(r) | f.Green.pack(g) | f.Blue.pack(b) | f.Alpha.pack(a)
}

// Unpack wraps a raw packed value.
func (f *Format) Unpack(v uint32) Packed {
	return Packed{V: v & f.valueMask(), F: f}
}

// Convert implements [color.Model].
func (f *Format) Convert(c color.Color) color.Color {
	return f.Unpack(f.Pack(c))
}

func (f *Format) valueMask() uint32 {
	return f.Red.mask() | f.Green.mask() | f.Blue.mask() | f.Alpha.mask()
}

// Packed is a pixel value in some Format.
type Packed struct {
	V uint32
	F *Format
}

func (c Packed) RGBA() (r, g, b, a uint32) {
	r = c.F.Red.unpack(c.V)
	g = c.F.Green.unpack(c.V)
	b = c.F.Blue.unpack(c.V)
	if c.F.Alpha.Length == 0 {
		return r, g, b, 0xffff
	}
	return r, g, b, c.F.Alpha.unpack(c.V)
}
