package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"unsafe"

	"github.com/BeatGlow/wasmframe/draw"
)

type Image interface {
	draw.Image

	// RGBA64At returns the alpha-premultiplied color at (x, y).
	RGBA64At(x, y int) color.RGBA64

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel bytes of a [PackedImage].
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// ABGRImage is a 32-bits per pixel image of [ABGR] words in row-major order.
type ABGRImage struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the packed pixels.
	Pix []uint32

	// Stride is the Pix stride (in pixels) between vertically adjacent pixels.
	Stride int
}

func NewABGRImage(w, h int) *ABGRImage {
	return &ABGRImage{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]uint32, w*h),
		Stride: w,
	}
}

func (p *ABGRImage) Bounds() image.Rectangle {
	return p.Rect
}

func (p *ABGRImage) ColorModel() color.Model {
	return ABGRModel
}

// PixOffset returns the index of the pixel at (x, y) in Pix.
func (p *ABGRImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *ABGRImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return ABGR{p.Pix[p.PixOffset(x, y)]}
}

func (p *ABGRImage) RGBA64At(x, y int) color.RGBA64 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.RGBA64{}
	}
	return rgba64(ABGR{p.Pix[p.PixOffset(x, y)]})
}

func (p *ABGRImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = abgrModel(c).(ABGR).V
}

// SetABGR stores a raw packed value.
func (p *ABGRImage) SetABGR(x, y int, v uint32) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = v
}

func (p *ABGRImage) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0
	}
}

func (p *ABGRImage) Fill(c color.Color) {
	value := abgrModel(c).(ABGR).V
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Bytes returns the pixel memory as bytes, without copying. The byte order is
// the host's; on little-endian hosts (including WebAssembly) every pixel reads
// as R, G, B, A.
func (p *ABGRImage) Bytes() []byte {
	if len(p.Pix) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&p.Pix[0])), len(p.Pix)*4)
}

// AppendRGBA appends the pixels as R, G, B, A bytes regardless of the host byte
// order.
func (p *ABGRImage) AppendRGBA(dst []byte) []byte {
	var word [4]byte
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		row := p.Pix[p.PixOffset(p.Rect.Min.X, y):]
		for _, v := range row[:p.Rect.Dx()] {
			binary.LittleEndian.PutUint32(word[:], v)
			dst = append(dst, word[:]...)
		}
	}
	return dst
}

// NRGBA copies the image into a new [image.NRGBA].
func (p *ABGRImage) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.AppendRGBA(make([]byte, 0, p.Rect.Dx()*p.Rect.Dy()*4)),
		Stride: p.Rect.Dx() * 4,
		Rect:   p.Rect,
	}
}

// PackedImage is an image of [Format] pixels stored in a byte [Buffer].
type PackedImage struct {
	Buffer
	Format *Format
	Order  binary.ByteOrder
}

func NewPackedImage(w, h int, f *Format) *PackedImage {
	stride := w * f.BytesPerPixel()
	return &PackedImage{
		Buffer: makeBuffer(w, h, stride, stride*h),
		Format: f,
		Order:  binary.LittleEndian,
	}
}

func (p *PackedImage) ColorModel() color.Model {
	return p.Format
}

// PixOffset returns the index of the first byte of the pixel at (x, y) in Pix.
func (p *PackedImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*p.Format.BytesPerPixel()
}

func (p *PackedImage) load(i int) uint32 {
	if p.Format.BytesPerPixel() == 2 {
		return uint32(p.Order.Uint16(p.Pix[i:]))
	}
	return p.Order.Uint32(p.Pix[i:])
}

func (p *PackedImage) store(i int, v uint32) {
	if p.Format.BytesPerPixel() == 2 {
		p.Order.PutUint16(p.Pix[i:], uint16(v))
		return
	}
	p.Order.PutUint32(p.Pix[i:], v)
}

func (p *PackedImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return p.Format.Unpack(p.load(p.PixOffset(x, y)))
}

func (p *PackedImage) RGBA64At(x, y int) color.RGBA64 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.RGBA64{}
	}
	return rgba64(p.Format.Unpack(p.load(p.PixOffset(x, y))))
}

func (p *PackedImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.store(p.PixOffset(x, y), p.Format.Pack(c))
}

func (p *PackedImage) Fill(c color.Color) {
	var (
		n     = p.Format.BytesPerPixel()
		value = p.Format.Pack(c)
		bytes = make([]byte, n)
	)
	if n == 2 {
		p.Order.PutUint16(bytes, uint16(value))
	} else {
		p.Order.PutUint32(bytes, value)
	}
	for i, l := 0, len(p.Pix); i+n <= l; i += n {
		copy(p.Pix[i:], bytes)
	}
}

// Interface checks.
var (
	_ Image = (*ABGRImage)(nil)
	_ Image = (*PackedImage)(nil)
)

func rgba64(c color.Color) color.RGBA64 {
	r, g, b, a := c.RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}
