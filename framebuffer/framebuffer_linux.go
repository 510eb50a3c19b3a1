package framebuffer

import (
	"encoding/binary"
	"fmt"
	"image"
	"os"
	"syscall"

	"github.com/BeatGlow/wasmframe/internal/ioctl"
	"github.com/BeatGlow/wasmframe/pixel"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo ioctl.Command = 0x4600
	fbioGetFScreenInfo ioctl.Command = 0x4602
)

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*FrameBuffer, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	var (
		info   = new(linuxFixScreenInfo)
		screen = new(linuxVarScreenInfo)
	)
	if err = ioctl.Do(f.Fd(), fbioGetFScreenInfo, info); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: %s: %w", name, err)
	}
	if err = ioctl.Do(f.Fd(), fbioGetVScreenInfo, screen); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: %s: %w", name, err)
	}

	format, err := linuxParseFormat(screen)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	mem, err := syscall.Mmap(int(f.Fd()), 0, int(info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: mmap %s: %w", name, err)
	}

	img, err := linuxImage(mem, info, screen, format)
	if err != nil {
		_ = syscall.Munmap(mem)
		_ = f.Close()
		return nil, err
	}

	return &FrameBuffer{
		PackedImage: img,
		name:        name,
		close: func() error {
			if err := syscall.Munmap(mem); err != nil {
				return err
			}
			return f.Close()
		},
	}, nil
}

// linuxImage maps the visible part of the virtual screen onto mem.
func linuxImage(mem []byte, info *linuxFixScreenInfo, screen *linuxVarScreenInfo, format *pixel.Format) (*pixel.PackedImage, error) {
	if screen.Xres == 0 || screen.Yres == 0 {
		return nil, fmt.Errorf("framebuffer: empty %dx%d screen", screen.Xres, screen.Yres)
	}
	var (
		stride = int(info.LineLength)
		offset = int(screen.Yoffset)*stride + int(screen.Xoffset)*format.BytesPerPixel()
		size   = int(screen.Yres-1)*stride + int(screen.Xres)*format.BytesPerPixel()
	)
	if offset+size > len(mem) {
		return nil, fmt.Errorf("framebuffer: %dx%d screen at offset %d exceeds %d bytes of video memory",
			screen.Xres, screen.Yres, offset, len(mem))
	}
	return &pixel.PackedImage{
		Buffer: pixel.Buffer{
			Rect:   image.Rect(0, 0, int(screen.Xres), int(screen.Yres)),
			Pix:    mem[offset : offset+size],
			Stride: stride,
		},
		Format: format,
		Order:  binary.NativeEndian,
	}, nil
}

type linuxFixScreenInfo struct {
	ID           [16]byte  // Identification string eg "TT Builtin"
	SmemStart    uintptr   // Start of frame buffer mem
	SmemLen      uint32    // Length of frame buffer mem
	Type         uint32    // FB_TYPE_
	TypeAux      uint32    // Interleave for interleaved Planes
	Visual       uint32    // FB_VISUAL_
	Xpanstep     uint16    // Zero if no hardware panning
	Ypanstep     uint16    // Zero if no hardware panning
	Ywrapstep    uint16    // Zero if no hardware ywrap
	LineLength   uint32    // Length of a line in bytes
	MmioStart    uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen      uint32    // Length of Memory Mapped I/O
	Accel        uint32    // Type of acceleration available
	Capabilities uint16    // See FB_CAP_*
	Reserved     [2]uint16 // Reserved for future compatibility
}

// linuxBitField for the color
type linuxBitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// linuxVarScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha linuxBitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

func (f linuxBitField) field() pixel.Field {
	return pixel.Field{Offset: uint8(f.Offset), Length: uint8(f.Length)}
}

func (f linuxBitField) valid(bits uint32) bool {
	return f.MsbRight == 0 && f.Length <= 8 && f.Offset+f.Length <= bits
}

var linuxKnownFormats = []*pixel.Format{
	pixel.RGB565,
	pixel.BGR565,
	pixel.XRGB8888,
	pixel.XBGR8888,
	pixel.ARGB8888,
	pixel.ABGR8888,
}

func linuxParseFormat(info *linuxVarScreenInfo) (*pixel.Format, error) {
	if info.Grayscale != 0 || (info.BitsPerPixel != 16 && info.BitsPerPixel != 32) {
		return nil, fmt.Errorf("%w: %d bits per pixel, grayscale %d", ErrFormat, info.BitsPerPixel, info.Grayscale)
	}
	for _, f := range []linuxBitField{info.Red, info.Green, info.Blue, info.Alpha} {
		if !f.valid(info.BitsPerPixel) {
			return nil, fmt.Errorf("%w: bit field %+v", ErrFormat, f)
		}
	}

	format := &pixel.Format{
		Bits:  int(info.BitsPerPixel),
		Red:   info.Red.field(),
		Green: info.Green.field(),
		Blue:  info.Blue.field(),
		Alpha: info.Alpha.field(),
	}
	for _, known := range linuxKnownFormats {
		if known.Bits == format.Bits &&
			known.Red == format.Red &&
			known.Green == format.Green &&
			known.Blue == format.Blue &&
			known.Alpha == format.Alpha {
			return known, nil
		}
	}
	format.Name = fmt.Sprintf("%dbpp r%d:%d g%d:%d b%d:%d a%d:%d", format.Bits,
		format.Red.Offset, format.Red.Length,
		format.Green.Offset, format.Green.Length,
		format.Blue.Offset, format.Blue.Length,
		format.Alpha.Offset, format.Alpha.Length)
	return format, nil
}
