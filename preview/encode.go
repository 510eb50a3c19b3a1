// Package preview turns rendered frames into viewable images: it scales them,
// stamps a text label on them and encodes them to files.
package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image file format.
type Format uint8

// Supported formats.
const (
	PNG Format = iota
	BMP
	TIFF
	WebP
	TGA
)

var formatNames = map[Format]string{
	PNG:  "png",
	BMP:  "bmp",
	TIFF: "tiff",
	WebP: "webp",
	TGA:  "tga",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Ext is the file name extension, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat accepts a format name or file extension, case insensitive.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(s), ".")
	if s == "tif" {
		return TIFF, nil
	}
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("preview: unsupported image format %q", s)
}

// FormatOf picks the format from the extension of name.
func FormatOf(name string) (Format, error) {
	return ParseFormat(filepath.Ext(name))
}

// Encode writes img to w in format f. WebP output is lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("preview: unsupported image format %s", f)
	}
	if err != nil {
		return fmt.Errorf("preview: encode %s: %w", f, err)
	}
	return nil
}
