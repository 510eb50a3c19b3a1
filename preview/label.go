package preview

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/BeatGlow/wasmframe/draw"
)

// Label styling.
const (
	LabelSize    = 14.0 // points at 72 DPI, so pixels
	LabelMargin  = 6
	LabelPadding = 4
	LabelRadius  = 3
)

var (
	labelForeground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	labelBackground = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

var labelFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(gomono.TTF)
})

// Label draws text in the top left corner of dst on an opaque rounded box and
// returns the area it covered.
func Label(dst draw.Image, text string) (image.Rectangle, error) {
	f, err := labelFont()
	if err != nil {
		return image.Rectangle{}, err
	}

	face := truetype.NewFace(f, &truetype.Options{Size: LabelSize, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()

	var (
		metrics = face.Metrics()
		width   = font.MeasureString(face, text).Ceil()
		height  = (metrics.Ascent + metrics.Descent).Ceil()
		origin  = dst.Bounds().Min.Add(image.Pt(LabelMargin, LabelMargin))
		box     = image.Rectangle{Min: origin, Max: origin.Add(image.Pt(width+2*LabelPadding, height+2*LabelPadding))}
	)
	box = box.Intersect(dst.Bounds())
	if box.Empty() {
		return box, nil
	}
	draw.RoundedBox(dst, box, LabelRadius, labelBackground)

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(LabelSize)
	c.SetHinting(font.HintingFull)
	c.SetClip(box)
	c.SetDst(dst)
	c.SetSrc(image.NewUniform(labelForeground))

	pt := freetype.Pt(origin.X+LabelPadding, origin.Y+LabelPadding+metrics.Ascent.Ceil())
	if _, err = c.DrawString(text, pt); err != nil {
		return box, err
	}
	return box, nil
}
