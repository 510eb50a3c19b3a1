//go:build cgo

package viewer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/BeatGlow/wasmframe"
)

// Run opens the window and blocks until it is closed, Escape is pressed or
// the host faults. Space pauses rendering.
func Run(h *wasmframe.Host, opts Options) error {
	opts.defaults()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(wasmframe.Width*opts.Scale), int(wasmframe.Height*opts.Scale))
	ebiten.SetTPS(opts.TPS)
	return ebiten.RunGame(&game{host: h, stats: opts.Stats})
}

type game struct {
	host   *wasmframe.Host
	stats  bool
	paused bool
	img    *ebiten.Image
	rgba   []byte
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}
	g.host.Render()
	if g.host.Faulted() {
		return wasmframe.ErrFaulted
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(wasmframe.Width, wasmframe.Height)
	}

	// Every pixel is opaque, so straight and premultiplied alpha agree.
	g.rgba = g.host.Store().AppendRGBA(g.rgba[:0])
	g.img.WritePixels(g.rgba)
	screen.DrawImage(g.img, nil)

	if g.stats {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d\nTPS %0.1f\nFPS %0.1f",
			g.host.Frame(), ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return wasmframe.Width, wasmframe.Height
}
