package main

import (
	"context"
	"image"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/BeatGlow/wasmframe"
	"github.com/BeatGlow/wasmframe/framebuffer"
	"github.com/BeatGlow/wasmframe/preview"
)

// Play streams frames to a framebuffer device at a fixed rate.
func Play(ctx *cli.Context) error {
	setupLogging(ctx)

	h, err := newHost(ctx)
	if err != nil {
		return err
	}
	f, err := rate(ctx)
	if err != nil {
		return err
	}
	kernel, err := preview.ParseKernel(ctx.String("kernel"))
	if err != nil {
		return err
	}

	fb, err := framebuffer.Open(ctx.String("device"))
	if err != nil {
		return err
	}
	defer func() { _ = fb.Close() }()

	size := preview.Fit(image.Pt(wasmframe.Width, wasmframe.Height), fb.Bounds().Size())
	logger.Noticef("playing on %s at %s, frames scaled to %s", fb, f, size)

	sig, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(f.Period())
	defer ticker.Stop()

	frames := ctx.Int("frames")
	for n := 0; frames <= 0 || n < frames; n++ {
		if err = h.render(); err != nil {
			return err
		}
		fb.Draw(preview.Scale(h.Store().Snapshot(), size, kernel))

		select {
		case <-sig.Done():
			logger.Noticef("stopped after %d frames", n+1)
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
