package main

import (
	"fmt"

	"github.com/urfave/cli"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/wasmframe"
	"github.com/BeatGlow/wasmframe/internal/viewer"
)

// View shows frames in a window.
func View(ctx *cli.Context) error {
	setupLogging(ctx)

	h, err := newHost(ctx)
	if err != nil {
		return err
	}
	f, err := rate(ctx)
	if err != nil {
		return err
	}

	opts := viewer.Options{
		Title: fmt.Sprintf("wasmframe (%s)", ctx.String("pattern")),
		Scale: ctx.Float64("scale"),
		TPS:   int(f / physic.Hertz),
		Stats: ctx.Bool("stats"),
	}
	if err = viewer.Run(h.Host, opts); err != nil {
		if h.err != nil {
			return h.err
		}
		return err
	}
	return nil
}

// Answer prints the answer.
func Answer(ctx *cli.Context) error {
	setupLogging(ctx)

	h := wasmframe.New(&wasmframe.Config{Logger: logger})
	_, err := fmt.Fprintln(ctx.App.Writer, h.TheAnswer())
	return err
}
