package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/wasmframe"
)

func hostFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "pattern, p",
			Value: wasmframe.PatternSine.String(),
			Usage: "pattern to draw: sine, xor or solid",
		},
		cli.BoolTFlag{
			Name:  "table",
			Usage: "sample the sine once per coordinate up front",
		},
		cli.IntFlag{
			Name:  "workers, w",
			Usage: "row bands rendered concurrently, 0 uses all CPUs",
		},
	}
}

// host keeps the first fault instead of exiting the process.
type host struct {
	*wasmframe.Host
	err error
}

func newHost(ctx *cli.Context) (*host, error) {
	pattern, err := wasmframe.ParsePattern(ctx.String("pattern"))
	if err != nil {
		return nil, err
	}
	if ctx.Int("workers") < 0 {
		return nil, errors.New("workers must not be negative")
	}

	h := new(host)
	h.Host = wasmframe.New(&wasmframe.Config{
		UseTable: ctx.BoolT("table"),
		Workers:  ctx.Int("workers"),
		Pattern:  pattern,
		OnFault:  h.fault,
		Logger:   logger,
	})
	return h, nil
}

func (h *host) fault(err error) {
	if h.err == nil {
		h.err = err
	}
}

func (h *host) render() error {
	h.Render()
	return h.err
}

func newRate(f physic.Frequency) *physic.Frequency {
	return &f
}

func rate(ctx *cli.Context) (physic.Frequency, error) {
	f, ok := ctx.Generic("rate").(*physic.Frequency)
	if !ok || *f <= 0 {
		return 0, fmt.Errorf("invalid frame rate %v", ctx.Generic("rate"))
	}
	return *f, nil
}
