package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/BeatGlow/wasmframe/preview"
)

type frameStats struct {
	Frame      uint32
	Name       string
	Size       int64
	RenderTime time.Duration
	EncodeTime time.Duration
}

// RenderFrames writes frames to image files.
func RenderFrames(ctx *cli.Context) error {
	setupLogging(ctx)

	h, err := newHost(ctx)
	if err != nil {
		return err
	}
	h.Seek(uint32(ctx.Uint("start")))

	out := ctx.String("out")
	format, err := outputFormat(out, ctx.String("format"))
	if err != nil {
		return err
	}
	kernel, err := preview.ParseKernel(ctx.String("kernel"))
	if err != nil {
		return err
	}
	if ctx.Int("frames") < 0 {
		return errors.New("frames must not be negative")
	}

	var (
		frames = ctx.Int("frames")
		size   = ctx.Int("size")
		label  = ctx.Bool("label")
		stats  = make([]frameStats, 0, frames)
	)
	for n := 0; n < frames; n++ {
		stat := frameStats{Frame: h.Frame()}

		start := time.Now()
		if err = h.render(); err != nil {
			return err
		}
		stat.RenderTime = time.Since(start)

		img := h.Store().Snapshot()
		if size > 0 {
			img = preview.Scale(img, image.Pt(size, size), kernel)
		}
		if label {
			if _, err = preview.Label(img, fmt.Sprintf("frame %d", stat.Frame)); err != nil {
				return err
			}
		}

		start = time.Now()
		stat.Name = fmt.Sprintf(out, stat.Frame)
		if stat.Size, err = writeImage(stat.Name, img, format); err != nil {
			return err
		}
		stat.EncodeTime = time.Since(start)

		logger.Infof("frame %d written to %s", stat.Frame, stat.Name)
		stats = append(stats, stat)
	}

	displayFrameStats(stats)
	return nil
}

func outputFormat(name, format string) (preview.Format, error) {
	if format != "" {
		return preview.ParseFormat(format)
	}
	return preview.FormatOf(name)
}

func writeImage(name string, img image.Image, format preview.Format) (int64, error) {
	f, err := os.Create(name)
	if err != nil {
		return 0, err
	}
	if err = preview.Encode(f, img, format); err != nil {
		_ = f.Close()
		return 0, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return 0, err
	}
	return info.Size(), f.Close()
}

func displayFrameStats(stats []frameStats) {
	if len(stats) == 0 {
		return
	}

	var (
		buf         bytes.Buffer
		renderTotal time.Duration
		encodeTotal time.Duration
		sizeTotal   int64
	)
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "File", "Size", "Render time", "Encode time"})
	for _, stat := range stats {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Frame),
			stat.Name,
			fmt.Sprintf("%d", stat.Size),
			stat.RenderTime.String(),
			stat.EncodeTime.String(),
		})
		renderTotal += stat.RenderTime
		encodeTotal += stat.EncodeTime
		sizeTotal += stat.Size
	}
	table.SetFooter([]string{"", "TOTAL", fmt.Sprintf("%d", sizeTotal), renderTotal.String(), encodeTotal.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
