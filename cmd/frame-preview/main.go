// Command frame-preview runs the frame renderer natively: it writes frames to
// image files, streams them to a Linux framebuffer or shows them in a window.
package main

import (
	"os"

	"github.com/urfave/cli"
	"periph.io/x/conn/v3/physic"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "frame-preview"
	app.Usage = "render wasmframe frames without a browser"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render frames to image files",
			Description: `
Render a sequence of frames and write each one to an image file. The output
name is a printf pattern that receives the frame index, and its extension
selects the image format unless --format is given.`,
			Flags: append(hostFlags(),
				cli.IntFlag{
					Name:  "frames, n",
					Value: 1,
					Usage: "number of frames to render",
				},
				cli.UintFlag{
					Name:  "start",
					Usage: "index of the first frame",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame-%04d.png",
					Usage: "output file name pattern",
				},
				cli.StringFlag{
					Name:  "format",
					Usage: "image format: png, bmp, tiff, webp or tga",
				},
				cli.IntFlag{
					Name:  "size",
					Usage: "scale frames to this many pixels square, 0 keeps the native size",
				},
				cli.StringFlag{
					Name:  "kernel",
					Value: "catmull-rom",
					Usage: "scaling kernel: nearest, approx, bilinear or catmull-rom",
				},
				cli.BoolFlag{
					Name:  "label",
					Usage: "stamp the frame index on every image",
				},
			),
			Action: RenderFrames,
		},
		{
			Name:  "play",
			Usage: "stream frames to a framebuffer device",
			Flags: append(hostFlags(),
				cli.StringFlag{
					Name:  "device, d",
					Value: "/dev/fb0",
					Usage: "framebuffer device",
				},
				cli.GenericFlag{
					Name:  "rate, r",
					Value: newRate(30 * physic.Hertz),
					Usage: "frame rate, for example 30Hz",
				},
				cli.IntFlag{
					Name:  "frames, n",
					Usage: "stop after this many frames, 0 plays until interrupted",
				},
				cli.StringFlag{
					Name:  "kernel",
					Value: "bilinear",
					Usage: "scaling kernel: nearest, approx, bilinear or catmull-rom",
				},
			),
			Action: Play,
		},
		{
			Name:  "view",
			Usage: "show frames in a window",
			Flags: append(hostFlags(),
				cli.GenericFlag{
					Name:  "rate, r",
					Value: newRate(60 * physic.Hertz),
					Usage: "frame rate, for example 60Hz",
				},
				cli.Float64Flag{
					Name:  "scale",
					Value: 1,
					Usage: "window size as a multiple of the frame size",
				},
				cli.BoolFlag{
					Name:  "stats",
					Usage: "show frame index and rates",
				},
			),
			Action: View,
		},
		{
			Name:   "answer",
			Usage:  "print the answer",
			Action: Answer,
		},
	}
	return app
}
