package main

import (
	"github.com/urfave/cli"

	"github.com/BeatGlow/wasmframe/log"
)

var logger = log.New("frame-preview")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
