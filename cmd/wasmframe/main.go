// Command wasmframe is the WebAssembly module a browser or other embedder
// drives once per animation frame.
//
// Build it as a reactor:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o wasmframe.wasm ./cmd/wasmframe
//
// The embedder provides env.js_sin, calls the exported "go" function once per
// frame and then reads frame_buffer_len bytes at frame_buffer as RGBA pixels.
//
// The embedder must pass a program name as argv[0] when it instantiates the
// WASI module. The logging setup run by _initialize reads it and the module
// traps without it.
package main

import (
	"fmt"
	"os"
)

func main() {
	if !reactor {
		fmt.Fprintln(os.Stderr, "wasmframe: build with GOOS=wasip1 GOARCH=wasm -buildmode=c-shared")
		os.Exit(1)
	}
}
