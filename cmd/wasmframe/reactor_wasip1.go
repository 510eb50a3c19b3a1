//go:build wasip1

package main

import (
	"unsafe"

	"github.com/BeatGlow/wasmframe"
)

const reactor = true

//go:wasmimport env js_sin
func jsSin(x float32) float32

var host = wasmframe.New(&wasmframe.Config{
	Periodic: jsSin,
	UseTable: true,
	Workers:  1,
})

// The embedder must not call render again before the previous call returned.
// An overlapping call halts the module.
//
//go:wasmexport go
func render() {
	host.Render()
}

//go:wasmexport the_answer
func theAnswer() uint32 {
	return host.TheAnswer()
}

//go:wasmexport frame_buffer
func frameBuffer() unsafe.Pointer {
	return unsafe.Pointer(&host.Store().Pixels()[0])
}

//go:wasmexport frame_buffer_len
func frameBufferLen() uint32 {
	return uint32(len(host.Store().Bytes()))
}

//go:wasmexport frame_width
func frameWidth() uint32 {
	return wasmframe.Width
}

//go:wasmexport frame_height
func frameHeight() uint32 {
	return wasmframe.Height
}

//go:wasmexport frame_index
func frameIndex() uint32 {
	return host.Frame()
}
