// Package wasmframe renders a procedurally generated animation into a fixed
// grid of packed pixels that a host reads after every frame.
//
// A [Host] owns the grid, the frame counter and the renderer. The host
// environment calls [Host.Render] once per animation frame and then reads the
// grid through [Store.Pixels] or [Store.Bytes].
package wasmframe

import "errors"

// Grid dimensions.
const (
	Width  = 600
	Height = 600
)

// TheAnswer is returned by the constant query entry point.
const TheAnswer uint32 = 42

// Errors
var (
	ErrReentrant = errors.New("wasmframe: render entered while a previous render is in flight")
	ErrFaulted   = errors.New("wasmframe: host is halted after an earlier fault")
	ErrBounds    = errors.New("wasmframe: out of grid bounds")
)
