//go:build !cgo

package viewer

import (
	"errors"

	"github.com/BeatGlow/wasmframe"
)

// Run is not available without cgo.
func Run(_ *wasmframe.Host, _ Options) error {
	return errors.New("viewer: window mode requires cgo (build/run with CGO_ENABLED=1)")
}
