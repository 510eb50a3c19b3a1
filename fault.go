package wasmframe

import (
	"fmt"
	"os"
)

// ExitFault is the process exit status used by Abort.
const ExitFault = 70

// Fault is an unrecoverable error raised by a render.
type Fault struct {
	// Frame is the index captured by the faulting render. A call rejected
	// before capturing reports the index the next render would capture.
	Frame uint32

	// Cause is the panic value, or one of ErrReentrant and ErrFaulted.
	Cause error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("wasmframe: fault at frame %d: %v", f.Frame, f.Cause)
}

func (f *Fault) Unwrap() error {
	return f.Cause
}

// FaultHandler is called with a *Fault. It must not call back into the Host.
type FaultHandler func(err error)

var exit = os.Exit

// Abort terminates the process with ExitFault. The host has already logged
// err.
func Abort(err error) {
	exit(ExitFault)
}

func panicError(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", v)
}
