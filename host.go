package wasmframe

import (
	"sync/atomic"

	"github.com/BeatGlow/wasmframe/log"
)

// Host is the state behind the host boundary: the grid, the frame counter and
// the renderer.
//
// Render must not be called while a previous Render is still running. The
// Host checks this: an overlapping call is reported as a fault instead of
// racing on the grid.
type Host struct {
	store    *Store
	counter  Counter
	renderer *Renderer
	onFault  FaultHandler
	faulted  atomic.Bool
	log      log.Logger
}

// New creates a host with a zeroed grid and frame counter at 0.
func New(config *Config) *Host {
	if config == nil {
		config = new(Config)
	}
	h := &Host{
		store:    NewStore(),
		renderer: NewRenderer(config),
		onFault:  config.OnFault,
		log:      config.Logger,
	}
	if h.onFault == nil {
		h.onFault = Abort
	}
	if h.log == nil {
		h.log = log.New("wasmframe")
	}
	h.log.Debugf("renderer: %s", h.renderer)
	return h
}

// Render draws the next frame into the grid. It is the render entry point.
//
// After a fault the grid is left untouched and every later call reports
// ErrFaulted to the fault handler.
func (h *Host) Render() {
	if h.faulted.Load() {
		h.fault(h.counter.Load(), ErrFaulted)
		return
	}

	grid, release, ok := h.store.TryAcquire()
	if !ok {
		h.fault(h.counter.Load(), ErrReentrant)
		return
	}
	defer release()

	f := h.counter.Next()
	if err := h.render(grid, f); err != nil {
		h.fault(f, err)
	}
}

func (h *Host) render(grid *Grid, f uint32) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = panicError(v)
		}
	}()
	return h.renderer.RenderFrame(grid.ABGRImage, f)
}

func (h *Host) fault(frame uint32, cause error) {
	h.faulted.Store(true)
	err := &Fault{Frame: frame, Cause: cause}
	h.log.Critical(err)
	h.onFault(err)
}

// TheAnswer is the constant query entry point.
func (h *Host) TheAnswer() uint32 {
	return TheAnswer
}

// Frame returns the index the next render will capture.
func (h *Host) Frame() uint32 {
	return h.counter.Load()
}

// Seek sets the index the next render will capture.
func (h *Host) Seek(frame uint32) {
	h.counter.Reset(frame)
}

// Faulted reports whether the host is halted.
func (h *Host) Faulted() bool {
	return h.faulted.Load()
}

// Store returns the frame buffer.
func (h *Host) Store() *Store {
	return h.store
}
