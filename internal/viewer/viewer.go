// Package viewer is a desktop window that acts as the host of a
// wasmframe.Host: it renders one frame per tick and shows the grid.
package viewer

// Options configure the window.
type Options struct {
	// Title of the window.
	Title string

	// Scale is the initial window size as a multiple of the grid size.
	Scale float64

	// TPS is the number of frames rendered per second.
	TPS int

	// Stats shows the frame index and the measured rates.
	Stats bool
}

func (o *Options) defaults() {
	if o.Title == "" {
		o.Title = "wasmframe"
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.TPS <= 0 {
		o.TPS = 60
	}
}
