package wasmframe

import (
	"image"
	"sync"

	"github.com/BeatGlow/wasmframe/pixel"
)

// Store is the frame buffer: a Width x Height grid of [pixel.ABGR] words in
// row-major order. The backing memory is allocated once and never moves.
type Store struct {
	mu   sync.Mutex
	grid Grid
}

// Grid is the exclusive, mutable view of a Store handed out by Acquire.
type Grid struct {
	*pixel.ABGRImage
}

// NewStore allocates a zeroed grid.
func NewStore() *Store {
	return &Store{
		grid: Grid{pixel.NewABGRImage(Width, Height)},
	}
}

// Acquire blocks until no other access is outstanding and returns the grid
// together with the function that gives it back.
func (s *Store) Acquire() (*Grid, func()) {
	s.mu.Lock()
	return &s.grid, sync.OnceFunc(s.mu.Unlock)
}

// TryAcquire is like Acquire but reports false instead of waiting when the grid
// is already held.
func (s *Store) TryAcquire() (*Grid, func(), bool) {
	if !s.mu.TryLock() {
		return nil, nil, false
	}
	return &s.grid, sync.OnceFunc(s.mu.Unlock), true
}

// Bounds is the grid bounding box.
func (s *Store) Bounds() image.Rectangle {
	return s.grid.Rect
}

// Pixels returns the backing storage. The host reads it between renders only.
func (s *Store) Pixels() []uint32 {
	return s.grid.Pix
}

// Bytes returns the backing storage as bytes in host byte order.
func (s *Store) Bytes() []byte {
	return s.grid.Bytes()
}

// Snapshot copies the grid into a new image while holding exclusive access.
func (s *Store) Snapshot() *image.NRGBA {
	g, release := s.Acquire()
	defer release()
	return g.NRGBA()
}

// AppendRGBA appends the grid as R, G, B, A bytes while holding exclusive
// access.
func (s *Store) AppendRGBA(dst []byte) []byte {
	g, release := s.Acquire()
	defer release()
	return g.AppendRGBA(dst)
}

// Index returns the linear index of (x, y).
func (g *Grid) Index(x, y int) (int, error) {
	if !(image.Point{X: x, Y: y}).In(g.Rect) {
		return 0, ErrBounds
	}
	return g.PixOffset(x, y), nil
}
