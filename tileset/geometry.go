// Package tileset implements a fixed-capacity, bit-packed boolean grid over
// a bounded WIDTH x HEIGHT tile space. A set is a single backing word with
// one bit per tile, giving O(1) set algebra and popcount-exact sizes, plus a
// double-ended, run-skipping iterator over present tiles.
package tileset

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/wainwrightmark/geometrid-sub000/tile"
	"github.com/wainwrightmark/geometrid-sub000/word"
)

var (
	ErrZeroDims     = errors.New("tileset: grid dimensions must be at least 1x1")
	ErrWordTooSmall = errors.New("tileset: tile count exceeds backing word width")
)

// Geometry is the immutable per-configuration state of a tile space: its
// dimensions, the all-tiles mask, and the row and column masks, precomputed
// once at construction. Sets hold a pointer to their Geometry and share it
// freely; nothing in a Geometry ever changes after NewGeometry returns.
type Geometry[W word.Word[W]] struct {
	dims tile.Dims
	size int

	all  W
	rows []W
	cols []W
}

// NewGeometry validates a (width, height) configuration against the backing
// word type and precomputes its masks. It fails when a dimension is zero or
// when width*height exceeds the word's bit width.
func NewGeometry[W word.Word[W]](width, height uint8) (*Geometry[W], error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrZeroDims, width, height)
	}

	var zero W
	dims := tile.Dims{Width: width, Height: height}
	size := dims.Size()

	if size > zero.Width() {
		return nil, fmt.Errorf("%w: %dx%d needs %d bits, word has %d",
			ErrWordTooSmall, width, height, size, zero.Width())
	}

	g := &Geometry[W]{
		dims: dims,
		size: size,
		all:  zero.Not().Shr(uint(zero.Width() - size)),
		rows: make([]W, height),
		cols: make([]W, width),
	}

	// Masks are built by walking the successor relation from the first tile
	// of each row/column, not by scanning the whole grid.
	for y := uint8(0); y < height; y++ {
		t, _ := dims.TileAt(0, y)
		m := zero.SetBit(int(t))
		for {
			next, ok := dims.Next(t, tile.East)
			if !ok {
				break
			}
			t = next
			m = m.SetBit(int(t))
		}
		g.rows[y] = m
	}
	for x := uint8(0); x < width; x++ {
		t, _ := dims.TileAt(x, 0)
		m := zero.SetBit(int(t))
		for {
			next, ok := dims.Next(t, tile.South)
			if !ok {
				break
			}
			t = next
			m = m.SetBit(int(t))
		}
		g.cols[x] = m
	}

	return g, nil
}

// MustGeometry is NewGeometry for configurations known valid at the call
// site; it panics on error.
func MustGeometry[W word.Word[W]](width, height uint8) *Geometry[W] {
	g, err := NewGeometry[W](width, height)
	if err != nil {
		panic(err)
	}
	return g
}

var (
	sharedGeometries sync.Map // string key -> *Geometry[W]
	sharedGroup      singleflight.Group
)

// Shared returns the memoized Geometry for a configuration, building it at
// most once per (width, height, word type) even under concurrent callers.
func Shared[W word.Word[W]](width, height uint8) (*Geometry[W], error) {
	var zero W
	key := fmt.Sprintf("%dx%d/%T", width, height, zero)

	if cached, ok := sharedGeometries.Load(key); ok {
		return cached.(*Geometry[W]), nil
	}

	v, err, _ := sharedGroup.Do(key, func() (any, error) {
		if cached, ok := sharedGeometries.Load(key); ok {
			return cached, nil
		}
		g, err := NewGeometry[W](width, height)
		if err != nil {
			return nil, err
		}
		slog.Debug("tileset: built geometry masks", "width", width, "height", height, "word_bits", zero.Width())
		sharedGeometries.Store(key, g)
		return g, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Geometry[W]), nil
}

// Dims returns the grid extent.
func (g *Geometry[W]) Dims() tile.Dims { return g.dims }

// Size returns the total tile count.
func (g *Geometry[W]) Size() int { return g.size }

// RowMask returns the word with exactly the bits of row y set. Out-of-range
// rows yield the zero word.
func (g *Geometry[W]) RowMask(y uint8) W {
	if y >= g.dims.Height {
		var zero W
		return zero
	}
	return g.rows[y]
}

// ColMask returns the word with exactly the bits of column x set.
// Out-of-range columns yield the zero word.
func (g *Geometry[W]) ColMask(x uint8) W {
	if x >= g.dims.Width {
		var zero W
		return zero
	}
	return g.cols[x]
}
