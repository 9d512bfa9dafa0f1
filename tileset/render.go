package tileset

import (
	"strings"

	"github.com/fatih/color"
)

const (
	presentGlyph = '*'
	absentGlyph  = '_'
)

// String renders one glyph per tile, '*' present and '_' absent, with rows
// separated by a line break.
func (s Set[W]) String() string {
	var b strings.Builder
	b.Grow(s.geo.size + int(s.geo.dims.Height))

	for i := 0; i < s.geo.size; i++ {
		if i > 0 && i%int(s.geo.dims.Width) == 0 {
			b.WriteByte('\n')
		}
		if s.bits.Bit(i) {
			b.WriteByte(presentGlyph)
		} else {
			b.WriteByte(absentGlyph)
		}
	}
	return b.String()
}

// Compact renders the same glyphs with all separators dropped.
func (s Set[W]) Compact() string {
	var b strings.Builder
	b.Grow(s.geo.size)

	for i := 0; i < s.geo.size; i++ {
		if s.bits.Bit(i) {
			b.WriteByte(presentGlyph)
		} else {
			b.WriteByte(absentGlyph)
		}
	}
	return b.String()
}

// Highlight renders like String with present glyphs wrapped in the given
// terminal color, for eyeballing grids in test and debug output.
func (s Set[W]) Highlight(c *color.Color) string {
	var b strings.Builder

	for i := 0; i < s.geo.size; i++ {
		if i > 0 && i%int(s.geo.dims.Width) == 0 {
			b.WriteByte('\n')
		}
		if s.bits.Bit(i) {
			b.WriteString(c.Sprint(string(presentGlyph)))
		} else {
			b.WriteByte(absentGlyph)
		}
	}
	return b.String()
}
