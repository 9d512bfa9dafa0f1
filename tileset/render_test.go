package tileset

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/wainwrightmark/geometrid-sub000/word"
)

func TestStringAndCompact(t *testing.T) {
	g := MustGeometry[word.U16](3, 3)
	s := g.FromFunc(evenTiles)

	assert.Equal(t, "*_*\n_*_\n*_*", s.String())
	assert.Equal(t, "*_*_*_*_*", s.Compact())

	assert.Equal(t, "___\n___\n___", g.Empty().String())
	assert.Equal(t, "*********", g.All().Compact())
}

func TestCompactIsStringWithoutSeparators(t *testing.T) {
	g := MustGeometry[word.U64](8, 8)
	s := g.FromTiles(0, 9, 18, 27, 36, 45, 54, 63)

	assert.Equal(t, strings.ReplaceAll(s.String(), "\n", ""), s.Compact())
}

func TestHighlight(t *testing.T) {
	g := MustGeometry[word.U16](3, 3)
	s := g.FromTiles(4)

	// force plain output so the assertion is stable without a terminal
	c := color.New(color.FgGreen)
	c.DisableColor()

	assert.Equal(t, s.String(), s.Highlight(c))

	c.EnableColor()
	colored := s.Highlight(c)
	assert.Contains(t, colored, "\x1b[")
	assert.Equal(t, 2, strings.Count(colored, "\n"))
}
