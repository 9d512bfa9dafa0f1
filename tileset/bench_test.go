package tileset

import (
	"math/rand"
	"testing"

	"github.com/wainwrightmark/geometrid-sub000/tile"
	"github.com/wainwrightmark/geometrid-sub000/word"
)

func BenchmarkNthSparse(b *testing.B) {
	g := MustGeometry[word.U256](16, 16)
	rng := rand.New(rand.NewSource(1))
	s := g.FromFunc(func(tile.Tile) bool { return rng.Intn(100) < 5 })

	for b.Loop() {
		it := s.Iter()
		for {
			if _, ok := it.Nth(3); !ok {
				break
			}
		}
	}
}

func BenchmarkNthDense(b *testing.B) {
	g := MustGeometry[word.U256](16, 16)
	rng := rand.New(rand.NewSource(2))
	s := g.FromFunc(func(tile.Tile) bool { return rng.Intn(100) < 85 })

	for b.Loop() {
		it := s.Iter()
		for {
			if _, ok := it.Nth(7); !ok {
				break
			}
		}
	}
}

func BenchmarkSingleStepDrain(b *testing.B) {
	g := MustGeometry[word.U256](16, 16)
	rng := rand.New(rand.NewSource(3))
	s := g.FromFunc(func(tile.Tile) bool { return rng.Intn(100) < 50 })

	for b.Loop() {
		it := s.Iter()
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

func BenchmarkUnionCount(b *testing.B) {
	g := MustGeometry[word.U256](16, 16)
	rng := rand.New(rand.NewSource(4))
	s := randomSet(g, rng)
	o := randomSet(g, rng)

	for b.Loop() {
		_ = s.Union(o).Count()
	}
}
