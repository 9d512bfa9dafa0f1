package tile

import "testing"

func TestIndexCoordRoundTrip(t *testing.T) {
	d := Dims{Width: 5, Height: 3}

	for i := 0; i < d.Size(); i++ {
		c := d.Coord(Tile(i))
		if !d.Contains(c) {
			t.Errorf("coord %v of tile %d outside grid", c, i)
		}
		if got := d.Index(c); got != Tile(i) {
			t.Errorf("round trip of tile %d gave %d", i, got)
		}
	}
}

func TestTileAtBounds(t *testing.T) {
	d := Dims{Width: 4, Height: 3}

	got, ok := d.TileAt(3, 2)
	if !ok || got != 11 {
		t.Errorf("TileAt(3,2) = %d, %v", got, ok)
	}

	if _, ok := d.TileAt(4, 0); ok {
		t.Errorf("TileAt(4,0) should be out of range")
	}
	if _, ok := d.TileAt(0, 3); ok {
		t.Errorf("TileAt(0,3) should be out of range")
	}
}

func TestNext(t *testing.T) {
	d := Dims{Width: 4, Height: 3}

	cases := []struct {
		from Tile
		dir  Direction
		want Tile
		ok   bool
	}{
		{from: 0, dir: East, want: 1, ok: true},
		{from: 0, dir: South, want: 4, ok: true},
		{from: 0, dir: West, ok: false},
		{from: 0, dir: North, ok: false},
		{from: 3, dir: East, ok: false},
		{from: 5, dir: NorthWest, want: 0, ok: true},
		{from: 5, dir: SouthEast, want: 10, ok: true},
		{from: 11, dir: South, ok: false},
		{from: 8, dir: West, ok: false},
	}

	for _, c := range cases {
		got, ok := d.Next(c.from, c.dir)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("Next(%d, %s) = %d, %v; want %d, %v", c.from, c.dir, got, ok, c.want, c.ok)
		}
	}
}

func TestSuccessorWalkCoversRow(t *testing.T) {
	d := Dims{Width: 6, Height: 2}

	cur, _ := d.TileAt(0, 1)
	visited := []Tile{cur}
	for {
		next, ok := d.Next(cur, East)
		if !ok {
			break
		}
		cur = next
		visited = append(visited, cur)
	}

	if len(visited) != int(d.Width) {
		t.Fatalf("walk visited %d tiles, want %d", len(visited), d.Width)
	}
	for i, v := range visited {
		if want := Tile(int(d.Width) + i); v != want {
			t.Errorf("walk step %d visited %d, want %d", i, v, want)
		}
	}
}
