package model

import "testing"

// fromRows builds a grid from strings of '#' (alive) and '.' (dead)
func fromRows(rows ...string) *Grid {
	g := NewGrid(len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				g.cells[r][c] = Alive
			}
		}
	}
	return g
}

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(4, 7)
	if g.Rows() != 4 || g.Cols() != 7 {
		t.Fatalf("got %dx%d, want 4x7", g.Rows(), g.Cols())
	}
	for r := range 4 {
		if len(g.cells[r]) != 7 {
			t.Fatalf("row %d has %d cells, want 7", r, len(g.cells[r]))
		}
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("new grid has %d living cells", n)
	}
}

func TestNewGridNegativeDimensions(t *testing.T) {
	g := NewGrid(-3, -1)
	if g.Rows() != 0 || g.Cols() != 0 {
		t.Fatalf("got %dx%d, want 0x0", g.Rows(), g.Cols())
	}
}

func TestAtOutOfBoundsIsDead(t *testing.T) {
	g := fromRows("##", "##")
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if g.At(pos[0], pos[1]) != Dead {
			t.Errorf("At(%d,%d) = Alive, want Dead", pos[0], pos[1])
		}
	}
}

func TestToggleIsIdempotent(t *testing.T) {
	g := fromRows(
		".#.",
		"#..",
		"..#",
	)
	for r := range 3 {
		for c := range 3 {
			once := g.Toggle(r, c)
			if once.At(r, c) == g.At(r, c) {
				t.Fatalf("Toggle(%d,%d) did not flip the cell", r, c)
			}
			if !once.Toggle(r, c).Equal(g) {
				t.Fatalf("Toggle(%d,%d) twice did not restore the grid", r, c)
			}
		}
	}
}

func TestToggleDoesNotMutateReceiver(t *testing.T) {
	g := NewGrid(3, 3)
	next := g.Toggle(1, 1)
	if g.Alive(1, 1) {
		t.Fatal("Toggle modified the original grid")
	}
	if !next.Alive(1, 1) {
		t.Fatal("Toggle result missing the flipped cell")
	}
}

func TestToggleOutOfBoundsIsNoop(t *testing.T) {
	g := fromRows("#.", ".#")
	for _, pos := range [][2]int{{-1, 0}, {0, 2}, {2, 1}, {5, 5}} {
		if got := g.Toggle(pos[0], pos[1]); got != g {
			t.Errorf("Toggle(%d,%d) returned a new grid", pos[0], pos[1])
		}
	}
}

func TestOverlayOverwritesAndClips(t *testing.T) {
	g := fromRows(
		"####",
		"####",
		"####",
	)
	bm := Bitmap{
		{Dead, Alive},
		{Alive, Dead},
	}

	got := g.Overlay(bm, 2, 3)
	want := fromRows(
		"####",
		"####",
		"###.",
	)
	if !got.Equal(want) {
		t.Fatalf("overlay at the corner:\n%v\nwant\n%v", got.cells, want.cells)
	}

	got = g.Overlay(bm, -1, -1)
	want = fromRows(
		".###",
		"####",
		"####",
	)
	if !got.Equal(want) {
		t.Fatalf("overlay off the top-left:\n%v\nwant\n%v", got.cells, want.cells)
	}

	got = g.Overlay(bm, 0, 0)
	want = fromRows(
		".###",
		"#.##",
		"####",
	)
	if !got.Equal(want) {
		t.Fatalf("overlay at origin:\n%v\nwant\n%v", got.cells, want.cells)
	}
	if g.CountLivingCells() != 12 {
		t.Fatal("Overlay modified the original grid")
	}
}

func TestCountNeighborsClampsAtEdges(t *testing.T) {
	g := fromRows(
		"##.#",
		"##..",
		"....",
		"#..#",
	)
	tests := []struct {
		r, c int
		want int
	}{
		{0, 0, 3},
		{1, 1, 3},
		{3, 3, 0},
		{0, 3, 0},
		{2, 0, 3},
	}
	for _, tt := range tests {
		if got := g.CountNeighbors(tt.r, tt.c); got != tt.want {
			t.Errorf("CountNeighbors(%d,%d) = %d, want %d", tt.r, tt.c, got, tt.want)
		}
	}
}

func TestHashAndEqual(t *testing.T) {
	a := fromRows("#..", ".#.")
	b := fromRows("#..", ".#.")
	c := fromRows("#..", "..#")

	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Fatal("identical grids compare unequal")
	}
	if a.Equal(c) || a.Hash() == c.Hash() {
		t.Fatal("different grids compare equal")
	}
	if a.Equal(NewGrid(3, 2)) {
		t.Fatal("grids with different shapes compare equal")
	}
}

func TestBoundingBoxSize(t *testing.T) {
	if n := NewGrid(5, 5).BoundingBoxSize(); n != 0 {
		t.Fatalf("empty grid bounding box = %d, want 0", n)
	}
	g := fromRows(
		".....",
		".#...",
		"...#.",
		".....",
	)
	if n := g.BoundingBoxSize(); n != 6 {
		t.Fatalf("bounding box = %d, want 6", n)
	}
}

func TestGridPoolReturnsEmptyGrids(t *testing.T) {
	pool := NewGridPool()
	dirty := fromRows("###", "###")
	GridToPool(dirty, pool)

	g := pool.Get(2, 3)
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("got %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("pooled grid has %d living cells", n)
	}

	g = pool.Get(4, 1)
	if g.Rows() != 4 || g.Cols() != 1 || g.CountLivingCells() != 0 {
		t.Fatal("pooled grid was not resized")
	}
}
