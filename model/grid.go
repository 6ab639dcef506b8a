package model

import (
	"crypto/md5"
	"fmt"
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Bitmap is a rectangular block of cells, row-major
type Bitmap [][]Cell

// Grid represents the game board. A Grid is never modified after it is
// returned to a caller; every mutation produces a new Grid.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid creates an empty grid with the specified dimensions
func NewGrid(rows, cols int) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the state of a cell. Out of bounds reads as Dead.
func (g *Grid) At(r, c int) Cell {
	if !g.inBounds(r, c) {
		return Dead
	}
	return g.cells[r][c]
}

// Alive reports whether the cell at (r, c) is alive
func (g *Grid) Alive(r, c int) bool {
	return g.At(r, c) == Alive
}

// reset resizes a recycled grid and clears every cell
func (g *Grid) reset(rows, cols int) {
	g.rows = rows
	g.cols = cols

	if len(g.cells) != rows {
		g.cells = make([][]Cell, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]Cell, cols)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clone returns a deep copy that shares no rows with g
func (g *Grid) Clone() *Grid {
	next := NewGrid(g.rows, g.cols)
	for r := range g.rows {
		copy(next.cells[r], g.cells[r])
	}
	return next
}

// Toggle returns a copy of the grid with cell (r, c) flipped.
// Out of bounds coordinates return g unchanged.
func (g *Grid) Toggle(r, c int) *Grid {
	if !g.inBounds(r, c) {
		return g
	}
	next := g.Clone()
	next.cells[r][c] ^= Alive
	return next
}

// Overlay returns a copy of the grid with bm written at (row, col).
// Bitmap values overwrite the destination; cells falling outside the grid
// are dropped.
func (g *Grid) Overlay(bm Bitmap, row, col int) *Grid {
	next := g.Clone()
	for i, line := range bm {
		for j, v := range line {
			if r, c := row+i, col+j; next.inBounds(r, c) {
				next.cells[r][c] = v & Alive
			}
		}
	}
	return next
}

// CountNeighbors counts living cells in the Moore neighbourhood of (r, c).
// Neighbours past the edge count as dead.
func (g *Grid) CountNeighbors(r, c int) int {
	count := 0

	minR := max(0, r-1)
	maxR := min(g.rows-1, r+1)
	minC := max(0, c-1)
	maxC := min(g.cols-1, c+1)

	for nr := minR; nr <= maxR; nr++ {
		for nc := minC; nc <= maxC; nc++ {
			if nr == r && nc == c {
				continue
			}
			count += int(g.cells[nr][nc])
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			count += int(g.cells[r][c])
		}
	}
	return
}

// Equal reports whether both grids have the same shape and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 hash of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for r := range g.rows {
		for c := range g.cols {
			h.Write([]byte{byte(g.cells[r][c])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// bounds is the bounding box of living cells
type bounds struct {
	minR, maxR, minC, maxC int
	valid                  bool
}

// activeBounds calculates the bounding box of living cells
func (g *Grid) activeBounds() (b bounds) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] == Dead {
				continue
			}
			if !b.valid {
				b = bounds{minR: r, maxR: r, minC: c, maxC: c, valid: true}
				continue
			}
			b.minR = min(b.minR, r)
			b.maxR = max(b.maxR, r)
			b.minC = min(b.minC, c)
			b.maxC = max(b.maxC, c)
		}
	}
	return
}

// BoundingBoxSize returns the area of the region holding living cells
func (g *Grid) BoundingBoxSize() int {
	b := g.activeBounds()
	if !b.valid {
		return 0
	}
	return (b.maxR - b.minR + 1) * (b.maxC - b.minC + 1)
}
