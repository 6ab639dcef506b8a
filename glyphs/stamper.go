package glyphs

import "github.com/sheikhrachel/go-gol-names/model"

// Placement is where one character lands on the grid
type Placement struct {
	Char    rune
	Row     int
	Col     int
	Pattern Pattern
}

// Stamper writes text onto grids using a pattern table
type Stamper struct {
	table Table
}

// NewStamper creates a stamper. A nil table means the built-in font.
func NewStamper(table Table) *Stamper {
	if table == nil {
		table = Default()
	}
	return &Stamper{table: table}
}

// PlaceGlyph overlays the pattern for ch with its top-left cell at
// (startRow, startCol). Unknown characters leave the grid unchanged.
func (s *Stamper) PlaceGlyph(grid *model.Grid, ch rune, startRow, startCol int) *model.Grid {
	p, ok := s.table.Lookup(ch)
	if !ok {
		return grid
	}
	return grid.Overlay(p.bitmap, startRow, startCol)
}

// Layout walks text left to right and returns where each known character
// goes on a grid cols wide. A character that would cross the right edge
// starts a new line at startCol, moved down by its own height plus one.
func (s *Stamper) Layout(text string, startRow, startCol, cols int) []Placement {
	var (
		placements []Placement
		row        = startRow
		col        = startCol
	)

	for _, ch := range text {
		p, ok := s.table.Lookup(ch)
		if !ok {
			continue
		}

		if col+p.Width() > cols {
			row += p.Height() + 1
			col = startCol
		}

		placements = append(placements, Placement{Char: ch, Row: row, Col: col, Pattern: p})
		col += p.Width() + 1
	}

	return placements
}

// PlaceText stamps every character of text onto grid, wrapping lines that
// would overflow the grid width. Rows below the grid are clipped.
func (s *Stamper) PlaceText(grid *model.Grid, text string, startRow, startCol int) *model.Grid {
	for _, pl := range s.Layout(text, startRow, startCol, grid.Cols()) {
		grid = s.PlaceGlyph(grid, pl.Char, pl.Row, pl.Col)
	}
	return grid
}
