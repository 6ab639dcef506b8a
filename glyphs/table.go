// Package glyphs turns text into live-cell patterns on a grid.
package glyphs

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-names/model"
)

const (
	liveMark = '#'
	deadMark = '.'
)

// Pattern is the rectangular live-cell shape of one character
type Pattern struct {
	bitmap model.Bitmap
	width  int
}

// Width returns the number of columns in the pattern
func (p Pattern) Width() int { return p.width }

// Height returns the number of rows in the pattern
func (p Pattern) Height() int { return len(p.bitmap) }

// Bitmap returns the cells of the pattern
func (p Pattern) Bitmap() model.Bitmap { return p.bitmap }

// Table maps characters to their patterns. A Table is read-only once built.
type Table map[rune]Pattern

// Lookup returns the pattern for ch
func (t Table) Lookup(ch rune) (Pattern, bool) {
	p, ok := t[ch]
	return p, ok
}

// ParsePattern builds a pattern from rows of '#' (alive) and '.' (dead)
func ParsePattern(rows []string) (Pattern, error) {
	if len(rows) == 0 {
		return Pattern{}, errors.New("[ParsePattern] pattern has no rows")
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return Pattern{}, errors.New("[ParsePattern] pattern has no columns")
	}

	bitmap := make(model.Bitmap, len(rows))
	for i, row := range rows {
		line := []rune(row)
		if len(line) != width {
			return Pattern{}, errors.Errorf("[ParsePattern] row %d has width %d, want %d", i, len(line), width)
		}
		bitmap[i] = make([]model.Cell, width)
		for j, mark := range line {
			switch mark {
			case liveMark:
				bitmap[i][j] = model.Alive
			case deadMark:
			default:
				return Pattern{}, errors.Errorf("[ParsePattern] row %d: unexpected mark %q", i, mark)
			}
		}
	}

	return Pattern{bitmap: bitmap, width: width}, nil
}

// NewTable parses every pattern in src
func NewTable(src map[rune][]string) (Table, error) {
	table := make(Table, len(src))
	for ch, rows := range src {
		p, err := ParsePattern(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "[NewTable] invalid pattern for %q", ch)
		}
		table[ch] = p
	}
	return table, nil
}

// MustTable is like NewTable but panics on a malformed pattern
func MustTable(src map[rune][]string) Table {
	table, err := NewTable(src)
	if err != nil {
		panic(err)
	}
	return table
}
