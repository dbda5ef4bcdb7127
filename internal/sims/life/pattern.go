package life

import (
	"sort"

	"github.com/pkg/errors"
)

// Point addresses a cell by column and row.
type Point struct {
	X, Y int
}

// Pattern maps cell coordinates to explicit states. Cells not present are
// dead.
type Pattern map[Point]State

// ParseCells builds a pattern from rows of text. 'O', '#' and '*' mark live
// cells; any other character is a dead cell.
func ParseCells(rows ...string) Pattern {
	p := Pattern{}
	for y, row := range rows {
		for x, c := range row {
			switch c {
			case 'O', '#', '*':
				p[Point{X: x, Y: y}] = Alive
			}
		}
	}
	return p
}

// Bounds returns the extent of the live cells as width and height, measured
// from the origin.
func (p Pattern) Bounds() (w, h int) {
	for pt, s := range p {
		if s != Alive {
			continue
		}
		if pt.X+1 > w {
			w = pt.X + 1
		}
		if pt.Y+1 > h {
			h = pt.Y + 1
		}
	}
	return w, h
}

// Translate returns a copy of the pattern shifted by (dx, dy).
func (p Pattern) Translate(dx, dy int) Pattern {
	out := make(Pattern, len(p))
	for pt, s := range p {
		out[Point{X: pt.X + dx, Y: pt.Y + dy}] = s
	}
	return out
}

// Centered returns a copy of the pattern moved to the middle of an n×n grid.
func (p Pattern) Centered(n int) Pattern {
	w, h := p.Bounds()
	return p.Translate((n-w)/2, (n-h)/2)
}

var patterns = map[string]Pattern{
	"block":       ParseCells("OO", "OO"),
	"blinker":     ParseCells("OOO"),
	"toad":        ParseCells(".OOO", "OOO."),
	"beacon":      ParseCells("OO..", "OO..", "..OO", "..OO"),
	"glider":      ParseCells(".O.", "..O", "OOO"),
	"r-pentomino": ParseCells(".OO", "OO.", ".O."),
}

// PatternNames lists the built-in patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamedPattern returns a copy of a built-in pattern anchored at the origin.
func NamedPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "%q (available: %v)", name, PatternNames())
	}
	return p.Translate(0, 0), nil
}
