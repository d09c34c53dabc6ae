// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package calculator

import (
	"github.com/toeirei/keycalc/internal/calc"
	"github.com/toeirei/keycalc/ui/tui/util"
)

// grid is the keypad as four columns per row; a wide key fills two cells.
type grid [][]calc.Button

func newGrid(rows [][]calc.Button) grid {
	g := make(grid, len(rows))
	for i, row := range rows {
		for _, b := range row {
			g[i] = append(g[i], b)
			if b.Wide() {
				g[i] = append(g[i], b)
			}
		}
	}
	return g
}

// cursor is a cell position in the grid.
type cursor struct {
	row, col int
}

func (g grid) at(c cursor) calc.Button {
	return g[c.row][c.col]
}

// move steps the cursor by dr rows or dc keys. Horizontal moves skip the
// second cell of a wide key.
func (g grid) move(c cursor, dr, dc int) cursor {
	if dr != 0 {
		c.row = util.Clamp(0, c.row+dr, len(g)-1)
		c.col = util.Clamp(0, c.col, len(g[c.row])-1)
		return c
	}

	current := g.at(c)
	next := c.col
	for {
		next += dc
		if next < 0 || next >= len(g[c.row]) {
			return c
		}
		if g[c.row][next] != current {
			c.col = next
			return c
		}
	}
}

// find returns the first cell holding b.
func (g grid) find(b calc.Button) (cursor, bool) {
	for r, row := range g {
		for col, cell := range row {
			if cell == b {
				return cursor{row: r, col: col}, true
			}
		}
	}
	return cursor{}, false
}
