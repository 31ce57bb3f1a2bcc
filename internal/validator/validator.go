package validator

import (
	"context"

	"svw.info/sudoku-play/internal/domain"
)

// CanPlace reports whether digit v may legally occupy (row, col): false iff
// v already appears elsewhere in the row, the column, or the 3x3 box. The
// probed cell itself is excluded from the scan, so checking a cell that
// already holds v does not count as a self-collision.
func CanPlace(g *domain.Grid, row, col int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if i != col && g[row][i] == v {
			return false
		}
		if i != row && g[i][col] == v {
			return false
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			r, c := br+dr, bc+dc
			if (r != row || c != col) && g[r][c] == v {
				return false
			}
		}
	}
	return true
}

// Complete reports whether the grid has no empty cells.
func Complete(g *domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate scans all 27 houses with digit bitmasks and reports the cells
// where a duplicate was seen. Empty cells are ignored.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := b.Values[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
