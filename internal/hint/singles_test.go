package hint

import (
	"context"
	"testing"

	"svw.info/sudoku-play/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	// Row 0 misses only the 9 at (0,8).
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	b := &domain.Board{Values: g}

	h, ok, err := NewSingles().Hint(context.Background(), b)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a naked single")
	}
	if h.Digit != 9 {
		t.Fatalf("digit = %d, want 9", h.Digit)
	}
	if len(h.Cells) != 1 || h.Cells[0] != (domain.CellCoord{Row: 0, Col: 8}) {
		t.Fatalf("cells = %v, want [(0,8)]", h.Cells)
	}
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	b := &domain.Board{}
	_, ok, err := NewSingles().Hint(context.Background(), b)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if ok {
		t.Fatal("empty board has no naked singles")
	}
}
