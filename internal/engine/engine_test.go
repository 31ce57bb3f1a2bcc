package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudoku-play/internal/domain"
	"svw.info/sudoku-play/internal/generator"
	"svw.info/sudoku-play/internal/validator"
)

// A complete, valid grid.
var solved = domain.Grid{
	{2, 4, 3, 1, 5, 6, 7, 9, 8},
	{1, 5, 8, 7, 3, 9, 2, 4, 6},
	{6, 7, 9, 2, 8, 4, 3, 5, 1},
	{4, 2, 6, 5, 7, 1, 8, 3, 9},
	{9, 8, 1, 3, 6, 2, 4, 7, 5},
	{5, 3, 7, 4, 9, 8, 1, 6, 2},
	{3, 1, 5, 6, 2, 7, 9, 8, 4},
	{8, 6, 4, 9, 1, 3, 5, 2, 7},
	{7, 9, 2, 8, 4, 5, 6, 1, 3},
}

func newEngine() *Engine {
	return New(generator.NewRandomized(), validator.New())
}

// playableSession builds a session directly, bypassing generation, with the
// given board values; cells listed in fixed are marked as givens.
func playableSession(values domain.Grid, fixed ...domain.CellCoord) *domain.Session {
	s := &domain.Session{
		Board:    domain.Board{Values: values},
		Solution: solved,
		State:    domain.Playable,
	}
	for _, f := range fixed {
		s.Board.Fixed[f.Row][f.Col] = true
	}
	return s
}

func TestNewSessionIsPlayable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	e := newEngine()
	s, st, err := e.NewSession(ctx, 12345, generator.DefaultRemovals)
	if err != nil {
		t.Fatalf("NewSession failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if s.State != domain.Playable {
		t.Fatalf("state = %v, want playable", s.State)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if s.Solution[r][c] == 0 {
				t.Fatalf("solution has empty cell at r=%d c=%d", r, c)
			}
			if s.Board.Fixed[r][c] != (s.Board.Values[r][c] != 0) {
				t.Fatalf("fixed mask disagrees with givens at r=%d c=%d", r, c)
			}
		}
	}
}

func TestPlaceDigitRejectsFixedSilently(t *testing.T) {
	e := newEngine()
	var g domain.Grid
	g[0][0] = 7
	s := playableSession(g, domain.CellCoord{Row: 0, Col: 0})

	applied, err := e.PlaceDigit(s, 0, 0, 3)
	if err != nil {
		t.Fatalf("fixed-cell placement must not error: %v", err)
	}
	if applied {
		t.Fatal("fixed-cell placement must be a no-op")
	}
	if s.Board.Values[0][0] != 7 {
		t.Fatal("fixed cell was mutated")
	}

	applied, err = e.ClearCell(s, 0, 0)
	if err != nil || applied {
		t.Fatalf("fixed-cell clear must be a silent no-op: applied=%v err=%v", applied, err)
	}
}

func TestPlaceDigitFailsFastOnBadInput(t *testing.T) {
	e := newEngine()
	s := playableSession(domain.Grid{})

	cases := []struct {
		name    string
		row     int
		col     int
		v       uint8
		wantErr error
	}{
		{"row too low", -1, 0, 5, ErrOutOfRange},
		{"row too high", 9, 0, 5, ErrOutOfRange},
		{"col too high", 0, 9, 5, ErrOutOfRange},
		{"digit zero", 0, 0, 0, ErrBadDigit},
		{"digit too high", 0, 0, 10, ErrBadDigit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := e.PlaceDigit(s, tc.row, tc.col, tc.v); !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
	if _, err := e.ClearCell(s, 3, 99); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("ClearCell range err = %v", err)
	}
}

func TestPlaceAndClearMutateEditableCells(t *testing.T) {
	e := newEngine()
	s := playableSession(domain.Grid{})

	applied, err := e.PlaceDigit(s, 4, 4, 9)
	if err != nil || !applied {
		t.Fatalf("placement failed: applied=%v err=%v", applied, err)
	}
	if s.Board.Values[4][4] != 9 {
		t.Fatal("digit not written")
	}
	applied, err = e.ClearCell(s, 4, 4)
	if err != nil || !applied {
		t.Fatalf("clear failed: applied=%v err=%v", applied, err)
	}
	if s.Board.Values[4][4] != 0 {
		t.Fatal("cell not cleared")
	}
}

func TestCheckWinConstraintPolicy(t *testing.T) {
	ctx := context.Background()
	e := newEngine()

	// Full valid board wins and the session becomes terminal.
	s := playableSession(solved)
	won, err := e.CheckWin(ctx, s)
	if err != nil || !won {
		t.Fatalf("full valid board should win: won=%v err=%v", won, err)
	}
	if s.State != domain.Solved {
		t.Fatalf("state = %v, want solved", s.State)
	}

	// One empty cell: not a win; restoring the value wins again.
	g := solved
	old := g[6][2]
	g[6][2] = 0
	s = playableSession(g)
	if won, _ := e.CheckWin(ctx, s); won {
		t.Fatal("incomplete board must not win")
	}
	s.Board.Values[6][2] = old
	if won, _ := e.CheckWin(ctx, s); !won {
		t.Fatal("restored board must win")
	}

	// Duplicate within a row: complete but invalid.
	g = solved
	g[2][5] = g[2][4]
	s = playableSession(g)
	if won, _ := e.CheckWin(ctx, s); won {
		t.Fatal("board with a row duplicate must not win")
	}
	if s.State != domain.Playable {
		t.Fatalf("failed check must leave state playable, got %v", s.State)
	}
}

func TestCheckWinAcceptsAlternateCompletion(t *testing.T) {
	// Masking gives no uniqueness guarantee, so a completion that differs
	// from the generated solution must still win under the constraint policy.
	other := solved
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			switch other[r][c] {
			case 1:
				other[r][c] = 2
			case 2:
				other[r][c] = 1
			}
		}
	}
	e := newEngine()
	s := playableSession(other) // Solution stays the un-relabeled grid
	won, err := e.CheckWin(context.Background(), s)
	if err != nil || !won {
		t.Fatalf("alternate legal completion should win: won=%v err=%v", won, err)
	}
	if e.CheckComplete(s) {
		t.Fatal("alternate completion must not match the retained solution exactly")
	}
}

func TestRevealFixesEverythingAndMatchesSolution(t *testing.T) {
	e := newEngine()
	var g domain.Grid
	g[0][0] = solved[0][0]
	s := playableSession(g, domain.CellCoord{Row: 0, Col: 0})

	out := e.Reveal(s)
	if out != solved {
		t.Fatal("Reveal must return the retained solution")
	}
	if s.State != domain.Revealed {
		t.Fatalf("state = %v, want revealed", s.State)
	}
	if !e.CheckComplete(s) {
		t.Fatal("board must equal the solution after Reveal")
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !s.Board.Fixed[r][c] {
				t.Fatalf("cell r=%d c=%d not fixed after Reveal", r, c)
			}
		}
	}
	// Terminal: edits are silent no-ops and the win predicate stays put.
	if applied, err := e.PlaceDigit(s, 8, 8, 1); err != nil || applied {
		t.Fatalf("edit after Reveal must be a no-op: applied=%v err=%v", applied, err)
	}
	if won, _ := e.CheckWin(context.Background(), s); won {
		t.Fatal("revealed session must not report a win")
	}
}

func TestSolvedIsTerminal(t *testing.T) {
	e := newEngine()
	s := playableSession(solved)
	if won, _ := e.CheckWin(context.Background(), s); !won {
		t.Fatal("setup: board should win")
	}
	if applied, err := e.ClearCell(s, 0, 1); err != nil || applied {
		t.Fatalf("edit after Solved must be a no-op: applied=%v err=%v", applied, err)
	}
	if won, _ := e.CheckWin(context.Background(), s); !won {
		t.Fatal("solved session must keep reporting the win")
	}
}
