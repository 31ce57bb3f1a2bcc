// Package engine owns the lifecycle of one Sudoku game: generating a
// puzzle, accepting digit placements at editable cells, checking for a win,
// and revealing the retained solution.
package engine

import (
	"context"
	"errors"

	"svw.info/sudoku-play/internal/domain"
	"svw.info/sudoku-play/internal/ports"
	"svw.info/sudoku-play/internal/validator"
)

var (
	ErrOutOfRange = errors.New("row or column out of range")
	ErrBadDigit   = errors.New("digit must be between 1 and 9")
)

// Engine creates and mutates Sessions. It holds no session state itself;
// the caller owns each Session and passes it back in.
type Engine struct {
	Generator ports.Generator
	Validator ports.Validator
}

func New(g ports.Generator, v ports.Validator) *Engine {
	return &Engine{Generator: g, Validator: v}
}

// NewSession generates a fresh puzzle and returns it in the Playable state.
// Every non-zero cell of the masked puzzle is fixed; all others are editable.
func (e *Engine) NewSession(ctx context.Context, seed int64, removals int) (*domain.Session, ports.Stats, error) {
	b, sol, st, err := e.Generator.Generate(ctx, seed, removals)
	if err != nil {
		return nil, st, err
	}
	s := &domain.Session{
		Board:    *b,
		Solution: sol,
		State:    domain.Playable,
		Seed:     seed,
	}
	return s, st, nil
}

// PlaceDigit writes v at (row, col). Fixed cells and terminal sessions are
// rejected as a silent no-op (false, nil); out-of-range inputs are a caller
// contract violation and fail fast.
func (e *Engine) PlaceDigit(s *domain.Session, row, col int, v uint8) (bool, error) {
	if !inRange(row, col) {
		return false, ErrOutOfRange
	}
	if v < 1 || v > 9 {
		return false, ErrBadDigit
	}
	if s.State != domain.Playable || s.Board.Fixed[row][col] {
		return false, nil
	}
	s.Board.Values[row][col] = v
	return true, nil
}

// ClearCell empties (row, col) under the same rejection rules as PlaceDigit.
func (e *Engine) ClearCell(s *domain.Session, row, col int) (bool, error) {
	if !inRange(row, col) {
		return false, ErrOutOfRange
	}
	if s.State != domain.Playable || s.Board.Fixed[row][col] {
		return false, nil
	}
	s.Board.Values[row][col] = 0
	return true, nil
}

// CheckWin applies the constraint win policy: the board wins when no cell
// is empty and every row, column, and box is conflict-free. Any legal
// completion wins, not only the generated one, since masking does not
// guarantee a unique solution. A win moves the session to Solved.
func (e *Engine) CheckWin(ctx context.Context, s *domain.Session) (bool, error) {
	switch s.State {
	case domain.Solved:
		return true, nil
	case domain.Playable:
	default:
		return false, nil
	}
	if !validator.Complete(&s.Board.Values) {
		return false, nil
	}
	ok, _, err := e.Validator.Validate(ctx, &s.Board)
	if err != nil {
		return false, err
	}
	if ok {
		s.State = domain.Solved
	}
	return ok, nil
}

// CheckComplete is the exact-match variant: true iff the board equals the
// retained solution cell for cell.
func (e *Engine) CheckComplete(s *domain.Session) bool {
	return s.Board.Values == s.Solution
}

// Reveal copies the solution onto the board, marks every cell fixed so no
// further edits are accepted, and moves the session to Revealed.
func (e *Engine) Reveal(s *domain.Session) domain.Grid {
	s.Board.Values = s.Solution
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			s.Board.Fixed[r][c] = true
		}
	}
	s.State = domain.Revealed
	return s.Solution
}

func inRange(row, col int) bool {
	return row >= 0 && row < 9 && col >= 0 && col < 9
}
