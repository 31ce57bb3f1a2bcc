package ports

import (
	"context"
	"time"

	"svw.info/sudoku-play/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Generator produces a masked puzzle board together with its retained
// full solution. The same seed yields the same puzzle.
type Generator interface {
	Generate(ctx context.Context, seed int64, removals int) (*domain.Board, domain.Grid, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Solver completes a partially filled board.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Hinter returns the next logical move, if one is found.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error)
}
