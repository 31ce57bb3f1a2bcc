package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-play/internal/domain"
	"svw.info/sudoku-play/internal/engine"
	"svw.info/sudoku-play/internal/ports"
)

// Service is the application facade the HTTP adapter talks to.
type Service struct {
	Engine    *engine.Engine
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
}

func NewService(e *engine.Engine, s ports.Solver, v ports.Validator, h ports.Hinter) *Service {
	return &Service{Engine: e, Solver: s, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) NewSession(ctx context.Context, seed int64, removals int) (*domain.Session, ports.Stats, error) {
	if u.Engine == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Engine.NewSession(ctx, seed, removals)
}

func (u *Service) PlaceDigit(s *domain.Session, row, col int, v uint8) (bool, error) {
	if u.Engine == nil {
		return false, errNotConfigured
	}
	return u.Engine.PlaceDigit(s, row, col, v)
}

func (u *Service) ClearCell(s *domain.Session, row, col int) (bool, error) {
	if u.Engine == nil {
		return false, errNotConfigured
	}
	return u.Engine.ClearCell(s, row, col)
}

func (u *Service) CheckWin(ctx context.Context, s *domain.Session) (bool, error) {
	if u.Engine == nil {
		return false, errNotConfigured
	}
	return u.Engine.CheckWin(ctx, s)
}

func (u *Service) Reveal(s *domain.Session) (domain.Grid, error) {
	if u.Engine == nil {
		return domain.Grid{}, errNotConfigured
	}
	return u.Engine.Reveal(s), nil
}

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b)
}
