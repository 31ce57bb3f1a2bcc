package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/sudoku-play/internal/domain"
	"svw.info/sudoku-play/internal/ports"
	"svw.info/sudoku-play/internal/validator"
)

// DefaultRemovals clears 45 cells, leaving 36 givens.
const DefaultRemovals = 45

var ErrBadRemovals = errors.New("removals must be between 0 and 81")

// Randomized builds full boards by randomized backtracking and masks them
// into puzzles. No uniqueness check is performed on the masked puzzle: the
// result may admit more than one valid completion.
type Randomized struct{}

func NewRandomized() *Randomized { return &Randomized{} }

// Generate fills a board from the given seed, masks `removals` cells, and
// returns the puzzle board (non-zero cells marked fixed) plus the retained
// full solution.
func (g *Randomized) Generate(ctx context.Context, seed int64, removals int) (*domain.Board, domain.Grid, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full domain.Grid
	nodes := 0
	if !Fill(ctx, rng, &full, &nodes) {
		// A complete backtracking search always fills an empty 9x9 grid;
		// the only way out without a board is cancellation.
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		return nil, domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}

	puz, err := Mask(rng, full, removals)
	if err != nil {
		return nil, domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}

	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = puz[r][c] != 0
		}
	}
	b := &domain.Board{Values: puz, Fixed: fixed}
	return b, full, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Fill completes grid in place by backtracking: scan row-major for the first
// empty cell, try digits 1-9 in a freshly shuffled order, recurse, and reset
// to zero on failure. Reports false only on cancellation (for a grid that
// admits a completion, the search is complete and always succeeds).
func Fill(ctx context.Context, rng *rand.Rand, grid *domain.Grid, nodes *int) bool {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(grid)
		if !ok {
			return true
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			*nodes++
			if validator.CanPlace(grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs()
}

// Mask deep-copies solution and clears exactly `removals` cells, picking
// uniformly random cells and retrying ones already empty. Each accepted
// removal shrinks the non-zero pool, so the loop terminates for any
// removals <= 81.
func Mask(rng *rand.Rand, solution domain.Grid, removals int) (domain.Grid, error) {
	if removals < 0 || removals > 81 {
		return domain.Grid{}, ErrBadRemovals
	}
	out := solution // array copy
	for left := removals; left > 0; {
		r, c := rng.Intn(9), rng.Intn(9)
		if out[r][c] == 0 {
			continue
		}
		out[r][c] = 0
		left--
	}
	return out, nil
}

func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
