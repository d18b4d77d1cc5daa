package solver

import (
	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/validator"
)

// CountSolutions counts distinct completions of the grid up to limit.
// The search runs over a private copy in row-major order and returns
// as soon as the counter reaches limit, so uniqueness checks can use
// limit=2 without ever paying for a full enumeration.
func CountSolutions(g *types.Grid, limit int) int {
	if limit <= 0 {
		return 0
	}
	work := *g
	count := 0
	var dfs func(row, col int) bool
	dfs = func(row, col int) bool {
		if row == types.Size {
			count++
			return count >= limit
		}
		nr, nc := row, col+1
		if nc == types.Size {
			nr, nc = row+1, 0
		}
		if work[row][col] != 0 {
			return dfs(nr, nc)
		}
		for num := 1; num <= types.Size; num++ {
			if validator.IsValidMove(&work, row, col, num) {
				work[row][col] = num
				if dfs(nr, nc) {
					work[row][col] = 0
					return true
				}
				work[row][col] = 0
			}
		}
		return false
	}
	dfs(0, 0)
	return count
}

// Solve fills the grid in place with the first solution found and
// reports success. Values are tried in ascending order, so the result
// is deterministic for a given input. On failure every trial placement
// has been undone.
func Solve(g *types.Grid) bool {
	row, col, ok := findEmpty(g)
	if !ok {
		return true
	}
	for num := 1; num <= types.Size; num++ {
		if validator.IsValidMove(g, row, col, num) {
			g[row][col] = num
			if Solve(g) {
				return true
			}
			g[row][col] = 0
		}
	}
	return false
}

// CanBeSolved reports whether no empty cell is already contradictory,
// i.e. left with zero candidates. Callers should check this before
// relying on Solve to finish a grid.
func CanBeSolved(g *types.Grid) bool {
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if g[r][c] == 0 && len(validator.Candidates(g, r, c)) == 0 {
				return false
			}
		}
	}
	return true
}

func findEmpty(g *types.Grid) (int, int, bool) {
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
