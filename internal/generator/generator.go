package generator

import (
	"math/rand"
	"time"

	"sudoku_engine_go/internal/solver"
	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/validator"
)

// maxRemovalTrials bounds how many tentative removals Generate may
// attempt while carving clues out of the solved grid. Without it,
// high difficulties could keep probing removals indefinitely.
const maxRemovalTrials = 200

// SudokuGenerator interface defines methods for generating Sudoku puzzles
type SudokuGenerator interface {
	Generate() (*types.Puzzle, error)
	SetDifficulty(d types.Difficulty)
}

// ClassicGenerator implements SudokuGenerator for classic 9x9 puzzles.
// All randomness flows through the seeded rng, so two generators built
// with the same seed and difficulty produce identical puzzles.
type ClassicGenerator struct {
	difficulty types.Difficulty
	seed       int64
	rng        *rand.Rand
}

func NewClassicGenerator(d types.Difficulty) *ClassicGenerator {
	g := &ClassicGenerator{difficulty: d}
	g.SetSeed(time.Now().UnixNano())
	return g
}

func (g *ClassicGenerator) SetDifficulty(d types.Difficulty) {
	g.difficulty = d
}

// SetSeed reseeds the generator for reproducible output.
func (g *ClassicGenerator) SetSeed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate builds a solved grid, then removes clues while keeping the
// solution unique. Running out of removal budget before the difficulty
// target is not an error: the puzzle is returned with its actual
// removed count.
func (g *ClassicGenerator) Generate() (*types.Puzzle, error) {
	var solved types.Grid
	g.fillDiagonalBoxes(&solved)
	g.fillRemaining(&solved)

	puzzle := solved
	removed := g.removeCells(&puzzle)

	var given types.GivenMask
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			given[r][c] = puzzle[r][c] != 0
		}
	}

	return &types.Puzzle{
		Grid:       puzzle,
		Solution:   solved,
		Given:      given,
		Difficulty: g.difficulty,
		Removed:    removed,
		Seed:       g.seed,
	}, nil
}

// fillDiagonalBoxes seeds the three diagonal 3x3 boxes with shuffled
// permutations of 1-9. The boxes share no row or column, so they can
// be filled independently.
func (g *ClassicGenerator) fillDiagonalBoxes(grid *types.Grid) {
	for box := 0; box < types.Size; box += types.BoxSize {
		nums := g.shuffledNumbers()
		for i := 0; i < types.BoxSize; i++ {
			for j := 0; j < types.BoxSize; j++ {
				grid[box+i][box+j] = nums[i*types.BoxSize+j]
			}
		}
	}
}

// fillRemaining completes the grid by randomized backtracking over the
// empty cells in row-major order. A valid completion always exists for
// independently filled diagonal boxes.
func (g *ClassicGenerator) fillRemaining(grid *types.Grid) bool {
	row, col, ok := findEmpty(grid)
	if !ok {
		return true
	}
	for _, num := range g.shuffledNumbers() {
		if validator.IsValidMove(grid, row, col, num) {
			grid[row][col] = num
			if g.fillRemaining(grid) {
				return true
			}
			grid[row][col] = 0
		}
	}
	return false
}

// removeCells blanks cells in shuffled order, keeping a removal only
// if the puzzle still has exactly one solution. An unkeepable cell
// stays unkeepable after further removals, so a single pass suffices;
// the trial budget is the hard stop either way. Returns how many cells
// were actually removed, which may fall short of the target.
func (g *ClassicGenerator) removeCells(grid *types.Grid) int {
	target := g.difficulty.CellsToRemove()
	removed := 0
	trials := 0

	for _, pos := range g.rng.Perm(types.Size * types.Size) {
		if removed >= target || trials >= maxRemovalTrials {
			break
		}
		row, col := pos/types.Size, pos%types.Size
		if grid[row][col] == 0 {
			continue
		}
		trials++
		original := grid[row][col]
		grid[row][col] = 0
		if solver.CountSolutions(grid, 2) == 1 {
			removed++
		} else {
			grid[row][col] = original
		}
	}
	return removed
}

func (g *ClassicGenerator) shuffledNumbers() []int {
	nums := make([]int, types.Size)
	for i := range nums {
		nums[i] = i + 1
	}
	g.rng.Shuffle(len(nums), func(i, j int) {
		nums[i], nums[j] = nums[j], nums[i]
	})
	return nums
}

func findEmpty(grid *types.Grid) (int, int, bool) {
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if grid[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
