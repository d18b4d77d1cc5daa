package techniques

import (
	"fmt"

	"sudoku_engine_go/internal/solver"
	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/validator"
)

// maxSolvePasses caps SolveAll iterations so a grid that keeps
// yielding singles very slowly (or an engine bug) cannot spin forever.
const maxSolvePasses = 100

// Result describes a detected technique. It never mutates the grid;
// applying the move is the caller's (or Step's) decision.
type Result struct {
	Name        string          `json:"name"`
	Explanation string          `json:"explanation"`
	Cells       []types.CellRef `json:"cells"`
	Values      []int           `json:"values"`
}

// Outcome classifies a SolveAll run.
type Outcome int

const (
	// Complete means logical techniques alone filled the grid.
	Complete Outcome = iota
	// PartialPlusBacktrack means techniques stalled and backtracking
	// finished the rest.
	PartialPlusBacktrack
	// NoSolution means the grid is contradictory.
	NoSolution
	// Stalled means the pass cap was exhausted before finishing.
	Stalled
)

func (o Outcome) String() string {
	switch o {
	case Complete:
		return "complete"
	case PartialPlusBacktrack:
		return "partial+backtrack"
	case NoSolution:
		return "no solution"
	case Stalled:
		return "stalled"
	}
	return "unknown"
}

// Report is the SolveAll result: the outcome plus how many cells were
// placed by logical techniques.
type Report struct {
	Outcome Outcome `json:"outcome"`
	Moves   int     `json:"moves"`
}

// Engine detects and applies solving techniques on a single grid. It
// keeps no state of its own beyond the grid and given-mask handles, so
// every call works from the current grid content.
type Engine struct {
	grid  *types.Grid
	given *types.GivenMask
}

func NewEngine(grid *types.Grid, given *types.GivenMask) *Engine {
	return &Engine{grid: grid, given: given}
}

// Hint returns the first applicable technique without touching the
// grid: naked singles in row-major order, then hidden singles, then
// naked pairs. The second return value is false when no technique
// applies.
func (e *Engine) Hint() (Result, bool) {
	if res, ok := e.findNakedSingle(); ok {
		return res, true
	}
	if res, ok := e.findHiddenSingle(); ok {
		return res, true
	}
	if res, ok := e.findNakedPair(); ok {
		return res, true
	}
	return Result{}, false
}

// Step places the value of the first naked or hidden single and
// reports whether a cell was filled. Naked pairs are detection-only
// and never applied.
func (e *Engine) Step() bool {
	if res, ok := e.findNakedSingle(); ok {
		e.grid[res.Cells[0].Row][res.Cells[0].Col] = res.Values[0]
		return true
	}
	if res, ok := e.findHiddenSingle(); ok {
		e.grid[res.Cells[0].Row][res.Cells[0].Col] = res.Values[0]
		return true
	}
	return false
}

// SolveAll drives the grid to completion: each pass applies every
// currently available naked single, then every hidden single. When a
// pass makes no progress with cells remaining, backtracking finishes
// the grid. A contradictory grid is reported as NoSolution, and
// exhausting the pass cap as Stalled.
func (e *Engine) SolveAll() Report {
	moves := 0
	for pass := 0; pass < maxSolvePasses; pass++ {
		if e.grid.IsComplete() {
			return Report{Outcome: Complete, Moves: moves}
		}
		if !solver.CanBeSolved(e.grid) {
			return Report{Outcome: NoSolution, Moves: moves}
		}

		placed := e.applyNakedSingles()
		placed += e.applyHiddenSingles()
		moves += placed

		if placed == 0 {
			if solver.Solve(e.grid) {
				return Report{Outcome: PartialPlusBacktrack, Moves: moves}
			}
			return Report{Outcome: NoSolution, Moves: moves}
		}
	}
	if e.grid.IsComplete() {
		return Report{Outcome: Complete, Moves: moves}
	}
	return Report{Outcome: Stalled, Moves: moves}
}

func (e *Engine) applyNakedSingles() int {
	placed := 0
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if e.grid[r][c] != 0 {
				continue
			}
			if cands := validator.Candidates(e.grid, r, c); len(cands) == 1 {
				e.grid[r][c] = cands[0]
				placed++
			}
		}
	}
	return placed
}

func (e *Engine) applyHiddenSingles() int {
	placed := 0
	for {
		res, ok := e.findHiddenSingle()
		if !ok {
			break
		}
		e.grid[res.Cells[0].Row][res.Cells[0].Col] = res.Values[0]
		placed++
	}
	return placed
}

// findNakedSingle scans row-major for an empty cell with exactly one
// candidate.
func (e *Engine) findNakedSingle() (Result, bool) {
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if e.grid[r][c] != 0 {
				continue
			}
			cands := validator.Candidates(e.grid, r, c)
			if len(cands) == 1 {
				v := cands[0]
				return Result{
					Name:        "Naked Single",
					Explanation: fmt.Sprintf("Cell (%d, %d) has only one possible value: %d", r+1, c+1, v),
					Cells:       []types.CellRef{{Row: r, Col: c}},
					Values:      []int{v},
				}, true
			}
		}
	}
	return Result{}, false
}

// findHiddenSingle looks for a value that fits exactly one empty cell
// of some unit, checking rows, then columns, then boxes.
func (e *Engine) findHiddenSingle() (Result, bool) {
	for i := 0; i < types.Size; i++ {
		if res, ok := e.hiddenSingleInUnit(rowCells(i), fmt.Sprintf("row %d", i+1), "Hidden Single (Row)"); ok {
			return res, true
		}
	}
	for i := 0; i < types.Size; i++ {
		if res, ok := e.hiddenSingleInUnit(colCells(i), fmt.Sprintf("column %d", i+1), "Hidden Single (Column)"); ok {
			return res, true
		}
	}
	for i := 0; i < types.Size; i++ {
		if res, ok := e.hiddenSingleInUnit(boxCells(i), fmt.Sprintf("box %d", i+1), "Hidden Single (Box)"); ok {
			return res, true
		}
	}
	return Result{}, false
}

func (e *Engine) hiddenSingleInUnit(cells []types.CellRef, unit, name string) (Result, bool) {
	for v := 1; v <= types.Size; v++ {
		var spots []types.CellRef
		taken := false
		for _, cell := range cells {
			if e.grid[cell.Row][cell.Col] == v {
				taken = true
				break
			}
			if e.grid[cell.Row][cell.Col] != 0 {
				continue
			}
			if validator.CandidatesContain(e.grid, cell.Row, cell.Col, v) {
				spots = append(spots, cell)
			}
		}
		if !taken && len(spots) == 1 {
			cell := spots[0]
			return Result{
				Name:        name,
				Explanation: fmt.Sprintf("In %s, value %d can only be placed in cell (%d, %d)", unit, v, cell.Row+1, cell.Col+1),
				Cells:       []types.CellRef{cell},
				Values:      []int{v},
			}, true
		}
	}
	return Result{}, false
}

func rowCells(r int) []types.CellRef {
	cells := make([]types.CellRef, types.Size)
	for c := 0; c < types.Size; c++ {
		cells[c] = types.CellRef{Row: r, Col: c}
	}
	return cells
}

func colCells(c int) []types.CellRef {
	cells := make([]types.CellRef, types.Size)
	for r := 0; r < types.Size; r++ {
		cells[r] = types.CellRef{Row: r, Col: c}
	}
	return cells
}

func boxCells(b int) []types.CellRef {
	baseRow := (b / types.BoxSize) * types.BoxSize
	baseCol := (b % types.BoxSize) * types.BoxSize
	cells := make([]types.CellRef, 0, types.Size)
	for r := baseRow; r < baseRow+types.BoxSize; r++ {
		for c := baseCol; c < baseCol+types.BoxSize; c++ {
			cells = append(cells, types.CellRef{Row: r, Col: c})
		}
	}
	return cells
}

// findNakedPair looks for two empty cells in the same row sharing an
// identical two-candidate set. The pair is surfaced for the caller;
// the implied eliminations are deliberately not applied anywhere.
func (e *Engine) findNakedPair() (Result, bool) {
	for r := 0; r < types.Size; r++ {
		type pairCell struct {
			col   int
			cands []int
		}
		var pairs []pairCell
		for c := 0; c < types.Size; c++ {
			if e.grid[r][c] != 0 {
				continue
			}
			if cands := validator.Candidates(e.grid, r, c); len(cands) == 2 {
				pairs = append(pairs, pairCell{col: c, cands: cands})
			}
		}
		for i := 0; i < len(pairs); i++ {
			for j := i + 1; j < len(pairs); j++ {
				a, b := pairs[i], pairs[j]
				if a.cands[0] == b.cands[0] && a.cands[1] == b.cands[1] {
					return Result{
						Name: "Naked Pair",
						Explanation: fmt.Sprintf(
							"Cells (%d, %d) and (%d, %d) both hold only {%d, %d}; these values could be removed from the rest of row %d",
							r+1, a.col+1, r+1, b.col+1, a.cands[0], a.cands[1], r+1),
						Cells:  []types.CellRef{{Row: r, Col: a.col}, {Row: r, Col: b.col}},
						Values: a.cands,
					}, true
				}
			}
		}
	}
	return Result{}, false
}
