package validator

import (
	"fmt"

	"github.com/duke-git/lancet/v2/slice"

	"sudoku_engine_go/internal/types"
)

// IsValidMove reports whether num can be placed at (row, col) without
// duplicating a value in the cell's row, column or box. The cell
// itself is excluded, so the check also works for already-filled cells.
func IsValidMove(g *types.Grid, row, col, num int) bool {
	// Check row
	for c := 0; c < types.Size; c++ {
		if c != col && g[row][c] == num {
			return false
		}
	}

	// Check column
	for r := 0; r < types.Size; r++ {
		if r != row && g[r][col] == num {
			return false
		}
	}

	// Check box
	br, bc := types.BoxOrigin(row, col)
	for r := br; r < br+types.BoxSize; r++ {
		for c := bc; c < bc+types.BoxSize; c++ {
			if (r != row || c != col) && g[r][c] == num {
				return false
			}
		}
	}

	return true
}

// Candidates returns the legal values for an empty cell in ascending
// order. A filled cell has no candidates.
func Candidates(g *types.Grid, row, col int) []int {
	if g[row][col] != 0 {
		return nil
	}
	out := make([]int, 0, types.Size)
	for num := 1; num <= types.Size; num++ {
		if IsValidMove(g, row, col, num) {
			out = append(out, num)
		}
	}
	return out
}

// HasDuplicates reports whether the non-zero values repeat.
func HasDuplicates(values []int) bool {
	return len(FindDuplicates(values)) > 0
}

// FindDuplicates returns the non-zero values that occur more than once.
func FindDuplicates(values []int) []int {
	var dups []int
	seen := make(map[int]int, len(values))
	for _, v := range values {
		if v == 0 {
			continue
		}
		seen[v]++
		if seen[v] == 2 {
			dups = append(dups, v)
		}
	}
	return dups
}

// IsValidSudoku reports whether no unit contains a repeated value.
// Completeness is not required; an empty grid is valid.
func IsValidSudoku(g *types.Grid) bool {
	for i := 0; i < types.Size; i++ {
		if HasDuplicates(rowValues(g, i)) || HasDuplicates(colValues(g, i)) || HasDuplicates(boxValues(g, i)) {
			return false
		}
	}
	return true
}

// CheckRuleViolations reports every duplicated value per unit. Cells
// carrying a duplicate are listed unless they are givens: a duplicate
// between two givens means the puzzle itself is malformed, so it is
// reported at the unit level without cell highlighting.
func CheckRuleViolations(g *types.Grid, given *types.GivenMask) []types.Violation {
	var out []types.Violation
	for i := 0; i < types.Size; i++ {
		out = appendUnitViolations(out, g, given, fmt.Sprintf("row %d", i+1), unitCells("row", i))
		out = appendUnitViolations(out, g, given, fmt.Sprintf("column %d", i+1), unitCells("column", i))
		out = appendUnitViolations(out, g, given, fmt.Sprintf("box %d", i+1), unitCells("box", i))
	}
	return out
}

func appendUnitViolations(out []types.Violation, g *types.Grid, given *types.GivenMask, unit string, cells []types.CellRef) []types.Violation {
	values := make([]int, len(cells))
	for i, cell := range cells {
		values[i] = g[cell.Row][cell.Col]
	}
	dups := FindDuplicates(values)
	for _, v := range dups {
		viol := types.Violation{
			Unit:    unit,
			Message: fmt.Sprintf("value %d appears more than once in %s", v, unit),
		}
		for _, cell := range cells {
			if g[cell.Row][cell.Col] != v {
				continue
			}
			if given != nil && given[cell.Row][cell.Col] {
				continue
			}
			viol.Cells = append(viol.Cells, cell)
		}
		out = append(out, viol)
	}
	return out
}

// unitCells lists the nine cells of row, column or box i.
func unitCells(kind string, i int) []types.CellRef {
	cells := make([]types.CellRef, 0, types.Size)
	switch kind {
	case "row":
		for c := 0; c < types.Size; c++ {
			cells = append(cells, types.CellRef{Row: i, Col: c})
		}
	case "column":
		for r := 0; r < types.Size; r++ {
			cells = append(cells, types.CellRef{Row: r, Col: i})
		}
	case "box":
		br := (i / types.BoxSize) * types.BoxSize
		bc := (i % types.BoxSize) * types.BoxSize
		for r := br; r < br+types.BoxSize; r++ {
			for c := bc; c < bc+types.BoxSize; c++ {
				cells = append(cells, types.CellRef{Row: r, Col: c})
			}
		}
	}
	return cells
}

func rowValues(g *types.Grid, r int) []int {
	out := make([]int, types.Size)
	copy(out, g[r][:])
	return out
}

func colValues(g *types.Grid, c int) []int {
	out := make([]int, types.Size)
	for r := 0; r < types.Size; r++ {
		out[r] = g[r][c]
	}
	return out
}

func boxValues(g *types.Grid, i int) []int {
	br := (i / types.BoxSize) * types.BoxSize
	bc := (i % types.BoxSize) * types.BoxSize
	out := make([]int, 0, types.Size)
	for r := br; r < br+types.BoxSize; r++ {
		out = append(out, g[r][bc:bc+types.BoxSize]...)
	}
	return out
}

// CandidatesContain reports whether value is a candidate at (row, col).
func CandidatesContain(g *types.Grid, row, col, value int) bool {
	return slice.Contain(Candidates(g, row, col), value)
}
