package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Size is the fixed board edge length. The engine only deals in
// classic 9x9 Sudoku with 3x3 boxes.
const (
	Size    = 9
	BoxSize = 3
)

// Grid is a 9x9 value matrix. 0 means empty, 1-9 are placed values.
type Grid [Size][Size]int

// GivenMask marks which cells belong to the original puzzle. It is
// fixed once a puzzle has been generated.
type GivenMask [Size][Size]bool

// CellRef identifies a single cell on the board.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Violation reports a duplicate value inside one unit. Cells only
// lists non-given cells; a duplicate between two givens is surfaced
// through Message alone.
type Violation struct {
	Unit    string    `json:"unit"`
	Message string    `json:"message"`
	Cells   []CellRef `json:"cells,omitempty"`
}

// Difficulty selects how many cells the generator tries to blank.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Expert Difficulty = "expert"
)

// CellsToRemove returns the blank-cell target for the difficulty.
func (d Difficulty) CellsToRemove() int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return 50
	case Hard:
		return 60
	case Expert:
		return 70
	}
	return 50
}

// ParseDifficulty maps a user supplied string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case Easy:
		return Easy, nil
	case Medium:
		return Medium, nil
	case Hard:
		return Hard, nil
	case Expert:
		return Expert, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium, hard or expert)", s)
}

// Puzzle bundles a generated puzzle with its solution and metadata.
// Removed below the difficulty target means the removal budget ran
// out; the puzzle is still valid and uniquely solvable.
type Puzzle struct {
	Grid       Grid       `json:"grid"`
	Solution   Grid       `json:"solution"`
	Given      GivenMask  `json:"given"`
	Difficulty Difficulty `json:"difficulty"`
	Removed    int        `json:"removed"`
	Seed       int64      `json:"seed"`
}

// IsComplete reports whether every cell holds a value.
func (g *Grid) IsComplete() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// CountFilled returns the number of non-empty cells.
func (g *Grid) CountFilled() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// BoxOrigin returns the top-left cell of the 3x3 box containing (row, col).
func BoxOrigin(row, col int) (int, int) {
	return (row / BoxSize) * BoxSize, (col / BoxSize) * BoxSize
}

// ToJSON converts the puzzle to JSON bytes.
func (p *Puzzle) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// FromJSON creates a Puzzle from JSON bytes.
func FromJSON(data []byte) (*Puzzle, error) {
	var p Puzzle
	err := json.Unmarshal(data, &p)
	return &p, err
}
