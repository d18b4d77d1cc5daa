package visualizer

import (
	"fmt"
	"strings"

	"sudoku_engine_go/internal/types"
)

// Visualizer prints grids to the terminal with 3x3 box borders.
type Visualizer struct {
	grid  *types.Grid
	given *types.GivenMask
}

func NewVisualizer(grid *types.Grid) *Visualizer {
	return &Visualizer{grid: grid}
}

// NewPuzzleVisualizer also colors given cells so they stand out from
// user-filled ones.
func NewPuzzleVisualizer(p *types.Puzzle) *Visualizer {
	return &Visualizer{grid: &p.Grid, given: &p.Given}
}

const (
	givenColor = "\033[1;36m" // bold cyan
	reset      = "\033[0m"
)

func (v *Visualizer) Print() {
	v.printHorizontalBorder()

	for i := 0; i < types.Size; i++ {
		fmt.Print("│ ")
		for j := 0; j < types.Size; j++ {
			fmt.Print(v.cell(i, j))
			fmt.Print(" ")

			// Print vertical borders
			if (j+1)%types.BoxSize == 0 && j < types.Size-1 {
				fmt.Print("│ ")
			}
		}
		fmt.Println("│")

		// Print horizontal borders
		if (i+1)%types.BoxSize == 0 && i < types.Size-1 {
			v.printHorizontalBorder()
		}
	}
}

func (v *Visualizer) cell(i, j int) string {
	if v.grid[i][j] == 0 {
		return "."
	}
	s := fmt.Sprint(v.grid[i][j])
	if v.given != nil && v.given[i][j] {
		return givenColor + s + reset
	}
	return s
}

func (v *Visualizer) printHorizontalBorder() {
	fmt.Print("├")
	for i := 0; i < types.Size; i++ {
		fmt.Print(strings.Repeat("─", 2))
		if (i+1)%types.BoxSize == 0 && i < types.Size-1 {
			fmt.Print("┼")
		}
	}
	fmt.Println("┤")
}
