package techniques

import (
	"reflect"
	"testing"

	"sudoku_engine_go/internal/solver"
	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/validator"
)

var samplePuzzle = types.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var solvedGrid = types.Grid{
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
	{4, 5, 6, 7, 8, 9, 1, 2, 3},
	{7, 8, 9, 1, 2, 3, 4, 5, 6},
	{2, 1, 4, 3, 6, 5, 8, 9, 7},
	{3, 6, 5, 8, 9, 7, 2, 1, 4},
	{8, 9, 7, 2, 1, 4, 3, 6, 5},
	{5, 3, 1, 6, 4, 2, 9, 7, 8},
	{6, 4, 2, 9, 7, 8, 5, 3, 1},
	{9, 7, 8, 5, 3, 1, 6, 4, 2},
}

// hiddenSingleGrid pins value 7 in row 5 to the single cell (4,4):
// the other eight rows each carry a 7 that blocks one of the
// remaining columns of row 5.
func hiddenSingleGrid() types.Grid {
	var g types.Grid
	g[0][0] = 7
	g[1][3] = 7
	g[2][6] = 7
	g[3][1] = 7
	g[5][7] = 7
	g[6][2] = 7
	g[7][5] = 7
	g[8][8] = 7
	return g
}

// nakedPairGrid leaves (0,0) and (0,1) as the only homes of 1 and 2
// in row 1; no single exists anywhere.
func nakedPairGrid() types.Grid {
	var g types.Grid
	for c := 2; c < types.Size; c++ {
		g[0][c] = c + 1
	}
	return g
}

func contradictionGrid() types.Grid {
	var g types.Grid
	for c := 1; c <= 8; c++ {
		g[0][c] = c
	}
	g[1][0] = 9
	return g
}

func twoSolutionGrid() types.Grid {
	g := solvedGrid
	g[0][0], g[0][1] = 0, 0
	g[3][0], g[3][1] = 0, 0
	return g
}

func countDiff(a, b *types.Grid) int {
	n := 0
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if a[r][c] != b[r][c] {
				n++
			}
		}
	}
	return n
}

func TestHintNakedSingle(t *testing.T) {
	g := solvedGrid
	g[4][4] = 0

	engine := NewEngine(&g, nil)
	res, ok := engine.Hint()
	if !ok {
		t.Fatal("expected a hint")
	}
	if res.Name != "Naked Single" {
		t.Fatalf("hint name = %q, want \"Naked Single\"", res.Name)
	}
	if !reflect.DeepEqual(res.Cells, []types.CellRef{{Row: 4, Col: 4}}) {
		t.Fatalf("hint cells = %v, want [(4,4)]", res.Cells)
	}
	if !reflect.DeepEqual(res.Values, []int{9}) {
		t.Fatalf("hint values = %v, want [9]", res.Values)
	}
}

func TestHintNeverMutates(t *testing.T) {
	grids := map[string]types.Grid{
		"sample":       samplePuzzle,
		"hiddenSingle": hiddenSingleGrid(),
		"nakedPair":    nakedPairGrid(),
		"empty":        {},
	}
	for name, g := range grids {
		t.Run(name, func(t *testing.T) {
			before := g
			NewEngine(&g, nil).Hint()
			if g != before {
				t.Fatal("Hint must not change the grid")
			}
		})
	}
}

func TestHintHiddenSingle(t *testing.T) {
	g := hiddenSingleGrid()
	engine := NewEngine(&g, nil)

	res, ok := engine.Hint()
	if !ok {
		t.Fatal("expected a hint")
	}
	if res.Name != "Hidden Single (Row)" {
		t.Fatalf("hint name = %q, want \"Hidden Single (Row)\"", res.Name)
	}
	if !reflect.DeepEqual(res.Cells, []types.CellRef{{Row: 4, Col: 4}}) {
		t.Fatalf("hint cells = %v, want [(4,4)]", res.Cells)
	}
	if !reflect.DeepEqual(res.Values, []int{7}) {
		t.Fatalf("hint values = %v, want [7]", res.Values)
	}
}

func TestHintNakedPair(t *testing.T) {
	g := nakedPairGrid()
	engine := NewEngine(&g, nil)

	res, ok := engine.Hint()
	if !ok {
		t.Fatal("expected a hint")
	}
	if res.Name != "Naked Pair" {
		t.Fatalf("hint name = %q, want \"Naked Pair\"", res.Name)
	}
	wantCells := []types.CellRef{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	if !reflect.DeepEqual(res.Cells, wantCells) {
		t.Fatalf("hint cells = %v, want %v", res.Cells, wantCells)
	}
	if !reflect.DeepEqual(res.Values, []int{1, 2}) {
		t.Fatalf("hint values = %v, want [1 2]", res.Values)
	}

	// detection only: a step must not apply the pair
	before := g
	if engine.Step() {
		t.Fatal("Step must not apply a naked pair")
	}
	if g != before {
		t.Fatal("failed Step must leave the grid alone")
	}
}

func TestHintNoneFound(t *testing.T) {
	var g types.Grid // empty grid: every cell has nine candidates
	if _, ok := NewEngine(&g, nil).Hint(); ok {
		t.Fatal("no technique applies to an empty grid")
	}
}

func TestStepPlacesExactlyOneCell(t *testing.T) {
	t.Run("naked single", func(t *testing.T) {
		g := solvedGrid
		g[4][4] = 0
		before := g

		engine := NewEngine(&g, nil)
		if !engine.Step() {
			t.Fatal("Step should have placed the naked single")
		}
		if n := countDiff(&g, &before); n != 1 {
			t.Fatalf("Step changed %d cells, want 1", n)
		}
		if g[4][4] != 9 {
			t.Fatalf("Step placed %d at (4,4), want 9", g[4][4])
		}
		if !g.IsComplete() || !validator.IsValidSudoku(&g) {
			t.Fatal("grid should now be complete and valid")
		}
	})

	t.Run("hidden single", func(t *testing.T) {
		g := hiddenSingleGrid()
		before := g

		engine := NewEngine(&g, nil)
		if !engine.Step() {
			t.Fatal("Step should have placed the hidden single")
		}
		if n := countDiff(&g, &before); n != 1 {
			t.Fatalf("Step changed %d cells, want 1", n)
		}
		if g[4][4] != 7 {
			t.Fatalf("Step placed %d at (4,4), want 7", g[4][4])
		}
	})

	t.Run("nothing to do", func(t *testing.T) {
		g := solvedGrid
		before := g
		if NewEngine(&g, nil).Step() {
			t.Fatal("Step on a complete grid must report false")
		}
		if g != before {
			t.Fatal("failed Step must not change the grid")
		}
	})
}

func TestSolveAllMatchesBruteForce(t *testing.T) {
	logical := samplePuzzle
	engine := NewEngine(&logical, nil)
	report := engine.SolveAll()

	if report.Outcome != Complete && report.Outcome != PartialPlusBacktrack {
		t.Fatalf("unexpected outcome %v", report.Outcome)
	}
	if !logical.IsComplete() || !validator.IsValidSudoku(&logical) {
		t.Fatal("SolveAll must finish a uniquely solvable puzzle")
	}

	brute := samplePuzzle
	if !solver.Solve(&brute) {
		t.Fatal("brute force failed on the sample puzzle")
	}
	if logical != brute {
		t.Fatal("SolveAll and brute force must agree on a unique puzzle")
	}
}

func TestSolveAllNoSolution(t *testing.T) {
	g := contradictionGrid()
	report := NewEngine(&g, nil).SolveAll()
	if report.Outcome != NoSolution {
		t.Fatalf("outcome = %v, want NoSolution", report.Outcome)
	}
	if report.Moves != 0 {
		t.Fatalf("no moves possible on a contradictory grid, got %d", report.Moves)
	}
}

func TestSolveAllAmbiguousFallsBack(t *testing.T) {
	g := twoSolutionGrid()
	report := NewEngine(&g, nil).SolveAll()
	if report.Outcome != PartialPlusBacktrack {
		t.Fatalf("outcome = %v, want PartialPlusBacktrack", report.Outcome)
	}
	if !g.IsComplete() || !validator.IsValidSudoku(&g) {
		t.Fatal("fallback must still complete the grid")
	}
}

func TestSolveAllAlreadyComplete(t *testing.T) {
	g := solvedGrid
	report := NewEngine(&g, nil).SolveAll()
	if report.Outcome != Complete || report.Moves != 0 {
		t.Fatalf("got %+v, want Complete with 0 moves", report)
	}
}

func TestStatus(t *testing.T) {
	t.Run("solved", func(t *testing.T) {
		g := solvedGrid
		if s := NewEngine(&g, nil).Status(); s.Kind != Solved {
			t.Fatalf("kind = %v, want Solved", s.Kind)
		}
	})

	t.Run("rule violations", func(t *testing.T) {
		var g types.Grid
		g[0][0], g[0][1] = 5, 5
		s := NewEngine(&g, nil).Status()
		if s.Kind != RuleViolations {
			t.Fatalf("kind = %v, want RuleViolations", s.Kind)
		}
		if len(s.Violations) == 0 {
			t.Fatal("violations must be listed")
		}
	})

	t.Run("unsolvable", func(t *testing.T) {
		g := contradictionGrid()
		if s := NewEngine(&g, nil).Status(); s.Kind != Unsolvable {
			t.Fatalf("kind = %v, want Unsolvable", s.Kind)
		}
	})

	t.Run("unique continue", func(t *testing.T) {
		g := samplePuzzle
		if s := NewEngine(&g, nil).Status(); s.Kind != UniqueContinue {
			t.Fatalf("kind = %v, want UniqueContinue", s.Kind)
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		g := twoSolutionGrid()
		s := NewEngine(&g, nil).Status()
		if s.Kind != Ambiguous {
			t.Fatalf("kind = %v, want Ambiguous", s.Kind)
		}
		if s.Solutions != 2 {
			t.Fatalf("solutions = %d, want 2", s.Solutions)
		}
	})

	t.Run("given duplicates stay unit level", func(t *testing.T) {
		var g types.Grid
		g[0][0], g[0][1] = 5, 5
		var given types.GivenMask
		given[0][0], given[0][1] = true, true
		s := NewEngine(&g, &given).Status()
		if s.Kind != RuleViolations {
			t.Fatalf("kind = %v, want RuleViolations", s.Kind)
		}
		for _, v := range s.Violations {
			if len(v.Cells) != 0 {
				t.Fatalf("given cells must not be highlighted, got %v", v.Cells)
			}
		}
	})
}
