package techniques

import (
	"sudoku_engine_go/internal/solver"
	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/validator"
)

// StatusKind classifies the current puzzle state.
type StatusKind int

const (
	// RuleViolations means at least one unit holds a duplicate.
	RuleViolations StatusKind = iota
	// Solved means the grid is complete and duplicate-free.
	Solved
	// Unsolvable means some empty cell has no candidate, or no
	// completion exists.
	Unsolvable
	// UniqueContinue means exactly one completion remains.
	UniqueContinue
	// Ambiguous means two or more completions remain.
	Ambiguous
)

func (k StatusKind) String() string {
	switch k {
	case RuleViolations:
		return "rule violations"
	case Solved:
		return "solved"
	case Unsolvable:
		return "unsolvable"
	case UniqueContinue:
		return "unique, keep going"
	case Ambiguous:
		return "ambiguous"
	}
	return "unknown"
}

// Status is the checkPuzzleStatus result. Violations is only set for
// RuleViolations; Solutions only for Ambiguous (capped at the search
// limit, so 2 means "two or more").
type Status struct {
	Kind       StatusKind        `json:"kind"`
	Violations []types.Violation `json:"violations,omitempty"`
	Solutions  int               `json:"solutions,omitempty"`
}

// Status inspects the grid without mutating it: violations first, then
// completeness, then candidate emptiness, then a solution count capped
// at two to separate unsolvable, unique and ambiguous states.
func (e *Engine) Status() Status {
	if viols := validator.CheckRuleViolations(e.grid, e.given); len(viols) > 0 {
		return Status{Kind: RuleViolations, Violations: viols}
	}
	if e.grid.IsComplete() {
		return Status{Kind: Solved}
	}
	if !solver.CanBeSolved(e.grid) {
		return Status{Kind: Unsolvable}
	}
	switch n := solver.CountSolutions(e.grid, 2); n {
	case 0:
		return Status{Kind: Unsolvable}
	case 1:
		return Status{Kind: UniqueContinue}
	default:
		return Status{Kind: Ambiguous, Solutions: n}
	}
}
