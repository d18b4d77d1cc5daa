package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sudoku_engine_go/db"
	"sudoku_engine_go/internal/generator"
	"sudoku_engine_go/internal/techniques"
	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/visualizer"
)

func main() {
	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Generate, check and logically solve 9x9 Sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newGenerateCommand())
	root.AddCommand(newSolveCommand())
	root.AddCommand(newHintCommand())
	root.AddCommand(newStepCommand())
	root.AddCommand(newCheckCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newGenerateCommand() *cobra.Command {
	var (
		difficultyStr string
		count         int
		seed          int64
		outFile       string
		upload        bool
		uploadID      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more puzzles with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty, err := types.ParseDifficulty(difficultyStr)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			if count > 1 {
				return generateBatch(difficulty, count, seed)
			}

			gen := generator.NewClassicGenerator(difficulty)
			gen.SetSeed(seed)
			start := time.Now()
			puzzle, err := gen.Generate()
			if err != nil {
				return fmt.Errorf("failed to generate puzzle: %v", err)
			}
			fmt.Printf("Generated %s puzzle in %v (seed %d)\n", difficulty, time.Since(start), seed)

			target := difficulty.CellsToRemove()
			if puzzle.Removed < target {
				fmt.Printf("Warning: removal budget exhausted, removed %d of %d cells\n", puzzle.Removed, target)
			}

			visualizer.NewPuzzleVisualizer(puzzle).Print()

			if outFile != "" {
				data, err := puzzle.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to serialize puzzle: %v", err)
				}
				if err := os.WriteFile(outFile, data, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %v", outFile, err)
				}
				fmt.Printf("Wrote puzzle to %s\n", outFile)
			}

			if upload {
				if err := db.Connect(); err != nil {
					return err
				}
				if uploadID == "" {
					uploadID = fmt.Sprintf("%s-%d", difficulty, seed%1_000_000)
				}
				if _, err := db.UploadPuzzle(uploadID, puzzle); err != nil {
					return err
				}
				fmt.Printf("Uploaded puzzle as %s\n", uploadID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficultyStr, "difficulty", "d", "medium", "easy, medium, hard or expert")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of puzzles to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the puzzle as JSON to this file")
	cmd.Flags().BoolVar(&upload, "upload", false, "upload the puzzle to PocketBase")
	cmd.Flags().StringVar(&uploadID, "id", "", "ID to upload under (defaults to difficulty-seed)")
	return cmd
}

func generateBatch(difficulty types.Difficulty, count int, seed int64) error {
	start := time.Now()
	puzzles := generator.GenerateBatch(difficulty, count, seed, func(r generator.ProgressReport) {
		fmt.Println(r.Message)
	})
	fmt.Printf("Generated %d %s puzzles in %v\n", count, difficulty, time.Since(start))

	for i, p := range puzzles {
		if p == nil {
			continue
		}
		filename := fmt.Sprintf("sudoku_%s_%d.json", difficulty, i)
		data, err := p.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to serialize puzzle %d: %v", i, err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %v", filename, err)
		}
	}
	return nil
}

func newSolveCommand() *cobra.Command {
	var inFile string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle with logical techniques, backtracking if they stall",
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzle, err := loadPuzzle(inFile)
			if err != nil {
				return err
			}
			engine := techniques.NewEngine(&puzzle.Grid, &puzzle.Given)
			report := engine.SolveAll()
			fmt.Printf("Outcome: %s (%d cells placed by logic)\n", report.Outcome, report.Moves)
			visualizer.NewPuzzleVisualizer(puzzle).Print()
			return nil
		},
	}
	cmd.Flags().StringVarP(&inFile, "in", "i", "", "puzzle JSON file (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("in"))
	return cmd
}

func newHintCommand() *cobra.Command {
	var inFile string

	cmd := &cobra.Command{
		Use:   "hint",
		Short: "Show the next applicable technique without changing the grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzle, err := loadPuzzle(inFile)
			if err != nil {
				return err
			}
			engine := techniques.NewEngine(&puzzle.Grid, &puzzle.Given)
			res, ok := engine.Hint()
			if !ok {
				fmt.Println("No technique found")
				return nil
			}
			fmt.Printf("%s: %s\n", res.Name, res.Explanation)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inFile, "in", "i", "", "puzzle JSON file (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("in"))
	return cmd
}

func newStepCommand() *cobra.Command {
	var inFile, outFile string

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Apply a single naked or hidden single",
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzle, err := loadPuzzle(inFile)
			if err != nil {
				return err
			}
			engine := techniques.NewEngine(&puzzle.Grid, &puzzle.Given)
			if !engine.Step() {
				fmt.Println("No applicable technique, nothing placed")
				return nil
			}
			visualizer.NewPuzzleVisualizer(puzzle).Print()
			if outFile != "" {
				data, err := puzzle.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to serialize puzzle: %v", err)
				}
				if err := os.WriteFile(outFile, data, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %v", outFile, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inFile, "in", "i", "", "puzzle JSON file (required)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the updated puzzle back to this file")
	cobra.CheckErr(cmd.MarkFlagRequired("in"))
	return cmd
}

func newCheckCommand() *cobra.Command {
	var inFile string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report the puzzle state: violations, solved, unsolvable, unique or ambiguous",
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzle, err := loadPuzzle(inFile)
			if err != nil {
				return err
			}
			engine := techniques.NewEngine(&puzzle.Grid, &puzzle.Given)
			status := engine.Status()
			fmt.Printf("Status: %s\n", status.Kind)
			for _, v := range status.Violations {
				fmt.Printf("  %s", v.Message)
				if len(v.Cells) > 0 {
					fmt.Print(" at")
					for _, c := range v.Cells {
						fmt.Printf(" (%d,%d)", c.Row+1, c.Col+1)
					}
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inFile, "in", "i", "", "puzzle JSON file (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("in"))
	return cmd
}

func loadPuzzle(path string) (*types.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	puzzle, err := types.FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}
	return puzzle, nil
}
