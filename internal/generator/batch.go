package generator

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"sudoku_engine_go/internal/types"
)

// ProgressReport describes how far a batch generation has come.
type ProgressReport struct {
	Phase     string
	Progress  float64
	Message   string
	Completed bool
}

// ProgressCallback receives batch progress updates.
type ProgressCallback func(ProgressReport)

// GenerateBatch produces count puzzles concurrently. Each worker owns
// its own generator seeded from baseSeed plus the puzzle index, so a
// batch is reproducible regardless of worker scheduling. The engine
// itself stays single-threaded per puzzle; only independent puzzles
// run in parallel.
func GenerateBatch(difficulty types.Difficulty, count int, baseSeed int64, progress ProgressCallback) []*types.Puzzle {
	if count <= 0 {
		return nil
	}

	puzzles := make([]*types.Puzzle, count)
	jobs := make(chan int, count)
	done := make(chan int, count)
	workerCount := int(math.Min(float64(count), float64(runtime.NumCPU())))

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gen := NewClassicGenerator(difficulty)
			for idx := range jobs {
				gen.SetSeed(baseSeed + int64(idx))
				p, err := gen.Generate()
				if err != nil {
					// Generate cannot fail for a classic grid, but keep
					// the slot empty rather than blocking the batch.
					done <- idx
					continue
				}
				puzzles[idx] = p
				done <- idx
			}
		}()
	}

	for i := 0; i < count; i++ {
		jobs <- i
	}
	close(jobs)

	finished := 0
	for range done {
		finished++
		if progress != nil {
			progress(ProgressReport{
				Phase:     "generation",
				Progress:  float64(finished) / float64(count),
				Message:   fmt.Sprintf("Generated puzzle %d/%d", finished, count),
				Completed: finished == count,
			})
		}
		if finished == count {
			break
		}
	}
	wg.Wait()

	return puzzles
}
