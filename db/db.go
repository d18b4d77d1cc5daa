package db

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"

	"sudoku_engine_go/internal/types"
)

// collection is the PocketBase collection holding generated puzzles.
const collection = "puzzles"

var client *pocketbase.Client

// Connect loads credentials from the environment (optionally a .env
// file) and authorizes against PocketBase. It must be called before
// any other function in this package.
func Connect() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: no .env file found, relying on environment")
	}

	url := os.Getenv("POCKETBASE_URL")
	if url == "" {
		return fmt.Errorf("POCKETBASE_URL is not set")
	}
	email := os.Getenv("POCKETBASE_EMAIL")
	password := os.Getenv("POCKETBASE_PASSWORD")

	client = pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(email, password))

	if err := client.Authorize(); err != nil {
		return fmt.Errorf("authentication failed: %v", err)
	}

	// PocketBase tokens expire; refresh them in the background.
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		for range ticker.C {
			if err := client.Authorize(); err != nil {
				fmt.Printf("Warning: re-authentication failed: %v\n", err)
			}
		}
	}()
	return nil
}

// UploadPuzzle stores a generated puzzle under the given ID.
func UploadPuzzle(id string, p *types.Puzzle) (*pocketbase.ResponseCreate, error) {
	if id == "" || len(id) > 16 {
		return nil, fmt.Errorf("invalid ID: must be a non-empty string of max 16 characters")
	}

	puzzleJSON, err := p.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal puzzle: %v", err)
	}

	exists, err := PuzzleExists(id)
	if err != nil {
		return nil, fmt.Errorf("failed to check if puzzle exists: %v", err)
	}
	if exists {
		return nil, fmt.Errorf("puzzle with ID %s already exists", id)
	}

	data := map[string]any{
		"id":         id,
		"puzzle":     string(puzzleJSON),
		"difficulty": string(p.Difficulty),
		"removed":    p.Removed,
		"seed":       fmt.Sprint(p.Seed),
	}

	record, err := client.Create(collection, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload puzzle: %v", err)
	}
	return &record, nil
}

// GetPuzzle loads a stored puzzle by ID.
func GetPuzzle(id string) (*types.Puzzle, error) {
	record, err := client.One(collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzle %s: %v", id, err)
	}

	raw, ok := record["puzzle"].(string)
	if !ok {
		return nil, fmt.Errorf("puzzle %s has no payload", id)
	}
	p, err := types.FromJSON([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal puzzle %s: %v", id, err)
	}
	return p, nil
}

// ListPuzzles pages through stored puzzles, optionally filtered by
// difficulty and sorted by the given field ("-field" for descending).
func ListPuzzles(page, perPage int, difficulty types.Difficulty, sortField, sortOrder string) (*pocketbase.ResponseList[map[string]any], error) {
	var filterRules []string
	if difficulty != "" {
		filterRules = append(filterRules, fmt.Sprintf("difficulty = %q", string(difficulty)))
	}

	sort := sortField
	if sortOrder == "desc" {
		sort = "-" + sortField
	}

	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    sort,
		Filters: strings.Join(filterRules, " && "),
	}

	result, err := client.List(collection, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %v", err)
	}
	return &result, nil
}

// PuzzleExists reports whether a puzzle with the ID is stored.
func PuzzleExists(id string) (bool, error) {
	_, err := client.One(collection, id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
