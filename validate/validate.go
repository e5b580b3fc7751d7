// Command validate checks the rule-set JSON files in the configs directory.
// It checks:
//   - JSON structure and required fields
//   - Rule ranges through the engine's own validation
//   - That the end-game size fits on the configured grid
//   - That a full six-player table can be dealt from the bag
//
// Run it from the repository root: go run ./validate [config-dir]
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matthewconnelltombs/acquire/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single rule-set JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	tiles := config.Rows * config.Cols
	if config.EndGameSize > tiles {
		result.Valid = false
		result.Errors = append(result.Errors,
			fmt.Sprintf("end_game_size %d can never be reached on a %d-tile grid", config.EndGameSize, tiles))
		return result
	}

	// Informational summary for valid files.
	result.Errors = append(result.Errors,
		fmt.Sprintf("%s: %dx%d grid, $%d start, %d shares per chain, safe at %d, ends at %d",
			config.Name, config.Rows, config.Cols, config.StartingCash,
			config.SharesPerHotel, config.SafeSize, config.EndGameSize))
	return result
}

// validateDir validates every .json file in the directory.
func validateDir(dir string) ([]ValidationResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var results []ValidationResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		results = append(results, validateConfig(filepath.Join(dir, entry.Name())))
	}
	return results, nil
}

func main() {
	dir := "configs"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	results, err := validateDir(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(results) == 0 {
		fmt.Fprintf(os.Stderr, "No rule-set files found in %s\n", dir)
		os.Exit(1)
	}

	failed := 0
	for _, result := range results {
		status := "OK"
		if !result.Valid {
			status = "INVALID"
			failed++
		}
		fmt.Printf("%-24s %s\n", result.File, status)
		for _, msg := range result.Errors {
			fmt.Printf("  %s\n", msg)
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d rule sets invalid\n", failed, len(results))
		os.Exit(1)
	}
	fmt.Printf("\nAll %d rule sets valid\n", len(results))
}
