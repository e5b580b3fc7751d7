// Command analyze prints quick, human-readable heuristics about rule-set
// files in the configs directory. It summarizes the economy of each rule set:
// the price and bonus schedule per tier, total money needed to corner each
// chain, and how the grid size relates to the safe and end-game thresholds.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matthewconnelltombs/acquire/game/engine"
)

func main() {
	dir := "configs"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config directory: %v\n", err)
		os.Exit(1)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		fmt.Printf("\n=== Analyzing %s ===\n", entry.Name())
		analyzeConfig(filepath.Join(dir, entry.Name()))
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}
	if err := engine.ValidateGameConfig(&config); err != nil {
		fmt.Printf("Invalid rule set: %v\n", err)
		return
	}

	tiles := config.Rows * config.Cols
	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Grid: %dx%d (%d tiles)\n", config.Rows, config.Cols, tiles)
	fmt.Printf("Cash: $%d start, limit %d shares per turn\n", config.StartingCash, config.PurchaseLimit)
	fmt.Printf("Thresholds: safe at %d tiles (%.0f%% of grid), end at %d (%.0f%%)\n",
		config.SafeSize, percent(config.SafeSize, tiles),
		config.EndGameSize, percent(config.EndGameSize, tiles))

	fmt.Println("\nPrice schedule (size: tier1 / tier2 / tier3):")
	for _, size := range []int{2, 3, 4, 5, 6, 11, 21, 31, 41} {
		fmt.Printf("  %3d+: $%-4d / $%-4d / $%-4d\n", size,
			engine.PriceFor(1, size).Price,
			engine.PriceFor(2, size).Price,
			engine.PriceFor(3, size).Price)
	}

	fmt.Println("\nCost to corner a chain at founding (all shares at size 2):")
	for tier := 1; tier <= 3; tier++ {
		cost := config.SharesPerHotel * engine.PriceFor(tier, 2).Price
		turns := (config.SharesPerHotel + config.PurchaseLimit - 1) / config.PurchaseLimit
		fmt.Printf("  tier %d: $%d over at least %d turns\n", tier, cost, turns)
	}

	maxBonus := engine.PriceFor(3, config.EndGameSize).MajorBonus
	fmt.Printf("\nLargest single payout: $%d majority bonus on a tier-3 chain at end-game size\n", maxBonus)
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
