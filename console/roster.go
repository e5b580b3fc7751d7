package console

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultRosterFile is the roster looked for when --roster is not given.
const DefaultRosterFile = "player_name.txt"

// LoadRoster reads player names from a text file, one per line, in seat
// order. Blank lines and surrounding whitespace are ignored. Roster size and
// name validity are checked by the engine when the game starts.
func LoadRoster(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	var players []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		players = append(players, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("roster file %s names no players", path)
	}
	return players, nil
}
