package engine

import (
	"fmt"
)

// GameConfig is a named rule set. The zero values are not playable; use
// DefaultConfig or a configs/ JSON file as the starting point.
type GameConfig struct {
	Name           string `json:"name" mapstructure:"name"`
	Description    string `json:"description" mapstructure:"description"`
	Rows           int    `json:"rows" mapstructure:"rows"`
	Cols           int    `json:"cols" mapstructure:"cols"`
	StartingCash   int    `json:"starting_cash" mapstructure:"starting_cash"`
	HandSize       int    `json:"hand_size" mapstructure:"hand_size"`
	SharesPerHotel int    `json:"shares_per_hotel" mapstructure:"shares_per_hotel"`
	PurchaseLimit  int    `json:"purchase_limit" mapstructure:"purchase_limit"`
	SafeSize       int    `json:"safe_size" mapstructure:"safe_size"`
	EndGameSize    int    `json:"end_game_size" mapstructure:"end_game_size"`

	// Seed makes tile draws and the starting player deterministic when
	// non-zero. Zero means seed from the clock.
	Seed uint64 `json:"seed,omitempty" mapstructure:"seed"`
}

// DefaultConfig returns the classic rule set.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:           "Classic",
		Description:    "The classic 9x12 board with standard cash and stock counts",
		Rows:           9,
		Cols:           12,
		StartingCash:   6000,
		HandSize:       6,
		SharesPerHotel: 25,
		PurchaseLimit:  3,
		SafeSize:       11,
		EndGameSize:    41,
	}
}

// ValidateGameConfig validates a rule set for correctness and playability.
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrConfiguration)
	}
	if config.Name == "" {
		return fmt.Errorf("%w: name is required", ErrConfiguration)
	}
	if config.Rows < MinRows || config.Rows > MaxRows {
		return fmt.Errorf("%w: rows must be between %d and %d, got %d", ErrConfiguration, MinRows, MaxRows, config.Rows)
	}
	if config.Cols < MinCols || config.Cols > MaxCols {
		return fmt.Errorf("%w: cols must be between %d and %d, got %d", ErrConfiguration, MinCols, MaxCols, config.Cols)
	}
	if config.StartingCash <= 0 {
		return fmt.Errorf("%w: starting_cash must be positive, got %d", ErrConfiguration, config.StartingCash)
	}
	if config.HandSize < 1 {
		return fmt.Errorf("%w: hand_size must be at least 1, got %d", ErrConfiguration, config.HandSize)
	}
	if config.SharesPerHotel < 1 {
		return fmt.Errorf("%w: shares_per_hotel must be at least 1, got %d", ErrConfiguration, config.SharesPerHotel)
	}
	if config.PurchaseLimit < 1 {
		return fmt.Errorf("%w: purchase_limit must be at least 1, got %d", ErrConfiguration, config.PurchaseLimit)
	}
	if config.SafeSize < 2 {
		return fmt.Errorf("%w: safe_size must be at least 2, got %d", ErrConfiguration, config.SafeSize)
	}
	if config.EndGameSize <= config.SafeSize {
		return fmt.Errorf("%w: end_game_size must be greater than safe_size (%d), got %d", ErrConfiguration, config.SafeSize, config.EndGameSize)
	}

	// The bag has to cover the opening deal for a full table: a hand per
	// player plus one seeded board tile each.
	tiles := config.Rows * config.Cols
	needed := MaxPlayers * (config.HandSize + 1)
	if tiles < needed {
		return fmt.Errorf("%w: %dx%d grid has %d tiles, need at least %d for %d players with hand size %d",
			ErrConfiguration, config.Rows, config.Cols, tiles, needed, MaxPlayers, config.HandSize)
	}
	return nil
}
