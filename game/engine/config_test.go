package engine

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := ValidateGameConfig(DefaultConfig()); err != nil {
		t.Errorf("DefaultConfig failed validation: %v", err)
	}
}

func TestValidateGameConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"missing name", func(c *GameConfig) { c.Name = "" }},
		{"rows too small", func(c *GameConfig) { c.Rows = 2 }},
		{"rows too large", func(c *GameConfig) { c.Rows = 27 }},
		{"cols too small", func(c *GameConfig) { c.Cols = 2 }},
		{"cols too large", func(c *GameConfig) { c.Cols = 100 }},
		{"zero starting cash", func(c *GameConfig) { c.StartingCash = 0 }},
		{"zero hand size", func(c *GameConfig) { c.HandSize = 0 }},
		{"zero shares", func(c *GameConfig) { c.SharesPerHotel = 0 }},
		{"zero purchase limit", func(c *GameConfig) { c.PurchaseLimit = 0 }},
		{"safe size too small", func(c *GameConfig) { c.SafeSize = 1 }},
		{"end size not above safe size", func(c *GameConfig) { c.EndGameSize = c.SafeSize }},
		{"bag cannot cover the deal", func(c *GameConfig) { c.Rows = 3; c.Cols = 12 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := ValidateGameConfig(cfg); !errors.Is(err, ErrConfiguration) {
				t.Errorf("Expected ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestValidateGameConfig_Nil(t *testing.T) {
	if err := ValidateGameConfig(nil); !errors.Is(err, ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration for nil config, got %v", err)
	}
}
