package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/matthewconnelltombs/acquire/game/engine"
)

// ApplyOverrides applies key=value pairs (from --set flags) onto a copy of
// the given rule set and validates the result. Keys are the mapstructure
// field names, e.g. "starting_cash=8000".
func ApplyOverrides(base *engine.GameConfig, overrides []string) (*engine.GameConfig, error) {
	if len(overrides) == 0 {
		return base, nil
	}

	values := make(map[string]interface{}, len(overrides))
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("%w: override %q must be key=value", ErrInvalidConfig, kv)
		}
		values[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}

	cfg := *base
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  stringToNumberHookFunc(),
		ErrorUnused: true,
		Result:      &cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build override decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := engine.ValidateGameConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// stringToNumberHookFunc converts override strings into the numeric field
// types of GameConfig.
func stringToNumberHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		s := data.(string)
		switch t.Kind() {
		case reflect.Int:
			return strconv.Atoi(s)
		case reflect.Uint64:
			return strconv.ParseUint(s, 10, 64)
		default:
			return data, nil
		}
	}
}
