// Package config loads named rule-set configurations from JSON files.
//
// The manager caches parsed configs, validates them through the engine and
// falls back to the built-in classic rule set when the directory holds no
// usable file. ApplyOverrides layers --set key=value flags on top of a
// loaded rule set.
package config
