// Package engine provides the core rules logic for the hotel acquisition
// board game.
//
// The engine package implements the game mechanics including:
//   - Grid adjacency and flood-fill over unaffiliated tiles
//   - Hotel chain founding, growth and merger resolution
//   - Shareholder bonus payouts and stock disposal rounds
//   - Stock purchase validation and end-game scoring
//   - The turn phase state machine and its notification events
//
// Core Types:
//
// GameEngine holds the full state of one game and exposes one method per
// player command. GameConfig defines the rule set loaded from JSON files,
// and Snapshot returns a GameState view for presentation layers.
//
// Usage:
//
//	eng, err := engine.NewEngine(nil, []string{"Alice", "Bob"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := eng.Proceed(); err != nil {
//		log.Fatal(err)
//	}
//	err = eng.PlaceTile("3c")
//	state := eng.Snapshot()
//
// Game Rules:
//
// Players take turns placing tiles on a grid. Adjacent tiles form hotel
// chains whose stock players buy; when a placed tile joins two chains the
// larger one absorbs the smaller, paying bonuses to its shareholders. The
// game ends when a chain reaches the end-game size or every chain on the
// board is safe, and the richest player wins.
package engine
