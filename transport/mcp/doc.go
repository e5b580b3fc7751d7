// Package mcp exposes the game over the Model Context Protocol.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for every game command
//   - Session-aware command execution
//   - Stdio transport mode
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session: Start a game with a player roster
//   - get_session / list_sessions / delete_session: Session management
//   - game_state: Board, hotel market, and player holdings
//   - proceed: Begin the active player's turn
//   - place_tile: Play a tile from the active hand
//   - found_hotel: Pick the chain for a new hotel
//   - choose_merger_order: Break merger ties
//   - dispose_stock: Trade, sell, or keep acquired shares
//   - set_purchase / confirm_purchase: Build and commit a stock order
//   - acknowledge_no_playable_tiles: Skip a blocked placement
//   - end_game: Accept or decline the end-of-game offer
//   - list_configs: List available rule sets
//   - game_instructions: Full rules reference
//
// Tool results are human-readable text with a rendered board so agents
// can reason about positions without parsing JSON.
//
// Usage:
//
//	srv := mcp.NewServer(gameService)
//	if err := srv.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
//
// The server calls the game service directly; no HTTP hop is involved.
package mcp
