package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/matthewconnelltombs/acquire/game/service"
)

// Server exposes the game service over the Model Context Protocol so AI
// agents can moderate and play full games.
type Server struct {
	service   service.GameService
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server wired to the given game service.
func NewServer(gameService service.GameService) *Server {
	s := &Server{service: gameService}
	s.initMCPServer()
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		"Acquire",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Acquire - MCP Interface

Hotel chain building and stock trading board game for 2-6 players.

GAME OBJECTIVE:
Build hotel chains by placing tiles, buy stock in growing chains, and
profit from mergers. The richest player when the game ends wins.

TURN FLOW:
Each turn follows the phases: start_turn -> placement -> (founding or
merger resolution) -> purchase. Call proceed at start_turn, place_tile
during placement, then confirm_purchase to end the turn. The game_state
tool always reports the current phase and whose decision is pending.

AVAILABLE TOOLS:
- create_session: Start a game with a player roster
- list_sessions / get_session / delete_session: Session management
- game_state: Current board, hotels, players, and phase
- proceed: Begin the active player's turn
- place_tile: Play a tile from the active player's hand
- found_hotel: Pick the chain for a newly founded hotel
- choose_merger_order: Break a tie between equal-sized merging chains
- dispose_stock: Trade, sell, or keep shares of an acquired chain
- set_purchase / confirm_purchase: Build and commit the stock order
- acknowledge_no_playable_tiles: Skip placement when no tile is legal
- end_game: Accept or decline the end-of-game offer
- list_configs: List available rule sets
- game_instructions: Full rules reference

NOTE: This is a hot-seat moderator interface. game_state shows every
player's hand, so relay only the active player's hand when playing
against humans.`),
	)

	s.registerTools()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	sessionProp := map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}

	// Session management
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with a player roster and optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"players": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Player names in seat order (2-6, distinct)",
				},
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the rule set to use (optional)",
				},
			},
			Required: []string{"players"},
		},
	}, s.handleCreateSession)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListSessions)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
			},
			Required: []string{"session_id"},
		},
	}, s.handleGetSession)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_session",
		Description: "Delete a game session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
			},
			Required: []string{"session_id"},
		},
	}, s.handleDeleteSession)

	// Game operations
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state with a rendered board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
			},
			Required: []string{"session_id"},
		},
	}, s.handleGameState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "proceed",
		Description: "Begin the active player's turn (start_turn phase)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
			},
			Required: []string{"session_id"},
		},
	}, s.handleProceed)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "place_tile",
		Description: "Place a tile from the active player's hand (placement phase)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"tile": map[string]interface{}{
					"type":        "string",
					"description": "Board label such as 3c (column 3, row c)",
				},
			},
			Required: []string{"session_id", "tile"},
		},
	}, s.handlePlaceTile)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "found_hotel",
		Description: "Choose the chain for a newly founded hotel (founding phase)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"hotel": map[string]interface{}{
					"type":        "string",
					"description": "Hotel chain name, e.g. Festival",
				},
			},
			Required: []string{"session_id", "hotel"},
		},
	}, s.handleFoundHotel)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "choose_merger_order",
		Description: "Break a tie between equal-sized merging chains (merger_order phase)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"hotel": map[string]interface{}{
					"type":        "string",
					"description": "The chain to rank ahead of the other tied chains",
				},
			},
			Required: []string{"session_id", "hotel"},
		},
	}, s.handleChooseMergerOrder)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "dispose_stock",
		Description: "Trade, sell, or keep the deciding player's shares of the acquired chain (disposal phase)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"trade", "sell", "keep"},
					"description": "trade swaps 2 acquired shares for 1 survivor share; sell cashes out at the pre-merger price; keep retains everything",
				},
				"hotel": map[string]interface{}{
					"type":        "string",
					"description": "The acquired chain being disposed of",
				},
				"count": map[string]interface{}{
					"type":        "integer",
					"description": "Number of shares to trade or sell (ignored for keep)",
				},
			},
			Required: []string{"session_id", "action", "hotel"},
		},
	}, s.handleDisposeStock)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "set_purchase",
		Description: "Set the quantity of one chain in the pending stock order (purchase phase)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"hotel": map[string]interface{}{
					"type":        "string",
					"description": "Hotel chain to buy",
				},
				"quantity": map[string]interface{}{
					"type":        "integer",
					"description": "Shares of this chain in the order (0 removes it)",
				},
			},
			Required: []string{"session_id", "hotel", "quantity"},
		},
	}, s.handleSetPurchase)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "confirm_purchase",
		Description: "Commit the pending stock order and end the turn (purchase phase)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
			},
			Required: []string{"session_id"},
		},
	}, s.handleConfirmPurchase)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "acknowledge_no_playable_tiles",
		Description: "Skip placement when the active player has no legal tile (placement phase)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
			},
			Required: []string{"session_id"},
		},
	}, s.handleAcknowledgeNoPlayableTiles)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "end_game",
		Description: "Accept or decline the end-of-game offer (end_game_offer phase)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"accept": map[string]interface{}{
					"type":        "boolean",
					"description": "true scores the game now, false continues play",
				},
			},
			Required: []string{"session_id", "accept"},
		},
	}, s.handleEndGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available rule-set configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListConfigs)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the full rules reference",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Tool handlers

func (s *Server) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)

	playersRaw, _ := args["players"].([]interface{})
	players := make([]string, 0, len(playersRaw))
	for _, p := range playersRaw {
		if name, ok := p.(string); ok {
			players = append(players, name)
		}
	}

	info, err := s.service.CreateSession(ctx, configName, players)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\nPlayers: %s\n\n%s",
		info.ID, info.ConfigName, strings.Join(info.Players, ", "),
		formatGameState(info.GameState))
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions, err := s.service.ListSessions(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", len(sessions))
	for _, info := range sessions {
		fmt.Fprintf(&b, "- %s (Config: %s, Players: %s, Created: %s)\n",
			info.ID, info.ConfigName, strings.Join(info.Players, ", "),
			info.CreatedAt.Format("15:04:05"))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	info, err := s.service.GetSession(ctx, sessionID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatSessionInfo(info)), nil
}

func (s *Server) handleDeleteSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	if err := s.service.DeleteSession(ctx, sessionID); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted session: %s", sessionID)), nil
}

func (s *Server) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	state, err := s.service.GetGameState(ctx, sessionID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatGameState(state)), nil
}

func (s *Server) handleProceed(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	result, err := s.service.Proceed(ctx, sessionID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatCommandResult(result)), nil
}

func (s *Server) handlePlaceTile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	tile, _ := args["tile"].(string)

	result, err := s.service.PlaceTile(ctx, sessionID, tile)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatCommandResult(result)), nil
}

func (s *Server) handleFoundHotel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	hotel, _ := args["hotel"].(string)

	result, err := s.service.FoundHotel(ctx, sessionID, hotel)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatCommandResult(result)), nil
}

func (s *Server) handleChooseMergerOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	hotel, _ := args["hotel"].(string)

	result, err := s.service.ChooseMergerOrder(ctx, sessionID, hotel)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatCommandResult(result)), nil
}

func (s *Server) handleDisposeStock(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	action, _ := args["action"].(string)
	hotel, _ := args["hotel"].(string)
	count := 0
	if n, ok := args["count"].(float64); ok {
		count = int(n)
	}

	result, err := s.service.DisposeStock(ctx, sessionID, action, hotel, count)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatCommandResult(result)), nil
}

func (s *Server) handleSetPurchase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	hotel, _ := args["hotel"].(string)
	quantity := 0
	if n, ok := args["quantity"].(float64); ok {
		quantity = int(n)
	}

	result, err := s.service.SetPurchase(ctx, sessionID, hotel, quantity)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatCommandResult(result)), nil
}

func (s *Server) handleConfirmPurchase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	result, err := s.service.ConfirmPurchase(ctx, sessionID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatCommandResult(result)), nil
}

func (s *Server) handleAcknowledgeNoPlayableTiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	result, err := s.service.AcknowledgeNoPlayableTiles(ctx, sessionID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatCommandResult(result)), nil
}

func (s *Server) handleEndGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	accept, _ := args["accept"].(bool)

	result, err := s.service.EndGame(ctx, sessionID, accept)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatCommandResult(result)), nil
}

func (s *Server) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	configs, err := s.service.ListConfigs(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Configurations:\n\n")
	for _, config := range configs {
		fmt.Fprintf(&b, "• %s (%s)\n  %s\n  Board: %dx%d\n\n",
			config.Name, config.ConfigID, config.Description, config.Rows, config.Cols)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Acquire - Complete Rules Reference

GAME OBJECTIVE:
Place tiles to build hotel chains, buy stock in growing chains, and
collect shareholder bonuses when chains merge. The player with the most
money after final scoring wins.

SETUP:
Each player starts with $6000, a hand of 6 tiles, and no stock. One
seed tile per player is placed on the board before play begins. Seven
hotel chains are available, 25 shares each:
  Tier 1 (cheap):     Worldwide, Sackson
  Tier 2 (standard):  Festival, Imperial, American
  Tier 3 (luxury):    Continental, Tower

TURN STRUCTURE:
1. proceed - the active player's turn begins.
2. place_tile - play one tile from the hand onto its printed square.
   - Touching no chain and no loose tiles: the tile just sits there.
   - Touching loose (unaffiliated) tiles: founds a new chain; pick it
     with found_hotel. The founder receives one free share while the
     pool lasts. Illegal when all seven chains are already on the board.
   - Touching exactly one chain: the tile and any loose neighbors join
     that chain.
   - Touching two or more chains: a merger. Illegal if two or more of
     them are safe (11+ tiles).
3. Merger resolution, when triggered:
   - The largest chain survives. Ties are broken by the merging player
     with choose_merger_order.
   - For each acquired chain, largest first: majority and minority
     shareholder bonuses are paid, then every holder in turn order
     (starting with the merging player) disposes of their shares with
     dispose_stock: trade 2-for-1 into the survivor, sell at the
     pre-merger price, or keep.
4. set_purchase / confirm_purchase - buy up to 3 shares total from any
   founded chains, cash permitting. An empty order is fine.
5. A replacement tile is drawn and the next player's turn begins.
   Permanently unplayable tiles are replaced automatically.

STOCK PRICES:
Prices rise with chain size and tier. A tier-1 chain of 2 tiles costs
$200 per share; each tier adds $100. The majority shareholder bonus is
ten times the share price, the minority bonus five times. Tied majority
holders split both bonuses; tied minority holders split the minority
bonus. Splits round up to the next $100.

SAFE CHAINS AND THE END:
A chain with 11 or more tiles is safe and can never be acquired. The
game can end once any chain reaches 41 tiles or every chain on the
board is safe; the active player chooses via end_game. At the end,
shareholder bonuses are paid for every active chain and all stock is
sold at face value. Highest total cash wins.

TIPS FOR AGENTS:
- game_state shows all hands; hide inactive hands from human opponents.
- Watch the phase field: it names the only legal command.
- Founding early is cheap equity; the free founder share often decides
  close games.
- Hold minority positions in chains likely to be acquired; the bonus
  plus a 2-for-1 trade into the survivor compounds well.`

	return mcp.NewToolResultText(instructions), nil
}
