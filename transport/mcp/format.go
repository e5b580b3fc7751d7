package mcp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matthewconnelltombs/acquire/game/engine"
	"github.com/matthewconnelltombs/acquire/game/service"
)

// Formatting helpers

func formatSessionInfo(info *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nPlayers: %s\nCreated: %s\n\n%s",
		info.ID, info.ConfigName, strings.Join(info.Players, ", "),
		info.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(info.GameState))
}

func formatCommandResult(result *service.CommandResult) string {
	var b strings.Builder
	if len(result.Events) > 0 {
		b.WriteString("Events:\n")
		for _, event := range result.Events {
			b.WriteString("- ")
			b.WriteString(formatEvent(event))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatEvent(event engine.Event) string {
	switch event.Type {
	case engine.EventPhaseChanged:
		return fmt.Sprintf("phase changed to %s", event.Phase)
	case engine.EventBoardChanged:
		return "board changed"
	case engine.EventPlayerChanged:
		return fmt.Sprintf("%s's holdings changed", event.Player)
	case engine.EventMergerChoice:
		return fmt.Sprintf("%s must order tied chains: %s",
			event.Player, strings.Join(event.Options, ", "))
	case engine.EventDisposalChoice:
		return fmt.Sprintf("%s must dispose of %s shares",
			event.Player, event.Hotel)
	case engine.EventEndGameOffered:
		return fmt.Sprintf("%s may end the game", event.Player)
	case engine.EventGameOver:
		return "game over"
	default:
		return string(event.Type)
	}
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Config: %s | Phase: %s | Active: %s (seat %d) | Bag: %d\n\n",
		state.ConfigName, state.Phase, state.ActivePlayer, state.ActiveSeat, state.BagCount)

	b.WriteString(renderBoard(state))

	b.WriteString("\nHotels:\n")
	for _, h := range state.Hotels {
		status := "not founded"
		if h.Size > 0 {
			status = fmt.Sprintf("size %-2d price $%-4d stock %d", h.Size, h.StockPrice, h.AvailableStock)
			if h.Safe {
				status += " SAFE"
			}
		}
		fmt.Fprintf(&b, "  %-12s %s\n", h.Name, status)
	}

	b.WriteString("\nPlayers:\n")
	for i, p := range state.Players {
		marker := " "
		if i == state.ActiveSeat {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %-12s $%-6d stocks: %s\n", marker, p.Name, p.Cash, formatStocks(p.Stocks))
		fmt.Fprintf(&b, "  hand: %s\n", strings.Join(p.Hand, " "))
	}

	b.WriteString(formatPhaseDetail(state))

	return b.String()
}

// formatPhaseDetail renders the decision pending in the current phase.
func formatPhaseDetail(state *engine.GameState) string {
	var b strings.Builder

	if state.NoPlayableTiles {
		b.WriteString("\nNo playable tiles: acknowledge to skip placement.\n")
	}
	if f := state.Founding; f != nil {
		fmt.Fprintf(&b, "\nFounding at %s: choose one of %s\n",
			f.Tile, strings.Join(f.Available, ", "))
	}
	if m := state.Merger; m != nil {
		fmt.Fprintf(&b, "\nMerger at %s", m.Tile)
		if len(m.TiedChains) > 0 {
			fmt.Fprintf(&b, ": tied chains %s, the merging player picks the order",
				strings.Join(m.TiedChains, ", "))
		}
		if m.Survivor != "" {
			fmt.Fprintf(&b, ": %s absorbs %s, %s disposes next",
				m.Survivor, m.CurrentChain, m.Decider)
		}
		b.WriteString("\n")
	}
	if len(state.PendingPurchase) > 0 {
		names := make([]string, 0, len(state.PendingPurchase))
		for name := range state.PendingPurchase {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = fmt.Sprintf("%s x%d", name, state.PendingPurchase[name])
		}
		fmt.Fprintf(&b, "\nPending order: %s\n", strings.Join(parts, ", "))
	}
	if state.GameOver {
		b.WriteString("\nFinal standings:\n")
		for _, r := range state.Results {
			fmt.Fprintf(&b, "  %-8s %-12s $%d\n", r.Place, r.Name, r.Cash)
		}
	}
	return b.String()
}

// renderBoard draws the grid: '.' empty, '+' unaffiliated tile, chain
// initial letter for hotel tiles.
func renderBoard(state *engine.GameState) string {
	grid := make([][]byte, state.Rows)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(".", state.Cols))
	}
	mark := func(labels []string, ch byte) {
		for _, label := range labels {
			c, err := engine.ParseCoord(label)
			if err != nil || c.Row >= state.Rows || c.Col >= state.Cols {
				continue
			}
			grid[c.Row][c.Col] = ch
		}
	}
	mark(state.Board, '+')
	for _, h := range state.Hotels {
		mark(h.Tiles, h.Name[0])
	}

	var b strings.Builder
	b.WriteString("  ")
	for col := 1; col <= state.Cols; col++ {
		fmt.Fprintf(&b, "%2d", col)
	}
	b.WriteString("\n")
	for r, row := range grid {
		fmt.Fprintf(&b, "%c ", 'a'+rune(r))
		for _, ch := range row {
			fmt.Fprintf(&b, " %c", ch)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatStocks(stocks map[string]int) string {
	if len(stocks) == 0 {
		return "none"
	}
	names := make([]string, 0, len(stocks))
	for name := range stocks {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s x%d", name, stocks[name])
	}
	return strings.Join(parts, ", ")
}
