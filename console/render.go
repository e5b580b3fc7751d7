package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matthewconnelltombs/acquire/game/engine"
)

// showTurn prints the board and the active player's private view. Other
// players' hands stay hidden in hot-seat play.
func (g *Game) showTurn(state *engine.GameState) {
	fmt.Fprintf(g.out, "\n%s's turn (bag: %d tiles)\n\n", state.ActivePlayer, state.BagCount)
	fmt.Fprint(g.out, renderBoard(state))
	g.showMarket(state)

	p := state.Players[state.ActiveSeat]
	fmt.Fprintf(g.out, "\nCash: $%d   Stocks: %s\n", p.Cash, formatStocks(p.Stocks))
	fmt.Fprintf(g.out, "Hand: %s\n\n", strings.Join(p.Hand, " "))
}

// showMarket prints every founded chain's size, price and remaining stock.
func (g *Game) showMarket(state *engine.GameState) {
	fmt.Fprintln(g.out, "\nChain        Size  Price  Stock")
	for _, h := range state.Hotels {
		if h.Size == 0 {
			continue
		}
		safe := ""
		if h.Safe {
			safe = "  SAFE"
		}
		fmt.Fprintf(g.out, "%-12s %4d  $%-5d %5d%s\n", h.Name, h.Size, h.StockPrice, h.AvailableStock, safe)
	}
}

// showStandings prints the final scoring table.
func (g *Game) showStandings(state *engine.GameState) {
	fmt.Fprintln(g.out, "\nFinal standings:")
	for _, r := range state.Results {
		fmt.Fprintf(g.out, "  %-8s %-12s $%d\n", r.Place, r.Name, r.Cash)
	}
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
