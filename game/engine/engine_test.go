package engine

import (
	"errors"
	"testing"
)

func createTestConfig() *GameConfig {
	cfg := DefaultConfig()
	cfg.Name = "Engine Test Config"
	cfg.Description = "Configuration for engine tests"
	cfg.Seed = 1
	return cfg
}

func newTestEngine(t *testing.T, players ...string) *GameEngine {
	t.Helper()
	if len(players) == 0 {
		players = []string{"Alice", "Bob", "Carol"}
	}
	g, err := NewEngine(createTestConfig(), players)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return g
}

func mustCoord(t *testing.T, label string) Coord {
	t.Helper()
	c, err := ParseCoord(label)
	if err != nil {
		t.Fatalf("bad label %q: %v", label, err)
	}
	return c
}

// takeTile pulls a coordinate out of whatever zone currently holds it so a
// test can re-home it without breaking the ownership partition.
func takeTile(g *GameEngine, c Coord) {
	for i, t := range g.bag {
		if t == c {
			g.bag = append(g.bag[:i], g.bag[i+1:]...)
			return
		}
	}
	for _, p := range g.players {
		if p.removeFromHand(c) {
			return
		}
	}
	for i, t := range g.board {
		if t == c {
			g.board = append(g.board[:i], g.board[i+1:]...)
			return
		}
	}
	for _, h := range g.hotels {
		for i, t := range h.Tiles {
			if t == c {
				h.Tiles = append(h.Tiles[:i], h.Tiles[i+1:]...)
				return
			}
		}
	}
}

func setHotel(t *testing.T, g *GameEngine, id HotelID, labels ...string) {
	t.Helper()
	for _, label := range labels {
		c := mustCoord(t, label)
		takeTile(g, c)
		g.hotels[id].Tiles = append(g.hotels[id].Tiles, c)
	}
}

func setBoard(t *testing.T, g *GameEngine, labels ...string) {
	t.Helper()
	for _, label := range labels {
		c := mustCoord(t, label)
		takeTile(g, c)
		g.board = append(g.board, c)
	}
}

func giveHandTile(t *testing.T, g *GameEngine, seat int, label string) {
	t.Helper()
	c := mustCoord(t, label)
	takeTile(g, c)
	g.players[seat].Hand = append(g.players[seat].Hand, c)
}

// giveStock moves shares from a chain's pool to a player.
func giveStock(g *GameEngine, seat int, id HotelID, count int) {
	g.players[seat].addStock(id, count)
	g.hotels[id].AvailableStock -= count
}

// clearBoard returns the random seed tiles to the bag so a test can lay out
// an exact position.
func clearBoard(g *GameEngine) {
	g.bag = append(g.bag, g.board...)
	g.board = nil
}

// checkPartition verifies that every grid cell is in exactly one of the bag,
// a hand, the board, a chain or the discard pile.
func checkPartition(t *testing.T, g *GameEngine) {
	t.Helper()
	seen := make(map[Coord]string)
	record := func(zone string, coords []Coord) {
		for _, c := range coords {
			if prev, ok := seen[c]; ok {
				t.Errorf("tile %s in both %s and %s", c.Label(), prev, zone)
			}
			seen[c] = zone
		}
	}
	record("bag", g.bag)
	record("board", g.board)
	record("discards", g.discards)
	for _, p := range g.players {
		record("hand:"+p.Name, p.Hand)
	}
	for _, h := range g.hotels {
		record("hotel:"+h.ID.String(), h.Tiles)
	}
	if want := g.cfg.Rows * g.cfg.Cols; len(seen) != want {
		t.Errorf("partition covers %d tiles, want %d", len(seen), want)
	}
}

// checkStockInvariant verifies pool plus holdings equals shares_per_hotel
// for every chain.
func checkStockInvariant(t *testing.T, g *GameEngine) {
	t.Helper()
	for _, h := range g.hotels {
		total := h.AvailableStock
		for _, p := range g.players {
			total += p.Holding(h.ID)
		}
		if total != g.cfg.SharesPerHotel {
			t.Errorf("%s: pool + holdings = %d, want %d", h.ID, total, g.cfg.SharesPerHotel)
		}
	}
}

func TestNewEngine(t *testing.T) {
	g := newTestEngine(t, "Alice", "Bob", "Carol")

	if g.Phase() != PhaseStartTurn {
		t.Errorf("Expected phase %s, got %s", PhaseStartTurn, g.Phase())
	}
	for _, p := range g.players {
		if p.Cash != 6000 {
			t.Errorf("Player %s: expected starting cash 6000, got %d", p.Name, p.Cash)
		}
		if len(p.Hand) != 6 {
			t.Errorf("Player %s: expected hand of 6, got %d", p.Name, len(p.Hand))
		}
	}
	if len(g.board) != 3 {
		t.Errorf("Expected 3 seed tiles on the board, got %d", len(g.board))
	}
	if want := 9*12 - 3*6 - 3; len(g.bag) != want {
		t.Errorf("Expected %d tiles left in the bag, got %d", want, len(g.bag))
	}
	for _, h := range g.hotels {
		if h.Founded() {
			t.Errorf("%s should not be founded at setup", h.ID)
		}
		if h.AvailableStock != 25 {
			t.Errorf("%s: expected 25 shares in the pool, got %d", h.ID, h.AvailableStock)
		}
	}
	checkPartition(t, g)
	checkStockInvariant(t, g)
}

func TestNewEngine_NilConfigUsesDefaults(t *testing.T) {
	g, err := NewEngine(nil, []string{"Alice", "Bob"})
	if err != nil {
		t.Fatalf("Failed to create engine with nil config: %v", err)
	}
	if g.Config().Rows != 9 || g.Config().Cols != 12 {
		t.Errorf("Expected default 9x12 grid, got %dx%d", g.Config().Rows, g.Config().Cols)
	}
}

func TestNewEngine_InvalidRoster(t *testing.T) {
	tests := []struct {
		name    string
		players []string
	}{
		{"too few", []string{"Alice"}},
		{"too many", []string{"a", "b", "c", "d", "e", "f", "g"}},
		{"duplicate names", []string{"Alice", "Alice"}},
		{"empty name", []string{"Alice", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(createTestConfig(), tt.players)
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("Expected ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestNewEngine_Deterministic(t *testing.T) {
	a := newTestEngine(t, "Alice", "Bob")
	b := newTestEngine(t, "Alice", "Bob")

	if a.turn != b.turn {
		t.Errorf("Same seed picked different starting players: %d vs %d", a.turn, b.turn)
	}
	for i := range a.players {
		if len(a.players[i].Hand) != len(b.players[i].Hand) {
			t.Fatalf("Hand sizes differ for seat %d", i)
		}
		for j := range a.players[i].Hand {
			if a.players[i].Hand[j] != b.players[i].Hand[j] {
				t.Errorf("Seat %d tile %d differs: %s vs %s", i, j,
					a.players[i].Hand[j].Label(), b.players[i].Hand[j].Label())
			}
		}
	}
}

func TestProceed(t *testing.T) {
	g := newTestEngine(t)
	if err := g.Proceed(); err != nil {
		t.Fatalf("Proceed failed: %v", err)
	}
	if g.Phase() != PhasePlacement {
		t.Errorf("Expected phase %s, got %s", PhasePlacement, g.Phase())
	}
	if err := g.Proceed(); !errors.Is(err, ErrInvalidPhaseCommand) {
		t.Errorf("Expected ErrInvalidPhaseCommand on double proceed, got %v", err)
	}
}

func TestCommandsRejectedOutsidePhase(t *testing.T) {
	g := newTestEngine(t)

	tests := []struct {
		name string
		call func() error
	}{
		{"place tile", func() error { return g.PlaceTile("1a") }},
		{"found hotel", func() error { return g.FoundHotel(Tower) }},
		{"choose merger order", func() error { return g.ChooseMergerOrder(Tower) }},
		{"dispose stock", func() error { return g.DisposeStock(DisposeKeep, Tower, 0) }},
		{"set purchase", func() error { return g.SetPurchase(Tower, 1) }},
		{"confirm purchase", func() error { return g.ConfirmPurchase() }},
		{"acknowledge", func() error { return g.AcknowledgeNoPlayableTiles() }},
		{"end game", func() error { return g.EndGame(true) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrInvalidPhaseCommand) {
				t.Errorf("Expected ErrInvalidPhaseCommand during start_turn, got %v", err)
			}
		})
	}
}

func TestTakeEventsDrains(t *testing.T) {
	g := newTestEngine(t)
	events := g.TakeEvents()
	if len(events) == 0 {
		t.Fatal("Expected setup events")
	}
	if events[0].Type != EventPhaseChanged {
		t.Errorf("Expected first event %s, got %s", EventPhaseChanged, events[0].Type)
	}
	if again := g.TakeEvents(); len(again) != 0 {
		t.Errorf("Expected drained queue, got %d events", len(again))
	}
}

func TestFinishTurnReplacesDeadTiles(t *testing.T) {
	g := newTestEngine(t, "Alice", "Bob")
	// Two safe chains with a one-cell gap at 3e; a hand tile there can
	// never be played.
	setHotel(t, g, Worldwide, "1e", "1a", "1b", "1c", "1d", "1f", "1g", "1h", "1i", "2e", "2a")
	setHotel(t, g, Tower, "5e", "5a", "5b", "5c", "5d", "5f", "5g", "5h", "5i", "4e", "4a")
	dead := mustCoord(t, "3e")
	takeTile(g, dead)
	active := g.players[g.turn]
	g.bag = append(g.bag, active.Hand...)
	active.Hand = []Coord{dead}

	g.finishTurn()

	if len(g.discards) != 1 || g.discards[0] != dead {
		t.Errorf("Expected %s in discards, got %v", dead.Label(), labelList(g.discards))
	}
	for _, c := range active.Hand {
		if c == dead {
			t.Errorf("Dead tile %s still in hand", dead.Label())
		}
	}
	checkPartition(t, g)
}
