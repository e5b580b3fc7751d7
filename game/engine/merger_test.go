package engine

import (
	"errors"
	"testing"
)

func TestMergerLargerChainSurvives(t *testing.T) {
	g := newTestEngine(t, "Alice", "Bob")
	clearBoard(g)
	// Worldwide is safe with 15 tiles; merging a safe chain with an unsafe
	// one is legal and the safe chain survives.
	setHotel(t, g, Worldwide,
		"1a", "1b", "1c", "1d", "1e", "1f", "1g", "1h", "1i",
		"2a", "2b", "2c", "2d", "2e", "2f")
	setHotel(t, g, Sackson, "4a", "4b", "4c", "4d", "4e")
	g.turn = 0
	giveStock(g, 0, Sackson, 3)
	giveHandTile(t, g, 0, "3a")
	if err := g.Proceed(); err != nil {
		t.Fatalf("Proceed failed: %v", err)
	}

	cashBefore := g.players[0].Cash
	if err := g.PlaceTile("3a"); err != nil {
		t.Fatalf("PlaceTile failed: %v", err)
	}
	if g.Phase() != PhaseDisposal {
		t.Fatalf("Expected phase %s, got %s", PhaseDisposal, g.Phase())
	}

	// Sole shareholder of a size-5 tier-1 chain collects both bonuses.
	if got := g.players[0].Cash - cashBefore; got != 7500 {
		t.Errorf("Expected 7500 in bonuses, got %d", got)
	}

	chain, decider, ok := g.CurrentDisposal()
	if !ok || chain != Sackson || decider != 0 {
		t.Fatalf("Expected Alice disposing Sackson, got %s seat %d", chain, decider)
	}

	// Selling pays the pre-merger price (size 5 -> 500).
	if err := g.DisposeStock(DisposeSell, Sackson, 3); err != nil {
		t.Fatalf("DisposeStock failed: %v", err)
	}
	if got := g.players[0].Cash - cashBefore; got != 7500+1500 {
		t.Errorf("Expected 1500 in sale proceeds, got %d total", got)
	}

	if g.Phase() != PhasePurchase {
		t.Errorf("Expected phase %s after the disposal round, got %s", PhasePurchase, g.Phase())
	}
	if size := g.hotels[Worldwide].Size(); size != 21 {
		t.Errorf("Expected Worldwide size 21 after the merger, got %d", size)
	}
	if g.hotels[Sackson].Size() != 0 {
		t.Errorf("Expected Sackson off the board, got %d tiles", g.hotels[Sackson].Size())
	}
	if g.hotels[Sackson].AvailableStock != 25 {
		t.Errorf("Expected the full Sackson pool back, got %d", g.hotels[Sackson].AvailableStock)
	}
	checkPartition(t, g)
	checkStockInvariant(t, g)
}

func TestMergerTieRequiresChoice(t *testing.T) {
	g := newTestEngine(t, "Alice", "Bob")
	clearBoard(g)
	setHotel(t, g, Worldwide, "1a", "2a")
	setHotel(t, g, Sackson, "1c", "2c")
	g.turn = 0
	giveHandTile(t, g, 0, "1b")
	if err := g.Proceed(); err != nil {
		t.Fatalf("Proceed failed: %v", err)
	}

	if err := g.PlaceTile("1b"); err != nil {
		t.Fatalf("PlaceTile failed: %v", err)
	}
	if g.Phase() != PhaseMergerOrder {
		t.Fatalf("Expected phase %s, got %s", PhaseMergerOrder, g.Phase())
	}
	options := g.MergerOptions()
	if len(options) != 2 {
		t.Fatalf("Expected 2 tied chains, got %v", options)
	}

	if err := g.ChooseMergerOrder(Tower); !errors.Is(err, ErrInvalidMergerChoice) {
		t.Errorf("Expected ErrInvalidMergerChoice, got %v", err)
	}
	if err := g.ChooseMergerOrder(Sackson); err != nil {
		t.Fatalf("ChooseMergerOrder failed: %v", err)
	}

	// Nobody holds Worldwide shares, so the disposal round is skipped.
	if g.Phase() != PhasePurchase {
		t.Errorf("Expected phase %s, got %s", PhasePurchase, g.Phase())
	}
	if size := g.hotels[Sackson].Size(); size != 5 {
		t.Errorf("Expected Sackson size 5, got %d", size)
	}
	if g.hotels[Worldwide].Size() != 0 {
		t.Errorf("Expected Worldwide off the board, got %d tiles", g.hotels[Worldwide].Size())
	}
	checkPartition(t, g)
}

func TestDisposalVisitOrder(t *testing.T) {
	g := newTestEngine(t, "Alice", "Bob", "Carol", "Dave")
	clearBoard(g)
	setHotel(t, g, Worldwide, "1a", "1b", "1c")
	setHotel(t, g, Sackson, "1e", "1f")
	g.turn = 1
	for seat := range g.players {
		giveStock(g, seat, Sackson, 2)
	}
	giveHandTile(t, g, 1, "1d")
	if err := g.Proceed(); err != nil {
		t.Fatalf("Proceed failed: %v", err)
	}
	if err := g.PlaceTile("1d"); err != nil {
		t.Fatalf("PlaceTile failed: %v", err)
	}

	var visited []int
	for g.Phase() == PhaseDisposal {
		_, decider, ok := g.CurrentDisposal()
		if !ok {
			t.Fatal("CurrentDisposal returned false during disposal")
		}
		visited = append(visited, decider)
		if err := g.DisposeStock(DisposeKeep, Sackson, 0); err != nil {
			t.Fatalf("DisposeStock failed: %v", err)
		}
	}

	want := []int{1, 2, 3, 0}
	if len(visited) != len(want) {
		t.Fatalf("Visited seats %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("Visited seats %v, want %v", visited, want)
		}
	}
	checkStockInvariant(t, g)
}

func TestDisposalTradeAndSell(t *testing.T) {
	g := newTestEngine(t, "Alice", "Bob")
	clearBoard(g)
	setHotel(t, g, Worldwide, "1a", "1b", "1c")
	setHotel(t, g, Sackson, "1e", "1f")
	g.turn = 0
	giveStock(g, 0, Sackson, 4)
	giveStock(g, 1, Sackson, 3)
	giveHandTile(t, g, 0, "1d")
	if err := g.Proceed(); err != nil {
		t.Fatalf("Proceed failed: %v", err)
	}
	if err := g.PlaceTile("1d"); err != nil {
		t.Fatalf("PlaceTile failed: %v", err)
	}

	if err := g.DisposeStock(DisposeSell, Worldwide, 1); !errors.Is(err, ErrInvalidDisposal) {
		t.Errorf("Expected ErrInvalidDisposal for the wrong chain, got %v", err)
	}
	if err := g.DisposeStock(DisposeTrade, Sackson, 3); !errors.Is(err, ErrInvalidDisposal) {
		t.Errorf("Expected ErrInvalidDisposal for an odd trade, got %v", err)
	}
	if err := g.DisposeStock(DisposeTrade, Sackson, 6); !errors.Is(err, ErrInvalidDisposal) {
		t.Errorf("Expected ErrInvalidDisposal beyond the holding, got %v", err)
	}
	if err := g.DisposeStock(DisposalAction("donate"), Sackson, 1); !errors.Is(err, ErrInvalidDisposal) {
		t.Errorf("Expected ErrInvalidDisposal for an unknown action, got %v", err)
	}

	// Alice trades 2 for 1 survivor share, then sells her last 2 at the
	// pre-merger price of 200.
	cashBefore := g.players[0].Cash
	if err := g.DisposeStock(DisposeTrade, Sackson, 2); err != nil {
		t.Fatalf("Trade failed: %v", err)
	}
	if g.players[0].Holding(Worldwide) != 1 {
		t.Errorf("Expected 1 Worldwide share from the trade, got %d", g.players[0].Holding(Worldwide))
	}
	if err := g.DisposeStock(DisposeSell, Sackson, 2); err != nil {
		t.Fatalf("Sell failed: %v", err)
	}
	if got := g.players[0].Cash - cashBefore; got != 400 {
		t.Errorf("Expected 400 from the sale, got %d", got)
	}

	// Bob keeps his 3 shares.
	_, decider, ok := g.CurrentDisposal()
	if !ok || decider != 1 {
		t.Fatalf("Expected Bob to decide next, got seat %d (ok=%v)", decider, ok)
	}
	if err := g.DisposeStock(DisposeKeep, Sackson, 0); err != nil {
		t.Fatalf("Keep failed: %v", err)
	}

	if g.Phase() != PhasePurchase {
		t.Errorf("Expected phase %s, got %s", PhasePurchase, g.Phase())
	}
	if g.players[1].Holding(Sackson) != 3 {
		t.Errorf("Expected Bob to keep 3 shares, got %d", g.players[1].Holding(Sackson))
	}
	if size := g.hotels[Worldwide].Size(); size != 6 {
		t.Errorf("Expected Worldwide size 6, got %d", size)
	}
	checkPartition(t, g)
	checkStockInvariant(t, g)
}

func TestDisposalTradeLimitedBySurvivorPool(t *testing.T) {
	g := newTestEngine(t, "Alice", "Bob")
	clearBoard(g)
	setHotel(t, g, Worldwide, "1a", "1b", "1c")
	setHotel(t, g, Sackson, "1e", "1f")
	g.turn = 0
	giveStock(g, 0, Sackson, 4)
	giveStock(g, 1, Worldwide, 24) // one survivor share left in the pool
	giveHandTile(t, g, 0, "1d")
	if err := g.Proceed(); err != nil {
		t.Fatalf("Proceed failed: %v", err)
	}
	if err := g.PlaceTile("1d"); err != nil {
		t.Fatalf("PlaceTile failed: %v", err)
	}

	if err := g.DisposeStock(DisposeTrade, Sackson, 4); !errors.Is(err, ErrInvalidDisposal) {
		t.Errorf("Expected ErrInvalidDisposal when the pool cannot cover the trade, got %v", err)
	}
	if err := g.DisposeStock(DisposeTrade, Sackson, 2); err != nil {
		t.Fatalf("Trade within the pool failed: %v", err)
	}
}

func TestThreeChainMergerOrdering(t *testing.T) {
	g := newTestEngine(t, "Alice", "Bob")
	clearBoard(g)
	setHotel(t, g, Worldwide, "5a", "5b", "5c", "5d")
	setHotel(t, g, Sackson, "5f", "5g", "5h")
	setHotel(t, g, Festival, "2e", "3e", "4e")
	g.turn = 0
	giveStock(g, 0, Sackson, 1)
	giveStock(g, 0, Festival, 1)
	giveHandTile(t, g, 0, "5e")
	if err := g.Proceed(); err != nil {
		t.Fatalf("Proceed failed: %v", err)
	}

	cashBefore := g.players[0].Cash
	if err := g.PlaceTile("5e"); err != nil {
		t.Fatalf("PlaceTile failed: %v", err)
	}

	// Worldwide leads uncontested at size 4; Sackson and Festival are tied.
	if g.Phase() != PhaseMergerOrder {
		t.Fatalf("Expected phase %s, got %s", PhaseMergerOrder, g.Phase())
	}
	if err := g.ChooseMergerOrder(Festival); err != nil {
		t.Fatalf("ChooseMergerOrder failed: %v", err)
	}

	// Festival resolves first, then Sackson.
	chain, _, ok := g.CurrentDisposal()
	if !ok || chain != Festival {
		t.Fatalf("Expected Festival disposal first, got %s", chain)
	}
	if err := g.DisposeStock(DisposeKeep, Festival, 0); err != nil {
		t.Fatalf("Keep failed: %v", err)
	}
	chain, _, ok = g.CurrentDisposal()
	if !ok || chain != Sackson {
		t.Fatalf("Expected Sackson disposal second, got %s", chain)
	}
	if err := g.DisposeStock(DisposeKeep, Sackson, 0); err != nil {
		t.Fatalf("Keep failed: %v", err)
	}

	// Sole-holder bonuses: Festival size 3 tier 2 pays 6000, Sackson size 3
	// tier 1 pays 4500.
	if got := g.players[0].Cash - cashBefore; got != 10500 {
		t.Errorf("Expected 10500 in bonuses, got %d", got)
	}
	if size := g.hotels[Worldwide].Size(); size != 11 {
		t.Errorf("Expected Worldwide size 11, got %d", size)
	}
	if g.Phase() != PhasePurchase {
		t.Errorf("Expected phase %s, got %s", PhasePurchase, g.Phase())
	}
	checkPartition(t, g)
	checkStockInvariant(t, g)
}
