package engine

import (
	"fmt"
	"sort"
)

// mergerState tracks a merger from the placed tile through the ordering
// tie-breaks and one disposal round per acquired chain.
type mergerState struct {
	tile      Coord
	component []Coord

	// groups are the involved chains bucketed by size, largest first. The
	// head group is resolved next; a head with more than one chain needs a
	// tie-break pick from the merging player.
	groups [][]HotelID

	// order is the resolved ordering so far, survivor first.
	order []HotelID

	survivor HotelID
	acquired []HotelID // still to be disposed of; head is the current chain

	decider   int // seat currently choosing in the disposal round
	remaining int // seats left to visit in this round, current included
}

// startMerger buckets the involved chains by size and resolves as much of
// the ordering as possible without player input.
func (g *GameEngine) startMerger(tile Coord, component []Coord, involved []*Hotel) {
	m := &mergerState{tile: tile, component: component}

	bySize := make(map[int][]HotelID)
	var sizes []int
	for _, h := range involved {
		size := h.Size()
		if len(bySize[size]) == 0 {
			sizes = append(sizes, size)
		}
		bySize[size] = append(bySize[size], h.ID)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	for _, size := range sizes {
		m.groups = append(m.groups, bySize[size])
	}

	g.merger = m
	g.resolveOrdering()
}

// resolveOrdering appends every uncontested chain to the ordering. It stops
// at the first size tie, asking the merging player to pick, or finishes the
// ordering and begins the disposal rounds.
func (g *GameEngine) resolveOrdering() {
	m := g.merger
	for len(m.groups) > 0 {
		head := m.groups[0]
		if len(head) > 1 {
			g.phase = PhaseMergerOrder
			g.emit(Event{Type: EventMergerChoice, Player: g.players[g.turn].Name, Options: hotelNameList(head)})
			g.emitPhase()
			return
		}
		m.order = append(m.order, head[0])
		m.groups = m.groups[1:]
	}

	m.survivor = m.order[0]
	m.acquired = append([]HotelID{}, m.order[1:]...)
	g.startDisposal()
}

// ChooseMergerOrder resolves one size tie: the chosen chain takes the next
// slot in the merger ordering.
func (g *GameEngine) ChooseMergerOrder(id HotelID) error {
	if g.phase != PhaseMergerOrder {
		return fmt.Errorf("%w: choose merger order during %s", ErrInvalidPhaseCommand, g.phase)
	}
	m := g.merger
	head := m.groups[0]
	idx := -1
	for i, candidate := range head {
		if candidate == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s is not among the tied chains", ErrInvalidMergerChoice, id)
	}

	m.order = append(m.order, id)
	head = append(head[:idx], head[idx+1:]...)
	if len(head) == 1 {
		m.order = append(m.order, head[0])
		m.groups = m.groups[1:]
	} else {
		m.groups[0] = head
	}
	g.resolveOrdering()
	return nil
}

// startDisposal pays the shareholder bonuses for the current acquired chain
// and opens its disposal round, starting at the merging player.
func (g *GameEngine) startDisposal() {
	m := g.merger
	chain := g.hotels[m.acquired[0]]

	g.payShareholderBonus(chain)

	m.decider = g.turn
	m.remaining = len(g.players)
	g.skipNonHolders()
	if m.remaining <= 0 {
		g.finishChain()
		return
	}
	g.phase = PhaseDisposal
	g.emitDisposalChoice()
}

func (g *GameEngine) emitDisposalChoice() {
	m := g.merger
	g.emit(Event{
		Type:   EventDisposalChoice,
		Hotel:  m.acquired[0].String(),
		Player: g.players[m.decider].Name,
	})
	g.emitPhase()
}

// skipNonHolders advances the disposal round past seats with no shares in
// the current chain.
func (g *GameEngine) skipNonHolders() {
	m := g.merger
	chain := m.acquired[0]
	for m.remaining > 0 && g.players[m.decider].Holding(chain) == 0 {
		m.decider = (m.decider + 1) % len(g.players)
		m.remaining--
	}
}

// CurrentDisposal returns the chain being disposed of and the seat deciding.
// The bool is false outside the disposal phase.
func (g *GameEngine) CurrentDisposal() (HotelID, int, bool) {
	if g.phase != PhaseDisposal {
		return NoHotel, 0, false
	}
	return g.merger.acquired[0], g.merger.decider, true
}

// DisposeStock applies one trade/sell/keep decision for the deciding
// shareholder. Trade and sell may be partial; the seat keeps deciding until
// it keeps its remainder or runs out of shares.
func (g *GameEngine) DisposeStock(action DisposalAction, id HotelID, count int) error {
	if g.phase != PhaseDisposal {
		return fmt.Errorf("%w: dispose stock during %s", ErrInvalidPhaseCommand, g.phase)
	}
	m := g.merger
	if id != m.acquired[0] {
		return fmt.Errorf("%w: %s is not the chain being resolved", ErrInvalidDisposal, id)
	}
	p := g.players[m.decider]
	chain := g.hotels[id]
	survivor := g.hotels[m.survivor]
	holding := p.Holding(id)

	switch action {
	case DisposeTrade:
		if count <= 0 || count%2 != 0 {
			return fmt.Errorf("%w: trades swap 2 shares for 1, got %d", ErrInvalidDisposal, count)
		}
		if count > holding {
			return fmt.Errorf("%w: %s holds %d shares of %s", ErrInvalidDisposal, p.Name, holding, id)
		}
		if count/2 > survivor.AvailableStock {
			return fmt.Errorf("%w: only %d shares of %s left in the pool", ErrInvalidDisposal, survivor.AvailableStock, m.survivor)
		}
		p.removeStock(id, count)
		chain.AvailableStock += count
		p.addStock(m.survivor, count/2)
		survivor.AvailableStock -= count / 2

	case DisposeSell:
		if count <= 0 || count > holding {
			return fmt.Errorf("%w: %s holds %d shares of %s", ErrInvalidDisposal, p.Name, holding, id)
		}
		p.removeStock(id, count)
		chain.AvailableStock += count
		p.Cash += count * chain.StockPrice()

	case DisposeKeep:
		g.nextDecider()
		return nil

	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidDisposal, action)
	}

	g.emit(Event{Type: EventPlayerChanged, Player: p.Name})
	if p.Holding(id) == 0 {
		g.nextDecider()
	} else {
		g.emitDisposalChoice()
	}
	return nil
}

// nextDecider passes the disposal round to the next shareholder, or closes
// out the chain when the round has visited every seat.
func (g *GameEngine) nextDecider() {
	m := g.merger
	m.remaining--
	m.decider = (m.decider + 1) % len(g.players)
	g.skipNonHolders()
	if m.remaining <= 0 {
		g.finishChain()
		return
	}
	g.emitDisposalChoice()
}

// finishChain folds the resolved chain's tiles into the survivor and moves
// on to the next acquired chain, or completes the merger.
func (g *GameEngine) finishChain() {
	m := g.merger
	chain := g.hotels[m.acquired[0]]
	survivor := g.hotels[m.survivor]

	survivor.Tiles = append(survivor.Tiles, chain.Tiles...)
	chain.Tiles = nil
	g.emit(Event{Type: EventBoardChanged})

	m.acquired = m.acquired[1:]
	if len(m.acquired) > 0 {
		g.startDisposal()
		return
	}

	// The merger tile and any unaffiliated tiles it connected join last.
	survivor.Tiles = append(survivor.Tiles, m.tile)
	for _, c := range m.component {
		g.removeFromBoard(c)
		survivor.Tiles = append(survivor.Tiles, c)
	}
	g.merger = nil
	g.emit(Event{Type: EventBoardChanged})
	g.enterPurchase()
}

// MergerOptions returns the chains tied for the next ordering slot. Only
// meaningful during the merger order phase.
func (g *GameEngine) MergerOptions() []HotelID {
	if g.phase != PhaseMergerOrder || g.merger == nil || len(g.merger.groups) == 0 {
		return nil
	}
	return append([]HotelID{}, g.merger.groups[0]...)
}

func hotelNameList(ids []HotelID) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}
