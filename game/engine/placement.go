package engine

import "fmt"

// PlaceTile plays a tile from the active player's hand. Depending on the
// chains around the cell this grows a chain, opens a founding decision,
// starts a merger, or just drops an unaffiliated tile.
func (g *GameEngine) PlaceTile(label string) error {
	if g.phase != PhasePlacement {
		return fmt.Errorf("%w: place tile during %s", ErrInvalidPhaseCommand, g.phase)
	}
	if g.noPlayable {
		return fmt.Errorf("%w: no playable tiles, acknowledge to skip", ErrInvalidPlacement)
	}
	c, err := ParseCoord(label)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlacement, err)
	}
	p := g.players[g.turn]
	if !g.inBounds(c) || !inHand(p, c) {
		return fmt.Errorf("%w: tile %s is not in %s's hand", ErrInvalidPlacement, c.Label(), p.Name)
	}

	adj := g.adjacentHotels(c)
	component := g.connectedUnaffiliated(c)

	switch {
	case len(adj) >= 2:
		if g.safeCount(adj) > 1 {
			return fmt.Errorf("%w: tile %s would merge two safe chains", ErrInvalidPlacement, c.Label())
		}
		p.removeFromHand(c)
		g.emit(Event{Type: EventPlayerChanged, Player: p.Name})
		g.startMerger(c, component, adj)

	case len(adj) == 1:
		p.removeFromHand(c)
		g.absorb(adj[0], c, component)
		g.emit(Event{Type: EventPlayerChanged, Player: p.Name})
		g.emit(Event{Type: EventBoardChanged})
		g.enterPurchase()

	default:
		if len(component) > 0 && !g.unfoundedHotel() {
			return fmt.Errorf("%w: tile %s would found a chain but none is available", ErrInvalidPlacement, c.Label())
		}
		p.removeFromHand(c)
		g.board = append(g.board, c)
		g.emit(Event{Type: EventPlayerChanged, Player: p.Name})
		g.emit(Event{Type: EventBoardChanged})
		switch {
		case len(component) > 0:
			g.founding = &foundingState{tile: c, component: component}
			g.phase = PhaseFounding
			g.emitPhase()
		case g.anyFoundedHotel():
			g.enterPurchase()
		default:
			// Nothing on the market yet, so there is no purchase to make.
			g.endOfTurn()
		}
	}
	return nil
}

// FoundHotel resolves a pending founding decision by choosing which chain
// comes onto the board. The founder receives one free share while the bank
// pool has any.
func (g *GameEngine) FoundHotel(id HotelID) error {
	if g.phase != PhaseFounding {
		return fmt.Errorf("%w: found hotel during %s", ErrInvalidPhaseCommand, g.phase)
	}
	if id < 0 || int(id) >= HotelCount {
		return fmt.Errorf("%w: unknown hotel", ErrInvalidFounding)
	}
	h := g.hotels[id]
	if h.Founded() {
		return fmt.Errorf("%w: %s is already on the board", ErrInvalidFounding, h.ID)
	}

	g.removeFromBoard(g.founding.tile)
	h.Tiles = append(h.Tiles, g.founding.tile)
	for _, c := range g.founding.component {
		g.removeFromBoard(c)
		h.Tiles = append(h.Tiles, c)
	}

	p := g.players[g.turn]
	if h.AvailableStock > 0 {
		h.AvailableStock--
		p.addStock(id, 1)
	}
	g.founding = nil

	g.emit(Event{Type: EventBoardChanged})
	g.emit(Event{Type: EventPlayerChanged, Player: p.Name})
	g.enterPurchase()
	return nil
}

// absorb grows a chain with the placed tile and any unaffiliated tiles it
// connects to.
func (g *GameEngine) absorb(h *Hotel, tile Coord, component []Coord) {
	h.Tiles = append(h.Tiles, tile)
	for _, c := range component {
		g.removeFromBoard(c)
		h.Tiles = append(h.Tiles, c)
	}
}

func inHand(p *Player, c Coord) bool {
	for _, t := range p.Hand {
		if t == c {
			return true
		}
	}
	return false
}
