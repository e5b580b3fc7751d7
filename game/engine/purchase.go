package engine

import "fmt"

// SetPurchase sets the pending share count for one chain in this turn's
// purchase. A quantity of zero clears the chain from the order. The whole
// order is validated on every change; a rejected change leaves the pending
// order exactly as it was.
func (g *GameEngine) SetPurchase(id HotelID, qty int) error {
	if g.phase != PhasePurchase {
		return fmt.Errorf("%w: set purchase during %s", ErrInvalidPhaseCommand, g.phase)
	}
	if id < 0 || int(id) >= HotelCount {
		return fmt.Errorf("%w: unknown hotel", ErrInvalidPurchase)
	}
	if qty < 0 || qty > g.cfg.PurchaseLimit {
		return fmt.Errorf("%w: quantity must be between 0 and %d, got %d", ErrInvalidPurchase, g.cfg.PurchaseLimit, qty)
	}
	h := g.hotels[id]
	if qty > 0 && !h.Founded() {
		return fmt.Errorf("%w: %s is not on the board", ErrInvalidPurchase, id)
	}
	if qty > h.AvailableStock {
		return fmt.Errorf("%w: only %d shares of %s left in the pool", ErrInvalidPurchase, h.AvailableStock, id)
	}

	prev, hadPrev := g.purchase[id]
	if qty == 0 {
		delete(g.purchase, id)
	} else {
		g.purchase[id] = qty
	}

	total, cost := g.purchaseTotals()
	if total > g.cfg.PurchaseLimit || cost > g.players[g.turn].Cash {
		if hadPrev {
			g.purchase[id] = prev
		} else {
			delete(g.purchase, id)
		}
		if total > g.cfg.PurchaseLimit {
			return fmt.Errorf("%w: at most %d shares per turn", ErrInvalidPurchase, g.cfg.PurchaseLimit)
		}
		return fmt.Errorf("%w: order costs %d, %s has %d", ErrInvalidPurchase, cost, g.players[g.turn].Name, g.players[g.turn].Cash)
	}
	return nil
}

// PendingPurchase returns a copy of the current purchase order.
func (g *GameEngine) PendingPurchase() map[HotelID]int {
	out := make(map[HotelID]int, len(g.purchase))
	for id, qty := range g.purchase {
		out[id] = qty
	}
	return out
}

func (g *GameEngine) purchaseTotals() (total, cost int) {
	for id, qty := range g.purchase {
		total += qty
		cost += qty * g.hotels[id].StockPrice()
	}
	return total, cost
}

// ConfirmPurchase executes the pending purchase order, moving shares from
// the bank pools to the active player, and ends the turn. An empty order is
// a valid pass.
func (g *GameEngine) ConfirmPurchase() error {
	if g.phase != PhasePurchase {
		return fmt.Errorf("%w: confirm purchase during %s", ErrInvalidPhaseCommand, g.phase)
	}
	p := g.players[g.turn]
	for id, qty := range g.purchase {
		h := g.hotels[id]
		h.AvailableStock -= qty
		p.addStock(id, qty)
		p.Cash -= qty * h.StockPrice()
	}
	g.purchase = make(map[HotelID]int)
	g.emit(Event{Type: EventPlayerChanged, Player: p.Name})
	g.endOfTurn()
	return nil
}
