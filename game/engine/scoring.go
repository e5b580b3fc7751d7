package engine

import (
	"fmt"
	"sort"
)

var placeNames = [MaxPlayers]string{"Winner", "Second", "Third", "Fourth", "Fifth", "Sixth"}

// endGameCondition holds when any chain has reached the end-game size, or
// when at least one chain is on the board and every founded chain is safe.
func (g *GameEngine) endGameCondition() bool {
	founded := false
	allSafe := true
	for _, h := range g.hotels {
		size := h.Size()
		if size >= g.cfg.EndGameSize {
			return true
		}
		if size > 0 {
			founded = true
			if size < g.cfg.SafeSize {
				allSafe = false
			}
		}
	}
	return founded && allSafe
}

// EndGame resolves the end-game offer. Accepting runs the final scoring;
// declining finishes the turn and play continues.
func (g *GameEngine) EndGame(accept bool) error {
	if g.phase != PhaseEndOffer {
		return fmt.Errorf("%w: end game during %s", ErrInvalidPhaseCommand, g.phase)
	}
	if !accept {
		g.finishTurn()
		return nil
	}
	g.finalScoring()
	return nil
}

// finalScoring pays the shareholder bonuses one last time for every chain
// anyone holds shares in, liquidates all holdings at current prices and
// computes the standings.
func (g *GameEngine) finalScoring() {
	for _, h := range g.hotels {
		if h.AvailableStock == g.cfg.SharesPerHotel {
			continue
		}
		g.payShareholderBonus(h)
		price := h.StockPrice()
		for _, p := range g.players {
			p.Cash += p.Holding(h.ID) * price
		}
	}

	g.results = g.standings()
	g.phase = PhaseGameOver
	g.emit(Event{Type: EventGameOver})
	g.emitPhase()
}

// standings ranks players by cash. Ranking is dense: a player's rank is the
// number of distinct cash totals strictly above theirs, so ties share a rank
// and the next rank is not skipped.
func (g *GameEngine) standings() []PlayerResult {
	distinct := make(map[int]bool)
	for _, p := range g.players {
		distinct[p.Cash] = true
	}

	results := make([]PlayerResult, 0, len(g.players))
	for _, p := range g.players {
		rank := 0
		for cash := range distinct {
			if cash > p.Cash {
				rank++
			}
		}
		results = append(results, PlayerResult{
			Name:  p.Name,
			Cash:  p.Cash,
			Rank:  rank,
			Place: placeNames[rank],
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Cash > results[j].Cash
	})
	return results
}

// payShareholderBonus pays the majority and minority bonuses for a chain.
// Tied majority holders split both bonuses; a sole shareholder collects
// both; tied minority holders split the minority bonus. Splits round up to
// the nearest 100. Nothing is paid when nobody holds shares.
func (g *GameEngine) payShareholderBonus(h *Hotel) {
	var holders []*Player
	maxHolding := 0
	for _, p := range g.players {
		if n := p.Holding(h.ID); n > 0 {
			holders = append(holders, p)
			if n > maxHolding {
				maxHolding = n
			}
		}
	}
	if len(holders) == 0 {
		return
	}

	info := PriceFor(h.ID.Tier(), h.Size())
	var majors, minors []*Player
	secondHolding := 0
	for _, p := range holders {
		if p.Holding(h.ID) == maxHolding {
			majors = append(majors, p)
		} else if n := p.Holding(h.ID); n > secondHolding {
			secondHolding = n
		}
	}
	for _, p := range holders {
		if p.Holding(h.ID) == secondHolding && secondHolding > 0 {
			minors = append(minors, p)
		}
	}

	switch {
	case len(majors) > 1:
		share := splitBonus(info.MajorBonus+info.MinorBonus, len(majors))
		for _, p := range majors {
			p.Cash += share
		}
	case len(holders) == 1:
		holders[0].Cash += info.MajorBonus + info.MinorBonus
	default:
		majors[0].Cash += info.MajorBonus
		if len(minors) == 1 {
			minors[0].Cash += info.MinorBonus
		} else {
			share := splitBonus(info.MinorBonus, len(minors))
			for _, p := range minors {
				p.Cash += share
			}
		}
	}

	for _, p := range holders {
		g.emit(Event{Type: EventPlayerChanged, Player: p.Name})
	}
}
