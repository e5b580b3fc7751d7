package engine

import "sort"

// GameState is a deep-copied, JSON-serializable view of the whole game.
// Presentation layers read it; mutating it never touches the engine.
type GameState struct {
	ConfigName   string `json:"config_name"`
	Rows         int    `json:"rows"`
	Cols         int    `json:"cols"`
	Phase        Phase  `json:"phase"`
	ActiveSeat   int    `json:"active_seat"`
	ActivePlayer string `json:"active_player"`

	Board    []string `json:"board"`
	Discards []string `json:"discards,omitempty"`
	BagCount int      `json:"bag_count"`

	Hotels  []HotelState  `json:"hotels"`
	Players []PlayerState `json:"players"`

	PendingPurchase map[string]int `json:"pending_purchase,omitempty"`
	Founding        *FoundingView  `json:"founding,omitempty"`
	Merger          *MergerView    `json:"merger,omitempty"`

	NoPlayableTiles bool           `json:"no_playable_tiles,omitempty"`
	GameOver        bool           `json:"game_over"`
	Results         []PlayerResult `json:"results,omitempty"`
}

// HotelState is one chain's public market state.
type HotelState struct {
	Name           string   `json:"name"`
	Tier           int      `json:"tier"`
	Size           int      `json:"size"`
	Tiles          []string `json:"tiles,omitempty"`
	AvailableStock int      `json:"available_stock"`
	StockPrice     int      `json:"stock_price"`
	MajorBonus     int      `json:"major_bonus"`
	MinorBonus     int      `json:"minor_bonus"`
	Safe           bool     `json:"safe"`
}

// PlayerState is one seat's state, hand included. Presentation layers decide
// whose hand to show.
type PlayerState struct {
	Name   string         `json:"name"`
	Cash   int            `json:"cash"`
	Hand   []string       `json:"hand"`
	Stocks map[string]int `json:"stocks"`
}

// FoundingView describes a pending founding decision.
type FoundingView struct {
	Tile      string   `json:"tile"`
	Component []string `json:"component,omitempty"`
	Available []string `json:"available"`
}

// MergerView describes an in-flight merger.
type MergerView struct {
	Tile         string   `json:"tile"`
	Survivor     string   `json:"survivor,omitempty"`
	TiedChains   []string `json:"tied_chains,omitempty"`
	CurrentChain string   `json:"current_chain,omitempty"`
	Decider      string   `json:"decider,omitempty"`
}

// Snapshot builds the presentation view of the current state.
func (g *GameEngine) Snapshot() *GameState {
	s := &GameState{
		ConfigName:   g.cfg.Name,
		Rows:         g.cfg.Rows,
		Cols:         g.cfg.Cols,
		Phase:        g.phase,
		ActiveSeat:   g.turn,
		ActivePlayer: g.players[g.turn].Name,
		BagCount:     len(g.bag),
		Board:        labelList(g.board),
		Discards:     labelList(g.discards),
		GameOver:     g.phase == PhaseGameOver,
	}
	if g.phase == PhasePlacement {
		s.NoPlayableTiles = g.noPlayable
	}

	for _, h := range g.hotels {
		s.Hotels = append(s.Hotels, HotelState{
			Name:           h.ID.String(),
			Tier:           h.ID.Tier(),
			Size:           h.Size(),
			Tiles:          labelList(h.Tiles),
			AvailableStock: h.AvailableStock,
			StockPrice:     h.StockPrice(),
			MajorBonus:     h.MajorBonus(),
			MinorBonus:     h.MinorBonus(),
			Safe:           h.Size() >= g.cfg.SafeSize,
		})
	}

	for _, p := range g.players {
		ps := PlayerState{
			Name:   p.Name,
			Cash:   p.Cash,
			Hand:   labelList(p.Hand),
			Stocks: make(map[string]int, len(p.Stocks)),
		}
		for id, n := range p.Stocks {
			ps.Stocks[id.String()] = n
		}
		s.Players = append(s.Players, ps)
	}

	if len(g.purchase) > 0 {
		s.PendingPurchase = make(map[string]int, len(g.purchase))
		for id, qty := range g.purchase {
			s.PendingPurchase[id.String()] = qty
		}
	}

	if g.founding != nil {
		var available []string
		for _, h := range g.hotels {
			if !h.Founded() {
				available = append(available, h.ID.String())
			}
		}
		s.Founding = &FoundingView{
			Tile:      g.founding.tile.Label(),
			Component: labelList(g.founding.component),
			Available: available,
		}
	}

	if g.merger != nil {
		m := &MergerView{Tile: g.merger.tile.Label()}
		if g.phase == PhaseMergerOrder {
			m.TiedChains = hotelNameList(g.merger.groups[0])
		}
		if g.phase == PhaseDisposal {
			m.Survivor = g.merger.survivor.String()
			m.CurrentChain = g.merger.acquired[0].String()
			m.Decider = g.players[g.merger.decider].Name
		}
		s.Merger = m
	}

	if g.phase == PhaseGameOver {
		s.Results = append([]PlayerResult{}, g.results...)
	}
	return s
}

// labelList renders coordinates as sorted board labels.
func labelList(coords []Coord) []string {
	if len(coords) == 0 {
		return nil
	}
	sorted := append([]Coord{}, coords...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})
	labels := make([]string, len(sorted))
	for i, c := range sorted {
		labels[i] = c.Label()
	}
	return labels
}
