package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// HotelID identifies one of the seven hotel chains.
type HotelID int8

const (
	Worldwide HotelID = iota
	Sackson
	Festival
	Imperial
	American
	Continental
	Tower
)

// NoHotel marks the absence of a chain (unaffiliated tiles, empty choices).
const NoHotel HotelID = -1

// HotelCount is the fixed number of chains in a game.
const HotelCount = 7

// Validation constants
const (
	MinPlayers = 2
	MaxPlayers = 6
	MinRows    = 3
	MaxRows    = 26 // row labels are single letters a..z
	MinCols    = 3
	MaxCols    = 99
)

var hotelNames = [HotelCount]string{
	"Worldwide",
	"Sackson",
	"Festival",
	"Imperial",
	"American",
	"Continental",
	"Tower",
}

// hotelTiers maps each chain to its price tier (1 = cheapest, 3 = priciest).
var hotelTiers = [HotelCount]int{1, 1, 2, 2, 2, 3, 3}

// String returns the chain's display name.
func (h HotelID) String() string {
	if h < 0 || int(h) >= HotelCount {
		return "none"
	}
	return hotelNames[h]
}

// Tier returns the chain's price tier (1..3).
func (h HotelID) Tier() int {
	if h < 0 || int(h) >= HotelCount {
		return 0
	}
	return hotelTiers[h]
}

// ParseHotel resolves a chain name (case-insensitive) to its HotelID.
func ParseHotel(name string) (HotelID, error) {
	for i, n := range hotelNames {
		if strings.EqualFold(n, name) {
			return HotelID(i), nil
		}
	}
	return NoHotel, fmt.Errorf("unknown hotel %q", name)
}

// Coord addresses a grid cell. Row 0 is row "a", Col 0 is column "1".
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Label returns the board label for the coordinate, e.g. {Row: 2, Col: 2} -> "3c".
func (c Coord) Label() string {
	return fmt.Sprintf("%d%c", c.Col+1, 'a'+rune(c.Row))
}

// ParseCoord parses a board label such as "3c" or "12i" back into a Coord.
// It does not bounds-check against a particular grid; callers do that.
func ParseCoord(label string) (Coord, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) < 2 {
		return Coord{}, fmt.Errorf("invalid tile label %q", label)
	}
	rowCh := label[len(label)-1]
	if rowCh < 'a' || rowCh > 'z' {
		return Coord{}, fmt.Errorf("invalid tile label %q", label)
	}
	col, err := strconv.Atoi(label[:len(label)-1])
	if err != nil || col < 1 {
		return Coord{}, fmt.Errorf("invalid tile label %q", label)
	}
	return Coord{Row: int(rowCh - 'a'), Col: col - 1}, nil
}

// Phase is the current state of the turn state machine. Commands are only
// accepted in the phase they belong to.
type Phase string

const (
	PhaseStartTurn   Phase = "start_turn"
	PhasePlacement   Phase = "placement"
	PhaseFounding    Phase = "founding"
	PhaseMergerOrder Phase = "merger_order"
	PhaseDisposal    Phase = "disposal"
	PhasePurchase    Phase = "purchase"
	PhaseEndOffer    Phase = "end_game_offer"
	PhaseGameOver    Phase = "game_over"
)

// DisposalAction is a stockholder's choice during a merger disposal round.
type DisposalAction string

const (
	DisposeTrade DisposalAction = "trade"
	DisposeSell  DisposalAction = "sell"
	DisposeKeep  DisposalAction = "keep"
)

// Hotel is a chain on the board: the tiles it owns plus the shares left in
// the bank pool. Price and bonuses are derived from tier and size, never stored.
type Hotel struct {
	ID             HotelID
	Tiles          []Coord
	AvailableStock int
}

// Size returns the number of tiles the chain owns.
func (h *Hotel) Size() int {
	return len(h.Tiles)
}

// Founded reports whether the chain is currently on the board.
func (h *Hotel) Founded() bool {
	return len(h.Tiles) > 0
}

// StockPrice returns the current per-share price (0 below size 2).
func (h *Hotel) StockPrice() int {
	return PriceFor(h.ID.Tier(), h.Size()).Price
}

// MajorBonus returns the current majority shareholder bonus (0 below size 2).
func (h *Hotel) MajorBonus() int {
	return PriceFor(h.ID.Tier(), h.Size()).MajorBonus
}

// MinorBonus returns the current minority shareholder bonus (0 below size 2).
func (h *Hotel) MinorBonus() int {
	return PriceFor(h.ID.Tier(), h.Size()).MinorBonus
}

// Player holds one seat's cash, tile hand and share holdings.
type Player struct {
	Name   string
	Cash   int
	Hand   []Coord
	Stocks map[HotelID]int
}

// Holding returns the player's share count in the given chain.
func (p *Player) Holding(h HotelID) int {
	return p.Stocks[h]
}

func (p *Player) addStock(h HotelID, count int) {
	p.Stocks[h] += count
}

func (p *Player) removeStock(h HotelID, count int) {
	p.Stocks[h] -= count
	if p.Stocks[h] <= 0 {
		delete(p.Stocks, h)
	}
}

// removeFromHand takes the coordinate out of the player's hand, reporting
// whether it was there.
func (p *Player) removeFromHand(c Coord) bool {
	for i, t := range p.Hand {
		if t == c {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// PlayerResult is one row of the final standings.
type PlayerResult struct {
	Name  string `json:"name"`
	Cash  int    `json:"cash"`
	Rank  int    `json:"rank"`
	Place string `json:"place"`
}
