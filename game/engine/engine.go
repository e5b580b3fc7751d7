package engine

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// GameEngine holds the full state of one game. It is not safe for concurrent
// use; callers serialize access (the session layer does this).
//
// Tile ownership is a partition: every grid cell is in exactly one of the
// bag, a player's hand, the unaffiliated board, a chain's tile list, or the
// discard pile.
type GameEngine struct {
	cfg *GameConfig
	rng *rand.Rand

	players  []*Player
	hotels   []*Hotel
	bag      []Coord
	board    []Coord
	discards []Coord

	turn       int
	phase      Phase
	noPlayable bool

	founding *foundingState
	merger   *mergerState
	purchase map[HotelID]int

	events  []Event
	results []PlayerResult
}

// foundingState is the pending decision after a tile created a new chain.
type foundingState struct {
	tile      Coord
	component []Coord
}

// NewEngine creates a game from a rule set and a player roster, deals the
// opening hands, seeds one board tile per player and picks a random starting
// player. Passing a nil config uses DefaultConfig.
func NewEngine(config *GameConfig, playerNames []string) (*GameEngine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if len(playerNames) < MinPlayers || len(playerNames) > MaxPlayers {
		return nil, fmt.Errorf("%w: need %d to %d players, got %d", ErrConfiguration, MinPlayers, MaxPlayers, len(playerNames))
	}
	seen := make(map[string]bool, len(playerNames))
	for _, name := range playerNames {
		if name == "" {
			return nil, fmt.Errorf("%w: player names must not be empty", ErrConfiguration)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate player name %q", ErrConfiguration, name)
		}
		seen[name] = true
	}

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &GameEngine{
		cfg:      config,
		rng:      rand.New(rand.NewSource(seed)),
		purchase: make(map[HotelID]int),
		phase:    PhaseStartTurn,
	}

	for r := 0; r < config.Rows; r++ {
		for c := 0; c < config.Cols; c++ {
			g.bag = append(g.bag, Coord{Row: r, Col: c})
		}
	}

	for id := 0; id < HotelCount; id++ {
		g.hotels = append(g.hotels, &Hotel{
			ID:             HotelID(id),
			AvailableStock: config.SharesPerHotel,
		})
	}

	for _, name := range playerNames {
		p := &Player{
			Name:   name,
			Cash:   config.StartingCash,
			Stocks: make(map[HotelID]int),
		}
		for i := 0; i < config.HandSize; i++ {
			p.Hand = append(p.Hand, g.drawFromBag())
		}
		g.players = append(g.players, p)
	}

	// One seed tile per player goes straight onto the board unaffiliated.
	for range g.players {
		g.board = append(g.board, g.drawFromBag())
	}

	g.turn = g.rng.Intn(len(g.players))
	g.emitPhase()
	return g, nil
}

// drawFromBag removes and returns a uniformly random tile. The bag must not
// be empty.
func (g *GameEngine) drawFromBag() Coord {
	i := g.rng.Intn(len(g.bag))
	c := g.bag[i]
	g.bag = append(g.bag[:i], g.bag[i+1:]...)
	return c
}

// Config returns the rule set the game was created with.
func (g *GameEngine) Config() *GameConfig {
	return g.cfg
}

// Phase returns the current phase.
func (g *GameEngine) Phase() Phase {
	return g.phase
}

// ActivePlayer returns the seat index and name of the player whose turn it is.
func (g *GameEngine) ActivePlayer() (int, string) {
	return g.turn, g.players[g.turn].Name
}

// Results returns the final standings; it is empty before game over.
func (g *GameEngine) Results() []PlayerResult {
	return g.results
}

// HasPlayableTiles reports whether the active player can legally place a
// tile. Only meaningful during the placement phase.
func (g *GameEngine) HasPlayableTiles() bool {
	return !g.noPlayable
}

// Proceed acknowledges the start of the active player's turn and moves the
// game into the placement phase.
func (g *GameEngine) Proceed() error {
	if g.phase != PhaseStartTurn {
		return fmt.Errorf("%w: proceed during %s", ErrInvalidPhaseCommand, g.phase)
	}
	g.phase = PhasePlacement
	g.noPlayable = g.playableTileCount(g.players[g.turn]) == 0
	g.emitPhase()
	return nil
}

// AcknowledgeNoPlayableTiles confirms that the active player's whole hand is
// unplayable and skips the placement, continuing with the purchase phase.
func (g *GameEngine) AcknowledgeNoPlayableTiles() error {
	if g.phase != PhasePlacement {
		return fmt.Errorf("%w: acknowledge during %s", ErrInvalidPhaseCommand, g.phase)
	}
	if !g.noPlayable {
		return fmt.Errorf("%w: player has playable tiles", ErrInvalidPhaseCommand)
	}
	g.noPlayable = false
	g.enterPurchase()
	return nil
}

func (g *GameEngine) enterPurchase() {
	g.phase = PhasePurchase
	g.purchase = make(map[HotelID]int)
	g.emitPhase()
}

// endOfTurn runs after the purchase is confirmed. If the end condition holds
// the active player gets to call the game; otherwise the turn wraps up.
func (g *GameEngine) endOfTurn() {
	if g.endGameCondition() {
		g.phase = PhaseEndOffer
		g.emit(Event{Type: EventEndGameOffered, Player: g.players[g.turn].Name})
		g.emitPhase()
		return
	}
	g.finishTurn()
}

// finishTurn replenishes the active player's hand, swaps out permanently
// dead tiles and passes play to the next seat.
func (g *GameEngine) finishTurn() {
	p := g.players[g.turn]
	if len(g.bag) > 0 && len(p.Hand) < g.cfg.HandSize {
		p.Hand = append(p.Hand, g.drawFromBag())
	}
	g.replaceDeadTiles(p)
	g.emit(Event{Type: EventPlayerChanged, Player: p.Name})

	g.turn = (g.turn + 1) % len(g.players)
	g.phase = PhaseStartTurn
	g.emitPhase()
}

// replaceDeadTiles discards hand tiles that can never be played because they
// would merge two safe chains, drawing replacements while the bag lasts.
func (g *GameEngine) replaceDeadTiles(p *Player) {
	for i := 0; i < len(p.Hand); {
		adj := g.adjacentHotels(p.Hand[i])
		if len(adj) >= 2 && g.safeCount(adj) > 1 {
			g.discards = append(g.discards, p.Hand[i])
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			if len(g.bag) > 0 {
				p.Hand = append(p.Hand, g.drawFromBag())
			}
			continue
		}
		i++
	}
}

// playableTileCount counts hand tiles with at least one legal placement.
// A tile is unplayable if it would merge two safe chains, or if it would
// found a new chain while all seven are already on the board.
func (g *GameEngine) playableTileCount(p *Player) int {
	count := 0
	for _, c := range p.Hand {
		adj := g.adjacentHotels(c)
		if len(adj) >= 2 && g.safeCount(adj) > 1 {
			continue
		}
		if len(adj) == 0 && len(g.connectedUnaffiliated(c)) > 0 && !g.unfoundedHotel() {
			continue
		}
		count++
	}
	return count
}
