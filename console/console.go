package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matthewconnelltombs/acquire/game/engine"
	"github.com/matthewconnelltombs/acquire/game/service"
)

// Game drives an interactive hot-seat game on a terminal. It holds no rules
// logic; every decision goes through the game service and every displayed
// value comes from the engine snapshot.
type Game struct {
	service service.GameService
	in      *bufio.Reader
	out     io.Writer
}

// New creates a console front end reading commands from in and writing to out.
func New(svc service.GameService, in io.Reader, out io.Writer) *Game {
	return &Game{
		service: svc,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run plays full games with the given roster until the players decline a
// rematch or input ends.
func (g *Game) Run(ctx context.Context, configName string, players []string) error {
	for {
		info, err := g.service.CreateSession(ctx, configName, players)
		if err != nil {
			return err
		}
		fmt.Fprintf(g.out, "\nNew game: %s (%s)\n", info.ID, info.ConfigName)

		if err := g.playGame(ctx, info.ID); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		again, err := g.promptYesNo("Play again?")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if !again {
			return nil
		}
	}
}

// playGame steps one session through to game over.
func (g *Game) playGame(ctx context.Context, sessionID string) error {
	for {
		done, err := g.step(ctx, sessionID)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// step reads the current state and handles exactly one pending decision.
// It returns true once the game is over.
func (g *Game) step(ctx context.Context, sessionID string) (bool, error) {
	state, err := g.service.GetGameState(ctx, sessionID)
	if err != nil {
		return false, err
	}

	switch state.Phase {
	case engine.PhaseStartTurn:
		return false, g.stepStartTurn(ctx, sessionID, state)
	case engine.PhasePlacement:
		return false, g.stepPlacement(ctx, sessionID, state)
	case engine.PhaseFounding:
		return false, g.stepFounding(ctx, sessionID, state)
	case engine.PhaseMergerOrder:
		return false, g.stepMergerOrder(ctx, sessionID, state)
	case engine.PhaseDisposal:
		return false, g.stepDisposal(ctx, sessionID, state)
	case engine.PhasePurchase:
		return false, g.stepPurchase(ctx, sessionID, state)
	case engine.PhaseEndOffer:
		return false, g.stepEndOffer(ctx, sessionID, state)
	case engine.PhaseGameOver:
		g.showStandings(state)
		return true, nil
	default:
		return false, fmt.Errorf("unhandled phase %s", state.Phase)
	}
}

func (g *Game) stepStartTurn(ctx context.Context, sessionID string, state *engine.GameState) error {
	fmt.Fprintf(g.out, "\n%s, press enter to start your turn.", state.ActivePlayer)
	if _, err := g.readLine(); err != nil {
		return err
	}
	_, err := g.service.Proceed(ctx, sessionID)
	return err
}

func (g *Game) stepPlacement(ctx context.Context, sessionID string, state *engine.GameState) error {
	g.showTurn(state)

	if state.NoPlayableTiles {
		fmt.Fprintf(g.out, "%s has no playable tiles. Press enter to skip placement.", state.ActivePlayer)
		if _, err := g.readLine(); err != nil {
			return err
		}
		_, err := g.service.AcknowledgeNoPlayableTiles(ctx, sessionID)
		return err
	}

	fmt.Fprint(g.out, "Tile to place: ")
	tile, err := g.readLine()
	if err != nil {
		return err
	}
	if _, err := g.service.PlaceTile(ctx, sessionID, tile); err != nil {
		fmt.Fprintf(g.out, "Cannot place %s: %v\n", tile, err)
	}
	return nil
}

func (g *Game) stepFounding(ctx context.Context, sessionID string, state *engine.GameState) error {
	fmt.Fprintf(g.out, "Found a chain at %s. Available: %s\nChain: ",
		state.Founding.Tile, strings.Join(state.Founding.Available, ", "))
	hotel, err := g.readLine()
	if err != nil {
		return err
	}
	if _, err := g.service.FoundHotel(ctx, sessionID, hotel); err != nil {
		fmt.Fprintf(g.out, "Cannot found %s: %v\n", hotel, err)
	}
	return nil
}

func (g *Game) stepMergerOrder(ctx context.Context, sessionID string, state *engine.GameState) error {
	fmt.Fprintf(g.out, "Merger at %s. Tied chains: %s\n%s, which chain ranks first? ",
		state.Merger.Tile, strings.Join(state.Merger.TiedChains, ", "), state.ActivePlayer)
	hotel, err := g.readLine()
	if err != nil {
		return err
	}
	if _, err := g.service.ChooseMergerOrder(ctx, sessionID, hotel); err != nil {
		fmt.Fprintf(g.out, "Cannot rank %s: %v\n", hotel, err)
	}
	return nil
}

func (g *Game) stepDisposal(ctx context.Context, sessionID string, state *engine.GameState) error {
	m := state.Merger
	holding := 0
	for _, p := range state.Players {
		if p.Name == m.Decider {
			holding = p.Stocks[m.CurrentChain]
		}
	}
	fmt.Fprintf(g.out, "%s absorbs %s. %s holds %d shares of %s.\n",
		m.Survivor, m.CurrentChain, m.Decider, holding, m.CurrentChain)
	fmt.Fprintf(g.out, "%s> trade <n> | sell <n> | keep: ", m.Decider)

	line, err := g.readLine()
	if err != nil {
		return err
	}
	action, count, err := parseDisposal(line)
	if err != nil {
		fmt.Fprintf(g.out, "%v\n", err)
		return nil
	}
	if _, err := g.service.DisposeStock(ctx, sessionID, action, m.CurrentChain, count); err != nil {
		fmt.Fprintf(g.out, "Cannot %s: %v\n", action, err)
	}
	return nil
}

func (g *Game) stepPurchase(ctx context.Context, sessionID string, state *engine.GameState) error {
	g.showMarket(state)
	if len(state.PendingPurchase) > 0 {
		fmt.Fprintf(g.out, "Pending order: %s\n", formatStocks(state.PendingPurchase))
	}
	fmt.Fprintf(g.out, "%s> buy <chain> <n> | done: ", state.ActivePlayer)

	line, err := g.readLine()
	if err != nil {
		return err
	}
	fields := strings.Fields(strings.ToLower(line))
	switch {
	case len(fields) == 1 && (fields[0] == "done" || fields[0] == "pass"):
		_, err := g.service.ConfirmPurchase(ctx, sessionID)
		return err
	case len(fields) == 3 && fields[0] == "buy":
		qty, convErr := strconv.Atoi(fields[2])
		if convErr != nil {
			fmt.Fprintf(g.out, "Not a share count: %s\n", fields[2])
			return nil
		}
		if _, err := g.service.SetPurchase(ctx, sessionID, fields[1], qty); err != nil {
			fmt.Fprintf(g.out, "Cannot buy: %v\n", err)
		}
		return nil
	default:
		fmt.Fprintln(g.out, "Commands: buy <chain> <n>, done")
		return nil
	}
}

func (g *Game) stepEndOffer(ctx context.Context, sessionID string, state *engine.GameState) error {
	fmt.Fprintf(g.out, "The game can end now. ")
	accept, err := g.promptYesNo(fmt.Sprintf("%s, end the game?", state.ActivePlayer))
	if err != nil {
		return err
	}
	_, err = g.service.EndGame(ctx, sessionID, accept)
	return err
}

// parseDisposal turns "trade 2", "sell 3" or "keep" into a disposal command.
func parseDisposal(line string) (action string, count int, err error) {
	fields := strings.Fields(strings.ToLower(line))
	switch {
	case len(fields) == 1 && fields[0] == "keep":
		return "keep", 0, nil
	case len(fields) == 2 && (fields[0] == "trade" || fields[0] == "sell"):
		n, convErr := strconv.Atoi(fields[1])
		if convErr != nil {
			return "", 0, fmt.Errorf("not a share count: %s", fields[1])
		}
		return fields[0], n, nil
	default:
		return "", 0, fmt.Errorf("commands: trade <n>, sell <n>, keep")
	}
}

func (g *Game) promptYesNo(question string) (bool, error) {
	for {
		fmt.Fprintf(g.out, "%s (y/n): ", question)
		line, err := g.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

func (g *Game) readLine() (string, error) {
	line, err := g.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
