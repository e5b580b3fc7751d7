// Command acquire plays the hotel-chain board game at a terminal.
//
// It supports three commands:
//  1. "play" (default) - hot-seat game on the terminal for 2-6 players
//  2. "mcp" - MCP stdio server exposing every game command as a tool
//  3. "configs" - list the available rule sets
//
// Flags control the roster file, rule set, config directory, rule overrides,
// the shuffle seed, and debug logging.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/matthewconnelltombs/acquire/console"
	"github.com/matthewconnelltombs/acquire/game/config"
	"github.com/matthewconnelltombs/acquire/game/engine"
	"github.com/matthewconnelltombs/acquire/game/service"
	"github.com/matthewconnelltombs/acquire/game/session"
	"github.com/matthewconnelltombs/acquire/transport/mcp"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Acquire"
)

// getConfigDirDefault returns the default configuration directory.
// It first honors the CONFIG_DIR environment variable, then falls back to "configs".
func getConfigDirDefault() string {
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		return configDir
	}
	return "configs"
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	cmd := rootCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// rootCommand builds the CLI command tree.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    "acquire",
		Usage:   "hotel chain building and stock trading board game",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-dir",
				Value: getConfigDirDefault(),
				Usage: "directory containing rule-set configurations",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "play a hot-seat game on this terminal",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "roster",
						Value: console.DefaultRosterFile,
						Usage: "roster file, one player name per line in seat order",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "rule set to play (defaults to classic)",
					},
					&cli.StringSliceFlag{
						Name:  "set",
						Usage: "rule override as key=value, repeatable (e.g. --set starting_cash=8000)",
					},
					&cli.StringFlag{
						Name:  "seed",
						Usage: "shuffle seed for reproducible games (0 or unset uses the clock)",
					},
				},
				Action: runPlay,
			},
			{
				Name:   "mcp",
				Usage:  "run the MCP stdio server",
				Action: runMCP,
			},
			{
				Name:   "configs",
				Usage:  "list available rule sets",
				Action: runConfigs,
			},
		},
		DefaultCommand: "play",
	}
}

// runPlay loads the roster and rule set, then hands the terminal to the
// console front end.
func runPlay(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd)

	configManager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	cfg := configManager.GetDefault()
	if name := cmd.String("config"); name != "" {
		cfg, err = configManager.LoadConfig(name)
		if err != nil {
			return err
		}
	}

	overrides := cmd.StringSlice("set")
	if seed := cmd.String("seed"); seed != "" {
		overrides = append(overrides, "seed="+seed)
	}
	cfg, err = config.ApplyOverrides(cfg, overrides)
	if err != nil {
		return err
	}

	players, err := console.LoadRoster(cmd.String("roster"))
	if err != nil {
		return err
	}

	svc := service.NewGameService(session.NewManager(), &pinnedConfig{
		inner:  configManager,
		config: cfg,
	})
	return console.New(svc, os.Stdin, os.Stdout).Run(ctx, "", players)
}

// runMCP starts the MCP stdio server (blocking).
func runMCP(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd)

	configManager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	svc := service.NewGameService(session.NewManager(), configManager)
	srv := mcp.NewServer(svc)

	log.Printf("%s v%s MCP stdio server ready", AppName, Version)
	return srv.ServeStdio()
}

// runConfigs prints the available rule sets.
func runConfigs(ctx context.Context, cmd *cli.Command) error {
	configManager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	configs, err := configManager.ListConfigs()
	if err != nil {
		return err
	}
	for _, c := range configs {
		fmt.Printf("%-12s %s (%dx%d) - %s\n", c.ConfigID, c.Name, c.Rows, c.Cols, c.Description)
	}
	return nil
}

// setupLogging applies the --debug flag to the standard logger.
func setupLogging(cmd *cli.Command) {
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

// pinnedConfig serves a fixed rule set (after CLI overrides) as the default
// while delegating named lookups to the real manager.
type pinnedConfig struct {
	inner  service.ConfigManager
	config *engine.GameConfig
}

func (p *pinnedConfig) LoadConfig(name string) (*engine.GameConfig, error) {
	return p.inner.LoadConfig(name)
}

func (p *pinnedConfig) ListConfigs() ([]*service.ConfigInfo, error) {
	return p.inner.ListConfigs()
}

func (p *pinnedConfig) GetDefault() *engine.GameConfig {
	return p.config
}
