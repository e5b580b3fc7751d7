package service

import (
	"context"
	"time"

	"github.com/matthewconnelltombs/acquire/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string, players []string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Commands
	Proceed(ctx context.Context, sessionID string) (*CommandResult, error)
	PlaceTile(ctx context.Context, sessionID, tile string) (*CommandResult, error)
	FoundHotel(ctx context.Context, sessionID, hotel string) (*CommandResult, error)
	ChooseMergerOrder(ctx context.Context, sessionID, hotel string) (*CommandResult, error)
	DisposeStock(ctx context.Context, sessionID, action, hotel string, count int) (*CommandResult, error)
	SetPurchase(ctx context.Context, sessionID, hotel string, quantity int) (*CommandResult, error)
	ConfirmPurchase(ctx context.Context, sessionID string) (*CommandResult, error)
	AcknowledgeNoPlayableTiles(ctx context.Context, sessionID string) (*CommandResult, error)
	EndGame(ctx context.Context, sessionID string, accept bool) (*CommandResult, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig, players []string) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	Players        []string
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
