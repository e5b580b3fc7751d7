package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/matthewconnelltombs/acquire/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.Mutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session for the given roster
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string, players []string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let the session manager generate the ID
	session, err := s.sessions.Create("", config, players)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		Players:        session.Players,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.Snapshot(),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		Players:        session.Players,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.Snapshot(),
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			Players:        sess.Players,
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.Snapshot(),
			GameConfig:     sess.Config,
		})
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// command runs one engine command under the service lock and packages the
// resulting state and notifications.
func (s *gameServiceImpl) command(sessionID string, fn func(*engine.GameEngine) error) (*CommandResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if err := fn(sess.Engine); err != nil {
		return nil, err
	}
	return &CommandResult{
		GameState: sess.Engine.Snapshot(),
		Events:    sess.Engine.TakeEvents(),
	}, nil
}

// Proceed acknowledges the start of the active player's turn
func (s *gameServiceImpl) Proceed(ctx context.Context, sessionID string) (*CommandResult, error) {
	return s.command(sessionID, func(g *engine.GameEngine) error {
		return g.Proceed()
	})
}

// PlaceTile plays a tile from the active player's hand
func (s *gameServiceImpl) PlaceTile(ctx context.Context, sessionID, tile string) (*CommandResult, error) {
	return s.command(sessionID, func(g *engine.GameEngine) error {
		return g.PlaceTile(tile)
	})
}

// FoundHotel resolves a pending founding decision
func (s *gameServiceImpl) FoundHotel(ctx context.Context, sessionID, hotel string) (*CommandResult, error) {
	return s.command(sessionID, func(g *engine.GameEngine) error {
		id, err := engine.ParseHotel(hotel)
		if err != nil {
			return fmt.Errorf("%w: %v", engine.ErrInvalidFounding, err)
		}
		return g.FoundHotel(id)
	})
}

// ChooseMergerOrder resolves one merger ordering tie-break
func (s *gameServiceImpl) ChooseMergerOrder(ctx context.Context, sessionID, hotel string) (*CommandResult, error) {
	return s.command(sessionID, func(g *engine.GameEngine) error {
		id, err := engine.ParseHotel(hotel)
		if err != nil {
			return fmt.Errorf("%w: %v", engine.ErrInvalidMergerChoice, err)
		}
		return g.ChooseMergerOrder(id)
	})
}

// DisposeStock applies one trade/sell/keep decision in a disposal round
func (s *gameServiceImpl) DisposeStock(ctx context.Context, sessionID, action, hotel string, count int) (*CommandResult, error) {
	return s.command(sessionID, func(g *engine.GameEngine) error {
		id, err := engine.ParseHotel(hotel)
		if err != nil {
			return fmt.Errorf("%w: %v", engine.ErrInvalidDisposal, err)
		}
		return g.DisposeStock(engine.DisposalAction(strings.ToLower(action)), id, count)
	})
}

// SetPurchase adjusts the pending stock purchase for one chain
func (s *gameServiceImpl) SetPurchase(ctx context.Context, sessionID, hotel string, quantity int) (*CommandResult, error) {
	return s.command(sessionID, func(g *engine.GameEngine) error {
		id, err := engine.ParseHotel(hotel)
		if err != nil {
			return fmt.Errorf("%w: %v", engine.ErrInvalidPurchase, err)
		}
		return g.SetPurchase(id, quantity)
	})
}

// ConfirmPurchase executes the pending purchase and ends the turn
func (s *gameServiceImpl) ConfirmPurchase(ctx context.Context, sessionID string) (*CommandResult, error) {
	return s.command(sessionID, func(g *engine.GameEngine) error {
		return g.ConfirmPurchase()
	})
}

// AcknowledgeNoPlayableTiles skips an unplayable placement
func (s *gameServiceImpl) AcknowledgeNoPlayableTiles(ctx context.Context, sessionID string) (*CommandResult, error) {
	return s.command(sessionID, func(g *engine.GameEngine) error {
		return g.AcknowledgeNoPlayableTiles()
	})
}

// EndGame resolves the end-game offer
func (s *gameServiceImpl) EndGame(ctx context.Context, sessionID string, accept bool) (*CommandResult, error) {
	return s.command(sessionID, func(g *engine.GameEngine) error {
		return g.EndGame(accept)
	})
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.Snapshot(), nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}
