package service

import (
	"context"
	"time"

	"github.com/wricardo/mcp-training/slidepuzzle/game/engine"
)

// GameService defines all puzzle-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string, size int) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Move(ctx context.Context, sessionID string, row, col int, restart bool) (*MoveResult, error)
	BulkMove(ctx context.Context, sessionID string, targets []engine.Position, restart bool) (*BulkMoveResult, error)
	Restart(ctx context.Context, sessionID string) (*engine.GameState, error)
	Resize(ctx context.Context, sessionID string, size int) (*engine.GameState, error)
	Pause(ctx context.Context, sessionID string) (*engine.GameState, error)
	Resume(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.PuzzleConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.PuzzleConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.PuzzleConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.PuzzleConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles puzzle configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.PuzzleConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.PuzzleConfig
	SaveConfig(name string, config *engine.PuzzleConfig) error
}

// Session represents an active puzzle session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Config         *engine.PuzzleConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
