package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/slidepuzzle/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
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

// CreateSession creates a new puzzle session. A positive size overrides the
// configuration's size, covering the plain "new puzzle of size N" entry point.
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string, size int) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.PuzzleConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	if size > 0 && size != config.Size {
		if size < engine.MinPuzzleSize || size > engine.MaxPuzzleSize {
			return nil, fmt.Errorf("size must be between %d and %d, got %d", engine.MinPuzzleSize, engine.MaxPuzzleSize, size)
		}
		resized := *config
		resized.Size = size
		config = &resized
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
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
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.GetState(),
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

// Move executes a single tile move for a session
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, row, col int, restart bool) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	events := []GameEvent{}

	if restart {
		sess.Engine.Restart()
		events = append(events, GameEvent{
			Type:      "restart",
			Message:   "New puzzle generated",
			Timestamp: time.Now(),
		})
	}

	blankFrom := sess.Engine.GetBlankPosition()
	success := sess.Engine.Move(row, col)
	state := sess.Engine.GetState()

	result := &MoveResult{
		Success:   success,
		GameState: state,
		Message:   state.Message,
		Events:    events,
	}

	target := engine.Position{Row: row, Col: col}
	if success {
		result.Events = append(result.Events, s.extractMoveEvents(sess, target)...)

		last := sess.Engine.GetLastMove()
		result.Step = &StepInfo{
			Idx:        1,
			Target:     target,
			Tile:       last.Tile,
			BlankFrom:  blankFrom,
			BlankTo:    state.BlankPos,
			MovesAfter: state.Moves,
			Success:    true,
			Won:        state.Status == engine.StatusWon,
		}
	} else {
		result.Attempted = describeAttempt(state, row, col)
		result.Events = append(result.Events, GameEvent{
			Type:      "rejected",
			Message:   fmt.Sprintf("Move to (%d,%d) rejected", row, col),
			Timestamp: time.Now(),
			Position:  target,
		})
	}

	// Auto-save session after move
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after move: %v\n", sessionID, err)
	}

	return result, nil
}

// BulkMove executes multiple tile moves in sequence
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, targets []engine.Position, restart bool) (*BulkMoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.GetState()
	startBlank := state.BlankPos
	startMoves := state.Moves

	result := &BulkMoveResult{
		RequestedMoves: len(targets),
		Events:         make([]GameEvent, 0),
		Success:        true,
		StartBlank:     startBlank,
		Message:        state.Message,
	}

	if restart {
		sess.Engine.Restart()
		startMoves = 0
		result.Events = append(result.Events, GameEvent{
			Type:      "restart",
			Message:   "New puzzle generated",
			Timestamp: time.Now(),
		})
	}

	// Limit moves to prevent abuse
	if len(targets) > engine.MaxBulkMoves {
		result.Truncated = true
		result.Limit = engine.MaxBulkMoves
		targets = targets[:engine.MaxBulkMoves]
	}

	for i, target := range targets {
		if sess.Engine.IsWon() {
			result.StoppedReason = "puzzle already solved"
			result.StopReasonCode = "won"
			result.StoppedOnMove = result.MovesExecuted + 1
			break
		}

		blankFrom := sess.Engine.GetBlankPosition()
		success := sess.Engine.Move(target.Row, target.Col)

		if !success {
			result.Success = false
			result.StoppedReason = fmt.Sprintf("move %d rejected: (%d,%d)", i+1, target.Row, target.Col)
			result.StopReasonCode = "rejected"
			result.StoppedOnMove = i + 1
			result.Attempted = describeAttempt(sess.Engine.GetState(), target.Row, target.Col)
			break
		}

		result.MovesExecuted++
		result.Events = append(result.Events, s.extractMoveEvents(sess, target)...)

		currState := sess.Engine.GetState()
		last := sess.Engine.GetLastMove()
		result.Steps = append(result.Steps, StepInfo{
			Idx:        i + 1,
			Target:     target,
			Tile:       last.Tile,
			BlankFrom:  blankFrom,
			BlankTo:    currState.BlankPos,
			MovesAfter: currState.Moves,
			Success:    true,
			Won:        currState.Status == engine.StatusWon,
		})
	}

	endState := sess.Engine.GetState()
	result.GameState = endState
	result.EndBlank = endState.BlankPos
	result.MovesDelta = endState.Moves - startMoves
	result.Won = endState.Status == engine.StatusWon
	result.Message = endState.Message
	result.MovableTiles = sess.Engine.GetMovableTiles()

	if result.Won && result.StopReasonCode == "" {
		result.StopReasonCode = "won"
	}

	// Auto-save session after bulk moves
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after bulk moves: %v\n", sessionID, err)
	}

	return result, nil
}

// Restart regenerates a session's puzzle at the current size
func (s *gameServiceImpl) Restart(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.Restart()

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after restart: %v\n", sessionID, err)
	}

	return state, nil
}

// Resize regenerates a session's puzzle at a new size
func (s *gameServiceImpl) Resize(ctx context.Context, sessionID string, size int) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	state, err := sess.Engine.Resize(size)
	if err != nil {
		return nil, err
	}
	sess.Config = sess.Engine.GetConfig()

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after resize: %v\n", sessionID, err)
	}

	return state, nil
}

// Pause suspends play for a session
func (s *gameServiceImpl) Pause(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	if !sess.Engine.Pause() {
		return nil, fmt.Errorf("session %s is not playing", sessionID)
	}

	return sess.Engine.GetState(), nil
}

// Resume returns a paused session to play
func (s *gameServiceImpl) Resume(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	if !sess.Engine.Resume() {
		return nil, fmt.Errorf("session %s is not paused", sessionID)
	}

	return sess.Engine.GetState(), nil
}

// GetGameState retrieves the current puzzle state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var moves []engine.MoveHistoryEntry
	if opts.Order == "desc" {
		// Reverse order (most recent first)
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else {
		if start < total {
			moves = history[start:end]
		}
	}

	if moves == nil {
		moves = []engine.MoveHistoryEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available puzzle configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific puzzle configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a puzzle configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.PuzzleConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// extractMoveEvents generates events from a successful move
func (s *gameServiceImpl) extractMoveEvents(sess *Session, target engine.Position) []GameEvent {
	state := sess.Engine.GetState()

	events := []GameEvent{
		{
			Type:      "move",
			Message:   fmt.Sprintf("Slid tile at (%d,%d) into the blank", target.Row, target.Col),
			Timestamp: time.Now(),
			Position:  target,
		},
	}

	if state.Status == engine.StatusWon {
		events = append(events, GameEvent{
			Type:      "won",
			Message:   fmt.Sprintf("Puzzle solved in %d moves!", state.Moves),
			Timestamp: time.Now(),
			Position:  state.BlankPos,
		})
	}

	return events
}

// describeAttempt explains why a target cell was rejected
func describeAttempt(state *engine.GameState, row, col int) *AttemptInfo {
	attempt := &AttemptInfo{Row: row, Col: col}

	attempt.InBounds = row >= 0 && row < state.Size && col >= 0 && col < state.Size
	if !attempt.InBounds {
		return attempt
	}

	attempt.Tile = state.Grid[row][col]
	attempt.IsBlank = attempt.Tile == engine.Blank
	attempt.Adjacent = engine.IsAdjacent(engine.Position{Row: row, Col: col}, state.BlankPos)
	return attempt
}
