package service

import (
	"time"

	"github.com/wricardo/mcp-training/slidepuzzle/game/engine"
)

// SessionInfo provides information about a puzzle session
type SessionInfo struct {
	ID             string               `json:"id"`
	ConfigName     string               `json:"config_name"`
	CreatedAt      time.Time            `json:"created_at"`
	LastAccessedAt time.Time            `json:"last_accessed_at"`
	GameState      *engine.GameState    `json:"game_state"`
	GameConfig     *engine.PuzzleConfig `json:"game_config"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success   bool              `json:"success"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
	Step      *StepInfo         `json:"step,omitempty"`
	Attempted *AttemptInfo      `json:"attempted,omitempty"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	// Summary
	MovesExecuted  int               `json:"moves_executed"`
	RequestedMoves int               `json:"requested_moves"`
	Success        bool              `json:"success"`
	GameState      *engine.GameState `json:"game_state"`
	Events         []GameEvent       `json:"events"`
	StoppedReason  string            `json:"stopped_reason,omitempty"`
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // rejected|won|truncated
	StoppedOnMove  int               `json:"stopped_on_move,omitempty"`  // 1-based index of the move that caused stop
	Truncated      bool              `json:"truncated,omitempty"`
	Limit          int               `json:"limit,omitempty"`

	// Start/end snapshot
	StartBlank engine.Position `json:"start_blank"`
	EndBlank   engine.Position `json:"end_blank"`
	MovesDelta int             `json:"moves_delta"`

	// Per-step compact trace (only for this call)
	Steps []StepInfo `json:"steps,omitempty"`

	// Failure diagnostics
	Attempted *AttemptInfo `json:"attempted,omitempty"`

	// Final status aids
	Won          bool              `json:"won"`
	Message      string            `json:"message,omitempty"`
	MovableTiles []engine.Position `json:"movable_tiles,omitempty"`
}

// StepInfo is a compact record for each executed move in the bulk call
type StepInfo struct {
	Idx        int             `json:"idx"`
	Target     engine.Position `json:"target"`
	Tile       int             `json:"tile"`
	BlankFrom  engine.Position `json:"blank_from"`
	BlankTo    engine.Position `json:"blank_to"`
	MovesAfter int             `json:"moves_after"`
	Success    bool            `json:"success"`
	Won        bool            `json:"won,omitempty"`
}

// AttemptInfo details the first rejected target cell
type AttemptInfo struct {
	Row      int  `json:"row"`
	Col      int  `json:"col"`
	Tile     int  `json:"tile"`
	InBounds bool `json:"in_bounds"`
	IsBlank  bool `json:"is_blank"`
	Adjacent bool `json:"adjacent"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string          `json:"type"` // "move", "rejected", "won", "restart", "resize", "pause", "resume"
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Position  engine.Position `json:"position,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a puzzle configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Size        int    `json:"size"`
	SizeLabel   string `json:"size_label"`
}
