package engine

// Status represents the coarse lifecycle state of a puzzle session
type Status string

const (
	StatusPlaying Status = "playing"
	StatusPaused  Status = "paused"
	StatusWon     Status = "won"

	// Blank is the tile value that marks the empty cell
	Blank = 0

	// Validation constants
	MinPuzzleSize        = 2
	MaxPuzzleSize        = 10
	DefaultShuffleFactor = 10
	MaxBulkMoves         = 50
	WebSocketBufferSize  = 256
)

// Position represents row,col coordinates (0-based)
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PuzzleConfig represents the puzzle configuration from JSON
type PuzzleConfig struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Size          int               `json:"size"`
	ShuffleFactor int               `json:"shuffle_factor"`
	Labels        map[string]string `json:"labels,omitempty"` // size -> display label, presentation only
	Messages      struct {
		Welcome      string `json:"welcome"`
		MoveRejected string `json:"move_rejected"`
		Victory      string `json:"victory"`
		Paused       string `json:"paused"`
		Resumed      string `json:"resumed"`
		MoveStatus   string `json:"move_status"`
	} `json:"messages"`
}

// GameState represents the complete puzzle state
type GameState struct {
	Grid       [][]int  `json:"grid"`
	Size       int      `json:"size"`
	BlankPos   Position `json:"blank_pos"`
	Moves      int      `json:"moves"`
	Solvable   bool     `json:"solvable"`
	Status     Status   `json:"status"`
	Message    string   `json:"message"`
	ConfigName string   `json:"config_name"`

	// MoveHistory is cumulative and survives restarts; Moves counts only the
	// current puzzle and resets whenever a new grid is generated.
	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`
}

// MoveHistoryEntry represents a single move in the game history
type MoveHistoryEntry struct {
	Target     Position `json:"target"`
	Tile       int      `json:"tile"`
	BlankFrom  Position `json:"blank_from"`
	BlankTo    Position `json:"blank_to"`
	Timestamp  int64    `json:"timestamp"`
	Success    bool     `json:"success"`
	MoveNumber int      `json:"move_number"`
}
