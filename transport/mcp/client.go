package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/slidepuzzle/game/engine"
	"github.com/wricardo/mcp-training/slidepuzzle/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Sliding Puzzle",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Sliding Puzzle - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Arrange the numbered tiles in row-major order (1, 2, 3, ... left to right,
top to bottom) with the blank cell in the bottom-right corner. Only tiles
orthogonally adjacent to the blank can slide into it.

AVAILABLE TOOLS:
- puzzle_state: Get the current board, move count and status
- move_tile: Slide one tile (row, col) - requires intent explanation
- bulk_move: Slide several tiles in sequence - requires intent explanation
- restart_game: Generate a fresh shuffled board at the current size
- resize_puzzle: Generate a fresh board at a new size
- pause_game / resume_game: Suspend and continue play
- move_history: View past moves
- create_session: Create new puzzle session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available configurations
- game_instructions: Get comprehensive game instructions and rules
- describe_tile: Detailed info about one cell (value, adjacency, movability)

NOTE: The 'intent' parameter on move tools serves as rubber duck debugging - explain your reasoning!`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new puzzle session with optional config selection and size override",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the config to use (optional)",
				},
				"size": map[string]interface{}{
					"type":        "integer",
					"description": "Puzzle side length, overrides the config's size (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active puzzle sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "puzzle_state",
		Description: "Get the current puzzle state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePuzzleState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_tile",
		Description: "Slide the tile at (row, col) into the blank cell. The tile must be orthogonally adjacent to the blank.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the tile to slide (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the tile to slide (0-based)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
				"restart": map[string]interface{}{
					"type":        "boolean",
					"description": "Generate a fresh puzzle before moving",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleMoveTile)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: "Slide several tiles in sequence. Stops at the first rejected move or when the puzzle is solved.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"targets": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"row": map[string]interface{}{"type": "integer"},
							"col": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"row", "col"},
					},
					"description": "Array of target cells, each slid in order",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of moves (serves as a rubber duck to help explain your reasoning)",
				},
				"restart": map[string]interface{}{
					"type":        "boolean",
					"description": "Generate a fresh puzzle before moving",
				},
			},
			Required: []string{"session_id", "targets"},
		},
	}, c.handleBulkMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "restart_game",
		Description: "Generate a fresh shuffled puzzle at the current size",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleRestart)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "resize_puzzle",
		Description: "Generate a fresh shuffled puzzle at a new size (2-10)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"size": map[string]interface{}{
					"type":        "integer",
					"description": "New side length",
				},
			},
			Required: []string{"session_id", "size"},
		},
	}, c.handleResize)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "pause_game",
		Description: "Suspend play; moves are rejected until resumed",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePause)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "resume_game",
		Description: "Return a paused session to play",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleResume)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available puzzle configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_tile",
		Description: "Get detailed information about one cell: its tile value, whether it is the blank, and whether it can slide right now.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the cell to describe (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the cell to describe (0-based)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleDescribeTile)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]interface{}{}
	if configID != "" {
		body["config_id"] = configID
	}
	if size, ok := args["size"].(float64); ok && size > 0 {
		body["size"] = int(size)
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		size := 0
		moves := 0
		status := ""
		if s.GameState != nil {
			size = s.GameState.Size
			moves = s.GameState.Moves
			status = string(s.GameState.Status)
		}
		result += fmt.Sprintf("- %s (Config: %s, %dx%d, moves: %d, status: %s, Created: %s)\n",
			s.ID, s.ConfigName, size, size, moves, status, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePuzzleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveTile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row, _ := args["row"].(float64)
	col, _ := args["col"].(float64)
	intent, _ := args["intent"].(string)
	restart, _ := args["restart"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"row":     int(row),
		"col":     int(col),
		"restart": restart,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	targetsRaw, _ := args["targets"].([]interface{})
	intent, _ := args["intent"].(string)
	restart, _ := args["restart"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	targets := make([]map[string]int, 0, len(targetsRaw))
	for _, raw := range targetsRaw {
		cell, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		row, _ := cell["row"].(float64)
		col, _ := cell["col"].(float64)
		targets = append(targets, map[string]int{"row": int(row), "col": int(col)})
	}

	body := map[string]interface{}{
		"targets": targets,
		"restart": restart,
	}

	var result service.BulkMoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/bulk-move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatBulkMoveResult(sessionID, &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleRestart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/restart", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleResize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	size, _ := args["size"].(float64)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	body := map[string]int{"size": int(size)}
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/resize", sessionID), body, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePause(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/pause", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleResume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/resume", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (id: %s)\n  %s\n  Board: %dx%d (%s)\n\n",
			config.Name, config.ConfigID, config.Description,
			config.Size, config.Size, config.SizeLabel)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Sliding Puzzle - Complete Instructions

GAME OBJECTIVE:
Arrange the numbered tiles in row-major order with the blank in the
bottom-right corner. A 3x3 board is solved when it reads:

	+---+---+---+
	|  1|  2|  3|
	+---+---+---+
	|  4|  5|  6|
	+---+---+---+
	|  7|  8|   |
	+---+---+---+

GAME MECHANICS:
• One blank cell; only tiles orthogonally adjacent to it can slide
• Sliding a tile swaps it with the blank and counts one move
• Diagonal moves do not exist
• Every generated board is solvable: the server checks inversion parity
  and repairs unsolvable shuffles before you see them
• Victory: the board reaches row-major order; the session locks and
  further moves are rejected until you restart or resize

COORDINATES:
All tools use 0-based (row, col). Row 0 is the top row, col 0 is the
leftmost column. To slide a tile, target the CELL THE TILE IS IN, not
the blank.

STRATEGY FOR AGENTS:
1. Read the board with puzzle_state and locate the blank
2. Solve row by row, top to bottom, then the last two rows column by
   column from the left
3. Only the up-to-4 neighbors of the blank can move; use describe_tile
   when unsure whether a target is adjacent
4. Use bulk_move for planned sequences - it stops at the first rejected
   move and reports exactly which step failed and why
5. Rejected moves still count in the history (not in the move counter),
   so the history shows your full attempt trail

SESSION MANAGEMENT:
- Multiple puzzle sessions can run simultaneously
- Each session has a unique 4-character ID
- Sessions maintain independent boards, sizes and move counters
- restart_game keeps the size; resize_puzzle changes it (2-10)
- pause_game freezes the board; resume_game continues

Good luck!`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeTile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := int(args["row"].(float64))
	col := int(args["col"].(float64))

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if row < 0 || row >= state.Size || col < 0 || col >= state.Size {
		return mcp.NewToolResultError(fmt.Sprintf("Cell (%d, %d) is out of bounds. Board is %dx%d (0-%d for both row and col)",
			row, col, state.Size, state.Size, state.Size-1)), nil
	}

	tile := state.Grid[row][col]
	pos := engine.Position{Row: row, Col: col}
	adjacent := engine.IsAdjacent(pos, state.BlankPos)

	var label, description, reminder string
	if tile == engine.Blank {
		label = "(blank)"
		description = "The blank cell - tiles next to it slide into this spot"
		reminder = "You cannot target the blank itself; target an adjacent tile instead."
	} else {
		label = fmt.Sprintf("%d", tile)
		// Where this tile belongs in the solved board
		goalRow := (tile - 1) / state.Size
		goalCol := (tile - 1) % state.Size
		if goalRow == row && goalCol == col {
			description = fmt.Sprintf("Tile %d - already in its solved position", tile)
		} else {
			description = fmt.Sprintf("Tile %d - belongs at (%d, %d) in the solved board", tile, goalRow, goalCol)
		}
		if adjacent && state.Status == engine.StatusPlaying {
			reminder = "This tile is next to the blank and CAN slide right now."
		} else if adjacent {
			reminder = fmt.Sprintf("This tile is next to the blank but the session is %s.", state.Status)
		} else {
			reminder = "This tile is NOT next to the blank and cannot slide yet."
		}
	}

	result := fmt.Sprintf(`Cell at (%d, %d):
Value: %s
Adjacent to blank: %v
Blank is at: (%d, %d)
Description: %s

%s`,
		row, col, label, adjacent,
		state.BlankPos.Row, state.BlankPos.Col,
		description, reminder)

	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Board: %dx%d | Blank: (%d,%d) | Moves: %d | Total: %d | Status: %s\n\n",
		state.Size, state.Size,
		state.BlankPos.Row, state.BlankPos.Col,
		state.Moves, state.TotalMoves, state.Status))

	result.WriteString(engine.RenderGrid(state.Grid))

	// Movable tiles as a decision aid
	if state.Status == engine.StatusPlaying {
		movable := movableTiles(state)
		if len(movable) > 0 {
			result.WriteString("\nMovable tiles: ")
			parts := make([]string, 0, len(movable))
			for _, p := range movable {
				parts = append(parts, fmt.Sprintf("%d@(%d,%d)", state.Grid[p.Row][p.Col], p.Row, p.Col))
			}
			result.WriteString(strings.Join(parts, ", "))
			result.WriteString("\n")
		}
	}

	if state.Status == engine.StatusWon {
		result.WriteString("\nSOLVED!")
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

// movableTiles lists the cells adjacent to the blank
func movableTiles(state *engine.GameState) []engine.Position {
	var result []engine.Position
	candidates := []engine.Position{
		{Row: state.BlankPos.Row - 1, Col: state.BlankPos.Col},
		{Row: state.BlankPos.Row + 1, Col: state.BlankPos.Col},
		{Row: state.BlankPos.Row, Col: state.BlankPos.Col - 1},
		{Row: state.BlankPos.Row, Col: state.BlankPos.Col + 1},
	}
	for _, p := range candidates {
		if p.Row >= 0 && p.Row < state.Size && p.Col >= 0 && p.Col < state.Size {
			result = append(result, p)
		}
	}
	return result
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = "✓ Move successful\n"
	} else {
		response = "✗ Move rejected\n"
	}

	if result.Step != nil {
		s := result.Step
		status := "✗"
		if s.Success {
			status = "✓"
		}
		response += fmt.Sprintf("Step: tile %d (%d,%d)→(%d,%d) moves=%d %s\n",
			s.Tile, s.Target.Row, s.Target.Col, s.BlankFrom.Row, s.BlankFrom.Col, s.MovesAfter, status)
	}

	if result.Attempted != nil {
		a := result.Attempted
		reason := "not adjacent to the blank"
		if !a.InBounds {
			reason = "out of bounds"
		} else if a.IsBlank {
			reason = "target is the blank cell"
		}
		response += fmt.Sprintf("Rejected: target (%d,%d) - %s\n", a.Row, a.Col, reason)
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatBulkMoveResult(sessionID string, result *service.BulkMoveResult) string {
	var b strings.Builder

	size := 0
	configName := ""
	if result.GameState != nil {
		size = result.GameState.Size
		configName = result.GameState.ConfigName
	}
	b.WriteString(fmt.Sprintf("Session: %s • Config: %s • Board: %dx%d\n",
		sessionID, configName, size, size))

	b.WriteString(fmt.Sprintf("Executed %d/%d moves\n", result.MovesExecuted, result.RequestedMoves))
	if result.Truncated {
		b.WriteString(fmt.Sprintf("Truncated to the %d-move limit\n", result.Limit))
	}
	if result.StoppedReason != "" {
		b.WriteString(fmt.Sprintf("Stopped: %s\n", result.StoppedReason))
	}

	if len(result.Steps) > 0 {
		b.WriteString("\nSteps (this call):\n")
		for _, s := range result.Steps {
			status := "✗"
			if s.Success {
				status = "✓"
			}
			b.WriteString(fmt.Sprintf("%d. tile %d (%d,%d)→(%d,%d) moves=%d %s\n",
				s.Idx, s.Tile, s.Target.Row, s.Target.Col, s.BlankFrom.Row, s.BlankFrom.Col, s.MovesAfter, status))
		}
	}

	if result.Attempted != nil {
		a := result.Attempted
		reason := "not adjacent to the blank"
		if !a.InBounds {
			reason = "out of bounds"
		} else if a.IsBlank {
			reason = "target is the blank cell"
		}
		b.WriteString(fmt.Sprintf("\nRejected: target (%d,%d) - %s\n", a.Row, a.Col, reason))
	}

	if len(result.MovableTiles) > 0 && result.GameState != nil {
		b.WriteString("\nMovable tiles: ")
		parts := make([]string, 0, len(result.MovableTiles))
		for _, p := range result.MovableTiles {
			parts = append(parts, fmt.Sprintf("%d@(%d,%d)", result.GameState.Grid[p.Row][p.Col], p.Row, p.Col))
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Move History (Page %d/%d) — Total (cumulative): %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for _, move := range history.Moves {
		status := "✓"
		if !move.Success {
			status = "✗"
		}
		result += fmt.Sprintf("%d. tile %d at (%d,%d) %s\n",
			move.MoveNumber, move.Tile, move.Target.Row, move.Target.Col, status)
	}

	return result
}
