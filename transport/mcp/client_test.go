package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/wricardo/mcp-training/slidepuzzle/game/engine"
	"github.com/wricardo/mcp-training/slidepuzzle/game/service"
)

func puzzleState() *engine.GameState {
	return &engine.GameState{
		Grid: [][]int{
			{1, 2, 3},
			{4, 0, 6},
			{7, 5, 8},
		},
		Size:     3,
		BlankPos: engine.Position{Row: 1, Col: 1},
		Moves:    4,
		Solvable: true,
		Status:   engine.StatusPlaying,
		Message:  "Moves: 4",
	}
}

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"id":     "ab12",
		"moves":  4,
		"status": "playing",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_JSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "session not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions/zzzz", nil, nil)
	if err == nil || err.Error() != "session not found" {
		t.Errorf("Expected the API's error message, got: %v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		if req["config_id"] != "classic" {
			t.Errorf("Expected config_id 'classic', got %v", req["config_id"])
		}
		if req["size"] != float64(4) {
			t.Errorf("Expected size 4, got %v", req["size"])
		}

		resp := service.SessionInfo{
			ID:         "ab12",
			ConfigName: "classic",
			GameState:  puzzleState(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "create_session",
			Arguments: map[string]interface{}{
				"config_id": "classic",
				"size":      float64(4),
			},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "ab12") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
}

func TestClient_moveTile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions/ab12/move" {
			t.Errorf("Expected POST /api/sessions/ab12/move, got %s %s", r.Method, r.URL.Path)
		}

		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		if req["row"] != float64(2) || req["col"] != float64(1) {
			t.Errorf("Expected target (2,1), got (%v,%v)", req["row"], req["col"])
		}

		result := service.MoveResult{
			Success:   true,
			GameState: puzzleState(),
			Step: &service.StepInfo{
				Idx:        1,
				Target:     engine.Position{Row: 2, Col: 1},
				Tile:       5,
				MovesAfter: 5,
				Success:    true,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "move_tile",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"row":        float64(2),
				"col":        float64(1),
				"intent":     "bring tile 5 home",
			},
		},
	}

	result, err := client.handleMoveTile(context.Background(), request)
	if err != nil {
		t.Fatalf("handleMoveTile failed: %v", err)
	}

	resultStr := result.Content[0].(mcp.TextContent)
	if !strings.Contains(resultStr.Text, "✓ Move successful") {
		t.Errorf("Expected success marker, got: %s", resultStr.Text)
	}
	if !strings.Contains(resultStr.Text, "tile 5") {
		t.Errorf("Expected step trace for tile 5, got: %s", resultStr.Text)
	}
}

func TestClient_describeTile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(puzzleState())
	}))
	defer server.Close()

	client := NewClient(server.URL)

	// Tile 5 at (2,1) is below the blank at (1,1)
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "describe_tile",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"row":        float64(2),
				"col":        float64(1),
			},
		},
	}

	result, err := client.handleDescribeTile(context.Background(), request)
	if err != nil {
		t.Fatalf("handleDescribeTile failed: %v", err)
	}

	text := result.Content[0].(mcp.TextContent).Text
	if !strings.Contains(text, "Value: 5") {
		t.Errorf("Expected tile value 5, got: %s", text)
	}
	if !strings.Contains(text, "CAN slide") {
		t.Errorf("Expected movability note, got: %s", text)
	}

	// Out of bounds is a tool error, not a panic
	request.Params.Arguments = map[string]interface{}{
		"session_id": "ab12",
		"row":        float64(9),
		"col":        float64(9),
	}
	result, err = client.handleDescribeTile(context.Background(), request)
	if err != nil {
		t.Fatalf("handleDescribeTile failed: %v", err)
	}
	if !result.IsError {
		t.Error("Expected tool error for out-of-bounds cell")
	}
}

func TestFormatGameState(t *testing.T) {
	result := formatGameState(puzzleState())

	expectedFields := []string{
		"Board: 3x3",
		"Blank: (1,1)",
		"Moves: 4",
		"Status: playing",
		"|  1|  2|  3|",
		"Movable tiles:",
		"Moves: 4",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatGameState_Won(t *testing.T) {
	state := &engine.GameState{
		Grid: [][]int{
			{1, 2},
			{3, 0},
		},
		Size:     2,
		BlankPos: engine.Position{Row: 1, Col: 1},
		Moves:    12,
		Solvable: true,
		Status:   engine.StatusWon,
		Message:  "Solved in 12 moves!",
	}

	result := formatGameState(state)

	if !strings.Contains(result, "SOLVED!") {
		t.Errorf("Expected 'SOLVED!' in result, got: %s", result)
	}
	if strings.Contains(result, "Movable tiles:") {
		t.Errorf("Won board should not list movable tiles, got: %s", result)
	}
}

func TestFormatMoveResult_Rejected(t *testing.T) {
	moveResult := &service.MoveResult{
		Success:   false,
		GameState: puzzleState(),
		Attempted: &service.AttemptInfo{
			Row:      0,
			Col:      0,
			Tile:     1,
			InBounds: true,
			Adjacent: false,
		},
	}

	result := formatMoveResult(moveResult)

	if !strings.Contains(result, "✗ Move rejected") {
		t.Errorf("Expected rejection marker, got: %s", result)
	}
	if !strings.Contains(result, "not adjacent to the blank") {
		t.Errorf("Expected rejection reason, got: %s", result)
	}
}

func TestFormatBulkMoveResult(t *testing.T) {
	bulk := &service.BulkMoveResult{
		MovesExecuted:  2,
		RequestedMoves: 3,
		Success:        false,
		GameState:      puzzleState(),
		StoppedReason:  "move 3 rejected: (0,0)",
		StopReasonCode: "rejected",
		StoppedOnMove:  3,
		Steps: []service.StepInfo{
			{Idx: 1, Tile: 5, Target: engine.Position{Row: 2, Col: 1}, MovesAfter: 5, Success: true},
			{Idx: 2, Tile: 5, Target: engine.Position{Row: 1, Col: 1}, MovesAfter: 6, Success: true},
		},
		Attempted: &service.AttemptInfo{Row: 0, Col: 0, Tile: 1, InBounds: true},
	}

	result := formatBulkMoveResult("ab12", bulk)

	expectedFields := []string{
		"Session: ab12",
		"Executed 2/3 moves",
		"Stopped: move 3 rejected",
		"Steps (this call):",
		"Rejected: target (0,0)",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected '%s' in bulk output, got: %s", field, result)
		}
	}
}

func TestFormatHistory(t *testing.T) {
	history := &service.HistoryResponse{
		Moves: []engine.MoveHistoryEntry{
			{MoveNumber: 2, Tile: 5, Target: engine.Position{Row: 2, Col: 1}, Success: true},
			{MoveNumber: 1, Tile: 8, Target: engine.Position{Row: 2, Col: 2}, Success: false},
		},
		TotalMoves: 2,
		Page:       1,
		PageSize:   20,
		TotalPages: 1,
	}

	result := formatHistory(history)

	if !strings.Contains(result, "2. tile 5 at (2,1) ✓") {
		t.Errorf("Expected successful entry, got: %s", result)
	}
	if !strings.Contains(result, "1. tile 8 at (2,2) ✗") {
		t.Errorf("Expected failed entry, got: %s", result)
	}
}

func TestClient_handleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "game_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleGameInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"Sliding Puzzle - Complete Instructions",
		"GAME OBJECTIVE:",
		"GAME MECHANICS:",
		"COORDINATES:",
		"STRATEGY FOR AGENTS:",
		"SESSION MANAGEMENT:",
		"Good luck!",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, resultStr.Text)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
