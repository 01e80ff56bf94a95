package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/wricardo/mcp-training/slidepuzzle/game/engine"
)

func testGameState() *engine.GameState {
	return &engine.GameState{
		Grid: [][]int{
			{1, 2, 3},
			{4, 0, 6},
			{7, 5, 8},
		},
		Size:     3,
		BlankPos: engine.Position{Row: 1, Col: 1},
		Moves:    7,
		Solvable: true,
		Status:   engine.StatusPlaying,
	}
}

func TestNewHub(t *testing.T) {
	hub := NewHub()

	if hub == nil {
		t.Fatal("NewHub() returned nil")
	}

	if hub.sessions == nil {
		t.Error("Hub sessions map is nil")
	}

	if hub.broadcast == nil {
		t.Error("Hub broadcast channel is nil")
	}

	if hub.register == nil {
		t.Error("Hub register channel is nil")
	}

	if hub.unregister == nil {
		t.Error("Hub unregister channel is nil")
	}
}

func TestHubRegisterClient(t *testing.T) {
	hub := NewHub()

	client := &Client{
		hub:       hub,
		sessionID: "test-session",
		send:      make(chan []byte, engine.WebSocketBufferSize),
	}

	hub.registerClient(client)

	if _, exists := hub.sessions["test-session"]; !exists {
		t.Error("Session was not created")
	}

	if !hub.sessions["test-session"][client] {
		t.Error("Client was not registered in session")
	}

	if len(hub.sessions["test-session"]) != 1 {
		t.Errorf("Expected 1 client in session, got %d", len(hub.sessions["test-session"]))
	}
}

func TestHubUnregisterClient(t *testing.T) {
	hub := NewHub()

	client := &Client{
		hub:       hub,
		sessionID: "test-session",
		send:      make(chan []byte, engine.WebSocketBufferSize),
	}

	hub.registerClient(client)
	hub.unregisterClient(client)

	if _, exists := hub.sessions["test-session"]; exists {
		t.Error("Session should have been cleaned up after last client unregistered")
	}
}

func TestHubMultipleClientsInSession(t *testing.T) {
	hub := NewHub()
	sessionID := "multi-client-session"

	client1 := &Client{
		hub:       hub,
		sessionID: sessionID,
		send:      make(chan []byte, engine.WebSocketBufferSize),
	}
	client2 := &Client{
		hub:       hub,
		sessionID: sessionID,
		send:      make(chan []byte, engine.WebSocketBufferSize),
	}

	hub.registerClient(client1)
	hub.registerClient(client2)

	if len(hub.sessions[sessionID]) != 2 {
		t.Errorf("Expected 2 clients in session, got %d", len(hub.sessions[sessionID]))
	}

	hub.unregisterClient(client1)

	if len(hub.sessions[sessionID]) != 1 {
		t.Errorf("Expected 1 client remaining in session, got %d", len(hub.sessions[sessionID]))
	}

	if !hub.sessions[sessionID][client2] {
		t.Error("client2 should still be registered")
	}
}

func TestHubBroadcastToSession(t *testing.T) {
	hub := NewHub()
	sessionID := "broadcast-test"

	client := &Client{
		hub:       hub,
		sessionID: sessionID,
		send:      make(chan []byte, engine.WebSocketBufferSize),
	}

	hub.registerClient(client)

	hub.BroadcastToSession(sessionID, testGameState())

	select {
	case data := <-client.send:
		var message Message
		err := json.Unmarshal(data, &message)
		if err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}

		if message.SessionID != sessionID {
			t.Errorf("Expected sessionID %s, got %s", sessionID, message.SessionID)
		}

		if message.Event != "state_update" {
			t.Errorf("Expected event 'state_update', got %s", message.Event)
		}

		if message.GameState.BlankPos.Row != 1 || message.GameState.BlankPos.Col != 1 {
			t.Error("GameState blank position not correctly transmitted")
		}

		if message.GameState.Moves != 7 {
			t.Errorf("Expected 7 moves, got %d", message.GameState.Moves)
		}

	case <-time.After(100 * time.Millisecond):
		t.Error("No message received within timeout")
	}
}

func TestHubBroadcastEvent(t *testing.T) {
	hub := NewHub()
	done := make(chan bool)

	go func() {
		select {
		case message := <-hub.broadcast:
			if message.SessionID != "event-test" {
				t.Errorf("Expected sessionID 'event-test', got %s", message.SessionID)
			}
			if message.Event != "custom-event" {
				t.Errorf("Expected event 'custom-event', got %s", message.Event)
			}
			if message.Data != "test-data" {
				t.Errorf("Expected data 'test-data', got %v", message.Data)
			}
			done <- true
		case <-time.After(100 * time.Millisecond):
			t.Error("No broadcast message received within timeout")
			done <- false
		}
	}()

	hub.BroadcastEvent("event-test", "custom-event", "test-data")

	<-done
}

func TestWebSocketUpgrade(t *testing.T) {
	hub := NewHub()

	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("session")
		if sessionID == "" {
			sessionID = "default"
		}
		hub.ServeWS(w, r, sessionID)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?session=ws-test"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	// Give some time for registration
	time.Sleep(50 * time.Millisecond)

	if len(hub.sessions["ws-test"]) != 1 {
		t.Errorf("Expected 1 client in session, got %d", len(hub.sessions["ws-test"]))
	}

	conn.Close()

	// Give some time for unregistration
	time.Sleep(10 * time.Millisecond)

	if _, exists := hub.sessions["ws-test"]; exists {
		t.Error("Session should have been cleaned up after WebSocket close")
	}
}

func TestWebSocketMessageReceive(t *testing.T) {
	hub := NewHub()

	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("session")
		if sessionID == "" {
			sessionID = "default"
		}
		hub.ServeWS(w, r, sessionID)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?session=msg-test"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	// Give time for connection to establish
	time.Sleep(10 * time.Millisecond)

	hub.BroadcastToSession("msg-test", testGameState())

	conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	_, messageData, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read WebSocket message: %v", err)
	}

	var message Message
	err = json.Unmarshal(messageData, &message)
	if err != nil {
		t.Fatalf("Failed to unmarshal message: %v", err)
	}

	if message.SessionID != "msg-test" {
		t.Errorf("Expected sessionID 'msg-test', got %s", message.SessionID)
	}

	if message.GameState.Size != 3 || len(message.GameState.Grid) != 3 {
		t.Error("GameState grid not correctly received")
	}

	if message.GameState.Grid[1][1] != engine.Blank {
		t.Error("Blank cell not correctly received")
	}
}
