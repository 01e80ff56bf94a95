// Package websocket provides real-time puzzle state broadcasting.
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a pair of
// goroutines that manage reading, writing, and cleanup.
//
// Session Integration:
//
// Connections are session-aware. Clients specify their session ID via query
// parameter (?session=ab12) when establishing the connection, and state
// updates are broadcast only to clients watching that session. Every
// successful move, restart, resize, pause and resume produces a broadcast,
// so a browser view and a desktop view of the same board stay in sync.
//
// Message Protocol:
//
// Outgoing messages are JSON with the full GameState:
//
//	{"session_id": "ab12", "event": "state_update", "game_state": {...}}
//
// Clients are viewers only; incoming frames are read and discarded to keep
// the connection alive.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// from an HTTP handler:
//	hub.ServeWS(w, r, sessionID)
package websocket
