// Package service defines the business logic layer for the sliding puzzle.
//
// The service package sits between the transports (REST, WebSocket, MCP,
// console) and the engine. It owns session lifecycle, executes moves on
// behalf of a session, and translates engine state changes into events and
// per-step traces that the transports can hand to clients verbatim.
//
// The three core interfaces are:
//
//	GameService    - all puzzle operations keyed by session ID
//	SessionManager - session storage and persistence
//	ConfigManager  - puzzle configuration loading
//
// Concrete implementations live in this package (GameService), in
// game/session (SessionManager), and in game/config (ConfigManager).
package service
