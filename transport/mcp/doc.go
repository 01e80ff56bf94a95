// Package mcp provides a Model Context Protocol surface for the sliding puzzle.
//
// The package is a thin client: every tool call is proxied to the REST API
// server, so MCP agents and browser viewers always see the same state.
//
// MCP Tools:
//   - puzzle_state: Current board with rendered grid, move count and status
//   - move_tile: Slide one tile by (row, col)
//   - bulk_move: Slide several tiles in sequence with per-step traces
//   - restart_game: Fresh shuffled board at the current size
//   - resize_puzzle: Fresh shuffled board at a new size
//   - pause_game / resume_game: Suspend and continue play
//   - move_history: Paginated move history
//   - create_session / get_session / list_sessions: Session management
//   - list_configs: Available puzzle configurations
//   - game_instructions: Rules and solving strategy for agents
//   - describe_tile: Value, adjacency and movability of one cell
//
// Transport Modes:
//
// The server supports stdio for local MCP clients and streamable HTTP for
// remote integration; main.go wires both.
//
// The move tools take an 'intent' parameter that is not interpreted: it
// nudges agents into writing down their reasoning before each move.
package mcp
