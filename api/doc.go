// Package api provides the HTTP REST surface for the sliding puzzle server.
//
// Endpoints:
//
// Session Management:
//   - POST   /api/sessions - Create new session (optional config_id, size)
//   - GET    /api/sessions - List all sessions
//   - GET    /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET  /api/sessions/{id}/state - Current puzzle state
//   - POST /api/sessions/{id}/move - Slide one tile: {"row": 1, "col": 2}
//   - POST /api/sessions/{id}/bulk-move - Slide several: {"targets": [{"row":1,"col":2}, ...]}
//   - POST /api/sessions/{id}/restart - Regenerate at current size
//   - POST /api/sessions/{id}/resize - Regenerate at new size: {"size": 5}
//   - POST /api/sessions/{id}/pause - Suspend play
//   - POST /api/sessions/{id}/resume - Return to play
//   - GET  /api/sessions/{id}/history - Paginated move history (page, limit, order)
//
// Configuration:
//   - GET  /api/configs - List available configurations
//   - GET  /api/configs/{name} - Get one configuration
//   - POST /api/configs - Save a configuration
//
// All endpoints accept and return JSON; rows and columns are 0-based.
// Errors come back as {"error": "message"} with an appropriate status code.
//
// Move responses carry a step trace ({target, tile, blank_from, blank_to,
// moves_after, won}) on success, or an attempted diagnosis ({row, col,
// in_bounds, is_blank, adjacent}) when the target cell cannot slide. Bulk
// responses add per-step traces, a stop_reason_code (rejected|won|truncated)
// and the set of currently movable tiles.
//
// Every state change is also broadcast to WebSocket viewers connected via
// GET /ws?session={id}.
package api
