package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	headerHeight      = 60
	gridPixels        = 480
	screenWidth       = 520
	screenHeight      = 620
	baseURL           = "http://localhost:8080"
	animationDuration = 120 * time.Millisecond // Tile slide animation
)

// ScreenType represents different screens in the app
type ScreenType int

const (
	ScreenWelcome ScreenType = iota
	ScreenGame
)

// Position represents row,col coordinates (0-based)
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GameState represents the state from the puzzle server
type GameState struct {
	Grid       [][]int  `json:"grid"`
	Size       int      `json:"size"`
	BlankPos   Position `json:"blank_pos"`
	Moves      int      `json:"moves"`
	TotalMoves int      `json:"total_moves"`
	Solvable   bool     `json:"solvable"`
	Status     string   `json:"status"`
	Message    string   `json:"message"`
	ConfigName string   `json:"config_name"`
}

// WSMessage represents WebSocket message wrapper
type WSMessage struct {
	SessionID string     `json:"session_id"`
	GameState *GameState `json:"game_state,omitempty"`
	Event     string     `json:"event,omitempty"`
}

// SessionData holds the connection and state for the open session
type SessionData struct {
	sessionID  string
	state      *GameState
	wsConn     *websocket.Conn
	lastUpdate time.Time

	// Slide animation: the tile that just moved travels from the current
	// blank cell to its new cell.
	animTile  int
	animFrom  Position
	animTo    Position
	animStart time.Time
	animating bool
}

// SessionListItem represents a session from the server
type SessionListItem struct {
	ID         string     `json:"id"`
	ConfigName string     `json:"config_name"`
	GameState  *GameState `json:"game_state"`
}

// ConfigListItem represents a puzzle configuration
type ConfigListItem struct {
	ConfigID    string `json:"config_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Size        int    `json:"size"`
	SizeLabel   string `json:"size_label"`
}

// Game represents the desktop puzzle client
type Game struct {
	session       *SessionData
	stateMutex    sync.RWMutex
	currentScreen ScreenType
	welcomeScreen *WelcomeScreen
}

// WelcomeScreen manages the welcome screen state
type WelcomeScreen struct {
	availableSessions []SessionListItem
	availableConfigs  []ConfigListItem
	cursorPos         int
	loading           bool
	errorMsg          string
	newSessionConfig  string // selected config for new session
}

// NewGame creates a new game instance, opening the given session directly
// when one is provided.
func NewGame(sessionID string) *Game {
	g := &Game{
		currentScreen: ScreenWelcome,
		welcomeScreen: &WelcomeScreen{
			availableSessions: make([]SessionListItem, 0),
			availableConfigs:  make([]ConfigListItem, 0),
		},
	}

	if sessionID != "" {
		g.openSession(sessionID)
		g.currentScreen = ScreenGame
	} else {
		g.loadWelcomeData()
	}

	return g
}

// openSession connects to an existing session, or creates a fresh one when
// the ID is empty.
func (g *Game) openSession(sessionID string) {
	session := &SessionData{
		sessionID:  sessionID,
		lastUpdate: time.Now(),
	}

	if sessionID == "" {
		if err := g.createSession(session, g.welcomeScreen.newSessionConfig); err != nil {
			log.Printf("Failed to create session: %v", err)
			g.welcomeScreen.errorMsg = fmt.Sprintf("Failed to create session: %v", err)
			return
		}
	}

	g.session = session

	if err := g.connectWebSocket(session); err != nil {
		log.Printf("Failed to connect WebSocket for %s: %v (falling back to polling)", session.sessionID, err)
	} else {
		go g.listenWebSocket(session)
	}

	g.fetchGameState(session)
}

// createSession creates a new puzzle session on the server
func (g *Game) createSession(session *SessionData, configID string) error {
	url := fmt.Sprintf("%s/api/sessions", baseURL)

	payload := "{}"
	if configID != "" {
		payload = fmt.Sprintf(`{"config_id":"%s"}`, configID)
	}

	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse session response: %v (body: %s)", err, string(body))
	}

	session.sessionID = result.ID
	log.Printf("Created new session: %s (config: %s)", session.sessionID, configID)
	return nil
}

// connectWebSocket establishes WebSocket connection
func (g *Game) connectWebSocket(session *SessionData) error {
	if session.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	wsURL := url.URL{Scheme: "ws", Host: "localhost:8080", Path: "/ws"}
	q := wsURL.Query()
	q.Set("session", session.sessionID)
	wsURL.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL.String(), nil)
	if err != nil {
		return err
	}

	session.wsConn = conn
	log.Printf("WebSocket connected for session %s", session.sessionID)
	return nil
}

// listenWebSocket listens for WebSocket updates
func (g *Game) listenWebSocket(session *SessionData) {
	defer func() {
		if session.wsConn != nil {
			session.wsConn.Close()
		}
	}()

	for {
		_, message, err := session.wsConn.ReadMessage()
		if err != nil {
			log.Printf("WebSocket read error for %s: %v", session.sessionID, err)
			return
		}

		var wsMsg WSMessage
		if err := json.Unmarshal(message, &wsMsg); err != nil {
			log.Printf("WebSocket JSON parse error: %v", err)
			continue
		}

		if wsMsg.GameState == nil {
			continue
		}

		g.applyState(session, wsMsg.GameState)
	}
}

// fetchGameState gets the current game state from the server
func (g *Game) fetchGameState(session *SessionData) error {
	if session.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	url := fmt.Sprintf("%s/api/sessions/%s/state", baseURL, session.sessionID)
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var state GameState
	if err := json.Unmarshal(body, &state); err != nil {
		return fmt.Errorf("failed to parse JSON: %v (body: %s)", err, string(body))
	}

	g.applyState(session, &state)
	return nil
}

// applyState installs a fresh state and starts the slide animation when
// exactly one tile moved. A restart or resize replaces the board wholesale
// and skips the animation.
func (g *Game) applyState(session *SessionData, state *GameState) {
	g.stateMutex.Lock()
	defer g.stateMutex.Unlock()

	if session.state != nil && session.state.Size == state.Size {
		oldBlank := session.state.BlankPos
		newBlank := state.BlankPos

		if oldBlank != newBlank && state.Moves == session.state.Moves+1 {
			// The sliding tile now occupies the old blank cell.
			session.animTile = state.Grid[oldBlank.Row][oldBlank.Col]
			session.animFrom = newBlank
			session.animTo = oldBlank
			session.animStart = time.Now()
			session.animating = true
		} else if oldBlank != newBlank {
			session.animating = false
		}
	} else {
		session.animating = false
	}

	session.state = state
	session.lastUpdate = time.Now()
}

// loadWelcomeData fetches available sessions and configs from server
func (g *Game) loadWelcomeData() {
	g.welcomeScreen.loading = true
	g.welcomeScreen.errorMsg = ""

	resp, err := http.Get(fmt.Sprintf("%s/api/sessions", baseURL))
	if err != nil {
		g.welcomeScreen.errorMsg = fmt.Sprintf("Error loading sessions: %v", err)
		g.welcomeScreen.loading = false
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var sessionsResp struct {
		Sessions []SessionListItem `json:"sessions"`
	}
	if err := json.Unmarshal(body, &sessionsResp); err == nil {
		g.welcomeScreen.availableSessions = sessionsResp.Sessions
	}

	resp, err = http.Get(fmt.Sprintf("%s/api/configs", baseURL))
	if err != nil {
		g.welcomeScreen.errorMsg = fmt.Sprintf("Error loading configs: %v", err)
		g.welcomeScreen.loading = false
		return
	}
	defer resp.Body.Close()

	body, _ = io.ReadAll(resp.Body)
	var configsResp struct {
		Configs []ConfigListItem `json:"configs"`
	}
	if err := json.Unmarshal(body, &configsResp); err == nil {
		g.welcomeScreen.availableConfigs = configsResp.Configs
	}

	g.welcomeScreen.loading = false
}

// sendMove posts a single tile move for the open session
func (g *Game) sendMove(row, col int) error {
	session := g.session
	if session == nil || session.sessionID == "" {
		return fmt.Errorf("no session open")
	}

	url := fmt.Sprintf("%s/api/sessions/%s/move", baseURL, session.sessionID)
	payload := fmt.Sprintf(`{"row":%d,"col":%d}`, row, col)

	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// WebSocket viewers get the broadcast; polling clients refetch.
	if session.wsConn == nil {
		return g.fetchGameState(session)
	}
	return nil
}

// sendSimple posts to a bodyless session endpoint (restart, pause, resume)
func (g *Game) sendSimple(endpoint string) error {
	session := g.session
	if session == nil || session.sessionID == "" {
		return fmt.Errorf("no session open")
	}

	url := fmt.Sprintf("%s/api/sessions/%s/%s", baseURL, session.sessionID, endpoint)
	resp, err := http.Post(url, "application/json", strings.NewReader("{}"))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if session.wsConn == nil {
		return g.fetchGameState(session)
	}
	return nil
}

// Update updates game logic
func (g *Game) Update() error {
	switch g.currentScreen {
	case ScreenWelcome:
		return g.updateWelcomeScreen()
	case ScreenGame:
		return g.updateGameScreen()
	}
	return nil
}

// updateWelcomeScreen handles welcome screen input
func (g *Game) updateWelcomeScreen() error {
	ws := g.welcomeScreen

	// Refresh data with F5
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.loadWelcomeData()
	}

	// Navigate with arrow keys
	totalItems := len(ws.availableSessions)
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ws.cursorPos++
		if ws.cursorPos >= totalItems {
			ws.cursorPos = totalItems - 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ws.cursorPos--
		if ws.cursorPos < 0 {
			ws.cursorPos = 0
		}
	}

	// Cycle through configs with Tab
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if len(ws.availableConfigs) > 0 {
			currentIdx := -1
			for i, cfg := range ws.availableConfigs {
				if cfg.ConfigID == ws.newSessionConfig {
					currentIdx = i
					break
				}
			}
			currentIdx++
			if currentIdx >= len(ws.availableConfigs) {
				ws.newSessionConfig = "" // No config (default)
			} else {
				ws.newSessionConfig = ws.availableConfigs[currentIdx].ConfigID
			}
		}
	}

	// Create new session with N
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.openSession("")
		if g.session != nil && g.session.sessionID != "" {
			g.currentScreen = ScreenGame
		}
	}

	// Open the highlighted session with Enter
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if ws.cursorPos < len(ws.availableSessions) {
			g.openSession(ws.availableSessions[ws.cursorPos].ID)
			g.currentScreen = ScreenGame
		} else {
			ws.errorMsg = "No session selected; press N to create one"
		}
	}

	// Back to game screen with Escape (if a session is open)
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.session != nil {
		g.currentScreen = ScreenGame
	}

	return nil
}

// updateGameScreen handles game screen input
func (g *Game) updateGameScreen() error {
	session := g.session
	if session == nil {
		return nil
	}

	// Finish the slide animation
	g.stateMutex.Lock()
	if session.animating && time.Since(session.animStart) > animationDuration {
		session.animating = false
	}
	g.stateMutex.Unlock()

	// Poll if WebSocket is not connected
	if session.wsConn == nil {
		if session.state == nil || time.Since(session.lastUpdate) > 500*time.Millisecond {
			if err := g.fetchGameState(session); err != nil {
				log.Printf("Error fetching state for %s: %v", session.sessionID, err)
			}
		}
	}

	g.stateMutex.RLock()
	state := session.state
	g.stateMutex.RUnlock()
	if state == nil {
		return nil
	}

	// Click a tile to slide it
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		cell := gridPixels / state.Size
		col := x / cell
		row := (y - headerHeight) / cell
		if y >= headerHeight && row >= 0 && row < state.Size && col >= 0 && col < state.Size {
			g.sendMove(row, col)
		}
	}

	// Arrow keys slide the neighboring tile into the blank: Up slides the
	// tile below the blank upward, and so on.
	blank := state.BlankPos
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.sendMove(blank.Row+1, blank.Col)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sendMove(blank.Row-1, blank.Col)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.sendMove(blank.Row, blank.Col+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.sendMove(blank.Row, blank.Col-1)
	}

	// Restart with R
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sendSimple("restart")
	}

	// Pause/resume toggle with P
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if state.Status == "paused" {
			g.sendSimple("resume")
		} else {
			g.sendSimple("pause")
		}
	}

	// Return to welcome screen with Escape
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.currentScreen = ScreenWelcome
		g.loadWelcomeData()
	}

	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.currentScreen {
	case ScreenWelcome:
		g.drawWelcomeScreen(screen)
	case ScreenGame:
		g.drawGameScreen(screen)
	}
}

// drawWelcomeScreen renders the welcome/session selection screen
func (g *Game) drawWelcomeScreen(screen *ebiten.Image) {
	ws := g.welcomeScreen

	screen.Fill(color.RGBA{20, 20, 30, 255})

	y := 20
	ebitenutil.DebugPrintAt(screen, "=== SLIDING PUZZLE - SESSION SELECT ===", 130, y)
	y += 30

	if ws.loading {
		ebitenutil.DebugPrintAt(screen, "Loading sessions...", 20, y)
		return
	}

	if ws.errorMsg != "" {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ERROR: %s", ws.errorMsg), 20, y)
		y += 20
	}

	ebitenutil.DebugPrintAt(screen, "Available Sessions:", 20, y)
	y += 20

	if len(ws.availableSessions) == 0 {
		ebitenutil.DebugPrintAt(screen, "  No sessions found. Press N to create one.", 20, y)
		y += 20
	} else {
		for i, session := range ws.availableSessions {
			cursor := "  "
			if i == ws.cursorPos {
				cursor = "> "
			}

			detail := ""
			if session.GameState != nil {
				detail = fmt.Sprintf(" | %dx%d | Moves:%d", session.GameState.Size, session.GameState.Size, session.GameState.Moves)
				if session.GameState.Status == "won" {
					detail += " SOLVED"
				} else if session.GameState.Status == "paused" {
					detail += " PAUSED"
				}
			}

			line := fmt.Sprintf("%s%s | %s%s", cursor, session.ID, session.ConfigName, detail)
			ebitenutil.DebugPrintAt(screen, line, 20, y)
			y += 15
		}
	}

	y += 20
	ebitenutil.DebugPrintAt(screen, "Create New Session:", 20, y)
	y += 20

	configDisplay := "default"
	if ws.newSessionConfig != "" {
		configDisplay = ws.newSessionConfig
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("  Selected Config: %s", configDisplay), 20, y)
	y += 15

	for _, cfg := range ws.availableConfigs {
		marker := "  "
		if cfg.ConfigID == ws.newSessionConfig {
			marker = "→ "
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("    %s%s (%s) - %s", marker, cfg.Name, cfg.SizeLabel, cfg.Description), 20, y)
		y += 15
	}

	y += 25
	ebitenutil.DebugPrintAt(screen, "CONTROLS:", 20, y)
	y += 20
	ebitenutil.DebugPrintAt(screen, "  ↑/↓      - Navigate sessions", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  ENTER    - Open highlighted session", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  TAB      - Cycle config for new session", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  N        - Create new session with selected config", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  F5       - Refresh session list", 20, y)
	y += 15
	if g.session != nil {
		ebitenutil.DebugPrintAt(screen, "  ESC      - Back to puzzle", 20, y)
	}
}

// drawGameScreen renders the puzzle board
func (g *Game) drawGameScreen(screen *ebiten.Image) {
	g.stateMutex.RLock()
	defer g.stateMutex.RUnlock()

	screen.Fill(color.RGBA{20, 20, 30, 255})

	session := g.session
	if session == nil {
		ebitenutil.DebugPrint(screen, "No session open. Press ESC for session select.")
		return
	}
	if session.state == nil {
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	}

	state := session.state
	cell := gridPixels / state.Size

	// Header
	header := fmt.Sprintf("[%s] %s %dx%d | Moves: %d | Total: %d",
		session.sessionID, state.ConfigName, state.Size, state.Size, state.Moves, state.TotalMoves)
	ebitenutil.DebugPrintAt(screen, header, 10, 8)
	ebitenutil.DebugPrintAt(screen, state.Message, 10, 24)

	connStatus := "POLL"
	if session.wsConn != nil {
		connStatus = "WS"
	}
	ebitenutil.DebugPrintAt(screen, connStatus, screenWidth-40, 8)

	// Animation progress
	animT := 1.0
	if session.animating {
		animT = float64(time.Since(session.animStart)) / float64(animationDuration)
		if animT > 1.0 {
			animT = 1.0
		}
	}

	// Tiles
	for row := 0; row < state.Size; row++ {
		for col := 0; col < state.Size; col++ {
			tile := state.Grid[row][col]
			if tile == 0 {
				continue
			}

			x := float64(col * cell)
			y := float64(row*cell + headerHeight)

			// The sliding tile is drawn interpolated between its cells.
			if session.animating && row == session.animTo.Row && col == session.animTo.Col {
				fromX := float64(session.animFrom.Col * cell)
				fromY := float64(session.animFrom.Row*cell + headerHeight)
				x = fromX*(1.0-animT) + x*animT
				y = fromY*(1.0-animT) + y*animT
			}

			drawTile(screen, x, y, cell, tile, tileInPlace(state, row, col), state.Status)
		}
	}

	// Won overlay
	if state.Status == "won" {
		ebitenutil.DebugPrintAt(screen, "*** SOLVED! Press R for a new puzzle ***", 130, headerHeight+gridPixels/2)
	} else if state.Status == "paused" {
		ebitenutil.DebugPrintAt(screen, "*** PAUSED - press P to resume ***", 150, headerHeight+gridPixels/2)
	}

	// Footer controls
	ebitenutil.DebugPrintAt(screen, "Click/Arrows: Slide | R: Restart | P: Pause | ESC: Menu", 10, screenHeight-20)
}

// drawTile renders one tile with its number
func drawTile(screen *ebiten.Image, x, y float64, cell, tile int, inPlace bool, status string) {
	tileColor := color.RGBA{70, 90, 140, 255} // Out-of-place slate blue
	if inPlace {
		tileColor = color.RGBA{60, 140, 90, 255} // In-place green
	}
	if status == "won" {
		tileColor = color.RGBA{50, 170, 80, 255}
	}

	ebitenutil.DrawRect(screen, x+2, y+2, float64(cell-4), float64(cell-4), tileColor)

	label := fmt.Sprintf("%d", tile)
	textX := int(x) + cell/2 - 3*len(label)
	textY := int(y) + cell/2 - 8
	ebitenutil.DebugPrintAt(screen, label, textX, textY)
}

// tileInPlace reports whether the tile at (row, col) sits in its solved cell.
func tileInPlace(state *GameState, row, col int) bool {
	return state.Grid[row][col] == row*state.Size+col+1
}

// Layout returns the game screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	// Accept an optional session ID as argument
	sessionID := ""
	if len(os.Args) > 1 {
		sessionID = os.Args[1]
	}

	game := NewGame(sessionID)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Sliding Puzzle - Desktop Client")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
