package session

import (
	"testing"
	"time"

	"github.com/wricardo/mcp-training/slidepuzzle/game/engine"
)

func testPuzzleConfig() *engine.PuzzleConfig {
	config := &engine.PuzzleConfig{
		Name:          "Test Puzzle",
		Description:   "Session test configuration",
		Size:          3,
		ShuffleFactor: 10,
		Labels:        map[string]string{"3": "Easy"},
	}
	config.Messages.Welcome = "Welcome!"
	config.Messages.MoveRejected = "Nope"
	config.Messages.Victory = "Solved in %d moves!"
	config.Messages.Paused = "Paused"
	config.Messages.Resumed = "Resumed"
	config.Messages.MoveStatus = "Moves: %d"
	return config
}

func TestManager_Create(t *testing.T) {
	m := NewManager()
	config := testPuzzleConfig()

	session, err := m.Create("abcd", config)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if session.ID != "abcd" {
		t.Errorf("session ID = %s, want abcd", session.ID)
	}
	if session.Engine == nil {
		t.Fatal("session has no engine")
	}
	if session.Engine.GetState().Size != 3 {
		t.Errorf("engine size = %d, want 3", session.Engine.GetState().Size)
	}

	// Duplicate IDs are rejected, case-insensitively
	if _, err := m.Create("abcd", config); err != ErrSessionAlreadyExists {
		t.Errorf("duplicate Create() error = %v, want ErrSessionAlreadyExists", err)
	}
	if _, err := m.Create("ABCD", config); err != ErrSessionAlreadyExists {
		t.Errorf("case-variant Create() error = %v, want ErrSessionAlreadyExists", err)
	}
}

func TestManager_CreateGeneratesID(t *testing.T) {
	m := NewManager()
	config := testPuzzleConfig()

	session, err := m.Create("", config)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(session.ID) != 4 {
		t.Errorf("generated ID %q, want 4 hex characters", session.ID)
	}
}

func TestManager_Get(t *testing.T) {
	m := NewManager()
	config := testPuzzleConfig()

	created, err := m.Create("ab12", config)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := m.Get("ab12")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != created {
		t.Error("Get() returned a different session")
	}

	// Lookup ignores case
	got, err = m.Get("AB12")
	if err != nil {
		t.Fatalf("Get() with uppercase error = %v", err)
	}
	if got != created {
		t.Error("Get() with uppercase returned a different session")
	}

	if _, err := m.Get("zzzz"); err != ErrSessionNotFound {
		t.Errorf("Get() unknown error = %v, want ErrSessionNotFound", err)
	}
}

func TestManager_GetOrCreate(t *testing.T) {
	m := NewManager()
	config := testPuzzleConfig()

	first, err := m.GetOrCreate("ab34", config)
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}

	second, err := m.GetOrCreate("ab34", config)
	if err != nil {
		t.Fatalf("GetOrCreate() second call error = %v", err)
	}
	if first != second {
		t.Error("GetOrCreate() created a second session for the same ID")
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestManager_Delete(t *testing.T) {
	m := NewManager()
	config := testPuzzleConfig()

	if _, err := m.Create("ab56", config); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := m.Delete("AB56"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := m.Get("ab56"); err != ErrSessionNotFound {
		t.Error("session still retrievable after Delete()")
	}

	if err := m.Delete("ab56"); err != ErrSessionNotFound {
		t.Errorf("Delete() unknown error = %v, want ErrSessionNotFound", err)
	}
}

func TestManager_UpdateLastAccessed(t *testing.T) {
	m := NewManager()
	config := testPuzzleConfig()

	session, err := m.Create("ab78", config)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	before := session.LastAccessedAt
	time.Sleep(5 * time.Millisecond)

	if err := m.UpdateLastAccessed("ab78"); err != nil {
		t.Fatalf("UpdateLastAccessed() error = %v", err)
	}
	if !session.LastAccessedAt.After(before) {
		t.Error("LastAccessedAt did not advance")
	}

	if err := m.UpdateLastAccessed("zzzz"); err != ErrSessionNotFound {
		t.Errorf("UpdateLastAccessed() unknown error = %v, want ErrSessionNotFound", err)
	}
}

func TestManager_CleanupExpiredSessions(t *testing.T) {
	m := NewManager()
	config := testPuzzleConfig()

	stale, err := m.Create("old1", config)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := m.Create("new1", config); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	stale.LastAccessedAt = time.Now().Add(-2 * time.Hour)

	removed := m.CleanupExpiredSessions(time.Hour)
	if removed != 1 {
		t.Errorf("CleanupExpiredSessions() removed = %d, want 1", removed)
	}
	if _, err := m.Get("old1"); err != ErrSessionNotFound {
		t.Error("stale session survived cleanup")
	}
	if _, err := m.Get("new1"); err != nil {
		t.Error("fresh session removed by cleanup")
	}
}

func TestManager_List(t *testing.T) {
	m := NewManager()
	config := testPuzzleConfig()

	for _, id := range []string{"aa11", "bb22", "cc33"} {
		if _, err := m.Create(id, config); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}

	sessions := m.List()
	if len(sessions) != 3 {
		t.Errorf("List() returned %d sessions, want 3", len(sessions))
	}
}
