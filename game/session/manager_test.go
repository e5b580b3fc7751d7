package session

import (
	"errors"
	"testing"
	"time"

	"github.com/matthewconnelltombs/acquire/game/engine"
)

func testConfig() *engine.GameConfig {
	cfg := engine.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func testPlayers() []string {
	return []string{"Alice", "Bob"}
}

func TestManagerCreate(t *testing.T) {
	m := NewManager()

	sess, err := m.Create("", testConfig(), testPlayers())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if sess.ID == "" {
		t.Error("Expected a generated session ID")
	}
	if len(sess.ID) != 8 {
		t.Errorf("Expected an 8-character ID, got %q", sess.ID)
	}
	if sess.Engine == nil {
		t.Error("Expected a running engine")
	}
	if len(sess.Players) != 2 {
		t.Errorf("Expected 2 players, got %d", len(sess.Players))
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 session, got %d", m.Count())
	}
}

func TestManagerCreateWithExplicitID(t *testing.T) {
	m := NewManager()

	if _, err := m.Create("Table1", testConfig(), testPlayers()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := m.Create("table1", testConfig(), testPlayers()); !errors.Is(err, ErrSessionAlreadyExists) {
		t.Errorf("Expected ErrSessionAlreadyExists for a case-insensitive duplicate, got %v", err)
	}
}

func TestManagerCreateInvalidRoster(t *testing.T) {
	m := NewManager()

	if _, err := m.Create("", testConfig(), []string{"Solo"}); !errors.Is(err, engine.ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration, got %v", err)
	}
	if m.Count() != 0 {
		t.Errorf("Failed create left %d sessions behind", m.Count())
	}
}

func TestManagerGet(t *testing.T) {
	m := NewManager()
	created, err := m.Create("MyGame", testConfig(), testPlayers())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := m.Get("mygame")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("Expected session %s, got %s", created.ID, got.ID)
	}

	if _, err := m.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestManagerListAndDelete(t *testing.T) {
	m := NewManager()
	m.Create("a", testConfig(), testPlayers())
	m.Create("b", testConfig(), testPlayers())

	if got := len(m.List()); got != 2 {
		t.Errorf("Expected 2 sessions, got %d", got)
	}
	if err := m.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := m.Delete("a"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound on double delete, got %v", err)
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 session left, got %d", m.Count())
	}
}

func TestManagerUpdateLastAccessed(t *testing.T) {
	m := NewManager()
	sess, err := m.Create("game", testConfig(), testPlayers())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	before := sess.LastAccessedAt

	time.Sleep(10 * time.Millisecond)
	if err := m.UpdateLastAccessed("game"); err != nil {
		t.Fatalf("UpdateLastAccessed failed: %v", err)
	}
	if !sess.LastAccessedAt.After(before) {
		t.Error("Expected the last accessed time to move forward")
	}
	if err := m.UpdateLastAccessed("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestManagerCleanupExpiredSessions(t *testing.T) {
	m := NewManager()
	stale, err := m.Create("stale", testConfig(), testPlayers())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	m.Create("fresh", testConfig(), testPlayers())
	stale.LastAccessedAt = time.Now().Add(-2 * time.Hour)

	removed := m.CleanupExpiredSessions(time.Hour)
	if removed != 1 {
		t.Errorf("Expected 1 session removed, got %d", removed)
	}
	if _, err := m.Get("stale"); !errors.Is(err, ErrSessionNotFound) {
		t.Error("Expected the stale session to be gone")
	}
	if _, err := m.Get("fresh"); err != nil {
		t.Errorf("Expected the fresh session to survive: %v", err)
	}
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	m := NewManager()
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		sess, err := m.Create("", testConfig(), testPlayers())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if seen[sess.ID] {
			t.Fatalf("Duplicate generated ID %s", sess.ID)
		}
		seen[sess.ID] = true
	}
}
