package main

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"kvinvorto/internal/game"
)

func TestGetGameSessionCreatesAndCaches(t *testing.T) {
	app := newTestApp(t)
	sessionID := uuid.NewString()

	sess, err := app.getGameSession(sessionID)
	if err != nil {
		t.Fatalf("getGameSession returned error: %v", err)
	}
	if sess.Game.Status() != game.StatusInProgress {
		t.Errorf("new session status = %q, want in_progress", sess.Game.Status())
	}

	again, err := app.getGameSession(sessionID)
	if err != nil {
		t.Fatalf("getGameSession returned error: %v", err)
	}
	if again != sess {
		t.Error("getGameSession did not return the cached session")
	}
}

func TestGetGameSessionRestoresFromFile(t *testing.T) {
	app := newTestApp(t)

	g, err := game.NewWithSecret(app.Catalog, "SPEED", app.MaxGuesses)
	if err != nil {
		t.Fatalf("NewWithSecret returned error: %v", err)
	}
	if _, err := g.SubmitGuess("ERASE"); err != nil {
		t.Fatalf("SubmitGuess returned error: %v", err)
	}

	sessionID := uuid.NewString()
	if err := app.saveGameSessionToFile(sessionID, &GameSession{Game: g, LastAccessTime: time.Now()}); err != nil {
		t.Fatalf("saveGameSessionToFile returned error: %v", err)
	}

	// Nothing in memory; the session must come back from disk.
	sess, err := app.getGameSession(sessionID)
	if err != nil {
		t.Fatalf("getGameSession returned error: %v", err)
	}
	history := sess.Game.Guesses()
	if len(history) != 1 || history[0].Word != "ERASE" {
		t.Errorf("restored history = %v, want one ERASE guess", history)
	}

	app.SessionMutex.RLock()
	_, cached := app.GameSessions[sessionID]
	app.SessionMutex.RUnlock()
	if !cached {
		t.Error("restored session was not cached in memory")
	}
}

func TestDropGameSession(t *testing.T) {
	app := newTestApp(t)
	sessionID := uuid.NewString()
	if _, err := app.getGameSession(sessionID); err != nil {
		t.Fatalf("getGameSession returned error: %v", err)
	}

	app.dropGameSession(sessionID)

	app.SessionMutex.RLock()
	_, exists := app.GameSessions[sessionID]
	app.SessionMutex.RUnlock()
	if exists {
		t.Error("dropGameSession left the session in memory")
	}
}

func TestEvictIdleSessions(t *testing.T) {
	app := newTestApp(t)

	fresh := uuid.NewString()
	idle := uuid.NewString()
	for _, id := range []string{fresh, idle} {
		if _, err := app.getGameSession(id); err != nil {
			t.Fatalf("getGameSession returned error: %v", err)
		}
	}
	app.SessionMutex.Lock()
	app.GameSessions[idle].LastAccessTime = time.Now().Add(-(app.SessionTimeout + time.Minute))
	app.SessionMutex.Unlock()

	app.evictIdleSessions()

	app.SessionMutex.RLock()
	defer app.SessionMutex.RUnlock()
	if _, ok := app.GameSessions[fresh]; !ok {
		t.Error("evictIdleSessions removed a fresh session")
	}
	if _, ok := app.GameSessions[idle]; ok {
		t.Error("evictIdleSessions kept an idle session")
	}
}
