package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"kvinvorto/internal/game"
)

// saveGameSessionToFile persists a session to disk so a restarted server can
// pick up in-flight rounds.
func (app *App) saveGameSessionToFile(sessionID string, sess *GameSession) error {
	if sessionID == "" || len(sessionID) < 10 {
		logWarn("Skipping save for invalid session ID: %s", sessionID)
		return nil
	}

	if err := os.MkdirAll(app.SessionDir, 0755); err != nil {
		logWarn("Failed to create sessions directory: %v", err)
		return err
	}

	stored := storedSession{
		Game:           sess.Game.Snapshot(),
		DailyDate:      sess.DailyDate,
		LastAccessTime: time.Now(),
	}
	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		logWarn("Failed to marshal session %s: %v", sessionID, err)
		return err
	}

	sessionFile := filepath.Join(app.SessionDir, sessionID+".json")
	if err := os.WriteFile(sessionFile, data, 0644); err != nil {
		logWarn("Failed to write session file %s: %v", sessionFile, err)
		return err
	}
	return nil
}

// loadGameSessionFromFile loads a session from disk. Stale, corrupt or
// invalid files are removed and reported as not found.
func (app *App) loadGameSessionFromFile(sessionID string) (*GameSession, error) {
	if sessionID == "" || len(sessionID) < 10 {
		return nil, os.ErrNotExist
	}

	sessionFile := filepath.Join(app.SessionDir, sessionID+".json")
	info, err := os.Stat(sessionFile)
	if err != nil {
		return nil, err
	}

	if age := time.Since(info.ModTime()); age > app.SessionTimeout {
		logInfo("Session file is too old (%v, max: %v), removing: %s", age, app.SessionTimeout, sessionFile)
		os.Remove(sessionFile)
		return nil, os.ErrNotExist
	}

	data, err := os.ReadFile(sessionFile)
	if err != nil {
		return nil, err
	}

	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		logWarn("Session file %s is corrupted, removing: %v", sessionFile, err)
		os.Remove(sessionFile)
		return nil, os.ErrNotExist
	}

	g, err := game.Restore(app.Catalog, stored.Game)
	if err != nil {
		logWarn("Session file %s has an invalid round, removing: %v", sessionFile, err)
		os.Remove(sessionFile)
		return nil, os.ErrNotExist
	}

	return &GameSession{
		Game:           g,
		DailyDate:      stored.DailyDate,
		LastAccessTime: time.Now(),
	}, nil
}

// cleanupOldSessions removes session files older than maxAge.
func (app *App) cleanupOldSessions(maxAge time.Duration) error {
	entries, err := os.ReadDir(app.SessionDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logWarn("Failed to stat session file %s: %v", entry.Name(), err)
			continue
		}
		if info.ModTime().Before(cutoff) {
			sessionFile := filepath.Join(app.SessionDir, entry.Name())
			if err := os.Remove(sessionFile); err != nil {
				logWarn("Failed to remove old session file %s: %v", sessionFile, err)
			} else {
				removed++
			}
		}
	}

	if removed > 0 {
		logInfo("Session cleanup removed %d file%s", removed, plural(removed))
	}
	return nil
}
