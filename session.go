package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kvinvorto/internal/game"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || len(sessionID) < 10 {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.IsProduction
		c.SetCookie(SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", secure, true)
		logInfo("Created new session: %s", sessionID)
	}
	return sessionID
}

// getGameSession retrieves the session's round, checking memory first, then
// the session files, and finally starting a fresh round.
func (app *App) getGameSession(sessionID string) (*GameSession, error) {
	app.SessionMutex.RLock()
	sess, exists := app.GameSessions[sessionID]
	app.SessionMutex.RUnlock()
	if exists {
		app.SessionMutex.Lock()
		sess.LastAccessTime = time.Now()
		app.SessionMutex.Unlock()
		return sess, nil
	}

	if sess, err := app.loadGameSessionFromFile(sessionID); err == nil {
		logInfo("Restored session from file: %s", sessionID)
		app.SessionMutex.Lock()
		app.GameSessions[sessionID] = sess
		app.SessionMutex.Unlock()
		return sess, nil
	}

	logInfo("Creating new game for session: %s", sessionID)
	return app.newGameSession(sessionID)
}

// newGameSession starts a round with a random secret and stores it.
func (app *App) newGameSession(sessionID string) (*GameSession, error) {
	g, err := game.New(app.Catalog, app.MaxGuesses)
	if err != nil {
		return nil, err
	}
	sess := &GameSession{Game: g, LastAccessTime: time.Now()}
	app.saveGameSession(sessionID, sess)
	return sess, nil
}

// saveGameSession updates the in-memory store and persists the session file.
func (app *App) saveGameSession(sessionID string, sess *GameSession) {
	app.SessionMutex.Lock()
	sess.LastAccessTime = time.Now()
	app.GameSessions[sessionID] = sess
	app.SessionMutex.Unlock()

	if err := app.saveGameSessionToFile(sessionID, sess); err != nil {
		logWarn("Failed to persist session %s: %v", sessionID, err)
	}
}

// dropGameSession removes a session's round from memory so the next request
// starts fresh.
func (app *App) dropGameSession(sessionID string) {
	app.SessionMutex.Lock()
	delete(app.GameSessions, sessionID)
	app.SessionMutex.Unlock()
}
