package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"kvinvorto/internal/game"
)

// homeHandler returns the current session's board and a welcome message.
func (app *App) homeHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	sess, err := app.getGameSession(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start a game."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":   "Kvinvorto",
		"message": "Guess the 5-letter word!",
		"board":   app.boardView(sess),
	})
}

// newGameHandler starts a new round, optionally rotating the session ID.
func (app *App) newGameHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	logInfo("Creating new game for session: %s", sessionID)

	app.dropGameSession(sessionID)

	if c.Query("reset") == "1" {
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.IsProduction
		c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)

		newSessionID := uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(SessionCookieName, newSessionID, int(app.CookieMaxAge.Seconds()), "/", "", secure, true)
		logInfo("Created new session ID: %s", newSessionID)
		sessionID = newSessionID
	}

	sess, err := app.newGameSession(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start a game."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"board": app.boardView(sess), "newGame": true})
}

// guessHandler processes a guess submission, validates it, and updates the round.
func (app *App) guessHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	sess, err := app.getGameSession(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start a game."})
		return
	}

	if sess.Game.Over() {
		logWarn("Session %s attempted guess on completed game", sessionID)
		c.JSON(http.StatusConflict, gin.H{"error": ErrorGameOver, "board": app.boardView(sess)})
		return
	}

	raw := c.PostForm("guess")
	word := game.Normalize(raw)
	alreadyGuessed := lo.ContainsBy(sess.Game.Guesses(), func(g game.Guess) bool {
		return g.Word == word
	})
	if alreadyGuessed {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ErrorDuplicateGuess, "board": app.boardView(sess)})
		return
	}

	logInfo("Session %s guessed: %s (attempt %d/%d)", sessionID, word,
		len(sess.Game.Guesses())+1, sess.Game.MaxAttempts())

	result, err := sess.Game.SubmitGuess(raw)
	if err != nil {
		status, msg := guessErrorResponse(err)
		c.JSON(status, gin.H{"error": msg, "board": app.boardView(sess)})
		return
	}

	app.saveGameSession(sessionID, sess)

	switch sess.Game.Status() {
	case game.StatusWon:
		logInfo("Session %s won, target word was: %s", sessionID, sess.Game.Secret())
	case game.StatusLost:
		logInfo("Session %s lost, target word was: %s", sessionID, sess.Game.Secret())
	}

	c.JSON(http.StatusOK, gin.H{"guess": result, "board": app.boardView(sess)})
}

// guessErrorResponse maps engine errors onto HTTP status codes and user messages.
func guessErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict, ErrorGameOver
	case errors.Is(err, game.ErrNotLetters):
		return http.StatusUnprocessableEntity, ErrorNotLetters
	case errors.Is(err, game.ErrInvalidLength):
		return http.StatusUnprocessableEntity, ErrorInvalidLength
	case errors.Is(err, game.ErrNotInDictionary):
		return http.StatusUnprocessableEntity, ErrorWordNotAccepted
	default:
		return http.StatusInternalServerError, "Something went wrong."
	}
}

// gameStateHandler returns the current board for the session.
func (app *App) gameStateHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	sess, err := app.getGameSession(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start a game."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"board": app.boardView(sess)})
}

// dailyHandler attaches the session to today's shared word. Every session
// asking on the same day plays the same secret.
func (app *App) dailyHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	word, date, err := app.currentDailyWord()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not pick the daily word."})
		return
	}

	sess, err := app.getGameSession(sessionID)
	if err == nil && sess.DailyDate == date {
		c.JSON(http.StatusOK, gin.H{"board": app.boardView(sess)})
		return
	}

	g, err := game.NewWithSecret(app.Catalog, word, app.MaxGuesses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start the daily game."})
		return
	}
	sess = &GameSession{Game: g, DailyDate: date, LastAccessTime: time.Now()}
	app.saveGameSession(sessionID, sess)
	c.JSON(http.StatusOK, gin.H{"board": app.boardView(sess), "newGame": true})
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"env":       map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"answers":   app.Catalog.Len(),
		"uptime":    formatUptime(uptime),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
