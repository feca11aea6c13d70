package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"

	"kvinvorto/internal/game"
	"kvinvorto/internal/words"
)

// App holds all shared server state: the immutable word catalog, the session
// store and its lock, rate limiters, and configuration.
type App struct {
	Catalog    *game.Catalog
	HintMap    map[string]string
	MaxGuesses int

	GameSessions map[string]*GameSession
	SessionMutex sync.RWMutex
	SessionDir   string

	Daily DailyWord

	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex

	IsProduction   bool
	StartTime      time.Time
	SessionTimeout time.Duration
	CookieMaxAge   time.Duration
	RateLimitRPS   int
	RateLimitBurst int
}

func main() {
	_ = godotenv.Load()

	isProduction := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
	logInfo("Starting Kvinvorto in %s mode", map[bool]string{true: "production", false: "development"}[isProduction])

	wordLength := getEnvInt("WORD_LENGTH", DefaultWordLength)
	wordsFile := getEnvString("WORDS_FILE", "data/words.json")
	acceptedFile := getEnvString("ACCEPTED_WORDS_FILE", "data/accepted_words.json")

	entries, err := words.LoadEntries(wordsFile, wordLength)
	if err != nil {
		logFatal("Failed to load words: %v", err)
	}
	logInfo("Loaded %d words from dictionary", len(entries))

	accepted, err := words.LoadAccepted(acceptedFile, wordLength)
	if err != nil {
		logFatal("Failed to load accepted words: %v", err)
	}
	logInfo("Loaded %d accepted words", len(accepted))

	catalog, err := game.NewCatalog(words.Answers(entries), accepted, wordLength)
	if err != nil {
		logFatal("Failed to build catalog: %v", err)
	}

	app := &App{
		Catalog:        catalog,
		HintMap:        words.HintMap(entries),
		MaxGuesses:     getEnvInt("MAX_GUESSES", DefaultMaxGuesses),
		GameSessions:   make(map[string]*GameSession),
		SessionDir:     getEnvString("SESSION_DIR", "data/sessions"),
		LimiterMap:     make(map[string]*rate.Limiter),
		IsProduction:   isProduction,
		StartTime:      time.Now(),
		SessionTimeout: getEnvDuration("SESSION_TIMEOUT", 2*time.Hour),
		CookieMaxAge:   getEnvDuration("COOKIE_MAX_AGE", 2*time.Hour),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}

	go app.sessionCleanupLoop()

	startServer(app.newRouter())
}

// newRouter wires the middleware stack and routes.
func (app *App) newRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	// Game state is per-session and changes on every guess, so nothing the
	// API serves may be cached.
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))

	router.Use(requestIDMiddleware())

	router.GET(RouteHome, app.homeHandler)
	router.GET(RouteNewGame, app.newGameHandler)
	router.POST(RouteNewGame, app.rateLimitMiddleware(), app.newGameHandler)
	router.POST(RouteGuess, app.rateLimitMiddleware(), app.guessHandler)
	router.GET(RouteGameState, app.gameStateHandler)
	router.GET(RouteDaily, app.dailyHandler)
	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

// startServer runs the HTTP server and shuts it down gracefully on
// SIGINT/SIGTERM.
func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}

// sessionCleanupLoop periodically evicts idle sessions from memory and disk.
func (app *App) sessionCleanupLoop() {
	ticker := time.NewTicker(app.SessionTimeout / 2)
	defer ticker.Stop()
	for range ticker.C {
		app.evictIdleSessions()
		if err := app.cleanupOldSessions(app.SessionTimeout); err != nil {
			logWarn("Session file cleanup failed: %v", err)
		}
	}
}

// evictIdleSessions drops in-memory sessions not touched within the timeout.
func (app *App) evictIdleSessions() {
	cutoff := time.Now().Add(-app.SessionTimeout)
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	for id, sess := range app.GameSessions {
		if sess.LastAccessTime.Before(cutoff) {
			delete(app.GameSessions, id)
			logInfo("Evicted idle session: %s", id)
		}
	}
}
