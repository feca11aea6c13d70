package main

// Game configuration defaults
const (
	DefaultMaxGuesses = 6 // Maximum number of guesses per game
	DefaultWordLength = 5 // Length of the word to guess
)

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHome      = "/"
	RouteNewGame   = "/new-game"
	RouteGuess     = "/guess"
	RouteGameState = "/game-state"
	RouteDaily     = "/daily"
	RouteHealthz   = "/healthz"
)

// Error message constants
const (
	ErrorGameOver        = "Game is over."
	ErrorInvalidLength   = "Word must be 5 letters."
	ErrorNotLetters      = "Word must contain only letters."
	ErrorWordNotAccepted = "Word not recognised."
	ErrorDuplicateGuess  = "Word already guessed."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

type contextKey string
