package main

import (
	"time"

	"kvinvorto/internal/game"
)

// GameSession ties one round to its HTTP-session bookkeeping.
type GameSession struct {
	Game           *game.Game
	DailyDate      string // set when this round is a daily word, "" otherwise
	LastAccessTime time.Time
}

// storedSession is the on-disk form of a GameSession. The round is stored as
// an engine snapshot and rebuilt against the live catalog on load.
type storedSession struct {
	Game           game.Snapshot `json:"game"`
	DailyDate      string        `json:"dailyDate,omitempty"`
	LastAccessTime time.Time     `json:"lastAccessTime"`
}

// BoardView is the JSON shape the frontends render a round from.
type BoardView struct {
	Guesses      []game.Guess                 `json:"guesses"`
	Keyboard     map[string]game.LetterStatus `json:"keyboard"`
	Status       game.Status                  `json:"status"`
	AttemptsLeft int                          `json:"attemptsLeft"`
	MaxAttempts  int                          `json:"maxAttempts"`
	WordLength   int                          `json:"wordLength"`
	Secret       string                       `json:"secret,omitempty"`
	Hint         string                       `json:"hint,omitempty"`
	DailyDate    string                       `json:"dailyDate,omitempty"`
}

// boardView projects a session onto the wire shape. The secret only appears
// once the round is over.
func (app *App) boardView(sess *GameSession) BoardView {
	g := sess.Game
	view := BoardView{
		Guesses:      g.Guesses(),
		Keyboard:     g.Keyboard().Snapshot(),
		Status:       g.Status(),
		AttemptsLeft: g.AttemptsLeft(),
		MaxAttempts:  g.MaxAttempts(),
		WordLength:   app.Catalog.WordLength(),
		Secret:       g.Secret(),
		DailyDate:    sess.DailyDate,
	}
	if view.Secret != "" {
		view.Hint = app.HintMap[view.Secret]
	}
	return view
}
