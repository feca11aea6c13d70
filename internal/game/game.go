package game

import (
	"fmt"
	"unicode"
)

// Status is the coarse state of a round.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Game is a single round: one secret, an append-only history of scored
// guesses, and a fixed attempt budget. A Game is owned by one session and
// must not be shared between goroutines.
type Game struct {
	secret      string
	catalog     *Catalog
	maxAttempts int
	guesses     []Guess
	status      Status
	keyboard    *Keyboard
}

// New starts a round with a randomly drawn secret.
func New(catalog *Catalog, maxAttempts int) (*Game, error) {
	return NewWithSecret(catalog, catalog.PickSecret(), maxAttempts)
}

// NewWithSecret starts a round with a caller-chosen secret, used for daily
// words and deterministic play. The secret must be an answer-length word.
func NewWithSecret(catalog *Catalog, secret string, maxAttempts int) (*Game, error) {
	if maxAttempts <= 0 {
		return nil, fmt.Errorf("max attempts %d must be positive", maxAttempts)
	}
	word := Normalize(secret)
	if len([]rune(word)) != catalog.WordLength() {
		return nil, fmt.Errorf("secret %q: %w", secret, ErrLengthMismatch)
	}
	return &Game{
		secret:      word,
		catalog:     catalog,
		maxAttempts: maxAttempts,
		guesses:     []Guess{},
		status:      StatusInProgress,
		keyboard:    NewKeyboard(),
	}, nil
}

// SubmitGuess validates and scores one guess, appends it to the history and
// advances the round. Validation order follows the classic rules: the round
// must still be live, then the word must be all letters, the right length,
// and in the accepted list. The raw input is trimmed and uppercased first,
// so guesses are case-insensitive.
func (g *Game) SubmitGuess(raw string) (Guess, error) {
	if g.status != StatusInProgress {
		return Guess{}, ErrGameOver
	}

	word := Normalize(raw)
	if !isLetters(word) {
		return Guess{}, ErrNotLetters
	}
	if len([]rune(word)) != g.catalog.WordLength() {
		return Guess{}, ErrInvalidLength
	}
	if !g.catalog.IsAcceptedGuess(word) {
		return Guess{}, ErrNotInDictionary
	}

	scores, err := Evaluate(g.secret, word)
	if err != nil {
		return Guess{}, err
	}

	guess := Guess{Word: word, Scores: scores}
	g.guesses = append(g.guesses, guess)
	g.keyboard.Record(guess)

	switch {
	case allCorrect(scores):
		g.status = StatusWon
	case len(g.guesses) >= g.maxAttempts:
		g.status = StatusLost
	}

	return guess, nil
}

// Status returns the current round status.
func (g *Game) Status() Status {
	return g.status
}

// Over reports whether the round has reached a terminal state.
func (g *Game) Over() bool {
	return g.status != StatusInProgress
}

// Guesses returns the scored guesses in submission order. The slice is a
// copy; the history itself is append-only.
func (g *Game) Guesses() []Guess {
	out := make([]Guess, len(g.guesses))
	copy(out, g.guesses)
	return out
}

// MaxAttempts returns the attempt budget for this round.
func (g *Game) MaxAttempts() int {
	return g.maxAttempts
}

// AttemptsLeft returns how many guesses remain.
func (g *Game) AttemptsLeft() int {
	return g.maxAttempts - len(g.guesses)
}

// Keyboard returns the per-letter hint aggregation for this round.
func (g *Game) Keyboard() *Keyboard {
	return g.keyboard
}

// Secret reveals the target word once the round is over, and returns the
// empty string while the round is still live.
func (g *Game) Secret() string {
	if g.status == StatusInProgress {
		return ""
	}
	return g.secret
}

// isLetters reports whether the word consists only of ASCII letters.
func isLetters(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
