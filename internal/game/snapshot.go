package game

import "fmt"

// Snapshot is the serializable form of a Game, used by callers that persist
// rounds between processes. The keyboard is not stored; it is rebuilt by
// replaying the guess history, which yields the same mapping.
type Snapshot struct {
	Secret      string  `json:"secret"`
	MaxAttempts int     `json:"maxAttempts"`
	Guesses     []Guess `json:"guesses"`
	Status      Status  `json:"status"`
}

// Snapshot captures the round for persistence.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Secret:      g.secret,
		MaxAttempts: g.maxAttempts,
		Guesses:     g.Guesses(),
		Status:      g.status,
	}
}

// Restore rebuilds a Game from a snapshot against the given catalog. The
// status is recomputed from the history rather than trusted, so a tampered
// or stale snapshot cannot resurrect a finished round.
func Restore(catalog *Catalog, snap Snapshot) (*Game, error) {
	g, err := NewWithSecret(catalog, snap.Secret, snap.MaxAttempts)
	if err != nil {
		return nil, err
	}
	if len(snap.Guesses) > snap.MaxAttempts {
		return nil, fmt.Errorf("snapshot has %d guesses for %d attempts", len(snap.Guesses), snap.MaxAttempts)
	}

	for _, guess := range snap.Guesses {
		if g.status != StatusInProgress {
			return nil, fmt.Errorf("snapshot has guesses after the round ended")
		}
		word := Normalize(guess.Word)
		if len([]rune(word)) != catalog.WordLength() {
			return nil, fmt.Errorf("snapshot guess %q: %w", guess.Word, ErrLengthMismatch)
		}
		scores, err := Evaluate(g.secret, word)
		if err != nil {
			return nil, err
		}
		rescored := Guess{Word: word, Scores: scores}
		g.guesses = append(g.guesses, rescored)
		g.keyboard.Record(rescored)

		if allCorrect(scores) {
			g.status = StatusWon
		} else if len(g.guesses) >= g.maxAttempts {
			g.status = StatusLost
		}
	}

	return g, nil
}
