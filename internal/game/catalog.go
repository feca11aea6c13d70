package game

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Catalog holds the two word sets for a game: the answers a secret may be
// drawn from, and the accepted set used to validate guesses. Every answer is
// always accepted as a guess. A Catalog is immutable once built and safe for
// concurrent readers.
type Catalog struct {
	length   int
	answers  []string
	accepted map[string]struct{}
}

// NewCatalog builds a Catalog from raw word lists. Words are trimmed and
// uppercased; every word must have exactly length letters.
func NewCatalog(answers, accepted []string, length int) (*Catalog, error) {
	if len(answers) == 0 {
		return nil, ErrEmptyCatalog
	}
	if length <= 0 {
		return nil, fmt.Errorf("word length %d: %w", length, ErrLengthMismatch)
	}

	c := &Catalog{
		length:   length,
		answers:  make([]string, 0, len(answers)),
		accepted: make(map[string]struct{}, len(answers)+len(accepted)),
	}

	for _, w := range answers {
		word := Normalize(w)
		if len([]rune(word)) != length {
			return nil, fmt.Errorf("answer %q: %w", w, ErrLengthMismatch)
		}
		c.answers = append(c.answers, word)
		c.accepted[word] = struct{}{}
	}
	for _, w := range accepted {
		word := Normalize(w)
		if len([]rune(word)) != length {
			return nil, fmt.Errorf("accepted word %q: %w", w, ErrLengthMismatch)
		}
		c.accepted[word] = struct{}{}
	}

	return c, nil
}

// WordLength returns the configured letter count for this catalog.
func (c *Catalog) WordLength() int {
	return c.length
}

// Len returns the number of answer words.
func (c *Catalog) Len() int {
	return len(c.answers)
}

// IsAcceptedGuess reports whether word is a valid guess.
func (c *Catalog) IsAcceptedGuess(word string) bool {
	_, ok := c.accepted[Normalize(word)]
	return ok
}

// PickSecret draws a uniformly random answer word.
func (c *Catalog) PickSecret() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(c.answers))))
	if err != nil {
		// crypto/rand only fails if the platform source is broken; the
		// first answer keeps the game playable.
		return c.answers[0]
	}
	return c.answers[n.Int64()]
}

// SecretAt returns the answer at index, wrapping around the answer list.
// Deterministic selection is what daily words are built on.
func (c *Catalog) SecretAt(index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("secret index %d out of range", index)
	}
	return c.answers[index%len(c.answers)], nil
}

// Normalize trims surrounding whitespace and uppercases a word the same way
// guesses and catalog words are stored.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}
