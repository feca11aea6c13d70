package game

import "errors"

// Guess validation and state errors. All are recoverable by the caller;
// the frontend decides how to surface them.
var (
	ErrGameOver        = errors.New("game is already over")
	ErrNotLetters      = errors.New("guess must contain only letters")
	ErrInvalidLength   = errors.New("guess has the wrong length")
	ErrNotInDictionary = errors.New("guess is not in the word list")
)

// Catalog construction errors.
var (
	ErrEmptyCatalog   = errors.New("catalog has no answer words")
	ErrLengthMismatch = errors.New("word length does not match catalog")
)
