// Package words loads the word lists the game is played with. The lists are
// read once at startup and handed to the engine as plain slices; nothing in
// here is consulted again while games run.
package words

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"

	"kvinvorto/internal/game"
)

// Entry is one answer word with its optional hint.
type Entry struct {
	Word string `json:"word"`
	Hint string `json:"hint"`
}

// List is the JSON document shape of the answers file.
type List struct {
	Words []Entry `json:"words"`
}

// LoadEntries reads the answers file and returns the entries whose words
// have exactly length letters, uppercased. Entries with the wrong length are
// dropped rather than treated as fatal, so one bad word cannot take the
// server down.
func LoadEntries(path string, length int) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse answers file %s: %w", path, err)
	}

	entries := lo.FilterMap(list.Words, func(e Entry, _ int) (Entry, bool) {
		word := game.Normalize(e.Word)
		if len([]rune(word)) != length {
			return Entry{}, false
		}
		return Entry{Word: word, Hint: e.Hint}, true
	})
	if len(entries) == 0 {
		return nil, fmt.Errorf("answers file %s: %w", path, game.ErrEmptyCatalog)
	}
	return entries, nil
}

// LoadAccepted reads the accepted-guesses file, a flat JSON array of words,
// and returns them uppercased with wrong-length words dropped.
func LoadAccepted(path string, length int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read accepted words file: %w", err)
	}
	var accepted []string
	if err := json.Unmarshal(data, &accepted); err != nil {
		return nil, fmt.Errorf("parse accepted words file %s: %w", path, err)
	}

	return lo.FilterMap(accepted, func(w string, _ int) (string, bool) {
		word := game.Normalize(w)
		return word, len([]rune(word)) == length
	}), nil
}

// Answers extracts the plain word list from entries.
func Answers(entries []Entry) []string {
	return lo.Map(entries, func(e Entry, _ int) string { return e.Word })
}

// HintMap builds the word-to-hint lookup used by the frontends.
func HintMap(entries []Entry) map[string]string {
	return lo.Associate(entries, func(e Entry) (string, string) {
		return e.Word, e.Hint
	})
}
