package game

import (
	"errors"
	"testing"
)

func scoresEqual(a, b []LetterScore) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		guess  string
		want   []LetterScore
	}{
		{
			name:   "all correct",
			secret: "ROBOT",
			guess:  "ROBOT",
			want: []LetterScore{
				{"R", StatusCorrect},
				{"O", StatusCorrect},
				{"B", StatusCorrect},
				{"O", StatusCorrect},
				{"T", StatusCorrect},
			},
		},
		{
			name:   "repeated guess letter with one occurrence in secret",
			secret: "APPLE",
			guess:  "ALLEY",
			want: []LetterScore{
				{"A", StatusCorrect},
				{"L", StatusPresent},
				{"L", StatusAbsent},
				{"E", StatusPresent},
				{"Y", StatusAbsent},
			},
		},
		{
			name:   "two shared letters both misplaced",
			secret: "SPEED",
			guess:  "ERASE",
			want: []LetterScore{
				{"E", StatusPresent},
				{"R", StatusAbsent},
				{"A", StatusAbsent},
				{"S", StatusPresent},
				{"E", StatusPresent},
			},
		},
		{
			name:   "correct match claims the count before misplaced copies",
			secret: "DYSON",
			guess:  "DADDY",
			want: []LetterScore{
				{"D", StatusCorrect},
				{"A", StatusAbsent},
				{"D", StatusAbsent},
				{"D", StatusAbsent},
				{"Y", StatusPresent},
			},
		},
		{
			name:   "triple letter with single correct occurrence",
			secret: "DYSON",
			guess:  "SASSY",
			want: []LetterScore{
				{"S", StatusAbsent},
				{"A", StatusAbsent},
				{"S", StatusCorrect},
				{"S", StatusAbsent},
				{"Y", StatusPresent},
			},
		},
		{
			name:   "leftmost copies claim present until the count runs out",
			secret: "BLEEP",
			guess:  "EERIE",
			want: []LetterScore{
				{"E", StatusPresent},
				{"E", StatusPresent},
				{"R", StatusAbsent},
				{"I", StatusAbsent},
				{"E", StatusAbsent},
			},
		},
		{
			name:   "misplaced copies capped by secret count",
			secret: "EERIE",
			guess:  "BLEEP",
			want: []LetterScore{
				{"B", StatusAbsent},
				{"L", StatusAbsent},
				{"E", StatusPresent},
				{"E", StatusPresent},
				{"P", StatusAbsent},
			},
		},
		{
			name:   "no letters shared",
			secret: "ROBOT",
			guess:  "WINCH",
			want: []LetterScore{
				{"W", StatusAbsent},
				{"I", StatusAbsent},
				{"N", StatusAbsent},
				{"C", StatusAbsent},
				{"H", StatusAbsent},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.secret, tt.guess)
			if err != nil {
				t.Fatalf("Evaluate(%q, %q) returned error: %v", tt.secret, tt.guess, err)
			}
			if !scoresEqual(got, tt.want) {
				t.Errorf("Evaluate(%q, %q) = %v, want %v", tt.secret, tt.guess, got, tt.want)
			}
		})
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	if _, err := Evaluate("ROBOT", "ROBOTS"); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Evaluate with longer guess returned %v, want ErrLengthMismatch", err)
	}
	if _, err := Evaluate("ROBOT", "ROB"); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Evaluate with shorter guess returned %v, want ErrLengthMismatch", err)
	}
}

// TestEvaluateMultisetProperty checks that a letter never collects more
// Present+Correct marks than it has occurrences in the secret.
func TestEvaluateMultisetProperty(t *testing.T) {
	pairs := []struct{ secret, guess string }{
		{"SPEED", "ERASE"},
		{"SPEED", "GEESE"},
		{"BLEEP", "EERIE"},
		{"EERIE", "BLEEP"},
		{"DYSON", "SASSY"},
		{"APPLE", "ALLEY"},
		{"SASSY", "SASSY"},
	}

	for _, p := range pairs {
		scores, err := Evaluate(p.secret, p.guess)
		if err != nil {
			t.Fatalf("Evaluate(%q, %q) returned error: %v", p.secret, p.guess, err)
		}

		inSecret := make(map[string]int)
		for _, r := range p.secret {
			inSecret[string(r)]++
		}
		marked := make(map[string]int)
		for _, s := range scores {
			if s.Status == StatusCorrect || s.Status == StatusPresent {
				marked[s.Letter]++
			}
		}
		for letter, n := range marked {
			if n > inSecret[letter] {
				t.Errorf("Evaluate(%q, %q) marked %q %d times, secret only has %d",
					p.secret, p.guess, letter, n, inSecret[letter])
			}
		}
	}
}

// TestEvaluateCorrectIffPositionMatches checks the positional property: a
// letter scores Correct exactly where guess and secret agree.
func TestEvaluateCorrectIffPositionMatches(t *testing.T) {
	pairs := []struct{ secret, guess string }{
		{"ROBOT", "ROBOT"},
		{"SPEED", "ERASE"},
		{"DYSON", "DADDY"},
		{"STEED", "SPEED"},
	}

	for _, p := range pairs {
		scores, err := Evaluate(p.secret, p.guess)
		if err != nil {
			t.Fatalf("Evaluate(%q, %q) returned error: %v", p.secret, p.guess, err)
		}
		for i := range p.secret {
			match := p.secret[i] == p.guess[i]
			correct := scores[i].Status == StatusCorrect
			if match != correct {
				t.Errorf("Evaluate(%q, %q) position %d: match=%v but correct=%v",
					p.secret, p.guess, i, match, correct)
			}
		}
	}
}
