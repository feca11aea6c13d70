package game

// Keyboard tracks the best evaluation seen for every letter of the alphabet
// across all guesses in a game. "Best" follows the lattice
// Unknown < Absent < Present < Correct, so a letter once known Correct is
// never downgraded by a later Absent or Present observation.
type Keyboard struct {
	best map[rune]LetterStatus
}

// Alphabet is the letter set the keyboard covers.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewKeyboard returns a keyboard with every letter at StatusUnknown.
func NewKeyboard() *Keyboard {
	best := make(map[rune]LetterStatus, len(Alphabet))
	for _, r := range Alphabet {
		best[r] = StatusUnknown
	}
	return &Keyboard{best: best}
}

// ReplayKeyboard rebuilds a keyboard from a guess history. The result is
// identical to recording each guess incrementally as it was made.
func ReplayKeyboard(guesses []Guess) *Keyboard {
	k := NewKeyboard()
	for _, g := range guesses {
		k.Record(g)
	}
	return k
}

// Record upgrades the tracked status for each letter of the guess. Updates
// are monotonic; a lower observation never overwrites a higher one.
func (k *Keyboard) Record(guess Guess) {
	for _, s := range guess.Scores {
		for _, r := range Normalize(s.Letter) {
			if s.Status.Better(k.best[r]) {
				k.best[r] = s.Status
			}
		}
	}
}

// StatusOf returns the best status seen for a letter, or StatusUnknown for
// letters outside the alphabet or not yet guessed.
func (k *Keyboard) StatusOf(letter rune) LetterStatus {
	for _, r := range Normalize(string(letter)) {
		return k.best[r]
	}
	return StatusUnknown
}

// Snapshot returns the keyboard as a letter-to-status map, with unknown
// letters omitted. The map is a copy; mutating it does not affect the
// keyboard.
func (k *Keyboard) Snapshot() map[string]LetterStatus {
	out := make(map[string]LetterStatus)
	for r, s := range k.best {
		if s != StatusUnknown {
			out[string(r)] = s
		}
	}
	return out
}
