package game

// LetterStatus is the evaluation outcome for a single letter.
type LetterStatus string

const (
	// StatusUnknown means the letter has not appeared in any guess yet.
	// It is only ever reported by the keyboard, never by the evaluator.
	StatusUnknown LetterStatus = ""
	StatusAbsent  LetterStatus = "absent"
	StatusPresent LetterStatus = "present"
	StatusCorrect LetterStatus = "correct"
)

// LetterScore is a single letter of a guess paired with its evaluation.
type LetterScore struct {
	Letter string       `json:"letter"`
	Status LetterStatus `json:"status"`
}

// Guess is a submitted word with its per-letter scores. Immutable once
// returned by SubmitGuess.
type Guess struct {
	Word   string        `json:"word"`
	Scores []LetterScore `json:"scores"`
}

// rank orders statuses as Unknown < Absent < Present < Correct.
func (s LetterStatus) rank() int {
	switch s {
	case StatusAbsent:
		return 1
	case StatusPresent:
		return 2
	case StatusCorrect:
		return 3
	default:
		return 0
	}
}

// Better reports whether s carries more information than other.
func (s LetterStatus) Better(other LetterStatus) bool {
	return s.rank() > other.rank()
}
