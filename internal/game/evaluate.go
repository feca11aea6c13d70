package game

// Evaluate scores guess against secret and returns one LetterScore per
// position. Both words must already be normalized to the same length.
//
// The scoring is the classic two-pass algorithm. The first pass marks exact
// matches and counts the remaining secret letters; the second pass hands the
// leftover counts to misplaced letters left to right. Running the passes in
// this order is what makes repeated letters come out right: correct matches
// claim their letter before any misplaced occurrence can, and a letter that
// appears more often in the guess than in the secret only scores Present
// until the count runs out.
func Evaluate(secret, guess string) ([]LetterScore, error) {
	secretRunes := []rune(secret)
	guessRunes := []rune(guess)
	if len(secretRunes) != len(guessRunes) {
		return nil, ErrLengthMismatch
	}

	scores := make([]LetterScore, len(guessRunes))
	remaining := make(map[rune]int, len(secretRunes))

	for i, r := range guessRunes {
		if r == secretRunes[i] {
			scores[i] = LetterScore{Letter: string(r), Status: StatusCorrect}
		} else {
			remaining[secretRunes[i]]++
		}
	}

	for i, r := range guessRunes {
		if scores[i].Status == StatusCorrect {
			continue
		}
		if remaining[r] > 0 {
			scores[i] = LetterScore{Letter: string(r), Status: StatusPresent}
			remaining[r]--
		} else {
			scores[i] = LetterScore{Letter: string(r), Status: StatusAbsent}
		}
	}

	return scores, nil
}

// allCorrect reports whether every position in the scores is an exact match.
func allCorrect(scores []LetterScore) bool {
	for _, s := range scores {
		if s.Status != StatusCorrect {
			return false
		}
	}
	return true
}
