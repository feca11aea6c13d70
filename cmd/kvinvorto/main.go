// Command kvinvorto plays the word game in the terminal: type a guess, get
// colored tiles back, and watch the keyboard fill in. All rules live in
// internal/game; this binary only reads lines and prints colors.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"kvinvorto/internal/game"
	"kvinvorto/internal/words"
)

type CLI struct {
	Words    string `help:"Path to the answers file." default:"data/words.json"`
	Accepted string `help:"Path to the accepted words file." default:"data/accepted_words.json"`
	Length   int    `help:"Word length." default:"5"`
	Attempts int    `help:"Maximum number of guesses." default:"6"`
	Index    *int   `help:"Pick the answer at this index instead of a random one."`
	Hint     bool   `help:"Show the answer's hint before the first guess."`
}

var (
	// Tile styles follow the classic colors: green, yellow, gray.
	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("10"))

	presentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11"))

	absentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("8"))

	unknownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// qwertyRows is the keyboard layout printed after each guess.
var qwertyRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	entries, err := words.LoadEntries(cli.Words, cli.Length)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading words: %v\n", err)
		ctx.Exit(1)
	}
	accepted, err := words.LoadAccepted(cli.Accepted, cli.Length)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading accepted words: %v\n", err)
		ctx.Exit(1)
	}
	catalog, err := game.NewCatalog(words.Answers(entries), accepted, cli.Length)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building catalog: %v\n", err)
		ctx.Exit(1)
	}

	g, err := newGame(catalog, cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		ctx.Exit(1)
	}

	fmt.Printf("Guess the %d-letter word. You have %d attempts.\n\n", cli.Length, cli.Attempts)
	if cli.Hint {
		printHint(entries, catalog, cli)
	}

	if err := play(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
}

// newGame starts a round, deterministic when --index is given.
func newGame(catalog *game.Catalog, cli CLI) (*game.Game, error) {
	if cli.Index != nil {
		secret, err := catalog.SecretAt(*cli.Index)
		if err != nil {
			return nil, err
		}
		return game.NewWithSecret(catalog, secret, cli.Attempts)
	}
	return game.New(catalog, cli.Attempts)
}

// play runs the prompt loop until the round ends or stdin closes.
func play(g *game.Game) error {
	scanner := bufio.NewScanner(os.Stdin)
	for !g.Over() {
		fmt.Printf("[%d left] > ", g.AttemptsLeft())
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		guess, err := g.SubmitGuess(scanner.Text())
		if err != nil {
			fmt.Println(errorStyle.Render(guessErrorMessage(err)))
			continue
		}

		printGuess(guess)
		printKeyboard(g.Keyboard())
		fmt.Println()
	}

	switch g.Status() {
	case game.StatusWon:
		fmt.Printf("You won in %d guess%s!\n", len(g.Guesses()), pluralEs(len(g.Guesses())))
	case game.StatusLost:
		fmt.Printf("Out of guesses. The word was %s.\n", correctStyle.Render(" "+g.Secret()+" "))
	}
	return nil
}

// printHint shows the hint for the secret without revealing the word. Only
// possible for deterministic rounds, where the secret is known up front.
func printHint(entries []words.Entry, catalog *game.Catalog, cli CLI) {
	if cli.Index == nil {
		fmt.Println("Hints are only available with --index.")
		return
	}
	secret, err := catalog.SecretAt(*cli.Index)
	if err != nil {
		return
	}
	if hint := words.HintMap(entries)[secret]; hint != "" {
		fmt.Printf("Hint: %s\n\n", hint)
	}
}

// printGuess renders one scored guess as a row of colored tiles.
func printGuess(guess game.Guess) {
	var row strings.Builder
	for _, s := range guess.Scores {
		row.WriteString(styleFor(s.Status).Render(" " + s.Letter + " "))
	}
	fmt.Println("  " + row.String())
}

// printKeyboard renders the QWERTY layout with each key colored by the best
// status seen so far.
func printKeyboard(k *game.Keyboard) {
	indent := ""
	for _, rowLetters := range qwertyRows {
		var row strings.Builder
		for _, r := range rowLetters {
			row.WriteString(styleFor(k.StatusOf(r)).Render(string(r)))
			row.WriteString(" ")
		}
		fmt.Println("  " + indent + row.String())
		indent += " "
	}
}

// styleFor maps a letter status to its tile style.
func styleFor(status game.LetterStatus) lipgloss.Style {
	switch status {
	case game.StatusCorrect:
		return correctStyle
	case game.StatusPresent:
		return presentStyle
	case game.StatusAbsent:
		return absentStyle
	default:
		return unknownStyle
	}
}

// guessErrorMessage turns engine errors into prompt feedback.
func guessErrorMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrNotLetters):
		return "Letters only, please."
	case errors.Is(err, game.ErrInvalidLength):
		return "Wrong length."
	case errors.Is(err, game.ErrNotInDictionary):
		return "Not in the word list."
	case errors.Is(err, game.ErrGameOver):
		return "The game is already over."
	default:
		return err.Error()
	}
}

// pluralEs returns "es" for counts other than one.
func pluralEs(n int) string {
	if n == 1 {
		return ""
	}
	return "es"
}
