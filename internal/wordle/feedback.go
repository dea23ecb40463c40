// Package wordle narrows a word list using Wordle guess feedback.
//
// A board is a flat sequence of guesses and feedback strings. Feedback uses
// X for a gray letter, Y for a yellow letter and G for a green letter.
package wordle

import "fmt"

// Feedback is the colour reported for one letter of a guess.
type Feedback rune

const (
	// Exclude marks a letter absent from the answer (gray).
	Exclude Feedback = 'X'
	// PresentWrongPosition marks a letter present elsewhere (yellow).
	PresentWrongPosition Feedback = 'Y'
	// PresentRightPosition marks a letter at the right position (green).
	PresentRightPosition Feedback = 'G'
)

// Valid reports whether f is one of the three feedback symbols.
func (f Feedback) Valid() bool {
	switch f {
	case Exclude, PresentWrongPosition, PresentRightPosition:
		return true
	default:
		return false
	}
}

func (f Feedback) String() string {
	switch f {
	case Exclude:
		return "gray"
	case PresentWrongPosition:
		return "yellow"
	case PresentRightPosition:
		return "green"
	default:
		return fmt.Sprintf("Feedback(%q)", rune(f))
	}
}

// Score returns the feedback string a game shows for guess against answer.
// Greens are assigned first; yellows only consume letters the answer has left.
func Score(guess, answer string) (string, error) {
	g := []rune(guess)
	a := []rune(answer)
	if len(g) != len(a) {
		return "", fmt.Errorf("guess %q and answer %q have different lengths", guess, answer)
	}

	out := make([]rune, len(g))
	remaining := make(map[rune]int, len(a))
	for i := range g {
		if g[i] == a[i] {
			out[i] = rune(PresentRightPosition)
		} else {
			remaining[a[i]]++
		}
	}
	for i := range g {
		if out[i] != 0 {
			continue
		}
		if remaining[g[i]] > 0 {
			out[i] = rune(PresentWrongPosition)
			remaining[g[i]]--
			continue
		}
		out[i] = rune(Exclude)
	}
	return string(out), nil
}
