package wordle

import (
	"errors"
	"maps"
	"sort"
	"unicode/utf8"
)

var (
	// ErrUnpaired reports a board with an odd number of tokens.
	ErrUnpaired = errors.New("unequal number of guesses and outputs!")
	// ErrLengthMismatch reports a guess and feedback of different lengths.
	ErrLengthMismatch = errors.New("guess and output are different lengths!")
	// ErrBadFeedback reports a feedback symbol outside X, Y and G.
	ErrBadFeedback = errors.New("outputs must be X,Y, or G!")
)

// ValidationError describes a malformed board. Pair is the zero-based index
// of the offending guess, or -1 when the board as a whole is malformed.
type ValidationError struct {
	Pair int
	Err  error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// GuessFeedback is one row of the board.
type GuessFeedback struct {
	Guess    string
	Feedback string
}

// Validate checks that the row is well formed.
func (gf GuessFeedback) Validate() error {
	if utf8.RuneCountInString(gf.Guess) != utf8.RuneCountInString(gf.Feedback) {
		return ErrLengthMismatch
	}
	for _, r := range gf.Feedback {
		if !Feedback(r).Valid() {
			return ErrBadFeedback
		}
	}
	return nil
}

// ConstraintSet is the accumulated knowledge of a board. It is read-only once built.
type ConstraintSet struct {
	excluded map[rune]struct{}
	present  map[rune]struct{}
	green    map[int]rune
	yellow   map[int]rune
}

// Build validates a flat [guess, feedback, guess, feedback, ...] board and folds it.
// No constraints are produced when any row is invalid.
func Build(tokens []string) (ConstraintSet, error) {
	pairs, err := Pairs(tokens)
	if err != nil {
		return ConstraintSet{}, err
	}
	return Fold(pairs), nil
}

// Pairs splits and validates a flat board.
func Pairs(tokens []string) ([]GuessFeedback, error) {
	if len(tokens)%2 != 0 {
		return nil, &ValidationError{Pair: -1, Err: ErrUnpaired}
	}
	pairs := make([]GuessFeedback, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		gf := GuessFeedback{Guess: tokens[i], Feedback: tokens[i+1]}
		if err := gf.Validate(); err != nil {
			return nil, &ValidationError{Pair: i / 2, Err: err}
		}
		pairs = append(pairs, gf)
	}
	return pairs, nil
}

// Fold applies rows in order. Within the green and yellow maps a later row
// overwrites an earlier one at the same position; excluded letters only accumulate.
// Rows are assumed valid.
func Fold(pairs []GuessFeedback) ConstraintSet {
	cs := ConstraintSet{
		excluded: map[rune]struct{}{},
		present:  map[rune]struct{}{},
		green:    map[int]rune{},
		yellow:   map[int]rune{},
	}
	for _, gf := range pairs {
		cs.apply(gf)
	}
	return cs
}

func (cs *ConstraintSet) apply(gf GuessFeedback) {
	feedback := []rune(gf.Feedback)
	pos := 0
	for _, letter := range gf.Guess {
		if pos >= len(feedback) {
			return
		}
		switch Feedback(feedback[pos]) {
		case Exclude:
			cs.excluded[letter] = struct{}{}
		case PresentWrongPosition:
			cs.yellow[pos] = letter
			cs.present[letter] = struct{}{}
		case PresentRightPosition:
			cs.green[pos] = letter
			cs.present[letter] = struct{}{}
		}
		pos++
	}
}

// Excluded returns the gray letters in ascending order.
func (cs ConstraintSet) Excluded() []rune {
	out := make([]rune, 0, len(cs.excluded))
	for r := range cs.excluded {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsExcluded reports whether r was marked gray by any row.
func (cs ConstraintSet) IsExcluded(r rune) bool {
	_, ok := cs.excluded[r]
	return ok
}

// Present returns, in ascending order, every letter any row marked green or
// yellow, including entries later overwritten at the same position.
func (cs ConstraintSet) Present() []rune {
	out := make([]rune, 0, len(cs.present))
	for r := range cs.present {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Green returns a copy of the position -> letter map of green letters.
func (cs ConstraintSet) Green() map[int]rune {
	out := maps.Clone(cs.green)
	if out == nil {
		out = map[int]rune{}
	}
	return out
}

// Yellow returns a copy of the position -> letter map of yellow letters.
func (cs ConstraintSet) Yellow() map[int]rune {
	out := maps.Clone(cs.yellow)
	if out == nil {
		out = map[int]rune{}
	}
	return out
}

// Positions returns every position with a green or yellow entry, ascending.
func (cs ConstraintSet) Positions() []int {
	seen := map[int]struct{}{}
	for pos := range cs.green {
		seen[pos] = struct{}{}
	}
	for pos := range cs.yellow {
		seen[pos] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for pos := range seen {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

// IsEmpty reports whether the set constrains nothing.
func (cs ConstraintSet) IsEmpty() bool {
	return len(cs.excluded) == 0 && len(cs.green) == 0 && len(cs.yellow) == 0
}
