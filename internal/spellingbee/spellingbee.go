// Package spellingbee finds dictionary words that can be spelled from a
// Spelling Bee hive: a required letter plus a set of optional letters.
package spellingbee

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/verte-zerg/wordhelp/internal/scan"
	"github.com/verte-zerg/wordhelp/internal/wordlist"
)

// MinWordLength is the shortest accepted answer.
const MinWordLength = 4

// ErrRequiredLetter reports a required letter that is not a single character.
var ErrRequiredLetter = errors.New("required letter must be exactly one character")

// LetterSet is the set of letters a word may use.
type LetterSet struct {
	letters map[rune]struct{}
}

// NewLetterSet returns the allowed letters: required plus every character of optional.
func NewLetterSet(required rune, optional string) LetterSet {
	letters := map[rune]struct{}{required: {}}
	for _, r := range optional {
		letters[r] = struct{}{}
	}
	return LetterSet{letters: letters}
}

// Contains reports whether r is allowed.
func (s LetterSet) Contains(r rune) bool {
	_, ok := s.letters[r]
	return ok
}

// Len returns the number of distinct allowed letters.
func (s LetterSet) Len() int {
	return len(s.letters)
}

func (s LetterSet) String() string {
	letters := lo.Keys(s.letters)
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

// ParseRequired validates the -req argument.
func ParseRequired(value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("%w: got %q", ErrRequiredLetter, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

// Matches reports whether word uses only allowed letters, contains required,
// and is at least MinWordLength characters long. Repeated letters are fine.
func Matches(word string, letters LetterSet, required rune) bool {
	if utf8.RuneCountInString(word) < MinWordLength {
		return false
	}
	hasRequired := false
	for _, r := range word {
		if !letters.Contains(r) {
			return false
		}
		if r == required {
			hasRequired = true
		}
	}
	return hasRequired
}

// Filter returns the matching words of dict, longest first.
func Filter(ctx context.Context, dict wordlist.Dictionary, letters LetterSet, required rune, opts scan.Options) ([]string, error) {
	matches, err := scan.Filter(ctx, dict.Words(), func(w string) bool {
		return Matches(w, letters, required)
	}, opts)
	if err != nil {
		return nil, err
	}
	Rank(matches)
	return matches, nil
}

// Rank sorts words by length descending, then lexicographically.
func Rank(words []string) {
	sort.Slice(words, func(i, j int) bool {
		li := utf8.RuneCountInString(words[i])
		lj := utf8.RuneCountInString(words[j])
		if li == lj {
			return strings.Compare(words[i], words[j]) < 0
		}
		return li > lj
	})
}
