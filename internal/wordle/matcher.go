package wordle

import (
	"context"

	"github.com/samber/lo"

	"github.com/verte-zerg/wordhelp/internal/scan"
	"github.com/verte-zerg/wordhelp/internal/wordlist"
)

// ExcludeMode selects how gray letters interact with green and yellow ones.
type ExcludeMode int

const (
	// ExcludeStrict rejects any word containing a gray letter, even one that
	// another row marks green or yellow.
	ExcludeStrict ExcludeMode = iota
	// ExcludeRelaxed ignores gray letters that any row marked green or yellow.
	ExcludeRelaxed
)

func (m ExcludeMode) String() string {
	if m == ExcludeRelaxed {
		return "relaxed"
	}
	return "strict"
}

// MatchOptions configures Filter.
type MatchOptions struct {
	Mode ExcludeMode
	Scan scan.Options
}

// Matcher tests words against a ConstraintSet. It is safe for concurrent use.
type Matcher struct {
	excluded map[rune]struct{}
	green    map[int]rune
	yellow   map[int]rune
}

// NewMatcher prepares cs for matching under mode.
func NewMatcher(cs ConstraintSet, mode ExcludeMode) *Matcher {
	excluded := cs.excluded
	if mode == ExcludeRelaxed {
		excluded = lo.OmitByKeys(cs.excluded, lo.Keys(cs.present))
	}
	return &Matcher{
		excluded: excluded,
		green:    cs.green,
		yellow:   cs.yellow,
	}
}

// Match reports whether word satisfies every gray, yellow and green constraint.
// Positions past the end of word never hold a letter.
func (m *Matcher) Match(word string) bool {
	runes := []rune(word)
	letters := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		if _, gray := m.excluded[r]; gray {
			return false
		}
		letters[r] = struct{}{}
	}
	for pos, r := range m.yellow {
		if _, ok := letters[r]; !ok {
			return false
		}
		if pos < len(runes) && runes[pos] == r {
			return false
		}
	}
	for pos, r := range m.green {
		if pos >= len(runes) || runes[pos] != r {
			return false
		}
	}
	return true
}

// Match is a one-off form of NewMatcher(cs, mode).Match(word).
func Match(word string, cs ConstraintSet, mode ExcludeMode) bool {
	return NewMatcher(cs, mode).Match(word)
}

// Filter returns the words of dict that satisfy cs, sorted lexicographically.
func Filter(ctx context.Context, dict wordlist.Dictionary, cs ConstraintSet, opts MatchOptions) ([]string, error) {
	m := NewMatcher(cs, opts.Mode)
	return scan.Filter(ctx, dict.Words(), m.Match, opts.Scan)
}
