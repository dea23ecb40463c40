package wordle

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/verte-zerg/wordhelp/internal/scan"
	"github.com/verte-zerg/wordhelp/internal/wordlist"
)

func TestFilterScenario(t *testing.T) {
	is := is.New(t)
	cs, err := Build([]string{"adieu", "XYXXY", "bound", "XGGGG"})
	is.NoErr(err)

	dict := wordlist.NewDictionary("sound", "bound", "found")
	got, err := Filter(context.Background(), dict, cs, MatchOptions{})
	is.NoErr(err)
	is.Equal(got, []string{"found", "sound"})
	is.True(!Match("bound", cs, ExcludeStrict))
	is.True(!Match("bound", cs, ExcludeRelaxed))
}

func TestStrictAndRelaxedExclusion(t *testing.T) {
	is := is.New(t)
	// "eerie" against "there": the second e is gray although e is present.
	cs, err := Build([]string{"eerie", "YXYXG"})
	is.NoErr(err)
	is.True(cs.IsExcluded('e'))

	is.True(!Match("there", cs, ExcludeStrict))
	is.True(Match("there", cs, ExcludeRelaxed))

	// Gray letters that are never green or yellow stay excluded.
	is.True(!Match("thire", cs, ExcludeRelaxed))
}

func TestMatchChecks(t *testing.T) {
	cs, err := Build([]string{"adieu", "XYXXY", "bound", "XGGGG"})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	cases := []struct {
		word string
		want bool
	}{
		{"sound", true},
		{"mound", true},
		{"wound", true},
		{"pound", true},
		{"round", true},
		{"dound", true},
		{"sounds", true}, // letters past the constrained positions are fine
		{"soun", false},  // green position 4 missing
		{"sonud", false}, // green mismatch
		{"saund", false}, // gray a
		{"sourd", false}, // green n missing
	}
	for _, tc := range cases {
		if got := Match(tc.word, cs, ExcludeStrict); got != tc.want {
			t.Fatalf("Match(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestYellowRequiresPresenceAndWrongPosition(t *testing.T) {
	is := is.New(t)
	cs, err := Build([]string{"xaxxx", "XYXXX"})
	is.NoErr(err)
	is.True(!Match("bbbbb", cs, ExcludeStrict)) // a missing
	is.True(!Match("bazzz", cs, ExcludeStrict)) // a at the yellow position
	is.True(Match("abzzz", cs, ExcludeStrict))
	is.True(Match("zza", cs, ExcludeStrict)) // position 1 exists and is not a
	is.True(!Match("z", cs, ExcludeStrict))  // a missing entirely
}

func TestEmptyConstraintsMatchEverything(t *testing.T) {
	is := is.New(t)
	dict := wordlist.NewDictionary("crane", "slate", "a")
	got, err := Filter(context.Background(), dict, ConstraintSet{}, MatchOptions{})
	is.NoErr(err)
	is.Equal(got, []string{"a", "crane", "slate"})
}

func randomWords(rnd *rand.Rand, n int) []string {
	const alphabet = "abcdeimnorstu"
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var b strings.Builder
		for j := 0; j < 5; j++ {
			b.WriteByte(alphabet[rnd.Intn(len(alphabet))])
		}
		words = append(words, b.String())
	}
	return words
}

func TestFilterInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	words := randomWords(rnd, 20000)
	dict := wordlist.NewDictionary(words...)

	for trial := 0; trial < 20; trial++ {
		answer := words[rnd.Intn(len(words))]
		var board []string
		for g := 0; g < 2; g++ {
			guess := words[rnd.Intn(len(words))]
			feedback, err := Score(guess, answer)
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}
			board = append(board, guess, feedback)
		}
		cs, err := Build(board)
		if err != nil {
			t.Fatalf("Build(%v) failed: %v", board, err)
		}

		for _, mode := range []ExcludeMode{ExcludeStrict, ExcludeRelaxed} {
			serial, err := Filter(context.Background(), dict, cs, MatchOptions{Mode: mode, Scan: scan.Options{Workers: 1}})
			if err != nil {
				t.Fatalf("Filter failed: %v", err)
			}
			parallel, err := Filter(context.Background(), dict, cs, MatchOptions{Mode: mode, Scan: scan.Options{Workers: 6, ChunkSize: 100}})
			if err != nil {
				t.Fatalf("parallel Filter failed: %v", err)
			}
			if strings.Join(serial, ",") != strings.Join(parallel, ",") {
				t.Fatalf("parallel scan changed the %s result", mode)
			}
			for _, w := range serial {
				runes := []rune(w)
				for pos, r := range cs.Green() {
					if runes[pos] != r {
						t.Fatalf("%q violates green %d=%q", w, pos, r)
					}
				}
				for pos, r := range cs.Yellow() {
					if !strings.ContainsRune(w, r) || runes[pos] == r {
						t.Fatalf("%q violates yellow %d=%q", w, pos, r)
					}
				}
				if mode == ExcludeStrict {
					for _, r := range cs.Excluded() {
						if strings.ContainsRune(w, r) {
							t.Fatalf("%q contains gray letter %q", w, r)
						}
					}
				}
			}
			if mode == ExcludeRelaxed {
				found := false
				for _, w := range serial {
					if w == answer {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("relaxed filter dropped the answer %q for board %v", answer, board)
				}
			}
		}
	}
}
