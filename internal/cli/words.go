package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/wordhelp/internal/config"
	"github.com/verte-zerg/wordhelp/internal/wordlist"
)

// LoadDictionary resolves path against the word list directory and loads it.
// With clean set, tokens that are not lowercase a-z are dropped.
func LoadDictionary(path string, clean bool) (wordlist.Dictionary, error) {
	if strings.TrimSpace(path) == "" {
		return wordlist.Dictionary{}, fmt.Errorf("--words_file must not be empty")
	}
	resolved := config.ResolveWordListPath(path)
	var filter wordlist.FilterFunc
	if clean {
		filter = wordlist.IsLowerASCII
	}

	start := time.Now()
	dict, err := wordlist.LoadFiltered(resolved, filter)
	if err != nil {
		return wordlist.Dictionary{}, wordListLoadError(path, err)
	}
	log.Debug().
		Str("path", resolved).
		Int("words", dict.Len()).
		Bool("clean", clean).
		Dur("elapsed", time.Since(start)).
		Msg("dictionary loaded")
	return dict, nil
}

type loadError struct {
	msg string
	err error
}

func (e *loadError) Error() string { return e.msg }
func (e *loadError) Unwrap() error { return e.err }

func wordListLoadError(path string, err error) error {
	lines := []string{fmt.Sprintf("failed to load word list: %v", err)}
	for _, candidate := range config.WordListCandidates(path) {
		lines = append(lines, fmt.Sprintf("looked for word list at: %s", candidate))
	}
	lines = append(lines, "Pass a word list with --words_file <path>")
	return &loadError{msg: strings.Join(lines, "\n"), err: err}
}
