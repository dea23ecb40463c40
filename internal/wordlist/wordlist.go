// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	"os"
	"sort"
)

const maxTokenSize = 1 << 20

// Dictionary is an immutable set of words.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary builds a Dictionary from words, dropping duplicates.
func NewDictionary(words ...string) Dictionary {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return Dictionary{words: set}
}

// Len returns the number of unique words.
func (d Dictionary) Len() int {
	return len(d.words)
}

// Contains reports whether word is in the dictionary.
func (d Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Words returns the words sorted lexicographically. The slice is a copy.
func (d Dictionary) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Load reads whitespace-separated tokens from path into a Dictionary.
// Tokens are kept verbatim.
func Load(path string) (Dictionary, error) {
	return LoadFiltered(path, nil)
}

// LoadFiltered is Load with a token filter; a nil filter keeps every token.
func LoadFiltered(path string, keep FilterFunc) (Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dictionary{}, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words := map[string]struct{}{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		token := scanner.Text()
		if keep != nil && !keep(token) {
			continue
		}
		words[token] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return Dictionary{}, err
	}
	return Dictionary{words: words}, nil
}
