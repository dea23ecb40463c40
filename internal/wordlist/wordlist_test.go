package wordlist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	return path
}

func TestLoadDeduplicatesWhitespaceTokens(t *testing.T) {
	path := writeList(t, "bale able\n\n  cable\tbale\r\nable   Apple\n")
	dict, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if dict.Len() != 4 {
		t.Fatalf("expected 4 unique words, got %d", dict.Len())
	}
	want := []string{"Apple", "able", "bale", "cable"}
	if got := dict.Words(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if !dict.Contains("Apple") || dict.Contains("apple") {
		t.Fatalf("expected tokens to be kept verbatim")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dict, err := Load(writeList(t, " \n\t\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if dict.Len() != 0 {
		t.Fatalf("expected empty dictionary, got %d words", dict.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadFiltered(t *testing.T) {
	path := writeList(t, "hello World co-op hello abc\n")
	dict, err := LoadFiltered(path, IsLowerASCII)
	if err != nil {
		t.Fatalf("LoadFiltered failed: %v", err)
	}
	want := []string{"abc", "hello"}
	if got := dict.Words(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	dict := NewDictionary("b", "a", "b")
	words := dict.Words()
	words[0] = "z"
	if !dict.Contains("a") || dict.Contains("z") {
		t.Fatalf("mutating Words() result must not affect the dictionary")
	}
	if dict.Len() != 2 {
		t.Fatalf("expected 2 words, got %d", dict.Len())
	}
}
