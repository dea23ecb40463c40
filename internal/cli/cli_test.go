package cli

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLogging(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	prevLogger := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevLevel)
		log.Logger = prevLogger
	})

	var buf bytes.Buffer
	if err := SetupLogging(&buf, "info"); err != nil {
		t.Fatalf("SetupLogging failed: %v", err)
	}
	log.Debug().Msg("hidden")
	log.Info().Str("path", "words.txt").Msg("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message should be filtered: %s", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "words.txt") {
		t.Fatalf("expected info message in output: %s", out)
	}

	if err := SetupLogging(&buf, "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLoadDictionary(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("able Bale bale co-op\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}

	dict, err := LoadDictionary(path, false)
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}
	if dict.Len() != 4 {
		t.Fatalf("expected 4 words, got %d", dict.Len())
	}

	dict, err = LoadDictionary(path, true)
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}
	if dict.Len() != 2 || !dict.Contains("able") || !dict.Contains("bale") {
		t.Fatalf("expected clean dictionary {able, bale}, got %v", dict.Words())
	}
}

func TestLoadDictionaryMissing(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	_, err := LoadDictionary("missing-list.txt", false)
	if err == nil {
		t.Fatalf("expected error for missing word list")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist in chain, got %v", err)
	}
	if !strings.Contains(err.Error(), "looked for word list at: missing-list.txt") {
		t.Fatalf("expected candidate paths in message: %v", err)
	}
	if _, err := LoadDictionary("  ", false); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestEnsureConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := EnsureConfigFile(path, "# first\n"); err != nil {
		t.Fatalf("EnsureConfigFile failed: %v", err)
	}
	if err := EnsureConfigFile(path, "# second\n"); err != nil {
		t.Fatalf("EnsureConfigFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != "# first\n" {
		t.Fatalf("existing config must not be overwritten, got %q", data)
	}
}
