package settings

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("missing file must load as empty document: %v", err)
	}
	if len(doc.Hooks) != 0 || len(doc.Extra) != 0 {
		t.Errorf("got non-empty document: %+v", doc)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var ioErr *ConfigIOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("got %T (%v), want *ConfigIOError", err, err)
	}
	if ioErr.Op != "parse" {
		t.Errorf("got op %q, want parse", ioErr.Op)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude", "settings.json")

	doc := NewDocument()
	doc.Hooks["PreToolUse"] = []MatcherGroup{
		{Matcher: "Bash", Hooks: []Action{{Type: "command", Command: "hookline execute guard", Timeout: 10}}},
	}
	doc.Extra["model"] = []byte(`"sonnet"`)

	if err := Save(path, doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Hooks["PreToolUse"]) != 1 {
		t.Errorf("hooks section lost: %+v", loaded.Hooks)
	}
	if string(loaded.Extra["model"]) != `"sonnet"` {
		t.Errorf("extra key lost: %s", loaded.Extra["model"])
	}

	// Saving what we loaded must reproduce the file byte-for-byte.
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(path, loaded); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("save/load/save is not stable:\n%s\nvs\n%s", first, second)
	}
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := Save(path, NewDocument()); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "settings.json" {
			t.Errorf("unexpected file left behind: %s", e.Name())
		}
	}
}
