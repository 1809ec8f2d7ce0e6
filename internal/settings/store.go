package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigIOError reports a settings document that could not be read, parsed,
// or written.
type ConfigIOError struct {
	Path string
	Op   string // read, parse, write
	Err  error
}

func (e *ConfigIOError) Error() string {
	return fmt.Sprintf("settings %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConfigIOError) Unwrap() error { return e.Err }

// DefaultPath returns the project-relative location of the host settings
// file.
func DefaultPath(projectDir string) string {
	return filepath.Join(projectDir, ".claude", "settings.json")
}

// Load reads the settings document at path. A missing file is not an error;
// it loads as an empty document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewDocument(), nil
	}
	if err != nil {
		return nil, &ConfigIOError{Path: path, Op: "read", Err: err}
	}

	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, &ConfigIOError{Path: path, Op: "parse", Err: err}
	}
	return doc, nil
}

// Marshal renders the document the way Save writes it.
func Marshal(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Save writes the document atomically: the rendered bytes go to a temporary
// file next to the target, which is then renamed over it. A crash mid-write
// cannot leave a truncated document behind.
func Save(path string, doc *Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return &ConfigIOError{Path: path, Op: "write", Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &ConfigIOError{Path: path, Op: "write", Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &ConfigIOError{Path: path, Op: "write", Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &ConfigIOError{Path: path, Op: "write", Err: err}
	}
	return nil
}
