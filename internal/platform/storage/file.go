package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const stateFileName = "state.json"

// File is a Store backed by a single JSON file in the state directory.
// Absent or corrupt state starts empty rather than failing.
type File struct {
	path   string
	mu     sync.Mutex
	values map[string]json.RawMessage
}

// NewFile opens (or initializes) the file store rooted at dir.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}

	f := &File{
		path:   filepath.Join(dir, stateFileName),
		values: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(f.path)
	switch {
	case os.IsNotExist(err):
		// first run
	case err != nil:
		return nil, fmt.Errorf("reading state file: %w", err)
	default:
		if err := json.Unmarshal(data, &f.values); err != nil {
			slog.Warn("state file is corrupt, starting empty", "path", f.path, "error", err)
			f.values = make(map[string]json.RawMessage)
		}
	}

	return f, nil
}

func (f *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (f *File) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}
	f.values[key] = json.RawMessage(value)
	return f.flush()
}

func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.flush()
}

// flush rewrites the whole file. Callers hold f.mu.
func (f *File) flush() error {
	data, err := json.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
