package todo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadOutcome describes how a Load attempt went.
type LoadOutcome int

const (
	// LoadOK means the file was read and decoded. An empty file is LoadOK.
	LoadOK LoadOutcome = iota
	// LoadMissing means the file does not exist.
	LoadMissing
	// LoadUnreadable means the file exists but could not be read.
	LoadUnreadable
	// LoadMalformed means the file is not valid JSON.
	LoadMalformed
	// LoadInvalid means the file is JSON but violates the schema or has duplicate ids.
	LoadInvalid
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadUnreadable:
		return "unreadable"
	case LoadMalformed:
		return "malformed"
	case LoadInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("LoadOutcome(%d)", int(o))
	}
}

// LoadResult reports what Load did with a todo file.
type LoadResult struct {
	Path    string
	Outcome LoadOutcome
	Count   int   // number of items loaded
	Err     error // reason for the fallback; nil when Outcome is LoadOK
}

// FellBack reports whether the empty-on-error policy replaced the file's
// contents with an empty list.
func (r LoadResult) FellBack() bool {
	return r.Outcome != LoadOK
}

// Load reads the todo file at path. It never fails: when the file is
// missing, unreadable, malformed or invalid it returns an empty manager and
// records the reason in the LoadResult.
func Load(path string) (*Manager, LoadResult) {
	m, result := load(path)
	if result.FellBack() {
		return NewManager(), result
	}
	return m, result
}

// LoadStrict reads the todo file at path and returns an error instead of
// falling back to an empty manager.
func LoadStrict(path string) (*Manager, error) {
	m, result := load(path)
	if result.FellBack() {
		return nil, result.Err
	}
	return m, nil
}

func load(path string) (*Manager, LoadResult) {
	result := LoadResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Outcome = LoadUnreadable
		if errors.Is(err, fs.ErrNotExist) {
			result.Outcome = LoadMissing
		}
		result.Err = fmt.Errorf("read todo file: %w", err)
		return nil, result
	}

	validation := Validate(data)
	if !validation.Valid {
		result.Outcome = LoadInvalid
		if validation.Syntax != nil {
			result.Outcome = LoadMalformed
		}
		result.Err = validation.Err()
		return nil, result
	}

	var items []Item
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &items); err != nil {
			result.Outcome = LoadMalformed
			result.Err = fmt.Errorf("parse todo file: %w", err)
			return nil, result
		}
	}

	m := NewManager()
	m.items = items
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	m.alloc.Rebuild(ids)

	result.Count = len(items)
	return m, result
}

// Save writes the items (not the allocator state) to path as indented JSON.
// Missing parent directories are created. The file is written to a
// temporary sibling and renamed into place.
func (m *Manager) Save(path string) error {
	items := m.items
	if items == nil {
		items = []Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal todo file: %w", err)
	}

	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create todo dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write todo file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace todo file: %w", err)
	}

	return nil
}
