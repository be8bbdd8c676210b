package todo

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeTodoFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write todo file: %v", err)
	}
	return path
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")

	m := NewManager()
	m.Add("buy milk")
	m.Add("walk dog")
	m.Add("write report")
	m.Complete(2)
	m.Delete(1)

	if err := m.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, result := Load(path)
	if result.Outcome != LoadOK {
		t.Fatalf("Outcome = %s, err = %v", result.Outcome, result.Err)
	}
	if result.Count != 2 {
		t.Errorf("Count = %d, want 2", result.Count)
	}
	if !slices.Equal(loaded.Items(), m.Items()) {
		t.Errorf("items = %+v, want %+v", loaded.Items(), m.Items())
	}

	// The free pool is rebuilt from the gaps, not persisted.
	if got := loaded.Add("new"); got.ID != 1 {
		t.Errorf("id after reload = %d, want 1", got.ID)
	}
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	m := NewManager()
	m.Add("x")
	if err := m.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "[\n  {\n    \"id\": 1,\n    \"title\": \"x\",\n    \"status\": \"Pending\"\n  }\n]\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("temporary file left behind: %v", err)
	}
}

func TestSaveEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	if err := NewManager().Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("file = %q, want []", data)
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "todos.json")
	m := NewManager()
	m.Add("x")
	if err := m.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestSaveFailsWhenParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	m.Add("x")
	err := m.Save(filepath.Join(blocker, "todos.json"))
	if err == nil {
		t.Fatal("Save() error = nil, want error")
	}
	// The in-memory state is kept.
	if m.Len() != 1 {
		t.Errorf("Len() = %d after failed save, want 1", m.Len())
	}
}

func TestLoadGapAssignsSmallestFreeID(t *testing.T) {
	path := writeTodoFile(t, `[{"id":2,"title":"only","status":"Pending"}]`)

	m, result := Load(path)
	if result.FellBack() {
		t.Fatalf("Load() fell back: %v", result.Err)
	}
	if got := m.Add("new"); got.ID != 1 {
		t.Errorf("new id = %d, want 1", got.ID)
	}
	if got := m.Add("newer"); got.ID != 3 {
		t.Errorf("next id = %d, want 3", got.ID)
	}
}

func TestLoadThenDeleteReusesDeletedIDFirst(t *testing.T) {
	path := writeTodoFile(t, `[{"id":2,"title":"only","status":"Pending"}]`)

	m, _ := Load(path)
	m.Delete(2)
	if got := m.Add("new"); got.ID != 2 {
		t.Errorf("new id = %d, want 2", got.ID)
	}
	if got := m.Add("newer"); got.ID != 1 {
		t.Errorf("next id = %d, want 1", got.ID)
	}
}

func TestLoadKeepsItemsWithExtraFields(t *testing.T) {
	path := writeTodoFile(t, `[{"id":1,"title":"keep me","status":"Pending","note":"x"}]`)

	m, result := Load(path)
	if result.Outcome != LoadOK {
		t.Fatalf("Outcome = %s, want ok (err %v)", result.Outcome, result.Err)
	}
	m.Add("new")
	if err := m.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := LoadStrict(path)
	if err != nil {
		t.Fatalf("LoadStrict() error = %v", err)
	}
	want := []Item{
		{ID: 1, Title: "keep me", Status: StatusPending},
		{ID: 2, Title: "new", Status: StatusPending},
	}
	if got := reloaded.Items(); !slices.Equal(got, want) {
		t.Errorf("items = %+v, want %+v", got, want)
	}
}

func TestLoadLargestIDKeepsAllocatorSmall(t *testing.T) {
	path := writeTodoFile(t, `[{"id":2147483647,"title":"far","status":"Pending"}]`)

	m, result := Load(path)
	if result.FellBack() {
		t.Fatalf("Load() fell back: %v", result.Err)
	}
	alloc := m.Allocator()
	if alloc.FreeCount() != 2147483646 {
		t.Errorf("FreeCount() = %d, want 2147483646", alloc.FreeCount())
	}
	if got := m.Add("near"); got.ID != 1 {
		t.Errorf("new id = %d, want 1", got.ID)
	}
}

func TestLoadFallsBackToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    LoadOutcome
	}{
		{"corrupt", "{not json", LoadMalformed},
		{"trailing data", `[] []`, LoadMalformed},
		{"object instead of array", `{"id":1}`, LoadInvalid},
		{"unknown status", `[{"id":1,"title":"a","status":"Done"}]`, LoadInvalid},
		{"zero id", `[{"id":0,"title":"a","status":"Pending"}]`, LoadInvalid},
		{"fractional id", `[{"id":1.5,"title":"a","status":"Pending"}]`, LoadInvalid},
		{"missing title", `[{"id":1,"status":"Pending"}]`, LoadInvalid},
		{"id out of range", `[{"id":100000000000,"title":"a","status":"Pending"}]`, LoadInvalid},
		{"duplicate ids", `[{"id":1,"title":"a","status":"Pending"},{"id":1,"title":"b","status":"Pending"}]`, LoadInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, result := Load(writeTodoFile(t, tt.content))
			if result.Outcome != tt.want {
				t.Errorf("Outcome = %s, want %s (err %v)", result.Outcome, tt.want, result.Err)
			}
			if !result.FellBack() || result.Err == nil {
				t.Errorf("expected fallback with error, got %+v", result)
			}
			if m == nil || m.Len() != 0 {
				t.Fatalf("manager = %+v, want empty", m)
			}
			alloc := m.Allocator()
			if alloc.Counter() != 1 || len(alloc.Free()) != 0 {
				t.Errorf("allocator next=%d free=%v, want 1 and none", alloc.Counter(), alloc.Free())
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	m, result := Load(path)
	if result.Outcome != LoadMissing {
		t.Errorf("Outcome = %s, want missing", result.Outcome)
	}
	if !errors.Is(result.Err, fs.ErrNotExist) {
		t.Errorf("Err = %v, want fs.ErrNotExist", result.Err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}

func TestLoadEmptyFile(t *testing.T) {
	for _, content := range []string{"", "  \n", "[]"} {
		m, result := Load(writeTodoFile(t, content))
		if result.Outcome != LoadOK {
			t.Errorf("Load(%q) outcome = %s, err = %v", content, result.Outcome, result.Err)
		}
		if m.Len() != 0 {
			t.Errorf("Load(%q) Len() = %d", content, m.Len())
		}
	}
}

func TestLoadStrict(t *testing.T) {
	if _, err := LoadStrict(writeTodoFile(t, "{bad")); err == nil {
		t.Error("LoadStrict() on corrupt file: error = nil")
	}
	if _, err := LoadStrict(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadStrict() on missing file: error = nil")
	}

	m, err := LoadStrict(writeTodoFile(t, `[{"id":3,"title":"a","status":"Completed"}]`))
	if err != nil {
		t.Fatalf("LoadStrict() error = %v", err)
	}
	if item, ok := m.Get(3); !ok || !item.Done() {
		t.Errorf("item = %+v, want completed id 3", item)
	}
}

func TestLoadOutcomeString(t *testing.T) {
	if LoadInvalid.String() != "invalid" {
		t.Errorf("LoadInvalid.String() = %q", LoadInvalid.String())
	}
	if LoadOutcome(42).String() != "LoadOutcome(42)" {
		t.Errorf("unknown outcome = %q", LoadOutcome(42).String())
	}
}
