package todo

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestStatusValid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusCompleted, true},
		{Status("pending"), false},
		{Status("Done"), false},
		{Status(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItemJSON(t *testing.T) {
	t.Run("marshals wire field names", func(t *testing.T) {
		data, err := json.Marshal(Item{ID: 7, Title: "buy milk", Status: StatusCompleted})
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		want := `{"id":7,"title":"buy milk","status":"Completed"}`
		if string(data) != want {
			t.Errorf("got %s, want %s", data, want)
		}
	})

	t.Run("unmarshals known status", func(t *testing.T) {
		var item Item
		if err := json.Unmarshal([]byte(`{"id":2,"title":"only","status":"Pending"}`), &item); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		want := Item{ID: 2, Title: "only", Status: StatusPending}
		if item != want {
			t.Errorf("got %+v, want %+v", item, want)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		var item Item
		err := json.Unmarshal([]byte(`{"id":1,"title":"x","status":"Done"}`), &item)
		if err == nil {
			t.Fatal("expected error for unknown status")
		}
		if !strings.Contains(err.Error(), "invalid status") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("refuses to marshal invalid status", func(t *testing.T) {
		if _, err := json.Marshal(Item{ID: 1, Title: "x", Status: "bogus"}); err == nil {
			t.Fatal("expected marshal error for invalid status")
		}
	})
}

func TestItemDone(t *testing.T) {
	if (Item{Status: StatusPending}).Done() {
		t.Error("pending item reported done")
	}
	if !(Item{Status: StatusCompleted}).Done() {
		t.Error("completed item not reported done")
	}
}

func TestValidationError(t *testing.T) {
	base := errors.New("missing property")
	err := &ValidationError{Path: "[0].title", Err: base}
	if err.Error() != "[0].title: missing property" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("expected Unwrap to expose the base error")
	}

	noPath := &ValidationError{Err: base}
	if noPath.Error() != "missing property" {
		t.Errorf("Error() without path = %q", noPath.Error())
	}
}
