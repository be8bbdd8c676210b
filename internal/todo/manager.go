package todo

import (
	"iter"
	"slices"
)

// Manager owns the ordered item collection and the id allocator.
// It is not safe for concurrent use; a single session owns it.
type Manager struct {
	items []Item
	alloc Allocator
}

// NewManager returns an empty manager whose first id is 1.
func NewManager() *Manager {
	return &Manager{alloc: NewAllocator()}
}

// Add appends a new pending item and returns it.
func (m *Manager) Add(title string) Item {
	item := Item{
		ID:     m.alloc.Next(),
		Title:  title,
		Status: StatusPending,
	}
	m.items = append(m.items, item)
	return item
}

// Delete removes the item with the given id and frees the id for reuse.
// It returns false and leaves the collection untouched if no item matches.
func (m *Manager) Delete(id int) bool {
	idx := m.index(id)
	if idx < 0 {
		return false
	}
	m.items = slices.Delete(m.items, idx, idx+1)
	m.alloc.Release(id)
	return true
}

// Complete marks the item with the given id as completed.
// Completing an already completed item is a no-op that still returns true.
func (m *Manager) Complete(id int) bool {
	idx := m.index(id)
	if idx < 0 {
		return false
	}
	m.items[idx].Status = StatusCompleted
	return true
}

// List returns the items in collection order. The boolean is false when
// there are no items.
func (m *Manager) List() (iter.Seq[Item], bool) {
	seq := func(yield func(Item) bool) {
		for _, item := range m.items {
			if !yield(item) {
				return
			}
		}
	}
	return seq, len(m.items) > 0
}

// Get returns the item with the given id.
func (m *Manager) Get(id int) (Item, bool) {
	idx := m.index(id)
	if idx < 0 {
		return Item{}, false
	}
	return m.items[idx], true
}

// Items returns a copy of the collection.
func (m *Manager) Items() []Item {
	return slices.Clone(m.items)
}

// Len returns the number of items.
func (m *Manager) Len() int {
	return len(m.items)
}

// Allocator returns a copy of the allocator state.
func (m *Manager) Allocator() Allocator {
	return m.alloc.clone()
}

func (m *Manager) index(id int) int {
	return slices.IndexFunc(m.items, func(item Item) bool {
		return item.ID == id
	})
}
