package todo

import "slices"

// Allocator hands out item ids. It combines a monotonic counter with a stack
// of free ids: released ids are pushed on top and reused last-in first-out,
// while gaps found on load sit below them, smallest first.
//
// The zero value is ready to use and starts at id 1.
type Allocator struct {
	next int
	// free is a stack of id ranges; the top is the last element and an id
	// is taken from the low end of its range. Released ids are one-id
	// ranges, gaps from Rebuild are stored as whole ranges.
	free []idRange
}

type idRange struct {
	lo, hi int
}

// NewAllocator returns an allocator whose first id is 1.
func NewAllocator() Allocator {
	return Allocator{next: 1}
}

// Next returns the id for a new item.
func (a *Allocator) Next() int {
	if n := len(a.free); n > 0 {
		top := &a.free[n-1]
		id := top.lo
		if top.lo == top.hi {
			a.free = a.free[:n-1]
		} else {
			top.lo++
		}
		return id
	}
	if a.next < 1 {
		a.next = 1
	}
	id := a.next
	a.next++
	return id
}

// Release pushes id onto the free stack. Ids that were never handed out or
// are already free are ignored.
func (a *Allocator) Release(id int) {
	if id < 1 || id >= a.next || a.isFree(id) {
		return
	}
	a.free = append(a.free, idRange{lo: id, hi: id})
}

func (a *Allocator) isFree(id int) bool {
	return slices.ContainsFunc(a.free, func(r idRange) bool {
		return r.lo <= id && id <= r.hi
	})
}

// Rebuild resets the allocator from the ids of loaded items: the counter
// becomes max(ids)+1 and every unused id in [1, max(ids)] becomes free,
// to be handed out in ascending order.
func (a *Allocator) Rebuild(ids []int) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	a.free = a.free[:0]
	prev := 0
	for _, id := range sorted {
		if id > prev+1 {
			a.free = append(a.free, idRange{lo: prev + 1, hi: id - 1})
		}
		prev = id
	}
	// Lowest range on top.
	slices.Reverse(a.free)
	a.next = prev + 1
}

// Counter returns the id the counter will hand out once the stack is empty.
func (a *Allocator) Counter() int {
	if a.next < 1 {
		return 1
	}
	return a.next
}

// Peek returns the id the next call to Next will hand out.
func (a *Allocator) Peek() int {
	if n := len(a.free); n > 0 {
		return a.free[n-1].lo
	}
	return a.Counter()
}

// FreeCount returns the number of free ids below the counter.
func (a *Allocator) FreeCount() int {
	count := 0
	for _, r := range a.free {
		count += r.hi - r.lo + 1
	}
	return count
}

// Free returns the free ids in the order they will be reused.
func (a *Allocator) Free() []int {
	out := make([]int, 0, a.FreeCount())
	for i := len(a.free) - 1; i >= 0; i-- {
		for id := a.free[i].lo; id <= a.free[i].hi; id++ {
			out = append(out, id)
		}
	}
	return out
}

func (a Allocator) clone() Allocator {
	a.free = slices.Clone(a.free)
	return a
}
