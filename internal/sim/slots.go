package sim

import (
	"fmt"
	"iter"
)

// ID names an entity slot. Gen increases whenever the slot is reused, so a
// stale ID never resolves to a newer entity.
type ID struct {
	Index uint32
	Gen   uint32
}

func (id ID) String() string {
	return fmt.Sprintf("%d#%d", id.Index, id.Gen)
}

type slot[T any] struct {
	val  T
	gen  uint32
	live bool
}

// Slots is a slot map: stable IDs, O(1) insert and remove, and removal while
// ranging over All is safe.
type Slots[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// Insert stores v in a free slot, growing the map if none is available.
func (s *Slots[T]) Insert(v T) ID {
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		return s.fill(idx, v)
	}
	s.slots = append(s.slots, slot[T]{})
	return s.fill(uint32(len(s.slots)-1), v)
}

// InsertAt stores v in a specific slot. It fails if the slot is occupied.
func (s *Slots[T]) InsertAt(index int, v T) (ID, bool) {
	if index < 0 {
		return ID{}, false
	}
	for len(s.slots) <= index {
		s.slots = append(s.slots, slot[T]{})
		if len(s.slots)-1 != index {
			s.free = append(s.free, uint32(len(s.slots)-1))
		}
	}
	if s.slots[index].live {
		return ID{}, false
	}
	for i, f := range s.free {
		if int(f) == index {
			s.free = append(s.free[:i], s.free[i+1:]...)
			break
		}
	}
	return s.fill(uint32(index), v), true
}

func (s *Slots[T]) fill(idx uint32, v T) ID {
	sl := &s.slots[idx]
	sl.gen++
	sl.val = v
	sl.live = true
	s.count++
	return ID{Index: idx, Gen: sl.gen}
}

// Remove frees the slot named by id. Stale or unknown IDs are ignored.
func (s *Slots[T]) Remove(id ID) (T, bool) {
	var zero T
	if !s.valid(id) {
		return zero, false
	}
	sl := &s.slots[id.Index]
	v := sl.val
	sl.val = zero
	sl.live = false
	s.free = append(s.free, id.Index)
	s.count--
	return v, true
}

// Get returns a pointer to the live value named by id.
func (s *Slots[T]) Get(id ID) (*T, bool) {
	if !s.valid(id) {
		return nil, false
	}
	return &s.slots[id.Index].val, true
}

func (s *Slots[T]) valid(id ID) bool {
	return int(id.Index) < len(s.slots) && s.slots[id.Index].live && s.slots[id.Index].gen == id.Gen
}

func (s *Slots[T]) Len() int { return s.count }

// All yields live entries in slot order. Entries removed during iteration
// are skipped; entries inserted during iteration may or may not be visited.
func (s *Slots[T]) All() iter.Seq2[ID, *T] {
	return func(yield func(ID, *T) bool) {
		for i := range s.slots {
			sl := &s.slots[i]
			if !sl.live {
				continue
			}
			if !yield(ID{Index: uint32(i), Gen: sl.gen}, &sl.val) {
				return
			}
		}
	}
}

// Clear removes every entry. Generations are kept so old IDs stay stale.
func (s *Slots[T]) Clear() {
	var zero T
	s.free = s.free[:0]
	for i := len(s.slots) - 1; i >= 0; i-- {
		s.slots[i].val = zero
		s.slots[i].live = false
		s.free = append(s.free, uint32(i))
	}
	s.count = 0
}
