package gui

import (
	"fmt"
	"iter"
)

// Key identifies a widget in a Set. The zero Key identifies nothing.
type Key struct {
	idx uint32
}

// Valid reports whether k was returned by Set.Add.
func (k Key) Valid() bool {
	return k.idx != 0
}

// Index returns the registration index of k, or -1 for the zero Key.
func (k Key) Index() int {
	return int(k.idx) - 1
}

func (k Key) String() string {
	if !k.Valid() {
		return "Key(none)"
	}
	return fmt.Sprintf("Key(%d)", k.idx-1)
}

// Set is an ordered collection of widgets with stable keys. Removed
// slots are never reused, so a key never resolves to a widget other
// than the one it was issued for, and iteration follows registration
// order.
//
// Pointers returned by Get and All are valid until the next Add.
type Set[T any] struct {
	slots []slot[T]
	n     int
}

type slot[T any] struct {
	w    T
	live bool
}

// Add registers w and returns its key.
func (s *Set[T]) Add(w T) Key {
	s.slots = append(s.slots, slot[T]{w: w, live: true})
	s.n++
	return Key{idx: uint32(len(s.slots))}
}

// Remove unregisters the widget identified by k. It reports whether
// the widget was present.
func (s *Set[T]) Remove(k Key) bool {
	sl := s.slot(k)
	if sl == nil {
		return false
	}
	var zero T
	*sl = slot[T]{w: zero}
	s.n--
	return true
}

// Get returns the widget identified by k.
func (s *Set[T]) Get(k Key) (*T, bool) {
	sl := s.slot(k)
	if sl == nil {
		return nil, false
	}
	return &sl.w, true
}

func (s *Set[T]) slot(k Key) *slot[T] {
	if s == nil || !k.Valid() || int(k.idx) > len(s.slots) {
		return nil
	}
	sl := &s.slots[k.idx-1]
	if !sl.live {
		return nil
	}
	return sl
}

// Len returns the number of registered widgets.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// All iterates over the registered widgets in registration order.
func (s *Set[T]) All() iter.Seq2[Key, *T] {
	return func(yield func(Key, *T) bool) {
		if s == nil {
			return
		}
		for i := range s.slots {
			sl := &s.slots[i]
			if !sl.live {
				continue
			}
			if !yield(Key{idx: uint32(i + 1)}, &sl.w) {
				return
			}
		}
	}
}
