package ast

// Slot is a write-once annotation cell.
// The pass that owns an annotation fills it once; every later pass only reads it.
type Slot[T any] struct {
	value T
	set   bool
}

// Set stores v if the slot is still empty and reports whether it did.
// A second Set leaves the first value in place.
func (s *Slot[T]) Set(v T) bool {
	if s.set {
		return false
	}
	s.value = v
	s.set = true
	return true
}

// Get returns the stored value and whether one was stored.
func (s *Slot[T]) Get() (T, bool) {
	return s.value, s.set
}

// IsSet reports whether the slot has been filled.
func (s *Slot[T]) IsSet() bool {
	return s.set
}

// Value returns the stored value or the zero value.
func (s *Slot[T]) Value() T {
	return s.value
}
