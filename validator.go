package ordantic

import "iter"

// Validator is an opaque validator object handed to the foreign validation
// protocol.
type Validator interface {
	Validate(value any) error
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(value any) error

// Validate calls f(value).
func (f ValidatorFunc) Validate(value any) error { return f(value) }

// ValidatorSequence is a forward-only, single-pass sequence of validators.
// Once exhausted it stays exhausted; build a new sequence to iterate again.
// It is not safe for concurrent consumers.
type ValidatorSequence struct {
	items []Validator
	next  int
}

// NewValidatorSequence takes ownership of items.
func NewValidatorSequence(items []Validator) *ValidatorSequence {
	return &ValidatorSequence{items: items}
}

// Iter returns s itself, mirroring the foreign __iter__ contract.
func (s *ValidatorSequence) Iter() *ValidatorSequence {
	return s
}

// Next returns the next validator, or false once the sequence is exhausted.
func (s *ValidatorSequence) Next() (Validator, bool) {
	if s.next >= len(s.items) {
		return nil, false
	}

	v := s.items[s.next]
	s.items[s.next] = nil
	s.next++

	return v, true
}

// Remaining returns the number of validators not yet consumed.
func (s *ValidatorSequence) Remaining() int {
	return len(s.items) - s.next
}

// Exhausted reports whether every validator has been consumed.
func (s *ValidatorSequence) Exhausted() bool {
	return s.Remaining() == 0
}

// All consumes the remaining validators.
func (s *ValidatorSequence) All() iter.Seq[Validator] {
	return func(yield func(Validator) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
