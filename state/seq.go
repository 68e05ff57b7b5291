package state

import (
	"iter"
	"slices"
)

// Seq is an immutable ordered sequence of state values. The nil *Seq is an empty sequence.
type Seq struct {
	items []any
}

// SeqOf returns a sequence holding a copy of items.
func SeqOf(items ...any) *Seq {
	return &Seq{items: slices.Clone(items)}
}

// Len returns the number of elements.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// At returns the element at i, or nil when i is out of range.
func (s *Seq) At(i int) any {
	if s == nil || i < 0 || i >= len(s.items) {
		return nil
	}
	return s.items[i]
}

// InRange reports whether 0 <= i < Len().
func (s *Seq) InRange(i int) bool {
	return i >= 0 && i < s.Len()
}

// With returns a sequence of the same length with element i replaced by v.
// The receiver is returned when i is out of range or when v is Same as the current element.
func (s *Seq) With(i int, v any) *Seq {
	if !s.InRange(i) || Same(s.items[i], v) {
		return s
	}
	items := slices.Clone(s.items)
	items[i] = v
	return &Seq{items: items}
}

// Append returns a new sequence with vs added at the end.
func (s *Seq) Append(vs ...any) *Seq {
	if len(vs) == 0 && s != nil {
		return s
	}
	items := make([]any, 0, s.Len()+len(vs))
	if s != nil {
		items = append(items, s.items...)
	}
	return &Seq{items: append(items, vs...)}
}

// Remove returns a new sequence without element i. Out of range returns the receiver.
func (s *Seq) Remove(i int) *Seq {
	if !s.InRange(i) {
		return s
	}
	return &Seq{items: slices.Delete(slices.Clone(s.items), i, i+1)}
}

// Items returns a copy of the elements.
func (s *Seq) Items() []any {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

// All iterates over index/element pairs in order.
func (s *Seq) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		if s == nil {
			return
		}
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// String renders the sequence as JSON.
func (s *Seq) String() string {
	return render(s)
}
