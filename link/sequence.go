package link

import (
	"github.com/goliatone/go-state-link/lens"
	"github.com/goliatone/go-state-link/state"
)

type sequenceOps struct {
	items *state.Seq
}

// Len returns the number of elements, or 0 when the value is not a sequence.
func (l *Link) Len() int {
	if l == nil || l.seq == nil {
		return 0
	}
	return l.seq.items.Len()
}

// Item returns the link for element i, or nil when the value is not a sequence or i is
// out of range.
func (l *Link) Item(i int) *Link {
	if l == nil || l.seq == nil || !l.seq.items.InRange(i) {
		return nil
	}
	return l.Apply(lens.ArrayItem(i))
}

// Items returns one link per element, in order. It is empty, never nil, when the value
// is not a sequence.
func (l *Link) Items() []*Link {
	if l == nil || l.seq == nil {
		return []*Link{}
	}
	out := make([]*Link, 0, l.seq.items.Len())
	for i := range l.seq.items.Len() {
		out = append(out, l.Apply(lens.ArrayItem(i)))
	}
	return out
}

// Find returns the link for the first element matching pred, or nil.
//
// The link is pinned to that element's index: its writes target the same position in
// whatever sequence the updater holds at write time, even if elements have moved since.
func (l *Link) Find(pred func(item any) bool) *Link {
	i := l.FindIndex(pred)
	if i < 0 {
		return nil
	}
	return l.Item(i)
}

// FindIndex returns the index of the first element matching pred, or -1.
func (l *Link) FindIndex(pred func(item any) bool) int {
	if l == nil || l.seq == nil || pred == nil {
		return -1
	}
	for i, v := range l.seq.items.All() {
		if pred(v) {
			return i
		}
	}
	return -1
}

// ApplyItems applies ln to every element link.
func (l *Link) ApplyItems(ln *lens.Lens) []*Link {
	items := l.Items()
	out := make([]*Link, len(items))
	for i, item := range items {
		out[i] = item.Apply(ln)
	}
	return out
}

// MapItems calls fn for every element link, in order, and collects the results.
func MapItems[R any](l *Link, fn func(i int, item *Link) R) []R {
	items := l.Items()
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(i, item)
	}
	return out
}
