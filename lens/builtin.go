package lens

import (
	"strconv"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/goliatone/go-state-link/state"
)

// Interned built-ins. These tables only grow; their size is bounded by the distinct
// indices and names a program navigates, not by the number of state transitions.
var (
	arrayItems  = xsync.NewMapOf[int, *Lens]()
	recordProps = xsync.NewMapOf[string, *Lens]()
	omitProps   = xsync.NewMapOf[string, *Lens]()
)

// ArrayItem focuses on element idx of a sequence.
//
// Precondition: 0 <= idx < length. Out of range reads return nil and out of range writes
// return the base unchanged. A non-sequence base behaves like an empty sequence.
func ArrayItem(idx int) *Lens {
	l, _ := arrayItems.LoadOrCompute(idx, func() *Lens {
		return newLens("["+strconv.Itoa(idx)+"]",
			func(base any) any {
				seq, _ := base.(*state.Seq)
				return seq.At(idx)
			},
			func(base any, fn func(any) any) any {
				seq, ok := base.(*state.Seq)
				if !ok || !seq.InRange(idx) {
					return base
				}
				return seq.With(idx, fn(seq.At(idx)))
			},
		)
	})
	return l
}

// RecordProp focuses on field key of a record. Reads tolerate a nil or non-record base and
// return nil. Writes on such a base synthesize a fresh record holding only key, except
// that writing nil to an absent key leaves the base as it is.
func RecordProp(key string) *Lens {
	l, _ := recordProps.LoadOrCompute(key, func() *Lens {
		return newLens("."+key,
			func(base any) any {
				rec, _ := base.(*state.Rec)
				return rec.Value(key)
			},
			func(base any, fn func(any) any) any {
				rec, _ := base.(*state.Rec)
				cur, had := rec.Get(key)
				next := fn(cur)
				if !had && next == nil {
					// writing nil to an absent field is a no-op
					return base
				}
				return rec.With(key, next)
			},
		)
	})
	return l
}

// OmitProp focuses on a record without field key. Writes re-attach the original value of
// key, untouched, to whatever the inner update returns. It narrows what a child sees while
// round tripping the hidden field. When the inner update returns something other than a
// record there is nothing to attach key to, and the result is written as is.
func OmitProp(key string) *Lens {
	l, _ := omitProps.LoadOrCompute(key, func() *Lens {
		return newLens("~"+key,
			func(base any) any {
				rec, ok := base.(*state.Rec)
				if !ok {
					return base
				}
				return rec.Without(key)
			},
			func(base any, fn func(any) any) any {
				rec, ok := base.(*state.Rec)
				if !ok {
					return fn(base)
				}
				omitted := rec.Without(key)
				next := fn(omitted)
				if state.Same(next, omitted) {
					return base
				}
				hidden, had := rec.Get(key)
				out, isRec := next.(*state.Rec)
				if !had || !isRec {
					return next
				}
				return out.With(key, hidden)
			},
		)
	})
	return l
}
