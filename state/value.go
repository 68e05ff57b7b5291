package state

import (
	"math"
	"reflect"
)

// Shape classifies a state value for navigation purposes.
type Shape int

const (
	// ShapeScalar covers nil, primitives and opaque values.
	ShapeScalar Shape = iota
	// ShapeSequence is a *Seq.
	ShapeSequence
	// ShapeRecord is a *Rec.
	ShapeRecord
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case ShapeSequence:
		return "sequence"
	case ShapeRecord:
		return "record"
	default:
		return "scalar"
	}
}

// ShapeOf returns the shape of v. A typed nil node is still reported by its node shape.
func ShapeOf(v any) Shape {
	switch v.(type) {
	case *Seq:
		return ShapeSequence
	case *Rec:
		return ShapeRecord
	default:
		return ShapeScalar
	}
}

// IsNode reports whether v is a *Seq or *Rec.
func IsNode(v any) bool {
	return ShapeOf(v) != ShapeScalar
}

// Same reports whether a and b are the same value: the same node, or equal comparable
// scalars. Values of incomparable dynamic types are never Same, and Same never panics.
func Same(a, b any) bool {
	switch x := a.(type) {
	case *Seq:
		y, ok := b.(*Seq)
		return ok && x == y
	case *Rec:
		y, ok := b.(*Rec)
		return ok && x == y
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return safeEqual(a, b)
}

// safeEqual guards against comparable types holding incomparable interface contents.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// Equal reports deep structural equality. Numbers compare by value regardless of their Go
// type, so int(1), int64(1) and float64(1) are equal. Record key order is ignored.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case *Seq:
		y, ok := b.(*Seq)
		if !ok {
			return false
		}
		if x == y {
			return true
		}
		if x.Len() != y.Len() {
			return false
		}
		for i := 0; i < x.Len(); i++ {
			if !Equal(x.At(i), y.At(i)) {
				return false
			}
		}
		return true
	case *Rec:
		y, ok := b.(*Rec)
		if !ok {
			return false
		}
		if x == y {
			return true
		}
		if x.Len() != y.Len() {
			return false
		}
		for k, v := range x.All() {
			w, ok := y.Get(k)
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	}

	if fa, ok := numeric(a); ok {
		fb, ok := numeric(b)
		return ok && (fa == fb || (math.IsNaN(fa) && math.IsNaN(fb)))
	}
	if Same(a, b) {
		return true
	}
	if a == nil || b == nil || IsNode(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// numeric widens any Go number to float64.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
