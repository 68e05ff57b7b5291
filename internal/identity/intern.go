package identity

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"
)

// box is the heap object standing in for a scalar key. Weak pointers need a heap object,
// and scalars have none of their own.
type box struct {
	v any
}

// scalars is strongly held and never shrinks: it must return the same box for the same
// scalar for the life of the process. Its size is bounded by the distinct scalar values
// ever used as keys.
var scalars = xsync.NewMapOf[any, *box]()

// intern returns the unique box for v. It reports false for values that cannot be map
// keys (incomparable dynamic types).
func intern(v any) (*box, bool) {
	if v != nil {
		t := reflect.TypeOf(v)
		if !t.Comparable() || !hashable(v) {
			return nil, false
		}
	}
	b, _ := scalars.LoadOrCompute(v, func() *box {
		return &box{v: v}
	})
	return b, true
}

// hashable rejects values a map cannot find again: NaN, and comparable types that still
// panic when hashed, such as a struct holding a slice behind an interface field.
func hashable(v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return v == v
}

// InternedScalars reports the size of the process-wide scalar intern table.
func InternedScalars() int {
	return scalars.Size()
}
