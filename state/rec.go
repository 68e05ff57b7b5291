package state

import (
	"iter"
	"maps"
	"slices"
)

// Rec is an immutable string keyed record. Keys keep their insertion order.
// The nil *Rec is an empty record.
type Rec struct {
	keys   []string
	fields map[string]any
}

// RecordOf builds a record from alternating key/value arguments. A non-string key or a
// trailing key without a value is ignored. Repeated keys keep their first position and
// last value.
func RecordOf(kv ...any) *Rec {
	r := &Rec{fields: make(map[string]any, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		if _, seen := r.fields[k]; !seen {
			r.keys = append(r.keys, k)
		}
		r.fields[k] = kv[i+1]
	}
	return r
}

// Len returns the number of fields.
func (r *Rec) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns the field names in insertion order.
func (r *Rec) Keys() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.keys)
}

// Get returns the value stored under key and whether the key is present.
func (r *Rec) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.fields[key]
	return v, ok
}

// Value returns the value stored under key, or nil.
func (r *Rec) Value(key string) any {
	v, _ := r.Get(key)
	return v
}

// Has reports whether key is present.
func (r *Rec) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// With returns a record with key set to v. A nil receiver yields a new single field record.
// The receiver is returned when key already holds a value Same as v.
func (r *Rec) With(key string, v any) *Rec {
	old, ok := r.Get(key)
	if ok && Same(old, v) {
		return r
	}

	fields := make(map[string]any, r.Len()+1)
	var keys []string
	if r != nil {
		maps.Copy(fields, r.fields)
		keys = r.keys
	}
	if !ok {
		keys = append(slices.Clip(keys), key)
	}
	fields[key] = v
	return &Rec{keys: keys, fields: fields}
}

// Without returns a record lacking key, or the receiver when key is absent.
func (r *Rec) Without(key string) *Rec {
	if !r.Has(key) {
		return r
	}
	fields := maps.Clone(r.fields)
	delete(fields, key)
	keys := slices.DeleteFunc(slices.Clone(r.keys), func(k string) bool { return k == key })
	return &Rec{keys: keys, fields: fields}
}

// Merge returns a record with every field of other written over the receiver, in other's
// key order. Untouched fields are shared and the receiver is returned when nothing changes.
func (r *Rec) Merge(other *Rec) *Rec {
	out := r
	for k, v := range other.All() {
		out = out.With(k, v)
	}
	if out == nil {
		return &Rec{fields: map[string]any{}}
	}
	return out
}

// All iterates over key/value pairs in insertion order.
func (r *Rec) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if r == nil {
			return
		}
		for _, k := range r.keys {
			if !yield(k, r.fields[k]) {
				return
			}
		}
	}
}

// String renders the record as JSON.
func (r *Rec) String() string {
	return render(r)
}
