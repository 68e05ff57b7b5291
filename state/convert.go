package state

import (
	"reflect"
	"slices"
)

// From deep converts plain Go containers into state nodes. Slices and arrays become *Seq,
// maps with string keys become *Rec (keys sorted, since Go maps carry no order), and
// existing nodes are returned untouched. Everything else is kept as a scalar.
func From(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *Seq, *Rec:
		return v
	case []any:
		items := make([]any, len(x))
		for i, e := range x {
			items[i] = From(e)
		}
		return &Seq{items: items}
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		fields := make(map[string]any, len(x))
		for k, e := range x {
			fields[k] = From(e)
		}
		return &Rec{keys: keys, fields: fields}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		fallthrough
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// []byte stays opaque
			return v
		}
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = From(rv.Index(i).Interface())
		}
		return &Seq{items: items}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		if rv.IsNil() {
			return nil
		}
		keys := make([]string, 0, rv.Len())
		fields := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			keys = append(keys, k)
			fields[k] = From(iter.Value().Interface())
		}
		slices.Sort(keys)
		return &Rec{keys: keys, fields: fields}
	}
	return v
}

// ToGo deep converts nodes back into []any and map[string]any.
func ToGo(v any) any {
	switch x := v.(type) {
	case *Seq:
		if x == nil {
			return nil
		}
		out := make([]any, len(x.items))
		for i, e := range x.items {
			out[i] = ToGo(e)
		}
		return out
	case *Rec:
		if x == nil {
			return nil
		}
		out := make(map[string]any, len(x.keys))
		for k, e := range x.All() {
			out[k] = ToGo(e)
		}
		return out
	default:
		return v
	}
}
