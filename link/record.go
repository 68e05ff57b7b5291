package link

import (
	"github.com/goliatone/go-state-link/lens"
	"github.com/goliatone/go-state-link/state"
)

type recordOps struct {
	fields *state.Rec
}

// Prop returns the link for field key, or nil when the value is not a record. An absent
// key still yields a link; its value is nil and setting it adds the field.
func (l *Link) Prop(key string) *Link {
	if l == nil || l.rec == nil {
		return nil
	}
	return l.Apply(lens.RecordProp(key))
}

// Props returns links keyed by field name. Without arguments it covers every present
// field; otherwise exactly the given keys, present or not. It is empty, never nil, when
// the value is not a record.
func (l *Link) Props(keys ...string) map[string]*Link {
	if l == nil || l.rec == nil {
		return map[string]*Link{}
	}
	if len(keys) == 0 {
		keys = l.rec.fields.Keys()
	}
	out := make(map[string]*Link, len(keys))
	for _, k := range keys {
		out[k] = l.Apply(lens.RecordProp(k))
	}
	return out
}

// Keys returns the present field names in order, or nil when the value is not a record.
func (l *Link) Keys() []string {
	if l == nil || l.rec == nil {
		return nil
	}
	return l.rec.fields.Keys()
}
