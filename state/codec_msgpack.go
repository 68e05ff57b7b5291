package state

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

var (
	_ msgpack.CustomEncoder = (*Seq)(nil)
	_ msgpack.CustomEncoder = (*Rec)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder.
func (s *Seq) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(s.Len()); err != nil {
		return err
	}
	for i, v := range s.All() {
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode item %d: %w", i, err)
		}
	}
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder. Fields are written in insertion order.
func (r *Rec) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(r.Len()); err != nil {
		return err
	}
	for k, v := range r.All() {
		if err := enc.EncodeString(k); err != nil {
			return err
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode field %q: %w", k, err)
		}
	}
	return nil
}

// MarshalMsgpack encodes a state value.
func MarshalMsgpack(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("marshal msgpack: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalMsgpack decodes a state value written by MarshalMsgpack. Maps come back as *Rec
// in wire order, arrays as *Seq, integers as int64/uint64 and floats as float64.
func UnmarshalMsgpack(data []byte) (any, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	v, err := decodeMsgpack(dec)
	if err != nil {
		return nil, fmt.Errorf("unmarshal msgpack: %w", err)
	}
	return v, nil
}

func decodeMsgpack(dec *msgpack.Decoder) (any, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}

	switch {
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		items := make([]any, 0, max(n, 0))
		for i := 0; i < n; i++ {
			v, err := decodeMsgpack(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return &Seq{items: items}, nil
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		r := &Rec{fields: make(map[string]any, max(n, 0))}
		for i := 0; i < n; i++ {
			k, err := dec.DecodeString()
			if err != nil {
				return nil, fmt.Errorf("map key: %w", err)
			}
			v, err := decodeMsgpack(dec)
			if err != nil {
				return nil, err
			}
			if _, seen := r.fields[k]; !seen {
				r.keys = append(r.keys, k)
			}
			r.fields[k] = v
		}
		return r, nil
	default:
		return dec.DecodeInterfaceLoose()
	}
}
