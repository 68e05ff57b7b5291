package state

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Type tags keep e.g. the string "1" and the number 1 apart in the digest.
const (
	tagNil byte = iota
	tagBool
	tagNumber
	tagString
	tagSeq
	tagRec
	tagOpaque
)

// Fingerprint returns a 64-bit xxhash digest of v that is consistent with Equal: values
// that are Equal have the same fingerprint. Record fields are hashed in sorted key order
// so insertion order does not matter; numbers are hashed by numeric value.
//
// Opaque scalars fall back to their type name and %v rendering, which is only as stable
// as that formatting (pointers, for example, hash by address).
func Fingerprint(v any) uint64 {
	d := xxhash.New()
	writeValue(d, v)
	return d.Sum64()
}

func writeValue(d *xxhash.Digest, v any) {
	var scratch [8]byte

	switch x := v.(type) {
	case nil:
		d.Write([]byte{tagNil})
	case bool:
		b := byte(0)
		if x {
			b = 1
		}
		d.Write([]byte{tagBool, b})
	case string:
		d.Write([]byte{tagString})
		writeLen(d, len(x))
		d.WriteString(x)
	case *Seq:
		d.Write([]byte{tagSeq})
		writeLen(d, x.Len())
		for _, e := range x.All() {
			writeValue(d, e)
		}
	case *Rec:
		d.Write([]byte{tagRec})
		writeLen(d, x.Len())
		keys := x.Keys()
		slices.Sort(keys)
		for _, k := range keys {
			writeLen(d, len(k))
			d.WriteString(k)
			writeValue(d, x.Value(k))
		}
	default:
		if f, ok := numeric(v); ok {
			if f == 0 {
				f = 0 // fold -0
			}
			binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(f))
			d.Write([]byte{tagNumber})
			d.Write(scratch[:])
			return
		}
		d.Write([]byte{tagOpaque})
		d.WriteString(reflect.TypeOf(v).String())
		d.WriteString(fmt.Sprintf("%v", v))
	}
}

func writeLen(d *xxhash.Digest, n int) {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(n))
	d.Write(scratch[:])
}
