package lens

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/goliatone/go-state-link/state"
)

func getPut(l *Lens, base any) bool {
	return state.Equal(l.Put(base, func(any) any { return l.Get(base) }), base)
}

func putGet(l *Lens, base any, fn func(any) any) bool {
	return state.Equal(l.Get(l.Put(base, fn)), fn(l.Get(base)))
}

func putPut(l *Lens, base any, f1, f2 func(any) any) bool {
	sequential := l.Put(l.Put(base, f1), f2)
	composed := l.Put(base, func(c any) any { return f2(f1(c)) })
	return state.Equal(sequential, composed)
}

func add(d int) func(any) any {
	return func(v any) any {
		n, _ := v.(int)
		return n + d
	}
}

func setField(key string, val any) func(any) any {
	return func(v any) any {
		rec, _ := v.(*state.Rec)
		return rec.With(key, val)
	}
}

func lawParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return parameters
}

func recordGen() gopter.Gen {
	return gen.MapOf(gen.Identifier(), gen.Int())
}

func TestArrayItemLaws(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	properties.Property("GetPut", prop.ForAll(
		func(xs []int, idx int) bool {
			return getPut(ArrayItem(idx), state.From(xs))
		},
		gen.SliceOfN(5, gen.Int()),
		gen.IntRange(0, 4),
	))

	properties.Property("PutGet", prop.ForAll(
		func(xs []int, idx, d int) bool {
			return putGet(ArrayItem(idx), state.From(xs), add(d))
		},
		gen.SliceOfN(5, gen.Int()),
		gen.IntRange(0, 4),
		gen.Int(),
	))

	properties.Property("PutPut", prop.ForAll(
		func(xs []int, idx, d1, d2 int) bool {
			return putPut(ArrayItem(idx), state.From(xs), add(d1), add(d2))
		},
		gen.SliceOfN(5, gen.Int()),
		gen.IntRange(0, 4),
		gen.Int(),
		gen.Int(),
	))

	properties.Property("writes leave other indices untouched", prop.ForAll(
		func(xs []int, idx, d int) bool {
			base := state.From(xs).(*state.Seq)
			next := ArrayItem(idx).Put(base, add(d)).(*state.Seq)
			for i := range xs {
				if i != idx && next.At(i) != base.At(i) {
					return false
				}
			}
			return next.Len() == base.Len()
		},
		gen.SliceOfN(5, gen.Int()),
		gen.IntRange(0, 4),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestRecordPropLaws(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	properties.Property("GetPut", prop.ForAll(
		func(m map[string]int, key string) bool {
			return getPut(RecordProp(key), state.From(m))
		},
		recordGen(),
		gen.Identifier(),
	))

	properties.Property("PutGet", prop.ForAll(
		func(m map[string]int, key string, d int) bool {
			return putGet(RecordProp(key), state.From(m), add(d))
		},
		recordGen(),
		gen.Identifier(),
		gen.Int(),
	))

	properties.Property("PutPut", prop.ForAll(
		func(m map[string]int, key string, d1, d2 int) bool {
			return putPut(RecordProp(key), state.From(m), add(d1), add(d2))
		},
		recordGen(),
		gen.Identifier(),
		gen.Int(),
		gen.Int(),
	))

	properties.Property("PutGet on an absent base", prop.ForAll(
		func(key string, d int) bool {
			return putGet(RecordProp(key), nil, add(d))
		},
		gen.Identifier(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestOmitPropLaws(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	withID := func(m map[string]int, id int) any {
		rec, _ := state.From(m).(*state.Rec)
		return rec.With("id", id)
	}

	properties.Property("GetPut", prop.ForAll(
		func(m map[string]int, id int) bool {
			return getPut(OmitProp("id"), withID(m, id))
		},
		recordGen(),
		gen.Int(),
	))

	properties.Property("PutGet", prop.ForAll(
		func(m map[string]int, id, v int) bool {
			return putGet(OmitProp("id"), withID(m, id), setField("note", v))
		},
		recordGen(),
		gen.Int(),
		gen.Int(),
	))

	properties.Property("PutPut", prop.ForAll(
		func(m map[string]int, id, v1, v2 int) bool {
			return putPut(OmitProp("id"), withID(m, id), setField("note", v1), setField("other", v2))
		},
		recordGen(),
		gen.Int(),
		gen.Int(),
		gen.Int(),
	))

	properties.Property("hidden field survives writes", prop.ForAll(
		func(m map[string]int, id, v int) bool {
			next := OmitProp("id").Put(withID(m, id), setField("note", v)).(*state.Rec)
			return next.Value("id") == id && next.Value("note") == v
		},
		recordGen(),
		gen.Int(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestPartialLaws(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	properties.Property("GetPut", prop.ForAll(
		func(m map[string]int) bool {
			return getPut(Partial(), state.From(m))
		},
		recordGen(),
	))

	properties.Property("PutGet with whole-record updates", prop.ForAll(
		func(m map[string]int, v int) bool {
			return putGet(Partial(), state.From(m), setField("note", v))
		},
		recordGen(),
		gen.Int(),
	))

	properties.Property("PutPut with whole-record updates", prop.ForAll(
		func(m map[string]int, v1, v2 int) bool {
			return putPut(Partial(), state.From(m), setField("a", v1), setField("b", v2))
		},
		recordGen(),
		gen.Int(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestOnChangeLaws(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())
	passThrough := OnChange(func(next, _ any) any { return next })

	properties.Property("GetPut", prop.ForAll(
		func(n int) bool {
			return getPut(passThrough, n)
		},
		gen.Int(),
	))

	properties.Property("PutGet", prop.ForAll(
		func(n, d int) bool {
			return putGet(passThrough, n, add(d))
		},
		gen.Int(),
		gen.Int(),
	))

	properties.Property("PutPut", prop.ForAll(
		func(n, d1, d2 int) bool {
			return putPut(passThrough, n, add(d1), add(d2))
		},
		gen.Int(),
		gen.Int(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestComposeLaws(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())
	todoScore := Compose(Compose(RecordProp("todos"), ArrayItem(1)), RecordProp("score"))

	base := func(scores []int) any {
		items := make([]any, len(scores))
		for i, s := range scores {
			items[i] = state.RecordOf("score", s)
		}
		return state.RecordOf("todos", state.SeqOf(items...))
	}

	properties.Property("GetPut", prop.ForAll(
		func(scores []int) bool {
			return getPut(todoScore, base(scores))
		},
		gen.SliceOfN(3, gen.Int()),
	))

	properties.Property("PutGet", prop.ForAll(
		func(scores []int, d int) bool {
			return putGet(todoScore, base(scores), add(d))
		},
		gen.SliceOfN(3, gen.Int()),
		gen.Int(),
	))

	properties.Property("PutPut", prop.ForAll(
		func(scores []int, d1, d2 int) bool {
			return putPut(todoScore, base(scores), add(d1), add(d2))
		},
		gen.SliceOfN(3, gen.Int()),
		gen.Int(),
		gen.Int(),
	))

	properties.TestingRun(t)
}
