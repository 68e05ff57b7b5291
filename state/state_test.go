package state

import (
	"math"
	"testing"
)

func TestSeq_WithSharesUntouchedElements(t *testing.T) {
	inner := RecordOf("id", 1)
	s := SeqOf("a", inner, "c")

	updated := s.With(0, "A")
	if updated == s {
		t.Fatal("expected a new sequence")
	}
	if updated.At(0) != "A" {
		t.Errorf("expected A at 0, got %v", updated.At(0))
	}
	if updated.At(1) != inner {
		t.Error("expected untouched element to be shared")
	}
	if s.At(0) != "a" {
		t.Error("original sequence should be unchanged")
	}
	if updated.Len() != s.Len() {
		t.Errorf("expected length %d, got %d", s.Len(), updated.Len())
	}
}

func TestSeq_NoOpWritesReturnReceiver(t *testing.T) {
	inner := RecordOf("id", 1)
	s := SeqOf("a", inner)

	tests := []struct {
		name string
		got  *Seq
	}{
		{"same scalar", s.With(0, "a")},
		{"same node", s.With(1, inner)},
		{"index past end", s.With(2, "x")},
		{"negative index", s.With(-1, "x")},
		{"remove out of range", s.Remove(5)},
		{"append nothing", s.Append()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != s {
				t.Errorf("expected receiver back, got %v", tt.got)
			}
		})
	}
}

func TestSeq_NilIsEmpty(t *testing.T) {
	var s *Seq
	if s.Len() != 0 {
		t.Errorf("expected 0, got %d", s.Len())
	}
	if s.At(0) != nil {
		t.Error("expected nil read")
	}
	if got := s.Append(1); got.Len() != 1 || got.At(0) != 1 {
		t.Errorf("expected [1], got %v", got)
	}
	for range s.All() {
		t.Fatal("nil sequence should not yield")
	}
}

func TestSeq_AppendRemove(t *testing.T) {
	s := SeqOf(1, 2, 3)

	removed := s.Remove(1)
	if !Equal(removed, SeqOf(1, 3)) {
		t.Errorf("expected [1,3], got %v", removed)
	}
	appended := removed.Append(4, 5)
	if !Equal(appended, SeqOf(1, 3, 4, 5)) {
		t.Errorf("expected [1,3,4,5], got %v", appended)
	}
	if !Equal(s, SeqOf(1, 2, 3)) {
		t.Error("original sequence should be unchanged")
	}
}

func TestRec_WithKeepsInsertionOrder(t *testing.T) {
	r := RecordOf("id", 1, "name", "Sam")

	updated := r.With("name", "Ingo").With("email", "ingo@example.com")

	want := []string{"id", "name", "email"}
	got := updated.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected key %q at %d, got %q", want[i], i, got[i])
		}
	}
	if r.Value("name") != "Sam" {
		t.Error("original record should be unchanged")
	}
	if r.Has("email") {
		t.Error("original record should not gain keys")
	}
}

func TestRec_WithDoesNotAliasKeys(t *testing.T) {
	base := RecordOf("a", 1)
	left := base.With("b", 2)
	right := base.With("c", 3)

	if left.Keys()[1] != "b" {
		t.Errorf("expected b, got %v", left.Keys())
	}
	if right.Keys()[1] != "c" {
		t.Errorf("expected c, got %v", right.Keys())
	}
}

func TestRec_NilSynthesizesRecord(t *testing.T) {
	var r *Rec
	got := r.With("x", 1)
	if got == nil || got.Value("x") != 1 {
		t.Fatalf("expected {x:1}, got %v", got)
	}
	if v, ok := r.Get("x"); ok || v != nil {
		t.Error("nil record should read as empty")
	}
}

func TestRec_WithoutAndMerge(t *testing.T) {
	r := RecordOf("id", 7, "name", "Sam", "age", 30)

	without := r.Without("name")
	if without.Has("name") || without.Len() != 2 {
		t.Errorf("expected name removed, got %v", without)
	}
	if r.Without("missing") != r {
		t.Error("removing an absent key should return the receiver")
	}

	merged := r.Merge(RecordOf("name", "Ingo", "email", "i@example.com"))
	if merged.Value("name") != "Ingo" || merged.Value("email") != "i@example.com" || merged.Value("id") != 7 {
		t.Errorf("unexpected merge result %v", merged)
	}
	if r.Merge(RecordOf("name", "Sam")) != r {
		t.Error("merging identical fields should return the receiver")
	}
}

func TestRecordOf_IgnoresMalformedPairs(t *testing.T) {
	r := RecordOf("a", 1, 2, "b", "c")
	if r.Len() != 1 || r.Value("a") != 1 {
		t.Errorf("expected {a:1}, got %v", r)
	}
}

func TestSame(t *testing.T) {
	rec := RecordOf("a", 1)
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal strings", "x", "x", true},
		{"different types", 1, int64(1), false},
		{"same node", rec, rec, true},
		{"equal but distinct nodes", rec, RecordOf("a", 1), false},
		{"nil and nil", nil, nil, true},
		{"nil and typed nil node", nil, (*Rec)(nil), false},
		{"incomparable values", []int{1}, []int{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Same(tt.a, tt.b); got != tt.want {
				t.Errorf("Same(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"numbers across types", int(3), float64(3), true},
		{"different numbers", 3, 4, false},
		{"nan", math.NaN(), math.NaN(), true},
		{"record order ignored", RecordOf("a", 1, "b", 2), RecordOf("b", 2, "a", 1), true},
		{"record value differs", RecordOf("a", 1), RecordOf("a", 2), false},
		{"record keys differ", RecordOf("a", 1), RecordOf("b", 1), false},
		{"nested sequences", SeqOf(SeqOf(1), "x"), SeqOf(SeqOf(int64(1)), "x"), true},
		{"sequence length", SeqOf(1), SeqOf(1, 2), false},
		{"sequence vs record", SeqOf(), RecordOf(), false},
		{"nil vs empty record", nil, RecordOf(), false},
		{"opaque deep equal", []int{1, 2}, []int{1, 2}, true},
		{"string vs number", "1", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestShapeOf(t *testing.T) {
	if ShapeOf(SeqOf()) != ShapeSequence {
		t.Error("expected sequence")
	}
	if ShapeOf(RecordOf()) != ShapeRecord {
		t.Error("expected record")
	}
	if ShapeOf(map[string]any{}) != ShapeScalar {
		t.Error("raw maps are scalars until converted")
	}
	if ShapeRecord.String() != "record" {
		t.Errorf("unexpected name %q", ShapeRecord.String())
	}
}

func TestFromAndToGo(t *testing.T) {
	raw := map[string]any{
		"name": "Sam",
		"tags": []string{"a", "b"},
		"meta": map[string]int{"z": 1, "a": 2},
	}

	v := From(raw)
	rec, ok := v.(*Rec)
	if !ok {
		t.Fatalf("expected *Rec, got %T", v)
	}
	if keys := rec.Keys(); keys[0] != "meta" || keys[1] != "name" || keys[2] != "tags" {
		t.Errorf("expected sorted keys, got %v", keys)
	}
	if !Equal(rec.Value("tags"), SeqOf("a", "b")) {
		t.Errorf("unexpected tags %v", rec.Value("tags"))
	}
	if meta := rec.Value("meta").(*Rec); meta.Keys()[0] != "a" {
		t.Errorf("expected sorted nested keys, got %v", meta.Keys())
	}
	if From(rec) != rec {
		t.Error("From should return nodes untouched")
	}
	if b := []byte("raw"); From(b) == nil {
		t.Error("byte slices should stay opaque")
	}

	back, ok := ToGo(v).(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", ToGo(v))
	}
	if tags := back["tags"].([]any); len(tags) != 2 || tags[1] != "b" {
		t.Errorf("unexpected tags %v", back["tags"])
	}
}
