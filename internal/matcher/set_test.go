package matcher

import "testing"

func TestSet_Add(t *testing.T) {
	s := NewSet()

	if !s.Add(Span{Start: 0, End: 2, Pattern: 0}) {
		t.Error("first Add() = false, want true")
	}
	if !s.Add(Span{Start: 2, End: 4, Pattern: 0}) {
		t.Error("second Add() = false, want true")
	}
	if s.Add(Span{Start: 0, End: 2, Pattern: 0}) {
		t.Error("duplicate Add() = true, want false")
	}
	if !s.Add(Span{Start: 0, End: 2, Pattern: 1}) {
		t.Error("same span different pattern Add() = false, want true")
	}

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
}

func TestSet_PreservesInsertionOrder(t *testing.T) {
	s := NewSet()
	in := []Span{
		{Start: 9, End: 12, Pattern: 1},
		{Start: 0, End: 3, Pattern: 0},
		{Start: 9, End: 12, Pattern: 1},
		{Start: 4, End: 6, Pattern: 0},
	}
	for _, sp := range in {
		s.Add(sp)
	}

	want := []Span{
		{Start: 9, End: 12, Pattern: 1},
		{Start: 0, End: 3, Pattern: 0},
		{Start: 4, End: 6, Pattern: 0},
	}
	got := s.Spans()
	if len(got) != len(want) {
		t.Fatalf("got %d spans, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
