package gui

import "testing"

func TestSet(t *testing.T) {
	var s Set[int]
	if s.Len() != 0 {
		t.Fatalf("empty set has length %d", s.Len())
	}
	a, b, c := s.Add(1), s.Add(2), s.Add(3)
	if !s.Remove(b) {
		t.Fatal("Remove of registered key failed")
	}
	if s.Remove(b) {
		t.Error("second Remove succeeded")
	}
	if _, ok := s.Get(b); ok {
		t.Error("removed key still resolves")
	}
	d := s.Add(4)
	if d == b {
		t.Error("key reused after removal")
	}
	var got []int
	for k, v := range s.All() {
		if w, ok := s.Get(k); !ok || w != v {
			t.Errorf("Get(%v) disagrees with All", k)
		}
		got = append(got, *v)
	}
	want := []int{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v from All, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v from All, expected %v", got, want)
		}
	}
	if s.Len() != 3 {
		t.Errorf("got Len %d, expected 3", s.Len())
	}
	if v, _ := s.Get(a); *v != 1 {
		t.Errorf("Get(a) = %d", *v)
	}
	if v, _ := s.Get(c); *v != 3 {
		t.Errorf("Get(c) = %d", *v)
	}
	if _, ok := s.Get(Key{}); ok {
		t.Error("zero key resolves")
	}
}
