package gui

import (
	"fmt"
	"testing"
)

func TestQueueOrder(t *testing.T) {
	var q Queue
	q.Press(Event{Type: Press, Value: 1})
	q.Change(Event{Type: Change, Value: 2})
	q.Release(Event{Type: Release, Value: 3})
	if q.Len() != 3 {
		t.Fatalf("Len = %d", q.Len())
	}
	for want := 1; want <= 3; want++ {
		e, ok := q.Next()
		if !ok || e.Value != want {
			t.Fatalf("got %v, %v from Next, expected value %d", e, ok, want)
		}
	}
	if _, ok := q.Next(); ok {
		t.Error("Next on empty queue succeeded")
	}
}

func TestTee(t *testing.T) {
	var q1, q2 Queue
	changes := 0
	sink := Tee(&q1, &q2, Funcs{OnChange: func(Event) { changes++ }}, nil)
	sink.Change(Event{Type: Change})
	sink.Press(Event{Type: Press})
	if q1.Len() != 2 || q2.Len() != 2 || changes != 1 {
		t.Errorf("tee delivered %d, %d, %d", q1.Len(), q2.Len(), changes)
	}
}

func TestStringUnknown(t *testing.T) {
	tests := []struct {
		v    fmt.Stringer
		want string
	}{
		{ButtonClass, "button"},
		{Class(9), "Class(9)"},
		{Change, "change"},
		{EventType(7), "EventType(7)"},
		{Released, "released"},
		{Phase(5), "Phase(5)"},
	}
	for _, test := range tests {
		if got := test.v.String(); got != test.want {
			t.Errorf("got %q, expected %q", got, test.want)
		}
	}
}
