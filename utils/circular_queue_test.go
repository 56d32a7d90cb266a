package utils

import "testing"

func TestCircularQueueOverwritesOldest(t *testing.T) {
	q := NewCircularQueue[int](3)
	for i := 1; i <= 5; i++ {
		if err := q.Append(i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if q.Len() != 3 || q.Cap() != 3 {
		t.Fatalf("len = %d, cap = %d", q.Len(), q.Cap())
	}

	var got []int
	for _, v := range q.All() {
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != 3 || got[1] != 4 || got[2] != 5 {
		t.Fatalf("items = %v, want [3 4 5]", got)
	}
	if last, ok := q.Last(); !ok || last != 5 {
		t.Fatalf("Last() = %v, %v", last, ok)
	}
	if v, err := q.Get(0); err != nil || v != 3 {
		t.Fatalf("Get(0) = %v, %v", v, err)
	}
	if _, err := q.Get(3); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestCircularQueuePop(t *testing.T) {
	q := NewCircularQueue[string](2)
	_ = q.Append("a")
	_ = q.Append("b")
	_ = q.Append("c")

	if v, ok := q.Pop(); !ok || v != "b" {
		t.Fatalf("Pop() = %q, %v", v, ok)
	}
	if v, ok := q.Pop(); !ok || v != "c" {
		t.Fatalf("Pop() = %q, %v", v, ok)
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("Pop() on empty queue succeeded")
	}
	if _, ok := q.Last(); ok {
		t.Fatalf("Last() on empty queue succeeded")
	}
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	q := NewCircularQueue[int](0)
	if err := q.Append(1); err == nil {
		t.Fatalf("expected error appending to zero-capacity queue")
	}
}
