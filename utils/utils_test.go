package utils

import (
	"bytes"
	"io"
	"slices"
	"testing"

	"github.com/elliotchance/orderedmap/v2"
)

func TestCircularQueueDropsOldest(t *testing.T) {
	q := NewCircularQueue[int](3)
	if _, ok := q.Last(); ok {
		t.Fatal("expected an empty queue to have no last element")
	}
	for i := 1; i <= 5; i++ {
		if err := q.Append(i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if q.Len() != 3 || q.Cap() != 3 {
		t.Fatalf("expected len 3 cap 3, got %d/%d", q.Len(), q.Cap())
	}
	if got := slices.Collect(q.All()); !slices.Equal(got, []int{3, 4, 5}) {
		t.Fatalf("expected [3 4 5], got %v", got)
	}
	if v, _ := q.Get(0); v != 3 {
		t.Fatalf("expected oldest to be 3, got %d", v)
	}
	if v, ok := q.Last(); !ok || v != 5 {
		t.Fatalf("expected newest to be 5, got %d", v)
	}
	if _, err := q.Get(3); err == nil {
		t.Fatal("expected an out of range error")
	}
}

func TestCircularQueuePop(t *testing.T) {
	q := NewCircularQueue[string](2)
	_ = q.Append("a")
	_ = q.Append("b")
	if v, ok := q.Pop(); !ok || v != "a" {
		t.Fatalf("expected a, got %q", v)
	}
	_ = q.Append("c")
	if got := slices.Collect(q.All()); !slices.Equal(got, []string{"b", "c"}) {
		t.Fatalf("expected [b c], got %v", got)
	}
	q.Pop()
	q.Pop()
	if _, ok := q.Pop(); ok {
		t.Fatal("expected pop on an empty queue to fail")
	}
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	if err := NewCircularQueue[int](0).Append(1); err == nil {
		t.Fatal("expected an error appending to a zero-capacity queue")
	}
}

func TestOrderedMapToString(t *testing.T) {
	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("state", "sprinting")
	data.Set("speed", 6)
	data.Set("grounded", true)
	if got := OrderedMapToString(data); got != "[state=sprinting speed=6 grounded=true]" {
		t.Fatalf("unexpected string %q", got)
	}
	if got := KeyValsToString("foo", 1, "bar", true, "odd"); got != "[foo=1 bar=true]" {
		t.Fatalf("unexpected string %q", got)
	}
}

func TestBinaryHelpers(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteLUint64(&buf, 42)
	_ = WriteLFloat32(&buf, -9.8)
	_ = WriteBool(&buf, true)
	if buf.Len() != 13 {
		t.Fatalf("expected 13 bytes, got %d", buf.Len())
	}
	if v, err := ReadLUint64(&buf); err != nil || v != 42 {
		t.Fatalf("expected 42, got %d (%v)", v, err)
	}
	if v, err := ReadLFloat32(&buf); err != nil || v != -9.8 {
		t.Fatalf("expected -9.8, got %v (%v)", v, err)
	}
	if v, err := ReadBool(&buf); err != nil || !v {
		t.Fatalf("expected true, got %v (%v)", v, err)
	}
	if _, err := ReadBool(&buf); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}
