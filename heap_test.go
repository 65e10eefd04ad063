package maprouter

import "testing"

func TestHeapPopOrder(t *testing.T) {
	h := Create()
	for _, cost := range []uint32{3, 1, 20, 2, 5} {
		h.Insert(HNode{Priority: cost, Cost: cost})
	}

	want := []uint32{1, 2, 3, 5}
	for _, w := range want {
		min, err := h.Min()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if min.Priority != w {
			t.Fatalf("popped %d, want %d", min.Priority, w)
		}
		if err := h.DeleteMin(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	h.Insert(HNode{Priority: 15, Cost: 15})
	for _, w := range []uint32{15, 20} {
		min, err := h.Min()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if min.Priority != w {
			t.Fatalf("popped %d, want %d", min.Priority, w)
		}
		if err := h.DeleteMin(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if !h.IsEmpty() {
		t.Fatalf("expected heap to be empty")
	}
}

func TestHeapDeleteMinOnEmpty(t *testing.T) {
	h := Create()
	if err := h.DeleteMin(); err == nil {
		t.Fatalf("expected error deleting from empty heap")
	}
	if _, err := h.Min(); err == nil {
		t.Fatalf("expected error reading min of empty heap")
	}
}
