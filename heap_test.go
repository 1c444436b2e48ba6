package wisp

import "testing"

func Test_Heap_AllocAndAt(t *testing.T) {
	h := NewHeap()
	p := h.Alloc(4)
	for i := uint64(0); i < 4; i++ {
		slot, err := h.At(Pointer{Block: p.Block, Offset: i})
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		*slot = IntValue(int32(i * 10))
	}
	slot, _ := h.At(Pointer{Block: p.Block, Offset: 2})
	if slot.AsInt32() != 20 {
		t.Fatalf("want 20, got %v", slot)
	}
}

func Test_Heap_OutOfBoundsIsAllocError(t *testing.T) {
	h := NewHeap()
	p := h.Alloc(2)
	_, err := h.At(Pointer{Block: p.Block, Offset: 5})
	wantErrKind(t, err, AllocError)
}

func Test_Heap_FreeThenAccessIsAllocError(t *testing.T) {
	h := NewHeap()
	p := h.Alloc(2)
	if err := h.Free(p); err != nil {
		t.Fatalf("unexpected error freeing: %v", err)
	}
	_, err := h.At(p)
	wantErrKind(t, err, AllocError)

	err = h.Free(p)
	wantErrKind(t, err, AllocError) // double free
}

func Test_Heap_ReallocGrowsAndPreservesContent(t *testing.T) {
	h := NewHeap()
	p := h.Alloc(2)
	slot, _ := h.At(Pointer{Block: p.Block, Offset: 0})
	*slot = IntValue(42)

	grown, err := h.Realloc(p, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	size, _ := h.Size(grown)
	if size != 4 {
		t.Fatalf("want size 4 after growing, got %d", size)
	}
	slot, _ = h.At(Pointer{Block: grown.Block, Offset: 0})
	if slot.AsInt32() != 42 {
		t.Fatalf("want realloc to preserve existing content, got %v", slot)
	}
}

func Test_Heap_AllocStringIsNulTerminated(t *testing.T) {
	h := NewHeap()
	v := h.AllocString("hi")
	ptr := v.Opaque.(Pointer)
	size, _ := h.Size(ptr)
	if size != 3 {
		t.Fatalf("want 3 bytes ('h','i',NUL), got %d", size)
	}
	last, _ := h.At(Pointer{Block: ptr.Block, Offset: 2})
	if last.AsByte() != 0 {
		t.Fatalf("want trailing NUL, got %v", last)
	}
}
