// heap.go: a bounds-checked arena standing in for the raw pointer/heap
// built-ins (spec.md §6's alloc/realloc/free/deref/index, §9's own suggested
// "safe port" of raw memory onto a managed arena instead of unsafe.Pointer).
// A Pointer is an opaque (block, offset) pair into the Interpreter's single
// Heap; every dereference or index re-checks that the block is still live
// and the offset in range, turning what would be a segfault or
// use-after-free in the original into an AllocError.
package wisp

// Pointer is the Opaque payload produced by alloc/realloc and consumed by
// the unary dereference and index operators (expr_op.go).
type Pointer struct {
	Block  uint64
	Offset uint64
}

type heapBlock struct {
	data  []Value
	freed bool
}

// Heap is the interpreter-wide arena backing every Pointer.
type Heap struct {
	blocks map[uint64]*heapBlock
	nextID uint64
}

func NewHeap() *Heap {
	return &Heap{blocks: make(map[uint64]*heapBlock)}
}

func (h *Heap) Alloc(n uint64) Pointer {
	h.nextID++
	id := h.nextID
	h.blocks[id] = &heapBlock{data: make([]Value, n)}
	return Pointer{Block: id, Offset: 0}
}

func (h *Heap) Realloc(p Pointer, n uint64) (Pointer, error) {
	blk, ok := h.blocks[p.Block]
	if !ok || blk.freed {
		return Pointer{}, newErr(AllocError, "realloc of unallocated or freed block")
	}
	grown := make([]Value, n)
	copy(grown, blk.data)
	blk.data = grown
	return Pointer{Block: p.Block, Offset: 0}, nil
}

func (h *Heap) Free(p Pointer) error {
	blk, ok := h.blocks[p.Block]
	if !ok || blk.freed {
		return newErr(AllocError, "free of unallocated or already-freed block")
	}
	blk.freed = true
	blk.data = nil
	return nil
}

// At bounds-checks (block, offset) and returns the slot, so both the unary
// dereference operator and the index operator share one failure path.
func (h *Heap) At(p Pointer) (*Value, error) {
	blk, ok := h.blocks[p.Block]
	if !ok || blk.freed {
		return nil, newErr(AllocError, "dereference of unallocated or freed pointer")
	}
	if p.Offset >= uint64(len(blk.data)) {
		return nil, newErr(AllocError, "pointer offset %d out of bounds (size %d)", p.Offset, len(blk.data))
	}
	return &blk.data[p.Offset], nil
}

// AllocString copies s (plus a trailing NUL) into a fresh block and returns
// a Value wrapping a Pointer to its first byte — the representation every
// string literal and input() result takes, since the language has no
// first-class string type of its own (spec.md §3/§6).
func (h *Heap) AllocString(s string) Value {
	bytes := append([]byte(s), 0)
	ptr := h.Alloc(uint64(len(bytes)))
	blk := h.blocks[ptr.Block]
	for i, b := range bytes {
		blk.data[i] = CharValue(b)
	}
	return OpaqueValue(ptr)
}

// Size reports a block's element count. The `array` built-in
// (builtin_array.go) does not use it: it tracks capacity in its own `cap`
// field.
func (h *Heap) Size(p Pointer) (uint64, error) {
	blk, ok := h.blocks[p.Block]
	if !ok || blk.freed {
		return 0, newErr(AllocError, "size of unallocated or freed pointer")
	}
	return uint64(len(blk.data)), nil
}
