// builtin_array.go: the `array` record every program gets for free
// (spec.md §6), implemented as an ordinary StructDecl installed directly
// into the global scope rather than parsed from source — its three fields
// (data/len/cap) and three native methods (at/add/size) work exactly like
// a user-defined struct's, just pre-registered. Grounded on
// original_source/include/NativeFunctions.hpp's array built-in, which is
// likewise a struct-shaped wrapper over a raw buffer with a doubling growth
// strategy for add().
package wisp

// heapAllocExpr is a field initializer that allocates a fresh zero-length
// heap block at clone time, one per instance (VariableDecl.Clone evaluates
// its Init exactly once per ConstructorCall, which is exactly the timing an
// `array`'s own backing buffer needs).
type heapAllocExpr struct{}

func (heapAllocExpr) Evaluate(scope *Scope) (Value, error) {
	return OpaqueValue(scope.IP.Heap.Alloc(0)), nil
}
func (h heapAllocExpr) Clone(scope *Scope) (Expression, error) { return h, nil }

func installArrayStruct(ip *Interpreter) {
	content := map[string]Expression{
		"data": &VariableDecl{Name: "data", Init: heapAllocExpr{}},
		"len":  &VariableDecl{Name: "len", Init: &ValueLiteral{Value: SizeValue(0)}},
		"cap":  &VariableDecl{Name: "cap", Init: &ValueLiteral{Value: SizeValue(0)}},
		"size": &StatementList{Native: arraySize},
		"at":   &StatementList{Params: []string{"i"}, Native: arrayAt},
		"add":  &StatementList{Params: []string{"v"}, Native: arrayAdd},
	}
	ip.Global.Declare("array", &StructDecl{
		Name:    "array",
		Order:   []string{"data", "len", "cap"},
		Members: []string{"data", "len", "cap", "size", "at", "add"},
		Content: content,
	})
}

func getField(scope *Scope, name string) (Value, error) {
	expr, ok := scope.Lookup(name)
	if !ok {
		return Value{}, newErr(NameError, "'%s' not found", name)
	}
	return expr.Evaluate(scope)
}

func setField(scope *Scope, name string, v Value) {
	if !scope.Set(name, &ValueLiteral{Value: v}) {
		scope.Declare(name, &ValueLiteral{Value: v})
	}
}

func arraySize(ip *Interpreter, args []Value, scope *Scope) (Value, error) {
	return getField(scope, "len")
}

func arrayAt(ip *Interpreter, args []Value, scope *Scope) (Value, error) {
	if err := requireArgs("at", args, 1); err != nil {
		return Value{}, err
	}
	data, err := getField(scope, "data")
	if err != nil {
		return Value{}, err
	}
	length, err := getField(scope, "len")
	if err != nil {
		return Value{}, err
	}
	idx := args[0].AsUint64()
	if idx >= length.AsUint64() {
		return Value{}, newErr(AllocError, "array index %d out of bounds (size %d)", idx, length.AsUint64())
	}
	ptr := data.Opaque.(Pointer)
	slot, err := ip.Heap.At(Pointer{Block: ptr.Block, Offset: ptr.Offset + idx})
	if err != nil {
		return Value{}, err
	}
	return *slot, nil
}

// arrayAdd appends every argument in order (spec.md §6: "add(v, …) ->
// appends"), growing the backing block by doubling whenever it fills up.
func arrayAdd(ip *Interpreter, args []Value, scope *Scope) (Value, error) {
	if err := requireArgs("add", args, 1); err != nil {
		return Value{}, err
	}
	for _, v := range args {
		if err := arrayAddOne(ip, scope, v); err != nil {
			return Value{}, err
		}
	}
	return Zero, nil
}

func arrayAddOne(ip *Interpreter, scope *Scope, v Value) error {
	data, err := getField(scope, "data")
	if err != nil {
		return err
	}
	length, err := getField(scope, "len")
	if err != nil {
		return err
	}
	cap_, err := getField(scope, "cap")
	if err != nil {
		return err
	}
	ptr := data.Opaque.(Pointer)
	l, c := length.AsUint64(), cap_.AsUint64()

	if l == c {
		newCap := c * 2
		if newCap == 0 {
			newCap = 1
		}
		newPtr, err := ip.Heap.Realloc(ptr, newCap)
		if err != nil {
			return err
		}
		ptr = newPtr
		setField(scope, "data", OpaqueValue(ptr))
		setField(scope, "cap", SizeValue(newCap))
	}

	slot, err := ip.Heap.At(Pointer{Block: ptr.Block, Offset: l})
	if err != nil {
		return err
	}
	*slot = v
	setField(scope, "len", SizeValue(l+1))
	return nil
}
