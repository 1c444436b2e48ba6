// expr_op.go: unary and binary operators, member access and pointer
// indexing (spec.md §4.2/§4.3). Grounded on
// original_source/include/AST/AST.hpp's UnaryExpr/BinaryExpr/IndexExpr,
// reworked around heap.go's bounds-checked arena instead of raw pointers.
package wisp

// lvalue abstracts the handful of expression shapes that an assignment
// form (=, +=, ...) or ++/-- can target: a bare name, a dot-accessed field,
// or a pointer index.
func loadLValue(scope *Scope, target Expression) (Value, error) {
	return target.Evaluate(scope)
}

func storeLValue(scope *Scope, target Expression, v Value) error {
	switch t := target.(type) {
	case *VariableRef:
		if !scope.Set(t.Name, &ValueLiteral{Value: v}) {
			return newErr(NameError, "'%s' is not defined", t.Name)
		}
		return nil
	case *IndexExpr:
		ptr, err := t.pointer(scope)
		if err != nil {
			return err
		}
		slot, err := scope.IP.Heap.At(ptr)
		if err != nil {
			return err
		}
		*slot = v
		return nil
	case *BinaryExpr:
		if t.Op != "." {
			return newErr(TypeError, "left-hand side is not assignable")
		}
		instScope, err := t.memberScope(scope)
		if err != nil {
			return err
		}
		field, ok := t.Right.(*VariableRef)
		if !ok {
			return newErr(TypeError, "left-hand side is not assignable")
		}
		if !instScope.Set(field.Name, &ValueLiteral{Value: v}) {
			instScope.Declare(field.Name, &ValueLiteral{Value: v})
		}
		return nil
	default:
		return newErr(TypeError, "left-hand side is not assignable")
	}
}

// UnaryExpr covers +, -, !, the pointer operator $ (dereference or
// address-of depending on the operand), and prefix/postfix ++/--.
type UnaryExpr struct {
	Op      string
	Operand Expression
	Prefix  bool // only meaningful for ++/--
}

func (n *UnaryExpr) Evaluate(scope *Scope) (Value, error) {
	switch n.Op {
	case "+":
		return n.Operand.Evaluate(scope)
	case "-":
		v, err := n.Operand.Evaluate(scope)
		if err != nil {
			return Value{}, err
		}
		return Neg(v), nil
	case "!":
		v, err := n.Operand.Evaluate(scope)
		if err != nil {
			return Value{}, err
		}
		return Not(v), nil
	case "$":
		// spec.md §4.3: if the operand holds a Size (here: our arena Pointer
		// stand-in, per heap.go) it dereferences to a view at that address;
		// otherwise it returns a Size holding the raw address of the
		// operand's own backing storage. Since Go scope bindings aren't
		// themselves arena slots, the address-of branch boxes the operand's
		// current value into a fresh one-cell block rather than aliasing
		// the variable's own storage (a documented safe-port simplification,
		// see DESIGN.md) — writes through the resulting pointer do not
		// write back through the original variable.
		v, err := n.Operand.Evaluate(scope)
		if err != nil {
			return Value{}, err
		}
		if v.Tag == TOpaque {
			if ptr, ok := v.Opaque.(Pointer); ok {
				slot, err := scope.IP.Heap.At(ptr)
				if err != nil {
					return Value{}, err
				}
				return *slot, nil
			}
		}
		ptr := scope.IP.Heap.Alloc(1)
		slot, err := scope.IP.Heap.At(ptr)
		if err != nil {
			return Value{}, err
		}
		*slot = v
		return OpaqueValue(ptr), nil
	case "++", "--":
		old, err := loadLValue(scope, n.Operand)
		if err != nil {
			return Value{}, err
		}
		var next Value
		if n.Op == "++" {
			next = Add(old, IntValue(1))
		} else {
			next = Sub(old, IntValue(1))
		}
		if err := storeLValue(scope, n.Operand, next); err != nil {
			return Value{}, err
		}
		if n.Prefix {
			return next, nil
		}
		return old, nil
	}
	return Value{}, newErr(TypeError, "unknown unary operator '%s'", n.Op)
}

func (n *UnaryExpr) Clone(scope *Scope) (Expression, error) {
	op, err := CloneExpr(n.Operand, scope)
	if err != nil {
		return nil, err
	}
	return &UnaryExpr{Op: n.Op, Operand: op, Prefix: n.Prefix}, nil
}

// BinaryExpr covers arithmetic, comparison, logical, member access (.) and
// every assignment form.
type BinaryExpr struct {
	Op          string
	Left, Right Expression
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true,
	"%=": true, "&=": true, "|=": true, "^=": true,
}

func (n *BinaryExpr) Evaluate(scope *Scope) (Value, error) {
	if n.Op == "." {
		instScope, err := n.memberScope(scope)
		if err != nil {
			return Value{}, err
		}
		return n.Right.Evaluate(instScope)
	}

	if assignOps[n.Op] {
		rhs, err := n.Right.Evaluate(scope)
		if err != nil {
			return Value{}, err
		}
		result := rhs
		if n.Op != "=" {
			cur, err := loadLValue(scope, n.Left)
			if err != nil {
				return Value{}, err
			}
			result = applyCompound(n.Op, cur, rhs)
		}
		if err := storeLValue(scope, n.Left, result); err != nil {
			return Value{}, err
		}
		return result, nil
	}

	l, err := n.Left.Evaluate(scope)
	if err != nil {
		return Value{}, err
	}
	r, err := n.Right.Evaluate(scope)
	if err != nil {
		return Value{}, err
	}
	switch n.Op {
	case "+":
		return Add(l, r), nil
	case "-":
		return Sub(l, r), nil
	case "*":
		return Mul(l, r), nil
	case "/":
		return Div(l, r), nil
	case "%":
		return Mod(l, r), nil
	case "&":
		return BitAnd(l, r), nil
	case "|":
		return BitOr(l, r), nil
	case "^":
		return BitXor(l, r), nil
	case "&&":
		return LogicalAnd(l, r), nil
	case "||":
		return LogicalOr(l, r), nil
	case "==":
		return Eq(l, r), nil
	case "!=":
		return Neq(l, r), nil
	case "<":
		return Lt(l, r), nil
	case ">":
		return Gt(l, r), nil
	case "<=":
		return Le(l, r), nil
	case ">=":
		return Ge(l, r), nil
	}
	return Value{}, newErr(TypeError, "unknown binary operator '%s'", n.Op)
}

func applyCompound(op string, cur, rhs Value) Value {
	switch op {
	case "+=":
		return Add(cur, rhs)
	case "-=":
		return Sub(cur, rhs)
	case "*=":
		return Mul(cur, rhs)
	case "/=":
		return Div(cur, rhs)
	case "%=":
		return Mod(cur, rhs)
	case "&=":
		return BitAnd(cur, rhs)
	case "|=":
		return BitOr(cur, rhs)
	case "^=":
		return BitXor(cur, rhs)
	}
	return IntValue(0)
}

// memberScope evaluates Left and returns a transient scope for evaluating
// the right-hand side against: per spec.md §4.3, "construct a transient
// scope whose parent is the caller scope but whose local bindings equal
// the instance's scope's locals" (original_source/include/AST/AST.hpp:
// combinedScope = make_shared<Scope>(scope); combinedScope->symbols =
// instance->localScope->symbols). Sharing the instance's Bindings map
// (rather than copying it) means a field write through Set during the
// dot-RHS still lands in the instance's own scope. Parenting on the caller
// scope instead of the global scope lets a method argument that names a
// caller-local resolve correctly.
func (n *BinaryExpr) memberScope(scope *Scope) (*Scope, error) {
	v, err := n.Left.Evaluate(scope)
	if err != nil {
		return nil, err
	}
	if v.Tag != TOpaque {
		return nil, newErr(TypeError, "'.' requires a struct instance")
	}
	var inst *StructInstance
	switch h := v.Opaque.(type) {
	case Strong:
		inst = h.Instance()
	case Weak:
		locked, ok := h.Lock()
		if !ok {
			return nil, newErr(TypeError, "struct instance no longer alive")
		}
		inst = locked
	default:
		return nil, newErr(TypeError, "'.' requires a struct instance")
	}
	return &Scope{Parent: scope, Bindings: inst.Scope.Bindings, IP: scope.IP}, nil
}

func (n *BinaryExpr) Clone(scope *Scope) (Expression, error) {
	l, err := CloneExpr(n.Left, scope)
	if err != nil {
		return nil, err
	}
	r, err := CloneExpr(n.Right, scope)
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Op: n.Op, Left: l, Right: r}, nil
}

// IndexExpr dereferences Base (a pointer) offset by Idx element units,
// e.g. p[i] (spec.md §6's array-style pointer indexing, implemented over
// heap.go's arena rather than raw address arithmetic).
type IndexExpr struct {
	Base Expression
	Idx  Expression
}

func (n *IndexExpr) pointer(scope *Scope) (Pointer, error) {
	base, err := n.Base.Evaluate(scope)
	if err != nil {
		return Pointer{}, err
	}
	ptr, ok := base.Opaque.(Pointer)
	if base.Tag != TOpaque || !ok {
		return Pointer{}, newErr(TypeError, "index requires a pointer")
	}
	idxVal, err := n.Idx.Evaluate(scope)
	if err != nil {
		return Pointer{}, err
	}
	if !idxVal.isIntegral() {
		return Pointer{}, newErr(TypeError, "index requires an integral value")
	}
	return Pointer{Block: ptr.Block, Offset: ptr.Offset + idxVal.AsUint64()}, nil
}

func (n *IndexExpr) Evaluate(scope *Scope) (Value, error) {
	ptr, err := n.pointer(scope)
	if err != nil {
		return Value{}, err
	}
	slot, err := scope.IP.Heap.At(ptr)
	if err != nil {
		return Value{}, err
	}
	return *slot, nil
}

func (n *IndexExpr) Clone(scope *Scope) (Expression, error) {
	base, err := CloneExpr(n.Base, scope)
	if err != nil {
		return nil, err
	}
	idx, err := CloneExpr(n.Idx, scope)
	if err != nil {
		return nil, err
	}
	return &IndexExpr{Base: base, Idx: idx}, nil
}
