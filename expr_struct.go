// expr_struct.go: struct declarations, instances and construction (spec.md
// §4.3). Grounded on original_source/include/AST/AST.hpp's StructDecl,
// StructInstance and ConstructorCall, with ownership tracked explicitly via
// refcount.go instead of the original's shared_ptr/weak_ptr pair.
package wisp

// StructDecl declares a record type: Order lists its `var` field names in
// declaration order (used for positional construction), Content holds every
// member (fields and methods alike) keyed by name, ready to be cloned fresh
// into each new instance's own scope.
type StructDecl struct {
	Name    string
	Order   []string // `var` field names only, in declaration order (positional construction)
	Members []string // every member name (fields and methods), in declaration order
	Content map[string]Expression
}

func (d *StructDecl) Evaluate(scope *Scope) (Value, error) {
	scope.Declare(d.Name, d)
	return Zero, nil
}

func (d *StructDecl) Clone(scope *Scope) (Expression, error) {
	return d, nil // struct declarations themselves are never cloned, only their members
}

// StructInstance is a live record: its own Scope (fields and methods,
// parented on the global scope) plus the refcounted lifetime that decides
// when `_<Name>` fires.
type StructInstance struct {
	Name  string
	Scope *Scope
	rc    *refCounted
}

// destroy runs the instance's destructor, if any, then releases every
// struct-valued field it owns in turn (refcount.go's newStrong wires this as
// the onZero callback fired when the last Strong handle drops).
func (inst *StructInstance) destroy() {
	if expr, ok := inst.Scope.Lookup("_" + inst.Name); ok {
		expr.Evaluate(inst.Scope)
	}
	inst.Scope.releaseLocals(Value{})
}

// ConstructorCall builds a new instance of the struct named Name, either by
// invoking a same-named constructor method with the call's arguments or, if
// there is none, by positionally assigning the arguments to Order's fields
// (spec.md §4.3).
type ConstructorCall struct {
	Name string
	Args []Expression
}

func (c *ConstructorCall) Evaluate(scope *Scope) (Value, error) {
	decl, ok := scope.Lookup(c.Name)
	if !ok {
		return Value{}, newErr(NameError, "'%s' is not defined", c.Name)
	}
	structDecl, ok := decl.(*StructDecl)
	if !ok {
		return Value{}, newErr(TypeError, "'%s' is not a struct", c.Name)
	}

	// Arguments are evaluated against the caller's scope up front: the
	// instance's own scope is parented on the global scope, not the call
	// site, so the raw argument expressions wouldn't resolve correctly if
	// evaluated lazily inside it.
	args := make([]Value, len(c.Args))
	for i, a := range c.Args {
		v, err := a.Evaluate(scope)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	global := scope.IP.Global
	instScope := NewScope(global)
	for _, name := range structDecl.Members {
		cloned, err := CloneExpr(structDecl.Content[name], instScope)
		if err != nil {
			return Value{}, err
		}
		instScope.Declare(name, cloned)
	}

	inst := &StructInstance{Name: structDecl.Name, Scope: instScope}
	strong := newStrong(inst)
	instScope.Declare("this", &ValueLiteral{Value: OpaqueValue(strong.Weak())})

	if ctor, ok := instScope.Bindings[structDecl.Name].(*StatementList); ok {
		if len(args) < len(ctor.Params) {
			return Value{}, newErr(ArityError, "'%s' constructor expects %d argument(s), got %d", c.Name, len(ctor.Params), len(args))
		}
		paramScope := NewScope(instScope)
		for i, name := range ctor.Params {
			paramScope.Declare(name, &ValueLiteral{Value: args[i]})
		}
		result, err := ctor.evalIn(paramScope)
		final := escapingValue(result, err)
		paramScope.releaseLocals(final)
		if err != nil {
			if _, ok := asReturn(err); !ok {
				return Value{}, err
			}
		}
	} else {
		n := len(args)
		if n > len(structDecl.Order) {
			n = len(structDecl.Order)
		}
		for i := 0; i < n; i++ {
			instScope.Bindings[structDecl.Order[i]] = &ValueLiteral{Value: args[i]}
		}
	}

	return OpaqueValue(strong), nil
}

func (c *ConstructorCall) Clone(scope *Scope) (Expression, error) {
	args := make([]Expression, len(c.Args))
	copy(args, c.Args)
	return &ConstructorCall{Name: c.Name, Args: args}, nil
}
