package wisp

// VariableRef looks a name up in the scope chain and evaluates the found
// binding against the original scope passed in (spec.md §4.3).
type VariableRef struct {
	Name string
}

func (r *VariableRef) Evaluate(scope *Scope) (Value, error) {
	expr, ok := scope.Lookup(r.Name)
	if !ok {
		return Value{}, newErr(NameError, "'%s' is not defined", r.Name)
	}
	return expr.Evaluate(scope)
}

func (r *VariableRef) Clone(scope *Scope) (Expression, error) {
	return &VariableRef{Name: r.Name}, nil
}

// VariableDecl declares NAME, initialized by cloning Init against the
// supplied scope so mutation of the new binding never touches the
// initializer's own tree (spec.md §4.3). Declaration only happens when Name
// is not already present in scope's *local* layer — this is what lets the
// base `for`-loop's init scope keep a persisting loop variable across
// iterations (see expr_control.go's For, which gives the body a fresh child
// scope per iteration precisely so ordinary body-local `var`s don't hit this
// same-scope check a second time; spec.md §9 Open Questions).
type VariableDecl struct {
	Name string
	Init Expression // nil means "no initializer", defaults to Zero
}

func (d *VariableDecl) Evaluate(scope *Scope) (Value, error) {
	var v Value
	if d.Init == nil {
		v = Zero
	} else {
		cloned, err := CloneExpr(d.Init, scope)
		if err != nil {
			return Value{}, err
		}
		v, err = cloned.Evaluate(scope)
		if err != nil {
			return Value{}, err
		}
	}
	if _, exists := scope.Bindings[d.Name]; !exists {
		scope.Declare(d.Name, &ValueLiteral{Value: v})
	}
	return v, nil
}

// Clone evaluates the cloned initializer immediately and returns a
// ValueLiteral holding the result, rather than a fresh VariableDecl. This
// mirrors original_source's VariableDecl::Clone, which is how
// ConstructorCall fills a struct instance's own scope: each field's stored
// initializer is evaluated once per construction, and the instance's binding
// holds the result, so reading the field later does not re-run it
// (expr_struct.go).
func (d *VariableDecl) Clone(scope *Scope) (Expression, error) {
	v := Zero
	if d.Init != nil {
		cloned, err := CloneExpr(d.Init, scope)
		if err != nil {
			return nil, err
		}
		v, err = cloned.Evaluate(scope)
		if err != nil {
			return nil, err
		}
	}
	return &ValueLiteral{Value: v}, nil
}
