package wisp

// StatementList represents both a block of statements and a function body
// (spec.md §4.3). Native, when set, marks this as a built-in: FunctionCall
// evaluates each call argument against the *caller's* scope and invokes
// Native directly instead of opening the usual by-value-frozen child scope
// (see builtins.go). NoLocalScope, when set, means Evaluate runs directly in
// the scope it is given instead of opening a child of it — set by the
// parser only on the program root (the driver supplies the scope). Function
// bodies do not rely on it: FunctionCall runs them through evalIn in the
// scope it has bound the by-value arguments into.
type StatementList struct {
	Stmts        []Expression
	NoLocalScope bool
	Params       []string // declared parameter names, for a function body
	Native       func(ip *Interpreter, args []Value, scope *Scope) (Value, error)
}

func (b *StatementList) Evaluate(scope *Scope) (Value, error) {
	if b.Native != nil {
		return b.Native(scope.IP, nil, scope)
	}

	if b.NoLocalScope {
		return b.evalIn(scope)
	}
	target := NewScope(scope)
	result, err := b.evalIn(target)
	target.releaseLocals(escapingValue(result, err))
	return result, err
}

// escapingValue reports the value, if any, propagating out of a
// just-finished scope by way of an explicit `return`. releaseLocals uses it
// so a struct instance being returned isn't destroyed by the very scope
// that's handing it upward. A scope that merely falls off its last
// statement (no `return`) transfers nothing: that result is the caller's to
// use or discard, but it never had a claim on the callee scope's own
// bindings, so every local strong reference there is released normally.
func escapingValue(result Value, err error) Value {
	if ret, ok := asReturn(err); ok {
		return ret.Value
	}
	return Value{}
}

// evalIn runs the statement list's own statements directly in target, with
// no further scope creation. FunctionCall uses this directly (instead of
// Evaluate) so a called function's body executes in exactly the scope its
// arguments were bound into, regardless of b.NoLocalScope — see expr_func.go.
func (b *StatementList) evalIn(target *Scope) (Value, error) {
	result := Zero
	for _, stmt := range b.Stmts {
		v, err := stmt.Evaluate(target)
		if err != nil {
			return Value{}, err
		}
		result = v
	}
	return result, nil
}

func (b *StatementList) Clone(scope *Scope) (Expression, error) {
	if b.Native != nil {
		return b, nil
	}
	clonedStmts := make([]Expression, len(b.Stmts))
	for i, s := range b.Stmts {
		c, err := CloneExpr(s, scope)
		if err != nil {
			return nil, err
		}
		clonedStmts[i] = c
	}
	return &StatementList{Stmts: clonedStmts, NoLocalScope: b.NoLocalScope, Params: b.Params}, nil
}
