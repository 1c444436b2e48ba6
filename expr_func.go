package wisp

// FunctionDecl installs its body under Name when evaluated (spec.md §4.3).
// Evaluate always (re-)installs, unlike VariableDecl, which only declares
// once: a function re-declared in the same scope simply replaces the prior
// binding, matching the parser's "duplicate top-level symbol is fatal" rule
// operating only at parse time, not at eval time.
type FunctionDecl struct {
	Name string
	Body *StatementList
}

func (f *FunctionDecl) Evaluate(scope *Scope) (Value, error) {
	scope.Declare(f.Name, f.Body)
	return Zero, nil
}

// Clone produces a fresh *StatementList wrapper sharing the same statement
// nodes (methods are shared code, but each struct instance needs its own
// callable binding so FunctionCall can find it directly in the instance's
// scope — see expr_struct.go's ConstructorCall and original_source's
// FunctionDecl::Clone, which does the same shallow StatementList copy).
func (f *FunctionDecl) Clone(scope *Scope) (Expression, error) {
	stmts := make([]Expression, len(f.Body.Stmts))
	copy(stmts, f.Body.Stmts)
	return &StatementList{
		Stmts:        stmts,
		NoLocalScope: f.Body.NoLocalScope,
		Params:       f.Body.Params,
		Native:       f.Body.Native,
	}, nil
}

// FunctionCall invokes the StatementList bound to Name (spec.md §4.3).
//
// The child scope built to hold the by-value-frozen arguments is parented
// on the scope the call itself is evaluated in (not a separately-tracked
// closure environment) — grounded directly on
// original_source/include/AST/AST.hpp's FunctionCall::Evaluate, which builds
// `localScope` as a child of the scope it receives before resolving Name in
// it. For a free function this ends up equivalent to "global plus whatever
// the call site can already see"; for a method invoked through `.`, the
// scope passed in is BinaryExpr's transient instance-bindings scope, so
// `this` and fields resolve through the param scope's parent chain without
// FunctionCall needing any separate notion of "the method's home scope".
type FunctionCall struct {
	Name string
	Args []Expression
}

func (c *FunctionCall) Evaluate(scope *Scope) (Value, error) {
	expr, ok := scope.Lookup(c.Name)
	if !ok {
		return Value{}, newErr(NameError, "function '%s' not found", c.Name)
	}
	body, ok := expr.(*StatementList)
	if !ok {
		return Value{}, newErr(TypeError, "'%s' is not a function", c.Name)
	}

	if body.Native != nil {
		args := make([]Value, len(c.Args))
		for i, a := range c.Args {
			v, err := a.Evaluate(scope)
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		}
		return body.Native(scope.IP, args, scope)
	}

	if len(c.Args) < len(body.Params) {
		return Value{}, newErr(ArityError, "'%s' expects %d argument(s), got %d", c.Name, len(body.Params), len(c.Args))
	}

	// Pre-evaluate every argument against the caller's scope before binding,
	// freezing by-value semantics (spec.md §8: calling f(x, y) never mutates
	// the caller's bindings of x, y).
	paramScope := NewScope(scope)
	for i, name := range body.Params {
		v, err := c.Args[i].Evaluate(scope)
		if err != nil {
			return Value{}, err
		}
		paramScope.Declare(name, &ValueLiteral{Value: v})
	}

	result, err := body.evalIn(paramScope)
	final := escapingValue(result, err)
	paramScope.releaseLocals(final)
	if err != nil {
		if _, ok := asReturn(err); ok {
			return final, nil
		}
		return Value{}, err
	}
	return result, nil
}

func (c *FunctionCall) Clone(scope *Scope) (Expression, error) {
	args := make([]Expression, len(c.Args))
	copy(args, c.Args)
	return &FunctionCall{Name: c.Name, Args: args}, nil
}
