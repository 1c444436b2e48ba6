// interpreter.go: the top-level driver (spec.md §2/§6). Lexes and inlines
// imports for the root file, parses it against a fresh global scope,
// evaluates the root block to install every top-level declaration, then
// looks up and calls `main`, printing whatever it returns.
package wisp

import "fmt"

// Run executes the program rooted at path, following the control flow
// spec.md §2 lays out: lex+inline -> parse -> evaluate root -> call main.
// Any *Error surfaced along the way (lexing, parsing or evaluating) is
// returned to the caller exactly as raised, so cmd/wisp can render it with
// its caret snippet and pick the right exit code.
func (ip *Interpreter) Run(path string) error {
	ip.Path = path
	defer ip.closeLine()

	src, err := LoadSource(path)
	if err != nil {
		return err
	}

	parser, err := NewParser(src, path, ip.Global)
	if err != nil {
		return err
	}
	root, err := parser.ParseProgram()
	if err != nil {
		return err
	}

	programScope := NewScope(ip.Global)
	if _, err := root.evalIn(programScope); err != nil {
		if _, ok := asReturn(err); ok {
			return newErr(ControlFlowError, "return outside of a function")
		}
		return err
	}

	mainExpr, ok := programScope.Lookup("main")
	if !ok {
		return newErr(NameError, "no 'main' function defined")
	}
	mainFn, ok := mainExpr.(*StatementList)
	if !ok {
		return newErr(TypeError, "'main' is not a function")
	}

	result, err := ip.callMain(mainFn, programScope)
	if err != nil {
		return err
	}
	// spec.md §2: "prints its result if printable" — an Opaque result (a
	// struct instance or built-in helper state) has no useful textual
	// rendering, so only non-Opaque results are printed.
	if result.Tag != TOpaque {
		fmt.Printf("Value: %s\n", result.String())
	}
	return nil
}

// EvalSource parses and evaluates src as a standalone program against a
// fresh child of the global scope, without requiring (or calling) a `main`
// function. A top-level `return expr;` is caught the same way a function
// call catches one, so a snippet can end in either a bare expression or an
// explicit return. Mainly useful for the REPL-shaped tests in this package;
// cmd/wisp always goes through Run instead.
func (ip *Interpreter) EvalSource(src string) (Value, error) {
	parser, err := NewParser(src, "<eval>", ip.Global)
	if err != nil {
		return Value{}, err
	}
	root, err := parser.ParseProgram()
	if err != nil {
		return Value{}, err
	}
	scope := NewScope(ip.Global)
	result, err := root.evalIn(scope)
	if ret, ok := asReturn(err); ok {
		return ret.Value, nil
	}
	if err != nil {
		return Value{}, err
	}
	return result, nil
}

// callMain invokes `main` through a synthetic zero-argument FunctionCall
// evaluated in scope, so it gets the same Return handling as any other call.
func (ip *Interpreter) callMain(fn *StatementList, scope *Scope) (Value, error) {
	call := &FunctionCall{Name: "main"}
	return call.Evaluate(scope)
}
