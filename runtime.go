// runtime.go: the Interpreter value every Scope, Heap access and builtin
// ultimately hangs off (spec.md §2). Grounded on the teacher's own
// top-level driver struct, generalized to own the heap arena alongside the
// global scope.
package wisp

import "github.com/peterh/liner"

// Interpreter owns everything a running program shares: the global scope
// every file-level declaration lands in, the heap arena backing every
// pointer, and the line-editing state behind the input() builtin.
type Interpreter struct {
	Global *Scope
	Heap   *Heap
	Path   string

	line *liner.State
}

// NewInterpreter builds a fresh global scope, installs every builtin
// (builtins.go, builtin_array.go) and returns an Interpreter ready to run a
// program via Run.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{Heap: NewHeap()}
	ip.Global = &Scope{Bindings: make(map[string]Expression), IP: ip}
	installBuiltins(ip)
	installArrayStruct(ip)
	return ip
}

// closeLine releases the liner.State opened lazily by input(), if any.
func (ip *Interpreter) closeLine() {
	if ip.line != nil {
		ip.line.Close()
		ip.line = nil
	}
}
