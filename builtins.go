// builtins.go: the free functions every program gets without declaring
// them (spec.md §6). Each is installed as a *StatementList with Native set,
// exactly the shape FunctionCall already knows how to invoke (expr_func.go).
package wisp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
)

// native wraps fn as a *StatementList with Native set. It records no arity:
// expr_func.go evaluates Native's arguments against the caller's scope
// without consulting Params/arity at all, so each native that needs
// arguments guards its own args slice with requireArgs.
func native(fn func(ip *Interpreter, args []Value, scope *Scope) (Value, error)) *StatementList {
	return &StatementList{Native: fn}
}

func requireArgs(name string, args []Value, n int) error {
	if len(args) < n {
		return newErr(ArityError, "'%s' expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func installBuiltins(ip *Interpreter) {
	ip.Global.Declare("print", native(builtinPrint))
	ip.Global.Declare("println", native(builtinPrintln))
	ip.Global.Declare("input", native(builtinInput))
	ip.Global.Declare("alloc", native(builtinAlloc))
	ip.Global.Declare("realloc", native(builtinRealloc))
	ip.Global.Declare("free", native(builtinFree))
	ip.Global.Declare("assert", native(builtinAssert))
}

// renderForPrint special-cases an Opaque pointer as a C-string (read bytes
// from the heap until a NUL), matching how string literals are represented
// (parser.go's stringLit, heap.go's AllocString); every other variant falls
// back to Value.String.
func renderForPrint(ip *Interpreter, v Value) string {
	if v.Tag == TOpaque {
		if ptr, ok := v.Opaque.(Pointer); ok {
			var sb []byte
			for i := uint64(0); ; i++ {
				slot, err := ip.Heap.At(Pointer{Block: ptr.Block, Offset: ptr.Offset + i})
				if err != nil || slot.AsByte() == 0 {
					break
				}
				sb = append(sb, slot.AsByte())
			}
			return string(sb)
		}
	}
	return v.String()
}

// builtinPrint stringifies every argument in order and writes them to
// stdout with no separator (spec.md §6: "Stringify each arg and write to
// stdout").
func builtinPrint(ip *Interpreter, args []Value, scope *Scope) (Value, error) {
	for _, a := range args {
		fmt.Print(renderForPrint(ip, a))
	}
	return Zero, nil
}

// builtinPrintln is print plus a trailing newline after every argument has
// been written (spec.md §6).
func builtinPrintln(ip *Interpreter, args []Value, scope *Scope) (Value, error) {
	for _, a := range args {
		fmt.Print(renderForPrint(ip, a))
	}
	fmt.Println()
	return Zero, nil
}

// builtinInput takes no arguments (spec.md §6) and reads one line from
// stdin through liner (history/line-editing), matching how the teacher's
// REPL reads from stdin. EOF yields an empty string; any other error from
// liner falls back to reading the line with a plain bufio.Scanner.
func builtinInput(ip *Interpreter, args []Value, scope *Scope) (Value, error) {
	if ip.line == nil {
		ip.line = liner.NewLiner()
	}
	text, err := ip.line.Prompt("")
	if errors.Is(err, io.EOF) {
		return ip.Heap.AllocString(""), nil
	}
	if err != nil {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			return ip.Heap.AllocString(scanner.Text()), nil
		}
		return ip.Heap.AllocString(""), nil
	}
	ip.line.AppendHistory(text)
	return ip.Heap.AllocString(text), nil
}

func builtinAlloc(ip *Interpreter, args []Value, scope *Scope) (Value, error) {
	if err := requireArgs("alloc", args, 1); err != nil {
		return Value{}, err
	}
	if !args[0].isIntegral() {
		return Value{}, newErr(TypeError, "alloc expects an integral size")
	}
	return OpaqueValue(ip.Heap.Alloc(args[0].AsUint64())), nil
}

func builtinRealloc(ip *Interpreter, args []Value, scope *Scope) (Value, error) {
	if err := requireArgs("realloc", args, 3); err != nil {
		return Value{}, err
	}
	ptr, ok := args[0].Opaque.(Pointer)
	if args[0].Tag != TOpaque || !ok {
		return Value{}, newErr(TypeError, "realloc expects a pointer")
	}
	if !args[2].isIntegral() {
		return Value{}, newErr(TypeError, "realloc expects an integral size")
	}
	next, err := ip.Heap.Realloc(ptr, args[2].AsUint64())
	if err != nil {
		return Value{}, err
	}
	return OpaqueValue(next), nil
}

func builtinFree(ip *Interpreter, args []Value, scope *Scope) (Value, error) {
	if err := requireArgs("free", args, 1); err != nil {
		return Value{}, err
	}
	ptr, ok := args[0].Opaque.(Pointer)
	if args[0].Tag != TOpaque || !ok {
		return Value{}, newErr(TypeError, "free expects a pointer")
	}
	if err := ip.Heap.Free(ptr); err != nil {
		return Value{}, err
	}
	return Zero, nil
}

func builtinAssert(ip *Interpreter, args []Value, scope *Scope) (Value, error) {
	if err := requireArgs("assert", args, 1); err != nil {
		return Value{}, err
	}
	if !ToBool(args[0]) {
		return Value{}, newErr(AssertionFailed, "assertion failed")
	}
	return Zero, nil
}
