// Command wisp runs a single source file (spec.md §6): the one positional
// argument is the path to the program's root file; a missing argument is a
// usage error printed to stderr with a non-zero exit, and any *Error the
// interpreter raises while loading or running the program is printed the
// same way.
package main

import (
	"fmt"
	"os"

	"github.com/wisplang/wisp"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "USAGE ERROR: usage: %s <path>\n", os.Args[0])
		os.Exit(1)
	}

	ip := wisp.NewInterpreter()
	if err := ip.Run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
