// Command calculator evaluates a single "<number1> <operator> <number2>"
// expression given as three positional arguments.
package main

import (
	"os"
	"path/filepath"

	"github.com/flarebyte/abacus/internal/exitcode"
)

func main() {
	cmd := newCmd(filepath.Base(os.Args[0]))
	cmd.SetArgs(os.Args[1:])
	os.Exit(exitcode.Report(os.Stderr, cmd.Execute()))
}
