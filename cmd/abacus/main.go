package main

import (
	"os"

	"github.com/flarebyte/abacus/cmd/abacus/root"
	"github.com/flarebyte/abacus/internal/exitcode"
)

func main() {
	// Errors are printed as a short single line on stderr; the exit code
	// comes from the error when it carries one.
	os.Exit(exitcode.Report(os.Stderr, root.Execute(os.Args[1:])))
}
