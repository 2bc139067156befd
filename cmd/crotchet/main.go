// Crotchet is an interpreter for a small bracketed expression language. It
// runs .crl scripts, starts a REPL when given no script, and can serve as a
// language server for editors.
package main

import (
	"os"

	"src.crotchet.dev/pkg/buildinfo"
	"src.crotchet.dev/pkg/lsp"
	"src.crotchet.dev/pkg/prog"
	"src.crotchet.dev/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, lsp.Program{}, &shell.Program{})))
}
