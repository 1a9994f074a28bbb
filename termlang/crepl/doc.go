/*
Package crepl/main provides an interactive command line tool (C.REPL)
for combinator terms. C.REPL serves as a sandbox for experiments with term
simplification, bracket abstraction and structural editing of terms with a
cursor.

Terms are entered in prefix notation, e.g.

    crepl> simplify APP APP K VAR x VAR y
    crepl> load LAMBDA VAR x HOLE
    crepl> down
    crepl> right
    crepl> hood

Type 'help' for a list of commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combo.lang'
func tracer() tracing.Trace {
	return tracing.Select("combo.lang")
}
