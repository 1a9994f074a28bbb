/*
Package symtab implements the symbol table of the combinator language.

Every term constructor is registered by name and arity. The table supplies
constructors with arity checking and a token-level parse function per
symbol, which drives the recursive-descent parser of package termlang.
VAR is special: its parse function consumes the following token as an
identifier payload instead of parsing a sub-term.

Names are unique within a table and the arity of a name is fixed for the
lifetime of the table. Language() returns the standard table, created once
per process.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symtab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combo.lang'.
func tracer() tracing.Trace {
	return tracing.Select("combo.lang")
}
