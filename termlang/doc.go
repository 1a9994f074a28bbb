/*
Package termlang provides a parser and a printer for the prefix token
language of combinator terms.

Terms serialize to whitespace-separated tokens in prefix notation, e.g.

    APP K VAR x        for APP(K, VAR x)

VAR is always immediately followed by exactly one identifier token. Parsing
is recursive descent, driven entirely by a symbol table (see package
symtab): a token is popped, the parse function registered for it parses
exactly arity sub-terms. Printing is the inverse pre-order flattening, so

    Parse(Print(t)) = t

for every well-formed term t.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package termlang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combo.lang'
func tracer() tracing.Trace {
	return tracing.Select("combo.lang")
}
