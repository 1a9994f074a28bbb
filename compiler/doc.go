/*
Package compiler implements the transforms between the representations of
combinator terms:

    string <-> flat term (package termlang)
    flat term <-> application tree <-> stack (spine)
    point-free combinator term <-> readable LAMBDA/LET form

Application trees spell out COMP, JOIN and RAND as applications of B, J and
R. Stacks are right-nested spines STACK(head, STACK(arg1, … [])), used by
the simplifier to localize rewriting at the head of a term.

All rule tables are ordered pattern clauses (see package pattern). Earlier,
more specific clauses shadow later, general ones.

Simplification is a weak-head-first, then deep normalization. It is not
guaranteed to terminate for arbitrary input; clients requiring bounded
latency use the StepLimit option.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compiler

import (
	"github.com/npillmayer/combo/pattern"
	"github.com/npillmayer/combo/term"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combo.compiler'.
func tracer() tracing.Trace {
	return tracing.Select("combo.compiler")
}

// Pattern variables shared by the rule tables.
var (
	x    = pattern.Variable("x")
	y    = pattern.Variable("y")
	z    = pattern.Variable("z")
	tail = pattern.Variable("tail")
)

// Constants of the language, used in patterns and results. Terms are never
// modified in place, so sharing them is safe.
var (
	TOP = term.Leaf(term.TOP)
	BOT = term.Leaf(term.BOT)
	I   = term.Leaf(term.I)
	K   = term.Leaf(term.K)
	B   = term.Leaf(term.B)
	C   = term.Leaf(term.C)
	S   = term.Leaf(term.S)
	J   = term.Leaf(term.J)
	R   = term.Leaf(term.R)
)

// binary applies a matcher to two sub-terms and combines the results.
func binary(f pattern.Matcher, a, b *term.Term, combine func(x, y *term.Term) *term.Term,
	extra ...interface{}) (*term.Term, error) {
	//
	ta, err := f(a, extra...)
	if err != nil {
		return nil, err
	}
	tb, err := f(b, extra...)
	if err != nil {
		return nil, err
	}
	return combine(ta, tb), nil
}

// unary applies a matcher to a sub-term and wraps the result.
func unary(f pattern.Matcher, a *term.Term, wrap func(x *term.Term) *term.Term,
	extra ...interface{}) (*term.Term, error) {
	//
	ta, err := f(a, extra...)
	if err != nil {
		return nil, err
	}
	return wrap(ta), nil
}

func identity(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
	return m["x"], nil
}

// combinator creates a function building APP(APP(head, x), y).
func combinator(head *term.Term) func(x, y *term.Term) *term.Term {
	return func(x, y *term.Term) *term.Term {
		return term.App(term.App(head, x), y)
	}
}
