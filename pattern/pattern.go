package pattern

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/combo/term"
)

// Bindings maps names of pattern variables to matched sub-terms.
type Bindings map[string]*term.Term

// Handler is a function
//
//     bindings × extra ↦ term
//
// called for a successful match. Extra arguments are passed through from
// the Matcher call.
type Handler func(m Bindings, extra ...interface{}) (*term.Term, error)

// Clause is a pair of a pattern and a handler.
type Clause struct {
	Pattern *term.Term
	Handler Handler
}

// Matcher dispatches a term to the first clause whose pattern matches.
type Matcher func(t *term.Term, extra ...interface{}) (*term.Term, error)

// NoMatchingClauseError is returned by a Matcher if no pattern matches.
type NoMatchingClauseError struct {
	Term *term.Term
}

func (e *NoMatchingClauseError) Error() string {
	return fmt.Sprintf("no matching pattern for term %s", e.Term)
}

// Variable creates a pattern variable matching any term.
func Variable(name string) *term.Term {
	return &term.Term{Name: term.PatternVar, Ident: name}
}

// VariableOf creates a pattern variable matching terms with a given head
// symbol only. VariableOf("v", term.VAR) binds a complete VAR term, giving
// handlers access to its identifier.
func VariableOf(name string, head string) *term.Term {
	return &term.Term{Name: term.PatternVar, Ident: name, Args: []*term.Term{term.Leaf(head)}}
}

// Match compiles a list of clauses into a Matcher. Clauses are tried in
// the given order.
func Match(clauses ...Clause) Matcher {
	return func(t *term.Term, extra ...interface{}) (*term.Term, error) {
		for _, c := range clauses {
			m := make(Bindings)
			if Matches(c.Pattern, t, m) {
				return c.Handler(m, extra...)
			}
		}
		return nil, &NoMatchingClauseError{Term: t}
	}
}

// Matches checks if a term matches a pattern, recording variable bindings
// in m. If the match fails, m may contain partial bindings.
func Matches(patt, t *term.Term, m Bindings) bool {
	if patt == nil || t == nil {
		return patt == t
	}
	if patt.Name == term.PatternVar {
		if len(patt.Args) > 0 && t.Name != patt.Args[0].Name {
			return false
		}
		m[patt.Ident] = t
		return true
	}
	if patt.Name != t.Name || patt.Ident != t.Ident || len(patt.Args) != len(t.Args) {
		return false
	}
	for i := range patt.Args {
		if !Matches(patt.Args[i], t.Args[i], m) {
			return false
		}
	}
	return true
}
