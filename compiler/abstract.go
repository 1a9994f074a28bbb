package compiler

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/combo/pattern"
	"github.com/npillmayer/combo/term"
)

// --- Compile : lambda -> code ----------------------------------------------

var abstract, compile pattern.Matcher

// notFound is returned by abstract for sub-terms not containing the
// variable. It is compared by identity and never escapes this package.
var notFound = &term.Term{Name: "not found"}

func init() {
	abstract = pattern.Match(
		pattern.Clause{Pattern: pattern.VariableOf("v", term.VAR), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			if m["v"].Ident == extra[0].(string) {
				return I, nil
			}
			return notFound, nil
		}},
		pattern.Clause{Pattern: term.App(x, y), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			tx, err := abstract(m["x"], extra...)
			if err != nil {
				return nil, err
			}
			ty, err := abstract(m["y"], extra...)
			if err != nil {
				return nil, err
			}
			switch {
			case tx == notFound && ty == notFound:
				return notFound, nil
			case tx == notFound:
				return term.Comp(m["x"], ty), nil
			case ty == notFound:
				return term.App(term.App(C, tx), m["y"]), nil
			}
			return term.App(term.App(S, tx), ty), nil
		}},
		pattern.Clause{Pattern: x, Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			if m["x"].Contains(extra[0].(string)) {
				return nil, &pattern.NoMatchingClauseError{Term: m["x"]}
			}
			return notFound, nil
		}},
	)
	compile = pattern.Match(
		pattern.Clause{Pattern: term.App(x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(compile, m["x"], m["y"], term.App)
		}},
		pattern.Clause{Pattern: term.Comp(x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(compile, m["x"], m["y"], term.Comp)
		}},
		pattern.Clause{Pattern: term.Join(x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(compile, m["x"], m["y"], term.Join)
		}},
		pattern.Clause{Pattern: term.Rand(x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(compile, m["x"], m["y"], term.Rand)
		}},
		pattern.Clause{Pattern: x, Handler: identity},
	)
}

// Abstract eliminates a variable from a term by bracket abstraction,
// producing a combinator term with no free occurrence of the variable:
//
//     [v] v       = I
//     [v] x y     = COMP(x, [v]y)       if v occurs in y only
//     [v] x y     = C ([v]x) y          if v occurs in x only
//     [v] x y     = S ([v]x) ([v]y)     if v occurs on both sides
//     [v] t       = K t                 if v does not occur in t
//
// COMP, JOIN and RAND are desugared before abstraction. Occurrences of the
// variable inside other constructs (e.g. QUOTE) cannot be abstracted and
// result in a pattern.NoMatchingClauseError.
func Abstract(t *term.Term, varName string) (*term.Term, error) {
	app, err := toAppTree(t)
	if err != nil {
		return nil, err
	}
	f, err := abstract(app, varName)
	if err != nil {
		return nil, err
	}
	if f == notFound {
		return term.App(K, t), nil
	}
	return f, nil
}

// Compile maps a term structurally over APP, COMP, JOIN and RAND.
// Lambda elimination is a separate step, see Eliminate.
func Compile(t *term.Term) (*term.Term, error) {
	return compile(t)
}

// Eliminate removes LAMBDA and LET binders from a term, bottom-up:
//
//     LAMBDA(VAR v, body)     → [v] body
//     LET(VAR v, def, body)   → APP([v] body, def)
//
// Binders with non-variable patterns and LETREC are not supported and
// result in a pattern.NoMatchingClauseError.
func Eliminate(t *term.Term) (*term.Term, error) {
	return eliminate(t)
}

var eliminate pattern.Matcher

func init() {
	v := pattern.VariableOf("v", term.VAR)
	eliminate = pattern.Match(
		pattern.Clause{Pattern: term.Lambda(v, x), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			body, err := eliminate(m["x"])
			if err != nil {
				return nil, err
			}
			return Abstract(body, m["v"].Ident)
		}},
		pattern.Clause{Pattern: term.Let(v, x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			def, err := eliminate(m["x"])
			if err != nil {
				return nil, err
			}
			body, err := eliminate(m["y"])
			if err != nil {
				return nil, err
			}
			f, err := Abstract(body, m["v"].Ident)
			if err != nil {
				return nil, err
			}
			return term.App(f, def), nil
		}},
		pattern.Clause{Pattern: term.App(x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(eliminate, m["x"], m["y"], term.App)
		}},
		pattern.Clause{Pattern: term.Comp(x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(eliminate, m["x"], m["y"], term.Comp)
		}},
		pattern.Clause{Pattern: term.Join(x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(eliminate, m["x"], m["y"], term.Join)
		}},
		pattern.Clause{Pattern: term.Rand(x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(eliminate, m["x"], m["y"], term.Rand)
		}},
		pattern.Clause{Pattern: term.Quote(x), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return unary(eliminate, m["x"], term.Quote)
		}},
		pattern.Clause{Pattern: x, Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			switch m["x"].Name {
			case term.LAMBDA, term.LET, term.LETREC:
				return nil, &pattern.NoMatchingClauseError{Term: m["x"]}
			}
			return m["x"], nil
		}},
	)
}
