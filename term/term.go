package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/cnf/structhash"
)

// Symbol names of the language.
const (
	TOP  = "TOP"
	BOT  = "BOT"
	I    = "I"
	K    = "K"
	B    = "B"
	C    = "C"
	W    = "W"
	S    = "S"
	J    = "J"
	R    = "R"
	HOLE = "HOLE"

	QUOTE  = "QUOTE"
	CURSOR = "CURSOR"
	ASSERT = "ASSERT"
	VAR    = "VAR"

	APP    = "APP"
	COMP   = "COMP"
	JOIN   = "JOIN"
	RAND   = "RAND"
	LAMBDA = "LAMBDA"
	DEFINE = "DEFINE"
	STACK  = "STACK"

	LET    = "LET"
	LETREC = "LETREC"
)

// PatternVar is the head of pattern variables (see package pattern). It is
// not a symbol of the language and never appears in parsed terms.
const PatternVar = "?"

// Term is a node of a flat term.
//
// Name is the symbol name, or "" for the empty stack marker.
// Ident is the identifier payload of VAR terms and the variable name of
// pattern variables. Args are the sub-terms.
type Term struct {
	Name  string
	Ident string
	Args  []*Term
}

// Leaf creates a 0-ary term.
func Leaf(name string) *Term {
	return &Term{Name: name}
}

// Node creates a term with sub-terms. It does not check arities, which is
// the job of a symbol table (see package symtab).
func Node(name string, args ...*Term) *Term {
	return &Term{Name: name, Args: args}
}

// Var creates VAR(ident).
func Var(ident string) *Term {
	return &Term{Name: VAR, Ident: ident}
}

// Empty returns the marker terminating a stack.
func Empty() *Term {
	return &Term{}
}

// App creates APP(x, y).
func App(x, y *Term) *Term { return Node(APP, x, y) }

// Comp creates COMP(x, y).
func Comp(x, y *Term) *Term { return Node(COMP, x, y) }

// Join creates JOIN(x, y).
func Join(x, y *Term) *Term { return Node(JOIN, x, y) }

// Rand creates RAND(x, y).
func Rand(x, y *Term) *Term { return Node(RAND, x, y) }

// Quote creates QUOTE(x).
func Quote(x *Term) *Term { return Node(QUOTE, x) }

// Lambda creates LAMBDA(pattern, body).
func Lambda(patt, body *Term) *Term { return Node(LAMBDA, patt, body) }

// Let creates LET(pattern, definition, body).
func Let(patt, def, body *Term) *Term { return Node(LET, patt, def, body) }

// Letrec creates LETREC(pattern, definition, body).
func Letrec(patt, def, body *Term) *Term { return Node(LETREC, patt, def, body) }

// Stack creates STACK(head, tail).
func Stack(head, tail *Term) *Term { return Node(STACK, head, tail) }

// StackOf creates a right-nested stack from its arguments. The last
// argument is the tail. Use as
//
//     StackOf(x, y, z, Empty())   // STACK(x, STACK(y, STACK(z, [])))
//
func StackOf(items ...*Term) *Term {
	if len(items) == 0 {
		return Empty()
	}
	tail := items[len(items)-1]
	for i := len(items) - 2; i >= 0; i-- {
		tail = Stack(items[i], tail)
	}
	return tail
}

// IsLeaf is true for 0-ary symbols.
func (t *Term) IsLeaf() bool {
	return t != nil && len(t.Args) == 0 && t.Name != VAR && t.Name != "" && t.Name != PatternVar
}

// IsEmpty is true for the stack terminator.
func (t *Term) IsEmpty() bool {
	return t != nil && t.Name == "" && len(t.Args) == 0
}

// Is checks the head symbol of a term.
func (t *Term) Is(name string) bool {
	return t != nil && t.Name == name
}

// Equal compares two terms structurally.
func Equal(a, b *Term) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Name != b.Name || a.Ident != b.Ident || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !Equal(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}

// Contains is true if a VAR with the given identifier occurs in t.
func (t *Term) Contains(ident string) bool {
	if t == nil {
		return false
	}
	if t.Name == VAR {
		return t.Ident == ident
	}
	for _, a := range t.Args {
		if a.Contains(ident) {
			return true
		}
	}
	return false
}

// Tokens flattens a term in pre-order.
func (t *Term) Tokens() []string {
	return appendTokens(make([]string, 0, 16), t)
}

func appendTokens(tokens []string, t *Term) []string {
	switch {
	case t == nil:
		return tokens
	case t.Name == VAR:
		return append(tokens, VAR, t.Ident)
	case t.Name == PatternVar:
		return append(tokens, "?"+t.Ident)
	case t.Name == "":
		return append(tokens, "[]")
	}
	tokens = append(tokens, t.Name)
	for _, a := range t.Args {
		tokens = appendTokens(tokens, a)
	}
	return tokens
}

// String is a debug Stringer, printing a term in token notation.
func (t *Term) String() string {
	if t == nil {
		return "<nil>"
	}
	return strings.Join(t.Tokens(), " ")
}

// Fingerprint returns a hash value identifying a term by its structure.
// Structurally equal terms have equal fingerprints.
func (t *Term) Fingerprint() string {
	h, err := structhash.Hash(t, 1)
	if err != nil { // cannot happen for the types of Term
		panic(err)
	}
	return h
}
