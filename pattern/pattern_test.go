package pattern

import (
	"errors"
	"testing"

	"github.com/npillmayer/combo/term"
)

var x = Variable("x")
var y = Variable("y")

func TestMatchVariable(t *testing.T) {
	m := make(Bindings)
	tt := term.App(term.Leaf(term.K), term.Var("a"))
	if !Matches(x, tt, m) {
		t.Fatalf("variable should match anything")
	}
	if m["x"] != tt {
		t.Errorf("expected x to be bound to %s", tt)
	}
}

func TestMatchConstructor(t *testing.T) {
	patt := term.App(term.App(term.Leaf(term.K), x), y)
	tt := term.App(term.App(term.Leaf(term.K), term.Var("a")), term.Leaf(term.TOP))
	m := make(Bindings)
	if !Matches(patt, tt, m) {
		t.Fatalf("expected %s to match %s", patt, tt)
	}
	if !term.Equal(m["x"], term.Var("a")) || !term.Equal(m["y"], term.Leaf(term.TOP)) {
		t.Errorf("unexpected bindings %v", m)
	}
	if Matches(patt, term.App(term.Leaf(term.K), term.Var("a")), make(Bindings)) {
		t.Errorf("did not expect %s to match", patt)
	}
	if Matches(term.Var("a"), term.Var("b"), make(Bindings)) {
		t.Errorf("VAR a should not match VAR b")
	}
}

func TestMatchEmpty(t *testing.T) {
	patt := term.StackOf(x, term.Empty())
	if !Matches(patt, term.StackOf(term.Leaf(term.I), term.Empty()), make(Bindings)) {
		t.Errorf("expected single element stack to match")
	}
	if Matches(patt, term.StackOf(term.Leaf(term.I), term.Leaf(term.K), term.Empty()), make(Bindings)) {
		t.Errorf("empty marker should only match the empty marker")
	}
}

func TestVariableOf(t *testing.T) {
	v := VariableOf("v", term.VAR)
	m := make(Bindings)
	if !Matches(v, term.Var("a"), m) || m["v"].Ident != "a" {
		t.Errorf("expected VAR a to be bound to v")
	}
	if Matches(v, term.Leaf(term.K), make(Bindings)) {
		t.Errorf("did not expect K to match a VAR variable")
	}
}

func TestFirstMatchWins(t *testing.T) {
	answer := func(name string) Handler {
		return func(m Bindings, extra ...interface{}) (*term.Term, error) {
			return term.Leaf(name), nil
		}
	}
	f := Match(
		Clause{term.App(term.Leaf(term.TOP), x), answer("first")},
		Clause{term.App(x, y), answer("second")},
		Clause{x, answer("third")},
	)
	cases := []struct {
		input    *term.Term
		expected string
	}{
		{term.App(term.Leaf(term.TOP), term.Leaf(term.BOT)), "first"},
		{term.App(term.Leaf(term.BOT), term.Leaf(term.TOP)), "second"},
		{term.Leaf(term.I), "third"},
	}
	for _, c := range cases {
		r, err := f(c.input)
		if err != nil {
			t.Fatal(err)
		}
		if r.Name != c.expected {
			t.Errorf("%s: expected clause %s to fire, was %s", c.input, c.expected, r.Name)
		}
	}
}

func TestExtraArgs(t *testing.T) {
	f := Match(Clause{x, func(m Bindings, extra ...interface{}) (*term.Term, error) {
		return term.Stack(m["x"], extra[0].(*term.Term)), nil
	}})
	r, err := f(term.Leaf(term.K), term.Empty())
	if err != nil {
		t.Fatal(err)
	}
	if !term.Equal(r, term.StackOf(term.Leaf(term.K), term.Empty())) {
		t.Errorf("unexpected result %s", r)
	}
}

func TestNoMatchingClause(t *testing.T) {
	f := Match(Clause{term.Quote(x), func(m Bindings, _ ...interface{}) (*term.Term, error) {
		return m["x"], nil
	}})
	_, err := f(term.Leaf(term.K))
	var nomatch *NoMatchingClauseError
	if !errors.As(err, &nomatch) || nomatch.Term.Name != term.K {
		t.Errorf("expected no-match error for K, have %v", err)
	}
}
