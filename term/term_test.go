package term

import "testing"

func TestStackOf(t *testing.T) {
	x, y, z := Var("x"), Var("y"), Var("z")
	s := StackOf(x, y, z, Empty())
	expected := Stack(x, Stack(y, Stack(z, Empty())))
	if !Equal(s, expected) {
		t.Errorf("expected %s, got %s", expected, s)
	}
	if !StackOf().IsEmpty() {
		t.Errorf("expected empty stack for no arguments")
	}
}

func TestEqual(t *testing.T) {
	a := App(Leaf(K), Var("x"))
	b := App(Leaf(K), Var("x"))
	c := App(Leaf(K), Var("y"))
	if !Equal(a, b) {
		t.Errorf("expected %s = %s", a, b)
	}
	if Equal(a, c) {
		t.Errorf("expected %s ≠ %s", a, c)
	}
	if Equal(a, nil) {
		t.Errorf("expected term ≠ nil")
	}
}

func TestTokens(t *testing.T) {
	q := Quote(App(Lambda(Node(CURSOR, Var("x")), Var("x")), Leaf(HOLE)))
	if s := q.String(); s != "QUOTE APP LAMBDA CURSOR VAR x VAR x HOLE" {
		t.Errorf("unexpected token string %q", s)
	}
}

func TestContains(t *testing.T) {
	a := App(Leaf(K), Quote(Var("x")))
	if !a.Contains("x") {
		t.Errorf("expected x to occur in %s", a)
	}
	if a.Contains("y") {
		t.Errorf("expected y not to occur in %s", a)
	}
}

func TestLeafPredicates(t *testing.T) {
	if !Leaf(TOP).IsLeaf() {
		t.Errorf("TOP should be a leaf")
	}
	if Var("x").IsLeaf() {
		t.Errorf("VAR x should not be a leaf")
	}
	if Empty().IsLeaf() || !Empty().IsEmpty() {
		t.Errorf("empty marker misclassified")
	}
}

func TestFingerprint(t *testing.T) {
	a := Comp(Var("x"), Leaf(I))
	b := Comp(Var("x"), Leaf(I))
	c := Comp(Var("x"), Leaf(K))
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("equal terms should have equal fingerprints")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Errorf("different terms should have different fingerprints")
	}
}
