package symtab

import (
	"errors"
	"testing"

	"github.com/npillmayer/combo/term"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewTable(t *testing.T) {
	symtab := NewTable()
	if symtab == nil || symtab.Size() != 0 {
		t.Error("no empty symbol table created")
	}
}

func TestDeclare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combo.lang")
	defer teardown()
	//
	symtab := NewTable()
	sym, err := symtab.Declare("FOO", 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sym.Name() != "FOO" || sym.Arity() != 2 {
		t.Errorf("symbol not stored correctly: %v", sym)
	}
	if s := symtab.Lookup("FOO"); s != sym {
		t.Error("cannot find stored symbol in table")
	}
}

func TestDuplicateSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combo.lang")
	defer teardown()
	//
	symtab := NewTable()
	symtab.Declare("FOO", 0, nil)
	_, err := symtab.Declare("FOO", 1, nil)
	var dup *DuplicateSymbolError
	if !errors.As(err, &dup) || dup.Symbol != "FOO" {
		t.Errorf("expected duplicate symbol error, got %v", err)
	}
	if symtab.Lookup("FOO").Arity() != 0 {
		t.Errorf("arity of FOO must not change")
	}
}

func TestConstructArity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combo.lang")
	defer teardown()
	//
	lang := Language()
	x := term.Var("x")
	_, err := lang.Construct(term.APP, x)
	var arity *ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("expected arity error, got %v", err)
	}
	if arity.Arity != 2 || arity.Got != 1 {
		t.Errorf("arity error has wrong counts: %v", arity)
	}
	app, err := lang.Construct(term.APP, term.Leaf(term.K), x)
	if err != nil {
		t.Fatal(err)
	}
	if !term.Equal(app, term.App(term.Leaf(term.K), x)) {
		t.Errorf("unexpected term %s", app)
	}
}

func TestConstructVar(t *testing.T) {
	lang := Language()
	v, err := lang.Construct(term.VAR, "x")
	if err != nil {
		t.Fatal(err)
	}
	if !term.Equal(v, term.Var("x")) {
		t.Errorf("expected VAR x, got %s", v)
	}
	if _, err = lang.Construct(term.VAR, term.Var("x")); err == nil {
		t.Errorf("expected VAR to reject a term argument")
	}
	if _, err = lang.Construct(term.K, "x"); err == nil {
		t.Errorf("expected K to reject arguments")
	}
}

func TestUnknownToken(t *testing.T) {
	lang := Language()
	_, err := lang.Resolve("LAMDA")
	var unknown *UnknownTokenError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected unknown token error, got %v", err)
	}
	if len(unknown.Suggestions) == 0 || unknown.Suggestions[0] != term.LAMBDA {
		t.Errorf("expected LAMBDA to be suggested, have %v", unknown.Suggestions)
	}
	t.Logf("error message: %v", err)
}

func TestLanguage(t *testing.T) {
	lang := Language()
	if lang != Language() {
		t.Errorf("standard language should be created once")
	}
	if lang.Size() != 24 {
		t.Errorf("expected 24 symbols, have %d", lang.Size())
	}
	if n := len(lang.Names(0)); n != 11 {
		t.Errorf("expected 11 constants, have %d", n)
	}
	if !lang.Lookup(term.VAR).HasPayload() {
		t.Errorf("VAR should take a payload")
	}
	if lang.Lookup(term.LETREC).Arity() != 3 {
		t.Errorf("LETREC should have arity 3")
	}
	count := 0
	lang.Each(func(sym *Symbol) {
		if count == 0 && sym.Name() != term.TOP {
			t.Errorf("expected TOP to be declared first, is %s", sym.Name())
		}
		count++
	})
	if count != lang.Size() {
		t.Errorf("Each visited %d symbols, expected %d", count, lang.Size())
	}
}
