package symtab

import (
	"fmt"
	"sync"

	"github.com/npillmayer/combo/term"
	"github.com/samber/lo"
)

// TokenSource is the parser's view of a token stream, as seen by the parse
// function of a symbol.
type TokenSource interface {
	Pop() (string, error)       // consume the next token
	Parse() (*term.Term, error) // parse a complete sub-term
}

// ParseFunc parses the arguments of a symbol, after the symbol's token has
// been consumed.
type ParseFunc func(TokenSource) (*term.Term, error)

// --- Symbols ---------------------------------------------------------------

// Symbol is a term constructor of the language.
type Symbol struct {
	name    string
	arity   int
	payload bool // argument is an identifier token, not a sub-term
	parse   ParseFunc
}

// Name gets the symbol's name.
func (s *Symbol) Name() string {
	return s.name
}

// Arity gets the symbol's number of arguments.
func (s *Symbol) Arity() int {
	return s.arity
}

// HasPayload is true for symbols taking an identifier instead of sub-terms.
func (s *Symbol) HasPayload() bool {
	return s.payload
}

// String is a debug Stringer for symbols.
func (s *Symbol) String() string {
	return fmt.Sprintf("<sym '%s'/%d>", s.name, s.arity)
}

// Construct creates a term headed by s. Regular symbols take exactly Arity()
// sub-terms of type *term.Term, payload symbols take a single string.
func (s *Symbol) Construct(args ...interface{}) (*term.Term, error) {
	if len(args) != s.arity {
		return nil, &ArityError{Symbol: s.name, Arity: s.arity, Got: len(args)}
	}
	if s.payload {
		ident, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("%s expects an identifier, got %T", s.name, args[0])
		}
		return term.Var(ident), nil
	}
	if s.arity == 0 {
		return term.Leaf(s.name), nil
	}
	sub := make([]*term.Term, len(args))
	for i, a := range args {
		t, ok := a.(*term.Term)
		if !ok || t == nil {
			return nil, fmt.Errorf("%s expects terms as arguments, argument #%d is %T", s.name, i, a)
		}
		sub[i] = t
	}
	return term.Node(s.name, sub...), nil
}

// Parse runs the symbol's parse function.
func (s *Symbol) Parse(src TokenSource) (*term.Term, error) {
	return s.parse(src)
}

// defaultParser parses exactly arity sub-terms.
func defaultParser(name string, arity int) ParseFunc {
	return func(src TokenSource) (*term.Term, error) {
		if arity == 0 {
			return term.Leaf(name), nil
		}
		args := make([]*term.Term, arity)
		for i := 0; i < arity; i++ {
			arg, err := src.Parse()
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return term.Node(name, args...), nil
	}
}

// varParser consumes the identifier token following VAR.
func varParser(src TokenSource) (*term.Term, error) {
	ident, err := src.Pop()
	if err != nil {
		return nil, err
	}
	return term.Var(ident), nil
}

// === Symbol Tables =========================================================

// Table is a symbol table to store symbols (map-like semantics), remembering
// the order of declaration.
type Table struct {
	symbols map[string]*Symbol
	order   []string
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{
		symbols: make(map[string]*Symbol),
	}
}

// Declare registers a symbol. If parser is nil, the symbol parses exactly
// arity sub-terms.
//
// Returns a DuplicateSymbolError if the name is already declared.
func (t *Table) Declare(name string, arity int, parser ParseFunc) (*Symbol, error) {
	if name == "" || arity < 0 {
		return nil, fmt.Errorf("illegal symbol declaration %q/%d", name, arity)
	}
	if _, exists := t.symbols[name]; exists {
		return nil, &DuplicateSymbolError{Symbol: name}
	}
	if parser == nil {
		parser = defaultParser(name, arity)
	}
	sym := &Symbol{name: name, arity: arity, parse: parser}
	t.symbols[name] = sym
	t.order = append(t.order, name)
	tracer().Debugf("declared symbol %s", sym)
	return sym, nil
}

// DeclarePayload registers a symbol taking a single identifier token.
func (t *Table) DeclarePayload(name string, parser ParseFunc) (*Symbol, error) {
	sym, err := t.Declare(name, 1, parser)
	if err != nil {
		return nil, err
	}
	sym.payload = true
	return sym, nil
}

// Lookup finds a symbol in the table. Returns the symbol or nil.
func (t *Table) Lookup(name string) *Symbol {
	return t.symbols[name]
}

// Resolve finds the symbol for a token.
// Returns an UnknownTokenError if no symbol is registered for the token.
func (t *Table) Resolve(token string) (*Symbol, error) {
	if sym, ok := t.symbols[token]; ok {
		return sym, nil
	}
	return nil, &UnknownTokenError{Token: token, Suggestions: t.suggest(token)}
}

// Construct creates a term headed by the symbol name. See Symbol.Construct.
func (t *Table) Construct(name string, args ...interface{}) (*term.Term, error) {
	sym, err := t.Resolve(name)
	if err != nil {
		return nil, err
	}
	return sym.Construct(args...)
}

// Size counts the symbols in a table.
func (t *Table) Size() int {
	return len(t.symbols)
}

// Each iterates over the symbols in order of declaration.
func (t *Table) Each(mapper func(*Symbol)) {
	for _, name := range t.order {
		mapper(t.symbols[name])
	}
}

// Names returns the names of all symbols of a given arity, in order of
// declaration.
func (t *Table) Names(arity int) []string {
	return lo.Filter(t.order, func(name string, _ int) bool {
		return t.symbols[name].arity == arity
	})
}

// --- The standard language -------------------------------------------------

var language *Table
var languageOnce sync.Once // monitors one-time creation of the standard table

// Language returns the symbol table of the standard combinator language.
// It is created on first use.
func Language() *Table {
	languageOnce.Do(func() {
		tracer().Infof("Creating symbol table")
		language = NewTable()
		for _, name := range []string{
			term.TOP, term.BOT, term.I, term.K, term.B, term.C,
			term.W, term.S, term.J, term.R, term.HOLE,
		} {
			mustDeclare(language.Declare(name, 0, nil))
		}
		mustDeclare(language.Declare(term.QUOTE, 1, nil))
		mustDeclare(language.Declare(term.CURSOR, 1, nil))
		mustDeclare(language.Declare(term.ASSERT, 1, nil))
		mustDeclare(language.DeclarePayload(term.VAR, varParser))
		for _, name := range []string{
			term.APP, term.COMP, term.JOIN, term.RAND,
			term.LAMBDA, term.DEFINE, term.STACK,
		} {
			mustDeclare(language.Declare(name, 2, nil))
		}
		mustDeclare(language.Declare(term.LET, 3, nil))
		mustDeclare(language.Declare(term.LETREC, 3, nil))
	})
	return language
}

func mustDeclare(_ *Symbol, err error) {
	if err != nil {
		panic(fmt.Errorf("cannot initialize symbol table: %w", err))
	}
}
