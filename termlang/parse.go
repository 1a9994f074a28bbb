package termlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/combo/symtab"
	"github.com/npillmayer/combo/term"
)

// TruncatedInputError is returned when the token stream ends before a term
// is complete.
type TruncatedInputError struct {
	Position int // index of the missing token
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("unexpected end of input at token #%d", e.Position)
}

// TrailingInputError is returned when tokens are left over after a
// complete term.
type TrailingInputError struct {
	Position int      // index of the first surplus token
	Tokens   []string // surplus tokens
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("unexpected input after term at token #%d: %s", e.Position,
		strings.Join(e.Tokens, " "))
}

// Parser is a recursive-descent parser for flat terms, driven by a
// symbol table.
type Parser struct {
	table  *symtab.Table
	tokens []string
	pos    int
}

var _ symtab.TokenSource = (*Parser)(nil)

// NewParser creates a parser for a pre-split sequence of tokens. If table is
// nil, the standard language is used.
func NewParser(table *symtab.Table, tokens []string) *Parser {
	if table == nil {
		table = symtab.Language()
	}
	return &Parser{table: table, tokens: tokens}
}

// Pop consumes the next token. Part of interface symtab.TokenSource.
func (p *Parser) Pop() (string, error) {
	if p.pos >= len(p.tokens) {
		return "", &TruncatedInputError{Position: p.pos}
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, nil
}

// Parse parses the next complete term. Part of interface symtab.TokenSource.
func (p *Parser) Parse() (*term.Term, error) {
	head, err := p.Pop()
	if err != nil {
		return nil, err
	}
	sym, err := p.table.Resolve(head)
	if err != nil {
		return nil, err
	}
	return sym.Parse(p)
}

// Rest returns the tokens not yet consumed.
func (p *Parser) Rest() []string {
	return p.tokens[p.pos:]
}

// Parse parses an input string, given in prefix token format. The input
// has to contain exactly one term.
func Parse(input string) (*term.Term, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	lexemes := make([]string, len(tokens))
	for i, t := range tokens {
		lexemes[i] = t.Lexeme()
	}
	return ParseTokens(lexemes)
}

// ParseTokens parses a pre-split sequence of tokens, which has to contain
// exactly one term of the standard language.
func ParseTokens(tokens []string) (*term.Term, error) {
	return parseAll(NewParser(nil, tokens))
}

// ParseWith parses an input string using the symbols of a given table.
func ParseWith(table *symtab.Table, input string) (*term.Term, error) {
	return parseAll(NewParser(table, strings.Fields(input)))
}

func parseAll(p *Parser) (*term.Term, error) {
	t, err := p.Parse()
	if err != nil {
		tracer().Debugf("parse error: %v", err)
		return nil, err
	}
	if rest := p.Rest(); len(rest) > 0 {
		return nil, &TrailingInputError{Position: p.pos, Tokens: rest}
	}
	tracer().Debugf("parsed %s", t)
	return t, nil
}

// Print flattens a term into tokens in pre-order. It is the inverse of Parse.
func Print(t *term.Term) string {
	return strings.Join(t.Tokens(), " ")
}
