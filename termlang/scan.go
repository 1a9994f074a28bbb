package termlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/combo"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the term language.
const (
	EOF    combo.TokType = -1
	Symbol combo.TokType = 1 // upper case names, candidates for symbols
	Ident  combo.TokType = 2 // any other run of non-space bytes
)

var lexer *lexmachine.Lexer
var lexerErr error
var lexerOnce sync.Once // monitors one-time compilation of the DFA

// Lexer returns the lexmachine lexer for the term language. The DFA is
// compiled on first use.
func Lexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`[A-Z][A-Z0-9_]*`), makeToken(Symbol))
		lexer.Add([]byte(`[^ \t\n\r]+`), makeToken(Ident))
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(typ combo.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// Scanner is a tokenizer for the term language.
type Scanner struct {
	scanner *lexmachine.Scanner
	Error   func(error) // error handler
}

// NewScanner creates a scanner for a given input.
func NewScanner(input string) (*Scanner, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	s, err := lex.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, Error: logError}, nil
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// SetErrorHandler sets an error handler for the scanner.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		sc.Error = logError
		return
	}
	sc.Error = h
}

// NextToken returns the next token of the input. At the end of input, it
// returns a token of type EOF.
func (sc *Scanner) NextToken() combo.Token {
	tok, err, eof := sc.scanner.Next()
	for err != nil {
		sc.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			sc.scanner.TC = ui.FailTC
		}
		tok, err, eof = sc.scanner.Next()
	}
	if eof {
		return LangToken{toktype: EOF}
	}
	token := tok.(*lexmachine.Token)
	return LangToken{
		toktype: combo.TokType(token.Type),
		lexeme:  string(token.Lexeme),
		span:    combo.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
}

// Tokenize splits an input string into tokens.
func Tokenize(input string) ([]combo.Token, error) {
	sc, err := NewScanner(input)
	if err != nil {
		return nil, err
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	var tokens []combo.Token
	for t := sc.NextToken(); t.TokType() != EOF; t = sc.NextToken() {
		tokens = append(tokens, t)
	}
	if scanErr != nil {
		return tokens, fmt.Errorf("cannot tokenize input: %w", scanErr)
	}
	return tokens, nil
}

// LangToken is the token type produced by Scanner.
type LangToken struct {
	toktype combo.TokType
	lexeme  string
	span    combo.Span
}

func (t LangToken) TokType() combo.TokType {
	return t.toktype
}

func (t LangToken) Lexeme() string {
	return t.lexeme
}

func (t LangToken) Span() combo.Span {
	return t.span
}
