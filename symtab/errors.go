package symtab

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// UnknownTokenError is returned when a token has no registered symbol.
type UnknownTokenError struct {
	Token       string
	Suggestions []string // known symbols close to Token
}

func (e *UnknownTokenError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unrecognized token: %q", e.Token)
	}
	return fmt.Sprintf("unrecognized token: %q (did you mean %s?)", e.Token,
		strings.Join(e.Suggestions, ", "))
}

// ArityError is returned when a constructor is called with the wrong number
// of arguments.
type ArityError struct {
	Symbol string
	Arity  int
	Got    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s(...) called with wrong number of arguments: expected %d, got %d",
		e.Symbol, e.Arity, e.Got)
}

// DuplicateSymbolError is returned when a symbol name is declared twice.
type DuplicateSymbolError struct {
	Symbol string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate symbol: %s", e.Symbol)
}

// suggest returns up to three symbol names resembling token.
func (t *Table) suggest(token string) []string {
	if token == "" {
		return nil
	}
	ranks := fuzzy.RankFindFold(token, t.order)
	sort.Sort(ranks)
	var names []string
	for _, r := range ranks {
		if len(names) == 3 {
			break
		}
		names = append(names, r.Target)
	}
	return names
}
