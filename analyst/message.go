package analyst

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"context"
	"fmt"
	"strings"
)

// Trool is a tri-valued truth value. Its values coincide with the wire
// enumeration: MAYBE = 0, TRUE = 1, FALSE = 2.
type Trool int8

// Trool values.
const (
	Maybe Trool = iota
	True
	False
)

func (t Trool) String() string {
	switch t {
	case Maybe:
		return "unknown"
	case True:
		return "true"
	case False:
		return "false"
	}
	return fmt.Sprintf("Trool(%d)", int(t))
}

// DecodeTrool maps a wire value to a Trool.
func DecodeTrool(wire int32) (Trool, error) {
	if wire < int32(Maybe) || wire > int32(False) {
		return Maybe, &ClientError{Message: fmt.Sprintf("invalid trool on the wire: %d", wire)}
	}
	return Trool(wire), nil
}

// TroolOf encodes a known boolean as a Trool.
func TroolOf(b bool) Trool {
	if b {
		return True
	}
	return False
}

// Validity is the result of validating a term.
type Validity struct {
	IsTop Trool
	IsBot Trool
}

func (v Validity) String() string {
	return fmt.Sprintf("is_top=%s is_bot=%s", v.IsTop, v.IsBot)
}

// --- Wire messages ---------------------------------------------------------

// CorpusLine is a possibly named definition of a corpus, in token notation.
type CorpusLine struct {
	Name string // empty for anonymous lines
	Code string
}

// Request is a request to the analysis service. Terms are carried in token
// notation. A request with no fields set is a ping.
type Request struct {
	ID             string
	Simplify       []string
	Validate       []string
	ValidateCorpus []CorpusLine
}

// WireValidity carries a validation result with trools in wire encoding.
type WireValidity struct {
	IsTop int32
	IsBot int32
}

// Response answers a Request with the same ID. Result lists have the
// lengths of the corresponding request lists.
type Response struct {
	ID             string
	Simplify       []string
	Validate       []WireValidity
	ValidateCorpus []WireValidity
	ErrorLog       []string
}

// Transport carries a request to the analysis service and returns the
// response.
type Transport interface {
	Call(ctx context.Context, req *Request) (*Response, error)
}

// ServerError reports the error log of a response.
type ServerError struct {
	Messages []string
}

func (e *ServerError) Error() string {
	return "analyst server errors:\n" + strings.Join(e.Messages, "\n")
}

// ClientError reports an invalid request or a malformed response.
type ClientError struct {
	Message string
}

func (e *ClientError) Error() string {
	return "analyst client error: " + e.Message
}
