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

	"github.com/npillmayer/combo/compiler"
	"github.com/npillmayer/combo/term"
	"github.com/npillmayer/combo/termlang"
)

// LocalTransport answers requests in-process with the simplifier of package
// compiler. A term is known to be TOP (resp. BOT) if it simplifies to TOP
// (resp. BOT); a term simplifying to one of them is known not to be the
// other. All other answers are Maybe.
type LocalTransport struct {
	Steps int // step limit for simplification, 0 for unbounded
}

var _ Transport = LocalTransport{}

// Call implements Transport. Malformed codes are reported in the error log
// of the response.
func (lt LocalTransport) Call(ctx context.Context, req *Request) (*Response, error) {
	resp := &Response{ID: req.ID}
	for _, code := range req.Simplify {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := lt.simplify(code)
		if err != nil {
			resp.ErrorLog = append(resp.ErrorLog, err.Error())
			continue
		}
		resp.Simplify = append(resp.Simplify, termlang.Print(s))
	}
	for _, code := range req.Validate {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := lt.validate(code)
		if err != nil {
			resp.ErrorLog = append(resp.ErrorLog, err.Error())
			continue
		}
		resp.Validate = append(resp.Validate, v)
	}
	for _, line := range req.ValidateCorpus {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := lt.validate(line.Code)
		if err != nil {
			resp.ErrorLog = append(resp.ErrorLog, fmt.Sprintf("%s: %v", line.Name, err))
			continue
		}
		resp.ValidateCorpus = append(resp.ValidateCorpus, v)
	}
	return resp, nil
}

func (lt LocalTransport) simplify(code string) (*term.Term, error) {
	t, err := termlang.Parse(code)
	if err != nil {
		return nil, err
	}
	return compiler.Simplify(t, compiler.StepLimit(lt.Steps))
}

func (lt LocalTransport) validate(code string) (WireValidity, error) {
	s, err := lt.simplify(code)
	if err == compiler.ErrStepLimit {
		tracer().Infof("validation of %q gave up", code)
		return WireValidity{IsTop: int32(Maybe), IsBot: int32(Maybe)}, nil
	} else if err != nil {
		return WireValidity{}, err
	}
	v := Validity{IsTop: Maybe, IsBot: Maybe}
	switch {
	case s.Is(term.TOP):
		v = Validity{IsTop: True, IsBot: False}
	case s.Is(term.BOT):
		v = Validity{IsTop: False, IsBot: True}
	}
	return WireValidity{IsTop: int32(v.IsTop), IsBot: int32(v.IsBot)}, nil
}
