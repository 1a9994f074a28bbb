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
	"strconv"
	"sync"

	"github.com/npillmayer/combo/term"
	"github.com/npillmayer/combo/termlang"
	"github.com/samber/lo"
)

// Client calls an analysis service through a Transport. Simplification
// results are cached per term. Clients are safe for concurrent use.
type Client struct {
	transport  Transport
	mutex      sync.Mutex
	nextID     int
	simplified map[string]*term.Term // by fingerprint
}

// NewClient creates a client for a transport.
func NewClient(transport Transport) *Client {
	return &Client{
		transport:  transport,
		simplified: make(map[string]*term.Term),
	}
}

func (c *Client) call(ctx context.Context, req *Request) (*Response, error) {
	c.mutex.Lock()
	req.ID = strconv.Itoa(c.nextID)
	c.nextID++
	c.mutex.Unlock()
	tracer().Debugf("analyst request %s", req.ID)
	resp, err := c.transport.Call(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.ID != req.ID {
		return nil, &ClientError{Message: fmt.Sprintf("response %q does not answer request %q", resp.ID, req.ID)}
	}
	for _, msg := range resp.ErrorLog {
		tracer().Errorf("analyst: %s", msg)
	}
	if len(resp.ErrorLog) > 0 {
		return nil, &ServerError{Messages: resp.ErrorLog}
	}
	return resp, nil
}

// Ping sends an empty request.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.call(ctx, &Request{})
	return err
}

// Simplify asks the service to simplify terms. Results are in the order of
// the arguments.
func (c *Client) Simplify(ctx context.Context, terms []*term.Term) ([]*term.Term, error) {
	results := make([]*term.Term, len(terms))
	var missing []int
	c.mutex.Lock()
	for i, t := range terms {
		if s, ok := c.simplified[t.Fingerprint()]; ok {
			results[i] = s
		} else {
			missing = append(missing, i)
		}
	}
	c.mutex.Unlock()
	if len(missing) == 0 {
		return results, nil
	}
	codes := lo.Map(missing, func(i int, _ int) string {
		return termlang.Print(terms[i])
	})
	resp, err := c.call(ctx, &Request{Simplify: codes})
	if err != nil {
		return nil, err
	}
	if len(resp.Simplify) != len(codes) {
		return nil, &ClientError{Message: fmt.Sprintf("expected %d simplified terms, got %d",
			len(codes), len(resp.Simplify))}
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for j, code := range resp.Simplify {
		s, err := termlang.Parse(code)
		if err != nil {
			return nil, &ClientError{Message: fmt.Sprintf("cannot decode %q: %v", code, err)}
		}
		i := missing[j]
		results[i] = s
		c.simplified[terms[i].Fingerprint()] = s
	}
	return results, nil
}

// Validate asks the service whether terms are equal to TOP or BOT.
func (c *Client) Validate(ctx context.Context, terms []*term.Term) ([]Validity, error) {
	codes := lo.Map(terms, func(t *term.Term, _ int) string {
		return termlang.Print(t)
	})
	resp, err := c.call(ctx, &Request{Validate: codes})
	if err != nil {
		return nil, err
	}
	return decodeValidities(resp.Validate, len(codes))
}

// Definition is a possibly named term of a corpus.
type Definition struct {
	Name string
	Term *term.Term
}

// ValidateCorpus validates the definitions of a corpus as a whole.
func (c *Client) ValidateCorpus(ctx context.Context, corpus []Definition) ([]Validity, error) {
	lines := lo.Map(corpus, func(d Definition, _ int) CorpusLine {
		return CorpusLine{Name: d.Name, Code: termlang.Print(d.Term)}
	})
	resp, err := c.call(ctx, &Request{ValidateCorpus: lines})
	if err != nil {
		return nil, err
	}
	return decodeValidities(resp.ValidateCorpus, len(lines))
}

func decodeValidities(wire []WireValidity, expected int) ([]Validity, error) {
	if len(wire) != expected {
		return nil, &ClientError{Message: fmt.Sprintf("expected %d results, got %d", expected, len(wire))}
	}
	results := make([]Validity, len(wire))
	for i, w := range wire {
		top, err := DecodeTrool(w.IsTop)
		if err != nil {
			return nil, err
		}
		bot, err := DecodeTrool(w.IsBot)
		if err != nil {
			return nil, err
		}
		results[i] = Validity{IsTop: top, IsBot: bot}
	}
	return results, nil
}
