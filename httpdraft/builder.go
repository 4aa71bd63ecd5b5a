package httpdraft

import (
	"fmt"
	"strings"
)

// Builder accumulates the fields of a request under construction.
//
// A Builder is a one-shot, single-goroutine accumulator: New creates one,
// the configuration function mutates it, and Build freezes the state into
// a Request. Building does not consume the builder — Build may be called
// again after further mutation, and each call returns an independent
// snapshot — but a Builder must never be shared across goroutines.
//
//	req, err := httpdraft.New(func(b *httpdraft.Builder) {
//	    b.URI("https://api.example.com/users").Method(httpdraft.MethodPost)
//	})
type Builder struct {
	uri     string
	method  Method
	body    string
	hasBody bool
	headers []Header
}

// NewBuilder returns an empty Builder with the default method (GET), no
// body, and no headers. Most callers use New instead.
func NewBuilder() *Builder {
	return &Builder{method: MethodGet}
}

// URI sets the request URI. The value is stored verbatim; it is only
// checked for blankness at Build time, never parsed or normalized.
func (b *Builder) URI(uri string) *Builder {
	b.uri = uri
	return b
}

// Method sets the request method.
func (b *Builder) Method(m Method) *Builder {
	b.method = m
	return b
}

// Body sets the request body and marks it present. An empty string body
// is distinct from no body at all; only this method makes a body present.
func (b *Builder) Body(body string) *Builder {
	b.body = body
	b.hasBody = true
	return b
}

// Headers runs configure against a fresh HeaderSet, then appends the
// collected headers to the builder's list.
//
// Repeated calls accumulate rather than replace: headers appear in the
// final Request in exactly the order they were added, concatenated across
// Headers calls.
//
//	b.Headers(func(h *httpdraft.HeaderSet) { h.Add("A", "1") })
//	b.Headers(func(h *httpdraft.HeaderSet) { h.Add("B", "2") })
//	// final order: A, B
func (b *Builder) Headers(configure func(*HeaderSet)) *Builder {
	if configure == nil {
		return b
	}
	set := &HeaderSet{}
	configure(set)
	b.headers = append(b.headers, set.snapshot()...)
	return b
}

// Build validates the accumulated state and freezes it into a Request.
//
// The only validation is that the URI is set and not blank (empty or
// whitespace-only); a blank URI yields an error matching
// ErrInvalidConfiguration and no Request. On success the Request holds a
// defensive copy of the header list, so mutating the builder afterwards
// never affects a previously returned Request.
func (b *Builder) Build() (Request, error) {
	if strings.TrimSpace(b.uri) == "" {
		return Request{}, fmt.Errorf("httpdraft: uri must be set and not blank: %w", ErrInvalidConfiguration)
	}

	var headers []Header
	if len(b.headers) > 0 {
		headers = make([]Header, len(b.headers))
		copy(headers, b.headers)
	}

	return Request{
		uri:     b.uri,
		method:  b.method,
		body:    b.body,
		hasBody: b.hasBody,
		headers: headers,
	}, nil
}

// New is the package entry point: it creates one Builder, applies the
// caller's configuration function, and returns the result of Build.
//
// Exactly one Builder and at most one Request are produced per call. The
// call is synchronous and has no side effects beyond its return values.
func New(configure func(*Builder)) (Request, error) {
	b := NewBuilder()
	if configure != nil {
		configure(b)
	}
	return b.Build()
}
