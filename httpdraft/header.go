package httpdraft

import "github.com/google/uuid"

// RequestIDHeader is the header name used by GeneratedRequestID.
const RequestIDHeader = "X-Request-Id"

// Header is an immutable name/value pair. Equality is structural; names
// and values are stored exactly as given, with no trimming, case folding,
// or validation. Empty strings are accepted.
type Header struct {
	Name  string
	Value string
}

// Pair constructs a Header. It exists so a pair can be handed to AddPair
// as a single unit:
//
//	h.AddPair(httpdraft.Pair("Accept", "application/json"))
//
// It is pure convenience over Add; both forms append identically.
func Pair(name, value string) Header {
	return Header{Name: name, Value: value}
}

// HeaderSet accumulates headers in insertion order for one Headers call.
//
// A fresh HeaderSet is created for every Builder.Headers invocation and
// discarded afterwards; its collected sequence is copied into the builder.
// It performs no validation and no deduplication — duplicate names become
// separate entries, and malformed names are a transport concern.
//
// A HeaderSet is not safe for concurrent use, matching the single-threaded
// construction contract of Builder.
type HeaderSet struct {
	headers []Header
}

// Add appends a header with the given name and value.
func (h *HeaderSet) Add(name, value string) *HeaderSet {
	h.headers = append(h.headers, Header{Name: name, Value: value})
	return h
}

// AddPair appends an already-constructed Header. Equivalent to
// Add(p.Name, p.Value).
func (h *HeaderSet) AddPair(p Header) *HeaderSet {
	h.headers = append(h.headers, p)
	return h
}

// GeneratedRequestID appends an X-Request-Id header carrying a fresh
// UUIDv4, for correlating the eventual request across services.
func (h *HeaderSet) GeneratedRequestID() *HeaderSet {
	return h.Add(RequestIDHeader, uuid.NewString())
}

// snapshot returns a copy of the accumulated sequence. The copy keeps the
// collector's internal slice from aliasing the builder's list.
func (h *HeaderSet) snapshot() []Header {
	if len(h.headers) == 0 {
		return nil
	}
	out := make([]Header, len(h.headers))
	copy(out, h.headers)
	return out
}
