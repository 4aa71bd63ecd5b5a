package httpdraft

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Request is an immutable, validated description of an HTTP request.
//
// A Request is produced only by a successful Build and never changes
// afterwards: accessors return copies where the underlying data is a
// slice, and there is no mutation path. Equality is structural (Equal).
// It carries no transport state — executing it is the job of an external
// collaborator, typically via HTTPRequest.
type Request struct {
	uri     string
	method  Method
	body    string
	hasBody bool
	headers []Header
}

// URI returns the request URI exactly as it was assigned to the builder.
func (r Request) URI() string {
	return r.uri
}

// Method returns the request method.
func (r Request) Method() Method {
	return r.method
}

// Body returns the request body and whether one was set. An empty string
// with ok == true means an explicitly empty body, which is distinct from
// no body at all (ok == false).
func (r Request) Body() (body string, ok bool) {
	return r.body, r.hasBody
}

// Headers returns the headers in insertion order. The returned slice is a
// fresh copy on every call; mutating it does not affect the Request.
func (r Request) Headers() []Header {
	if len(r.headers) == 0 {
		return nil
	}
	out := make([]Header, len(r.headers))
	copy(out, r.headers)
	return out
}

// Equal reports structural equality: same URI, method, body presence and
// content, and the same header sequence in the same order.
func (r Request) Equal(other Request) bool {
	if r.uri != other.uri || r.method != other.method {
		return false
	}
	if r.hasBody != other.hasBody || r.body != other.body {
		return false
	}
	if len(r.headers) != len(other.headers) {
		return false
	}
	for i := range r.headers {
		if r.headers[i] != other.headers[i] {
			return false
		}
	}
	return true
}

// String returns a compact single-line summary, e.g.
// "POST https://api.example.com/users (2 headers, body 15B)".
func (r Request) String() string {
	body := "no body"
	if r.hasBody {
		body = fmt.Sprintf("body %dB", len(r.body))
	}
	return fmt.Sprintf("%s %s (%d headers, %s)", r.method, r.uri, len(r.headers), body)
}

// requestJSON is the serialized shape of a Request. Body is a pointer so
// an absent body marshals as null rather than "".
type requestJSON struct {
	URI     string       `json:"uri"`
	Method  Method       `json:"method"`
	Headers []headerJSON `json:"headers,omitempty"`
	Body    *string      `json:"body"`
}

type headerJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MarshalJSON encodes the Request as a JSON snapshot suitable for logs
// and test fixtures. Header order is preserved; an absent body encodes as
// null, an explicitly empty body as "".
func (r Request) MarshalJSON() ([]byte, error) {
	out := requestJSON{
		URI:    r.uri,
		Method: r.method,
	}
	if r.hasBody {
		body := r.body
		out.Body = &body
	}
	for _, h := range r.headers {
		out.Headers = append(out.Headers, headerJSON{Name: h.Name, Value: h.Value})
	}
	return json.Marshal(out)
}
