package httpdraft

import (
	"context"
	"net/http"
	"strings"
)

// HTTPRequest converts the value into a *http.Request ready for any
// stdlib-compatible executor. This is the hand-off point at the edge of
// the package: the stdlib canonicalizes header names here (per its own
// rules), but the Request value itself is untouched.
//
//	httpReq, err := req.HTTPRequest(ctx)
//	if err != nil {
//	    return err
//	}
//	resp, err := client.Do(httpReq)
func (r Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	var body *strings.Reader
	if r.hasBody {
		body = strings.NewReader(r.body)
	}

	// http.NewRequestWithContext treats a typed nil reader as non-nil,
	// so the two branches stay separate.
	var (
		req *http.Request
		err error
	)
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, string(r.method), r.uri, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, string(r.method), r.uri, nil)
	}
	if err != nil {
		return nil, err
	}

	// Add, not Set: duplicates in the value stay duplicates on the wire.
	for _, h := range r.headers {
		req.Header.Add(h.Name, h.Value)
	}

	return req, nil
}
