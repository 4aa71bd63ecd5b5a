// Package httpdraft builds HTTP requests as immutable value objects,
// without performing any network I/O.
//
// A request is described through a configuration function applied to a
// mutable Builder, then validated and frozen into a Request. The Request
// is a plain value: it can be logged, compared, stored, and handed to
// whatever executor actually performs the network call.
//
// # Quick Start
//
//	req, err := httpdraft.New(func(b *httpdraft.Builder) {
//	    b.URI("https://api.example.com/users").
//	        Method(httpdraft.MethodPost).
//	        Headers(func(h *httpdraft.HeaderSet) {
//	            h.Add("Content-Type", "application/json")
//	        }).
//	        Body(`{"name":"Jane"}`)
//	})
//	if err != nil {
//	    // the only failure: a blank URI
//	}
//
// # Headers
//
// Headers accumulate across Headers calls and keep insertion order.
// Duplicate names are preserved as separate entries and names are never
// case-normalized; the value records exactly what the caller wrote.
//
//	b.Headers(func(h *httpdraft.HeaderSet) {
//	    h.Add("Accept", "application/json")
//	    h.AddPair(httpdraft.Pair("X-Tenant", "acme"))
//	    h.GeneratedRequestID() // X-Request-Id with a fresh UUID
//	})
//
// # Hand-off to an executor
//
// Request.HTTPRequest converts the value into a *http.Request for any
// stdlib-compatible client. Executing the request, retries, and connection
// management are out of scope for this package.
//
//	httpReq, err := req.HTTPRequest(ctx)
//	resp, err := client.Do(httpReq)
//
// # Declarative definitions
//
// The companion package draftfile compiles YAML request definitions into
// Request values through the same builder path.
package httpdraft
