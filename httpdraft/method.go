package httpdraft

import (
	"fmt"
	"net/http"
	"strings"
)

// Method is an HTTP request method. Only the seven constants below are
// valid; the zero value is not a method, and Builder defaults to MethodGet.
type Method string

const (
	MethodGet     Method = http.MethodGet
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodDelete  Method = http.MethodDelete
	MethodPatch   Method = http.MethodPatch
	MethodHead    Method = http.MethodHead
	MethodOptions Method = http.MethodOptions
)

// methods is the closed set of valid methods.
var methods = map[Method]struct{}{
	MethodGet:     {},
	MethodPost:    {},
	MethodPut:     {},
	MethodDelete:  {},
	MethodPatch:   {},
	MethodHead:    {},
	MethodOptions: {},
}

// IsValid reports whether m is one of the seven supported methods.
func (m Method) IsValid() bool {
	_, ok := methods[m]
	return ok
}

// String returns the method as it appears on the wire, e.g. "GET".
func (m Method) String() string {
	return string(m)
}

// ParseMethod converts a string into a Method, case-insensitively.
//
// It is the boundary for untyped input such as configuration files:
//
//	m, err := httpdraft.ParseMethod("post") // MethodPost
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("httpdraft: unsupported method %q", s)
	}
	return m, nil
}
