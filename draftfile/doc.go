// Package draftfile loads declarative HTTP request definitions from YAML
// and compiles them into httpdraft.Request values.
//
// A definition file names requests and describes each one with the same
// fields the builder exposes:
//
//	requests:
//	  createUser:
//	    uri: https://api.example.com/users
//	    method: POST
//	    headers:
//	      - name: Content-Type
//	        value: application/json
//	    body: '{"name":"Jane"}'
//
// Headers are a list, not a map, so insertion order and duplicate names
// survive the format. Omitting body leaves it absent; body: "" sets an
// explicitly empty body. Every definition passes through the httpdraft
// builder, so the same validation applies: a blank uri fails with
// httpdraft.ErrInvalidConfiguration.
package draftfile
