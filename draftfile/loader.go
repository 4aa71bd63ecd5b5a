package draftfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meridian-labs/httpdraft-go/httpdraft"
)

// File is the top-level shape of a definition file.
type File struct {
	Requests map[string]Definition `yaml:"requests"`
}

// Definition describes one request. Method is optional and defaults to
// GET; Body is a pointer so an omitted body stays absent rather than
// becoming an empty string.
type Definition struct {
	URI     string        `yaml:"uri"`
	Method  string        `yaml:"method,omitempty"`
	Headers []HeaderEntry `yaml:"headers,omitempty"`
	Body    *string       `yaml:"body,omitempty"`
}

// HeaderEntry is one header pair in a definition. Entries keep file order
// and may repeat names.
type HeaderEntry struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Load reads a YAML definition file and compiles every request in it.
func Load(path string) (map[string]httpdraft.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("draftfile: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse compiles YAML definition data into built requests, keyed by the
// definition name. Compilation is all-or-nothing: the first invalid
// definition fails the whole parse.
func Parse(data []byte) (map[string]httpdraft.Request, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("draftfile: parsing definitions: %w", err)
	}

	requests := make(map[string]httpdraft.Request, len(file.Requests))
	for name, def := range file.Requests {
		req, err := def.Compile()
		if err != nil {
			return nil, fmt.Errorf("draftfile: request %q: %w", name, err)
		}
		requests[name] = req
	}
	return requests, nil
}

// Compile builds a single definition through the httpdraft entry point.
func (d Definition) Compile() (httpdraft.Request, error) {
	method := httpdraft.MethodGet
	if d.Method != "" {
		m, err := httpdraft.ParseMethod(d.Method)
		if err != nil {
			return httpdraft.Request{}, err
		}
		method = m
	}

	return httpdraft.New(func(b *httpdraft.Builder) {
		b.URI(d.URI).Method(method)
		if len(d.Headers) > 0 {
			b.Headers(func(h *httpdraft.HeaderSet) {
				for _, entry := range d.Headers {
					h.Add(entry.Name, entry.Value)
				}
			})
		}
		if d.Body != nil {
			b.Body(*d.Body)
		}
	})
}
