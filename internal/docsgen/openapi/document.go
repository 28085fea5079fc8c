// Package openapi holds the generated document model and its two on-disk
// encodings. The model preserves path insertion order, which is part of the
// observable output: both encodings render paths exactly in the order the
// assembler produced them.
package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

// specVersion is the OpenAPI version declared by every generated document.
const specVersion = "3.1.0"

// Document is one generated API description.
type Document struct {
	OpenAPI string `json:"openapi" yaml:"openapi"`
	Info    Info   `json:"info" yaml:"info"`
	Paths   *Paths `json:"paths" yaml:"paths"`
}

// Info carries the document metadata supplied by the assembler verbatim.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Version     string `json:"version" yaml:"version"`
}

// NewDocument returns an empty document with the given metadata.
func NewDocument(title, description, version string) *Document {
	return &Document{
		OpenAPI: specVersion,
		Info:    Info{Title: title, Description: description, Version: version},
		Paths:   NewPaths(),
	}
}

// Paths is an insertion-ordered mapping from path template to path item.
type Paths struct {
	keys  []string
	items map[string]*PathItem
}

// NewPaths returns an empty path collection.
func NewPaths() *Paths {
	return &Paths{items: map[string]*PathItem{}}
}

// Item returns the path item for the given template, creating it at the end
// of the collection when absent.
func (p *Paths) Item(path string) *PathItem {
	if item, ok := p.items[path]; ok {
		return item
	}
	item := &PathItem{}
	p.keys = append(p.keys, path)
	p.items[path] = item
	return item
}

// Get returns the path item for the given template without creating it.
func (p *Paths) Get(path string) (*PathItem, bool) {
	item, ok := p.items[path]
	return item, ok
}

// Keys returns the path templates in insertion order.
func (p *Paths) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of path templates.
func (p *Paths) Len() int { return len(p.keys) }

// MarshalJSON renders the paths as a JSON object in insertion order.
func (p *Paths) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := encodeJSONValue(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := encodeJSONValue(p.items[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the paths as a YAML mapping node in insertion order.
func (p *Paths) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range p.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(p.items[key]); err != nil {
			return nil, fmt.Errorf("encode path item %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// PathItem holds the operations registered under one path template. Slot
// order fixes the method order in both encodings.
type PathItem struct {
	Get     *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Put     *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Post    *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Delete  *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
	Options *Operation `json:"options,omitempty" yaml:"options,omitempty"`
	Head    *Operation `json:"head,omitempty" yaml:"head,omitempty"`
	Patch   *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
}

// SetOperation stores op under the given HTTP method. A repeated method on
// the same path item overwrites the earlier operation.
func (pi *PathItem) SetOperation(method string, op *Operation) error {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		pi.Get = op
	case http.MethodPut:
		pi.Put = op
	case http.MethodPost:
		pi.Post = op
	case http.MethodDelete:
		pi.Delete = op
	case http.MethodOptions:
		pi.Options = op
	case http.MethodHead:
		pi.Head = op
	case http.MethodPatch:
		pi.Patch = op
	default:
		return fmt.Errorf("unsupported HTTP method %q", method)
	}
	return nil
}

// Operation returns the operation stored under the given method, or nil.
func (pi *PathItem) Operation(method string) *Operation {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		return pi.Get
	case http.MethodPut:
		return pi.Put
	case http.MethodPost:
		return pi.Post
	case http.MethodDelete:
		return pi.Delete
	case http.MethodOptions:
		return pi.Options
	case http.MethodHead:
		return pi.Head
	case http.MethodPatch:
		return pi.Patch
	}
	return nil
}

// Operation is a single path/method entry.
type Operation struct {
	Tags        []string             `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string               `json:"summary,omitempty" yaml:"summary,omitempty"`
	OperationID string               `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Responses   map[string]*Response `json:"responses" yaml:"responses"`
}

// Response describes one response status.
type Response struct {
	Description string `json:"description" yaml:"description"`
}

// defaultResponses is the response set attached to every generated
// operation; route tables carry no response metadata.
func defaultResponses() map[string]*Response {
	return map[string]*Response{"200": {Description: "Successful Response"}}
}

// EncodeJSON renders the document with two-space indentation. Non-ASCII and
// HTML-significant characters are written literally, not escaped.
func EncodeJSON(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeYAML renders the document in block style with two-space indentation,
// key order preserved as produced.
func EncodeYAML(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeJSONValue marshals v without HTML escaping and without the trailing
// newline json.Encoder appends.
func encodeJSONValue(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
