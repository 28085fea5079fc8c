// Package apilint checks generated OpenAPI documents against AIHub API
// conventions: every operation tagged and identified, metadata complete,
// paths mounted under known prefixes. It works on gopkg.in/yaml.v3 raw nodes
// so findings keep their line numbers.
package apilint

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// Severity levels for lint findings.
type Severity string

// Severity constants.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// sevRank maps severity to a numeric rank for comparison.
var sevRank = map[Severity]int{SeverityInfo: 0, SeverityWarning: 1, SeverityError: 2}

// Violation is a single lint finding.
type Violation struct {
	File     string
	Line     int
	RuleID   string
	Severity Severity
	Message  string
}

// String formats a violation in golangci-lint style.
func (v Violation) String() string {
	return fmt.Sprintf("%s:%d: %s %s: %s", v.File, v.Line, v.RuleID, v.Severity, v.Message)
}

// Linter holds one parsed document and runs the convention checks on it.
type Linter struct {
	file     string
	root     *yaml.Node
	prefixes []string // known mount prefixes; empty disables the prefix check
}

// New parses the given YAML (or JSON) document and returns a Linter. The
// optional prefixes are the mount prefixes paths are expected to live under.
func New(path string, prefixes ...string) (*Linter, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the caller
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%s: empty or invalid document", path)
	}
	return &Linter{file: path, root: doc.Content[0], prefixes: prefixes}, nil
}

// Run executes every check and returns findings sorted by line number.
func (l *Linter) Run() []Violation {
	checks := []func() []Violation{
		l.checkDocumentHeader,
		l.checkOperationTags,
		l.checkOperationIDs,
		l.checkSummaries,
		l.checkMountPrefixes,
	}
	var vs []Violation
	for _, check := range checks {
		vs = append(vs, check()...)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].Line < vs[j].Line })
	return vs
}

// HasErrors returns true if any finding has error severity.
func HasErrors(vs []Violation) bool {
	for _, v := range vs {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Filter returns findings at or above the given severity.
func Filter(vs []Violation, minSev Severity) []Violation {
	minRank := sevRank[minSev]
	var out []Violation
	for _, v := range vs {
		if sevRank[v.Severity] >= minRank {
			out = append(out, v)
		}
	}
	return out
}

func (l *Linter) violation(line int, ruleID string, sev Severity, msg string) Violation {
	return Violation{File: l.file, Line: line, RuleID: ruleID, Severity: sev, Message: msg}
}

// forEachOperation calls fn for every (path, method, operationNode).
func (l *Linter) forEachOperation(fn func(path, method string, op *yaml.Node)) {
	paths := mapGet(l.root, "paths")
	if paths == nil {
		return
	}
	for i := 0; i < len(paths.Content)-1; i += 2 {
		pathKey := paths.Content[i].Value
		pathItem := paths.Content[i+1]
		if pathItem.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j < len(pathItem.Content)-1; j += 2 {
			method := pathItem.Content[j].Value
			if httpMethods[method] {
				fn(pathKey, method, pathItem.Content[j+1])
			}
		}
	}
}

// === YAML helpers ===

// mapGet looks up a key in a YAML mapping node and returns the value node.
func mapGet(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(m.Content)-1; i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// operationID extracts the operationId from an operation node.
func operationID(op *yaml.Node) string {
	if n := mapGet(op, "operationId"); n != nil {
		return n.Value
	}
	return ""
}

// httpMethods is the set of HTTP methods in OpenAPI path items.
var httpMethods = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true,
	"options": true, "head": true, "patch": true, "trace": true,
}

// snakeCaseRe matches snake_case identifiers.
var snakeCaseRe = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)
