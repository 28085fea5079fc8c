package apilint

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// GEN001: the document header must carry openapi, info.title, info.version
// and info.description.
func (l *Linter) checkDocumentHeader() []Violation {
	var vs []Violation
	if mapGet(l.root, "openapi") == nil {
		vs = append(vs, l.violation(l.root.Line, "GEN001", SeverityError,
			"document is missing 'openapi' version field"))
	}
	info := mapGet(l.root, "info")
	if info == nil {
		vs = append(vs, l.violation(l.root.Line, "GEN001", SeverityError,
			"document is missing 'info'"))
		return vs
	}
	for _, field := range []string{"title", "version", "description"} {
		if n := mapGet(info, field); n == nil || n.Value == "" {
			vs = append(vs, l.violation(info.Line, "GEN001", SeverityError,
				fmt.Sprintf("info is missing %q", field)))
		}
	}
	return vs
}

// GEN002: every operation must carry a non-empty tags list.
func (l *Linter) checkOperationTags() []Violation {
	var vs []Violation
	l.forEachOperation(func(path, method string, op *yaml.Node) {
		tags := mapGet(op, "tags")
		if tags == nil || len(tags.Content) == 0 {
			vs = append(vs, l.violation(op.Line, "GEN002", SeverityError,
				fmt.Sprintf("operation %q has no tags", opName(path, method, op))))
		}
	})
	return vs
}

// GEN003: operationId must be present, unique, and snake_case.
func (l *Linter) checkOperationIDs() []Violation {
	var vs []Violation
	seen := map[string]int{} // operationId → first line
	l.forEachOperation(func(path, method string, op *yaml.Node) {
		idNode := mapGet(op, "operationId")
		if idNode == nil || idNode.Value == "" {
			vs = append(vs, l.violation(op.Line, "GEN003", SeverityError,
				fmt.Sprintf("operation %s %s is missing 'operationId'", method, path)))
			return
		}
		if prev, dup := seen[idNode.Value]; dup {
			vs = append(vs, l.violation(idNode.Line, "GEN003", SeverityError,
				fmt.Sprintf("duplicate operationId %q (first seen at line %d)", idNode.Value, prev)))
			return
		}
		seen[idNode.Value] = idNode.Line
		if !snakeCaseRe.MatchString(idNode.Value) {
			vs = append(vs, l.violation(idNode.Line, "GEN003", SeverityInfo,
				fmt.Sprintf("operationId %q is not snake_case", idNode.Value)))
		}
	})
	return vs
}

// GEN004: every operation should carry a summary.
func (l *Linter) checkSummaries() []Violation {
	var vs []Violation
	l.forEachOperation(func(path, method string, op *yaml.Node) {
		if n := mapGet(op, "summary"); n == nil || n.Value == "" {
			vs = append(vs, l.violation(op.Line, "GEN004", SeverityWarning,
				fmt.Sprintf("operation %q has no summary", opName(path, method, op))))
		}
	})
	return vs
}

// GEN005: every path should live under one of the known mount prefixes.
// Skipped when the linter was constructed without prefixes.
func (l *Linter) checkMountPrefixes() []Violation {
	if len(l.prefixes) == 0 {
		return nil
	}
	var vs []Violation
	paths := mapGet(l.root, "paths")
	if paths == nil {
		return nil
	}
	for i := 0; i < len(paths.Content)-1; i += 2 {
		key := paths.Content[i]
		mounted := false
		for _, prefix := range l.prefixes {
			if strings.HasPrefix(key.Value, prefix) {
				mounted = true
				break
			}
		}
		if !mounted {
			vs = append(vs, l.violation(key.Line, "GEN005", SeverityWarning,
				fmt.Sprintf("path %q is outside every known mount prefix", key.Value)))
		}
	}
	return vs
}

// opName names an operation for messages, preferring its operationId.
func opName(path, method string, op *yaml.Node) string {
	if id := operationID(op); id != "" {
		return id
	}
	return method + " " + path
}
