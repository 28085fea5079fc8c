package openapi

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
)

// OperationDescriber is implemented by route handlers that carry their own
// documentation metadata. Handlers without it get a summary and operation
// name derived from the route's method and pattern.
type OperationDescriber interface {
	// DescribeOperation returns the human summary and the operation name.
	// The name is qualified with the mounted path and method to form the
	// document's operationId.
	DescribeOperation() (summary, name string)
}

// AppendRoutes walks a route table and appends one operation per registered
// route, mounted under prefix and tagged with tags. A repeated method+path
// overwrites the earlier operation; nothing is deduplicated otherwise.
func AppendRoutes(doc *Document, prefix string, tags []string, routes chi.Routes) error {
	if routes == nil {
		return errors.New("nil route table")
	}
	walkFn := func(method, route string, handler http.Handler, _ ...func(http.Handler) http.Handler) error {
		path := joinPath(prefix, route)
		op := &Operation{Tags: tags, Responses: defaultResponses()}
		summary, name := "", ""
		if d, ok := handler.(OperationDescriber); ok {
			summary, name = d.DescribeOperation()
		}
		if summary == "" {
			summary = deriveSummary(method, route)
		}
		if name == "" {
			name = deriveName(route)
		}
		op.Summary = summary
		op.OperationID = operationID(name, path, method)
		return doc.Paths.Item(path).SetOperation(method, op)
	}
	if err := chi.Walk(routes, walkFn); err != nil {
		return fmt.Errorf("walk routes: %w", err)
	}
	return nil
}

// joinPath mounts a route pattern under a prefix. A bare "/" route keeps its
// trailing slash, so "/api/v1/users" + "/" yields "/api/v1/users/".
func joinPath(prefix, route string) string {
	prefix = strings.TrimSuffix(prefix, "/")
	if route == "" {
		route = "/"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	return prefix + route
}

// nonWordRe matches every character that cannot appear in an operationId.
var nonWordRe = regexp.MustCompile(`\W`)

// operationID builds the document operationId from the operation name, the
// mounted path and the method, so identical names in different subsystems
// stay distinct in the combined document.
func operationID(name, path, method string) string {
	slug := nonWordRe.ReplaceAllString(path, "_")
	for strings.Contains(slug, "__") {
		slug = strings.ReplaceAll(slug, "__", "_")
	}
	slug = strings.Trim(slug, "_")
	parts := make([]string, 0, 3)
	if name != "" {
		parts = append(parts, name)
	}
	if slug != "" {
		parts = append(parts, slug)
	}
	parts = append(parts, strings.ToLower(method))
	return strings.Join(parts, "_")
}

// deriveSummary builds a fallback summary from the method and the route
// pattern's segments, path parameters included without their braces.
func deriveSummary(method, route string) string {
	words := []string{capitalize(strings.ToLower(method))}
	for _, seg := range strings.Split(route, "/") {
		seg = strings.Trim(seg, "{}")
		if seg == "" {
			continue
		}
		words = append(words, capitalize(seg))
	}
	return strings.Join(words, " ")
}

// deriveName builds a fallback operation name from the route pattern.
func deriveName(route string) string {
	var parts []string
	for _, seg := range strings.Split(route, "/") {
		seg = strings.Trim(seg, "{}")
		if seg == "" {
			continue
		}
		parts = append(parts, strings.ToLower(seg))
	}
	if len(parts) == 0 {
		return "root"
	}
	return strings.Join(parts, "_")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
