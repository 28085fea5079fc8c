// Package markdown renders a browsable API reference from a generated
// OpenAPI document: one endpoint page per tag plus an index. The output
// directory is wiped and rebuilt on every run, so nothing in it should be
// edited by hand.
package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

type endpointDoc struct {
	Method      string
	Path        string
	OperationID string
	Summary     string
	Responses   []responseDoc
}

type responseDoc struct {
	Code        string
	Description string
}

// Generate loads the OpenAPI document at specPath and writes the markdown
// reference under outDir.
func Generate(specPath, outDir string) error {
	loader := openapi3.NewLoader()
	spec, err := loader.LoadFromFile(specPath)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	if err := os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("clean output dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(outDir, "endpoints"), 0o750); err != nil {
		return fmt.Errorf("create endpoints dir: %w", err)
	}

	tagEndpoints := map[string][]endpointDoc{}
	for path, pathItem := range spec.Paths.Map() {
		for method, op := range pathItem.Operations() {
			tags := op.Tags
			if len(tags) == 0 {
				tags = []string{"untagged"}
			}
			for _, tag := range tags {
				tagEndpoints[tag] = append(tagEndpoints[tag], buildEndpointDoc(path, method, op))
			}
		}
	}

	tags := sortedKeys(tagEndpoints)
	for _, tag := range tags {
		endpoints := tagEndpoints[tag]
		sortEndpoints(endpoints)
		page := filepath.Join(outDir, "endpoints", fileSlug(tag)+".md")
		if err := writeTagPage(page, tag, endpoints); err != nil {
			return err
		}
	}

	title := ""
	if spec.Info != nil {
		title = spec.Info.Title
	}
	return writeIndex(filepath.Join(outDir, "index.md"), title, filepath.Base(specPath), tags, tagEndpoints)
}

func buildEndpointDoc(path, method string, op *openapi3.Operation) endpointDoc {
	endpoint := endpointDoc{
		Method:      strings.ToUpper(method),
		Path:        path,
		OperationID: strings.TrimSpace(op.OperationID),
		Summary:     strings.TrimSpace(op.Summary),
	}
	if op.Responses != nil {
		for code, response := range op.Responses.Map() {
			desc := ""
			if response != nil && response.Value != nil && response.Value.Description != nil {
				desc = strings.TrimSpace(*response.Value.Description)
			}
			endpoint.Responses = append(endpoint.Responses, responseDoc{Code: code, Description: desc})
		}
	}
	sortResponses(endpoint.Responses)
	return endpoint
}

func writeIndex(path, title, source string, tags []string, tagEndpoints map[string][]endpointDoc) error {
	var b strings.Builder
	b.WriteString(generatedHeader())
	if title == "" {
		title = "API Reference"
	}
	b.WriteString("# " + title + "\n\n")
	b.WriteString(fmt.Sprintf("This reference is generated from `%s`.\n\n", source))
	b.WriteString("## Subsystems\n\n")
	for _, tag := range tags {
		b.WriteString(fmt.Sprintf("- [%s](./endpoints/%s) (%d operations)\n", tag, fileSlug(tag), len(tagEndpoints[tag])))
	}
	return writeFile(path, b.String())
}

func writeTagPage(path, tag string, endpoints []endpointDoc) error {
	var b strings.Builder
	b.WriteString(generatedHeader())
	b.WriteString(fmt.Sprintf("# %s Endpoints\n\n", tag))

	for _, endpoint := range endpoints {
		b.WriteString(fmt.Sprintf("## `%s %s`\n\n", endpoint.Method, endpoint.Path))
		if endpoint.Summary != "" {
			b.WriteString(endpoint.Summary)
			b.WriteString("\n\n")
		}
		if endpoint.OperationID != "" {
			b.WriteString(fmt.Sprintf("- Operation ID: `%s`\n\n", endpoint.OperationID))
		}
		if len(endpoint.Responses) > 0 {
			b.WriteString("| Code | Description |\n")
			b.WriteString("| --- | --- |\n")
			for _, response := range endpoint.Responses {
				b.WriteString(fmt.Sprintf("| `%s` | %s |\n", response.Code, tableSafe(response.Description)))
			}
			b.WriteString("\n")
		}
	}

	return writeFile(path, b.String())
}

func sortEndpoints(endpoints []endpointDoc) {
	methodOrder := map[string]int{
		"GET":     0,
		"POST":    1,
		"PUT":     2,
		"PATCH":   3,
		"DELETE":  4,
		"OPTIONS": 5,
		"HEAD":    6,
	}
	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].Path != endpoints[j].Path {
			return endpoints[i].Path < endpoints[j].Path
		}
		return methodOrder[endpoints[i].Method] < methodOrder[endpoints[j].Method]
	})
}

func sortResponses(responses []responseDoc) {
	sort.Slice(responses, func(i, j int) bool {
		ci, cj := responses[i].Code, responses[j].Code
		if ci == "default" {
			return false
		}
		if cj == "default" {
			return true
		}
		return ci < cj
	})
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func fileSlug(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	for _, r := range []string{" ", "/", "_", "."} {
		lower = strings.ReplaceAll(lower, r, "-")
	}
	for strings.Contains(lower, "--") {
		lower = strings.ReplaceAll(lower, "--", "-")
	}
	return strings.Trim(lower, "-")
}

func generatedHeader() string {
	return "<!-- Code generated by cmd/docsgen. DO NOT EDIT. -->\n\n"
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

func tableSafe(value string) string {
	value = strings.ReplaceAll(strings.TrimSpace(value), "\n", " ")
	value = strings.ReplaceAll(value, "|", "\\|")
	if value == "" {
		return "-"
	}
	return value
}
