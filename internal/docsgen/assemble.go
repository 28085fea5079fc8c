package docsgen

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen/openapi"
)

// Entry pairs a subsystem with its resolved route table. It is the unit
// accumulated for the combined pass.
type Entry struct {
	Spec   Subsystem
	Routes chi.Router
}

// Assemble builds one document from the entries, mounting each route table
// under its subsystem's prefix with its subsystem's tags, in input order.
// Overlapping method+path pairs across entries are not detected; the later
// entry wins. The metadata is carried into the document verbatim.
func Assemble(entries []Entry, title, description, version string) (*openapi.Document, error) {
	doc := openapi.NewDocument(title, description, version)
	for _, e := range entries {
		if err := openapi.AppendRoutes(doc, e.Spec.Prefix, e.Spec.Tags, e.Routes); err != nil {
			return nil, &AssemblyError{Cause: fmt.Errorf("subsystem %s: %w", e.Spec.Name, err)}
		}
	}
	return doc, nil
}
