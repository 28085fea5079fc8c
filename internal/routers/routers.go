// Package routers declares the route table of every AIHub subsystem and
// registers each table's provider with the docsgen registry at load time.
// The tables mirror the upstream service's routers; the handlers here are
// placeholders that carry the documentation metadata for their operation.
package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// endpoint is a placeholder handler carrying operation metadata.
type endpoint struct {
	summary string
	name    string
}

func (e endpoint) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotImplemented)
	_, _ = w.Write([]byte(`{"detail":"not implemented"}`))
}

// DescribeOperation implements openapi.OperationDescriber.
func (e endpoint) DescribeOperation() (summary, name string) {
	return e.summary, e.name
}

// route registers a documented placeholder route on r.
func route(r chi.Router, method, pattern, summary, name string) {
	r.Method(method, pattern, endpoint{summary: summary, name: name})
}
