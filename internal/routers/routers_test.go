package routers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aihub-apidocs/internal/docsgen"
	"aihub-apidocs/internal/docsgen/openapi"
)

func TestEveryConfiguredSubsystemHasProvider(t *testing.T) {
	for _, s := range docsgen.Subsystems() {
		t.Run(s.Name, func(t *testing.T) {
			p, ok := docsgen.LookupProvider(s.Name)
			require.True(t, ok, "no provider registered for %q", s.Name)

			routes, err := p()
			require.NoError(t, err)
			require.NotNil(t, routes)

			count := 0
			err = chi.Walk(routes, func(method, route string, handler http.Handler, _ ...func(http.Handler) http.Handler) error {
				count++
				_, described := handler.(openapi.OperationDescriber)
				assert.True(t, described, "%s %s %s carries no metadata", s.Name, method, route)
				return nil
			})
			require.NoError(t, err)
			assert.Greater(t, count, 0, "subsystem %q has no routes", s.Name)
		})
	}
}

func TestPerSubsystemDocumentsAreWellFormed(t *testing.T) {
	for _, s := range docsgen.Subsystems() {
		t.Run(s.Name, func(t *testing.T) {
			p, ok := docsgen.LookupProvider(s.Name)
			require.True(t, ok)
			routes, err := p()
			require.NoError(t, err)

			doc, err := docsgen.Assemble([]docsgen.Entry{{Spec: s, Routes: routes}}, "t", "d", "1.0.0")
			require.NoError(t, err)

			seen := map[string]string{}
			for _, path := range doc.Paths.Keys() {
				assert.True(t, len(path) > len(s.Prefix) || path == s.Prefix+"/", path)
				item, _ := doc.Paths.Get(path)
				for _, method := range []string{"GET", "PUT", "POST", "DELETE", "OPTIONS", "HEAD", "PATCH"} {
					op := item.Operation(method)
					if op == nil {
						continue
					}
					assert.Equal(t, s.Tags, op.Tags, "%s %s", method, path)
					assert.NotEmpty(t, op.Summary, "%s %s", method, path)
					require.NotEmpty(t, op.OperationID, "%s %s", method, path)
					prev, dup := seen[op.OperationID]
					assert.False(t, dup, "operationId %q used by %s and %s %s", op.OperationID, prev, method, path)
					seen[op.OperationID] = method + " " + path
				}
			}
		})
	}
}

func TestCombinedDocumentHasGloballyUniqueOperationIDs(t *testing.T) {
	var entries []docsgen.Entry
	for _, s := range docsgen.Subsystems() {
		p, ok := docsgen.LookupProvider(s.Name)
		require.True(t, ok)
		routes, err := p()
		require.NoError(t, err)
		entries = append(entries, docsgen.Entry{Spec: s, Routes: routes})
	}

	doc, err := docsgen.Assemble(entries, "t", "d", "1.0.0")
	require.NoError(t, err)

	seen := map[string]string{}
	for _, path := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(path)
		for _, method := range []string{"GET", "PUT", "POST", "DELETE", "OPTIONS", "HEAD", "PATCH"} {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			prev, dup := seen[op.OperationID]
			assert.False(t, dup, "operationId %q used by %s and %s %s", op.OperationID, prev, method, path)
			seen[op.OperationID] = method + " " + path
		}
	}
	// Well above one route per subsystem.
	assert.Greater(t, len(seen), 100)
}

func TestPlaceholderHandlerRespondsNotImplemented(t *testing.T) {
	h := endpoint{summary: "Get Users", name: "get_users"}

	summary, name := h.DescribeOperation()
	assert.Equal(t, "Get Users", summary)
	assert.Equal(t, "get_users", name)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"detail":"not implemented"}`, rec.Body.String())
}
