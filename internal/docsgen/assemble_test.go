package docsgen

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routerWith(routes ...[2]string) chi.Router {
	r := chi.NewRouter()
	for _, mr := range routes {
		r.Method(mr[0], mr[1], http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	}
	return r
}

func TestAssembleSingleSubsystem(t *testing.T) {
	entry := Entry{
		Spec:   Subsystem{Name: "users", Prefix: "/api/v1/users", Tags: []string{"users"}},
		Routes: routerWith([2]string{http.MethodGet, "/"}, [2]string{http.MethodDelete, "/{user_id}"}),
	}

	doc, err := Assemble([]Entry{entry}, "AIHub - Users API", "API specification for the users subsystem", "1.0.0")
	require.NoError(t, err)

	assert.Equal(t, "AIHub - Users API", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	assert.ElementsMatch(t, []string{"/api/v1/users/", "/api/v1/users/{user_id}"}, doc.Paths.Keys())

	for _, path := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(path)
		for _, method := range []string{"GET", "DELETE"} {
			if op := item.Operation(method); op != nil {
				assert.Equal(t, []string{"users"}, op.Tags, path)
			}
		}
	}
}

func TestAssembleCombinesEntriesInOrder(t *testing.T) {
	entries := []Entry{
		{Spec: Subsystem{Name: "users", Prefix: "/api/v1/users", Tags: []string{"users"}}, Routes: routerWith([2]string{http.MethodGet, "/"})},
		{Spec: Subsystem{Name: "auths", Prefix: "/api/v1/auths", Tags: []string{"auths"}}, Routes: routerWith([2]string{http.MethodPost, "/login"})},
	}

	doc, err := Assemble(entries, "AIHub - Complete API", "all subsystems", "1.0.0")
	require.NoError(t, err)

	// Union of both route tables, grouped in input order.
	assert.Equal(t, []string{"/api/v1/users/", "/api/v1/auths/login"}, doc.Paths.Keys())

	users, _ := doc.Paths.Get("/api/v1/users/")
	require.NotNil(t, users.Get)
	assert.Equal(t, []string{"users"}, users.Get.Tags)

	auths, _ := doc.Paths.Get("/api/v1/auths/login")
	require.NotNil(t, auths.Post)
	assert.Equal(t, []string{"auths"}, auths.Post.Tags)
}

func TestAssembleOverlappingPathsLastWins(t *testing.T) {
	entries := []Entry{
		{Spec: Subsystem{Name: "a", Prefix: "/api/v1/shared", Tags: []string{"a"}}, Routes: routerWith([2]string{http.MethodGet, "/status"})},
		{Spec: Subsystem{Name: "b", Prefix: "/api/v1/shared", Tags: []string{"b"}}, Routes: routerWith([2]string{http.MethodGet, "/status"})},
	}

	doc, err := Assemble(entries, "t", "d", "1.0.0")
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Paths.Len())
	item, _ := doc.Paths.Get("/api/v1/shared/status")
	require.NotNil(t, item.Get)
	assert.Equal(t, []string{"b"}, item.Get.Tags)
}

func TestAssembleNilRouteTable(t *testing.T) {
	entries := []Entry{{Spec: Subsystem{Name: "users", Prefix: "/api/v1/users", Tags: []string{"users"}}}}

	_, err := Assemble(entries, "t", "d", "1.0.0")
	require.Error(t, err)

	var asmErr *AssemblyError
	require.ErrorAs(t, err, &asmErr)
	assert.Contains(t, err.Error(), "users")
}
