package markdown

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aihub-apidocs/internal/docsgen/openapi"
)

type docHandler struct {
	summary string
	name    string
}

func (h docHandler) ServeHTTP(http.ResponseWriter, *http.Request) {}

func (h docHandler) DescribeOperation() (string, string) { return h.summary, h.name }

func writtenSpec(t *testing.T) string {
	t.Helper()
	users := chi.NewRouter()
	users.Method(http.MethodGet, "/", docHandler{"Get Users", "get_users"})
	users.Method(http.MethodPost, "/{user_id}/update", docHandler{"Update User By Id", "update_user_by_id"})
	auths := chi.NewRouter()
	auths.Method(http.MethodPost, "/signin", docHandler{"Signin", "signin"})

	doc := openapi.NewDocument("AIHub - Complete API", "all subsystems", "1.0.0")
	require.NoError(t, openapi.AppendRoutes(doc, "/api/v1/users", []string{"users"}, users))
	require.NoError(t, openapi.AppendRoutes(doc, "/api/v1/auths", []string{"auths"}, auths))

	dir := t.TempDir()
	require.NoError(t, openapi.Write(doc, dir, "openapi"))
	return filepath.Join(dir, "openapi.json")
}

func TestGenerateWritesIndexAndTagPages(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "reference")

	require.NoError(t, Generate(writtenSpec(t), outDir))

	index, err := os.ReadFile(filepath.Join(outDir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "# AIHub - Complete API")
	assert.Contains(t, string(index), "- [users](./endpoints/users) (2 operations)")
	assert.Contains(t, string(index), "- [auths](./endpoints/auths) (1 operations)")

	users, err := os.ReadFile(filepath.Join(outDir, "endpoints", "users.md"))
	require.NoError(t, err)
	assert.Contains(t, string(users), "<!-- Code generated by cmd/docsgen. DO NOT EDIT. -->")
	assert.Contains(t, string(users), "# users Endpoints")
	assert.Contains(t, string(users), "## `GET /api/v1/users/`")
	assert.Contains(t, string(users), "## `POST /api/v1/users/{user_id}/update`")
	assert.Contains(t, string(users), "- Operation ID: `get_users_api_v1_users_get`")
	assert.Contains(t, string(users), "| `200` | Successful Response |")

	auths, err := os.ReadFile(filepath.Join(outDir, "endpoints", "auths.md"))
	require.NoError(t, err)
	assert.Contains(t, string(auths), "## `POST /api/v1/auths/signin`")
}

func TestGenerateReplacesStaleOutput(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "reference")
	require.NoError(t, os.MkdirAll(filepath.Join(outDir, "endpoints"), 0o750))
	stale := filepath.Join(outDir, "endpoints", "removed-subsystem.md")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o600))

	require.NoError(t, Generate(writtenSpec(t), outDir))

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateMissingSpec(t *testing.T) {
	err := Generate(filepath.Join(t.TempDir(), "missing.json"), t.TempDir())
	assert.Error(t, err)
}

func TestFileSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"users", "users"},
		{"Model Files", "model-files"},
		{"a/b_c.d", "a-b-c-d"},
		{"  Spaced  Out  ", "spaced-out"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fileSlug(tt.in), tt.in)
	}
}
