package openapi

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// docHandler carries operation metadata the way subsystem routers do.
type docHandler struct {
	summary string
	name    string
}

func (h docHandler) ServeHTTP(http.ResponseWriter, *http.Request) {}

func (h docHandler) DescribeOperation() (string, string) { return h.summary, h.name }

func TestAppendRoutesMountsUnderPrefix(t *testing.T) {
	users := chi.NewRouter()
	users.Method(http.MethodGet, "/", docHandler{"Get Users", "get_users"})

	auths := chi.NewRouter()
	auths.Method(http.MethodPost, "/login", docHandler{"Login", "login"})

	doc := NewDocument("Test", "test", "1.0.0")
	require.NoError(t, AppendRoutes(doc, "/api/v1/users", []string{"users"}, users))
	require.NoError(t, AppendRoutes(doc, "/api/v1/auths", []string{"auths"}, auths))

	require.ElementsMatch(t, []string{"/api/v1/users/", "/api/v1/auths/login"}, doc.Paths.Keys())

	usersItem, ok := doc.Paths.Get("/api/v1/users/")
	require.True(t, ok)
	require.NotNil(t, usersItem.Get)
	assert.Equal(t, []string{"users"}, usersItem.Get.Tags)
	assert.Equal(t, "Get Users", usersItem.Get.Summary)
	assert.Equal(t, "get_users_api_v1_users_get", usersItem.Get.OperationID)

	authsItem, ok := doc.Paths.Get("/api/v1/auths/login")
	require.True(t, ok)
	require.NotNil(t, authsItem.Post)
	assert.Equal(t, []string{"auths"}, authsItem.Post.Tags)
	assert.Equal(t, "login_api_v1_auths_login_post", authsItem.Post.OperationID)
}

func TestAppendRoutesDerivesMetadataWithoutDescriber(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/{id}/share", func(http.ResponseWriter, *http.Request) {})

	doc := NewDocument("Test", "test", "1.0.0")
	require.NoError(t, AppendRoutes(doc, "/api/v1/chats", []string{"chats"}, r))

	item, ok := doc.Paths.Get("/api/v1/chats/{id}/share")
	require.True(t, ok)
	require.NotNil(t, item.Get)
	assert.Equal(t, "Get Id Share", item.Get.Summary)
	assert.Equal(t, "id_share_api_v1_chats_id_share_get", item.Get.OperationID)
	require.Contains(t, item.Get.Responses, "200")
	assert.Equal(t, "Successful Response", item.Get.Responses["200"].Description)
}

func TestAppendRoutesLastWriteWins(t *testing.T) {
	first := chi.NewRouter()
	first.Method(http.MethodGet, "/ping", docHandler{"First", "first"})
	second := chi.NewRouter()
	second.Method(http.MethodGet, "/ping", docHandler{"Second", "second"})

	doc := NewDocument("Test", "test", "1.0.0")
	require.NoError(t, AppendRoutes(doc, "/api/v1/utils", []string{"a"}, first))
	require.NoError(t, AppendRoutes(doc, "/api/v1/utils", []string{"b"}, second))

	assert.Equal(t, 1, doc.Paths.Len())
	item, _ := doc.Paths.Get("/api/v1/utils/ping")
	require.NotNil(t, item.Get)
	assert.Equal(t, "Second", item.Get.Summary)
	assert.Equal(t, []string{"b"}, item.Get.Tags)
}

func TestAppendRoutesNilTable(t *testing.T) {
	doc := NewDocument("Test", "test", "1.0.0")
	assert.Error(t, AppendRoutes(doc, "/api/v1/users", []string{"users"}, nil))
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		prefix, route, want string
	}{
		{"/api/v1/users", "/", "/api/v1/users/"},
		{"/api/v1/auths", "/login", "/api/v1/auths/login"},
		{"/ollama", "/api/tags", "/ollama/api/tags"},
		{"/api/v1/scim/v2/", "/Users", "/api/v1/scim/v2/Users"},
		{"", "/", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, joinPath(tt.prefix, tt.route), "%s + %s", tt.prefix, tt.route)
	}
}

func TestOperationIDQualifiesNameWithPathAndMethod(t *testing.T) {
	tests := []struct {
		name, path, method, want string
	}{
		{"get_config", "/api/v1/audio/config", "GET", "get_config_api_v1_audio_config_get"},
		{"get_config", "/openai/config", "GET", "get_config_openai_config_get"},
		{"", "/api/v1/users/", "GET", "api_v1_users_get"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, operationID(tt.name, tt.path, tt.method))
	}
}

func TestDeriveSummary(t *testing.T) {
	assert.Equal(t, "Get", deriveSummary("GET", "/"))
	assert.Equal(t, "Post Login", deriveSummary("POST", "/login"))
	assert.Equal(t, "Delete Id Share", deriveSummary("DELETE", "/{id}/share"))
}
