package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("users", usersRouter) }

func usersRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Users", "get_users")
	route(r, http.MethodGet, "/groups", "Get User Groups", "get_user_groups")
	route(r, http.MethodGet, "/permissions", "Get User Permissions", "get_user_permissions")
	route(r, http.MethodGet, "/default/permissions", "Get Default User Permissions", "get_default_user_permissions")
	route(r, http.MethodPost, "/default/permissions", "Update Default User Permissions", "update_default_user_permissions")
	route(r, http.MethodGet, "/user/settings", "Get User Settings By Session User", "get_user_settings_by_session_user")
	route(r, http.MethodPost, "/user/settings/update", "Update User Settings By Session User", "update_user_settings_by_session_user")
	route(r, http.MethodGet, "/user/info", "Get User Info By Session User", "get_user_info_by_session_user")
	route(r, http.MethodPost, "/user/info/update", "Update User Info By Session User", "update_user_info_by_session_user")
	route(r, http.MethodGet, "/{user_id}", "Get User By Id", "get_user_by_id")
	route(r, http.MethodPost, "/{user_id}/update", "Update User By Id", "update_user_by_id")
	route(r, http.MethodDelete, "/{user_id}", "Delete User By Id", "delete_user_by_id")
	return r, nil
}
