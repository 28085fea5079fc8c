package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("auths", authsRouter) }

func authsRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Session User", "get_session_user")
	route(r, http.MethodPost, "/signin", "Signin", "signin")
	route(r, http.MethodPost, "/signup", "Signup", "signup")
	route(r, http.MethodGet, "/signout", "Signout", "signout")
	route(r, http.MethodPost, "/update/profile", "Update Profile", "update_profile")
	route(r, http.MethodPost, "/update/password", "Update Password", "update_password")
	route(r, http.MethodPost, "/add", "Add User", "add_user")
	route(r, http.MethodGet, "/admin/details", "Get Admin Details", "get_admin_details")
	route(r, http.MethodGet, "/admin/config", "Get Admin Config", "get_admin_config")
	route(r, http.MethodPost, "/admin/config", "Update Admin Config", "update_admin_config")
	route(r, http.MethodGet, "/api_key", "Get Api Key", "get_api_key")
	route(r, http.MethodPost, "/api_key", "Generate Api Key", "generate_api_key")
	route(r, http.MethodDelete, "/api_key", "Delete Api Key", "delete_api_key")
	return r, nil
}
