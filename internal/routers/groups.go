package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("groups", groupsRouter) }

func groupsRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Groups", "get_groups")
	route(r, http.MethodPost, "/create", "Create New Group", "create_new_group")
	route(r, http.MethodGet, "/id/{id}", "Get Group By Id", "get_group_by_id")
	route(r, http.MethodPost, "/id/{id}/update", "Update Group By Id", "update_group_by_id")
	route(r, http.MethodDelete, "/id/{id}/delete", "Delete Group By Id", "delete_group_by_id")
	return r, nil
}
