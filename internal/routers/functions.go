package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("functions", functionsRouter) }

func functionsRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Functions", "get_functions")
	route(r, http.MethodGet, "/export", "Export Functions", "export_functions")
	route(r, http.MethodPost, "/create", "Create New Function", "create_new_function")
	route(r, http.MethodGet, "/id/{id}", "Get Function By Id", "get_function_by_id")
	route(r, http.MethodPost, "/id/{id}/toggle", "Toggle Function By Id", "toggle_function_by_id")
	route(r, http.MethodPost, "/id/{id}/toggle/global", "Toggle Global By Id", "toggle_global_by_id")
	route(r, http.MethodPost, "/id/{id}/update", "Update Function By Id", "update_function_by_id")
	route(r, http.MethodDelete, "/id/{id}/delete", "Delete Function By Id", "delete_function_by_id")
	route(r, http.MethodGet, "/id/{id}/valves", "Get Function Valves By Id", "get_function_valves_by_id")
	route(r, http.MethodPost, "/id/{id}/valves/update", "Update Function Valves By Id", "update_function_valves_by_id")
	return r, nil
}
