package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("tools", toolsRouter) }

func toolsRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Tools", "get_tools")
	route(r, http.MethodGet, "/list", "Get Tool List", "get_tool_list")
	route(r, http.MethodGet, "/export", "Export Tools", "export_tools")
	route(r, http.MethodPost, "/create", "Create New Tool", "create_new_tool")
	route(r, http.MethodGet, "/id/{id}", "Get Tool By Id", "get_tool_by_id")
	route(r, http.MethodPost, "/id/{id}/update", "Update Tool By Id", "update_tool_by_id")
	route(r, http.MethodDelete, "/id/{id}/delete", "Delete Tool By Id", "delete_tool_by_id")
	route(r, http.MethodGet, "/id/{id}/valves", "Get Tool Valves By Id", "get_tool_valves_by_id")
	route(r, http.MethodPost, "/id/{id}/valves/update", "Update Tool Valves By Id", "update_tool_valves_by_id")
	return r, nil
}
