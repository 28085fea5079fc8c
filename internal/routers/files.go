package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("files", filesRouter) }

func filesRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "List Files", "list_files")
	route(r, http.MethodPost, "/", "Upload File", "upload_file")
	route(r, http.MethodGet, "/search", "Search Files", "search_files")
	route(r, http.MethodGet, "/{id}", "Get File By Id", "get_file_by_id")
	route(r, http.MethodGet, "/{id}/data/content", "Get File Data Content By Id", "get_file_data_content_by_id")
	route(r, http.MethodPost, "/{id}/data/content/update", "Update File Data Content By Id", "update_file_data_content_by_id")
	route(r, http.MethodGet, "/{id}/content", "Get File Content By Id", "get_file_content_by_id")
	route(r, http.MethodDelete, "/{id}", "Delete File By Id", "delete_file_by_id")
	route(r, http.MethodDelete, "/all", "Delete All Files", "delete_all_files")
	return r, nil
}
