package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("folders", foldersRouter) }

func foldersRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Folders", "get_folders")
	route(r, http.MethodPost, "/", "Create Folder", "create_folder")
	route(r, http.MethodGet, "/{id}", "Get Folder By Id", "get_folder_by_id")
	route(r, http.MethodPost, "/{id}/update", "Update Folder Name By Id", "update_folder_name_by_id")
	route(r, http.MethodPost, "/{id}/update/expanded", "Update Folder Is Expanded By Id", "update_folder_is_expanded_by_id")
	route(r, http.MethodDelete, "/{id}", "Delete Folder By Id", "delete_folder_by_id")
	return r, nil
}
