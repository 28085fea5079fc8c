package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("knowledge", knowledgeRouter) }

func knowledgeRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Knowledge", "get_knowledge")
	route(r, http.MethodGet, "/list", "Get Knowledge List", "get_knowledge_list")
	route(r, http.MethodPost, "/create", "Create New Knowledge", "create_new_knowledge")
	route(r, http.MethodGet, "/{id}", "Get Knowledge By Id", "get_knowledge_by_id")
	route(r, http.MethodPost, "/{id}/update", "Update Knowledge By Id", "update_knowledge_by_id")
	route(r, http.MethodPost, "/{id}/file/add", "Add File To Knowledge By Id", "add_file_to_knowledge_by_id")
	route(r, http.MethodPost, "/{id}/file/update", "Update File From Knowledge By Id", "update_file_from_knowledge_by_id")
	route(r, http.MethodPost, "/{id}/file/remove", "Remove File From Knowledge By Id", "remove_file_from_knowledge_by_id")
	route(r, http.MethodPost, "/{id}/reset", "Reset Knowledge By Id", "reset_knowledge_by_id")
	route(r, http.MethodDelete, "/{id}/delete", "Delete Knowledge By Id", "delete_knowledge_by_id")
	return r, nil
}
