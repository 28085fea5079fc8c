package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("memories", memoriesRouter) }

func memoriesRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Memories", "get_memories")
	route(r, http.MethodGet, "/ef/{text}", "Get Embeddings", "get_embeddings")
	route(r, http.MethodPost, "/add", "Add Memory", "add_memory")
	route(r, http.MethodPost, "/query", "Query Memory", "query_memory")
	route(r, http.MethodPost, "/reset", "Reset Memory From Vector Db", "reset_memory_from_vector_db")
	route(r, http.MethodPost, "/{memory_id}/update", "Update Memory By Id", "update_memory_by_id")
	route(r, http.MethodDelete, "/{memory_id}", "Delete Memory By Id", "delete_memory_by_id")
	route(r, http.MethodDelete, "/delete/user", "Delete Memory By User Id", "delete_memory_by_user_id")
	return r, nil
}
