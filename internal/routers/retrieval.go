package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("retrieval", retrievalRouter) }

func retrievalRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Status", "get_status")
	route(r, http.MethodGet, "/embedding", "Get Embedding Config", "get_embedding_config")
	route(r, http.MethodPost, "/embedding/update", "Update Embedding Config", "update_embedding_config")
	route(r, http.MethodGet, "/config", "Get Rag Config", "get_rag_config")
	route(r, http.MethodPost, "/config/update", "Update Rag Config", "update_rag_config")
	route(r, http.MethodPost, "/process/file", "Process File", "process_file")
	route(r, http.MethodPost, "/process/text", "Process Text", "process_text")
	route(r, http.MethodPost, "/process/web", "Process Web", "process_web")
	route(r, http.MethodPost, "/process/web/search", "Process Web Search", "process_web_search")
	route(r, http.MethodPost, "/query/doc", "Query Doc Handler", "query_doc_handler")
	route(r, http.MethodPost, "/query/collection", "Query Collection Handler", "query_collection_handler")
	route(r, http.MethodPost, "/delete", "Delete Entries From Collection", "delete_entries_from_collection")
	route(r, http.MethodPost, "/reset/db", "Reset Vector Db", "reset_vector_db")
	route(r, http.MethodPost, "/reset/uploads", "Reset Upload Dir", "reset_upload_dir")
	return r, nil
}
