package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("chats", chatsRouter) }

func chatsRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Session User Chat List", "get_session_user_chat_list")
	route(r, http.MethodPost, "/new", "Create New Chat", "create_new_chat")
	route(r, http.MethodPost, "/import", "Import Chat", "import_chat")
	route(r, http.MethodGet, "/search", "Search User Chats", "search_user_chats")
	route(r, http.MethodGet, "/all", "Get User Chats", "get_user_chats")
	route(r, http.MethodGet, "/all/archived", "Get User Archived Chats", "get_user_archived_chats")
	route(r, http.MethodGet, "/all/tags", "Get All User Tags", "get_all_user_tags")
	route(r, http.MethodPost, "/archive/all", "Archive All Chats", "archive_all_chats")
	route(r, http.MethodGet, "/{id}", "Get Chat By Id", "get_chat_by_id")
	route(r, http.MethodPost, "/{id}", "Update Chat By Id", "update_chat_by_id")
	route(r, http.MethodDelete, "/{id}", "Delete Chat By Id", "delete_chat_by_id")
	route(r, http.MethodGet, "/{id}/pinned", "Get Pinned Status By Id", "get_pinned_status_by_id")
	route(r, http.MethodPost, "/{id}/pin", "Pin Chat By Id", "pin_chat_by_id")
	route(r, http.MethodPost, "/{id}/clone", "Clone Chat By Id", "clone_chat_by_id")
	route(r, http.MethodPost, "/{id}/archive", "Archive Chat By Id", "archive_chat_by_id")
	route(r, http.MethodPost, "/{id}/share", "Share Chat By Id", "share_chat_by_id")
	route(r, http.MethodDelete, "/{id}/share", "Delete Shared Chat By Id", "delete_shared_chat_by_id")
	route(r, http.MethodGet, "/{id}/tags", "Get Chat Tags By Id", "get_chat_tags_by_id")
	route(r, http.MethodPost, "/{id}/tags", "Add Tag By Id And Tag Name", "add_tag_by_id_and_tag_name")
	route(r, http.MethodDelete, "/{id}/tags", "Delete Tag By Id And Tag Name", "delete_tag_by_id_and_tag_name")
	return r, nil
}
