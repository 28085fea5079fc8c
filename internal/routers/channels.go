package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("channels", channelsRouter) }

func channelsRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Channels", "get_channels")
	route(r, http.MethodPost, "/create", "Create New Channel", "create_new_channel")
	route(r, http.MethodGet, "/{id}", "Get Channel By Id", "get_channel_by_id")
	route(r, http.MethodPost, "/{id}/update", "Update Channel By Id", "update_channel_by_id")
	route(r, http.MethodDelete, "/{id}/delete", "Delete Channel By Id", "delete_channel_by_id")
	route(r, http.MethodGet, "/{id}/messages", "Get Channel Messages", "get_channel_messages")
	route(r, http.MethodPost, "/{id}/messages/post", "Post New Message", "post_new_message")
	route(r, http.MethodPost, "/{id}/messages/{message_id}/update", "Update Message By Id", "update_message_by_id")
	route(r, http.MethodDelete, "/{id}/messages/{message_id}/delete", "Delete Message By Id", "delete_message_by_id")
	return r, nil
}
