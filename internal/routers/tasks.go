package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("tasks", tasksRouter) }

func tasksRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/config", "Get Task Config", "get_task_config")
	route(r, http.MethodPost, "/config/update", "Update Task Config", "update_task_config")
	route(r, http.MethodPost, "/title/completions", "Generate Title", "generate_title")
	route(r, http.MethodPost, "/tags/completions", "Generate Chat Tags", "generate_chat_tags")
	route(r, http.MethodPost, "/queries/completions", "Generate Queries", "generate_queries")
	route(r, http.MethodPost, "/auto/completions", "Generate Autocompletion", "generate_autocompletion")
	route(r, http.MethodPost, "/emoji/completions", "Generate Emoji", "generate_emoji")
	route(r, http.MethodPost, "/moa/completions", "Generate Moa Response", "generate_moa_response")
	return r, nil
}
