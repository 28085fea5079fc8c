package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("prompts", promptsRouter) }

func promptsRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Prompts", "get_prompts")
	route(r, http.MethodGet, "/list", "Get Prompt List", "get_prompt_list")
	route(r, http.MethodPost, "/create", "Create New Prompt", "create_new_prompt")
	route(r, http.MethodGet, "/command/{command}", "Get Prompt By Command", "get_prompt_by_command")
	route(r, http.MethodPost, "/command/{command}/update", "Update Prompt By Command", "update_prompt_by_command")
	route(r, http.MethodDelete, "/command/{command}/delete", "Delete Prompt By Command", "delete_prompt_by_command")
	return r, nil
}
