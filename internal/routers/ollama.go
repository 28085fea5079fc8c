package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("ollama", ollamaRouter) }

func ollamaRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Status", "get_status")
	route(r, http.MethodHead, "/", "Get Status Head", "get_status_head")
	route(r, http.MethodGet, "/config", "Get Config", "get_config")
	route(r, http.MethodPost, "/config/update", "Update Config", "update_config")
	route(r, http.MethodGet, "/api/tags", "Get Ollama Tags", "get_ollama_tags")
	route(r, http.MethodGet, "/api/version", "Get Ollama Versions", "get_ollama_versions")
	route(r, http.MethodGet, "/api/ps", "Get Ollama Loaded Models", "get_ollama_loaded_models")
	route(r, http.MethodPost, "/api/pull", "Pull Model", "pull_model")
	route(r, http.MethodPost, "/api/push", "Push Model", "push_model")
	route(r, http.MethodPost, "/api/create", "Create Model", "create_model")
	route(r, http.MethodPost, "/api/copy", "Copy Model", "copy_model")
	route(r, http.MethodDelete, "/api/delete", "Delete Model", "delete_model")
	route(r, http.MethodPost, "/api/show", "Show Model Info", "show_model_info")
	route(r, http.MethodPost, "/api/embed", "Embed", "embed")
	route(r, http.MethodPost, "/api/generate", "Generate Completion", "generate_completion")
	route(r, http.MethodPost, "/api/chat", "Generate Chat Completion", "generate_chat_completion")
	return r, nil
}
