package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("openai", openaiRouter) }

func openaiRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/config", "Get Config", "get_config")
	route(r, http.MethodPost, "/config/update", "Update Config", "update_config")
	route(r, http.MethodPost, "/audio/speech", "Speech", "speech")
	route(r, http.MethodGet, "/models", "Get Models", "get_models")
	route(r, http.MethodPost, "/verify", "Verify Connection", "verify_connection")
	route(r, http.MethodPost, "/chat/completions", "Generate Chat Completion", "generate_chat_completion")
	return r, nil
}
