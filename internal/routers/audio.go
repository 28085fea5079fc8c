package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("audio", audioRouter) }

func audioRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/config", "Get Audio Config", "get_audio_config")
	route(r, http.MethodPost, "/config/update", "Update Audio Config", "update_audio_config")
	route(r, http.MethodPost, "/speech", "Speech", "speech")
	route(r, http.MethodPost, "/transcriptions", "Transcription", "transcription")
	route(r, http.MethodGet, "/models", "Get Available Models", "get_available_models")
	route(r, http.MethodGet, "/voices", "Get Available Voices", "get_available_voices")
	return r, nil
}
