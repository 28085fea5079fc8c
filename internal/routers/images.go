package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("images", imagesRouter) }

func imagesRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/config", "Get Config", "get_config")
	route(r, http.MethodPost, "/config/update", "Update Config", "update_config")
	route(r, http.MethodGet, "/config/url/verify", "Verify Url", "verify_url")
	route(r, http.MethodGet, "/models", "Get Models", "get_models")
	route(r, http.MethodPost, "/generations", "Image Generations", "image_generations")
	return r, nil
}
