package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("configs", configsRouter) }

func configsRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/export", "Export Config", "export_config")
	route(r, http.MethodPost, "/import", "Import Config", "import_config")
	route(r, http.MethodGet, "/models", "Get Models Config", "get_models_config")
	route(r, http.MethodPost, "/models", "Set Models Config", "set_models_config")
	route(r, http.MethodPost, "/suggestions", "Set Default Suggestions", "set_default_suggestions")
	route(r, http.MethodGet, "/banners", "Get Banners", "get_banners")
	route(r, http.MethodPost, "/banners", "Set Banners", "set_banners")
	return r, nil
}
