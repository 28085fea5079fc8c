package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("pipelines", pipelinesRouter) }

func pipelinesRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Pipelines", "get_pipelines")
	route(r, http.MethodGet, "/list", "Get Pipelines List", "get_pipelines_list")
	route(r, http.MethodPost, "/upload", "Upload Pipeline", "upload_pipeline")
	route(r, http.MethodPost, "/add", "Add Pipeline", "add_pipeline")
	route(r, http.MethodDelete, "/delete", "Delete Pipeline", "delete_pipeline")
	route(r, http.MethodGet, "/{pipeline_id}/valves", "Get Pipeline Valves", "get_pipeline_valves")
	route(r, http.MethodGet, "/{pipeline_id}/valves/spec", "Get Pipeline Valves Spec", "get_pipeline_valves_spec")
	route(r, http.MethodPost, "/{pipeline_id}/valves/update", "Update Pipeline Valves", "update_pipeline_valves")
	return r, nil
}
