package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("models", modelsRouter) }

func modelsRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Models", "get_models")
	route(r, http.MethodGet, "/base", "Get Base Models", "get_base_models")
	route(r, http.MethodPost, "/create", "Create New Model", "create_new_model")
	route(r, http.MethodGet, "/model", "Get Model By Id", "get_model_by_id")
	route(r, http.MethodPost, "/model/toggle", "Toggle Model By Id", "toggle_model_by_id")
	route(r, http.MethodPost, "/model/update", "Update Model By Id", "update_model_by_id")
	route(r, http.MethodDelete, "/model/delete", "Delete Model By Id", "delete_model_by_id")
	route(r, http.MethodDelete, "/delete/all", "Delete All Models", "delete_all_models")
	return r, nil
}
