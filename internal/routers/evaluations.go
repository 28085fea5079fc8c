package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("evaluations", evaluationsRouter) }

func evaluationsRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/config", "Get Config", "get_config")
	route(r, http.MethodPost, "/config", "Update Config", "update_config")
	route(r, http.MethodGet, "/feedbacks/all", "Get All Feedbacks", "get_all_feedbacks")
	route(r, http.MethodDelete, "/feedbacks/all", "Delete All Feedbacks", "delete_all_feedbacks")
	route(r, http.MethodGet, "/feedbacks/user", "Get Feedbacks", "get_feedbacks")
	route(r, http.MethodPost, "/feedback", "Create Feedback", "create_feedback")
	route(r, http.MethodGet, "/feedback/{id}", "Get Feedback By Id", "get_feedback_by_id")
	route(r, http.MethodPost, "/feedback/{id}", "Update Feedback By Id", "update_feedback_by_id")
	route(r, http.MethodDelete, "/feedback/{id}", "Delete Feedback By Id", "delete_feedback_by_id")
	return r, nil
}
