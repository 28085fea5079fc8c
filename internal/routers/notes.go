package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("notes", notesRouter) }

func notesRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/", "Get Notes", "get_notes")
	route(r, http.MethodGet, "/list", "Get Note List", "get_note_list")
	route(r, http.MethodPost, "/create", "Create New Note", "create_new_note")
	route(r, http.MethodGet, "/{id}", "Get Note By Id", "get_note_by_id")
	route(r, http.MethodPost, "/{id}/update", "Update Note By Id", "update_note_by_id")
	route(r, http.MethodDelete, "/{id}/delete", "Delete Note By Id", "delete_note_by_id")
	return r, nil
}
