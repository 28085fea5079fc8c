package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aihub-apidocs/internal/docsgen"
)

func init() { docsgen.RegisterProvider("utils", utilsRouter) }

func utilsRouter() (chi.Router, error) {
	r := chi.NewRouter()
	route(r, http.MethodGet, "/gravatar", "Get Gravatar", "get_gravatar")
	route(r, http.MethodPost, "/code/format", "Format Code", "format_code")
	route(r, http.MethodPost, "/code/execute", "Execute Code", "execute_code")
	route(r, http.MethodPost, "/markdown", "Get Html From Markdown", "get_html_from_markdown")
	route(r, http.MethodPost, "/pdf", "Download Chat As Pdf", "download_chat_as_pdf")
	route(r, http.MethodGet, "/db/download", "Download Db", "download_db")
	return r, nil
}
