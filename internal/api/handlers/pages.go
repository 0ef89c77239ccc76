package handlers

import (
	"net/http"

	"github.com/dom/community-portal/internal/web"
)

type PageHandler struct {
	render *web.Renderer
}

func NewPageHandler(render *web.Renderer) *PageHandler {
	return &PageHandler{render: render}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, "home", nil)
}

func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, "about", nil)
}
