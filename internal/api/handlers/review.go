package handlers

import (
	"net/http"

	"github.com/dom/community-portal/internal/domain"
	"github.com/dom/community-portal/internal/service"
	"github.com/dom/community-portal/internal/session"
	"github.com/dom/community-portal/internal/web"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
	render        *web.Renderer
}

func NewReviewHandler(reviewService *service.ReviewService, render *web.Renderer) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, render: render}
}

// List is the public review feed.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListAll(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.render.Render(w, r, "reviews", reviews)
}

func (h *ReviewHandler) Post(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ownerID := sess.UserID
	_, err := h.reviewService.Post(r.Context(), &ownerID, service.ReviewInput{
		Name:    r.FormValue("name"),
		Rating:  r.FormValue("rating"),
		Comment: r.FormValue("comment"),
	})
	if err != nil {
		if ve, ok := domain.AsValidation(err); ok {
			web.SetFlash(w, "danger", ve.Message)
			http.Redirect(w, r, "/reviews", http.StatusSeeOther)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	web.SetFlash(w, "success", "Thanks for your review!")
	http.Redirect(w, r, "/reviews", http.StatusSeeOther)
}
