package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dom/community-portal/internal/domain"
	"github.com/dom/community-portal/internal/service"
	"github.com/dom/community-portal/internal/session"
	"github.com/dom/community-portal/internal/web"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Manager
	render      *web.Renderer
}

func NewAuthHandler(authService *service.AuthService, sessions *session.Manager, render *web.Renderer) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, render: render}
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.FromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, "register", nil)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.FromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	_, err := h.authService.Register(r.Context(), service.RegisterInput{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	})
	if err != nil {
		if ve, ok := domain.AsValidation(err); ok {
			web.SetFlash(w, "danger", ve.Message)
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			web.SetFlash(w, "warning", "An account with that email already exists.")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	web.SetFlash(w, "success", "Registration successful. Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.FromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.Render(w, r, "login", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.FromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	user, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			web.SetFlash(w, "danger", "Invalid email or password.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	token, err := h.sessions.Issue(user.ID, user.Name)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.sessions.SetCookie(w, token)
	web.SetFlash(w, "success", fmt.Sprintf("Welcome back, %s!", user.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	web.SetFlash(w, "info", "You have been logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// stale cookie for a user that no longer exists
			h.sessions.ClearCookie(w)
			web.SetFlash(w, "warning", "Please log in to access that page.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.render.Render(w, r, "profile", user)
}
