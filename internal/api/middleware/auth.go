package middleware

import (
	"net/http"

	"github.com/dom/community-portal/internal/session"
	"github.com/dom/community-portal/internal/web"
)

// Session resolves the session cookie and, when it is valid, stores
// the identity on the request context. An absent or invalid cookie
// leaves the request anonymous; it is never an error.
func Session(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess, ok := sessions.FromRequest(r); ok {
				r = r.WithContext(session.NewContext(r.Context(), sess))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession is the gate in front of protected routes: anonymous
// requests are sent to the login page with the given advisory message.
func RequireSession(message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := session.FromContext(r.Context()); !ok {
				web.SetFlash(w, "warning", message)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
