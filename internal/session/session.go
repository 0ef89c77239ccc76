// Package session issues and resolves the signed cookie that ties a
// browser to a logged-in user. The token is the only session state;
// nothing is stored server-side.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "session"

// Session is the identity carried by a valid token.
type Session struct {
	UserID uint
	Name   string
}

type claims struct {
	UserID uint   `json:"uid"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token bound to the given user.
func (m *Manager) Issue(userID uint, name string) (string, error) {
	now := time.Now()
	c := claims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}

// Resolve maps a token back to its session. A missing, malformed,
// expired, or tampered token means anonymous, never an error.
func (m *Manager) Resolve(token string) (*Session, bool) {
	if token == "" {
		return nil, false
	}

	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, false
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.UserID == 0 {
		return nil, false
	}

	return &Session{UserID: c.UserID, Name: c.Name}, true
}

// SetCookie attaches the token to the response.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie invalidates the client-held token. Idempotent.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest resolves the session cookie on r, if any.
func (m *Manager) FromRequest(r *http.Request) (*Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, false
	}
	return m.Resolve(cookie.Value)
}

type contextKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
