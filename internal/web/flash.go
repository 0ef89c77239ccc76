package web

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const flashCookie = "flash"

// Flash is a one-shot advisory message shown on the next rendered
// page. Category is one of success, info, warning, danger.
type Flash struct {
	Category string
	Message  string
}

// SetFlash queues a message for the next page render.
func SetFlash(w http.ResponseWriter, category, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads and clears the pending message, if any.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	category, message, ok := strings.Cut(string(decoded), "|")
	if !ok {
		return nil
	}
	return &Flash{Category: category, Message: message}
}
