package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/dom/community-portal/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = []string{
	"home",
	"about",
	"book",
	"reviews",
	"register",
	"login",
	"profile",
}

// PageData is what every template executes against.
type PageData struct {
	Flash   *Flash
	Session *session.Session
	Data    any
}

type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the named page, attaching the pending flash message
// and the request's session.
func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, page string, data any) {
	tmpl, ok := rn.templates[page]
	if !ok {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	sess, _ := session.FromContext(r.Context())
	pd := PageData{
		Flash:   PopFlash(w, r),
		Session: sess,
		Data:    data,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", pd); err != nil {
		log.Printf("render %s: %v", page, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// StaticHandler serves the embedded /static assets.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
