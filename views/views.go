// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-review/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"ago":   ago,
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
	"stars": stars,
}

// Renderer holds the parsed page templates
type Renderer struct {
	landing     []byte
	landingPath string
	reviews     *template.Template
}

// New loads the templates. landingPath is where the list page links back to.
func New(landingPath string) (*Renderer, error) {
	landing, err := templateFS.ReadFile("templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to read landing page: %w", err)
	}

	reviews, err := template.New("reviews.html").Funcs(funcs).ParseFS(templateFS, "templates/reviews.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse reviews template: %w", err)
	}

	return &Renderer{landing: landing, landingPath: landingPath, reviews: reviews}, nil
}

// ServeLanding writes the submission form page
func (v *Renderer) ServeLanding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(v.landing)
}

// RenderReviews writes the review list page. Nothing is written if the
// template fails, so the caller can still send an error response.
func (v *Renderer) RenderReviews(w http.ResponseWriter, reviews []models.Review) error {
	var buf bytes.Buffer
	data := struct {
		Reviews []models.Review
		Landing string
	}{reviews, v.landingPath}
	if err := v.reviews.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render reviews: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded assets; mount it under /static/
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// embed paths are fixed at compile time
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

func stars(rating int) string {
	filled := max(0, min(models.MaxRating, rating))
	return strings.Repeat("★", filled) + strings.Repeat("☆", models.MaxRating-filled)
}
