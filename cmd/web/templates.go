package main

import (
	"html/template"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/efuller/md-forms/internal/models"
	"github.com/efuller/md-forms/ui"
)

// templateData holds dynamic data to pass to HTML templates.
type templateData struct {
	IsAuthenticated bool
	CurrentYear     int
	Flash           string
	CSRFToken       string
	Submission      *models.Submission
	Submissions     []*models.Submission
	Results         []*models.Animal
	Searched        bool
	Options         *formOptions
	Form            any
}

func humanDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("Jan 02 2006 at 15:04")
}

// formTitle turns a form name such as "shipping-billing" into "Shipping Billing".
func formTitle(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

var functions = template.FuncMap{
	"humanDate": humanDate,
	"formTitle": formTitle,
}

func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	// Use fs.Glob to get a slice of all the 'page' files in the ui.Files embedded filesystem.
	pages, err := fs.Glob(ui.Files, "html/*.page.tmpl")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		patterns := []string{
			"html/base.layout.tmpl",
			"html/*.partial.tmpl",
			page,
		}

		ts, err := template.New(name).Funcs(functions).ParseFS(ui.Files, patterns...)
		if err != nil {
			return nil, err
		}

		cache[name] = ts
	}

	return cache, nil
}
