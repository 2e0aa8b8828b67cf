// Package view is the page renderer boundary. Handlers talk to the Renderer
// interface only; how pages are produced is not their business.
package view

import (
	"fmt"
	"html/template"
	"io"

	"github.com/dangsuk1211/Website-banthucung/internal/domain"
)

type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// HTMLRenderer renders html/template files parsed from a directory.
type HTMLRenderer struct {
	templates *template.Template
}

func NewHTMLRenderer(glob string) (*HTMLRenderer, error) {
	tmpl := template.New("").Funcs(template.FuncMap{
		"statusLabel": func(s domain.OrderStatus) string { return s.Label() },
		"money":       func(v float64) string { return fmt.Sprintf("%.0f₫", v) },
	})

	tmpl, err := tmpl.ParseGlob(glob)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &HTMLRenderer{templates: tmpl}, nil
}

func (r *HTMLRenderer) Render(w io.Writer, name string, data any) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
