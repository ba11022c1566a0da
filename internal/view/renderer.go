// Package view renders the HTML pages served by the relay.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded templates.  Templates
// are addressed by file name, e.g. "index.html".
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates and panics if any is invalid.
func NewRenderer() *Renderer {
	return &Renderer{templates: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// IndexData feeds index.html.
type IndexData struct {
	Status string
}
