// Package web renders the server-side HTML pages. Templates and the
// stylesheet are embedded so the binary is self-contained.
package web

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/app.css
var appCSS []byte

// Renderer implements echo.Renderer on top of html/template.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{
		templates: templates,
	}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// CSS serves the embedded stylesheet.
func CSS(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", appCSS)
}
