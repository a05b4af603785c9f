// Package web embeds the single page and its assets into the binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// PageData is what the index template needs to boot the page.
type PageData struct {
	SessionID string
	Engine    string
}

// Static returns the JS and CSS served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func RenderIndex(w io.Writer, data PageData) error {
	if err := indexTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}
