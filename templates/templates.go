// Package templates holds the HTML pages and the functions they use.
package templates

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse parses every page with the shared function map
func Parse() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(GetTemplateFuncs()).ParseFS(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
