package api

import (
	"embed"
	"fmt"
	"html/template"
)

// PageTemplate is the name of the loan form template.
const PageTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{"money": money}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
