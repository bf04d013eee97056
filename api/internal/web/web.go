// Package web serves the browser front end of the checker: one page with the feedback form
// and the script that talks to the score endpoint.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"smart-checker/api/internal/form"
	"smart-checker/api/internal/smart"
)

//go:embed templates/index.html.tmpl
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var index = template.Must(template.ParseFS(templatesFS, "templates/index.html.tmpl"))

type rowLabel struct {
	Key   smart.Key `json:"key"`
	Label string    `json:"label"`
}

type page struct {
	Form        *form.Form
	Rows        []form.Row
	Headers     []string
	Labels      []rowLabel
	Placeholder string
	Disclaimer  string
}

// Render writes the page for f. A nil form renders the empty initial state.
func Render(w io.Writer, f *form.Form) error {
	if f == nil {
		f = &form.Form{}
	}
	labels := make([]rowLabel, 0, len(smart.Keys))
	for _, k := range smart.Keys {
		labels = append(labels, rowLabel{Key: k, Label: form.Label(k)})
	}
	return index.Execute(w, page{
		Form:        f,
		Rows:        f.Rows(),
		Headers:     form.Headers,
		Labels:      labels,
		Placeholder: form.Placeholder,
		Disclaimer:  form.Disclaimer,
	})
}

// Static serves the embedded assets. Mount it under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
