package frontend

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
)

// assets contains the page template and the stylesheet.
//
//go:embed templates static
var assets embed.FS

// IndexTemplate is the name of the single page template.
const IndexTemplate = "index.html.tmpl"

// FuncMap holds the helpers available to the templates.
var FuncMap = template.FuncMap{
	"prettyJSON":  prettyJSON,
	"formatPrice": formatPrice,
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New(IndexTemplate).Funcs(FuncMap).ParseFS(assets, "templates/*.tmpl")
}

// GetHTTPFileSystem returns the file system served under /static/.
// An empty dir serves the embedded assets; otherwise files are read from dir.
func GetHTTPFileSystem(dir string) (http.FileSystem, error) {
	if dir != "" {
		return NewSafeFileSystem(dir), nil
	}

	staticFS, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(staticFS), nil
}

// prettyJSON renders v as JSON indented by two spaces.
func prettyJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
