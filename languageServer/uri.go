package languageServer

import (
	"net/url"
	"path/filepath"
)

func uriToPath(uri DocumentUri) string {
	if uri == "" {
		return ""
	}
	parsed, err := url.Parse(string(uri))
	if err != nil {
		return ""
	}
	if parsed.Scheme != "" && parsed.Scheme != "file" {
		return ""
	}
	path := parsed.Path
	if parsed.Scheme == "" {
		path = string(uri)
	}
	return filepath.Clean(filepath.FromSlash(path))
}

func pathToURI(path string) DocumentUri {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return DocumentUri(u.String())
}
