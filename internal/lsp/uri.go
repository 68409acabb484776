package lsp

import (
	"net/url"
	"path/filepath"

	"tassls/internal/source"
)

// URIToPath converts a file:// URI (or a bare path) to the normalized
// document identity used by the index. Non-file schemes yield "".
func URIToPath(uri string) string {
	if uri == "" {
		return ""
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "" && parsed.Scheme != "file" {
		return ""
	}
	path := parsed.Path
	if parsed.Scheme == "" {
		path = uri
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return source.NormalizePath(filepath.FromSlash(path))
}

// PathToURI converts a document identity to a file:// URI.
func PathToURI(path string) string {
	if path == "" {
		return ""
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(source.NormalizePath(path))}
	return u.String()
}
