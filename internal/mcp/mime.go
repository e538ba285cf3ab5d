package mcp

import (
	"path/filepath"
	"strings"
)

// mimeTypes maps asset and catalog extensions to MIME types.
var mimeTypes = map[string]string{
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".json": "application/json",
	".yaml": "text/x-yaml",
	".yml":  "text/x-yaml",
}

// MimeTypeForPath returns the MIME type for a file path, or
// "application/octet-stream" for unknown types.
func MimeTypeForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mime, ok := mimeTypes[ext]; ok {
		return mime
	}
	return "application/octet-stream"
}

// isTextMime reports whether content of this type is returned as text
// rather than a blob.
func isTextMime(mime string) bool {
	return strings.HasPrefix(mime, "text/") || mime == "image/svg+xml" || mime == "application/json"
}
