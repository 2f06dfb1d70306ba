package utils

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// commonTypes covers extensions the platform MIME table often lacks
var commonTypes = map[string]string{
	".md":   "text/markdown",
	".go":   "text/x-go",
	".rs":   "text/x-rust",
	".py":   "text/x-python",
	".ts":   "application/typescript",
	".toml": "application/toml",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
	".json": "application/json",
	".xml":  "application/xml",
	".csv":  "text/csv",
	".zip":  "application/zip",
	".tar":  "application/x-tar",
	".gz":   "application/gzip",
	".pdf":  "application/pdf",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".mp3":  "audio/mpeg",
	".flac": "audio/flac",
	".webp": "image/webp",
}

// DetectContentType detects the MIME type of a file from its name and, failing
// that, from the first bytes of its content.
func DetectContentType(name string, head []byte) string {
	ext := strings.ToLower(filepath.Ext(name))
	if contentType, ok := commonTypes[ext]; ok {
		return contentType
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}

	if len(head) > 0 {
		if contentType := http.DetectContentType(head); contentType != "application/octet-stream" {
			return contentType
		}
	}

	return "application/octet-stream"
}

// GetFileCategory returns a general category for the content type
func GetFileCategory(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	case strings.HasPrefix(contentType, "audio/"):
		return "audio"
	case strings.HasPrefix(contentType, "text/x-"), strings.Contains(contentType, "javascript"),
		strings.Contains(contentType, "typescript"):
		return "code"
	case strings.Contains(contentType, "json"), strings.Contains(contentType, "toml"),
		strings.Contains(contentType, "yaml"), strings.Contains(contentType, "xml"),
		strings.HasPrefix(contentType, "text/csv"):
		return "data"
	case strings.HasPrefix(contentType, "text/"):
		return "text"
	case strings.Contains(contentType, "pdf"):
		return "document"
	case strings.Contains(contentType, "zip"), strings.Contains(contentType, "tar"), strings.Contains(contentType, "gzip"):
		return "archive"
	default:
		return "other"
	}
}
