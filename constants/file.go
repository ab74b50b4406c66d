package constants

import "strings"

// File formats the verification pipeline understands.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// FileFormats holds the allowed values for the format field on Document rows.
var FileFormats = []string{PDF, IMAGE}

// AllowedExtensions holds the file extensions accepted for supporting documents.
var AllowedExtensions = []string{"pdf", "jpg", "jpeg", "png", "tif", "tiff"}

// IsAllowedExt reports whether a (possibly dotted, mixed-case) extension is accepted.
func IsAllowedExt(ext string) bool {
	return MapExtToFormat(ext) != ""
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a file format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png", "tif", "tiff":
		return IMAGE
	default:
		return ""
	}
}
