package validation

import "regexp"

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// PasswordMinLength matches the minimum accepted at signup
	PasswordMinLength = 6

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// AllowedImageExtensions lists the accepted faculty photo formats.
var AllowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// IsAllowedImageExtension reports whether ext (including the leading
// dot, lowercased) is an accepted faculty photo format.
func IsAllowedImageExtension(ext string) bool {
	return AllowedImageExtensions[ext]
}
