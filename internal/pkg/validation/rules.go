package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Display application code pattern, e.g. APP2024-123456
	AppCodePattern = `^APP\d{4}-\d{6}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email   *regexp.Regexp
	AppCode *regexp.Regexp
}{
	Email:   regexp.MustCompile(EmailPattern),
	AppCode: regexp.MustCompile(AppCodePattern),
}
