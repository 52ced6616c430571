package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all HTML from user- or admin-entered free text before
// it is stored. Settings copy and guest special requests end up in emails
// and admin pages, so markup is never allowed through.
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
