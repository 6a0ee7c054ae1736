// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugFormat       = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)
)

var reservedSlugs = map[string]struct{}{
	"admin":    {},
	"api":      {},
	"auth":     {},
	"channels": {},
	"health":   {},
	"login":    {},
	"logout":   {},
	"metrics":  {},
	"register": {},
	"settings": {},
	"spaces":   {},
	"swagger":  {},
	"threads":  {},
	"users":    {},
}

// Slugify lowercases s and collapses every run of non-alphanumeric characters
// into a single hyphen, trimming leading/trailing hyphens. "My Space!" -> "my-space".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ValidateSlug validates slug format and reserved names.
func ValidateSlug(slug string) error {
	if !slugFormat.MatchString(slug) {
		return fmt.Errorf("slug must be 1-64 characters and contain only lowercase letters, numbers, and hyphens")
	}
	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("slug cannot start or end with a hyphen")
	}
	if _, exists := reservedSlugs[slug]; exists {
		return fmt.Errorf("slug is reserved")
	}
	return nil
}
