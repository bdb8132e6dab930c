package ingest

import (
	"strings"
	"unicode"

	domainerr "mdblog/internal/domain/errors"
)

// ValidateSlug rejects anything that could escape the posts directory.
func ValidateSlug(slug string) error {
	if strings.TrimSpace(slug) == "" {
		return domainerr.Invalid("slug", "must not be empty")
	}
	if strings.Contains(slug, "..") {
		return domainerr.Invalid("slug", "must not contain ..")
	}
	if strings.ContainsAny(slug, `/\`) {
		return domainerr.Invalid("slug", "must not contain path separators")
	}
	if strings.ContainsRune(slug, 0) {
		return domainerr.Invalid("slug", "must not contain null bytes")
	}
	return nil
}

// ValidateLocale accepts an empty locale (no sub-directory) and otherwise
// applies the slug rules plus a control character check.
func ValidateLocale(locale string) error {
	if locale == "" {
		return nil
	}
	if strings.TrimSpace(locale) == "" {
		return domainerr.Invalid("locale", "must not be blank")
	}
	for _, r := range locale {
		if unicode.IsControl(r) {
			return domainerr.Invalid("locale", "must not contain control characters")
		}
	}
	if strings.Contains(locale, "..") || strings.ContainsAny(locale, `/\`) {
		return domainerr.Invalid("locale", "must not contain path traversal")
	}
	return nil
}
