// File: /utils/validators.go
package utils

import (
	"regexp"
	"strings"
)

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func IsValidURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// SplitCommaList splits a comma separated field into its entries, trimming
// whitespace and dropping empty segments. "A, B, ,C" becomes [A B C].
func SplitCommaList(input string) []string {
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		result = append(result, p)
	}
	return result
}

// DedupeStrings removes repeated entries, keeping first occurrence order.
// Comparison is case-insensitive so "Pooja" and "pooja" collapse to one.
func DedupeStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, strings.TrimSpace(item))
	}
	return result
}

// IsImageContentType reports whether the uploaded file claims an image MIME type
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}
