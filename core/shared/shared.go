// Package shared holds the string casing helpers used across the pipeline:
// canonical model names, emitted file names, and styled directory segments.
package shared

import (
	"strings"
	"unicode"

	"github.com/jj05y/MTT/core/config"
)

func ToTitle(s string) string {
	if s == "" {
		return s
	}
	first := strings.ToUpper(s[:1])
	rest := s[1:]
	return first + rest
}

// ToCamelCase lowers an all-caps identifier entirely, otherwise lowers only
// the first letter. This is the "default" output style.
func ToCamelCase(s string) string {
	if s == "" {
		return s
	}
	if s == strings.ToUpper(s) {
		return strings.ToLower(s)
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ToKebabCase splits camel humps with hyphens and lowers everything:
// "OrderStatus" -> "order-status", "APIKey" -> "api-key".
func ToKebabCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// CaseFileName converts a model name into its output file name (without
// extension) for the given path style.
func CaseFileName(style, name string) string {
	if style == config.PathStyleKebab {
		return ToKebabCase(name)
	}
	return ToCamelCase(name)
}

// CaseDirSegment converts one directory segment for the given path style.
// The default style leaves directory casing untouched.
func CaseDirSegment(style, segment string) string {
	if style == config.PathStyleKebab {
		return ToKebabCase(segment)
	}
	return segment
}
