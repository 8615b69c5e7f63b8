package parser

import (
	"strings"
	"unicode"

	"github.com/jj05y/MTT/core/models"
)

// commentMarker truncates a line before any other analysis.
const commentMarker = "//"

// directiveMarker starts preprocessor lines, which are skipped entirely.
const directiveMarker = "#"

// keywords that disqualify a line from being an enumerator.
var keywords = []string{
	"class", "enum", "public", "private", "protected", "internal",
	"namespace", "using", "static", "const", "readonly", "virtual",
}

// StripComment truncates the line at the first line-comment marker.
func StripComment(line string) string {
	if idx := strings.Index(line, commentMarker); idx >= 0 {
		return line[:idx]
	}
	return line
}

// HasWord reports whether word occurs in line bounded by whitespace or line
// edges. This keeps identifiers like "classroom" from matching "class".
func HasWord(line, word string) bool {
	start := 0
	for {
		idx := strings.Index(line[start:], word)
		if idx < 0 {
			return false
		}
		idx += start

		before := idx == 0 || unicode.IsSpace(rune(line[idx-1]))
		afterIdx := idx + len(word)
		after := afterIdx >= len(line) || unicode.IsSpace(rune(line[afterIdx]))
		if before && after {
			return true
		}
		start = idx + len(word)
	}
}

// IsConstructorShaped reports whether the line looks like a constructor or
// method: balanced, present parentheses. Object-construction statements carry
// the new keyword and are exempt.
func IsConstructorShaped(line string) bool {
	open := strings.Count(line, "(")
	if open == 0 || open != strings.Count(line, ")") {
		return false
	}
	return !HasWord(line, "new")
}

// IsEnumeratorShaped reports whether the comment-stripped line can be an
// enumerator: non-blank, free of brace and bracket characters, not a keyword
// line, and not constructor-shaped.
func IsEnumeratorShaped(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, directiveMarker) {
		return false
	}
	if strings.ContainsAny(trimmed, "{}[]") {
		return false
	}
	for _, kw := range keywords {
		if HasWord(trimmed, kw) {
			return false
		}
	}
	return !IsConstructorShaped(trimmed)
}

// Classify tags a raw source line. Enumerator classification is positional
// (it only means anything inside an enum body), but the rules themselves are
// context-free and live here so they stay independently testable.
func Classify(raw string) models.LineKind {
	stripped := strings.TrimSpace(StripComment(raw))

	switch {
	case stripped == "" && strings.Contains(raw, commentMarker):
		return models.LineCommentOnly
	case stripped == "":
		return models.LineBlank
	case strings.HasPrefix(stripped, directiveMarker):
		return models.LineDirective
	case HasWord(stripped, "enum"):
		return models.LineEnumHeader
	case HasWord(stripped, "class"):
		return models.LineClassHeader
	case HasWord(stripped, "public") && !IsConstructorShaped(stripped):
		return models.LineProperty
	case IsEnumeratorShaped(stripped):
		return models.LineEnumerator
	default:
		return models.LineOther
	}
}
