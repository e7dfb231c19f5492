package sanitizer

import (
	"html"
	"regexp"
)

var (
	htmlTag   = regexp.MustCompile(`<[^>]*>`)
	scriptTag = regexp.MustCompile(`(?i)<script\b[^>]*>.*?</script>`)
)

// EscapeHTML escapes HTML special characters.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// StripHTML removes HTML tags and unescapes entities, leaving plain text.
func StripHTML(s string) string {
	return html.UnescapeString(htmlTag.ReplaceAllString(s, ""))
}

// StripScriptTags removes <script> elements together with their content.
// Unlike StripHTML it leaves other markup in place.
func StripScriptTags(s string) string {
	return scriptTag.ReplaceAllString(s, "")
}
