package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Humanize turns a path token into label text. Words are split on
// underscores, dashes, spaces, camel case boundaries, and letter-digit
// transitions, then title cased: "billing_email" and "billingEmail" both
// become "Billing Email", "address2" becomes "Address 2".
func Humanize(token string) string {
	words := splitWords(token)
	if len(words) == 0 {
		return ""
	}
	title := cases.Title(language.English)
	return title.String(strings.ToLower(strings.Join(words, " ")))
}

func splitWords(s string) []string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' {
			flush()
			continue
		}
		if i > 0 {
			prev := runes[i-1]
			boundary := (unicode.IsUpper(r) && unicode.IsLower(prev)) ||
				(unicode.IsDigit(r) && unicode.IsLetter(prev)) ||
				(unicode.IsLetter(r) && unicode.IsDigit(prev))
			if boundary {
				flush()
			}
		}
		cur.WriteRune(r)
	}
	flush()
	return words
}
