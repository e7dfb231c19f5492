// Package sanitizer provides composable string cleanup transformations for
// user input.
//
// Every transformation is a pure func(string) string, which makes them
// directly usable as form filters and easy to chain:
//
//	clean := sanitizer.Apply(raw, sanitizer.Trim, sanitizer.ToLower)
//
//	normalize := sanitizer.Compose(sanitizer.Trim, sanitizer.CollapseWhitespace)
//	clean = normalize(raw)
//
// Transformations never fail. Input that cannot be improved passes through
// unchanged, so pipelines are safe on arbitrary submissions.
package sanitizer
