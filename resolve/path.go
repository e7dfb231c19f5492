package resolve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyPath is returned when a field path contains no tokens at all.
	ErrEmptyPath = errors.New("empty field path")

	// ErrEmptyToken is returned when a field path contains an empty token,
	// such as "user..name" or a trailing dot.
	ErrEmptyToken = errors.New("empty path token")
)

// Path is a parsed field path. Each element addresses one step into a value
// graph: a map key, a struct field, a slice index, or an accessor method.
type Path []string

// Parse splits a dotted field path into its tokens. Whitespace around the
// path is ignored, but tokens themselves are kept verbatim so keys containing
// spaces or unicode still resolve.
func Parse(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyPath
	}

	tokens := strings.Split(s, ".")
	for _, tok := range tokens {
		if tok == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyToken, s)
		}
	}
	return Path(tokens), nil
}

// String returns the canonical dotted form of the path. It is the parameter
// name a form control rendered for this path submits under.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// DOMID returns the path tokens joined with dashes, suitable for an HTML id
// attribute where dots would break CSS selectors.
func (p Path) DOMID() string {
	return strings.Join(p, "-")
}

// Last returns the final token of the path, or an empty string for an empty
// path. The final token names the field itself, independent of nesting.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Join appends sub to a copy of the path, leaving the receiver untouched.
func (p Path) Join(sub Path) Path {
	joined := make(Path, 0, len(p)+len(sub))
	joined = append(joined, p...)
	joined = append(joined, sub...)
	return joined
}

// Index appends a numeric token addressing element i of a sequence.
func (p Path) Index(i int) Path {
	return p.Join(Path{strconv.Itoa(i)})
}
