package formkit

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
	"github.com/dmitrymomot/formkit/resolve"
)

// maxMultipartMemory caps the in-memory portion of multipart bodies.
const maxMultipartMemory = 10 << 20

// Form gives field-path access to a single request's submitted parameters
// and bound values, renders controls for those fields, and validates them.
//
// A Form belongs to one request and is not safe for concurrent use. Handlers
// create one per request, either directly or through Middleware.
type Form struct {
	params url.Values
	stash  map[string]any

	messages   Messages
	validName  string
	errorsName string

	decls   []ruleDecl
	filters map[string][]func(string) string

	validated bool
	result    validator.ValidationErrors
}

// New builds a form from an incoming request. Query parameters and, for
// urlencoded and multipart bodies, form values are merged the way
// http.Request.Form does. Parse failures wrap ErrInvalidForm.
func New(r *http.Request, opts ...Option) (*Form, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidForm)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.stashFunc != nil {
		derived := cfg.stashFunc(r)
		for k, v := range derived {
			if _, ok := cfg.stash[k]; ok {
				continue
			}
			if cfg.stash == nil {
				cfg.stash = make(map[string]any, len(derived))
			}
			cfg.stash[k] = v
		}
	}

	if err := parseRequest(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	return newForm(r.Form, cfg), nil
}

// NewFromValues builds a form from already-parsed parameters. Useful in
// tests and in code paths that never saw an http.Request.
func NewFromValues(params url.Values, opts ...Option) *Form {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newForm(params, cfg)
}

func newForm(params url.Values, cfg config) *Form {
	if params == nil {
		params = url.Values{}
	}
	return &Form{
		params:     params,
		stash:      cfg.stash,
		messages:   cfg.messages,
		validName:  cfg.validName,
		errorsName: cfg.errorsName,
		filters:    make(map[string][]func(string) string),
	}
}

func parseRequest(r *http.Request) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil && strings.HasPrefix(mt, "multipart/") {
			return r.ParseMultipartForm(maxMultipartMemory)
		}
	}
	return r.ParseForm()
}

// Field returns a handle for one field path. The path must be well formed
// and its first token must name either a bound value or something submitted,
// otherwise the error is immediate: a typo in a root name should fail the
// render, not quietly produce empty controls. Deeper path misses are not
// errors; the handle simply resolves to nothing.
func (f *Form) Field(name string) (*Field, error) {
	path, err := f.parsePath(name)
	if err != nil {
		return nil, err
	}
	if err := f.checkRoot(path); err != nil {
		return nil, err
	}
	return &Field{form: f, path: path}, nil
}

// MustField is Field for code-controlled names, panicking on error.
func (f *Form) MustField(name string) *Field {
	field, err := f.Field(name)
	if err != nil {
		panic(err)
	}
	return field
}

// Fields returns a scope rooted at the given path. Field names used through
// the scope are relative to it, so a scope at "user" turns "name" into
// "user.name".
func (f *Form) Fields(name string) (*Scope, error) {
	path, err := f.parsePath(name)
	if err != nil {
		return nil, err
	}
	if err := f.checkRoot(path); err != nil {
		return nil, err
	}
	return &Scope{form: f, path: path, index: -1}, nil
}

// MustFields is Fields for code-controlled names, panicking on error.
func (f *Form) MustFields(name string) *Scope {
	scope, err := f.Fields(name)
	if err != nil {
		panic(err)
	}
	return scope
}

func (f *Form) parsePath(name string) (resolve.Path, error) {
	path, err := resolve.Parse(name)
	switch {
	case errors.Is(err, resolve.ErrEmptyPath):
		return nil, ErrNoFieldName
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	return path, nil
}

func (f *Form) checkRoot(path resolve.Path) error {
	if f.submittedUnder(path) {
		return nil
	}
	if _, ok := f.stash[path[0]]; ok {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownRoot, path[0])
}

// submittedUnder reports whether anything was submitted at the path or
// beneath it. A re-rendered form may carry submitted values for objects
// that were never bound.
func (f *Form) submittedUnder(path resolve.Path) bool {
	name := path.String()
	if _, ok := f.params[name]; ok {
		return true
	}
	prefix := name + "."
	for key := range f.params {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

func (f *Form) submittedFirst(name string) (string, bool) {
	vs, ok := f.params[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// effective is the value a field presents: the submitted parameter under the
// field's full name when present, the bound value otherwise. Submitted
// values win so a failed submission re-renders what the user typed, not what
// the record holds.
func (f *Form) effective(path resolve.Path) (any, bool) {
	if v, ok := f.submittedFirst(path.String()); ok {
		return v, true
	}
	return f.bound(path)
}

// bound resolves the path against the stash only.
func (f *Form) bound(path resolve.Path) (any, bool) {
	root, ok := f.stash[path[0]]
	if !ok {
		return nil, false
	}
	if len(path) == 1 {
		return root, true
	}
	return resolve.Lookup(root, path[1:])
}
