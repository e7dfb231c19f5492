package formkit

import (
	"context"
	"log/slog"
	"net/http"
)

type contextKey struct{}

// WithContext stores a form in the context.
func WithContext(ctx context.Context, form *Form) context.Context {
	return context.WithValue(ctx, contextKey{}, form)
}

// FromContext retrieves the form stored by Middleware or WithContext.
func FromContext(ctx context.Context) (*Form, bool) {
	if ctx == nil {
		return nil, false
	}
	form, ok := ctx.Value(contextKey{}).(*Form)
	return form, ok
}

// Middleware builds a form per request and stores it in the context for
// handlers and views to pick up with FromContext. Unparsable bodies do not
// fail the request: the error is logged at debug level and the handler sees
// an empty form, since a broken submission should re-render the form rather
// than 500.
//
// Use WithStashFunc to bind per-request values, typically records loaded by
// earlier middleware:
//
//	r.Use(formkit.Middleware(
//	    formkit.WithStashFunc(func(r *http.Request) map[string]any {
//	        return map[string]any{"user": currentUser(r.Context())}
//	    }),
//	))
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.loggerOrDiscard()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			form, err := New(r, opts...)
			if err != nil {
				logger.Debug("failed to parse form",
					slog.Any("error", err),
					slog.String("path", r.URL.Path),
				)
				form = NewFromValues(nil, opts...)
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), form)))
		})
	}
}
