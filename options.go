package formkit

import (
	"io"
	"log/slog"
	"net/http"
)

type config struct {
	stash      map[string]any
	stashFunc  func(*http.Request) map[string]any
	messages   Messages
	logger     *slog.Logger
	validName  string
	errorsName string
}

func defaultConfig() config {
	return config{
		validName:  "valid",
		errorsName: "errors",
	}
}

// Option configures form construction.
type Option func(*config)

// WithStash binds named root values the form resolves field paths against.
// Multiple calls merge, later calls winning on key conflicts.
func WithStash(stash map[string]any) Option {
	return func(c *config) {
		if len(stash) == 0 {
			return
		}
		if c.stash == nil {
			c.stash = make(map[string]any, len(stash))
		}
		for k, v := range stash {
			c.stash[k] = v
		}
	}
}

// WithBind binds a single root value under the given name.
func WithBind(name string, value any) Option {
	return func(c *config) {
		if name == "" {
			return
		}
		if c.stash == nil {
			c.stash = make(map[string]any, 1)
		}
		c.stash[name] = value
	}
}

// WithStashFunc derives bindings from the incoming request, typically from
// values earlier middleware stored in the context. Derived bindings lose to
// explicit WithStash and WithBind entries on conflict. NewFromValues has no
// request and ignores this option.
func WithStashFunc(fn func(*http.Request) map[string]any) Option {
	return func(c *config) {
		c.stashFunc = fn
	}
}

// WithMessages overrides validation messages by translation key. Multiple
// calls merge.
func WithMessages(messages Messages) Option {
	return func(c *config) {
		if len(messages) == 0 {
			return
		}
		if c.messages == nil {
			c.messages = make(Messages, len(messages))
		}
		for k, v := range messages {
			c.messages[k] = v
		}
	}
}

// WithLogger sets the logger used by Middleware for parse failures. The
// default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithQueryNames renames the valid and errors functions exposed through
// FuncMap, for templates where those names are taken. Empty names keep the
// defaults.
func WithQueryNames(valid, errors string) Option {
	return func(c *config) {
		if valid != "" {
			c.validName = valid
		}
		if errors != "" {
			c.errorsName = errors
		}
	}
}

func (c config) loggerOrDiscard() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
