package formkit_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
)

func TestNew(t *testing.T) {
	t.Run("reads query parameters", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/?user.name=queried", nil)
		form, err := formkit.New(r)
		require.NoError(t, err)

		field, err := form.Field("user.name")
		require.NoError(t, err)
		v, ok := field.Value()
		require.True(t, ok)
		assert.Equal(t, "queried", v)
	})

	t.Run("reads urlencoded body", func(t *testing.T) {
		body := strings.NewReader("user.name=posted")
		r := httptest.NewRequest("POST", "/", body)
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		form, err := formkit.New(r)
		require.NoError(t, err)

		v, ok := form.MustField("user.name").Value()
		require.True(t, ok)
		assert.Equal(t, "posted", v)
	})

	t.Run("reads multipart body", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("user.name", "multi"))
		require.NoError(t, w.Close())

		r := httptest.NewRequest("POST", "/", &buf)
		r.Header.Set("Content-Type", w.FormDataContentType())

		form, err := formkit.New(r)
		require.NoError(t, err)

		v, ok := form.MustField("user.name").Value()
		require.True(t, ok)
		assert.Equal(t, "multi", v)
	})

	t.Run("wraps body parse failures", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader("%zz=broken"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		_, err := formkit.New(r)
		assert.ErrorIs(t, err, formkit.ErrInvalidForm)
	})

	t.Run("nil request", func(t *testing.T) {
		_, err := formkit.New(nil)
		assert.ErrorIs(t, err, formkit.ErrInvalidForm)
	})

	t.Run("stash func derives bindings from the request", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/acct", nil)
		form, err := formkit.New(r, formkit.WithStashFunc(func(r *http.Request) map[string]any {
			return map[string]any{"page": map[string]any{"path": r.URL.Path}}
		}))
		require.NoError(t, err)

		v, ok := form.MustField("page.path").Value()
		require.True(t, ok)
		assert.Equal(t, "/acct", v)
	})

	t.Run("explicit bindings win over derived ones", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		form, err := formkit.New(r,
			formkit.WithBind("user", map[string]any{"name": "explicit"}),
			formkit.WithStashFunc(func(*http.Request) map[string]any {
				return map[string]any{"user": map[string]any{"name": "derived"}}
			}),
		)
		require.NoError(t, err)

		v, ok := form.MustField("user.name").Value()
		require.True(t, ok)
		assert.Equal(t, "explicit", v)
	})
}

func TestNewFromValues(t *testing.T) {
	t.Run("nil params behave as empty", func(t *testing.T) {
		form := formkit.NewFromValues(nil, formkit.WithBind("user", map[string]any{"name": "a"}))
		v, ok := form.MustField("user.name").Value()
		require.True(t, ok)
		assert.Equal(t, "a", v)
	})

	t.Run("params resolve without any stash", func(t *testing.T) {
		form := formkit.NewFromValues(url.Values{"user.name": {"b"}})
		v, ok := form.MustField("user.name").Value()
		require.True(t, ok)
		assert.Equal(t, "b", v)
	})
}

func TestFormField(t *testing.T) {
	stash := map[string]any{
		"user": map[string]any{"name": "sshaw"},
	}

	t.Run("empty name", func(t *testing.T) {
		form := formkit.NewFromValues(nil, formkit.WithStash(stash))
		_, err := form.Field("")
		assert.ErrorIs(t, err, formkit.ErrNoFieldName)
	})

	t.Run("malformed path", func(t *testing.T) {
		form := formkit.NewFromValues(nil, formkit.WithStash(stash))
		_, err := form.Field("user..name")
		assert.ErrorIs(t, err, formkit.ErrInvalidPath)
	})

	t.Run("unknown root is loud", func(t *testing.T) {
		form := formkit.NewFromValues(nil, formkit.WithStash(stash))
		_, err := form.Field("missing.name")
		assert.ErrorIs(t, err, formkit.ErrUnknownRoot)
		assert.Contains(t, err.Error(), `"missing"`)
	})

	t.Run("deep miss is not an error", func(t *testing.T) {
		form := formkit.NewFromValues(nil, formkit.WithStash(stash))
		field, err := form.Field("user.address.city")
		require.NoError(t, err)

		_, ok := field.Value()
		assert.False(t, ok)
	})

	t.Run("submitted value legitimizes an unbound root", func(t *testing.T) {
		form := formkit.NewFromValues(url.Values{"order.qty": {"2"}})
		field, err := form.Field("order.qty")
		require.NoError(t, err)

		v, ok := field.Value()
		require.True(t, ok)
		assert.Equal(t, "2", v)
	})

	t.Run("submission under a prefix legitimizes the root", func(t *testing.T) {
		form := formkit.NewFromValues(url.Values{"order.qty": {"2"}})
		_, err := form.Fields("order")
		assert.NoError(t, err)
	})

	t.Run("must field panics on unknown root", func(t *testing.T) {
		form := formkit.NewFromValues(nil)
		assert.Panics(t, func() { form.MustField("ghost.name") })
	})
}

func TestEffectiveValue(t *testing.T) {
	t.Run("submitted wins over bound", func(t *testing.T) {
		form := formkit.NewFromValues(
			url.Values{"user.name": {"B"}},
			formkit.WithBind("user", map[string]any{"name": "A"}),
		)
		v, ok := form.MustField("user.name").Value()
		require.True(t, ok)
		assert.Equal(t, "B", v)
	})

	t.Run("submitted empty string still wins", func(t *testing.T) {
		form := formkit.NewFromValues(
			url.Values{"user.name": {""}},
			formkit.WithBind("user", map[string]any{"name": "A"}),
		)
		v, ok := form.MustField("user.name").Value()
		require.True(t, ok)
		assert.Equal(t, "", v)
	})

	t.Run("override only applies at the exact flattened name", func(t *testing.T) {
		// A submitted "user" parameter does not shadow traversal into the
		// bound user object.
		form := formkit.NewFromValues(
			url.Values{"user": {"flat"}},
			formkit.WithBind("user", map[string]any{"name": "A"}),
		)
		v, ok := form.MustField("user.name").Value()
		require.True(t, ok)
		assert.Equal(t, "A", v)
	})

	t.Run("first of multiple submitted values", func(t *testing.T) {
		form := formkit.NewFromValues(url.Values{"tags": {"x", "y"}})
		v, ok := form.MustField("tags").Value()
		require.True(t, ok)
		assert.Equal(t, "x", v)
	})

	t.Run("falls back to bound graph", func(t *testing.T) {
		type user struct {
			Name string `form:"name"`
		}
		form := formkit.NewFromValues(nil, formkit.WithBind("user", user{Name: "bound"}))
		v, ok := form.MustField("user.name").Value()
		require.True(t, ok)
		assert.Equal(t, "bound", v)
	})
}
