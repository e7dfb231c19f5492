package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/render"
)

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"name":          "Name",
		"first_name":    "First Name",
		"billing-email": "Billing Email",
		"billingEmail":  "Billing Email",
		"address2":      "Address 2",
		"ZIP":           "Zip",
		"":              "",
		"_":             "",
	}
	for token, want := range cases {
		assert.Equal(t, want, render.Humanize(token), "token %q", token)
	}
}
