package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func check(t *testing.T, rule validator.Rule) bool {
	t.Helper()
	return rule.Check()
}

func TestRequired(t *testing.T) {
	assert.True(t, check(t, validator.Required("name", "sshaw")))
	assert.False(t, check(t, validator.Required("name", "")))
	assert.False(t, check(t, validator.Required("name", "   ")))
	assert.True(t, check(t, validator.Required("age", "0")))
}

func TestLengthRules(t *testing.T) {
	t.Run("min len", func(t *testing.T) {
		assert.True(t, check(t, validator.MinLen("name", "abc", 3)))
		assert.False(t, check(t, validator.MinLen("name", "ab", 3)))
	})

	t.Run("max len", func(t *testing.T) {
		assert.True(t, check(t, validator.MaxLen("name", "abc", 3)))
		assert.False(t, check(t, validator.MaxLen("name", "abcd", 3)))
	})

	t.Run("len between", func(t *testing.T) {
		assert.True(t, check(t, validator.LenBetween("name", "abc", 2, 4)))
		assert.False(t, check(t, validator.LenBetween("name", "a", 2, 4)))
		assert.False(t, check(t, validator.LenBetween("name", "abcde", 2, 4)))
	})
}

func TestInListString(t *testing.T) {
	states := []string{"AL", "AK"}
	assert.True(t, check(t, validator.InListString("state", "AK", states)))
	assert.False(t, check(t, validator.InListString("state", "TN", states)))

	rule := validator.InListString("state", "TN", states)
	assert.Equal(t, "must be one of: AL, AK", rule.Error.Message)
}

func TestEqualsField(t *testing.T) {
	assert.True(t, check(t, validator.EqualsField("confirm", "pw", "password", "pw")))
	assert.False(t, check(t, validator.EqualsField("confirm", "pw", "password", "other")))

	rule := validator.EqualsField("confirm", "a", "password", "b")
	assert.Equal(t, "must match password", rule.Error.Message)
}

func TestMatch(t *testing.T) {
	zip := regexp.MustCompile(`^\d{5}$`)

	assert.True(t, check(t, validator.Match("zip", "37011", zip, "zip code")))
	assert.False(t, check(t, validator.Match("zip", "370", zip, "zip code")))
	assert.False(t, check(t, validator.Match("zip", "", zip, "zip code")))

	t.Run("description drives the message", func(t *testing.T) {
		named := validator.Match("zip", "x", zip, "zip code")
		assert.Equal(t, "must match zip code pattern", named.Error.Message)

		anon := validator.Match("zip", "x", zip, "")
		assert.Equal(t, "has an invalid format", anon.Error.Message)
	})
}

func TestCustom(t *testing.T) {
	rule := validator.Custom("slug", func() bool { return false }, "already taken")
	assert.False(t, rule.Check())
	assert.Equal(t, "already taken", rule.Error.Message)
	assert.Equal(t, "slug", rule.Error.Field)
}

func TestValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last@sub.example.co"}
	for _, v := range valid {
		assert.True(t, check(t, validator.ValidEmail("email", v)), "email %q", v)
	}

	invalid := []string{"", "plain", "@example.com", "user@localhost", "user@.com", "Name <user@example.com>"}
	for _, v := range invalid {
		assert.False(t, check(t, validator.ValidEmail("email", v)), "email %q", v)
	}
}

func TestValidURL(t *testing.T) {
	assert.True(t, check(t, validator.ValidURL("site", "https://example.com/a?b=c")))
	assert.False(t, check(t, validator.ValidURL("site", "example.com")))
	assert.False(t, check(t, validator.ValidURL("site", "/relative/path")))
	assert.False(t, check(t, validator.ValidURL("site", "")))
}

func TestValidUUID(t *testing.T) {
	assert.True(t, check(t, validator.ValidUUID("id", "550e8400-e29b-41d4-a716-446655440000")))
	assert.False(t, check(t, validator.ValidUUID("id", "550e8400e29b41d4a716446655440000")))
	assert.False(t, check(t, validator.ValidUUID("id", "not-a-uuid")))
	assert.False(t, check(t, validator.ValidUUID("id", "")))
}

func TestNumericString(t *testing.T) {
	valid := []string{"0", "42", "-3", "12.5", " 7 "}
	for _, v := range valid {
		assert.True(t, check(t, validator.NumericString("n", v)), "value %q", v)
	}

	invalid := []string{"", "abc", "1,5", "1.2.3"}
	for _, v := range invalid {
		assert.False(t, check(t, validator.NumericString("n", v)), "value %q", v)
	}
}

func TestNumberBounds(t *testing.T) {
	t.Run("min", func(t *testing.T) {
		assert.True(t, check(t, validator.MinNumber("age", "18", 18)))
		assert.False(t, check(t, validator.MinNumber("age", "17.5", 18)))
		assert.False(t, check(t, validator.MinNumber("age", "abc", 18)))
	})

	t.Run("max", func(t *testing.T) {
		assert.True(t, check(t, validator.MaxNumber("age", "65", 65)))
		assert.False(t, check(t, validator.MaxNumber("age", "65.1", 65)))
		assert.False(t, check(t, validator.MaxNumber("age", "", 65)))
	})
}
