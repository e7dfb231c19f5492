package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

		msg := errs.Error()
		assert.Contains(t, msg, "email: is required")
		assert.Contains(t, msg, "password: too short")
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "password", Message: "needs a digit"})
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("password"))
		assert.False(t, errs.Has("name"))
	})

	t.Run("get returns all messages in order", func(t *testing.T) {
		assert.Equal(t, []string{"too short", "needs a digit"}, errs.Get("password"))
		assert.Nil(t, errs.Get("name"))
	})

	t.Run("first returns earliest error", func(t *testing.T) {
		first, ok := errs.First("password")
		require.True(t, ok)
		assert.Equal(t, "too short", first.Message)

		_, ok = errs.First("name")
		assert.False(t, ok)
	})

	t.Run("fields lists each field once", func(t *testing.T) {
		assert.Equal(t, []string{"password", "email"}, errs.Fields())
	})

	t.Run("empty checks", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestApply(t *testing.T) {
	pass := validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: "a", Message: "never"},
	}
	fail := func(field, msg string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: msg},
		}
	}

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("returns nil for no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects failures in declaration order", func(t *testing.T) {
		err := validator.Apply(fail("b", "first"), pass, fail("a", "second"))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "b", errs[0].Field)
		assert.Equal(t, "a", errs[1].Field)
	})

	t.Run("all rules run even after a failure", func(t *testing.T) {
		calls := 0
		counting := validator.Rule{
			Check: func() bool {
				calls++
				return false
			},
			Error: validator.ValidationError{Field: "x", Message: "nope"},
		}
		err := validator.Apply(counting, counting, counting)
		require.Error(t, err)
		assert.Equal(t, 3, calls)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	})

	t.Run("direct validation errors", func(t *testing.T) {
		err := validator.Apply(validator.Required("name", ""))
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		err := fmt.Errorf("saving user: %w", validator.Apply(validator.Required("name", "")))
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.True(t, validator.IsValidationError(err))
	})
}
