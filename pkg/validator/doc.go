// Package validator provides declarative validation rules for form values.
//
// A Rule pairs a boolean Check function with translation-friendly error
// metadata. Rules are evaluated with the Apply helper, which aggregates
// failures into a ValidationErrors slice that satisfies the error interface,
// so multiple field-specific problems travel in a single error return.
//
// All rules operate on strings, because form submissions arrive as strings.
// Numeric rules parse their input and treat unparsable values as failures.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.ValidEmail("email", email),
//	    validator.MinNumber("age", age, 18),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages or translate them
//	    }
//	}
//
// Failures keep rule declaration order, and ValidationErrors.First returns
// the earliest failure for a field, which is the message a form shows next
// to the control.
//
// # Error Handling
//
// ValidationErrors implements Error, so errors.As detects validation
// problems while preserving details. Field errors can be inspected with the
// helper methods Has, Get, First, and Fields.
//
// The package is stateless and goroutine-safe. Expensive checks belong
// outside it, adapted into a Rule with Custom where needed.
package validator
