// Package errors provides the error taxonomy of the specification parsing
// front-end.
//
// Every error carries a stable code, a message, an optional source location
// and a suggested fix:
//
//	MKT-VAL-001  malformed input (syntax, wrong root type, file access, size limit)
//	MKT-VAL-002  missing required field
//	MKT-VAL-003  invalid field value, type or pattern
//
// Rule violations found by the validation engine are not errors; they are
// reported as issues on the validation result.
//
// # Error Format
//
//	[MKT-VAL-001] Invalid YAML syntax: mapping values are not allowed in this context
//	  --> marketing-spec.yaml:12:9
//	  |
//	  11 |   tagline: "Ship faster"
//	  -> 12 |   website: https: //example.com
//	  |
//	  = fix: Check YAML syntax, ensure proper indentation and no tabs
//
// # Suggestions
//
// Suggest uses Levenshtein distance to propose the closest known name when a
// reference or field name is misspelled:
//
//	errors.Suggest("q1-pln", []string{"q1-plan", "q2-plan"})
//	// Returns: "Did you mean 'q1-plan'?"
package errors
