package spec

import (
	"mercator-hq/marketingspec/pkg/spec/model"
	"mercator-hq/marketingspec/pkg/spec/parser"
	"mercator-hq/marketingspec/pkg/spec/validator"
)

// ParseAndValidate parses the file at path and validates it against the
// real clock.
func ParseAndValidate(path string) (*model.Document, *validator.Result, error) {
	doc, err := parser.NewParser().Parse(path)
	if err != nil {
		return nil, nil, err
	}
	return doc, validator.NewValidator().Validate(doc), nil
}

// ParseAndValidateBytes parses and validates an in-memory specification.
func ParseAndValidateBytes(data []byte, format parser.Format) (*model.Document, *validator.Result, error) {
	doc, err := parser.NewParser().ParseBytes(data, format)
	if err != nil {
		return nil, nil, err
	}
	return doc, validator.NewValidator().Validate(doc), nil
}

// Parse parses a specification file without running the rules.
func Parse(path string) (*model.Document, error) {
	return parser.NewParser().Parse(path)
}

// Validate runs the rules against a parsed document.
func Validate(doc *model.Document) *validator.Result {
	return validator.NewValidator().Validate(doc)
}
