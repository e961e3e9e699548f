package parser

import (
	stderrors "errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	specErrors "mercator-hq/marketingspec/pkg/spec/errors"
	"mercator-hq/marketingspec/pkg/spec/model"
)

// slugPattern is the identifier pattern of every non-root entity.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var (
	shapeValidator *validator.Validate
	shapeOnce      sync.Once
	shapeInitErr   error
)

func getShapeValidator() (*validator.Validate, error) {
	shapeOnce.Do(func() {
		shapeValidator, shapeInitErr = newShapeValidator()
	})
	return shapeValidator, shapeInitErr
}

func newShapeValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their document name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("failed to register 'slug' validation: %w", err)
	}

	// YAML accepts .nan and .inf for any float field.
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Float32, reflect.Float64:
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		}
		return true
	}); err != nil {
		return nil, fmt.Errorf("failed to register 'finite' validation: %w", err)
	}

	return v, nil
}

// shapeReasons maps a validation tag to the reason shown after the field
// path in MKT-VAL-003 messages.
var shapeReasons = map[string]func(param string) string{
	"max": func(param string) string {
		return fmt.Sprintf("must be at most %s (characters or items)", param)
	},
	"min": func(param string) string {
		return fmt.Sprintf("must be at least %s (characters or items)", param)
	},
	"gt": func(param string) string {
		return fmt.Sprintf("must be greater than %s", param)
	},
	"oneof": func(param string) string {
		return fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(param, " ", ", "))
	},
	"url": func(string) string {
		return "must be a valid URL"
	},
	"startswith": func(param string) string {
		return fmt.Sprintf("must start with '%s'", param)
	},
	"finite": func(string) string {
		return "must be a finite number"
	},
	"slug": func(string) string {
		return "must match pattern ^[a-z0-9-]+$ (lowercase letters, digits and hyphens)"
	},
}

// checkShape enforces the struct tag contract of package model. It returns
// the first violation with every violation attached as Details.
func checkShape(doc *model.Document, locate fieldLocator) *specErrors.Error {
	v, err := getShapeValidator()
	if err != nil {
		return specErrors.Wrap(err, specErrors.CodeMalformed, err.Error(), "")
	}

	err = v.Struct(doc)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return specErrors.Wrap(err, specErrors.CodeMalformed,
			fmt.Sprintf("Unexpected validation error: %v", err), "Check file format and syntax")
	}

	if locate == nil {
		locate = noLocation
	}

	details := make([]*specErrors.Error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, shapeError(fe, locate))
	}

	first := *details[0]
	if len(details) > 1 {
		first.Details = details
	}
	return &first
}

func shapeError(fe validator.FieldError, locate fieldLocator) *specErrors.Error {
	path := documentPath(fe.Namespace())

	var e *specErrors.Error
	if fe.Tag() == "required" {
		e = specErrors.New(specErrors.CodeMissingField,
			fmt.Sprintf("Missing required field: '%s'", path),
			specErrors.SuggestMissingField(path))
	} else {
		reason := fmt.Sprintf("failed '%s' check", fe.Tag())
		if format, ok := shapeReasons[fe.Tag()]; ok {
			reason = format(fe.Param())
		}
		fix := fmt.Sprintf("Check the value and type for '%s'", path)
		if fe.Tag() == "oneof" {
			fix = specErrors.SuggestValue(path, strings.Fields(fe.Param()))
			if s := specErrors.Suggest(fmt.Sprint(fe.Value()), strings.Fields(fe.Param())); s != "" {
				fix += ". " + s
			}
		}
		e = specErrors.New(specErrors.CodeInvalidValue,
			fmt.Sprintf("Invalid value for '%s': %s", path, reason), fix)
	}

	e.Field = path
	e.Line, e.Column = locate(path)
	return e
}

// documentPath drops the root struct name from a validator namespace:
// "Document.campaigns[0].plan_id" becomes "campaigns[0].plan_id".
func documentPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
