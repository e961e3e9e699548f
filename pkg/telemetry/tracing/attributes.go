package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	specErrors "mercator-hq/marketingspec/pkg/spec/errors"
	"mercator-hq/marketingspec/pkg/spec/validator"
)

// Attribute keys set on validation spans.
const (
	AttrSpecFile       = "mspec.spec.file"
	AttrTrigger        = "mspec.watch.trigger"
	AttrGitCommit      = "mspec.git.commit"
	AttrParseErrorCode = "mspec.parse.error_code"
	AttrValid          = "mspec.validation.valid"
	AttrPassed         = "mspec.validation.passed"
	AttrErrors         = "mspec.validation.errors"
	AttrWarnings       = "mspec.validation.warnings"
	AttrRulesChecked   = "mspec.validation.rules_checked"
	AttrRulesPassed    = "mspec.validation.rules_passed"
)

// SetParseError records a parse failure on span. A nil err leaves the span
// unchanged.
func SetParseError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.SetAttributes(attribute.String(AttrParseErrorCode, string(specErrors.CodeOf(err))))
	span.RecordError(err)
	span.SetStatus(codes.Error, "specification does not parse")
}

// SetResult records validation counts on span. Error-level issues set an
// error status; warnings do so only in strict mode.
func SetResult(span trace.Span, res *validator.Result, strict bool) {
	span.SetAttributes(
		attribute.Bool(AttrValid, res.Valid),
		attribute.Bool(AttrPassed, !res.Failed(strict)),
		attribute.Int(AttrErrors, res.ErrorCount()),
		attribute.Int(AttrWarnings, res.WarningCount()),
		attribute.Int(AttrRulesChecked, res.RulesChecked),
		attribute.Int(AttrRulesPassed, res.RulesPassed),
	)
	if res.Failed(strict) {
		span.SetStatus(codes.Error, "validation failed")
	}
}

// SetStatus sets the span status from err: Ok when nil, Error otherwise.
func SetStatus(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
