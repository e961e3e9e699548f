package cli

import (
	"errors"
	"fmt"
	"io"

	specerrors "mercator-hq/marketingspec/pkg/spec/errors"
	"mercator-hq/marketingspec/pkg/spec/validator"
)

// Report is the rendered form of a validation run.
type Report struct {
	File   string `json:"file,omitempty"`
	Valid  bool   `json:"valid"`
	Strict bool   `json:"strict"`

	// Passed applies the strict policy: false when invalid, or when strict
	// and any warning exists.
	Passed bool `json:"passed"`

	RulesChecked int     `json:"rules_checked"`
	RulesPassed  int     `json:"rules_passed"`
	SuccessRate  float64 `json:"success_rate"`

	ErrorCount   int `json:"error_count"`
	WarningCount int `json:"warning_count"`
	InfoCount    int `json:"info_count"`

	Errors   []validator.Issue `json:"errors"`
	Warnings []validator.Issue `json:"warnings"`

	// Info is only populated in verbose mode.
	Info []validator.Issue `json:"info,omitempty"`
}

// NewReport builds a report from a validation result.
func NewReport(file string, res *validator.Result, strict, verbose bool) *Report {
	r := &Report{
		File:         file,
		Valid:        res.Valid,
		Strict:       strict,
		Passed:       !res.Failed(strict),
		RulesChecked: res.RulesChecked,
		RulesPassed:  res.RulesPassed,
		SuccessRate:  res.SuccessRate(),
		ErrorCount:   res.ErrorCount(),
		WarningCount: res.WarningCount(),
		InfoCount:    len(res.Info),
		Errors:       nonNil(res.Errors),
		Warnings:     nonNil(res.Warnings),
	}
	if verbose {
		r.Info = nonNil(res.Info)
	}
	return r
}

func nonNil(issues []validator.Issue) []validator.Issue {
	if issues == nil {
		return []validator.Issue{}
	}
	return issues
}

// Render writes the report in the requested format.
func Render(w io.Writer, format OutputFormat, r *Report) error {
	if format == FormatJSON {
		return RenderJSON(w, r)
	}
	return RenderText(w, r)
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, r *Report) error {
	return WriteJSON(w, r)
}

// RenderText writes the human-readable report.
func RenderText(w io.Writer, r *Report) error {
	p := &printer{w: w}

	if r.File != "" {
		p.printf("Validation Summary: %s\n", r.File)
	} else {
		p.printf("Validation Summary\n")
	}
	p.printf("  Rules Checked: %d\n", r.RulesChecked)
	p.printf("  Rules Passed:  %d\n", r.RulesPassed)
	p.printf("  Success Rate:  %.1f%%\n", r.SuccessRate)
	if r.ErrorCount > 0 {
		p.printf("  Errors:        %d\n", r.ErrorCount)
	}
	if r.WarningCount > 0 {
		p.printf("  Warnings:      %d\n", r.WarningCount)
	}
	if len(r.Info) > 0 {
		p.printf("  Info:          %d\n", len(r.Info))
	}

	p.section("Errors", "✗", r.Errors)
	p.section("Warnings", "⚠", r.Warnings)
	p.section("Info", "ℹ", r.Info)

	p.printf("\n")
	switch {
	case !r.Valid:
		p.printf("✗ Validation failed with %d error(s)\n", r.ErrorCount)
	case !r.Passed:
		p.printf("⚠ Warnings present (strict mode enabled)\n")
	default:
		p.printf("✓ Validation successful!\n")
	}

	return p.err
}

// RenderParseError writes a parse failure the way the validate command
// reports it: code, message, fix and line when known.
func RenderParseError(w io.Writer, err error) error {
	p := &printer{w: w}

	var specErr *specerrors.Error
	if !errors.As(err, &specErr) {
		p.printf("✗ %v\n", err)
		return p.err
	}

	p.printf("✗ Parsing failed: [%s] %s\n", specErr.Code, specErr.Message)
	if specErr.Field != "" {
		p.printf("  Field: %s\n", specErr.Field)
	}
	if specErr.Fix != "" {
		p.printf("  Fix: %s\n", specErr.Fix)
	}
	if specErr.Line > 0 {
		p.printf("  Line %d\n", specErr.Line)
	}
	if n := len(specErr.Details); n > 1 {
		p.printf("  (%d problems found)\n", n)
		for _, d := range specErr.Details[1:] {
			p.printf("  - [%s] %s\n", d.Code, d.Message)
		}
	}
	return p.err
}

// ParseProblem is one parse failure in JSON output.
type ParseProblem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Fix     string `json:"fix,omitempty"`
}

// ParseFailure is the JSON form of a run that stopped before validation.
type ParseFailure struct {
	File     string         `json:"file,omitempty"`
	Valid    bool           `json:"valid"`
	Passed   bool           `json:"passed"`
	Error    ParseProblem   `json:"parse_error"`
	Problems []ParseProblem `json:"problems,omitempty"`
}

// NewParseFailure converts a parse error. Errors that are not
// *errors.Error keep only their message.
func NewParseFailure(file string, err error) *ParseFailure {
	f := &ParseFailure{File: file}

	var specErr *specerrors.Error
	if !errors.As(err, &specErr) {
		f.Error = ParseProblem{Message: err.Error()}
		return f
	}

	f.Error = parseProblem(specErr)
	if len(specErr.Details) > 1 {
		for _, d := range specErr.Details {
			f.Problems = append(f.Problems, parseProblem(d))
		}
	}
	return f
}

func parseProblem(e *specerrors.Error) ParseProblem {
	return ParseProblem{
		Code:    string(e.Code),
		Message: e.Message,
		Field:   e.Field,
		Line:    e.Line,
		Column:  e.Column,
		Fix:     e.Fix,
	}
}

// RenderParseFailure writes a parse failure in the requested format.
func RenderParseFailure(w io.Writer, format OutputFormat, file string, err error) error {
	if format == FormatJSON {
		return WriteJSON(w, NewParseFailure(file, err))
	}
	return RenderParseError(w, err)
}

// printer remembers the first write error so render code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) section(title, mark string, issues []validator.Issue) {
	if len(issues) == 0 {
		return
	}
	p.printf("\n%s\n", title)
	for _, issue := range issues {
		p.printf("  %s %s\n", mark, issue.String())
		if issue.Fix != "" {
			p.printf("      fix: %s\n", issue.Fix)
		}
	}
}
