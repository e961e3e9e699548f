package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	specerrors "mercator-hq/marketingspec/pkg/spec/errors"
	"mercator-hq/marketingspec/pkg/spec/validator"
)

func TestErrors(t *testing.T) {
	cfgErr := NewConfigError("validation.format", "unknown format")
	if cfgErr.Error() != "config error in validation.format: unknown format" {
		t.Errorf("ConfigError.Error() = %q", cfgErr.Error())
	}

	underlying := errors.New("boom")
	cmdErr := NewCommandError("validate", underlying)
	if cmdErr.Error() != "command validate failed: boom" {
		t.Errorf("CommandError.Error() = %q", cmdErr.Error())
	}
	if !errors.Is(cmdErr, underlying) {
		t.Error("CommandError should unwrap to its cause")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   int
		silent bool
	}{
		{"nil", nil, 0, false},
		{"plain", errors.New("x"), 1, false},
		{"exit", &ExitError{Code: 2}, 2, true},
		{"wrapped exit", fmt.Errorf("run: %w", &ExitError{Code: 1}), 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
			if got := IsSilent(tt.err); got != tt.silent {
				t.Errorf("IsSilent() = %v, want %v", got, tt.silent)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFormat(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func sampleResult() *validator.Result {
	return &validator.Result{
		Valid: false,
		Errors: []validator.Issue{{
			Code: "CAMP-08", Level: validator.LevelError,
			EntityType: "campaign", EntityID: "launch", Field: "plan_id",
			Message: "Campaign references unknown plan 'q9'",
			Fix:     "Available plans: q1-2025",
		}},
		Warnings: []validator.Issue{{
			Code: "VR-C09", Level: validator.LevelWarning,
			EntityType: "campaign", EntityID: "launch", Field: "kpis.target_roas",
			Message: "ROAS target 2.0 is below 3.0",
		}},
		Info: []validator.Issue{{
			Code: "VR-PR05", Level: validator.LevelInfo,
			EntityType: "product", EntityID: "app", Field: "launch_date",
			Message: "Product launches in the future",
		}},
		RulesChecked: 12,
		RulesPassed:  10,
	}
}

func TestNewReport(t *testing.T) {
	r := NewReport("spec.yaml", sampleResult(), false, false)
	if r.Valid || r.Passed {
		t.Error("invalid result should not pass")
	}
	if r.ErrorCount != 1 || r.WarningCount != 1 || r.InfoCount != 1 {
		t.Errorf("counts = %d/%d/%d", r.ErrorCount, r.WarningCount, r.InfoCount)
	}
	if r.Info != nil {
		t.Error("info should be omitted unless verbose")
	}
	if len(NewReport("", sampleResult(), false, true).Info) != 1 {
		t.Error("verbose report should include info")
	}

	warnOnly := &validator.Result{Valid: true, Warnings: sampleResult().Warnings, RulesChecked: 1, RulesPassed: 1}
	if !NewReport("", warnOnly, false, false).Passed {
		t.Error("warnings pass outside strict mode")
	}
	if NewReport("", warnOnly, true, false).Passed {
		t.Error("warnings fail in strict mode")
	}

	empty := NewReport("", &validator.Result{Valid: true}, false, true)
	if empty.Errors == nil || empty.Warnings == nil || empty.Info == nil {
		t.Error("issue lists should never be nil")
	}
}

func TestRenderText(t *testing.T) {
	tests := []struct {
		name    string
		report  *Report
		want    []string
		notWant []string
	}{
		{
			name:   "invalid",
			report: NewReport("spec.yaml", sampleResult(), false, false),
			want: []string{
				"Validation Summary: spec.yaml",
				"Rules Checked: 12",
				"Success Rate:  83.3%",
				"Errors:        1",
				"✗ [CAMP-08] campaign(launch).plan_id: Campaign references unknown plan 'q9'",
				"fix: Available plans: q1-2025",
				"⚠ [VR-C09]",
				"✗ Validation failed with 1 error(s)",
			},
			notWant: []string{"VR-PR05"},
		},
		{
			name:   "verbose shows info",
			report: NewReport("", sampleResult(), false, true),
			want:   []string{"Info:          1", "ℹ [VR-PR05]"},
		},
		{
			name:   "strict warnings",
			report: NewReport("", &validator.Result{Valid: true, Warnings: sampleResult().Warnings}, true, false),
			want:   []string{"⚠ Warnings present (strict mode enabled)"},
		},
		{
			name:    "clean",
			report:  NewReport("", &validator.Result{Valid: true, RulesChecked: 24, RulesPassed: 24}, true, false),
			want:    []string{"Success Rate:  100.0%", "✓ Validation successful!"},
			notWant: []string{"Errors", "Warnings"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := RenderText(&buf, tt.report); err != nil {
				t.Fatalf("RenderText() error: %v", err)
			}
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output should not contain %q\n%s", w, out)
				}
			}
		})
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatJSON, NewReport("spec.yaml", sampleResult(), true, false)); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got["valid"] != false || got["strict"] != true || got["file"] != "spec.yaml" {
		t.Errorf("unexpected header fields: %v", got)
	}
	errs, _ := got["errors"].([]any)
	if len(errs) != 1 {
		t.Fatalf("errors = %v", got["errors"])
	}
	first := errs[0].(map[string]any)
	if first["code"] != "CAMP-08" || first["entity_id"] != "launch" || first["level"] != "error" {
		t.Errorf("unexpected issue: %v", first)
	}
	if _, ok := got["info"]; ok {
		t.Error("info should be omitted when not verbose")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderText_WriteError(t *testing.T) {
	if err := RenderText(failingWriter{}, NewReport("", sampleResult(), false, false)); err == nil {
		t.Error("expected write error")
	}
}

func TestRenderParseError(t *testing.T) {
	e := specerrors.New(specerrors.CodeMissingField, "Missing required field 'project.name'", "Add 'name' under 'project'")
	e.Field = "project.name"
	e.Line = 3
	e.Details = []*specerrors.Error{e, specerrors.New(specerrors.CodeInvalidValue, "Invalid value for 'project.website'", "")}

	var buf bytes.Buffer
	if err := RenderParseError(&buf, fmt.Errorf("parse: %w", e)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, w := range []string{
		"✗ Parsing failed: [MKT-VAL-002] Missing required field 'project.name'",
		"Field: project.name",
		"Fix: Add 'name' under 'project'",
		"Line 3",
		"(2 problems found)",
		"- [MKT-VAL-003] Invalid value for 'project.website'",
	} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q\n%s", w, out)
		}
	}

	buf.Reset()
	if err := RenderParseError(&buf, errors.New("open spec.yaml: no such file")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "✗ open spec.yaml: no such file\n" {
		t.Errorf("plain error output = %q", buf.String())
	}
}

func TestRenderParseFailure_JSON(t *testing.T) {
	e := specerrors.New(specerrors.CodeMalformed, "YAML syntax error: did not find expected key", "Check indentation")
	e.Line = 7
	e.Column = 3

	var buf bytes.Buffer
	if err := RenderParseFailure(&buf, FormatJSON, "spec.yaml", e); err != nil {
		t.Fatal(err)
	}

	var got ParseFailure
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got.File != "spec.yaml" || got.Valid || got.Passed {
		t.Errorf("header = %+v", got)
	}
	want := ParseProblem{Code: "MKT-VAL-001", Message: e.Message, Line: 7, Column: 3, Fix: "Check indentation"}
	if got.Error != want {
		t.Errorf("parse_error = %+v, want %+v", got.Error, want)
	}
	if len(got.Problems) != 0 {
		t.Errorf("problems = %v, want none for a single failure", got.Problems)
	}

	plain := NewParseFailure("", errors.New("boom"))
	if plain.Error.Message != "boom" || plain.Error.Code != "" {
		t.Errorf("plain failure = %+v", plain.Error)
	}
}

func TestSetupSignalHandler(t *testing.T) {
	ctx, stop := SetupSignalHandler(context.Background())
	select {
	case <-ctx.Done():
		t.Fatal("context should not be cancelled initially")
	default:
	}

	stop()
	<-ctx.Done()
}
