package parser

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	specErrors "mercator-hq/marketingspec/pkg/spec/errors"
	"mercator-hq/marketingspec/pkg/spec/model"
)

const minimalProject = `
project:
  name: Acme
  tagline: Analytics
  brand_voice: Casual
  website: https://acme.example.com
  target_audience: [devs]
  value_propositions: [fast]
`

func parseErr(t *testing.T, err error) *specErrors.Error {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var perr *specErrors.Error
	if !stderrors.As(err, &perr) {
		t.Fatalf("error %T is not *errors.Error: %v", err, err)
	}
	return perr
}

func TestParser_Parse_ValidYAML(t *testing.T) {
	doc, err := NewParser().Parse("testdata/valid.yaml")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if doc.Project.Name != "Acme Analytics" {
		t.Errorf("Project.Name = %q, want %q", doc.Project.Name, "Acme Analytics")
	}
	if doc.Project.BrandVoice != model.BrandVoiceTechnical {
		t.Errorf("BrandVoice = %q, want %q", doc.Project.BrandVoice, model.BrandVoiceTechnical)
	}
	if got := doc.Project.SocialHandles["twitter"]; got != "@acme" {
		t.Errorf("twitter handle = %q, want %q", got, "@acme")
	}

	counts := doc.Counts()
	for kind, want := range map[string]int{
		"products": 1, "plans": 1, "campaigns": 1, "channels": 1, "tools": 1,
		"content_templates": 1, "milestones": 1, "analytics": 1,
	} {
		if counts[kind] != want {
			t.Errorf("Counts()[%q] = %d, want %d", kind, counts[kind], want)
		}
	}

	plan := doc.Plan("q1-plan")
	if plan == nil {
		t.Fatal("Plan(q1-plan) = nil")
	}
	if plan.Budget.Total != 5000 {
		t.Errorf("Budget.Total = %v, want 5000", plan.Budget.Total)
	}
	if plan.Budget.Currency != "USD" {
		t.Errorf("Budget.Currency = %q, want default USD", plan.Budget.Currency)
	}
	if plan.Approval == nil || plan.Approval.ApprovedBy != "cmo" {
		t.Errorf("Approval = %+v, want approved_by cmo", plan.Approval)
	}

	if doc.Tools[0].Type != model.ToolTypeRESTAPI {
		t.Errorf("Tool.Type = %q, want %q", doc.Tools[0].Type, model.ToolTypeRESTAPI)
	}
	if doc.Campaigns[0].KPIs[model.KPITargetCTR] != 0.04 {
		t.Errorf("target_ctr = %v, want 0.04", doc.Campaigns[0].KPIs[model.KPITargetCTR])
	}
	if doc.Milestones[0].Status != model.DefaultMilestoneStatus {
		t.Errorf("Milestone.Status = %q, want default %q", doc.Milestones[0].Status, model.DefaultMilestoneStatus)
	}
}

func TestParser_Parse_ValidJSON(t *testing.T) {
	doc, err := NewParser().Parse("testdata/valid.json")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if doc.Project.BrandVoice != model.BrandVoiceFriendly {
		t.Errorf("BrandVoice = %q, want Friendly", doc.Project.BrandVoice)
	}
	if len(doc.Channels) != 1 || doc.Channels[0].ID != "newsletter" {
		t.Errorf("Channels = %+v, want newsletter", doc.Channels)
	}
	if doc.Milestones[0].Status != "planned" {
		t.Errorf("Milestone.Status = %q, want planned", doc.Milestones[0].Status)
	}
}

func TestParser_Parse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantCode specErrors.Code
		wantMsg  string
		wantLine bool
	}{
		{"missing file", "testdata/does-not-exist.yaml", specErrors.CodeMalformed, "Failed to access file", false},
		{"root is a sequence", "testdata/not-a-mapping.yaml", specErrors.CodeMalformed, "Expected mapping, got sequence", true},
		{"bad syntax", "testdata/bad-syntax.yaml", specErrors.CodeMalformed, "Invalid YAML syntax", true},
		{"missing plan_id", "testdata/missing-plan-id.yaml", specErrors.CodeMissingField, "campaigns[0].plan_id", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().Parse(tt.path)
			perr := parseErr(t, err)

			if perr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", perr.Code, tt.wantCode)
			}
			if !strings.Contains(perr.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want substring %q", perr.Message, tt.wantMsg)
			}
			if perr.File != tt.path {
				t.Errorf("File = %q, want %q", perr.File, tt.path)
			}
			if tt.wantLine && perr.Line == 0 {
				t.Error("expected a line number")
			}
			if perr.Fix == "" {
				t.Error("expected a fix")
			}
		})
	}
}

func TestParser_ParseBytes_Shape(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCode  specErrors.Code
		wantField string
	}{
		{
			name:      "missing project",
			input:     "products: []\n",
			wantCode:  specErrors.CodeMissingField,
			wantField: "project",
		},
		{
			name:      "bad brand voice",
			input:     strings.Replace(minimalProject, "Casual", "Snarky", 1),
			wantCode:  specErrors.CodeInvalidValue,
			wantField: "project.brand_voice",
		},
		{
			name:      "http website",
			input:     strings.Replace(minimalProject, "https://", "http://", 1),
			wantCode:  specErrors.CodeInvalidValue,
			wantField: "project.website",
		},
		{
			name: "id pattern",
			input: minimalProject + `
channels:
  - id: Dev_Blog
    name: Blog
    type: blog
    platform: ghost
    content_types: [article]
`,
			wantCode:  specErrors.CodeInvalidValue,
			wantField: "channels[0].id",
		},
		{
			name: "negative budget",
			input: minimalProject + `
campaigns:
  - id: spring
    name: Spring
    goal: conversion
    plan_id: q1
    project_id: acme
    target_audience: [devs]
    budget: -5
    start_date: "2025-03-01"
    end_date: "2025-03-31"
    channels: [blog]
`,
			wantCode:  specErrors.CodeInvalidValue,
			wantField: "campaigns[0].budget",
		},
		{
			name: "unknown analytics type",
			input: minimalProject + `
analytics:
  - id: report
    type: channel
    entity_id: x
    period: {start_date: "2025-01-01", end_date: "2025-01-31"}
    metrics: {views: 1}
    vs_target: {}
    insights:
      - {type: success, description: d, evidence: e, recommendation: r}
    generated_at: "2025-02-01"
`,
			wantCode:  specErrors.CodeInvalidValue,
			wantField: "analytics[0].type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().ParseBytes([]byte(tt.input), FormatYAML)
			perr := parseErr(t, err)

			if perr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q (%s)", perr.Code, tt.wantCode, perr.Message)
			}
			if perr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", perr.Field, tt.wantField)
			}
		})
	}
}

func TestParser_ParseBytes_FixtureEdits(t *testing.T) {
	valid, err := os.ReadFile("testdata/valid.yaml")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		old, new  string
		wantCode  specErrors.Code
		wantField string
	}{
		{"nan allocation", "events: 200", "events: .nan", specErrors.CodeInvalidValue, "plans[0].budget.allocation[events]"},
		{"infinite plan total", "total: 5000", "total: .inf", specErrors.CodeInvalidValue, "plans[0].budget.total"},
		{"infinite campaign budget", "budget: 3000", "budget: .inf", specErrors.CodeInvalidValue, "campaigns[0].budget"},
		{"nan campaign budget", "budget: 3000", "budget: .nan", specErrors.CodeInvalidValue, "campaigns[0].budget"},
		{"missing kpi target", "        target: 400\n", "", specErrors.CodeMissingField, "plans[0].kpis[0].target"},
		{"missing achievement", "        achievement: 120\n", "", specErrors.CodeMissingField, "analytics[0].vs_target[signups].achievement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Replace(string(valid), tt.old, tt.new, 1)
			if input == string(valid) {
				t.Fatalf("fixture has no %q", tt.old)
			}

			_, err := NewParser().ParseBytes([]byte(input), FormatYAML)
			perr := parseErr(t, err)

			if perr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q (%s)", perr.Code, tt.wantCode, perr.Message)
			}
			if perr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", perr.Field, tt.wantField)
			}
			if tt.wantCode == specErrors.CodeInvalidValue && !strings.Contains(perr.Message, "finite") {
				t.Errorf("Message = %q, want mention of finite", perr.Message)
			}
		})
	}
}

func TestParser_ParseBytes_UnknownToolTypeAccepted(t *testing.T) {
	input := minimalProject + `
tools:
  - id: zapier
    name: Zapier
    type: webhook
    capabilities: [publish]
    status: active
`
	doc, err := NewParser().ParseBytes([]byte(input), FormatYAML)
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}
	if doc.Tools[0].Type.Known() {
		t.Errorf("Tool.Type %q reported as known", doc.Tools[0].Type)
	}
}

func TestParser_ParseBytes_TypeError(t *testing.T) {
	input := minimalProject + `
campaigns:
  - id: spring
    name: Spring
    goal: conversion
    plan_id: q1
    project_id: acme
    target_audience: [devs]
    budget: lots
    start_date: "2025-03-01"
    end_date: "2025-03-31"
    channels: [blog]
`
	_, err := NewParser().ParseBytes([]byte(input), FormatYAML)
	perr := parseErr(t, err)
	if perr.Code != specErrors.CodeInvalidValue {
		t.Errorf("Code = %q, want %q", perr.Code, specErrors.CodeInvalidValue)
	}
	if perr.Line != 17 {
		t.Errorf("Line = %d, want 17", perr.Line)
	}
}

func TestParser_ParseBytes_JSON(t *testing.T) {
	t.Run("auto detects object", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join("testdata", "valid.json"))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := NewParser().ParseBytes(data, FormatAuto); err != nil {
			t.Fatalf("ParseBytes() failed: %v", err)
		}
	})

	t.Run("syntax error position", func(t *testing.T) {
		_, err := NewParser().ParseBytes([]byte("{\n  \"project\": {,}\n}"), FormatJSON)
		perr := parseErr(t, err)
		if perr.Code != specErrors.CodeMalformed {
			t.Errorf("Code = %q, want %q", perr.Code, specErrors.CodeMalformed)
		}
		if perr.Line != 2 {
			t.Errorf("Line = %d, want 2", perr.Line)
		}
	})

	t.Run("root array", func(t *testing.T) {
		_, err := NewParser().ParseBytes([]byte(`[1, 2]`), FormatJSON)
		perr := parseErr(t, err)
		if !strings.Contains(perr.Message, "got array") {
			t.Errorf("Message = %q, want root type", perr.Message)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := NewParser().ParseBytes([]byte(`{"project": {"name": 42}}`), FormatJSON)
		perr := parseErr(t, err)
		if perr.Code != specErrors.CodeInvalidValue {
			t.Errorf("Code = %q, want %q", perr.Code, specErrors.CodeInvalidValue)
		}
	})
}

func TestParser_WithMaxFileSize(t *testing.T) {
	p := NewParser().WithMaxFileSize(16)

	_, err := p.Parse("testdata/valid.yaml")
	perr := parseErr(t, err)
	if !strings.Contains(perr.Message, "exceeds maximum") {
		t.Errorf("Message = %q, want size limit", perr.Message)
	}

	_, err = p.ParseBytes([]byte(minimalProject), FormatYAML)
	parseErr(t, err)
}

func TestParser_ShapeDetails(t *testing.T) {
	input := `
project:
  name: Acme
  brand_voice: Casual
  website: https://acme.example.com
  target_audience: [devs]
`
	_, err := NewParser().ParseBytes([]byte(input), FormatYAML)
	perr := parseErr(t, err)

	if len(perr.Details) != 2 {
		t.Fatalf("len(Details) = %d, want 2 (tagline, value_propositions)", len(perr.Details))
	}
	if perr.Field != "project.tagline" {
		t.Errorf("Field = %q, want project.tagline", perr.Field)
	}
	// Missing keys are located at their parent mapping.
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"toml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitPath(t *testing.T) {
	got := splitPath("analytics[1].vs_target[signups].status")
	want := []string{"analytics", "1", "vs_target", "signups", "status"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("splitPath() = %v, want %v", got, want)
	}
}

func TestLineCol(t *testing.T) {
	data := []byte("ab\ncd\nef")
	tests := []struct {
		offset           int64
		wantLine, wantCo int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{7, 3, 2},
	}
	for _, tt := range tests {
		line, col := lineCol(data, tt.offset)
		if line != tt.wantLine || col != tt.wantCo {
			t.Errorf("lineCol(%d) = %d:%d, want %d:%d", tt.offset, line, col, tt.wantLine, tt.wantCo)
		}
	}
}
