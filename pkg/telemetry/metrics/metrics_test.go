package metrics

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mercator-hq/marketingspec/pkg/config"
	specerrors "mercator-hq/marketingspec/pkg/spec/errors"
	"mercator-hq/marketingspec/pkg/spec/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:   true,
		Namespace: "test",
		Subsystem: "metrics",
	}
}

var fixedNow = time.Date(2024, 12, 15, 12, 0, 0, 0, time.UTC)

func newTestCollector(cfg *config.MetricsConfig) *Collector {
	c := NewCollector(cfg, prometheus.NewRegistry())
	c.now = func() time.Time { return fixedNow }
	return c
}

func invalidResult() *validator.Result {
	return &validator.Result{
		Valid: false,
		Errors: []validator.Issue{
			{Code: validator.CodeCampaignPlan, Level: validator.LevelError},
			{Code: validator.CodeCampaignPlan, Level: validator.LevelError},
		},
		Warnings: []validator.Issue{
			{Code: validator.CodeCampaignPlanBudget, Level: validator.LevelWarning},
		},
		Info:         []validator.Issue{},
		RulesChecked: 10,
		RulesPassed:  8,
	}
}

func TestCollector_NewCollector(t *testing.T) {
	cfg := &config.MetricsConfig{Enabled: true}
	registry := prometheus.NewRegistry()

	collector := NewCollector(cfg, registry)

	if collector.Registry() != registry {
		t.Error("Collector registry not set correctly")
	}
	if cfg.Namespace != config.DefaultMetricsNamespace || cfg.Subsystem != config.DefaultMetricsSubsystem {
		t.Errorf("defaults not applied: %q %q", cfg.Namespace, cfg.Subsystem)
	}
	if NewCollector(&config.MetricsConfig{}, nil).Registry() == nil {
		t.Error("expected a fresh registry")
	}
}

func TestCollector_RecordResult(t *testing.T) {
	c := newTestCollector(testConfig())
	vm := c.validationMetrics

	c.RecordResult(invalidResult(), 3*time.Millisecond)
	c.RecordResult(&validator.Result{Valid: true, RulesChecked: 24, RulesPassed: 24}, time.Millisecond)

	if got := testutil.ToFloat64(vm.runsTotal.WithLabelValues(ResultInvalid)); got != 1 {
		t.Errorf("invalid runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(vm.runsTotal.WithLabelValues(ResultValid)); got != 1 {
		t.Errorf("valid runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(vm.issuesTotal.WithLabelValues(validator.CodeCampaignPlan, "error")); got != 2 {
		t.Errorf("plan ref issues = %v, want 2", got)
	}
	if got := testutil.ToFloat64(vm.issuesTotal.WithLabelValues(validator.CodeCampaignPlanBudget, "warning")); got != 1 {
		t.Errorf("overspend issues = %v, want 1", got)
	}

	// gauges reflect the latest run
	if got := testutil.ToFloat64(vm.successRate); got != 100 {
		t.Errorf("success rate = %v, want 100", got)
	}
	if got := testutil.ToFloat64(vm.rulesChecked); got != 24 {
		t.Errorf("rules checked = %v, want 24", got)
	}
	if got := testutil.ToFloat64(vm.lastRun); got != float64(fixedNow.Unix()) {
		t.Errorf("last run = %v", got)
	}
	if got := testutil.CollectAndCount(vm.duration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestCollector_RecordParseError(t *testing.T) {
	c := newTestCollector(testConfig())
	vm := c.validationMetrics

	c.RecordParseError(specerrors.New(specerrors.CodeMalformed, "bad yaml", ""), time.Millisecond)
	c.RecordParseError(os.ErrNotExist, time.Millisecond)
	c.RecordParseError(nil, time.Millisecond)

	if got := testutil.ToFloat64(vm.runsTotal.WithLabelValues(ResultParseError)); got != 2 {
		t.Errorf("parse error runs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(vm.parseErrorsTotal.WithLabelValues(string(specerrors.CodeMalformed))); got != 1 {
		t.Errorf("malformed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(vm.parseErrorsTotal.WithLabelValues("unknown")); got != 1 {
		t.Errorf("unknown = %v, want 1", got)
	}
}

func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	c := newTestCollector(cfg)

	c.RecordResult(invalidResult(), time.Millisecond)
	c.RecordParseError(os.ErrNotExist, time.Millisecond)

	if got := testutil.CollectAndCount(c.validationMetrics.runsTotal); got != 0 {
		t.Errorf("disabled collector recorded %d series", got)
	}

	path := filepath.Join(t.TempDir(), "mspec.prom")
	if err := c.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("disabled collector should not write a textfile")
	}
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := newTestCollector(testConfig())
	c.RecordResult(invalidResult(), 2*time.Millisecond)

	path := filepath.Join(t.TempDir(), "mspec.prom")
	if err := c.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read textfile: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		`test_metrics_validation_runs_total{result="invalid"} 1`,
		`test_metrics_validation_issues_total{code="CAMP-08",level="error"} 2`,
		`test_metrics_validation_success_rate 80`,
		`test_metrics_validation_rules_checked 10`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("textfile missing %q\n%s", want, out)
		}
	}
}

func TestCollector_WriteTextfileError(t *testing.T) {
	c := newTestCollector(testConfig())
	err := c.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "mspec.prom"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to write metrics textfile") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCollector_Handler(t *testing.T) {
	c := newTestCollector(testConfig())
	c.RecordResult(invalidResult(), time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "test_metrics_validation_runs_total") {
		t.Errorf("body missing runs counter:\n%s", rec.Body.String())
	}
}
