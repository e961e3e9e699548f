package main

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"mercator-hq/marketingspec/pkg/config"
	"mercator-hq/marketingspec/pkg/telemetry/metrics"
)

// syncBuffer is a bytes.Buffer safe for one writer and concurrent readers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func copyFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "marketing-spec.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return cond()
}

func TestSpecStatus(t *testing.T) {
	resetState(t)
	status := &specStatus{}

	if err := status.check(context.Background()); err == nil {
		t.Error("check() before any run should fail")
	}

	checker := newSpecChecker(config.NewDefaultConfig(), metrics.NewCollector(&config.MetricsConfig{}, nil), false)

	status.set(checker.check(context.Background(), "testdata/valid.yaml"))
	if err := status.check(context.Background()); err != nil {
		t.Errorf("check() after passing run = %v", err)
	}

	status.set(checker.check(context.Background(), "testdata/invalid.yaml"))
	err := status.check(context.Background())
	if err == nil || !strings.Contains(err.Error(), "validation error(s)") {
		t.Errorf("check() after failing run = %v", err)
	}

	status.set(checker.check(context.Background(), "testdata/bad-syntax.yaml"))
	if err := status.check(context.Background()); err == nil || err.Error() != "specification does not parse" {
		t.Errorf("check() after parse failure = %v", err)
	}
}

func TestStatusMux(t *testing.T) {
	resetState(t)
	collector := metrics.NewCollector(&config.MetricsConfig{Enabled: true}, nil)
	checker := newSpecChecker(config.NewDefaultConfig(), collector, false)
	status := &specStatus{}

	srv := httptest.NewServer(newStatusMux(collector, status))
	defer srv.Close()

	get := func(path string) (int, string) {
		t.Helper()
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(body)
	}

	if code, _ := get("/readyz"); code != http.StatusServiceUnavailable {
		t.Errorf("/readyz before first run = %d, want 503", code)
	}
	if code, _ := get("/healthz"); code != http.StatusOK {
		t.Errorf("/healthz = %d, want 200", code)
	}

	status.set(checker.check(context.Background(), "testdata/valid.yaml"))
	if code, body := get("/readyz"); code != http.StatusOK {
		t.Errorf("/readyz after passing run = %d, body %s", code, body)
	}

	code, body := get("/metrics")
	if code != http.StatusOK {
		t.Fatalf("/metrics = %d", code)
	}
	if !strings.Contains(body, `mspec_spec_validation_runs_total{result="valid"} 1`) {
		t.Errorf("/metrics missing run counter\n%s", body)
	}

	if code, body := get("/version"); code != http.StatusOK || !strings.Contains(body, Version) {
		t.Errorf("/version = %d, body %s", code, body)
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := serve(ctx, ln, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	resp, err := http.Get("http://" + ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("serve() error = %v, want nil after shutdown", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestWatchSpec_RerunsOnChange(t *testing.T) {
	resetState(t)
	path := copyFixture(t, "valid.yaml")
	watchFlags.debounce = 20 * time.Millisecond
	watchFlags.metricsAddr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetContext(ctx)

	done := make(chan error, 1)
	go func() { done <- watchSpec(cmd, []string{path}) }()

	if !waitFor(t, 3*time.Second, func() bool { return strings.Contains(out.String(), "✓ Validation successful!") }) {
		t.Fatalf("initial run not reported\n%s", out.String())
	}

	invalid, err := os.ReadFile("testdata/invalid.yaml")
	if err != nil {
		t.Fatal(err)
	}
	// Give the watcher time to register before the write.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, invalid, 0o644); err != nil {
		t.Fatal(err)
	}

	if !waitFor(t, 5*time.Second, func() bool { return strings.Contains(out.String(), "[CAMP-08]") }) {
		t.Errorf("change not re-validated\n%s", out.String())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchSpec() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchSpec did not return after cancellation")
	}
}

func TestWatchSpec_InvalidSchedule(t *testing.T) {
	resetState(t)
	watchFlags.schedule = "every tuesday"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := execute(t, ctx, watchSpec, copyFixture(t, "valid.yaml"))
	if err == nil || !strings.Contains(err.Error(), "command watch failed") {
		t.Errorf("err = %v, want command error for a bad schedule", err)
	}
}
