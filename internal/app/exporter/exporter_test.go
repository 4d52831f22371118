package exporter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/matmaxwellness/finmodel2googlesheet/internal/app/sink"
	"github.com/matmaxwellness/finmodel2googlesheet/internal/models"
)

// fakeSink keeps per-tab content like a real destination and scripts
// per-sheet outcomes for each operation: the nth call for a sheet
// returns the nth scripted error, nil after the script runs out.
type fakeSink struct {
	scripts map[string][]error // write outcomes
	ensures map[string][]error
	clears  map[string][]error

	writes  map[string]int
	tabs    map[string]bool
	content map[string][][]any
	ops     []string
}

func newFakeSink(scripts map[string][]error) *fakeSink {
	return &fakeSink{
		scripts: scripts,
		writes:  map[string]int{},
		tabs:    map[string]bool{},
		content: map[string][][]any{},
	}
}

func pop(scripts map[string][]error, name string) error {
	script := scripts[name]
	if len(script) == 0 {
		return nil
	}
	scripts[name] = script[1:]
	return script[0]
}

func (f *fakeSink) EnsureTab(ctx context.Context, name string) error {
	f.ops = append(f.ops, "ensure:"+name)
	if err := pop(f.ensures, name); err != nil {
		return err
	}
	f.tabs[name] = true
	return nil
}

func (f *fakeSink) Clear(ctx context.Context, name string) error {
	f.ops = append(f.ops, "clear:"+name)
	if err := pop(f.clears, name); err != nil {
		return err
	}
	f.content[name] = nil
	return nil
}

func (f *fakeSink) Write(ctx context.Context, name string, values [][]any) error {
	f.ops = append(f.ops, "write:"+name)
	f.writes[name]++

	if err := pop(f.scripts, name); err != nil {
		return err
	}

	// Appending rather than replacing makes a missing Clear visible as
	// duplicated rows.
	f.content[name] = append(f.content[name], values...)
	return nil
}

func testOptions() Options {
	return Options{
		MaxAttempts:    5,
		InitialBackoff: time.Second,
		BackoffCap:     60 * time.Second,
		SheetDelay:     time.Second,
		Sleep:          func(time.Duration) {},
	}
}

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func sheet(name string) models.Sheet {
	return models.Sheet{
		Name:   name,
		Header: []string{"Item", "Y1"},
		Rows:   [][]any{{"Total", 1.0}},
	}
}

func rateLimited() error {
	return fmt.Errorf("%w: googleapi: Error 429", sink.ErrRateLimited)
}

func TestExportReportsEverySheetInOrder(t *testing.T) {
	names := []string{"Dashboard", "Income Statement", "Balance Sheet", "Cash Flow"}

	batch := models.ExportBatch{}
	for _, name := range names {
		batch = append(batch, sheet(name))
	}

	f := newFakeSink(nil)
	report := New(f, testOptions(), testLogger()).Export(context.Background(), batch)

	if len(report.Results) != len(batch) {
		t.Fatalf("expected %d results, got %d", len(batch), len(report.Results))
	}

	got := []string{}
	for _, result := range report.Results {
		got = append(got, result.Sheet)
		if result.Status != models.StatusSuccess {
			t.Errorf("sheet %q: expected success, got %v (%v)", result.Sheet, result.Status, result.Err)
		}
		if result.Attempts != 1 {
			t.Errorf("sheet %q: expected 1 attempt, got %d", result.Sheet, result.Attempts)
		}
	}

	if !reflect.DeepEqual(got, names) {
		t.Errorf("report order %v does not match batch order %v", got, names)
	}
}

func TestRateLimitedSheetIsRetriedThenRecordedFailed(t *testing.T) {
	batch := models.ExportBatch{sheet("Dashboard"), sheet("Income Statement")}

	f := newFakeSink(map[string][]error{
		"Income Statement": {rateLimited(), rateLimited(), rateLimited(), rateLimited(), rateLimited()},
	})

	report := New(f, testOptions(), testLogger()).Export(context.Background(), batch)

	expected := []struct {
		sheet    string
		status   models.Status
		attempts int
	}{
		{"Dashboard", models.StatusSuccess, 1},
		{"Income Statement", models.StatusFailed, 5},
	}

	for i, e := range expected {
		result := report.Results[i]
		if result.Sheet != e.sheet || result.Status != e.status || result.Attempts != e.attempts {
			t.Errorf("result %d: got {%s %s %d}, expected {%s %s %d}",
				i, result.Sheet, result.Status, result.Attempts, e.sheet, e.status, e.attempts)
		}
	}

	if err := report.Results[1].Err; !errors.Is(err, sink.ErrRateLimited) {
		t.Errorf("expected last error to be the rate limit signal, got %v", err)
	}
}

func TestRateLimitExhaustionDoesNotBlockLaterSheets(t *testing.T) {
	batch := models.ExportBatch{sheet("A"), sheet("B"), sheet("C")}

	f := newFakeSink(map[string][]error{
		"B": {rateLimited(), rateLimited(), rateLimited(), rateLimited(), rateLimited()},
	})

	report := New(f, testOptions(), testLogger()).Export(context.Background(), batch)

	if f.writes["C"] != 1 {
		t.Errorf("sheet C should still be attempted after B exhausted retries, writes=%d", f.writes["C"])
	}
	if report.Results[2].Status != models.StatusSuccess {
		t.Errorf("sheet C: expected success, got %v", report.Results[2].Status)
	}
}

func TestPermanentErrorIsNotRetried(t *testing.T) {
	permanent := errors.New("googleapi: Error 403: permission denied")

	batch := models.ExportBatch{sheet("A"), sheet("B")}
	f := newFakeSink(map[string][]error{"A": {permanent}})

	report := New(f, testOptions(), testLogger()).Export(context.Background(), batch)

	result := report.Results[0]
	if result.Status != models.StatusFailed || result.Attempts != 1 {
		t.Errorf("expected failed after 1 attempt, got %v after %d", result.Status, result.Attempts)
	}
	if !errors.Is(result.Err, permanent) {
		t.Errorf("expected recorded error %v, got %v", permanent, result.Err)
	}
	if f.writes["A"] != 1 {
		t.Errorf("permanent error must not be retried, writes=%d", f.writes["A"])
	}
	if report.Results[1].Status != models.StatusSuccess {
		t.Errorf("sheet B should still succeed, got %v", report.Results[1].Status)
	}
}

func TestBackoffDoublesUpToCap(t *testing.T) {
	batch := models.ExportBatch{sheet("A")}

	f := newFakeSink(map[string][]error{
		"A": {rateLimited(), rateLimited(), rateLimited(), rateLimited(), rateLimited()},
	})

	opts := testOptions()
	opts.InitialBackoff = 20 * time.Second
	opts.BackoffCap = 60 * time.Second
	opts.SheetDelay = 0

	slept := []time.Duration{}
	opts.Sleep = func(d time.Duration) {
		if d > 0 {
			slept = append(slept, d)
		}
	}

	New(f, opts, testLogger()).Export(context.Background(), batch)

	expected := []time.Duration{20 * time.Second, 40 * time.Second, 60 * time.Second, 60 * time.Second}
	if !reflect.DeepEqual(slept, expected) {
		t.Errorf("backoff sequence %v, expected %v", slept, expected)
	}
}

func TestReExportYieldsIdenticalTabContents(t *testing.T) {
	batch := models.ExportBatch{sheet("Dashboard"), sheet("Income Statement")}

	f := newFakeSink(nil)
	e := New(f, testOptions(), testLogger())

	e.Export(context.Background(), batch)

	first := map[string][][]any{}
	for name, rows := range f.content {
		first[name] = append([][]any{}, rows...)
	}

	e.Export(context.Background(), batch)

	if !reflect.DeepEqual(f.content, first) {
		t.Errorf("second export changed the destination: %v, expected %v", f.content, first)
	}

	for _, s := range batch {
		if !reflect.DeepEqual(f.content[s.Name], s.Values()) {
			t.Errorf("tab %q holds %v, expected %v", s.Name, f.content[s.Name], s.Values())
		}
	}
}

func TestEveryAttemptRunsEnsureClearWriteInOrder(t *testing.T) {
	batch := models.ExportBatch{sheet("A")}

	f := newFakeSink(map[string][]error{
		"A": {rateLimited()},
	})

	New(f, testOptions(), testLogger()).Export(context.Background(), batch)

	expected := []string{
		"ensure:A", "clear:A", "write:A",
		"ensure:A", "clear:A", "write:A",
	}
	if !reflect.DeepEqual(f.ops, expected) {
		t.Errorf("operation order %v, expected %v", f.ops, expected)
	}
}

func TestRateLimitedClearIsRetried(t *testing.T) {
	batch := models.ExportBatch{sheet("A")}

	f := newFakeSink(nil)
	f.clears = map[string][]error{"A": {rateLimited()}}

	report := New(f, testOptions(), testLogger()).Export(context.Background(), batch)

	result := report.Results[0]
	if result.Status != models.StatusSuccess || result.Attempts != 2 {
		t.Errorf("expected success after 2 attempts, got %v after %d (%v)",
			result.Status, result.Attempts, result.Err)
	}

	// The write of the first attempt never happened.
	if f.writes["A"] != 1 {
		t.Errorf("expected a single write, got %d", f.writes["A"])
	}
}

func TestPermanentEnsureTabErrorFailsWithoutRetry(t *testing.T) {
	permanent := errors.New("googleapi: Error 400: invalid sheet title")

	batch := models.ExportBatch{sheet("A"), sheet("B")}

	f := newFakeSink(nil)
	f.ensures = map[string][]error{"A": {permanent}}

	report := New(f, testOptions(), testLogger()).Export(context.Background(), batch)

	result := report.Results[0]
	if result.Status != models.StatusFailed || result.Attempts != 1 {
		t.Errorf("expected failed after 1 attempt, got %v after %d", result.Status, result.Attempts)
	}
	if len(f.content["A"]) != 0 {
		t.Errorf("tab A must keep its prior content, got %v", f.content["A"])
	}
	if report.Results[1].Status != models.StatusSuccess {
		t.Errorf("sheet B should still succeed, got %v", report.Results[1].Status)
	}
}

func TestZeroOptionsStillAttemptEverySheet(t *testing.T) {
	batch := models.ExportBatch{sheet("A")}

	f := newFakeSink(nil)
	report := New(f, Options{Sleep: func(time.Duration) {}}, testLogger()).Export(context.Background(), batch)

	result := report.Results[0]
	if result.Status != models.StatusSuccess || result.Attempts != 1 {
		t.Errorf("expected success after 1 attempt, got %v after %d (%v)",
			result.Status, result.Attempts, result.Err)
	}
}

func TestTransientRateLimitRecoversWithinBudget(t *testing.T) {
	batch := models.ExportBatch{sheet("A")}

	f := newFakeSink(map[string][]error{
		"A": {rateLimited(), rateLimited()},
	})

	report := New(f, testOptions(), testLogger()).Export(context.Background(), batch)

	result := report.Results[0]
	if result.Status != models.StatusSuccess || result.Attempts != 3 {
		t.Errorf("expected success after 3 attempts, got %v after %d (%v)",
			result.Status, result.Attempts, result.Err)
	}
	if result.Err != nil {
		t.Errorf("successful result must not keep a stale error, got %v", result.Err)
	}
}
