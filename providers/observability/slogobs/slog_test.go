package slogobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/providers/observability"
)

func newTestObserver(level slog.Level) (*Observer, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(WithOutput(&buf), WithFormat(FormatCompact), WithLevel(level)), &buf
}

func TestObserver_Logging(t *testing.T) {
	observer, buf := newTestObserver(slog.LevelInfo)
	ctx := context.Background()

	observer.Debug(ctx, "hidden")
	observer.Info(ctx, "scene linted", observability.Int(observability.AttrConfidence, 95))
	observer.Warn(ctx, "fallback used")
	observer.Error(ctx, "config unreadable", observability.Error(errors.New("no such file")))

	got := buf.String()
	for _, want := range []string{
		`INFO scene linted {"lint.confidence":95}`,
		"WARN fallback used",
		`ERROR config unreadable {"error":"no such file"}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("DEBUG line leaked at INFO level:\n%s", got)
	}
}

func TestObserver_Totals(t *testing.T) {
	observer, _ := newTestObserver(slog.LevelInfo)
	ctx := context.Background()

	observer.Counter(observability.MetricRequests).Add(ctx, 1)
	observer.Counter(observability.MetricRequests).Add(ctx, 2)
	observer.Counter(observability.MetricFallbacks).Add(ctx, 1)
	observer.Histogram(observability.MetricConfidence).Record(ctx, 80)

	want := map[string]int64{
		observability.MetricRequests:  3,
		observability.MetricFallbacks: 1,
	}
	totals := observer.Totals()
	if diff := cmp.Diff(want, totals); diff != "" {
		t.Errorf("Totals() mismatch (-want +got):\n%s", diff)
	}

	totals[observability.MetricRequests] = 100
	if got := observer.Totals()[observability.MetricRequests]; got != 3 {
		t.Errorf("Totals() returned shared map; total now %d", got)
	}
}

func TestObserver_Span(t *testing.T) {
	observer, buf := newTestObserver(slog.LevelDebug)

	ctx, span := observer.StartSpan(context.Background(), observability.SpanLint,
		observability.Int(observability.AttrResponseLength, 42))
	if observability.SpanFromContext(ctx) != span {
		t.Error("StartSpan() did not attach span to context")
	}

	span.SetAttributes(observability.String(observability.AttrSource, "raw"))
	span.SetStatus(observability.StatusOK, "")
	span.End()
	span.End()

	got := buf.String()
	if n := strings.Count(got, "span ended"); n != 1 {
		t.Errorf("span ended logged %d times, want 1:\n%s", n, got)
	}
	for _, want := range []string{`"span":"scene.lint"`, `"lint.source":"raw"`, `"status":"ok"`, `"lint.response.length":42`} {
		if !strings.Contains(got, want) {
			t.Errorf("span output missing %s:\n%s", want, got)
		}
	}
}

func TestObserver_SpanRecordError(t *testing.T) {
	observer, buf := newTestObserver(slog.LevelWarn)
	_, span := observer.StartSpan(context.Background(), observability.SpanLint)

	span.RecordError(nil)
	span.RecordError(errors.New("structure unfixable"))
	span.End()

	got := buf.String()
	if !strings.Contains(got, `WARN span error {"span":"scene.lint","error":"structure unfixable"}`) {
		t.Errorf("RecordError output = %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected exactly one WARN line, got:\n%s", got)
	}
}

func TestObserver_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	observer := New(WithLogger(logger), WithFormat(FormatJSON))

	if observer.Logger() != logger {
		t.Fatal("Logger() did not return the provided logger")
	}
	observer.Info(context.Background(), "hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("text handler output = %q", buf.String())
	}
}
