package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestAttributeConstructors(t *testing.T) {
	tests := []struct {
		name      string
		attr      Attribute
		wantKey   string
		wantValue any
	}{
		{"string", String(AttrSource, "json-fence"), AttrSource, "json-fence"},
		{"int", Int(AttrConfidence, 95), AttrConfidence, 95},
		{"int64", Int64(AttrResponseLength, 1<<40), AttrResponseLength, int64(1 << 40)},
		{"float64", Float64("rate", 0.5), "rate", 0.5},
		{"bool", Bool(AttrFallback, true), AttrFallback, true},
		{"duration", Duration(AttrDuration, 2*time.Millisecond), AttrDuration, 2 * time.Millisecond},
		{"error", Error(errors.New("boom")), AttrError, "boom"},
		{"nil error", Error(nil), AttrError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if tt.attr.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.wantValue)
			}
		})
	}
}

func TestStringSlice(t *testing.T) {
	input := []string{"Removed comments from JSON", "Closed 1 unbalanced bracket(s)"}
	attr := StringSlice(AttrFixList, input)

	if attr.Key != AttrFixList {
		t.Errorf("Key = %q, want %q", attr.Key, AttrFixList)
	}
	value, ok := attr.Value.([]string)
	if !ok {
		t.Fatalf("Value is %T, want []string", attr.Value)
	}
	if diff := cmp.Diff(input, value); diff != "" {
		t.Errorf("Value mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusCode_Values(t *testing.T) {
	if StatusUnset != 0 || StatusOK != 1 || StatusError != 2 {
		t.Errorf("status codes = %d/%d/%d, want 0/1/2", StatusUnset, StatusOK, StatusError)
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	ctx, span := rec.StartSpan(context.Background(), SpanLint)

	if SpanFromContext(ctx) != span {
		t.Error("StartSpan() did not attach span to context")
	}

	span.AddEvent(EventStage + StageExtract)
	span.AddEvent(EventStage + StageRepair)
	span.End()

	rec.Counter(MetricRequests).Add(ctx, 1)
	rec.Counter(MetricRequests).Add(ctx, 2)
	rec.Histogram(MetricConfidence).Record(ctx, 95)
	rec.Info(ctx, "scene linted")
	rec.Warn(ctx, "fallback used")

	if diff := cmp.Diff([]string{SpanLint}, rec.Spans()); diff != "" {
		t.Errorf("Spans() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"lint.stage.extract", "lint.stage.repair"}, rec.Events()); diff != "" {
		t.Errorf("Events() mismatch (-want +got):\n%s", diff)
	}
	if got := rec.Count(MetricRequests); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := rec.Count(MetricFailures); got != 0 {
		t.Errorf("Count(unused) = %d, want 0", got)
	}
	if diff := cmp.Diff([]float64{95}, rec.Samples(MetricConfidence)); diff != "" {
		t.Errorf("Samples() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"scene linted", "fallback used"}, rec.Logs()); diff != "" {
		t.Errorf("Logs() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorder_Concurrent(t *testing.T) {
	rec := NewRecorder()
	ctx := context.Background()
	done := make(chan struct{})

	for range 50 {
		go func() {
			rec.Counter(MetricRequests).Add(ctx, 1)
			rec.Histogram(MetricConfidence).Record(ctx, 50)
			done <- struct{}{}
		}()
	}
	for range 50 {
		<-done
	}

	if got := rec.Count(MetricRequests); got != 50 {
		t.Errorf("Count() = %d, want 50", got)
	}
	if got := len(rec.Samples(MetricConfidence)); got != 50 {
		t.Errorf("len(Samples()) = %d, want 50", got)
	}
}

func BenchmarkAttribute_String(b *testing.B) {
	for b.Loop() {
		_ = String(AttrSource, "json-fence")
	}
}
