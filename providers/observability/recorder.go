package observability

import (
	"context"
	"sync"
)

// Recorder is an in-memory Provider. It keeps span names, span events,
// counter totals, histogram samples and log messages so callers can inspect
// what a lint run reported. It is safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	spans      []string
	events     []string
	counters   map[string]int64
	histograms map[string][]float64
	logs       []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		counters:   make(map[string]int64),
		histograms: make(map[string][]float64),
	}
}

var _ Provider = (*Recorder)(nil)

func (r *Recorder) StartSpan(ctx context.Context, name string, _ ...Attribute) (context.Context, Span) {
	r.mu.Lock()
	r.spans = append(r.spans, name)
	r.mu.Unlock()
	span := &recordedSpan{recorder: r}
	return ContextWithSpan(ctx, span), span
}

func (r *Recorder) Counter(name string) Counter { return recordedCounter{r, name} }

func (r *Recorder) Histogram(name string) Histogram { return recordedHistogram{r, name} }

func (r *Recorder) Trace(_ context.Context, msg string, _ ...Attribute) { r.log(msg) }
func (r *Recorder) Debug(_ context.Context, msg string, _ ...Attribute) { r.log(msg) }
func (r *Recorder) Info(_ context.Context, msg string, _ ...Attribute)  { r.log(msg) }
func (r *Recorder) Warn(_ context.Context, msg string, _ ...Attribute)  { r.log(msg) }
func (r *Recorder) Error(_ context.Context, msg string, _ ...Attribute) { r.log(msg) }

func (r *Recorder) log(msg string) {
	r.mu.Lock()
	r.logs = append(r.logs, msg)
	r.mu.Unlock()
}

// Spans returns the names of started spans in start order.
func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.spans...)
}

// Events returns span event names in the order they were added.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

// Count returns the running total of the named counter.
func (r *Recorder) Count(name string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[name]
}

// Samples returns the values recorded on the named histogram.
func (r *Recorder) Samples(name string) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]float64(nil), r.histograms[name]...)
}

// Logs returns logged messages at every level.
func (r *Recorder) Logs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.logs...)
}

type recordedSpan struct {
	recorder *Recorder
}

func (s *recordedSpan) End()                         {}
func (s *recordedSpan) SetAttributes(...Attribute)   {}
func (s *recordedSpan) SetStatus(StatusCode, string) {}
func (s *recordedSpan) RecordError(error)            {}
func (s *recordedSpan) AddEvent(name string, _ ...Attribute) {
	s.recorder.mu.Lock()
	s.recorder.events = append(s.recorder.events, name)
	s.recorder.mu.Unlock()
}

type recordedCounter struct {
	recorder *Recorder
	name     string
}

func (c recordedCounter) Add(_ context.Context, value int64, _ ...Attribute) {
	c.recorder.mu.Lock()
	c.recorder.counters[c.name] += value
	c.recorder.mu.Unlock()
}

type recordedHistogram struct {
	recorder *Recorder
	name     string
}

func (h recordedHistogram) Record(_ context.Context, value float64, _ ...Attribute) {
	h.recorder.mu.Lock()
	h.recorder.histograms[h.name] = append(h.recorder.histograms[h.name], value)
	h.recorder.mu.Unlock()
}
