package overview

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"
)

type contextKey string

const statsContextKey contextKey = "overview"

// Outcome is what the aggregate needs to know about one lint result.
type Outcome struct {
	Succeeded  bool
	Fallback   bool
	Source     string
	Confidence int
	Fixes      []string
	Warnings   int
}

// Summary is a point-in-time report of a Stats.
type Summary struct {
	Total             int            `json:"total"`
	Succeeded         int            `json:"succeeded"`
	Failed            int            `json:"failed"`
	FallbackCount     int            `json:"fallback_count"`
	WarningCount      int            `json:"warning_count"`
	SuccessRate       float64        `json:"success_rate"`
	AverageConfidence float64        `json:"average_confidence"`
	Sources           map[string]int `json:"sources"`
	FixTypes          map[string]int `json:"fix_types"`
	Duration          time.Duration  `json:"duration_ns"`
}

// Stats accumulates outcomes. The zero value is ready to use and it is safe
// for concurrent use.
type Stats struct {
	mu            sync.Mutex
	total         int
	succeeded     int
	fallbacks     int
	warnings      int
	confidenceSum int
	sources       map[string]int
	fixTypes      map[string]int
	start         time.Time
	end           time.Time
}

// FromContext returns the Stats stored in ctx, creating and storing one if
// absent. The context pointer is updated in place when a new Stats is created.
func FromContext(ctx *context.Context) *Stats {
	if *ctx == nil {
		*ctx = context.Background()
	}
	if stats, ok := (*ctx).Value(statsContextKey).(*Stats); ok {
		return stats
	}
	stats := &Stats{}
	*ctx = stats.ToContext(*ctx)
	return stats
}

// ToContext stores s in ctx.
func (s *Stats) ToContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, statsContextKey, s)
}

// Start marks the beginning of the measured window. Only the first call counts.
func (s *Stats) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.start.IsZero() {
		s.start = time.Now()
	}
}

// End marks the end of the measured window. The last call counts.
func (s *Stats) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.end = time.Now()
}

// Add folds one outcome into the totals.
func (s *Stats) Add(o Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sources == nil {
		s.sources = make(map[string]int)
		s.fixTypes = make(map[string]int)
	}

	s.total++
	s.confidenceSum += o.Confidence
	s.warnings += o.Warnings
	if o.Succeeded {
		s.succeeded++
	}
	if o.Fallback {
		s.fallbacks++
	}
	if o.Source != "" {
		s.sources[o.Source]++
	}
	for _, fix := range o.Fixes {
		s.fixTypes[FixType(fix)]++
	}
}

// Summary reports the current totals. Rates are zero for an empty Stats.
func (s *Stats) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Summary{
		Total:         s.total,
		Succeeded:     s.succeeded,
		Failed:        s.total - s.succeeded,
		FallbackCount: s.fallbacks,
		WarningCount:  s.warnings,
		Sources:       make(map[string]int, len(s.sources)),
		FixTypes:      make(map[string]int, len(s.fixTypes)),
	}
	if s.total > 0 {
		out.SuccessRate = float64(s.succeeded) / float64(s.total)
		out.AverageConfidence = float64(s.confidenceSum) / float64(s.total)
	}
	for k, v := range s.sources {
		out.Sources[k] = v
	}
	for k, v := range s.fixTypes {
		out.FixTypes[k] = v
	}
	if !s.start.IsZero() && !s.end.IsZero() {
		out.Duration = s.end.Sub(s.start)
	}
	return out
}

// Collect summarizes outcomes in one call.
func Collect(outcomes ...Outcome) Summary {
	var s Stats
	for _, o := range outcomes {
		s.Add(o)
	}
	return s.Summary()
}

var (
	digitRun    = regexp.MustCompile(`\d+`)
	indexSuffix = regexp.MustCompile(`\[#\]`)
)

// FixType buckets a fix message into its kind: the text before the first
// quoted value, with numbers and array indexes elided.
//
//	"Renamed 'chars' to 'characters'"  -> "Renamed"
//	"Removed 2 trailing comma(s)"      -> "Removed # trailing comma(s)"
//	"Renamed characters[0].who to name" -> "Renamed characters.who to name"
func FixType(fix string) string {
	if i := strings.IndexAny(fix, `'"`); i >= 0 {
		fix = fix[:i]
	}
	fix = digitRun.ReplaceAllString(fix, "#")
	fix = indexSuffix.ReplaceAllString(fix, "")
	return strings.Join(strings.Fields(fix), " ")
}
