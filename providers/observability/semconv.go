package observability

// Attribute keys recorded on lint spans and log lines.
const (
	// AttrResponseLength is the rune count of the raw response.
	AttrResponseLength = "lint.response.length"

	// AttrSource is the extraction source of the winning candidate.
	AttrSource = "lint.source"

	// AttrConfidence is the final 0..100 confidence.
	AttrConfidence = "lint.confidence"

	// AttrCandidates is the number of JSON candidates found.
	AttrCandidates = "lint.candidates"

	// AttrStage names the pipeline stage an event or error belongs to.
	AttrStage = "lint.stage"

	// AttrFixes is the number of fixes a stage applied.
	AttrFixes = "lint.fixes"

	// AttrWarnings is the number of warnings a stage raised.
	AttrWarnings = "lint.warnings"

	// AttrFixList carries fix descriptions as a string slice.
	AttrFixList = "lint.fix_list"

	// AttrWarningList carries warning texts as a string slice.
	AttrWarningList = "lint.warning_list"

	// AttrFallback is true when the narrative fallback produced the result.
	AttrFallback = "lint.fallback"

	// AttrCharacters is the number of characters in the result.
	AttrCharacters = "lint.characters"

	// AttrChoices is the number of choices in the result.
	AttrChoices = "lint.choices"

	// AttrBatchSize is the number of responses in a LintMany call.
	AttrBatchSize = "lint.batch.size"

	// AttrBatchSucceeded is the number of batch items that recovered a scene.
	AttrBatchSucceeded = "lint.batch.succeeded"

	// AttrPreview is a truncated preview of the input.
	AttrPreview = "lint.preview"
)

// General attribute keys.
const (
	AttrError             = "error"
	AttrDuration          = "duration"
	AttrStatus            = "status"
	AttrStatusDescription = "status_description"
)

// Span names.
const (
	SpanLint  = "scene.lint"
	SpanBatch = "scene.lint.batch"
)

// Stage names, used both as span event names and as AttrStage values.
const (
	StagePreprocess = "preprocess"
	StageExtract    = "extract"
	StageRepair     = "repair"
	StageSchema     = "schema"
	StageValues     = "values"
	StageFallback   = "fallback"
)

// EventStage prefixes stage names when they are recorded as span events.
const EventStage = "lint.stage."

// Metric names.
const (
	// MetricRequests counts lint calls, labelled by AttrStatus.
	MetricRequests = "scene.lint.requests"

	// MetricFallbacks counts results produced by the narrative fallback.
	MetricFallbacks = "scene.lint.fallbacks"

	// MetricFailures counts results with no scene data.
	MetricFailures = "scene.lint.failures"

	// MetricFixes counts fixes applied, labelled by AttrStage.
	MetricFixes = "scene.lint.fixes"

	// MetricConfidence records the confidence distribution.
	MetricConfidence = "scene.lint.confidence"

	// MetricDuration records lint latency in milliseconds.
	MetricDuration = "scene.lint.duration"
)
