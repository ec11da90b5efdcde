package metrics

// Metric names
const (
	MetricNameCommandsTotal   = "adventure_commands_total"
	MetricNameCommandDuration = "adventure_command_duration_seconds"
	MetricNameNarrationsTotal = "adventure_narrations_total"
	MetricNameItemsUsed       = "adventure_items_used_total"
)

// Metric help text
const (
	HelpTextCommandsTotal   = "Total number of player commands processed"
	HelpTextCommandDuration = "Time spent processing a player command in seconds"
	HelpTextNarrationsTotal = "Combat narration attempts by result"
	HelpTextItemsUsed       = "Items used by the player"
)

// Label names
const (
	LabelCommand = "command"
	LabelOutcome = "outcome"
	LabelResult  = "result"
	LabelItem    = "item"
)

// Command outcomes
const (
	OutcomeOK           = "ok"
	OutcomeRejected     = "rejected"
	OutcomeError        = "error"
	OutcomeUnrecognized = "unrecognized"
)

// Narration results
const (
	NarrationGenerated = "generated"
	NarrationFallback  = "fallback"
	NarrationDisabled  = "disabled"
)

// CommandLatencyBuckets covers instant local commands up to a slow narration call.
var CommandLatencyBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30}
