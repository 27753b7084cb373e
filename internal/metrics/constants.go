package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameCraftsAttempted = "crafts_attempted_total"
	MetricNameCraftsSucceeded = "crafts_succeeded_total"
	MetricNameCraftsFailed    = "crafts_failed_total"
	MetricNameCraftDuration   = "craft_duration_seconds"
	MetricNameLevelUps        = "player_level_ups_total"
	MetricNameXPAwarded       = "player_xp_awarded_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextCraftsAttempted = "Total number of craft attempts"
	HelpTextCraftsSucceeded = "Total number of successful crafts"
	HelpTextCraftsFailed    = "Total number of failed crafts"
	HelpTextCraftDuration   = "Craft transaction latency in seconds"
	HelpTextLevelUps        = "Total number of player level ups"
	HelpTextXPAwarded       = "Total XP awarded to players"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelRecipe = "recipe"
	LabelReason = "reason"
)

// Craft failure reasons
const (
	ReasonRecipeNotFound          = "recipe_not_found"
	ReasonRecipeUnavailable       = "recipe_unavailable"
	ReasonPlayerStateNotFound     = "player_state_not_found"
	ReasonLevelTooLow             = "level_too_low"
	ReasonInsufficientIngredients = "insufficient_ingredients"
	ReasonInternal                = "internal"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// CraftLatencyBuckets defines the histogram buckets for craft transaction
// duration in seconds. Crafts hold row locks, so the interesting range is
// tighter than general HTTP latency.
var CraftLatencyBuckets = []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnknown = "Event payload has unexpected type"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
