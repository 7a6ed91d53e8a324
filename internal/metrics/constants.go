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
	MetricNameEventsPublished = "events_published_total"
)

// Game metric names
const (
	MetricNameQuestsRequested     = "quests_requested_total"
	MetricNameQuestsCompleted     = "quests_completed_total"
	MetricNameXPAwarded           = "xp_awarded_total"
	MetricNameCoinsEarned         = "coins_earned_total"
	MetricNameCoinsSpent          = "coins_spent_total"
	MetricNamePurchases           = "purchases_total"
	MetricNameItemsEquipped       = "items_equipped_total"
	MetricNameGamesSaved          = "games_saved_total"
	MetricNameGamesLoaded         = "games_loaded_total"
	MetricNamePersistenceFailures = "persistence_failures_total"
	MetricNameActiveSessions      = "active_sessions"
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
	HelpTextEventsPublished = "Total number of game events published"
)

// Game metric help text
const (
	HelpTextQuestsRequested     = "Total number of quests handed out, by location"
	HelpTextQuestsCompleted     = "Total number of quests completed, by location"
	HelpTextXPAwarded           = "Total experience awarded for completed quests"
	HelpTextCoinsEarned         = "Total coins earned from completed quests"
	HelpTextCoinsSpent          = "Total coins spent in the shop"
	HelpTextPurchases           = "Total purchase attempts, by outcome"
	HelpTextItemsEquipped       = "Total number of items equipped, by avatar slot"
	HelpTextGamesSaved          = "Total number of games saved"
	HelpTextGamesLoaded         = "Total load attempts, by result"
	HelpTextPersistenceFailures = "Total persistence failures, by operation"
	HelpTextActiveSessions      = "Number of player sessions held in memory"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelLocation = "location"
	LabelOutcome  = "outcome"
	LabelSlot     = "slot"
	LabelResult   = "result"
	LabelOp       = "op"
)

// Load results
const (
	ResultLoaded    = "loaded"
	ResultEmptySlot = "empty_slot"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
)
