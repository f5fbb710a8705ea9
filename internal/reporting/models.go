package reporting

import "time"

type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains is half-open: From <= t < To.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// CallsSummaryRequest requests aggregated call-log metrics.
// Workspace isolation: WorkspaceID is required.
// CampaignName and AgentName filter on the denormalized names carried by each entry.
type CallsSummaryRequest struct {
	WorkspaceID  string    `json:"workspace_id"`
	Range        TimeRange `json:"range"`
	CampaignName string    `json:"campaign_name,omitempty"`
	AgentName    string    `json:"agent_name,omitempty"`
}

type CallsSummary struct {
	WorkspaceID  string `json:"workspace_id"`
	CampaignName string `json:"campaign_name,omitempty"`
	AgentName    string `json:"agent_name,omitempty"`

	TotalCalls      int `json:"total_calls"`
	CompletedCalls  int `json:"completed_calls"`
	FailedCalls     int `json:"failed_calls"`
	NoAnswerCalls   int `json:"no_answer_calls"`
	BusyCalls       int `json:"busy_calls"`
	CancelledCalls  int `json:"cancelled_calls"`
	InProgressCalls int `json:"in_progress_calls"`
	UnknownCalls    int `json:"unknown_status_calls"`

	InboundCalls  int `json:"inbound_calls"`
	OutboundCalls int `json:"outbound_calls"`

	// Duration aggregates only cover entries that reported a duration.
	TimedCalls        int   `json:"timed_calls"`
	TotalDurationMs   int64 `json:"total_duration_ms"`
	AverageDurationMs int64 `json:"average_duration_ms"`

	TotalCost float64 `json:"total_cost"`

	RecordedCalls int `json:"recorded_calls"`

	// DisconnectionReasons counts entries per reported reason.
	DisconnectionReasons map[string]int `json:"disconnection_reasons,omitempty"`
}
