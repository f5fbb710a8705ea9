package reporting

import (
	"context"
	"errors"

	"voiceagent-bridge/internal/calls"
	"voiceagent-bridge/internal/normalize"
)

var ErrInvalidRequest = errors.New("reporting: invalid request")

// Source yields canonical call-log entries for a workspace.
//
// IMPORTANT:
// - Implementations must enforce workspace filtering.
// - Entries must already be validated; reporting never sees raw payloads.
type Source interface {
	ListCallLogs(ctx context.Context, workspaceID string, rng TimeRange) ([]normalize.CallLogEntry, error)
}

type Service struct {
	src Source
}

func NewService(src Source) *Service { return &Service{src: src} }

func (s *Service) CallsSummary(ctx context.Context, req CallsSummaryRequest) (CallsSummary, error) {
	if req.WorkspaceID == "" {
		return CallsSummary{}, ErrInvalidRequest
	}
	if req.Range.From.IsZero() || req.Range.To.IsZero() || !req.Range.To.After(req.Range.From) {
		return CallsSummary{}, ErrInvalidRequest
	}
	if s.src == nil {
		return CallsSummary{}, errors.New("reporting: source not configured")
	}

	rows, err := s.src.ListCallLogs(ctx, req.WorkspaceID, req.Range)
	if err != nil {
		return CallsSummary{}, err
	}
	return Summarize(req, rows), nil
}

// Summarize aggregates entries matching req. Entries without a timestamp are
// kept; the upstream query already scoped them to the range.
func Summarize(req CallsSummaryRequest, rows []normalize.CallLogEntry) CallsSummary {
	out := CallsSummary{WorkspaceID: req.WorkspaceID, CampaignName: req.CampaignName, AgentName: req.AgentName}
	for _, e := range rows {
		if e.Timestamp != nil && !req.Range.Contains(*e.Timestamp) {
			continue
		}
		if req.CampaignName != "" && (e.CampaignName == nil || *e.CampaignName != req.CampaignName) {
			continue
		}
		if req.AgentName != "" && (e.AgentName == nil || *e.AgentName != req.AgentName) {
			continue
		}

		out.TotalCalls++
		if e.DurationMs != nil {
			out.TimedCalls++
			out.TotalDurationMs += *e.DurationMs
		}
		if e.Cost != nil {
			out.TotalCost += *e.Cost
		}
		if e.RecordingURL != nil {
			out.RecordedCalls++
		}
		if e.DisconnectionReason != nil && *e.DisconnectionReason != "" {
			if out.DisconnectionReasons == nil {
				out.DisconnectionReasons = map[string]int{}
			}
			out.DisconnectionReasons[*e.DisconnectionReason]++
		}

		switch calls.ClassifyDirection(e.CallType) {
		case calls.DirectionInbound:
			out.InboundCalls++
		case calls.DirectionOutbound:
			out.OutboundCalls++
		}

		switch calls.Classify(e.CallStatus) {
		case calls.ClassCompleted:
			out.CompletedCalls++
		case calls.ClassFailed:
			out.FailedCalls++
		case calls.ClassNoAnswer:
			out.NoAnswerCalls++
		case calls.ClassBusy:
			out.BusyCalls++
		case calls.ClassCancelled:
			out.CancelledCalls++
		case calls.ClassInProgress:
			out.InProgressCalls++
		case calls.ClassUnknown:
			out.UnknownCalls++
		case calls.ClassRinging, calls.ClassQueued:
			// not counted separately
		}
	}
	if out.TimedCalls > 0 {
		out.AverageDurationMs = out.TotalDurationMs / int64(out.TimedCalls)
	}
	return out
}
