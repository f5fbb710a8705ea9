package reporting

import (
	"context"
	"testing"
	"time"

	"voiceagent-bridge/internal/normalize"
)

func ptr[T any](v T) *T { return &v }

func entry(id, typ, status string, at time.Time) normalize.CallLogEntry {
	return normalize.CallLogEntry{CallID: id, CallType: typ, CallStatus: status, Timestamp: &at}
}

func TestReporting_WorkspaceIsolation(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Unix(1700000000, 0).UTC()
	repo.Add("w1", entry("c1", "outbound", "completed", now))
	repo.Add("w2", entry("c2", "outbound", "completed", now))
	svc := NewService(repo)

	out, err := svc.CallsSummary(context.Background(), CallsSummaryRequest{WorkspaceID: "w1", Range: TimeRange{From: now.Add(-time.Hour), To: now.Add(time.Hour)}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.TotalCalls != 1 {
		t.Fatalf("expected 1 call, got %d", out.TotalCalls)
	}
}

func TestReporting_RejectsBadRequests(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	now := time.Unix(1700000000, 0).UTC()

	if _, err := svc.CallsSummary(context.Background(), CallsSummaryRequest{Range: TimeRange{From: now, To: now.Add(time.Hour)}}); err != ErrInvalidRequest {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if _, err := svc.CallsSummary(context.Background(), CallsSummaryRequest{WorkspaceID: "w", Range: TimeRange{From: now, To: now}}); err != ErrInvalidRequest {
		t.Fatalf("expected ErrInvalidRequest for empty range, got %v", err)
	}
	if _, err := NewService(nil).CallsSummary(context.Background(), CallsSummaryRequest{WorkspaceID: "w", Range: TimeRange{From: now, To: now.Add(time.Hour)}}); err == nil {
		t.Fatalf("expected error without source")
	}
}

func TestSummarize_Aggregates(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	rows := []normalize.CallLogEntry{
		{CallID: "c1", CallType: "outbound", CallStatus: "completed", DurationMs: ptr(int64(60000)), Cost: ptr(0.5), RecordingURL: ptr("https://r/1"), DisconnectionReason: ptr("user_hangup"), Timestamp: &now},
		{CallID: "c2", CallType: "outbound", CallStatus: "no-answer", DurationMs: ptr(int64(0)), Cost: ptr(0.0), Timestamp: &now},
		{CallID: "c3", CallType: "inbound", CallStatus: "busy", DisconnectionReason: ptr("user_hangup")},
		{CallID: "c4", CallType: "inbound", CallStatus: "voicemail", DurationMs: ptr(int64(30000)), Cost: ptr(0.25)},
		{CallID: "c5", CallType: "outbound", CallStatus: "completed", Timestamp: ptr(now.Add(48 * time.Hour))},
	}
	req := CallsSummaryRequest{WorkspaceID: "w", Range: TimeRange{From: now.Add(-time.Hour), To: now.Add(time.Hour)}}

	out := Summarize(req, rows)
	if out.TotalCalls != 4 {
		t.Fatalf("expected 4 calls in range, got %d", out.TotalCalls)
	}
	if out.CompletedCalls != 1 || out.NoAnswerCalls != 1 || out.BusyCalls != 1 || out.UnknownCalls != 1 {
		t.Fatalf("unexpected status counts: %+v", out)
	}
	if out.InboundCalls != 2 || out.OutboundCalls != 2 {
		t.Fatalf("unexpected direction counts: %+v", out)
	}
	if out.TimedCalls != 3 || out.TotalDurationMs != 90000 || out.AverageDurationMs != 30000 {
		t.Fatalf("unexpected durations: %+v", out)
	}
	if out.TotalCost != 0.75 {
		t.Fatalf("expected total cost 0.75, got %v", out.TotalCost)
	}
	if out.RecordedCalls != 1 {
		t.Fatalf("expected 1 recorded call, got %d", out.RecordedCalls)
	}
	if out.DisconnectionReasons["user_hangup"] != 2 {
		t.Fatalf("expected 2 user_hangup, got %v", out.DisconnectionReasons)
	}
}

func TestSummarize_FiltersByName(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	rows := []normalize.CallLogEntry{
		{CallID: "c1", CallType: "outbound", CallStatus: "completed", CampaignName: ptr("Renewals"), AgentName: ptr("Front desk")},
		{CallID: "c2", CallType: "outbound", CallStatus: "completed", CampaignName: ptr("Winback"), AgentName: ptr("Front desk")},
		{CallID: "c3", CallType: "outbound", CallStatus: "completed"},
	}
	rng := TimeRange{From: now.Add(-time.Hour), To: now.Add(time.Hour)}

	if out := Summarize(CallsSummaryRequest{WorkspaceID: "w", Range: rng, CampaignName: "Renewals"}, rows); out.TotalCalls != 1 {
		t.Fatalf("expected 1 Renewals call, got %d", out.TotalCalls)
	}
	if out := Summarize(CallsSummaryRequest{WorkspaceID: "w", Range: rng, AgentName: "Front desk"}, rows); out.TotalCalls != 2 {
		t.Fatalf("expected 2 Front desk calls, got %d", out.TotalCalls)
	}
}
