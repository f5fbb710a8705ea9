package httpapi

import (
	"context"
	"log/slog"

	"voiceagent-bridge/internal/normalize"
	"voiceagent-bridge/internal/reporting"
	"voiceagent-bridge/internal/upstream"
	"voiceagent-bridge/pkg/logger"
)

// summaryPageLimit bounds how many entries one summary pulls from upstream.
const summaryPageLimit = 1000

// UpstreamCallLogs adapts the upstream call-counts log to reporting.Source.
// The upstream API key is already scoped to one workspace.
type UpstreamCallLogs struct {
	Upstream   Upstream
	Normalizer *normalize.Normalizer
}

var _ reporting.Source = UpstreamCallLogs{}

func (s UpstreamCallLogs) ListCallLogs(ctx context.Context, workspaceID string, rng reporting.TimeRange) ([]normalize.CallLogEntry, error) {
	items, err := s.Upstream.CallLogs(ctx, upstream.CallLogQuery{Page: 1, Limit: summaryPageLimit, From: rng.From, To: rng.To})
	if err != nil {
		return nil, err
	}
	res := s.Normalizer.CallLogs(items)
	if res.Summary.Failed > 0 {
		logger.From(ctx).Warn("call logs excluded from summary",
			slog.String("workspace_id", workspaceID),
			slog.Int("failed", res.Summary.Failed),
			slog.Int("total", res.Summary.Total))
	}
	return res.Records(), nil
}
