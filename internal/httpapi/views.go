package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"voiceagent-bridge/internal/audit"
	"voiceagent-bridge/internal/normalize"
	"voiceagent-bridge/internal/reporting"
	"voiceagent-bridge/internal/upstream"

	"github.com/gin-gonic/gin"
)

// GetAgent fetches one agent upstream and returns its canonical record.
func (h Handlers) GetAgent(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	agentID := strings.TrimSpace(c.Param("agent_id"))
	if agentID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "agent_id required"})
		return
	}

	raw, err := h.Upstream.GetAgent(c.Request.Context(), agentID)
	if err != nil {
		upstreamError(c, err)
		return
	}
	res := normalize.Batch[normalize.AgentRecord]([]any{raw}, h.Normalizer.Agent)
	recordRejected(c, h, id, audit.SourceUpstream, normalize.KindAgent, []any{raw}, res)
	o := res.Outcomes[0]
	if !o.OK() {
		validationError(c, o.Err)
		return
	}
	c.JSON(http.StatusOK, o.Record)
}

func (h Handlers) ListCampaigns(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	items, err := h.Upstream.ListCampaigns(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}
	res := h.Normalizer.Campaigns(items)
	recordRejected(c, h, id, audit.SourceUpstream, normalize.KindCampaign, items, res)
	c.JSON(http.StatusOK, toBatchResponse(res))
}

func (h Handlers) ListCallLogs(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	q, err := parseCallLogQuery(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := h.Upstream.CallLogs(c.Request.Context(), q)
	if err != nil {
		upstreamError(c, err)
		return
	}
	res := h.Normalizer.CallLogs(items)
	recordRejected(c, h, id, audit.SourceUpstream, normalize.KindCallLog, items, res)
	c.JSON(http.StatusOK, toBatchResponse(res))
}

func (h Handlers) ListPhoneNumbers(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	items, err := h.Upstream.PhoneNumbers(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}
	res := h.Normalizer.PhoneNumbers(items)
	recordRejected(c, h, id, audit.SourceUpstream, normalize.KindPhoneNumber, items, res)
	c.JSON(http.StatusOK, toBatchResponse(res))
}

// CallLogsSummary aggregates valid call logs in [from, to). Rejected entries
// are excluded from the totals.
func (h Handlers) CallLogsSummary(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	from, err := parseTimeParam(c, "from")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := parseTimeParam(c, "to")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Reports().CallsSummary(c.Request.Context(), reporting.CallsSummaryRequest{
		WorkspaceID:  id.workspaceID,
		Range:        reporting.TimeRange{From: from, To: to},
		CampaignName: strings.TrimSpace(c.Query("campaign_name")),
		AgentName:    strings.TrimSpace(c.Query("agent_name")),
	})
	if errors.Is(err, reporting.ErrInvalidRequest) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "from and to required, to after from"})
		return
	}
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type queryError string

func (e queryError) Error() string { return string(e) }

func parseCallLogQuery(c *gin.Context) (upstream.CallLogQuery, error) {
	var q upstream.CallLogQuery
	var err error
	if q.Page, err = parseIntParam(c, "page"); err != nil {
		return q, err
	}
	if q.Limit, err = parseIntParam(c, "limit"); err != nil {
		return q, err
	}
	if q.From, err = parseTimeParam(c, "from"); err != nil {
		return q, err
	}
	if q.To, err = parseTimeParam(c, "to"); err != nil {
		return q, err
	}
	return q, nil
}

func parseIntParam(c *gin.Context, key string) (int, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, queryError(key + " must be a non-negative integer")
	}
	return n, nil
}

func parseTimeParam(c *gin.Context, key string) (time.Time, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, queryError(key + " must be RFC3339")
	}
	return t.UTC(), nil
}
