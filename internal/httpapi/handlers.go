package httpapi

import (
	"context"
	"errors"
	"net/http"

	"voiceagent-bridge/internal/audit"
	"voiceagent-bridge/internal/auth"
	"voiceagent-bridge/internal/normalize"
	"voiceagent-bridge/internal/rbac"
	"voiceagent-bridge/internal/reporting"
	"voiceagent-bridge/internal/upstream"
	"voiceagent-bridge/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Upstream is the subset of the Atoms client the handlers use.
type Upstream interface {
	GetAgent(ctx context.Context, id string) (any, error)
	ListCampaigns(ctx context.Context) ([]any, error)
	CallLogs(ctx context.Context, q upstream.CallLogQuery) ([]any, error)
	PhoneNumbers(ctx context.Context) ([]any, error)
}

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse input, call internal services, return JSON.
type Handlers struct {
	Normalizer *normalize.Normalizer
	Upstream   Upstream
	// Audit is optional; rejected payloads are only logged without it.
	Audit *audit.Service
}

type identity struct {
	workspaceID string
	clientID    string
}

func requireIdentity(c *gin.Context) (identity, bool) {
	wid, err := auth.WorkspaceID(c.Request.Context())
	if err != nil || wid == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "workspace_id required"})
		return identity{}, false
	}
	cid, _ := auth.ClientID(c.Request.Context())
	return identity{workspaceID: wid, clientID: cid}, true
}

// recordRejected audits failed outcomes. Audit is best-effort: errors are logged, never returned.
func recordRejected[T any](c *gin.Context, h Handlers, id identity, src audit.Source, kind normalize.Kind, items []any, res normalize.BatchResult[T]) {
	log := logger.FromGin(c)
	logger.Batch(log, "normalize "+string(kind), res.Summary.Total, res.Summary.Succeeded, res.Summary.Failed)
	if h.Audit == nil || res.Summary.Failed == 0 {
		return
	}
	r := audit.Rejection{
		WorkspaceID: id.workspaceID,
		ClientID:    id.clientID,
		RequestID:   logger.RequestID(c),
		Source:      src,
	}
	if _, err := audit.RecordOutcomes(c.Request.Context(), h.Audit, r, kind, items, res.Outcomes); err != nil {
		log.Error("audit rejected payloads failed", "kind", kind, "err", err)
	}
}

// upstreamError maps an upstream fetch error onto the response.
func upstreamError(c *gin.Context, err error) {
	logger.FromGin(c).Warn("upstream fetch failed", "err", err)
	if errors.Is(err, upstream.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "upstream unavailable"})
}

// validationError writes 422 for field failures and 400 for contract errors.
func validationError(c *gin.Context, err error) {
	if fs, ok := normalize.AsFailures(err); ok {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "failures": fs})
		return
	}
	if errors.Is(err, normalize.ErrNotObject) || errors.Is(err, normalize.ErrNotCollection) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// Convenience middleware bundles.

func RequireWorkspaceAndPermission(p rbac.Permission) []gin.HandlerFunc {
	return []gin.HandlerFunc{rbac.RequireWorkspace(), rbac.RequirePermission(p)}
}

// Reports builds a reporting service over upstream call logs.
func (h Handlers) Reports() *reporting.Service {
	return reporting.NewService(UpstreamCallLogs{Upstream: h.Upstream, Normalizer: h.Normalizer})
}
