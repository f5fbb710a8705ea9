package httpapi

import (
	"net/http"

	"voiceagent-bridge/internal/audit"
	"voiceagent-bridge/internal/normalize"

	"github.com/gin-gonic/gin"
)

// Ingest endpoints accept one object, an array of objects, or an Atoms
// {status, data} envelope. A single bare object answers with the record or a
// 422; anything else answers with per-item outcomes and a summary.

func (h Handlers) NormalizeAgents(c *gin.Context) {
	ingest[normalize.AgentRecord](c, h, normalize.KindAgent, h.Normalizer.Agent, h.Normalizer.Agents)
}

func (h Handlers) NormalizeCampaigns(c *gin.Context) {
	ingest[normalize.CampaignRecord](c, h, normalize.KindCampaign, h.Normalizer.Campaign, h.Normalizer.Campaigns)
}

func (h Handlers) NormalizeCallLogs(c *gin.Context) {
	ingest[normalize.CallLogEntry](c, h, normalize.KindCallLog, h.Normalizer.CallLog, h.Normalizer.CallLogs)
}

func (h Handlers) NormalizePhoneNumbers(c *gin.Context) {
	ingest[normalize.PhoneNumberEntry](c, h, normalize.KindPhoneNumber, h.Normalizer.PhoneNumber, h.Normalizer.PhoneNumbers)
}

func ingest[T any](c *gin.Context, h Handlers, kind normalize.Kind, one normalize.Validator[T], many func([]any) normalize.BatchResult[T]) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	body, err := normalize.Decode(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	items, err := normalize.Items(body)
	if err != nil {
		validationError(c, err)
		return
	}

	if isBareObject(body) {
		res := normalize.Batch(items, one)
		recordRejected(c, h, id, audit.SourceIngest, kind, items, res)
		o := res.Outcomes[0]
		if !o.OK() {
			validationError(c, o.Err)
			return
		}
		c.JSON(http.StatusOK, o.Record)
		return
	}

	res := many(items)
	recordRejected(c, h, id, audit.SourceIngest, kind, items, res)
	c.JSON(http.StatusOK, toBatchResponse(res))
}

func isBareObject(body any) bool {
	m, ok := body.(map[string]any)
	if !ok {
		return false
	}
	_, enveloped := m["data"]
	return !enveloped
}
