package normalize

import (
	"strings"
	"time"
)

// Record builders run only after a validator found no failures. They apply the
// documented defaults and copy anything mutable so records never alias input.

type agentFieldsValidated struct {
	id, name, description, modelID, backgroundSound string
	firstMessage, globalPrompt                      *string
	synth                                           SynthesizerConfig
	lang                                            LanguageConfig
	allowInbound, archived, denoising, redaction    *bool
	smartTurn                                       *SmartTurnConfig
	workflowID                                      string
	workflowType                                    *string
	totalCalls                                      *int64
	createdAt, updatedAt                            time.Time
}

func buildAgent(v agentFieldsValidated) AgentRecord {
	rec := AgentRecord{
		ID:               v.id,
		Name:             v.name,
		Description:      v.description,
		ModelID:          v.modelID,
		FirstMessage:     v.firstMessage,
		BackgroundSound:  v.backgroundSound,
		Synthesizer:      v.synth,
		Language:         v.lang,
		AllowInboundCall: v.allowInbound,
		SmartTurn:        v.smartTurn,
		Denoising:        v.denoising,
		Workflow:         WorkflowRef{ID: v.workflowID, Type: v.workflowType},
		TotalCalls:       v.totalCalls,
		GlobalPrompt:     v.globalPrompt,
		CreatedAt:        v.createdAt,
		UpdatedAt:        v.updatedAt,
	}
	rec.Language.Supported = append([]string(nil), v.lang.Supported...)
	if v.archived != nil {
		rec.Archived = *v.archived
	}
	if v.redaction != nil {
		rec.Redaction = *v.redaction
	}
	return rec
}

func buildCampaign(id, name, status string, agent AgentRef, scheduledAt *time.Time, createdAt, updatedAt time.Time) CampaignRecord {
	return CampaignRecord{
		ID:              id,
		Name:            name,
		Status:          CampaignStatus(status),
		StatusCanonical: isCanonicalCampaignStatus(status),
		Agent:           agent,
		ScheduledAt:     scheduledAt,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// isCanonicalCampaignStatus matches case-insensitively; the raw value is kept as received.
func isCanonicalCampaignStatus(s string) bool {
	for _, c := range CampaignStatuses {
		if strings.EqualFold(s, string(c)) {
			return true
		}
	}
	return false
}

// Canonical returns the canonical form of s when it belongs to the status set.
func (s CampaignStatus) Canonical() (CampaignStatus, bool) {
	for _, c := range CampaignStatuses {
		if strings.EqualFold(string(s), string(c)) {
			return c, true
		}
	}
	return s, false
}
