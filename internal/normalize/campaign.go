package normalize

import "time"

// Campaign validates a campaign payload. Unknown statuses are kept and flagged
// through CampaignRecord.StatusCanonical rather than rejected.
func (n *Normalizer) Campaign(raw any) (CampaignRecord, error) {
	p, err := asPayload(raw)
	if err != nil {
		return CampaignRecord{}, err
	}
	r := newReader(KindCampaign, p)
	f := campaignFields

	id, _, _ := r.str(f.ID, true)
	name, _, _ := r.str(f.Name, true)
	status, statusPath, statusOK := r.str(f.Status, true)
	if statusOK {
		r.rangeCheck(status != "", statusPath, "status is empty")
	}

	var agent AgentRef
	if _, _, ok := r.object(f.Agent, true); ok {
		agent.ID, _, _ = r.str(f.AgentID, true)
		if agentName, _, ok := r.str(f.AgentName, true); ok {
			agent.Name = &agentName
		}
	}

	created, createdPath, createdOK := r.timestamp(f.CreatedAt, true)
	updated, _, _ := r.timestamp(f.UpdatedAt, true)

	var scheduledAt *time.Time
	if at, atPath, ok := r.timestamp(f.ScheduledAt, false); ok {
		if createdOK && at.Before(created) {
			r.c.add(ReasonInvariantViolation, "scheduledAt precedes createdAt", atPath, createdPath)
		}
		scheduledAt = &at
	}

	if err := r.c.err(); err != nil {
		return CampaignRecord{}, err
	}
	return buildCampaign(id, name, status, agent, scheduledAt, created, updated), nil
}
