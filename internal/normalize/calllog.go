package normalize

// CallLog validates one entry of GET /analytics/call-counts-log.
func (n *Normalizer) CallLog(raw any) (CallLogEntry, error) {
	p, err := asPayload(raw)
	if err != nil {
		return CallLogEntry{}, err
	}
	r := newReader(KindCallLog, p)
	f := callLogFields

	var e CallLogEntry
	e.CallID, _, _ = r.str(f.CallID, true)
	e.CallType, _, _ = r.str(f.CallType, true)
	e.CallStatus, _, _ = r.str(f.CallStatus, true)

	if ms, path, ok := r.integer(f.DurationMs, false); ok {
		if r.rangeCheck(ms >= 0, path, "duration must be >= 0 ms, got %d", ms) {
			e.DurationMs = &ms
		}
	}
	if cost, path, ok := r.number(f.Cost, false); ok {
		if r.rangeCheck(cost >= 0, path, "cost must be >= 0, got %v", cost) {
			e.Cost = &cost
		}
	}

	e.FromNumber = r.optStr(f.From)
	e.ToNumber = r.optStr(f.To)
	e.AgentName = r.optStr(f.AgentName)
	e.CampaignName = r.optStr(f.CampaignName)
	e.DisconnectionReason = r.optStr(f.Disconnection)
	if ts, _, ok := r.timestamp(f.Timestamp, false); ok {
		e.Timestamp = &ts
	}
	e.RecordingURL = r.url(f.RecordingURL)

	if err := r.c.err(); err != nil {
		return CallLogEntry{}, err
	}
	return e, nil
}
