package normalize

// PhoneNumber validates one entry of GET /product/phone-numbers.
//
// The phone number and country code are optional. Both prefer attributes.* and fall
// back to the flat legacy keys. When both shapes carry a value they must agree; a disagreement is
// CONFLICTING_FALLBACK, never a silent preference.
func (n *Normalizer) PhoneNumber(raw any) (PhoneNumberEntry, error) {
	p, err := asPayload(raw)
	if err != nil {
		return PhoneNumberEntry{}, err
	}
	r := newReader(KindPhoneNumber, p)
	f := phoneFields

	var e PhoneNumberEntry
	e.ID, _, _ = r.str(f.ID, true)
	e.ProductType = r.optStr(f.ProductType)
	e.Active = r.optBool(f.Active)

	// A malformed agent block is reported, and the flat agentId is still considered.
	r.object(f.Agent, false)
	agentName := r.optStr(f.AgentName)
	if id, _, ok := r.str(f.AgentID, agentName != nil); ok {
		e.Agent = &AgentRef{ID: id, Name: agentName}
	}

	r.object(f.Attributes, false)
	e.Attributes.Number = r.optStr(f.Number)
	e.Attributes.CountryCode = r.optStr(f.Country)
	e.Attributes.Provider = r.optStr(f.Provider)
	e.Attributes.AreaCode = r.optStr(f.AreaCode)

	if err := r.c.err(); err != nil {
		return PhoneNumberEntry{}, err
	}
	return e, nil
}
