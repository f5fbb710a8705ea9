package normalize

import "strconv"

// Agent validates an agent payload (IAgentDTO shape) into an AgentRecord.
func (n *Normalizer) Agent(raw any) (AgentRecord, error) {
	p, err := asPayload(raw)
	if err != nil {
		return AgentRecord{}, err
	}
	r := newReader(KindAgent, p)
	f := agentFields

	var v agentFieldsValidated
	v.id, _, _ = r.str(f.ID, true)
	v.name, _, _ = r.str(f.Name, true)
	v.description, _, _ = r.str(f.Description, true)
	v.modelID, _, _ = r.str(f.ModelID, true)
	v.backgroundSound, _, _ = r.str(f.BackgroundSound, true)
	v.firstMessage = r.optStr(f.FirstMessage)
	v.globalPrompt = r.optStr(f.GlobalPrompt)
	v.allowInbound = r.optBool(f.AllowInbound)
	v.archived = r.optBool(f.Archived)
	v.workflowID, _, _ = r.str(f.WorkflowID, true)
	v.workflowType = r.optStr(f.WorkflowType)

	if calls, path, ok := r.integer(f.TotalCalls, false); ok {
		if r.rangeCheck(calls >= 0, path, "total calls must be >= 0, got %d", calls) {
			v.totalCalls = &calls
		}
	}

	if _, _, ok := r.object(f.Synthesizer, true); ok {
		v.synth = r.synthesizer(f.Synthesizer.Primary())
	}
	if _, _, ok := r.object(f.Language, true); ok {
		v.lang = n.language(r, f.Language.Primary())
	}

	if _, _, ok := r.object(f.SmartTurn, false); ok {
		v.smartTurn = r.smartTurn(f.SmartTurn.Primary())
	}
	if _, _, ok := r.object(f.Denoising, false); ok {
		if on, _, ok := r.boolean(field("isEnabled").Under(f.Denoising.Primary()), true); ok {
			v.denoising = &on
		}
	}
	// redactionConfig: absent block defaults to disabled; a present block must say so explicitly.
	if _, _, ok := r.object(f.Redaction, false); ok {
		if on, _, ok := r.boolean(field("isEnabled").Under(f.Redaction.Primary()), true); ok {
			v.redaction = &on
		}
	}

	created, createdPath, createdOK := r.timestamp(f.CreatedAt, true)
	updated, updatedPath, updatedOK := r.timestamp(f.UpdatedAt, true)
	if createdOK && updatedOK && updated.Before(created) {
		r.c.add(ReasonInvariantViolation, "updatedAt precedes createdAt", updatedPath, createdPath)
	}
	v.createdAt, v.updatedAt = created, updated

	if err := r.c.err(); err != nil {
		return AgentRecord{}, err
	}
	return buildAgent(v), nil
}

func (r *reader) synthesizer(prefix Path) SynthesizerConfig {
	f := synthFields
	var s SynthesizerConfig

	// voiceConfig must be an object before its members are read.
	if _, _, ok := r.object(field("voiceConfig").Under(prefix), true); ok {
		s.VoiceModel, _, _ = r.str(f.VoiceModel.Under(prefix), true)
		s.VoiceID, _, _ = r.str(f.VoiceID.Under(prefix), true)
		s.Gender = r.optStr(f.Gender.Under(prefix))
	}

	if speed, path, ok := r.number(f.Speed.Under(prefix), true); ok {
		r.rangeCheck(speed > 0, path, "speed must be > 0, got %v", speed)
		s.Speed = speed
	}
	s.Consistency = r.unitInterval(f.Consistency.Under(prefix))
	s.Similarity = r.unitInterval(f.Similarity.Under(prefix))
	s.Enhancement = r.unitInterval(f.Enhancement.Under(prefix))

	if rate, path, ok := r.integer(f.SampleRate.Under(prefix), false); ok {
		if r.rangeCheck(rate > 0, path, "sample rate must be a positive Hz value, got %d", rate) {
			s.SampleRateHz = &rate
		}
	}
	return s
}

// unitInterval reads an optional number constrained to [0,1].
func (r *reader) unitInterval(f Field) *float64 {
	x, path, ok := r.number(f, false)
	if !ok {
		return nil
	}
	if !r.rangeCheck(x >= 0 && x <= 1, path, "must be within [0,1], got %v", x) {
		return nil
	}
	return &x
}

func (n *Normalizer) language(r *reader, prefix Path) LanguageConfig {
	f := languageFields
	var l LanguageConfig

	def, defPath, defOK := r.str(f.Default.Under(prefix), true)
	supported, supPath, supOK := r.stringList(f.Supported.Under(prefix), true)
	l.Default = def
	l.Supported = supported

	if defOK && !n.knownLanguage(def) {
		r.c.add(ReasonOutOfRange, "unknown language code "+strconv.Quote(def), defPath)
		defOK = false
	}
	if supOK {
		for i, code := range supported {
			if !n.knownLanguage(code) {
				r.c.add(ReasonOutOfRange, "unknown language code "+strconv.Quote(code), supPath.Child(strconv.Itoa(i)))
				supOK = false
			}
		}
	}
	if defOK && supOK && !l.IsSupported(def) {
		r.c.add(ReasonInvariantViolation, "default language is not in supported", defPath, supPath)
	}

	if _, _, ok := r.object(f.Switching.Under(prefix), true); !ok {
		return l
	}
	sw := &l.Switching
	sw.Enabled, _, _ = r.boolean(f.Enabled.Under(prefix), true)
	if words, path, ok := r.integer(f.MinWords.Under(prefix), true); ok {
		r.rangeCheck(words >= 0, path, "must be >= 0, got %d", words)
		sw.MinWordsForDetection = words
	}
	if cons, path, ok := r.integer(f.MinConsecutive.Under(prefix), true); ok {
		r.rangeCheck(cons >= 0, path, "must be >= 0, got %d", cons)
		sw.MinConsecutiveWeakSwitch = cons
	}

	strong, strongPath, strongOK := r.number(f.Strong.Under(prefix), true)
	weak, weakPath, weakOK := r.number(f.Weak.Under(prefix), true)
	if strongOK {
		strongOK = r.rangeCheck(strong >= 0 && strong <= 1, strongPath, "must be within [0,1], got %v", strong)
	}
	if weakOK {
		weakOK = r.rangeCheck(weak >= 0 && weak <= 1, weakPath, "must be within [0,1], got %v", weak)
	}
	if strongOK && weakOK && strong < weak {
		r.c.add(ReasonInvariantViolation, "strong signal threshold is below weak signal threshold", strongPath, weakPath)
	}
	sw.StrongSignalThreshold, sw.WeakSignalThreshold = strong, weak
	return l
}

func (r *reader) smartTurn(prefix Path) *SmartTurnConfig {
	enabled, _, enabledOK := r.boolean(field("isEnabled").Under(prefix), true)
	wait, path, waitOK := r.number(field("waitTimeInSecs").Under(prefix), true)
	if waitOK {
		waitOK = r.rangeCheck(wait >= 0, path, "wait seconds must be >= 0, got %v", wait)
	}
	if !enabledOK || !waitOK {
		return nil
	}
	return &SmartTurnConfig{Enabled: enabled, WaitSeconds: wait}
}
