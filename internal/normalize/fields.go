package normalize

// Field tables. Every logical field that may appear under more than one key
// across API versions lists its candidates here, primary path first.
// Validators never branch on raw key names themselves.

var fieldID = field("_id", "id")

var agentFields = struct {
	ID, Name, Description, ModelID, FirstMessage, BackgroundSound Field
	Synthesizer, Language                                         Field
	AllowInbound, Archived                                        Field
	SmartTurn, Denoising, Redaction                               Field
	WorkflowID, WorkflowType, TotalCalls, GlobalPrompt            Field
	CreatedAt, UpdatedAt                                          Field
}{
	ID:              fieldID,
	Name:            field("name"),
	Description:     field("description"),
	ModelID:         field("slmModel"),
	FirstMessage:    field("firstMessage"),
	BackgroundSound: field("backgroundSound"),
	Synthesizer:     field("synthesizer"),
	Language:        field("language"),
	AllowInbound:    field("allowInboundCall"),
	Archived:        field("archived"),
	SmartTurn:       field("smartTurnConfig"),
	Denoising:       field("denoisingConfig"),
	Redaction:       field("redactionConfig"),
	WorkflowID:      field("workflowId"),
	WorkflowType:    field("workflowType"),
	TotalCalls:      field("totalCalls"),
	GlobalPrompt:    field("globalPrompt"),
	CreatedAt:       field("createdAt"),
	UpdatedAt:       field("updatedAt"),
}

// Synthesizer fields are relative to the synthesizer block.
var synthFields = struct {
	VoiceModel, VoiceID, Gender                             Field
	Speed, Consistency, Similarity, Enhancement, SampleRate Field
}{
	VoiceModel:  field("voiceConfig.model"),
	VoiceID:     field("voiceConfig.voiceId"),
	Gender:      field("voiceConfig.gender"),
	Speed:       field("speed"),
	Consistency: field("consistency"),
	Similarity:  field("similarity"),
	Enhancement: field("enhancement"),
	SampleRate:  field("sampleRate"),
}

// Language fields are relative to the language block.
var languageFields = struct {
	Default, Supported, Switching                   Field
	Enabled, MinWords, Strong, Weak, MinConsecutive Field
}{
	Default:        field("default"),
	Supported:      field("supported"),
	Switching:      field("switching"),
	Enabled:        field("switching.isEnabled"),
	MinWords:       field("switching.minWordsForDetection"),
	Strong:         field("switching.strongSignalThreshold"),
	Weak:           field("switching.weakSignalThreshold"),
	MinConsecutive: field("switching.minConsecutiveForWeakThresholdSwitch"),
}

var campaignFields = struct {
	ID, Name, Status, Agent, AgentID, AgentName, ScheduledAt, CreatedAt, UpdatedAt Field
}{
	ID:          fieldID,
	Name:        field("name"),
	Status:      field("status"),
	Agent:       field("agent"),
	AgentID:     field("agent._id", "agent.id"),
	AgentName:   field("agent.name"),
	ScheduledAt: field("scheduledAt"),
	CreatedAt:   field("createdAt"),
	UpdatedAt:   field("updatedAt"),
}

var callLogFields = struct {
	CallID, CallType, CallStatus, DurationMs, Cost   Field
	From, To, AgentName, CampaignName, Disconnection Field
	Timestamp, RecordingURL                          Field
}{
	CallID:        field("callId"),
	CallType:      field("callType"),
	CallStatus:    field("callStatus"),
	DurationMs:    field("callDurationMs"),
	Cost:          field("costSpent"),
	From:          field("fromNumber"),
	To:            field("toNumber"),
	AgentName:     field("agentName"),
	CampaignName:  field("campaignName"),
	Disconnection: field("disconnectionReason"),
	Timestamp:     field("timestamp"),
	RecordingURL:  field("recordingUrl"),
}

var phoneFields = struct {
	ID, ProductType, Agent, AgentID, AgentName, Active Field
	Attributes, Number, Country, Provider, AreaCode    Field
}{
	ID:          fieldID,
	ProductType: field("productType"),
	Agent:       field("agent"),
	AgentID:     field("agent._id", "agentId"),
	AgentName:   field("agent.name"),
	Active:      field("isActive"),
	Attributes:  field("attributes"),
	Number:      field("attributes.phoneNumber", "phoneNumber"),
	Country:     field("attributes.countryCode", "country"),
	Provider:    field("attributes.provider"),
	AreaCode:    field("attributes.areaCode"),
}
