package normalize

import "time"

// Canonical records are value objects produced only by the validators in this
// package. Optional fields are pointers (nil means absent); no field is zeroed
// to stand in for a missing value unless the default is documented on the field.

// AgentRecord is the canonical voice agent.
type AgentRecord struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	ModelID         string  `json:"modelId"`
	FirstMessage    *string `json:"firstMessageTemplate,omitempty"`
	BackgroundSound string  `json:"backgroundSound"`

	Synthesizer SynthesizerConfig `json:"synthesizer"`
	Language    LanguageConfig    `json:"language"`

	AllowInboundCall *bool `json:"allowInboundCall,omitempty"`
	// Archived defaults to false when absent.
	Archived bool `json:"archived"`

	SmartTurn *SmartTurnConfig `json:"smartTurn,omitempty"`
	Denoising *bool            `json:"denoising,omitempty"`
	// Redaction defaults to false when the redactionConfig block is absent.
	Redaction bool `json:"redaction"`

	Workflow     WorkflowRef `json:"workflow"`
	TotalCalls   *int64      `json:"totalCalls,omitempty"`
	GlobalPrompt *string     `json:"globalPrompt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SynthesizerConfig struct {
	VoiceModel   string   `json:"voiceModel"`
	VoiceID      string   `json:"voiceId"`
	Gender       *string  `json:"gender,omitempty"`
	Speed        float64  `json:"speed"`
	Consistency  *float64 `json:"consistency,omitempty"`
	Similarity   *float64 `json:"similarity,omitempty"`
	Enhancement  *float64 `json:"enhancement,omitempty"`
	SampleRateHz *int64   `json:"sampleRateHz,omitempty"`
}

type LanguageConfig struct {
	Default   string            `json:"default"`
	Supported []string          `json:"supported"`
	Switching LanguageSwitching `json:"switching"`
}

// LanguageSwitching tunes mid-call language detection.
// Invariant: StrongSignalThreshold >= WeakSignalThreshold.
type LanguageSwitching struct {
	Enabled                  bool    `json:"enabled"`
	MinWordsForDetection     int64   `json:"minWordsForDetection"`
	StrongSignalThreshold    float64 `json:"strongSignalThreshold"`
	WeakSignalThreshold      float64 `json:"weakSignalThreshold"`
	MinConsecutiveWeakSwitch int64   `json:"minConsecutiveForWeakThresholdSwitch"`
}

// IsSupported reports whether code is one of the supported languages.
func (l LanguageConfig) IsSupported(code string) bool {
	for _, s := range l.Supported {
		if s == code {
			return true
		}
	}
	return false
}

type SmartTurnConfig struct {
	Enabled     bool    `json:"enabled"`
	WaitSeconds float64 `json:"waitSeconds"`
}

type WorkflowRef struct {
	ID   string  `json:"id"`
	Type *string `json:"type,omitempty"`
}

// AgentRef is a weak reference: a display snapshot that never implies ownership.
type AgentRef struct {
	ID   string  `json:"id"`
	Name *string `json:"name,omitempty"`
}

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignRunning   CampaignStatus = "running"
	CampaignCompleted CampaignStatus = "completed"
	CampaignFailed    CampaignStatus = "failed"
	CampaignCancelled CampaignStatus = "cancelled"
)

// CampaignStatuses is the canonical status set.
var CampaignStatuses = []CampaignStatus{
	CampaignDraft, CampaignScheduled, CampaignRunning,
	CampaignCompleted, CampaignFailed, CampaignCancelled,
}

// CampaignRecord is the canonical campaign. Status keeps the upstream value verbatim,
// case included, so "RUNNING" is not equal to CampaignRunning. StatusCanonical
// reports a case-insensitive match against CampaignStatuses; compare through
// Status.Canonical() rather than against the constants directly.
type CampaignRecord struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Status          CampaignStatus `json:"status"`
	StatusCanonical bool           `json:"statusCanonical"`
	Agent           AgentRef       `json:"agent"`
	ScheduledAt     *time.Time     `json:"scheduledAt,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// CallLogEntry is one row of the call-counts log. Agent and campaign are
// denormalized display names only.
type CallLogEntry struct {
	CallID              string     `json:"callId"`
	CallType            string     `json:"callType"`
	CallStatus          string     `json:"callStatus"`
	DurationMs          *int64     `json:"durationMs,omitempty"`
	Cost                *float64   `json:"cost,omitempty"`
	FromNumber          *string    `json:"fromNumber,omitempty"`
	ToNumber            *string    `json:"toNumber,omitempty"`
	AgentName           *string    `json:"agentName,omitempty"`
	CampaignName        *string    `json:"campaignName,omitempty"`
	DisconnectionReason *string    `json:"disconnectionReason,omitempty"`
	Timestamp           *time.Time `json:"timestamp,omitempty"`
	RecordingURL        *string    `json:"recordingUrl,omitempty"`
}

// PhoneAttributes is the resolved phone bundle. Number and CountryCode come from
// the nested attributes block or, when absent there, the flat legacy fields.
type PhoneAttributes struct {
	Number      *string `json:"phoneNumber,omitempty"`
	CountryCode *string `json:"countryCode,omitempty"`
	Provider    *string `json:"provider,omitempty"`
	AreaCode    *string `json:"areaCode,omitempty"`
}

type PhoneNumberEntry struct {
	ID          string          `json:"id"`
	ProductType *string         `json:"productType,omitempty"`
	Agent       *AgentRef       `json:"agent,omitempty"`
	Active      *bool           `json:"isActive,omitempty"`
	Attributes  PhoneAttributes `json:"attributes"`
}
