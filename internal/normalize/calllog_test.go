package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallLog_Valid(t *testing.T) {
	e, err := New(Options{}).CallLog(decodeObject(t, callLogJSON))
	require.NoError(t, err)

	assert.Equal(t, "call_1", e.CallID)
	assert.Equal(t, "outbound", e.CallType)
	assert.Equal(t, "completed", e.CallStatus)
	require.NotNil(t, e.DurationMs)
	assert.Equal(t, int64(65000), *e.DurationMs)
	require.NotNil(t, e.Cost)
	assert.Equal(t, 0.42, *e.Cost)
	assert.Equal(t, "+15551234567", *e.FromNumber)
	assert.Equal(t, "+15557654321", *e.ToNumber)
	assert.Equal(t, "Front desk", *e.AgentName)
	assert.Equal(t, "Renewals", *e.CampaignName)
	assert.Equal(t, "user_hangup", *e.DisconnectionReason)
	require.NotNil(t, e.Timestamp)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 5, 0, 0, time.UTC), *e.Timestamp)
	assert.Equal(t, "https://cdn.example.com/rec/call_1.wav", *e.RecordingURL)
}

func TestCallLog_MinimalEntry(t *testing.T) {
	e, err := New(Options{}).CallLog(map[string]any{
		"callId": "c", "callType": "inbound", "callStatus": "no-answer",
	})
	require.NoError(t, err)
	assert.Nil(t, e.DurationMs)
	assert.Nil(t, e.Cost)
	assert.Nil(t, e.FromNumber)
	assert.Nil(t, e.Timestamp)
	assert.Nil(t, e.RecordingURL)
}

func TestCallLog_Failures(t *testing.T) {
	cases := []struct {
		name   string
		key    string
		value  any
		reason Reason
	}{
		{name: "negative duration", key: "callDurationMs", value: -1, reason: ReasonOutOfRange},
		{name: "fractional duration", key: "callDurationMs", value: 12.5, reason: ReasonTypeMismatch},
		{name: "non numeric duration", key: "callDurationMs", value: "long", reason: ReasonTypeMismatch},
		{name: "negative cost", key: "costSpent", value: "-0.01", reason: ReasonOutOfRange},
		{name: "cost as bool", key: "costSpent", value: true, reason: ReasonTypeMismatch},
		{name: "hex float cost", key: "costSpent", value: "0x1p-2", reason: ReasonTypeMismatch},
		{name: "infinite cost", key: "costSpent", value: "Inf", reason: ReasonTypeMismatch},
		{name: "hex duration", key: "callDurationMs", value: "0x10", reason: ReasonTypeMismatch},
		{name: "relative recording url", key: "recordingUrl", value: "/rec/1.wav", reason: ReasonTypeMismatch},
		{name: "ftp recording url", key: "recordingUrl", value: "ftp://host/rec.wav", reason: ReasonTypeMismatch},
		{name: "empty recording url", key: "recordingUrl", value: "", reason: ReasonTypeMismatch},
		{name: "bad timestamp", key: "timestamp", value: "03/01/2025", reason: ReasonTypeMismatch},
		{name: "numeric call id", key: "callId", value: 123, reason: ReasonTypeMismatch},
		{name: "missing status", key: "callStatus", value: nil, reason: ReasonMissing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := decodeObject(t, callLogJSON)
			if tc.value == nil {
				delete(p, tc.key)
			} else {
				p[tc.key] = tc.value
			}

			_, err := New(Options{}).CallLog(p)
			fs := requireFailures(t, err)
			require.Len(t, fs, 1, "failures: %v", fs)
			assert.True(t, fs.Has(tc.reason, tc.key), "failures: %v", fs)
			assert.Equal(t, KindCallLog, fs[0].Kind)
		})
	}
}

func TestCallLog_NumericStringDuration(t *testing.T) {
	p := decodeObject(t, callLogJSON)
	p["callDurationMs"] = "1500"
	p["costSpent"] = "0.10"

	e, err := New(Options{}).CallLog(p)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), *e.DurationMs)
	assert.Equal(t, 0.10, *e.Cost)
}

func TestCallLog_ExponentCostString(t *testing.T) {
	p := decodeObject(t, callLogJSON)
	p["costSpent"] = " 2.5e-1 "

	e, err := New(Options{}).CallLog(p)
	require.NoError(t, err)
	assert.Equal(t, 0.25, *e.Cost)
}
