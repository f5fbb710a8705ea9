package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const agentJSON = `{
  "_id": "agt_1",
  "name": "Front desk",
  "description": "Inbound receptionist",
  "slmModel": "electron-v1",
  "synthesizer": {
    "voiceConfig": {"model": "waves_lightning_large", "voiceId": "nyah", "gender": "female"},
    "speed": 1.1,
    "consistency": 0.5,
    "similarity": 0,
    "enhancement": 1,
    "sampleRate": 24000
  },
  "language": {
    "default": "en",
    "supported": ["en", "hi"],
    "switching": {
      "isEnabled": true,
      "minWordsForDetection": 3,
      "strongSignalThreshold": 0.8,
      "weakSignalThreshold": 0.5,
      "minConsecutiveForWeakThresholdSwitch": 2
    }
  },
  "allowInboundCall": true,
  "archived": false,
  "createdAt": "2025-01-10T09:00:00.000Z",
  "updatedAt": "2025-02-01T12:30:00Z",
  "firstMessage": "Hi {{name}}",
  "workflowId": "wf_9",
  "workflowType": "single_prompt",
  "backgroundSound": "office",
  "smartTurnConfig": {"isEnabled": true, "waitTimeInSecs": 1.5},
  "denoisingConfig": {"isEnabled": false},
  "redactionConfig": {"isEnabled": true},
  "totalCalls": 42,
  "globalPrompt": "Be brief."
}`

const campaignJSON = `{
  "_id": "cmp_1",
  "name": "Renewals",
  "status": "running",
  "agent": {"_id": "agt_1", "name": "Front desk"},
  "scheduledAt": "2025-03-01T10:00:00Z",
  "createdAt": "2025-02-20T08:00:00Z",
  "updatedAt": "2025-02-21T08:00:00Z"
}`

const callLogJSON = `{
  "callId": "call_1",
  "callType": "outbound",
  "callStatus": "completed",
  "callDurationMs": 65000,
  "costSpent": 0.42,
  "fromNumber": "+15551234567",
  "toNumber": "+15557654321",
  "agentName": "Front desk",
  "campaignName": "Renewals",
  "disconnectionReason": "user_hangup",
  "timestamp": "2025-03-01T10:05:00Z",
  "recordingUrl": "https://cdn.example.com/rec/call_1.wav"
}`

const phoneJSON = `{
  "_id": "pn_1",
  "productType": "phone_number",
  "agent": {"_id": "agt_1", "name": "Front desk"},
  "isActive": true,
  "attributes": {"phoneNumber": "+15551234567", "countryCode": "US", "provider": "plivo", "areaCode": "555"}
}`

func decodeObject(t *testing.T, s string) map[string]any {
	t.Helper()
	v, err := DecodeBytes([]byte(s))
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok, "fixture must be an object")
	return m
}

func setPath(m map[string]any, path string, v any) {
	keys := strings.Split(path, ".")
	cur := m
	for _, k := range keys[:len(keys)-1] {
		next, ok := cur[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[k] = next
		}
		cur = next
	}
	cur[keys[len(keys)-1]] = v
}

func deletePath(m map[string]any, path string) {
	keys := strings.Split(path, ".")
	cur := m
	for _, k := range keys[:len(keys)-1] {
		next, ok := cur[k].(map[string]any)
		if !ok {
			return
		}
		cur = next
	}
	delete(cur, keys[len(keys)-1])
}

// requireFailures asserts err is a Failures value and returns it.
func requireFailures(t *testing.T, err error) Failures {
	t.Helper()
	require.Error(t, err)
	fs, ok := AsFailures(err)
	require.True(t, ok, "expected Failures, got %v", err)
	return fs
}
