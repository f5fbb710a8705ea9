package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagent-bridge/internal/config"
	"voiceagent-bridge/internal/normalize"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(config.UpstreamConfig{BaseURL: srv.URL + "/", APIKey: "k", Timeout: time.Second})
	require.NoError(t, err)
	return c
}

func TestCallLogs_UnwrapsEnvelopeAndSendsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analytics/call-counts-log", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "2025-03-01T00:00:00Z", r.URL.Query().Get("from"))
		assert.Empty(t, r.URL.Query().Get("to"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"data":{"logs":[{"callId":"a"},{"callId":"b"}],"total":2}}`))
	})

	items, err := c.CallLogs(context.Background(), CallLogQuery{Page: 2, Limit: 50, From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].(map[string]any)["callId"])
}

func TestGetAgent_SingleObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/agent/agt_1", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":true,"data":{"_id":"agt_1","name":"Front desk"}}`))
	})

	raw, err := c.GetAgent(context.Background(), "agt_1")
	require.NoError(t, err)
	assert.Equal(t, "agt_1", normalize.PayloadID(raw))
}

func TestGetAgent_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":false,"message":"no agent"}`, http.StatusNotFound)
	})

	_, err := c.GetAgent(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Status)
}

func TestPhoneNumbers_ServerErrorIsUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.PhoneNumbers(context.Background())
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestListCampaigns_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":true,"data":`))
	})

	_, err := c.ListCampaigns(context.Background())
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestListCampaigns_NotACollection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":true,"data":"maintenance"}`))
	})

	_, err := c.ListCampaigns(context.Background())
	assert.True(t, errors.Is(err, normalize.ErrNotCollection))
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(config.UpstreamConfig{})
	assert.Error(t, err)
}
