package normalize

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_KeepsNumbersExact(t *testing.T) {
	v, err := Decode(strings.NewReader(`{"totalCalls": 9007199254740993}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("9007199254740993"), v.(map[string]any)["totalCalls"])

	n, ok := coerceInteger(v.(map[string]any)["totalCalls"])
	require.True(t, ok)
	assert.Equal(t, int64(9007199254740993), n)
}

func TestDecode_RejectsTrailingData(t *testing.T) {
	for _, body := range []string{
		`{"a":1} {"b":2}`,
		`{"a":1}}`,
		`[{"a":1}]]`,
		`{"a":1} x`,
		`{"a":`,
	} {
		_, err := DecodeBytes([]byte(body))
		assert.Error(t, err, "body %s", body)
	}
}

func TestDecode_AllowsTrailingWhitespace(t *testing.T) {
	_, err := DecodeBytes([]byte("{\"a\":1}\n\t "))
	assert.NoError(t, err)
}

func TestItems(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{name: "array", body: `[{"a":1},{"a":2}]`, want: 2},
		{name: "bare object", body: `{"_id":"x"}`, want: 1},
		{name: "envelope list", body: `{"status":true,"data":[{"a":1},{"a":2},{"a":3}]}`, want: 3},
		{name: "envelope logs", body: `{"status":true,"data":{"logs":[{"a":1}],"total":1}}`, want: 1},
		{name: "envelope items", body: `{"data":{"items":[{"a":1},{"a":2}]}}`, want: 2},
		{name: "envelope single", body: `{"status":true,"data":{"_id":"agt_1"}}`, want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, err := DecodeBytes([]byte(tc.body))
			require.NoError(t, err)
			items, err := Items(body)
			require.NoError(t, err)
			assert.Len(t, items, tc.want)
		})
	}
}

func TestItems_Rejects(t *testing.T) {
	for _, body := range []string{`"text"`, `42`, `{"data":null}`, `{"data":"x"}`} {
		v, err := DecodeBytes([]byte(body))
		require.NoError(t, err)
		_, err = Items(v)
		assert.True(t, errors.Is(err, ErrNotCollection), "body %s", body)
	}
}
