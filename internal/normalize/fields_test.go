package normalize

import (
	"go/format"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The field tables are edited by hand often; keep them gofmt clean.
func TestFieldTables_Formatted(t *testing.T) {
	src, err := os.ReadFile("fields.go")
	require.NoError(t, err)
	formatted, err := format.Source(src)
	require.NoError(t, err)
	assert.Equal(t, string(formatted), string(src))
}

func TestFieldTables_PrimaryPathFirst(t *testing.T) {
	assert.Equal(t, "attributes.phoneNumber", phoneFields.Number.Candidates[0].String())
	assert.Equal(t, "agent._id", campaignFields.AgentID.Candidates[0].String())
}
