package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobPayloadWireFormat(t *testing.T) {
	raw, err := json.Marshal(JobPayload{JobID: "job-123"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"job_id":"job-123"}`, string(raw))

	var decoded JobPayload
	require.NoError(t, json.Unmarshal([]byte(`{"job_id":"job-456"}`), &decoded))
	assert.Equal(t, "job-456", decoded.JobID)
}
