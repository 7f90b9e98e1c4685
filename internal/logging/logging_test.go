package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerLevels(t *testing.T) {
	InitLoggerTo(&bytes.Buffer{}, true, false)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	InitLoggerTo(&bytes.Buffer{}, false, false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestLogRequestOmitsPayload(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, false, false)

	LogRequest("req-1", "127.0.0.1:5000", "EA", "Encode data", []byte("secret-password"), 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request_received", entry["event"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "EA", entry["command"])
	assert.EqualValues(t, 15, entry["request_len"])
	assert.NotContains(t, buf.String(), "secret-password")
}

func TestLogResponse(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, false, false)

	LogResponse("req-2", "127.0.0.1:5000", "EA", "EB", "00", 20, time.Millisecond)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "response_sent", entry["event"])
	assert.Equal(t, "EB", entry["response_command"])
	assert.Equal(t, "00", entry["error_code"])
}
