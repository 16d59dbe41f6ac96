package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		expect slog.Level
	}{
		{in: "debug", expect: slog.LevelDebug},
		{in: " WARN ", expect: slog.LevelWarn},
		{in: "warning", expect: slog.LevelWarn},
		{in: "error", expect: slog.LevelError},
		{in: "", expect: slog.LevelInfo},
		{in: "verbose", expect: slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expect, parseLevel(tc.in))
		})
	}
}

func TestNew_WritesUTCJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info")

	logger.Debug("hidden")
	logger.Info("withdraw started", "run_id", "r-1")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "withdraw started", record["msg"])
	assert.Equal(t, "r-1", record["run_id"])
	assert.Regexp(t, `Z$`, record["time"])
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "***", Mask("abc"))
	assert.Equal(t, "**********", Mask("1234567890"))
	assert.Equal(t, "***********", Mask("12345678901"))
	assert.Equal(t, "********9012", Mask("123456789012"))
	assert.Equal(t, "************1234", Mask("abcdefghijkl1234"))
}
