package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("includes the service name", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{
			Level:       LogLevelInfo,
			Format:      LogFormatJSON,
			Output:      &buf,
			ServiceName: "taskdeck-test",
		})

		logger.Info("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "taskdeck-test", entry["service"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("adds the request ID from the context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{
			Level:  LogLevelInfo,
			Format: LogFormatJSON,
			Output: &buf,
		})

		ctx := WithRequestID(context.Background(), "req-123")
		logger.InfoContext(ctx, "handling")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "req-123", entry[RequestIDKey])
	})

	t.Run("respects the level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{
			Level:  LogLevelWarn,
			Format: LogFormatText,
			Output: &buf,
		})

		logger.Info("dropped")
		assert.Zero(t, buf.Len())

		logger.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestRequestIDContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "req-9")
	assert.Equal(t, "req-9", RequestIDFromContext(ctx))
}
