package httpdraft

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRequest(t *testing.T) {
	t.Run("given a built request, then the log event embeds its fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)

		req := mustBuild(t, func(b *Builder) {
			b.URI("https://api.example.com/users").
				Method(MethodPost).
				Body("abc").
				Headers(func(h *HeaderSet) {
					h.Add("A", "1")
				})
		})

		LogRequest(logger, req)

		var event map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &event))

		nested, ok := event["request"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "POST", nested["method"])
		assert.Equal(t, "https://api.example.com/users", nested["uri"])
		assert.Equal(t, float64(1), nested["header_count"])
		assert.Equal(t, float64(3), nested["body_bytes"])
	})

	t.Run("given no body, then body_bytes is omitted from the event", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)

		LogRequest(logger, mustBuild(t, func(b *Builder) {
			b.URI("https://api.example.com")
		}))

		var event map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &event))

		nested, ok := event["request"].(map[string]any)
		require.True(t, ok)
		assert.NotContains(t, nested, "body_bytes")
	})
}
