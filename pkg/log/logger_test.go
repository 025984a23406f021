package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithChat(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ctx := base.WithContext(context.Background())

	ctx = WithChat(ctx, 42)
	FromCtx(ctx).Info().Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, float64(42), line["chat_id"])
	assert.NotEmpty(t, line["trace_id"])
	assert.Equal(t, "hello", line["message"])
}

func TestWithChat_FreshTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	FromCtx(WithChat(ctx, 1)).Info().Msg("a")
	FromCtx(WithChat(ctx, 1)).Info().Msg("b")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var a, b map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &a))
	require.NoError(t, json.Unmarshal(lines[1], &b))
	assert.NotEqual(t, a["trace_id"], b["trace_id"])
}
