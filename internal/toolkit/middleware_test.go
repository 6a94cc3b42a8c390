package toolkit

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	tool, err := New("noisy", "", emptyObjectSchema(),
		func(_ context.Context, _ struct{}) (string, error) { return "done", nil })
	require.NoError(t, err)

	wrapped := WithLogging(logger)(tool)
	assert.Equal(t, "noisy", wrapped.Name())

	text, err := wrapped.Call(context.Background(), raw("{}"))
	require.NoError(t, err)
	assert.Equal(t, "done", text)
	out := buf.String()
	assert.Contains(t, out, "tool start")
	assert.Contains(t, out, "tool end")
	assert.Contains(t, out, "noisy")
}

func TestWithLogging_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	tool, err := New("failing", "", emptyObjectSchema(),
		func(_ context.Context, _ struct{}) (string, error) {
			return "", &ClientError{Reason: "nope"}
		})
	require.NoError(t, err)

	_, err = WithLogging(logger)(tool).Call(context.Background(), raw("{}"))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "tool error")
}

func TestWithRecovery(t *testing.T) {
	tool, err := New("panicky", "", emptyObjectSchema(),
		func(_ context.Context, _ struct{}) (string, error) { panic("kaboom") })
	require.NoError(t, err)

	_, err = WithRecovery()(tool).Call(context.Background(), raw("{}"))
	require.Error(t, err)
	assert.True(t, IsSystemError(err))
	assert.Contains(t, err.Error(), "kaboom")
}
