package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ok := withLogging(logger, "show_saved", func(ctx context.Context) error { return nil })
	require.NoError(t, ok(context.Background()))

	boom := errors.New("boom")
	failing := withLogging(logger, "new_search", func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, failing(context.Background()), boom)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "action handled", entries[0].Message)
	assert.Equal(t, "show_saved", entries[0].ContextMap()["action"])
	assert.Equal(t, "action error", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestWithRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var out bytes.Buffer

	action := withRecovery(zap.New(core), &out, "show_saved", func(ctx context.Context) error {
		panic("nil map")
	})

	assert.NoError(t, action(context.Background()))
	assert.Contains(t, out.String(), msgInternalError)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestWithRecovery_PassesErrors(t *testing.T) {
	var out bytes.Buffer
	boom := errors.New("boom")

	action := withRecovery(zap.NewNop(), &out, "new_search", func(ctx context.Context) error { return boom })

	assert.ErrorIs(t, action(context.Background()), boom)
	assert.Empty(t, out.String())
}
