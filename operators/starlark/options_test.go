package starlark

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingOptions(t *testing.T) {
	t.Parallel()

	t.Run("logger clears handler", func(t *testing.T) {
		logger := slog.New(slog.DiscardHandler)
		cfg := &config{}
		require.NoError(t, WithLogHandler(slog.DiscardHandler)(cfg))
		require.NoError(t, WithLogger(logger)(cfg))

		assert.Nil(t, cfg.logHandler)
		assert.Same(t, logger, cfg.logger)
	})

	t.Run("handler clears logger", func(t *testing.T) {
		cfg := &config{}
		require.NoError(t, WithLogger(slog.New(slog.DiscardHandler))(cfg))
		require.NoError(t, WithLogHandler(slog.DiscardHandler)(cfg))

		assert.Nil(t, cfg.logger)
		assert.NotNil(t, cfg.logHandler)
	})

	t.Run("handler records are grouped", func(t *testing.T) {
		var buf bytes.Buffer
		op := MustNew[int]("lambda a: print('hi') or a", WithLogHandler(slog.NewTextHandler(&buf, nil)))

		_, err := op.Fn(1)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "starlark.Operator.name=operator")
	})

	t.Run("logger is used as given", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		op := MustNew[int]("lambda a: print('hi') or a", WithLogger(logger))

		_, err := op.Fn(1)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "name=operator")
		assert.NotContains(t, buf.String(), "starlark.")
	})

	t.Run("nil values rejected", func(t *testing.T) {
		cfg := &config{}
		require.Error(t, WithLogHandler(nil)(cfg))
		require.Error(t, WithLogger(nil)(cfg))
	})
}
