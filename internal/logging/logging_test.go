package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"adventofcode2021/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	logger, err := logging.New(logging.Options{Level: "warn", Encoding: "json"})
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = logging.New(logging.Options{Level: "warn", Verbose: true})
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(logging.Options{Level: "loud"})
	require.Error(t, err)
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, logging.FromContext(context.Background()))

	logger := zap.NewExample()
	ctx := logging.WithLogger(context.Background(), logger)
	require.Same(t, logger, logging.FromContext(ctx))
}
