package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New("production", "warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	dev, err := New("development", "")
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	_, err = New("development", "loud")
	require.Error(t, err)
	assert.Panics(t, func() { Must("development", "loud") })
}
