package log

import (
	"testing"

	"shiftlist/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Level(t *testing.T) {
	conf := &config.Configuration{}
	conf.Log.Level = "warn"

	logger, err := NewLogger(conf)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	conf := &config.Configuration{}
	conf.Log.Level = "verbose"
	conf.Log.Format = "console"

	logger, err := NewLogger(conf)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
