package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/dbsmedya/storegen/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LoggingConfig
	}{
		{"json to stderr", config.LoggingConfig{Level: "debug", Format: "json", Output: "stderr"}},
		{"text to stdout", config.LoggingConfig{Level: "info", Format: "text", Output: "stdout"}},
		{"empty defaults", config.LoggingConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, log)
			assert.NotNil(t, log.SugaredLogger)
		})
	}
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()
	require.NotNil(t, log)
	assert.NotNil(t, log.SugaredLogger)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestContextHelpers(t *testing.T) {
	log, err := New(&config.LoggingConfig{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	withEntity := log.WithEntity("order")
	require.NotNil(t, withEntity)
	assert.NotSame(t, log, withEntity)

	withSeed := log.WithSeed(42)
	require.NotNil(t, withSeed)

	withFields := log.WithFields(map[string]interface{}{"count": 5, "format": "json"})
	require.NotNil(t, withFields)
}
