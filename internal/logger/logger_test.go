package logger

import (
	"bytes"
	"testing"

	"github.com/deppfellow/signup/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, int(tracelog.LogLevelDebug), GetPgxTraceLogLevel(zerolog.DebugLevel))
	assert.Equal(t, int(tracelog.LogLevelError), GetPgxTraceLogLevel(zerolog.ErrorLevel))
	assert.Equal(t, int(tracelog.LogLevelNone), GetPgxTraceLogLevel(zerolog.Disabled))
}

func TestNewLoggerService_WithoutLicenseKey(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())

	assert.Nil(t, svc.GetApplication())
	assert.NotPanics(t, svc.Shutdown)
}

func TestNewWriter(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	var out bytes.Buffer

	assert.Same(t, &out, newWriter(cfg, nil, &out))

	cfg.Logging.Format = "console"
	_, isConsole := newWriter(cfg, nil, &out).(zerolog.ConsoleWriter)
	assert.True(t, isConsole)
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var out bytes.Buffer
	base := zerolog.New(&out)

	logger := WithTraceContext(base, nil)
	logger.Info().Msg("hello")

	assert.NotContains(t, out.String(), "trace.id")
}
