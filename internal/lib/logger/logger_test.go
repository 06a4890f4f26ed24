package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/ems-console/internal/lib/logger"
	"github.com/stretchr/testify/assert"
)

func TestSetup_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env     string
		enabled slog.Level
		muted   slog.Level
	}{
		{env: logger.EnvLocal, enabled: slog.LevelDebug, muted: slog.LevelDebug - 4},
		{env: logger.EnvDev, enabled: slog.LevelInfo, muted: slog.LevelDebug},
		{env: logger.EnvProd, enabled: slog.LevelWarn, muted: slog.LevelInfo},
		{env: "unknown", enabled: slog.LevelError, muted: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.Setup(tt.env, &buf)

			assert.True(t, log.Enabled(context.Background(), tt.enabled))
			assert.False(t, log.Enabled(context.Background(), tt.muted))
		})
	}
}

func TestSetup_ProductionDropsTime(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.Setup(logger.EnvProd, &buf)

	log.Warn("something odd")

	assert.Contains(t, buf.String(), `"msg":"something odd"`)
	assert.NotContains(t, buf.String(), `"time"`)
}

func TestSetup_UnknownEnvWarnsAboutConfig(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_ = logger.Setup("", &buf)

	assert.Contains(t, buf.String(), "The env parameter was not specified")
}
