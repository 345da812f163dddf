package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestInit(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON},
	} {
		l := Init(cfg)
		assert.NotNil(t, l)

		ctx := WithSessionID(context.Background(), "abc")
		l.Infof(ctx, "session %s started", "abc")
		l.Debug(context.Background(), "no session")
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Error(context.Background(), "dropped")
	l.Warnf(context.TODO(), "dropped %d", 1)
}
