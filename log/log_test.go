package log

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	tests := []struct {
		level    Level
		expected zapcore.Level
	}{
		{DebugLevel, zapcore.DebugLevel},
		{InfoLevel, zapcore.InfoLevel},
		{WarnLevel, zapcore.WarnLevel},
		{ErrorLevel, zapcore.ErrorLevel},
		{FatalLevel, zapcore.FatalLevel},
		{NopLevel, zapNopLevel},
		{Level("unknown"), zapNopLevel},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToZapLevel(); got != tt.expected {
				t.Errorf("expected %v, actual: %v", tt.expected, got)
			}
		})
	}
}

func TestInitLoggerKeepsNop(t *testing.T) {
	before := logger
	t.Cleanup(func() { logger = before })

	InitLogger(NopLevel)
	if logger == nil {
		t.Fatal("logger should never be nil")
	}

	InitLogger(InfoLevel)
	if logger == nil {
		t.Fatal("logger should never be nil")
	}
}
