package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"verbose":  zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Errorf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	l := New(WarnLevel, JSONFormat)
	if l.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !l.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("error should be enabled at warn level")
	}
}

func TestGet_IsSingleton(t *testing.T) {
	a := Get(InfoLevel, ConsoleFormat)
	b := Get(DebugLevel, JSONFormat)
	if a != b {
		t.Fatalf("Get returned different instances")
	}
	if a.With("k", "v") == nil {
		t.Fatalf("With returned nil")
	}
	NewNop().Infow("discarded", "k", 1)
}
