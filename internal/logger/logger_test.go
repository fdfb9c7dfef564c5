package logger

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"ERROR", LevelError, false},
		{"", LevelWarn, false},
		{"noisy", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSetGlobalLevelFromString(t *testing.T) {
	defer SetGlobalLevel(LevelWarn)

	SetGlobalLevelFromString("trace")
	globalMu.RLock()
	got := globalLevel
	globalMu.RUnlock()
	if got != LevelTrace {
		t.Errorf("global level = %v, want LevelTrace", got)
	}

	// Invalid level leaves the current level untouched
	SetGlobalLevelFromString("bogus")
	globalMu.RLock()
	got = globalLevel
	globalMu.RUnlock()
	if got != LevelTrace {
		t.Errorf("global level after invalid input = %v, want LevelTrace", got)
	}
}
