package log

import (
	"slices"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if got := ParseFormat(" Text "); got != FormatText {
		t.Errorf("expected text, got %v", got)
	}
	if got := ParseFormat("json"); got != FormatJSON {
		t.Errorf("expected json, got %v", got)
	}
	if got := ParseFormat("xml"); got != DefaultFormat {
		t.Errorf("expected default, got %v", got)
	}
}

func TestLevels_Enumerates(t *testing.T) {
	got := slices.Collect(Levels())
	want := []string{"trace", "debug", "info", "warn", "error"}

	if !slices.Equal(got, want) {
		t.Errorf("Levels() = %v, want %v", got, want)
	}
}

func TestConfig_OptionsReturnCopies(t *testing.T) {
	base := makeConfig(nil)
	changed := apply(base, WithLevel(LevelError), WithCaller(true))

	if base.level != DefaultLevel || base.caller {
		t.Error("options mutated the base config")
	}
	if changed.level != LevelError || !changed.caller {
		t.Error("options not applied to the copy")
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		layout string
		want   string
	}{
		{"RFC3339", "2024-03-09T14:05:00Z"},
		{"kitchen", "2:05PM"},
		{"2006/01/02", "2024/03/09"},
		{"none", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			if got := makeFormatTimeFunc(tt.layout)(ts); got != tt.want {
				t.Errorf("format(%q) = %q, want %q", tt.layout, got, tt.want)
			}
		})
	}
}
