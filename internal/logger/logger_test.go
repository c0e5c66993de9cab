package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_NoopBeforeInit(t *testing.T) {
	Reset()
	// Must not panic
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}

func TestLogger_Levels(t *testing.T) {
	defer Reset()

	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "default hides debug", verbose: false, wantDebug: false},
		{name: "verbose shows debug", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Init(&buf, Options{Verbose: tt.verbose})

			Debug("loaded catalog", "reactions", 4)
			Warn("using default reactions")

			out := buf.String()
			if got := strings.Contains(out, "loaded catalog"); got != tt.wantDebug {
				t.Errorf("debug message present = %v, want %v in %q", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "using default reactions") {
				t.Errorf("warn message missing from %q", out)
			}
			if tt.wantDebug && !strings.Contains(out, "reactions=4") {
				t.Errorf("key/value pair missing from %q", out)
			}
		})
	}
}
