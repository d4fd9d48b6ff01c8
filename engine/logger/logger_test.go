package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: LevelDebug},
		{name: "mixed case", input: "WaRn", want: LevelWarn},
		{name: "warning alias", input: "warning", want: LevelWarn},
		{name: "empty defaults to info", input: "", want: LevelInfo},
		{name: "error", input: " error ", want: LevelError},
		{name: "unknown", input: "verbose", want: LevelInfo, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("shown %d", 3)
	l.Errorf("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "WARN  shown 3") || !strings.Contains(out, "ERROR shown 4") {
		t.Errorf("output missing expected messages: %q", out)
	}
}

func TestTagSharesOutputAndLevel(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelError, &buf)
	child := root.Tag("Picker")

	child.Warnf("dropped")
	root.SetLevel(LevelDebug)
	child.Debugf("ray %s", "parallel")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("child ignored parent level: %q", out)
	}
	if !strings.Contains(out, "[Picker] ray parallel") {
		t.Errorf("tagged message missing: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.Enabled(LevelError) {
		t.Error("Discard logger should not enable any level")
	}
}
