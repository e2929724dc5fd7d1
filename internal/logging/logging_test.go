package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{JSON: true, Service: "sdkstore", Version: "1.2.3", RunID: true, Writer: &buf})
	logger.Info("copied", "path", "/data/Certificates/modio.crt")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if record["msg"] != "copied" {
		t.Errorf("msg = %v, want copied", record["msg"])
	}
	if record["service"] != "sdkstore" {
		t.Errorf("service = %v, want sdkstore", record["service"])
	}
	if record["version"] != "1.2.3" {
		t.Errorf("version = %v, want 1.2.3", record["version"])
	}
	run, _ := record["run"].(string)
	if _, err := uuid.Parse(run); err != nil {
		t.Errorf("run = %q, want a UUID: %v", run, err)
	}
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "info level hides debug", debug: false, wantDebug: false},
		{name: "debug level shows debug", debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := New(Options{Debug: tt.debug, NoColor: true, Writer: &buf})
			logger.Debug("external storage unavailable")

			got := strings.Contains(buf.String(), "external storage unavailable")
			if got != tt.wantDebug {
				t.Errorf("debug record emitted = %v, want %v (output %q)", got, tt.wantDebug, buf.String())
			}
		})
	}
}

func TestNew_Quiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{Quiet: true, NoColor: true, Writer: &buf})
	logger.Info("copied asset")
	logger.Warn("closing asset stream")

	out := buf.String()
	if strings.Contains(out, "copied asset") {
		t.Errorf("quiet logger emitted info record: %q", out)
	}
	if !strings.Contains(out, "closing asset stream") {
		t.Errorf("quiet logger dropped warning: %q", out)
	}
}

func TestNew_ConsoleOmitsEmptyAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(Options{NoColor: true, Writer: &buf}).Info("hello")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("output %q missing message", out)
	}
	for _, attr := range []string{"service=", "version=", "run="} {
		if strings.Contains(out, attr) {
			t.Errorf("output %q should not contain %s", out, attr)
		}
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := Discard()
	if logger.Enabled(t.Context(), 0) {
		t.Error("Discard() logger should not be enabled")
	}
}
