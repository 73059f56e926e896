package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{" warn ", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseLevel(tc.in); got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Level = log.WarnLevel
	opts.ReportTimestamp = false
	logger := New(&buf, opts)

	logger.Info("hidden")
	logger.Warn("shown", "id", 7)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info must be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "id=7") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestFile_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, closer, err := File(path)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}
	logger.Debug("key press", "key", "n")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("debug log is not JSON: %v (%s)", err, data)
	}
	if entry["msg"] != "key press" || entry["key"] != "n" {
		t.Errorf("entry = %v", entry)
	}
}
