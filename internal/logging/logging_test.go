package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(Options{Verbose: tt.verbose, Output: &buf})

			log.Debug("grouped components", zap.Int("groups", 3))
			log.Info("no auxiliary bom found", zap.String("path", "bom-aux.csv"))
			_ = log.Sync()

			out := buf.String()
			if got := strings.Contains(out, "grouped components"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v; output:\n%s", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "INFO\tno auxiliary bom found") {
				t.Errorf("Expected info line, got:\n%s", out)
			}
			if !strings.Contains(out, `"path": "bom-aux.csv"`) {
				t.Errorf("Expected structured field, got:\n%s", out)
			}
		})
	}
}
