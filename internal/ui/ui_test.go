package ui

import (
	"strings"
	"testing"
)

func TestVisLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"plain", 5},
		{BrWhite + "2560 × 1440" + Reset, 11},
		{Field("DPI", "144,144"), 17},
	}

	for _, tt := range tests {
		if got := visLen(tt.in); got != tt.want {
			t.Errorf("visLen(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPanelRowsAligned(t *testing.T) {
	var sb strings.Builder
	New(&sb).Panel("Monitor 0", "Primary", Field("Device", `\\.\DISPLAY1`), Field("Scale", "150%"))

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), sb.String())
	}
	width := visLen(lines[0])
	for i, l := range lines {
		if visLen(l) != width {
			t.Errorf("line %d width %d, want %d: %q", i, visLen(l), width, l)
		}
	}
	if !strings.Contains(lines[0], "Primary") {
		t.Errorf("badge missing from top border: %q", lines[0])
	}
}
