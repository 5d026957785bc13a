package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestProgressBar_View(t *testing.T) {
	tests := []struct {
		name        string
		percent     int
		wantFilled  int
		wantPercent string
	}{
		{"empty", 0, 0, "0%"},
		{"half", 50, 10, "50%"},
		{"full", 100, 20, "100%"},
		{"over", 150, 20, "150%"},
		{"negative", -10, 0, "-10%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewProgressBar("", tt.percent, true, 26).View()
			if got := strings.Count(out, "█"); got != tt.wantFilled {
				t.Errorf("filled = %d, want %d", got, tt.wantFilled)
			}
			if got := strings.Count(out, "█") + strings.Count(out, "░"); got != 20 {
				t.Errorf("bar width = %d, want 20", got)
			}
			if !strings.Contains(out, tt.wantPercent) {
				t.Errorf("view %q missing %q", out, tt.wantPercent)
			}
		})
	}
}

func TestProgressBar_MinimumWidth(t *testing.T) {
	out := NewProgressBar("로드맵", 100, false, 1).View()
	if got := strings.Count(out, "█"); got != 4 {
		t.Errorf("filled = %d, want minimum bar of 4", got)
	}
	if lipgloss.Width(out) < 4 {
		t.Errorf("width = %d", lipgloss.Width(out))
	}
}
