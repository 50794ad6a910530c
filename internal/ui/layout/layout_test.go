package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(120, 0); got != 120 {
		t.Errorf("Clamp without limit = %d, want 120", got)
	}
	if got := Clamp(120, 100); got != 100 {
		t.Errorf("Clamp(120, 100) = %d, want 100", got)
	}
	if got := Clamp(90, 100); got != 90 {
		t.Errorf("Clamp(90, 100) = %d, want 90", got)
	}
}

func TestRenderHeaderContainsParts(t *testing.T) {
	h := RenderHeader("Question", "Ivanov", 100)
	for _, want := range []string{AppName, "Question", "Ivanov"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooterContainsHints(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Next"}}, 80)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "Next") {
		t.Errorf("footer missing hint: %q", f)
	}
}
