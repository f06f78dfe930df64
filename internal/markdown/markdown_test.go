package markdown

import (
	"strings"
	"testing"
)

func TestRenderEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t"},
		{"newlines", "\r\n\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(80, tt.input); got != "" {
				t.Errorf("Render(%q) = %q, want empty", tt.input, got)
			}
		})
	}
}

func TestRenderKeepsContent(t *testing.T) {
	got := Render(80, "buy **milk** and eggs")
	if !strings.Contains(got, "milk") {
		t.Errorf("rendered output lost content: %q", got)
	}
}

func TestRenderListItems(t *testing.T) {
	got := Render(80, "- one\n- two")
	if !strings.Contains(got, "one") || !strings.Contains(got, "two") {
		t.Errorf("rendered list lost items: %q", got)
	}
}

func TestRenderTinyWidth(t *testing.T) {
	// Width below 1 is clamped rather than rejected.
	if got := Render(0, "text"); got == "" {
		t.Error("expected non-empty render at clamped width")
	}
}
