package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lanerun/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawTextColor(2, 0, "cd", core.ColorRed)
	s.SetColor(5, 1, 'x', core.ColorCyan)
	s.SetColor(0, 2, 'y', core.Color(200)) // Unknown colors fall back to default

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("got %d line breaks, want 2", got)
	}
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "abcd") {
		t.Errorf("same-color cells were split: %q", lines[0])
	}
	if !strings.Contains(lines[1], "x") || !strings.Contains(lines[2], "y") {
		t.Errorf("missing cells in %q", out)
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("RenderScreen(0x0) = %q, want empty", out)
	}
}
