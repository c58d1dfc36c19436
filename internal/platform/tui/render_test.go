package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/block-breaker/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}

func TestRenderScreenColored(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawTextColored(1, 0, "██", core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "██") {
		t.Errorf("colored run should be kept together, got %q", out)
	}
	if strings.Count(out, "\n") != 0 {
		t.Errorf("single row should not contain newlines, got %q", out)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color should render unstyled, got %q", got)
	}
	if len(colorStyles) != len(palette)+1 {
		t.Errorf("expected a style per palette entry plus default, got %d", len(colorStyles))
	}
}
