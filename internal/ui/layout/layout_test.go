package layout

import "testing"

func TestCalculateThreePanel(t *testing.T) {
	l := Calculate(160, 40, true)

	if l.SinglePanel {
		t.Error("expected full layout at 160 cols")
	}
	if !l.SidebarVisible {
		t.Error("expected sidebar visible")
	}
	if l.SidebarWidth < minSidebarWidth || l.SidebarWidth > maxSidebarWidth {
		t.Errorf("sidebar width %d out of bounds", l.SidebarWidth)
	}
	if total := l.SidebarWidth + l.EditorWidth + l.ResponseWidth; total != 160 {
		t.Errorf("panel widths sum to %d, want 160", total)
	}
	if l.ContentHeight != 39 {
		t.Errorf("content height %d, want 39", l.ContentHeight)
	}
}

func TestCalculateTwoPanel(t *testing.T) {
	l := Calculate(90, 30, true)

	if l.SinglePanel || l.SidebarVisible {
		t.Errorf("expected two-panel layout below 100 cols: %+v", l)
	}
	if l.EditorWidth+l.ResponseWidth != 90 {
		t.Errorf("panel widths sum to %d, want 90", l.EditorWidth+l.ResponseWidth)
	}
}

func TestCalculateSinglePanel(t *testing.T) {
	l := Calculate(50, 20, true)

	if !l.SinglePanel {
		t.Error("expected single panel below 60 cols")
	}
	if l.EditorWidth != 50 || l.ResponseWidth != 50 {
		t.Errorf("single panel should use full width: %+v", l)
	}
}

func TestCalculateSidebarHidden(t *testing.T) {
	l := Calculate(160, 40, false)

	if l.SidebarVisible || l.SidebarWidth != 0 {
		t.Errorf("expected no sidebar: %+v", l)
	}
	if l.EditorWidth+l.ResponseWidth != 160 {
		t.Errorf("panel widths sum to %d, want 160", l.EditorWidth+l.ResponseWidth)
	}
}

func TestCalculateTinyTerminal(t *testing.T) {
	l := Calculate(10, 0, true)
	if l.ContentHeight < 1 {
		t.Errorf("content height must stay positive, got %d", l.ContentHeight)
	}
}
